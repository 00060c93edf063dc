package balance

import (
	"time"

	"github.com/splitledger/backend/internal/money"
)

// Balance is the net debt between an ordered pair of users in a project.
// For any project and pair {A,B} at most one direction is stored, its amount
// strictly positive. A settled pair has no row at all.
//
// Amount always equals BaseAmount at rest; interest is computed from
// BaseAmount on every read and never written back.
type Balance struct {
	ID                int64       `json:"id"`
	ProjectID         int64       `json:"project_id"`
	FromUserID        int64       `json:"from_user_id"` // debtor
	ToUserID          int64       `json:"to_user_id"`   // creditor
	Amount            money.Cents `json:"amount"`
	BaseAmount        money.Cents `json:"base_amount"`
	InterestStartDate *time.Time  `json:"interest_start_date,omitempty"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
