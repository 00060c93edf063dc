package settlement

import (
	"time"

	"github.com/splitledger/backend/internal/money"
)

// SettlementStatus represents the status of a settlement
type SettlementStatus string

const (
	SettlementStatusPending  SettlementStatus = "PENDING"
	SettlementStatusVerified SettlementStatus = "VERIFIED"
)

// Settlement records one payment from FromUserID to ToUserID. Settlements
// are immutable once created; they exist for audit and history, and drive
// exactly one ledger mutation at creation time.
type Settlement struct {
	ID              int64            `json:"id"`
	ProjectID       int64            `json:"project_id"`
	FromUserID      int64            `json:"from_user_id"` // payer
	ToUserID        int64            `json:"to_user_id"`   // receiver
	Amount          money.Cents      `json:"amount"`
	PrincipalAmount money.Cents      `json:"principal_amount"`
	SettlementDate  time.Time        `json:"settlement_date"`
	PaymentMethod   string           `json:"payment_method"`
	Status          SettlementStatus `json:"status"`
	Reference       string           `json:"reference"` // external payment reference
	CreatedBy       int64            `json:"created_by"`
	CreatedAt       time.Time        `json:"created_at"`
}
