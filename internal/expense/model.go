package expense

import (
	"time"

	"github.com/splitledger/backend/internal/expense/split"
	"github.com/splitledger/backend/internal/money"
)

// Expense represents a shared expense in a project
type Expense struct {
	ID          int64       `json:"id"`
	ProjectID   int64       `json:"project_id"`
	PaidBy      int64       `json:"paid_by"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Amount      money.Cents `json:"amount"`
	Date        time.Time   `json:"date"`
	SplitType   string      `json:"split_type"` // EQUAL, EXACT, PERCENTAGE, SHARES
	Notes       *string     `json:"notes,omitempty"`
	ReceiptURL  *string     `json:"receipt_url,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Split is one participant's owed share of an expense. The payer's own
// share is stored too, for audit, but never drives the ledger.
type Split struct {
	ID        int64       `json:"id"`
	ExpenseID int64       `json:"expense_id"`
	UserID    int64       `json:"user_id"`
	Amount    money.Cents `json:"amount"`
}

// ExpenseWithSplits combines an expense with its splits
type ExpenseWithSplits struct {
	Expense *Expense
	Splits  []*Split
}

// SplitParticipant is used when creating an expense with splits
type SplitParticipant struct {
	UserID     int64    `json:"user_id"`
	Amount     *int64   `json:"amount,omitempty"`     // cents, for EXACT split
	Percentage *float64 `json:"percentage,omitempty"` // for PERCENTAGE split
	Shares     *int64   `json:"shares,omitempty"`     // for SHARES split
}

// ToSplitInput converts to the split package's input type
func (p *SplitParticipant) ToSplitInput() split.SplitInput {
	return split.SplitInput{
		UserID:     p.UserID,
		Amount:     p.Amount,
		Percentage: p.Percentage,
		Shares:     p.Shares,
	}
}
