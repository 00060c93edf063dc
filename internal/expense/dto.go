package expense

import "github.com/splitledger/backend/internal/money"

// CreateExpenseRequest represents the request to create an expense.
// Amount and all participant amounts are integer cents.
type CreateExpenseRequest struct {
	ProjectID    int64               `json:"project_id" validate:"required"`
	PaidBy       int64               `json:"paid_by,omitempty"` // defaults to the authenticated user
	Description  string              `json:"description" validate:"required,min=1,max=255"`
	Category     string              `json:"category,omitempty"`
	Amount       money.Cents         `json:"amount" validate:"required,gt=0"`
	Date         string              `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	SplitType    string              `json:"split_type" validate:"required,oneof=EQUAL EXACT PERCENTAGE SHARES"`
	Participants []*SplitParticipant `json:"participants" validate:"required,min=1"`
	Notes        *string             `json:"notes,omitempty"`
	ReceiptURL   *string             `json:"receipt_url,omitempty"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID          int64            `json:"id"`
	ProjectID   int64            `json:"project_id"`
	PaidBy      int64            `json:"paid_by"`
	Description string           `json:"description"`
	Category    string           `json:"category,omitempty"`
	Amount      money.Cents      `json:"amount"`
	Date        string           `json:"date"`
	SplitType   string           `json:"split_type"`
	Notes       *string          `json:"notes,omitempty"`
	ReceiptURL  *string          `json:"receipt_url,omitempty"`
	CreatedAt   string           `json:"created_at"`
	Splits      []*SplitResponse `json:"splits,omitempty"`
}

// SplitResponse represents the response for a split
type SplitResponse struct {
	ID        int64       `json:"id"`
	ExpenseID int64       `json:"expense_id"`
	UserID    int64       `json:"user_id"`
	Amount    money.Cents `json:"amount"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		PaidBy:      e.PaidBy,
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date.Format("2006-01-02"),
		SplitType:   e.SplitType,
		Notes:       e.Notes,
		ReceiptURL:  e.ReceiptURL,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Split model to a SplitResponse DTO
func (s *Split) ToResponse() *SplitResponse {
	return &SplitResponse{
		ID:        s.ID,
		ExpenseID: s.ExpenseID,
		UserID:    s.UserID,
		Amount:    s.Amount,
	}
}
