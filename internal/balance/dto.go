package balance

import "github.com/splitledger/backend/internal/money"

// WithInterest is a balance row annotated at read time. AccruedInterest and
// TotalAmount are never persisted.
type WithInterest struct {
	Balance
	AccruedInterest money.Cents `json:"accrued_interest"`
	TotalAmount     money.Cents `json:"total_amount"`
}

// BalanceResponse represents the response for a single balance
type BalanceResponse struct {
	ID                int64       `json:"id"`
	ProjectID         int64       `json:"project_id"`
	FromUserID        int64       `json:"from_user_id"`
	ToUserID          int64       `json:"to_user_id"`
	Amount            money.Cents `json:"amount"`
	BaseAmount        money.Cents `json:"base_amount"`
	AccruedInterest   money.Cents `json:"accrued_interest"`
	TotalAmount       money.Cents `json:"total_amount"`
	InterestStartDate *string     `json:"interest_start_date,omitempty"`
	UpdatedAt         string      `json:"updated_at"`
}

// ToResponse converts an annotated balance to a BalanceResponse DTO
func (b *WithInterest) ToResponse() *BalanceResponse {
	resp := &BalanceResponse{
		ID:              b.ID,
		ProjectID:       b.ProjectID,
		FromUserID:      b.FromUserID,
		ToUserID:        b.ToUserID,
		Amount:          b.Amount,
		BaseAmount:      b.BaseAmount,
		AccruedInterest: b.AccruedInterest,
		TotalAmount:     b.TotalAmount,
		UpdatedAt:       b.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if b.InterestStartDate != nil {
		s := b.InterestStartDate.Format("2006-01-02T15:04:05Z")
		resp.InterestStartDate = &s
	}
	return resp
}
