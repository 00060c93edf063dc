package settlement

import "github.com/splitledger/backend/internal/money"

// SettleUpRequest represents the request to record a payment between two users
type SettleUpRequest struct {
	ProjectID       int64       `json:"project_id" validate:"required"`
	FromUserID      int64       `json:"from_user_id" validate:"required"` // payer
	ToUserID        int64       `json:"to_user_id" validate:"required"`   // receiver
	Amount          money.Cents `json:"amount" validate:"required,gt=0"`
	PrincipalAmount money.Cents `json:"principal_amount,omitempty"` // defaults to amount
	SettlementDate  string      `json:"settlement_date,omitempty"`  // YYYY-MM-DD, defaults to today
	PaymentMethod   string      `json:"payment_method,omitempty"`
}

// SettlementResponse represents the response for a settlement
type SettlementResponse struct {
	ID              int64       `json:"id"`
	ProjectID       int64       `json:"project_id"`
	FromUserID      int64       `json:"from_user_id"`
	ToUserID        int64       `json:"to_user_id"`
	Amount          money.Cents `json:"amount"`
	PrincipalAmount money.Cents `json:"principal_amount"`
	SettlementDate  string      `json:"settlement_date"`
	PaymentMethod   string      `json:"payment_method,omitempty"`
	Status          string      `json:"status"`
	Reference       string      `json:"reference"`
	CreatedBy       int64       `json:"created_by"`
	CreatedAt       string      `json:"created_at"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO
func (s *Settlement) ToResponse() *SettlementResponse {
	return &SettlementResponse{
		ID:              s.ID,
		ProjectID:       s.ProjectID,
		FromUserID:      s.FromUserID,
		ToUserID:        s.ToUserID,
		Amount:          s.Amount,
		PrincipalAmount: s.PrincipalAmount,
		SettlementDate:  s.SettlementDate.Format("2006-01-02"),
		PaymentMethod:   s.PaymentMethod,
		Status:          string(s.Status),
		Reference:       s.Reference,
		CreatedBy:       s.CreatedBy,
		CreatedAt:       s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
