package settings

// UpdateSettingsRequest represents the request to update a project's interest settings
type UpdateSettingsRequest struct {
	EnableInterest      bool    `json:"enable_interest"`
	InterestRate        float64 `json:"interest_rate" validate:"gte=0,lte=1"`
	InterestStartMonths int     `json:"interest_start_months" validate:"gte=0"`
	Currency            string  `json:"currency" validate:"omitempty,len=3"`
}

// SettingsResponse represents the response for interest settings
type SettingsResponse struct {
	ProjectID           int64   `json:"project_id"`
	EnableInterest      bool    `json:"enable_interest"`
	InterestRate        float64 `json:"interest_rate"`
	InterestStartMonths int     `json:"interest_start_months"`
	Currency            string  `json:"currency"`
	UpdatedAt           string  `json:"updated_at"`
}

// ToResponse converts an InterestSettings model to a SettingsResponse DTO
func (s *InterestSettings) ToResponse() *SettingsResponse {
	return &SettingsResponse{
		ProjectID:           s.ProjectID,
		EnableInterest:      s.EnableInterest,
		InterestRate:        s.InterestRate,
		InterestStartMonths: s.InterestStartMonths,
		Currency:            s.Currency,
		UpdatedAt:           s.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
