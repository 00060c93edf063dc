package settings

import (
	"context"
	"errors"
	"log/slog"
)

// Common errors
var (
	ErrInvalidRate     = errors.New("interest rate must be between 0 and 1")
	ErrInvalidMonths   = errors.New("interest start months cannot be negative")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")
)

const defaultCurrency = "USD"

// Service handles interest settings business logic
type Service struct {
	repo *Repository
}

// NewService creates a new settings service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// GetForProject returns the project's interest settings, or nil when interest
// was never configured. Callers treat nil as interest disabled.
func (s *Service) GetForProject(ctx context.Context, projectID int64) (*InterestSettings, error) {
	return s.repo.GetByProjectID(ctx, projectID)
}

// Update upserts the project's interest settings
func (s *Service) Update(ctx context.Context, projectID int64, req *UpdateSettingsRequest) (*InterestSettings, error) {
	if req.InterestRate < 0 || req.InterestRate > 1 {
		return nil, ErrInvalidRate
	}
	if req.InterestStartMonths < 0 {
		return nil, ErrInvalidMonths
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}

	updated, err := s.repo.Upsert(ctx, projectID, req.EnableInterest, req.InterestRate, req.InterestStartMonths, currency)
	if err != nil {
		return nil, err
	}

	slog.Info("interest settings updated",
		"project_id", projectID,
		"enabled", updated.EnableInterest,
		"rate", updated.InterestRate,
		"start_months", updated.InterestStartMonths,
	)
	return updated, nil
}
