package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/splitledger/backend/internal/database"
)

// Repository handles interest settings persistence
type Repository struct {
	db database.DBTX
}

// NewRepository creates a new settings repository
func NewRepository(db database.DBTX) *Repository {
	return &Repository{db: db}
}

// GetByProjectID retrieves the interest settings for a project, or nil when
// the project has never configured interest.
func (r *Repository) GetByProjectID(ctx context.Context, projectID int64) (*InterestSettings, error) {
	query := `
		SELECT id, project_id, enable_interest, interest_rate, interest_start_months, currency, updated_at
		FROM interest_settings
		WHERE project_id = $1
	`

	s := &InterestSettings{}
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(
		&s.ID,
		&s.ProjectID,
		&s.EnableInterest,
		&s.InterestRate,
		&s.InterestStartMonths,
		&s.Currency,
		&s.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interest settings: %w", err)
	}

	return s, nil
}

// Upsert inserts or replaces the interest settings for a project
func (r *Repository) Upsert(ctx context.Context, projectID int64, enable bool, rate float64, startMonths int, currency string) (*InterestSettings, error) {
	query := `
		INSERT INTO interest_settings (project_id, enable_interest, interest_rate, interest_start_months, currency, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (project_id) DO UPDATE
		SET enable_interest = EXCLUDED.enable_interest,
		    interest_rate = EXCLUDED.interest_rate,
		    interest_start_months = EXCLUDED.interest_start_months,
		    currency = EXCLUDED.currency,
		    updated_at = NOW()
		RETURNING id, project_id, enable_interest, interest_rate, interest_start_months, currency, updated_at
	`

	s := &InterestSettings{}
	err := r.db.QueryRowContext(ctx, query, projectID, enable, rate, startMonths, currency).Scan(
		&s.ID,
		&s.ProjectID,
		&s.EnableInterest,
		&s.InterestRate,
		&s.InterestStartMonths,
		&s.Currency,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert interest settings: %w", err)
	}

	return s, nil
}
