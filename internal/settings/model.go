package settings

import "time"

// InterestSettings holds the per-project interest configuration. At most one
// row exists per project; writes go through an upsert.
type InterestSettings struct {
	ID                  int64     `json:"id"`
	ProjectID           int64     `json:"project_id"`
	EnableInterest      bool      `json:"enable_interest"`
	InterestRate        float64   `json:"interest_rate"`         // annual, e.g. 0.05 = 5%
	InterestStartMonths int       `json:"interest_start_months"` // grace period before accrual begins
	Currency            string    `json:"currency"`
	UpdatedAt           time.Time `json:"updated_at"`
}
