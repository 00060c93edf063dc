package settlement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/splitledger/backend/internal/database"
)

// Repository handles settlement persistence. Construct it around a *sql.Tx
// to scope all calls to that transaction.
type Repository struct {
	db database.DBTX
}

// NewRepository creates a new settlement repository
func NewRepository(db database.DBTX) *Repository {
	return &Repository{db: db}
}

// Insert creates a new settlement row and fills in its ID and CreatedAt
func (r *Repository) Insert(ctx context.Context, s *Settlement) error {
	query := `
		INSERT INTO settlements (project_id, from_user_id, to_user_id, amount, principal_amount, settlement_date, payment_method, status, reference, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		s.ProjectID,
		s.FromUserID,
		s.ToUserID,
		s.Amount,
		s.PrincipalAmount,
		s.SettlementDate,
		s.PaymentMethod,
		s.Status,
		s.Reference,
		s.CreatedBy,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create settlement: %w", err)
	}

	return nil
}

// GetByID retrieves a settlement by its ID, or nil when absent
func (r *Repository) GetByID(ctx context.Context, id int64) (*Settlement, error) {
	query := `
		SELECT id, project_id, from_user_id, to_user_id, amount, principal_amount, settlement_date, payment_method, status, reference, created_by, created_at
		FROM settlements
		WHERE id = $1
	`

	s := &Settlement{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&s.ProjectID,
		&s.FromUserID,
		&s.ToUserID,
		&s.Amount,
		&s.PrincipalAmount,
		&s.SettlementDate,
		&s.PaymentMethod,
		&s.Status,
		&s.Reference,
		&s.CreatedBy,
		&s.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}

	return s, nil
}

// ListByProjectID retrieves settlements for a project, newest first
func (r *Repository) ListByProjectID(ctx context.Context, projectID int64, limit, offset int) ([]*Settlement, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM settlements WHERE project_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, projectID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count settlements: %w", err)
	}

	query := `
		SELECT id, project_id, from_user_id, to_user_id, amount, principal_amount, settlement_date, payment_method, status, reference, created_by, created_at
		FROM settlements
		WHERE project_id = $1
		ORDER BY settlement_date DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*Settlement
	for rows.Next() {
		s := &Settlement{}
		if err := rows.Scan(
			&s.ID,
			&s.ProjectID,
			&s.FromUserID,
			&s.ToUserID,
			&s.Amount,
			&s.PrincipalAmount,
			&s.SettlementDate,
			&s.PaymentMethod,
			&s.Status,
			&s.Reference,
			&s.CreatedBy,
			&s.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}

	return settlements, total, rows.Err()
}
