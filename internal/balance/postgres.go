package balance

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/splitledger/backend/internal/database"
	"github.com/splitledger/backend/internal/money"
)

// SQLStore implements Store against Postgres. Construct it around a *sql.Tx
// when the lookup-then-write sequence must be atomic; the FOR UPDATE in Find
// then blocks any concurrent transaction touching the same pair.
type SQLStore struct {
	db database.DBTX
}

// NewSQLStore creates a balance store bound to db, which may be a *sql.DB or
// an open *sql.Tx.
func NewSQLStore(db database.DBTX) *SQLStore {
	return &SQLStore{db: db}
}

// Find returns the balance row for the exact (from, to) direction, locked
// for update, or nil when no such row exists.
func (s *SQLStore) Find(ctx context.Context, projectID, fromUserID, toUserID int64) (*Balance, error) {
	query := `
		SELECT id, project_id, from_user_id, to_user_id, amount, base_amount, interest_start_date, updated_at
		FROM balances
		WHERE project_id = $1 AND from_user_id = $2 AND to_user_id = $3
		FOR UPDATE
	`

	b := &Balance{}
	err := s.db.QueryRowContext(ctx, query, projectID, fromUserID, toUserID).Scan(
		&b.ID,
		&b.ProjectID,
		&b.FromUserID,
		&b.ToUserID,
		&b.Amount,
		&b.BaseAmount,
		&b.InterestStartDate,
		&b.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find balance: %w", err)
	}

	return b, nil
}

// Insert creates a new balance row
func (s *SQLStore) Insert(ctx context.Context, b *Balance) error {
	query := `
		INSERT INTO balances (project_id, from_user_id, to_user_id, amount, base_amount, interest_start_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.ProjectID,
		b.FromUserID,
		b.ToUserID,
		b.Amount,
		b.BaseAmount,
		b.InterestStartDate,
	).Scan(&b.ID, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert balance: %w", err)
	}

	return nil
}

// UpdateAmount sets amount and baseAmount on an existing row
func (s *SQLStore) UpdateAmount(ctx context.Context, id int64, amount, baseAmount money.Cents) error {
	query := `UPDATE balances SET amount = $2, base_amount = $3, updated_at = NOW() WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id, amount, baseAmount)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("balance %d not found", id)
	}

	return nil
}

// Delete removes a balance row
func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM balances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete balance: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("balance %d not found", id)
	}

	return nil
}

// ListByProject returns all balance rows for a project
func (s *SQLStore) ListByProject(ctx context.Context, projectID int64) ([]*Balance, error) {
	query := `
		SELECT id, project_id, from_user_id, to_user_id, amount, base_amount, interest_start_date, updated_at
		FROM balances
		WHERE project_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	defer rows.Close()

	var balances []*Balance
	for rows.Next() {
		b := &Balance{}
		if err := rows.Scan(
			&b.ID,
			&b.ProjectID,
			&b.FromUserID,
			&b.ToUserID,
			&b.Amount,
			&b.BaseAmount,
			&b.InterestStartDate,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}
