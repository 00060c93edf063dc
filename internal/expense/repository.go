package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/splitledger/backend/internal/database"
	"github.com/splitledger/backend/internal/money"
)

// Repository handles expense and split persistence. Construct it around a
// *sql.Tx to scope all calls to that transaction.
type Repository struct {
	db database.DBTX
}

// NewRepository creates a new expense repository
func NewRepository(db database.DBTX) *Repository {
	return &Repository{db: db}
}

// Insert creates a new expense row and fills in its ID and CreatedAt
func (r *Repository) Insert(ctx context.Context, e *Expense) error {
	query := `
		INSERT INTO expenses (project_id, paid_by, description, category, amount, date, split_type, notes, receipt_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		e.ProjectID,
		e.PaidBy,
		e.Description,
		e.Category,
		e.Amount,
		e.Date,
		e.SplitType,
		e.Notes,
		e.ReceiptURL,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// InsertSplit creates a split row for an expense
func (r *Repository) InsertSplit(ctx context.Context, expenseID, userID int64, amount money.Cents) (*Split, error) {
	query := `
		INSERT INTO expense_splits (expense_id, user_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id, expense_id, user_id, amount
	`

	s := &Split{}
	err := r.db.QueryRowContext(ctx, query, expenseID, userID, amount).Scan(
		&s.ID,
		&s.ExpenseID,
		&s.UserID,
		&s.Amount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create split: %w", err)
	}

	return s, nil
}

// GetByID retrieves an expense by its ID, or nil when absent
func (r *Repository) GetByID(ctx context.Context, id int64) (*Expense, error) {
	query := `
		SELECT id, project_id, paid_by, description, category, amount, date, split_type, notes, receipt_url, created_at
		FROM expenses
		WHERE id = $1
	`

	e := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.ProjectID,
		&e.PaidBy,
		&e.Description,
		&e.Category,
		&e.Amount,
		&e.Date,
		&e.SplitType,
		&e.Notes,
		&e.ReceiptURL,
		&e.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

// GetSplits retrieves all splits for an expense
func (r *Repository) GetSplits(ctx context.Context, expenseID int64) ([]*Split, error) {
	query := `
		SELECT id, expense_id, user_id, amount
		FROM expense_splits
		WHERE expense_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	var splits []*Split
	for rows.Next() {
		s := &Split{}
		if err := rows.Scan(&s.ID, &s.ExpenseID, &s.UserID, &s.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, s)
	}

	return splits, rows.Err()
}

// ListByProjectID retrieves expenses for a project, newest first
func (r *Repository) ListByProjectID(ctx context.Context, projectID int64, limit, offset int) ([]*Expense, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM expenses WHERE project_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, projectID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT id, project_id, paid_by, description, category, amount, date, split_type, notes, receipt_url, created_at
		FROM expenses
		WHERE project_id = $1
		ORDER BY date DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e := &Expense{}
		if err := rows.Scan(
			&e.ID,
			&e.ProjectID,
			&e.PaidBy,
			&e.Description,
			&e.Category,
			&e.Amount,
			&e.Date,
			&e.SplitType,
			&e.Notes,
			&e.ReceiptURL,
			&e.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, total, rows.Err()
}

// Delete removes an expense; its splits cascade at the schema level
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}
