package activity

import (
	"context"
	"fmt"

	"github.com/splitledger/backend/internal/database"
)

// Repository handles activity event persistence
type Repository struct {
	db database.DBTX
}

// NewRepository creates a new activity repository
func NewRepository(db database.DBTX) *Repository {
	return &Repository{db: db}
}

// Insert appends an event and fills in its ID and CreatedAt
func (r *Repository) Insert(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO activity_events (project_id, actor_id, type, ref_id, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		e.ProjectID,
		e.ActorID,
		e.Type,
		e.RefID,
		e.Message,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert activity event: %w", err)
	}

	return nil
}

// ListByProjectID retrieves events for a project, newest first
func (r *Repository) ListByProjectID(ctx context.Context, projectID int64, limit, offset int) ([]*Event, error) {
	query := `
		SELECT id, project_id, actor_id, type, ref_id, message, created_at
		FROM activity_events
		WHERE project_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity events: %w", err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(
			&e.ID,
			&e.ProjectID,
			&e.ActorID,
			&e.Type,
			&e.RefID,
			&e.Message,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
