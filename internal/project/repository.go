package project

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/splitledger/backend/internal/database"
)

type Repository struct {
	db database.DBTX
}

func NewRepository(db database.DBTX) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, p *Project) error {
	query := `
		INSERT INTO projects (name, description, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.CreatedBy).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Project, error) {
	query := `
		SELECT id, name, description, created_by, created_at, updated_at
		FROM projects
		WHERE id = $1`

	var p Project
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &p, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]Project, error) {
	query := `
		SELECT p.id, p.name, p.description, p.created_by, p.created_at, p.updated_at
		FROM projects p
		JOIN project_members pm ON pm.project_id = p.id
		WHERE pm.user_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *Repository) InsertMember(ctx context.Context, m *Member) error {
	query := `
		INSERT INTO project_members (project_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, joined_at`

	err := r.db.QueryRowContext(ctx, query, m.ProjectID, m.UserID, m.Role).
		Scan(&m.ID, &m.JoinedAt)
	if err != nil {
		return fmt.Errorf("failed to insert project member: %w", err)
	}
	return nil
}

func (r *Repository) GetMembers(ctx context.Context, projectID int64) ([]Member, error) {
	query := `
		SELECT id, project_id, user_id, role, joined_at
		FROM project_members
		WHERE project_id = $1
		ORDER BY joined_at`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *Repository) IsMember(ctx context.Context, projectID, userID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM project_members
			WHERE project_id = $1 AND user_id = $2
		)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, projectID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check project membership: %w", err)
	}
	return exists, nil
}
