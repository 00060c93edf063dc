package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/splitledger/backend/internal/database"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrInvalidName         = errors.New("project name is required")
	ErrMemberAlreadyExists = errors.New("user is already a member of this project")
	ErrNotMember           = errors.New("user is not a member of this project")
	ErrInvalidRole         = errors.New("role must be ADMIN or MEMBER")
)

type Service struct {
	db   *sql.DB
	repo *Repository
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db, repo: NewRepository(db)}
}

// CreateProject inserts the project and enrolls the creator as an admin
// member in the same transaction.
func (s *Service) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	p := &Project{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatedBy:   req.CreatedBy,
	}

	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := NewRepository(tx)
		if err := repo.Insert(ctx, p); err != nil {
			return err
		}
		creator := &Member{ProjectID: p.ID, UserID: req.CreatedBy, Role: RoleAdmin}
		return repo.InsertMember(ctx, creator)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

func (s *Service) GetProject(ctx context.Context, id int64) (*Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProjectNotFound
	}
	return p, nil
}

func (s *Service) ListProjects(ctx context.Context, userID int64, limit, offset int) ([]Project, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByUserID(ctx, userID, limit, offset)
}

func (s *Service) AddMember(ctx context.Context, projectID int64, req AddMemberRequest) (*Member, error) {
	role := req.Role
	if role == "" {
		role = RoleMember
	}
	if role != RoleAdmin && role != RoleMember {
		return nil, ErrInvalidRole
	}

	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProjectNotFound
	}

	exists, err := s.repo.IsMember(ctx, projectID, req.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrMemberAlreadyExists
	}

	m := &Member{ProjectID: projectID, UserID: req.UserID, Role: role}
	if err := s.repo.InsertMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetMembers(ctx context.Context, projectID int64) ([]Member, error) {
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProjectNotFound
	}
	return s.repo.GetMembers(ctx, projectID)
}

// RequireMember returns ErrNotMember when the user does not belong to the project.
func (s *Service) RequireMember(ctx context.Context, projectID, userID int64) error {
	exists, err := s.repo.IsMember(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotMember
	}
	return nil
}
