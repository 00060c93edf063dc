package settlement

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/splitledger/backend/internal/activity"
	"github.com/splitledger/backend/internal/balance"
	"github.com/splitledger/backend/internal/database"
	"github.com/splitledger/backend/internal/metrics"
	"github.com/splitledger/backend/internal/money"
	"github.com/splitledger/backend/internal/settings"
)

// Common errors
var (
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrCannotSettleSelf   = errors.New("cannot settle up with yourself")
	ErrNonPositiveAmount  = errors.New("settlement amount must be positive")
)

// Service handles settlement business logic
type Service struct {
	db       *sql.DB
	settings *settings.Service
	balances *balance.Service
}

// NewService creates a new settlement service
func NewService(db *sql.DB, settingsService *settings.Service, balanceService *balance.Service) *Service {
	return &Service{
		db:       db,
		settings: settingsService,
		balances: balanceService,
	}
}

// SettleUp records a payment from payer to receiver and nets it against the
// pair's balance. The ledger sees the payment as the receiver taking on a
// debt to the payer: if the payer owed X and pays A <= X, X-A remains; if
// A > X, the direction flips and the receiver owes A-X back.
func (s *Service) SettleUp(ctx context.Context, creatorID int64, req *SettleUpRequest) (*Settlement, error) {
	if req.FromUserID == req.ToUserID {
		return nil, ErrCannotSettleSelf
	}
	if req.Amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	date, err := parseDate(req.SettlementDate)
	if err != nil {
		return nil, err
	}

	principal := req.PrincipalAmount
	if principal == 0 {
		principal = req.Amount
	}

	cfg, err := s.settings.GetForProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	stl := &Settlement{
		ProjectID:       req.ProjectID,
		FromUserID:      req.FromUserID,
		ToUserID:        req.ToUserID,
		Amount:          req.Amount,
		PrincipalAmount: principal,
		SettlementDate:  date,
		PaymentMethod:   req.PaymentMethod,
		Status:          SettlementStatusVerified,
		Reference:       uuid.NewString(),
		CreatedBy:       creatorID,
	}

	err = database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := NewRepository(tx).Insert(ctx, stl); err != nil {
			return err
		}

		ledger := balance.NewLedger(balance.NewSQLStore(tx))
		if err := ledger.ApplyDebt(ctx, req.ProjectID, req.ToUserID, req.FromUserID, req.Amount, cfg); err != nil {
			return err
		}

		event := &activity.Event{
			ProjectID: req.ProjectID,
			ActorID:   creatorID,
			Type:      activity.EventSettlementRecorded,
			RefID:     stl.ID,
			Message:   fmt.Sprintf("payment of %s recorded", money.Format(stl.Amount)),
		}
		return activity.NewRepository(tx).Insert(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	s.balances.InvalidateProject(ctx, req.ProjectID)
	metrics.SettlementsRecorded.Inc()
	slog.Info("settlement recorded",
		"settlement_id", stl.ID,
		"project_id", req.ProjectID,
		"from", req.FromUserID,
		"to", req.ToUserID,
		"amount", req.Amount,
	)

	return stl, nil
}

// GetByID retrieves a settlement by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Settlement, error) {
	stl, err := NewRepository(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stl == nil {
		return nil, ErrSettlementNotFound
	}
	return stl, nil
}

// ListByProjectID retrieves settlements for a project
func (s *Service) ListByProjectID(ctx context.Context, projectID int64, page, perPage int) ([]*Settlement, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return NewRepository(s.db).ListByProjectID(ctx, projectID, perPage, offset)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}
