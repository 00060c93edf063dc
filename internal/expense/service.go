package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/splitledger/backend/internal/activity"
	"github.com/splitledger/backend/internal/balance"
	"github.com/splitledger/backend/internal/database"
	"github.com/splitledger/backend/internal/expense/split"
	"github.com/splitledger/backend/internal/metrics"
	"github.com/splitledger/backend/internal/money"
	"github.com/splitledger/backend/internal/settings"
)

// Common errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrNotPayer        = errors.New("only the payer can delete an expense")
)

// Service handles expense business logic. Every mutation runs as one
// transaction covering the expense rows, the split rows and the ledger
// applies, so a failure at any step leaves nothing behind.
type Service struct {
	db           *sql.DB
	settings     *settings.Service
	balances     *balance.Service
	splitFactory *split.Factory
}

// NewService creates a new expense service with dependencies injected
func NewService(db *sql.DB, settingsService *settings.Service, balanceService *balance.Service, splitFactory *split.Factory) *Service {
	return &Service{
		db:           db,
		settings:     settingsService,
		balances:     balanceService,
		splitFactory: splitFactory,
	}
}

// CreateExpense creates an expense, persists its splits and drives the
// ledger: every non-payer participant ends up owing the payer their share.
func (s *Service) CreateExpense(ctx context.Context, creatorID int64, req *CreateExpenseRequest) (*ExpenseWithSplits, error) {
	strategy, err := s.splitFactory.CreateFromString(req.SplitType)
	if err != nil {
		return nil, err
	}

	inputs := make([]split.SplitInput, len(req.Participants))
	for i, p := range req.Participants {
		inputs[i] = p.ToSplitInput()
	}

	outputs, err := strategy.Calculate(req.Amount, inputs)
	if err != nil {
		return nil, err
	}

	paidBy := req.PaidBy
	if paidBy == 0 {
		paidBy = creatorID
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	cfg, err := s.settings.GetForProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	result := &ExpenseWithSplits{}
	err = database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := NewRepository(tx)
		ledger := balance.NewLedger(balance.NewSQLStore(tx))

		e := &Expense{
			ProjectID:   req.ProjectID,
			PaidBy:      paidBy,
			Description: req.Description,
			Category:    req.Category,
			Amount:      req.Amount,
			Date:        date,
			SplitType:   req.SplitType,
			Notes:       req.Notes,
			ReceiptURL:  req.ReceiptURL,
		}
		if err := repo.Insert(ctx, e); err != nil {
			return err
		}

		splits := make([]*Split, len(outputs))
		for i, out := range outputs {
			sp, err := repo.InsertSplit(ctx, e.ID, out.UserID, out.AmountOwed)
			if err != nil {
				return err
			}
			splits[i] = sp

			// The payer's own share is stored for audit only; zero shares
			// carry no debt.
			if out.UserID == paidBy || out.AmountOwed <= 0 {
				continue
			}
			if err := ledger.ApplyDebt(ctx, req.ProjectID, out.UserID, paidBy, out.AmountOwed, cfg); err != nil {
				return err
			}
		}

		event := &activity.Event{
			ProjectID: req.ProjectID,
			ActorID:   creatorID,
			Type:      activity.EventExpenseCreated,
			RefID:     e.ID,
			Message:   fmt.Sprintf("expense %q of %s added", e.Description, money.Format(e.Amount)),
		}
		if err := activity.NewRepository(tx).Insert(ctx, event); err != nil {
			return err
		}

		result.Expense = e
		result.Splits = splits
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.balances.InvalidateProject(ctx, req.ProjectID)
	metrics.ExpensesCreated.WithLabelValues(req.SplitType).Inc()
	slog.Info("expense created",
		"expense_id", result.Expense.ID,
		"project_id", req.ProjectID,
		"paid_by", paidBy,
		"amount", result.Expense.Amount,
		"split_type", req.SplitType,
	)

	return result, nil
}

// GetExpenseByID retrieves an expense with its splits
func (s *Service) GetExpenseByID(ctx context.Context, id int64) (*ExpenseWithSplits, error) {
	repo := NewRepository(s.db)

	e, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExpenseNotFound
	}

	splits, err := repo.GetSplits(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithSplits{Expense: e, Splits: splits}, nil
}

// ListExpensesByProjectID retrieves expenses for a project
func (s *Service) ListExpensesByProjectID(ctx context.Context, projectID int64, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return NewRepository(s.db).ListByProjectID(ctx, projectID, perPage, offset)
}

// DeleteExpense undoes an expense: every split is re-applied to the ledger
// in the inverse direction, cancelling the original debt against whatever
// the pair's balance has since become, and only then is the expense removed.
func (s *Service) DeleteExpense(ctx context.Context, id, userID int64) error {
	e, err := NewRepository(s.db).GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return ErrExpenseNotFound
	}
	if e.PaidBy != userID {
		return ErrNotPayer
	}

	cfg, err := s.settings.GetForProject(ctx, e.ProjectID)
	if err != nil {
		return err
	}

	err = database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := NewRepository(tx)
		ledger := balance.NewLedger(balance.NewSQLStore(tx))

		splits, err := repo.GetSplits(ctx, id)
		if err != nil {
			return err
		}

		for _, sp := range splits {
			if sp.UserID == e.PaidBy || sp.Amount <= 0 {
				continue
			}
			if err := ledger.ApplyDebt(ctx, e.ProjectID, e.PaidBy, sp.UserID, sp.Amount, cfg); err != nil {
				return err
			}
		}

		event := &activity.Event{
			ProjectID: e.ProjectID,
			ActorID:   userID,
			Type:      activity.EventExpenseDeleted,
			RefID:     e.ID,
			Message:   fmt.Sprintf("expense %q of %s deleted", e.Description, money.Format(e.Amount)),
		}
		if err := activity.NewRepository(tx).Insert(ctx, event); err != nil {
			return err
		}

		return repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.balances.InvalidateProject(ctx, e.ProjectID)
	metrics.ExpensesDeleted.Inc()
	slog.Info("expense deleted", "expense_id", id, "project_id", e.ProjectID)

	return nil
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
