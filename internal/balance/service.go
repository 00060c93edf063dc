package balance

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/splitledger/backend/internal/cache"
	"github.com/splitledger/backend/internal/interest"
	"github.com/splitledger/backend/internal/metrics"
	"github.com/splitledger/backend/internal/money"
	"github.com/splitledger/backend/internal/settings"
)

// balanceCacheTTL bounds how stale a cached row set can get if an
// invalidation is lost.
const balanceCacheTTL = 30 * time.Second

// Service exposes the read side of the ledger. Raw rows may come from the
// cache; interest is always computed after the fetch so displayed totals
// keep moving with the clock.
type Service struct {
	store    Store
	settings *settings.Service
	cache    cache.Cache
	now      func() time.Time
}

// NewService creates a new balance service
func NewService(store Store, settingsService *settings.Service, c cache.Cache) *Service {
	return &Service{
		store:    store,
		settings: settingsService,
		cache:    c,
		now:      time.Now,
	}
}

// GetBalances returns every balance in the project, annotated with interest
// accrued as of now and the resulting total owed. Nothing is written back.
func (s *Service) GetBalances(ctx context.Context, projectID int64) ([]*WithInterest, error) {
	rows, err := s.cachedRows(ctx, projectID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.settings.GetForProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	annotated := make([]*WithInterest, len(rows))
	for i, b := range rows {
		annotated[i] = Annotate(b, cfg, now)
	}
	return annotated, nil
}

// InvalidateProject drops the cached rows for a project. Every
// ledger-mutating operation calls this after its transaction commits.
func (s *Service) InvalidateProject(ctx context.Context, projectID int64) {
	if err := s.cache.Delete(ctx, balancesKey(projectID)); err != nil {
		slog.Warn("failed to invalidate balance cache", "project_id", projectID, "error", err)
	}
}

func (s *Service) cachedRows(ctx context.Context, projectID int64) ([]*Balance, error) {
	key := balancesKey(projectID)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var rows []*Balance
		if err := json.Unmarshal(raw, &rows); err == nil {
			metrics.BalanceCacheHits.Inc()
			return rows, nil
		}
		// Unreadable entry: fall through to the store and overwrite it.
	}

	rows, err := s.store.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(rows); err == nil {
		if err := s.cache.Set(ctx, key, raw, balanceCacheTTL); err != nil {
			slog.Warn("failed to cache balances", "project_id", projectID, "error", err)
		}
	}
	return rows, nil
}

func balancesKey(projectID int64) string {
	return fmt.Sprintf("balances:%d", projectID)
}

// Annotate computes the read-time interest view of a balance row. When the
// row has no interest start date (legacy rows, or interest enabled after the
// debt existed) a synthetic start of updatedAt plus the grace period is
// derived for the read only.
func Annotate(b *Balance, cfg *settings.InterestSettings, now time.Time) *WithInterest {
	out := &WithInterest{
		Balance:     *b,
		TotalAmount: b.BaseAmount,
	}
	if cfg == nil || !cfg.EnableInterest {
		return out
	}

	start := b.InterestStartDate
	if start == nil {
		derived := money.AddMonths(b.UpdatedAt, cfg.InterestStartMonths)
		start = &derived
	}

	out.AccruedInterest = interest.Accrued(b.BaseAmount, cfg.InterestRate, *start, now)
	out.TotalAmount = b.BaseAmount + out.AccruedInterest
	return out
}
