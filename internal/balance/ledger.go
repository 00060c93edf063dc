package balance

import (
	"context"
	"errors"
	"time"

	"github.com/splitledger/backend/internal/metrics"
	"github.com/splitledger/backend/internal/money"
	"github.com/splitledger/backend/internal/settings"
)

// Common errors
var (
	ErrNonPositiveAmount = errors.New("debt amount must be positive")
	ErrSelfDebt          = errors.New("debtor and creditor cannot be the same user")
)

// Ledger is the single mutation primitive over the balance table. Expense
// creation, settlement and expense reversal are all expressed as sequences
// of ApplyDebt calls; nothing else writes balance rows.
//
// Construct it around a Store bound to the caller's transaction so all of
// an operation's applies commit or roll back together.
type Ledger struct {
	store Store
	now   func() time.Time
}

// NewLedger creates a ledger over the given store
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// NewLedgerAt creates a ledger with a fixed clock, for tests
func NewLedgerAt(store Store, now func() time.Time) *Ledger {
	return &Ledger{store: store, now: now}
}

// ApplyDebt records that debtor owes creditor an additional amount, keeping
// the pair normalized: at most one direction stored, amount strictly
// positive, a zero balance represented by row absence.
//
//   - If a row debtor->creditor exists, its amount grows; the interest
//     clock is left untouched.
//   - If the opposite row exists, the new debt nets against it: the row
//     shrinks, disappears, or flips direction. A flip starts a brand-new
//     debt, so it gets a fresh interest start date.
//   - Otherwise a new row is created.
//
// cfg may be nil when the project has no interest configured.
func (l *Ledger) ApplyDebt(ctx context.Context, projectID, debtorID, creditorID int64, amount money.Cents, cfg *settings.InterestSettings) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if debtorID == creditorID {
		return ErrSelfDebt
	}

	forward, err := l.store.Find(ctx, projectID, debtorID, creditorID)
	if err != nil {
		return err
	}
	if forward != nil {
		if err := l.store.UpdateAmount(ctx, forward.ID, forward.Amount+amount, forward.BaseAmount+amount); err != nil {
			return err
		}
		metrics.LedgerApplies.WithLabelValues("incremented").Inc()
		return nil
	}

	reverse, err := l.store.Find(ctx, projectID, creditorID, debtorID)
	if err != nil {
		return err
	}
	if reverse == nil {
		b := &Balance{
			ProjectID:         projectID,
			FromUserID:        debtorID,
			ToUserID:          creditorID,
			Amount:            amount,
			BaseAmount:        amount,
			InterestStartDate: l.interestStartDate(cfg),
		}
		if err := l.store.Insert(ctx, b); err != nil {
			return err
		}
		metrics.LedgerApplies.WithLabelValues("created").Inc()
		return nil
	}

	net := reverse.Amount - amount
	switch {
	case net > 0:
		// Creditor is still net-owed by debtor, just less.
		if err := l.store.UpdateAmount(ctx, reverse.ID, net, net); err != nil {
			return err
		}
		metrics.LedgerApplies.WithLabelValues("reduced").Inc()
	case net == 0:
		if err := l.store.Delete(ctx, reverse.ID); err != nil {
			return err
		}
		metrics.LedgerApplies.WithLabelValues("cleared").Inc()
	default:
		// Direction flips: the old debt is consumed and the remainder is a
		// new debt the other way, with a fresh interest clock.
		if err := l.store.Delete(ctx, reverse.ID); err != nil {
			return err
		}
		b := &Balance{
			ProjectID:         projectID,
			FromUserID:        debtorID,
			ToUserID:          creditorID,
			Amount:            -net,
			BaseAmount:        -net,
			InterestStartDate: l.interestStartDate(cfg),
		}
		if err := l.store.Insert(ctx, b); err != nil {
			return err
		}
		metrics.LedgerApplies.WithLabelValues("flipped").Inc()
	}

	return nil
}

// interestStartDate computes the grace-period end for a newly created row.
// Nil when the project has interest disabled or unconfigured.
func (l *Ledger) interestStartDate(cfg *settings.InterestSettings) *time.Time {
	if cfg == nil || !cfg.EnableInterest {
		return nil
	}
	start := money.AddMonths(l.now().UTC(), cfg.InterestStartMonths)
	return &start
}
