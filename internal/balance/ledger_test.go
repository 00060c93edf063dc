package balance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitledger/backend/internal/settings"
)

const projectID = int64(1)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestLedger() (*Ledger, *MemStore) {
	store := NewMemStore()
	return NewLedgerAt(store, fixedClock), store
}

// assertPair checks the normalization invariant for a pair: at most one
// direction exists, and wantAmount describes it (0 means no row at all).
func assertPair(t *testing.T, store Store, debtor, creditor, wantAmount int64) {
	t.Helper()
	ctx := context.Background()

	forward, err := store.Find(ctx, projectID, debtor, creditor)
	require.NoError(t, err)
	reverse, err := store.Find(ctx, projectID, creditor, debtor)
	require.NoError(t, err)

	assert.False(t, forward != nil && reverse != nil, "both directions stored for pair (%d,%d)", debtor, creditor)

	if wantAmount == 0 {
		assert.Nil(t, forward, "expected no row %d->%d", debtor, creditor)
		assert.Nil(t, reverse, "expected no row %d->%d", creditor, debtor)
		return
	}

	require.NotNil(t, forward, "expected row %d->%d", debtor, creditor)
	assert.Equal(t, wantAmount, forward.Amount)
	assert.Equal(t, wantAmount, forward.BaseAmount)
	assert.Greater(t, forward.Amount, int64(0))
}

func TestApplyDebtCreatesAndIncrements(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 500, nil))
	assertPair(t, store, 2, 1, 500)

	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 300, nil))
	assertPair(t, store, 2, 1, 800)
}

func TestApplyDebtShrinksReverse(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 1000, nil))
	// User 1 takes on 400 of counter-debt: 2 still owes 1, just less.
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 1, 2, 400, nil))
	assertPair(t, store, 2, 1, 600)
}

func TestApplyDebtClearsOnExactNet(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 1000, nil))
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 1, 2, 1000, nil))
	assertPair(t, store, 1, 2, 0)
}

func TestApplyDebtFlipsDirection(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	// A(=1) owes B(=2) 500, then a new debt of 800 from B to A:
	// net = 500 - 800 < 0, so the pair flips to B owing A 300.
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 1, 2, 500, nil))
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 800, nil))

	assertPair(t, store, 2, 1, 300)
}

func TestApplyDebtSettlementScenario(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	// A(=1) owes B(=2) 1000; A pays B 1000: ledger sees B owing A 1000,
	// which nets the pair to zero.
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 1, 2, 1000, nil))
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 1000, nil))
	assertPair(t, store, 1, 2, 0)

	// Partial payment: 1000 owed, 400 paid, 600 remains.
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 1, 2, 1000, nil))
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 400, nil))
	assertPair(t, store, 1, 2, 600)
}

func TestApplyDebtRoundTrip(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	// An expense split applied and then reversed restores the empty state,
	// including full row deletion.
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 2500, nil))
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 3, 1, 2500, nil))

	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 1, 2, 2500, nil))
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 1, 3, 2500, nil))

	assertPair(t, store, 2, 1, 0)
	assertPair(t, store, 3, 1, 0)
}

func TestApplyDebtRoundTripWithPriorBalance(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	// Pre-existing debt survives an expense round trip untouched.
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 700, nil))
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 1200, nil))
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 1, 2, 1200, nil))
	assertPair(t, store, 2, 1, 700)
}

func TestApplyDebtRejectsInvalidInput(t *testing.T) {
	ledger, _ := newTestLedger()
	ctx := context.Background()

	assert.ErrorIs(t, ledger.ApplyDebt(ctx, projectID, 1, 2, 0, nil), ErrNonPositiveAmount)
	assert.ErrorIs(t, ledger.ApplyDebt(ctx, projectID, 1, 2, -5, nil), ErrNonPositiveAmount)
	assert.ErrorIs(t, ledger.ApplyDebt(ctx, projectID, 1, 1, 100, nil), ErrSelfDebt)
}

func TestApplyDebtInterestStartDate(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	cfg := &settings.InterestSettings{
		EnableInterest:      true,
		InterestRate:        0.05,
		InterestStartMonths: 2,
	}

	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 1000, cfg))

	b, err := store.Find(ctx, projectID, 2, 1)
	require.NoError(t, err)
	require.NotNil(t, b.InterestStartDate)
	assert.Equal(t, fixedClock().AddDate(0, 2, 0), *b.InterestStartDate)

	// Incrementing an existing row leaves the interest clock alone.
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 500, cfg))
	after, err := store.Find(ctx, projectID, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, *b.InterestStartDate, *after.InterestStartDate)
}

func TestApplyDebtFlipResetsInterestClock(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	cfg := &settings.InterestSettings{
		EnableInterest:      true,
		InterestStartMonths: 1,
	}

	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	first := NewLedgerAt(store, func() time.Time { return early })
	require.NoError(t, first.ApplyDebt(ctx, projectID, 1, 2, 500, cfg))

	second := NewLedgerAt(store, func() time.Time { return late })
	require.NoError(t, second.ApplyDebt(ctx, projectID, 2, 1, 800, cfg))

	b, err := store.Find(ctx, projectID, 2, 1)
	require.NoError(t, err)
	require.NotNil(t, b.InterestStartDate)
	assert.Equal(t, late.AddDate(0, 1, 0), *b.InterestStartDate)
}

func TestApplyDebtNoInterestWhenDisabled(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	cfg := &settings.InterestSettings{EnableInterest: false, InterestStartMonths: 3}
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 1000, cfg))

	b, err := store.Find(ctx, projectID, 2, 1)
	require.NoError(t, err)
	assert.Nil(t, b.InterestStartDate)
}

func TestApplyDebtKeepsPairsIndependent(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 2, 1, 100, nil))
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 3, 1, 200, nil))
	require.NoError(t, ledger.ApplyDebt(ctx, projectID, 3, 2, 300, nil))

	assertPair(t, store, 2, 1, 100)
	assertPair(t, store, 3, 1, 200)
	assertPair(t, store, 3, 2, 300)

	rows, err := store.ListByProject(ctx, projectID)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	for _, b := range rows {
		assert.Greater(t, b.Amount, int64(0))
		assert.Equal(t, b.Amount, b.BaseAmount)
	}
}
