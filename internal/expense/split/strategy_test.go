package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 { return &v }

func f64(v float64) *float64 { return &v }

func amounts(outputs []SplitOutput) []int64 {
	out := make([]int64, len(outputs))
	for i, o := range outputs {
		out[i] = o.AmountOwed
	}
	return out
}

func sum(outputs []SplitOutput) int64 {
	var s int64
	for _, o := range outputs {
		s += o.AmountOwed
	}
	return s
}

func TestFactory(t *testing.T) {
	f := NewSplitStrategyFactory()

	for _, st := range []SplitType{SplitTypeEqual, SplitTypeExact, SplitTypePercentage, SplitTypeShares} {
		strategy, err := f.Create(st)
		require.NoError(t, err)
		assert.Equal(t, st, strategy.Type())
	}

	_, err := f.CreateFromString("RANDOM")
	assert.Error(t, err)
}

func TestEqualStrategy(t *testing.T) {
	s := &EqualStrategy{}

	tests := []struct {
		name         string
		total        int64
		participants int
		want         []int64
		wantErr      error
	}{
		{"remainder goes to first participants in order", 100, 3, []int64{34, 33, 33}, nil},
		{"even division has no remainder", 3000, 3, []int64{1000, 1000, 1000}, nil},
		{"two-cent remainder", 1001, 3, []int64{334, 334, 333}, nil},
		{"single participant takes all", 999, 1, []int64{999}, nil},
		{"amount smaller than group", 2, 3, []int64{1, 1, 0}, nil},
		{"zero amount rejected", 0, 2, nil, ErrNonPositiveAmount},
		{"negative amount rejected", -100, 2, nil, ErrNonPositiveAmount},
		{"no participants rejected", 100, 0, nil, ErrNoParticipants},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participants := make([]SplitInput, tt.participants)
			for i := range participants {
				participants[i] = SplitInput{UserID: int64(i + 1)}
			}

			outputs, err := s.Calculate(tt.total, participants)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, amounts(outputs))
			assert.Equal(t, tt.total, sum(outputs))
		})
	}
}

func TestExactStrategy(t *testing.T) {
	s := &ExactStrategy{}

	t.Run("passes through exact cents", func(t *testing.T) {
		outputs, err := s.Calculate(1000, []SplitInput{
			{UserID: 1, Amount: i64(700)},
			{UserID: 2, Amount: i64(300)},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{700, 300}, amounts(outputs))
	})

	t.Run("rejects sum mismatch", func(t *testing.T) {
		_, err := s.Calculate(1000, []SplitInput{
			{UserID: 1, Amount: i64(700)},
			{UserID: 2, Amount: i64(299)},
		})
		assert.ErrorIs(t, err, ErrInvalidExactAmounts)
	})

	t.Run("rejects missing amount", func(t *testing.T) {
		_, err := s.Calculate(1000, []SplitInput{{UserID: 1, Amount: i64(1000)}, {UserID: 2}})
		assert.ErrorIs(t, err, ErrMissingExactAmount)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := s.Calculate(1000, []SplitInput{
			{UserID: 1, Amount: i64(1100)},
			{UserID: 2, Amount: i64(-100)},
		})
		assert.ErrorIs(t, err, ErrNegativeShare)
	})

	t.Run("zero share is allowed", func(t *testing.T) {
		outputs, err := s.Calculate(1000, []SplitInput{
			{UserID: 1, Amount: i64(1000)},
			{UserID: 2, Amount: i64(0)},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{1000, 0}, amounts(outputs))
	})
}

func TestPercentageStrategy(t *testing.T) {
	s := &PercentageStrategy{}

	t.Run("splits by percentage with floor and remainder", func(t *testing.T) {
		// 1001 * 1/3% yields 333.66 -> floors, remainder to the front.
		outputs, err := s.Calculate(1001, []SplitInput{
			{UserID: 1, Percentage: f64(33.34)},
			{UserID: 2, Percentage: f64(33.33)},
			{UserID: 3, Percentage: f64(33.33)},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1001), sum(outputs))
		for _, o := range outputs {
			assert.GreaterOrEqual(t, o.AmountOwed, int64(333))
		}
	})

	t.Run("clean percentages split exactly", func(t *testing.T) {
		outputs, err := s.Calculate(10000, []SplitInput{
			{UserID: 1, Percentage: f64(50)},
			{UserID: 2, Percentage: f64(30)},
			{UserID: 3, Percentage: f64(20)},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{5000, 3000, 2000}, amounts(outputs))
	})

	t.Run("tolerated sum just over 100 never invents cents", func(t *testing.T) {
		// 50.004 + 50.004 = 100.008, within tolerance. Floored shares of a
		// large amount overshoot the total; the excess must be clawed back.
		outputs, err := s.Calculate(1000000, []SplitInput{
			{UserID: 1, Percentage: f64(50.004)},
			{UserID: 2, Percentage: f64(50.004)},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1000000), sum(outputs))
		assert.Equal(t, []int64{500040, 499960}, amounts(outputs))
	})

	t.Run("tolerated sum just under 100 never loses cents", func(t *testing.T) {
		outputs, err := s.Calculate(1000000, []SplitInput{
			{UserID: 1, Percentage: f64(49.996)},
			{UserID: 2, Percentage: f64(49.996)},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1000000), sum(outputs))
		assert.Equal(t, []int64{500000, 500000}, amounts(outputs))
	})

	t.Run("rejects percentages not summing to 100", func(t *testing.T) {
		_, err := s.Calculate(1000, []SplitInput{
			{UserID: 1, Percentage: f64(50)},
			{UserID: 2, Percentage: f64(40)},
		})
		assert.ErrorIs(t, err, ErrInvalidPercentages)
	})

	t.Run("rejects out-of-range percentage", func(t *testing.T) {
		_, err := s.Calculate(1000, []SplitInput{
			{UserID: 1, Percentage: f64(150)},
			{UserID: 2, Percentage: f64(-50)},
		})
		assert.ErrorIs(t, err, ErrPercentageOutOfRange)
	})

	t.Run("rejects missing percentage", func(t *testing.T) {
		_, err := s.Calculate(1000, []SplitInput{{UserID: 1, Percentage: f64(100)}, {UserID: 2}})
		assert.ErrorIs(t, err, ErrMissingPercentage)
	})
}

func TestSharesStrategy(t *testing.T) {
	s := &SharesStrategy{}

	t.Run("splits by weight", func(t *testing.T) {
		outputs, err := s.Calculate(3000, []SplitInput{
			{UserID: 1, Shares: i64(2)},
			{UserID: 2, Shares: i64(1)},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{2000, 1000}, amounts(outputs))
	})

	t.Run("floor with remainder to the front", func(t *testing.T) {
		outputs, err := s.Calculate(100, []SplitInput{
			{UserID: 1, Shares: i64(1)},
			{UserID: 2, Shares: i64(1)},
			{UserID: 3, Shares: i64(1)},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{34, 33, 33}, amounts(outputs))
	})

	t.Run("zero-share participant owes nothing", func(t *testing.T) {
		outputs, err := s.Calculate(500, []SplitInput{
			{UserID: 1, Shares: i64(5)},
			{UserID: 2, Shares: i64(0)},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{500, 0}, amounts(outputs))
	})

	t.Run("rejects all-zero shares", func(t *testing.T) {
		_, err := s.Calculate(500, []SplitInput{
			{UserID: 1, Shares: i64(0)},
			{UserID: 2, Shares: i64(0)},
		})
		assert.ErrorIs(t, err, ErrInvalidShares)
	})

	t.Run("rejects missing shares", func(t *testing.T) {
		_, err := s.Calculate(500, []SplitInput{{UserID: 1, Shares: i64(1)}, {UserID: 2}})
		assert.ErrorIs(t, err, ErrMissingShares)
	})
}
