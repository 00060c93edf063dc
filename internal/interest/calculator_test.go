package interest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccrued(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		baseAmount int64
		annualRate float64
		now        time.Time
		want       int64
	}{
		{
			name:       "zero at start date",
			baseAmount: 100000,
			annualRate: 0.05,
			now:        start,
			want:       0,
		},
		{
			name:       "zero before start date",
			baseAmount: 100000,
			annualRate: 0.05,
			now:        start.AddDate(0, -1, 0),
			want:       0,
		},
		{
			name:       "zero within first day",
			baseAmount: 100000,
			annualRate: 0.05,
			now:        start.Add(23 * time.Hour),
			want:       0,
		},
		{
			name:       "one full year at 5% on 1000.00",
			baseAmount: 100000,
			annualRate: 0.05,
			now:        start.Add(365 * 24 * time.Hour),
			want:       5000,
		},
		{
			name:       "single day truncates down",
			baseAmount: 100000,
			annualRate: 0.05,
			now:        start.Add(24 * time.Hour),
			// 100000 * 0.05 / 365 = 13.69... -> 13
			want: 13,
		},
		{
			name:       "thirty days",
			baseAmount: 50000,
			annualRate: 0.10,
			now:        start.Add(30 * 24 * time.Hour),
			// 50000 * 0.10 * 30 / 365 = 410.95... -> 410
			want: 410,
		},
		{
			name:       "tiny balance never rounds up",
			baseAmount: 1,
			annualRate: 0.05,
			now:        start.Add(100 * 24 * time.Hour),
			want:       0,
		},
		{
			name:       "zero rate accrues nothing",
			baseAmount: 100000,
			annualRate: 0,
			now:        start.AddDate(1, 0, 0),
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Accrued(tt.baseAmount, tt.annualRate, start, tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccruedIsIdempotent(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	now := start.Add(90 * 24 * time.Hour)

	first := Accrued(250000, 0.07, start, now)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Accrued(250000, 0.07, start, now))
	}
}

func TestTotalOwed(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start.Add(365 * 24 * time.Hour)

	assert.Equal(t, int64(105000), TotalOwed(100000, 0.05, start, now))
	assert.Equal(t, int64(100000), TotalOwed(100000, 0.05, start, start))
}
