package balance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/splitledger/backend/internal/settings"
)

func TestAnnotate(t *testing.T) {
	updatedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	explicitStart := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	row := func(start *time.Time) *Balance {
		return &Balance{
			ID:                1,
			ProjectID:         1,
			FromUserID:        2,
			ToUserID:          1,
			Amount:            100000,
			BaseAmount:        100000,
			InterestStartDate: start,
			UpdatedAt:         updatedAt,
		}
	}

	t.Run("no settings means principal only", func(t *testing.T) {
		got := Annotate(row(&explicitStart), nil, explicitStart.AddDate(1, 0, 0))
		assert.Equal(t, int64(0), got.AccruedInterest)
		assert.Equal(t, int64(100000), got.TotalAmount)
	})

	t.Run("interest disabled means principal only", func(t *testing.T) {
		cfg := &settings.InterestSettings{EnableInterest: false, InterestRate: 0.05}
		got := Annotate(row(&explicitStart), cfg, explicitStart.AddDate(1, 0, 0))
		assert.Equal(t, int64(0), got.AccruedInterest)
	})

	t.Run("explicit start date accrues after grace", func(t *testing.T) {
		cfg := &settings.InterestSettings{EnableInterest: true, InterestRate: 0.05, InterestStartMonths: 1}
		now := explicitStart.Add(365 * 24 * time.Hour)
		got := Annotate(row(&explicitStart), cfg, now)
		assert.Equal(t, int64(5000), got.AccruedInterest)
		assert.Equal(t, int64(105000), got.TotalAmount)
	})

	t.Run("nil start date derives from updatedAt plus grace", func(t *testing.T) {
		cfg := &settings.InterestSettings{EnableInterest: true, InterestRate: 0.05, InterestStartMonths: 1}

		// One day after the derived start (updatedAt + 1 month).
		now := updatedAt.AddDate(0, 1, 0).Add(24 * time.Hour)
		got := Annotate(row(nil), cfg, now)
		assert.Equal(t, int64(13), got.AccruedInterest) // 100000*0.05/365 floored

		// Still inside the derived grace period: nothing accrued.
		before := updatedAt.AddDate(0, 1, 0).Add(-time.Hour)
		got = Annotate(row(nil), cfg, before)
		assert.Equal(t, int64(0), got.AccruedInterest)
	})
}
