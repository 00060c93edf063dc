package interest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitledger/backend/internal/money"
)

// daysPerYear is the simple-interest day-count convention.
const daysPerYear = 365

// Accrued returns the simple daily interest accrued on baseAmount (cents)
// between startDate and now, at the given annual rate (e.g. 0.05 for 5%).
//
// Interest is truncated, never rounded up, so the result can never exceed
// the exact continuous value. Before startDate the accrued interest is zero.
// The function is pure: same inputs, same output, nothing stored.
func Accrued(baseAmount money.Cents, annualRate float64, startDate, now time.Time) money.Cents {
	if !now.After(startDate) {
		return 0
	}
	days := money.DaysBetween(startDate, now)
	if days <= 0 {
		return 0
	}

	// base * (rate / 365) * days, floored to whole cents
	amt := decimal.NewFromInt(baseAmount).
		Mul(decimal.NewFromFloat(annualRate)).
		Mul(decimal.NewFromInt(days)).
		Div(decimal.NewFromInt(daysPerYear))
	return amt.Floor().IntPart()
}

// TotalOwed is the display amount: principal plus interest accrued as of now.
func TotalOwed(baseAmount money.Cents, annualRate float64, startDate, now time.Time) money.Cents {
	return baseAmount + Accrued(baseAmount, annualRate, startDate, now)
}
