package money

import (
	"fmt"
	"time"
)

// Amounts are integer minor currency units (cents). A dedicated type keeps
// the signatures honest without dragging in decimal arithmetic.
type Cents = int64

// FromUnits converts whole currency units to cents.
func FromUnits(units int64) Cents {
	return units * 100
}

// Format renders cents as a decimal string, e.g. 1234 -> "12.34".
func Format(amount Cents) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}

// DaysBetween returns the number of whole days elapsed from 'from' to 'to',
// truncated. Negative if 'to' is before 'from'.
func DaysBetween(from, to time.Time) int64 {
	return int64(to.Sub(from).Hours() / 24)
}

// AddMonths shifts an instant forward by n calendar months.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}
