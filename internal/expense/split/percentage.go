package split

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/splitledger/backend/internal/money"
)

// PercentageStrategy divides the expense by per-participant percentages.
// Each share is floored to whole cents; leftover cents go to the first
// participants in input order so the shares sum exactly to the total.
type PercentageStrategy struct{}

// Type returns the split type identifier
func (s *PercentageStrategy) Type() SplitType {
	return SplitTypePercentage
}

// Validate checks that all participants have percentages and they sum to 100
func (s *PercentageStrategy) Validate(totalAmount money.Cents, participants []SplitInput) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount <= 0 {
		return ErrNonPositiveAmount
	}

	var sum float64
	for _, p := range participants {
		if p.Percentage == nil {
			return ErrMissingPercentage
		}
		if *p.Percentage < 0 || *p.Percentage > 100 {
			return ErrPercentageOutOfRange
		}
		sum += *p.Percentage
	}

	// Tolerate float representation noise only
	if math.Abs(sum-100) > 0.01 {
		return ErrInvalidPercentages
	}
	return nil
}

// Calculate divides the total amount based on each participant's percentage
func (s *PercentageStrategy) Calculate(totalAmount money.Cents, participants []SplitInput) ([]SplitOutput, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	total := decimal.NewFromInt(totalAmount)
	hundred := decimal.NewFromInt(100)

	outputs := make([]SplitOutput, len(participants))
	var distributed money.Cents
	for i, p := range participants {
		share := total.
			Mul(decimal.NewFromFloat(*p.Percentage)).
			Div(hundred).
			Floor().
			IntPart()
		outputs[i] = SplitOutput{UserID: p.UserID, AmountOwed: share}
		distributed += share
	}
	distributeRemainder(outputs, totalAmount-distributed)

	return outputs, nil
}
