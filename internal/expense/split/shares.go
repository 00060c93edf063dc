package split

import "github.com/splitledger/backend/internal/money"

// SharesStrategy divides the expense by integer weights: a participant with
// 2 shares owes twice as much as one with 1. Shares are floored to whole
// cents with the remainder distributed from the front, same as EQUAL.
type SharesStrategy struct{}

// Type returns the split type identifier
func (s *SharesStrategy) Type() SplitType {
	return SplitTypeShares
}

// Validate checks that all participants have shares and at least one is positive
func (s *SharesStrategy) Validate(totalAmount money.Cents, participants []SplitInput) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount <= 0 {
		return ErrNonPositiveAmount
	}

	var totalShares int64
	for _, p := range participants {
		if p.Shares == nil {
			return ErrMissingShares
		}
		if *p.Shares < 0 {
			return ErrNegativeShare
		}
		totalShares += *p.Shares
	}

	if totalShares <= 0 {
		return ErrInvalidShares
	}
	return nil
}

// Calculate divides the total amount proportionally to each participant's shares
func (s *SharesStrategy) Calculate(totalAmount money.Cents, participants []SplitInput) ([]SplitOutput, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	var totalShares int64
	for _, p := range participants {
		totalShares += *p.Shares
	}

	outputs := make([]SplitOutput, len(participants))
	var distributed money.Cents
	for i, p := range participants {
		share := totalAmount * *p.Shares / totalShares
		outputs[i] = SplitOutput{UserID: p.UserID, AmountOwed: share}
		distributed += share
	}
	distributeRemainder(outputs, totalAmount-distributed)

	return outputs, nil
}
