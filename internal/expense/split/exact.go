package split

import "github.com/splitledger/backend/internal/money"

// ExactStrategy takes caller-supplied per-participant amounts, already in
// cents, and only verifies they add up to the expense total.
type ExactStrategy struct{}

// Type returns the split type identifier
func (s *ExactStrategy) Type() SplitType {
	return SplitTypeExact
}

// Validate checks that every participant has an amount and the amounts sum
// to the total, to the cent.
func (s *ExactStrategy) Validate(totalAmount money.Cents, participants []SplitInput) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount <= 0 {
		return ErrNonPositiveAmount
	}

	var sum money.Cents
	for _, p := range participants {
		if p.Amount == nil {
			return ErrMissingExactAmount
		}
		if *p.Amount < 0 {
			return ErrNegativeShare
		}
		sum += *p.Amount
	}

	if sum != totalAmount {
		return ErrInvalidExactAmounts
	}
	return nil
}

// Calculate returns the exact amounts specified for each participant
func (s *ExactStrategy) Calculate(totalAmount money.Cents, participants []SplitInput) ([]SplitOutput, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	outputs := make([]SplitOutput, len(participants))
	for i, p := range participants {
		outputs[i] = SplitOutput{UserID: p.UserID, AmountOwed: *p.Amount}
	}
	return outputs, nil
}
