package split

import "github.com/splitledger/backend/internal/money"

// EqualStrategy divides the expense evenly among all participants using
// integer floor division. The remainder (amount mod count) is distributed
// one cent at a time to the first participants in input order, so the shares
// always sum exactly to the total: 100 among 3 gives [34, 33, 33].
type EqualStrategy struct{}

// Type returns the split type identifier
func (s *EqualStrategy) Type() SplitType {
	return SplitTypeEqual
}

// Validate checks if the inputs are valid for an equal split
func (s *EqualStrategy) Validate(totalAmount money.Cents, participants []SplitInput) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}

// Calculate divides the total amount evenly among all participants
func (s *EqualStrategy) Calculate(totalAmount money.Cents, participants []SplitInput) ([]SplitOutput, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	count := int64(len(participants))
	share := totalAmount / count
	remainder := totalAmount % count

	outputs := make([]SplitOutput, len(participants))
	for i, p := range participants {
		outputs[i] = SplitOutput{UserID: p.UserID, AmountOwed: share}
	}
	distributeRemainder(outputs, remainder)

	return outputs, nil
}
