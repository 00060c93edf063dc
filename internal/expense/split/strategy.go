package split

import (
	"errors"
	"fmt"

	"github.com/splitledger/backend/internal/money"
)

// SplitType defines the type of split strategy
type SplitType string

const (
	SplitTypeEqual      SplitType = "EQUAL"
	SplitTypeExact      SplitType = "EXACT"
	SplitTypePercentage SplitType = "PERCENTAGE"
	SplitTypeShares     SplitType = "SHARES"
)

// SplitInput represents a participant in a split with optional values
type SplitInput struct {
	UserID     int64    `json:"user_id"`
	Amount     *int64   `json:"amount,omitempty"`     // cents, for EXACT split
	Percentage *float64 `json:"percentage,omitempty"` // for PERCENTAGE split
	Shares     *int64   `json:"shares,omitempty"`     // weight, for SHARES split
}

// SplitOutput is the calculated share for a single participant, in cents.
// Every participant gets an output, the payer included; whether a share
// drives the ledger is the caller's concern.
type SplitOutput struct {
	UserID     int64       `json:"user_id"`
	AmountOwed money.Cents `json:"amount_owed"`
}

// Strategy is the interface that all split strategies must implement.
// Calculate must return shares that sum exactly to totalAmount; no strategy
// may lose or invent a cent.
type Strategy interface {
	// Calculate computes the split amounts for all participants
	Calculate(totalAmount money.Cents, participants []SplitInput) ([]SplitOutput, error)

	// Type returns the type identifier for this strategy
	Type() SplitType

	// Validate checks if the inputs are valid for this strategy
	Validate(totalAmount money.Cents, participants []SplitInput) error
}

// Factory creates split strategies based on the requested type
type Factory struct{}

// NewSplitStrategyFactory creates a new factory instance
func NewSplitStrategyFactory() *Factory {
	return &Factory{}
}

// Create returns the appropriate strategy implementation based on the type
func (f *Factory) Create(splitType SplitType) (Strategy, error) {
	switch splitType {
	case SplitTypeEqual:
		return &EqualStrategy{}, nil
	case SplitTypeExact:
		return &ExactStrategy{}, nil
	case SplitTypePercentage:
		return &PercentageStrategy{}, nil
	case SplitTypeShares:
		return &SharesStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown split type: %s", splitType)
	}
}

// CreateFromString creates a strategy from a string type (useful for API requests)
func (f *Factory) CreateFromString(splitType string) (Strategy, error) {
	return f.Create(SplitType(splitType))
}

var (
	ErrNoParticipants       = errors.New("at least one participant is required")
	ErrNonPositiveAmount    = errors.New("expense amount must be positive")
	ErrNegativeShare        = errors.New("split amounts cannot be negative")
	ErrInvalidExactAmounts  = errors.New("exact amounts must sum to the total amount")
	ErrInvalidPercentages   = errors.New("percentages must sum to 100")
	ErrInvalidShares        = errors.New("total shares must be positive")
	ErrMissingExactAmount   = errors.New("exact amount required for all participants")
	ErrMissingPercentage    = errors.New("percentage value required for all participants")
	ErrMissingShares        = errors.New("share count required for all participants")
	ErrPercentageOutOfRange = errors.New("percentage must be between 0 and 100")
)

// distributeRemainder reconciles the signed difference between the expense
// total and the shares as computed so far. Leftover cents are handed out one
// at a time starting from the first participant; excess cents (percentages
// just over 100 within tolerance) are taken back from the last participants.
// Either way the outputs end up summing exactly to the expense total.
func distributeRemainder(outputs []SplitOutput, remainder money.Cents) {
	if len(outputs) == 0 {
		return
	}
	for i := 0; remainder > 0; i = (i + 1) % len(outputs) {
		outputs[i].AmountOwed++
		remainder--
	}
	for i := len(outputs) - 1; remainder < 0 && i >= 0; i-- {
		take := -remainder
		if outputs[i].AmountOwed < take {
			take = outputs[i].AmountOwed
		}
		outputs[i].AmountOwed -= take
		remainder += take
	}
}
