package split

import (
	"fmt"

	"github.com/fairsplit/fairsplit/internal/money"
)

// CustomStrategy uses caller-supplied contributions as the shares.
type CustomStrategy struct{}

// Type returns the split type identifier
func (s *CustomStrategy) Type() Type {
	return TypeCustom
}

// Validate checks if the inputs are valid for a custom split. Every
// participant must have a non-negative contribution, no contribution may
// name an outsider, and the contributions must sum to the expense
// amount. Sub-cent slack was already absorbed when the wire amounts were
// rounded to cents, so at this point the sum has to be exact.
func (s *CustomStrategy) Validate(amount money.Money, participants []string, contributions map[string]money.Money) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	members := memberIndex(participants)
	for name, value := range contributions {
		if _, ok := members[name]; !ok {
			return unknown(name)
		}
		if value.IsNegative() {
			return fmt.Errorf("%w: %q", ErrNegativeContribution, name)
		}
	}

	var total money.Money
	for _, p := range participants {
		value, ok := contributions[p]
		if !ok {
			return fmt.Errorf("%w: no contribution for %q", ErrContributionsMismatch, p)
		}
		total = total.Add(value)
	}

	if total != amount {
		return fmt.Errorf("%w: contributions total %s, amount %s", ErrContributionsMismatch, total, amount)
	}

	return nil
}

// Calculate returns the supplied contributions as the share mapping.
func (s *CustomStrategy) Calculate(amount money.Money, participants []string, contributions map[string]money.Money) (map[string]money.Money, error) {
	if err := s.Validate(amount, participants, contributions); err != nil {
		return nil, err
	}

	shares := make(map[string]money.Money, len(participants))
	for _, p := range participants {
		shares[p] = contributions[p]
	}

	return shares, nil
}
