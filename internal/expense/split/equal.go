package split

import "github.com/fairsplit/fairsplit/internal/money"

// EqualStrategy divides the expense evenly among all participants.
type EqualStrategy struct{}

// Type returns the split type identifier
func (s *EqualStrategy) Type() Type {
	return TypeEqual
}

// Validate checks if the inputs are valid for an equal split
func (s *EqualStrategy) Validate(amount money.Money, participants []string, _ map[string]money.Money) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// Calculate divides the amount into equal integer-cent shares. When the
// cent value is not evenly divisible, the leftover cents go to the first
// participants in the group's declared order, so the shares always sum
// exactly to the amount and differ by at most one cent.
func (s *EqualStrategy) Calculate(amount money.Money, participants []string, _ map[string]money.Money) (map[string]money.Money, error) {
	if err := s.Validate(amount, participants, nil); err != nil {
		return nil, err
	}

	n := int64(len(participants))
	base := amount.Cents() / n
	remainder := amount.Cents() % n

	shares := make(map[string]money.Money, len(participants))
	for i, p := range participants {
		share := base
		if int64(i) < remainder {
			share++
		}
		shares[p] = money.FromCents(share)
	}

	return shares, nil
}
