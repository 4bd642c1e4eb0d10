package split

import (
	"errors"
	"fmt"

	"github.com/fairsplit/fairsplit/internal/money"
)

// Type identifies how an expense is divided among participants.
type Type string

const (
	TypeEqual  Type = "EQUAL"
	TypeCustom Type = "CUSTOM"
)

// Strategy is the interface all split strategies implement. Calculate
// returns one share per group participant; the shares always sum to the
// expense amount to the cent.
type Strategy interface {
	// Type returns the split type identifier
	Type() Type

	// Validate checks if the inputs are valid for this strategy
	Validate(amount money.Money, participants []string, contributions map[string]money.Money) error

	// Calculate computes the share mapping for all participants
	Calculate(amount money.Money, participants []string, contributions map[string]money.Money) (map[string]money.Money, error)
}

// ForContributions selects the strategy for an expense request: custom
// when explicit contributions are supplied, equal otherwise.
func ForContributions(contributions map[string]money.Money) Strategy {
	if len(contributions) > 0 {
		return &CustomStrategy{}
	}
	return &EqualStrategy{}
}

var (
	ErrNoParticipants        = errors.New("at least one participant is required")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrUnknownParticipant    = errors.New("not a participant of the group")
	ErrContributionsMismatch = errors.New("contributions do not sum to the expense amount")
	ErrNegativeContribution  = errors.New("contributions cannot be negative")
)

// memberIndex builds a membership set for participant lookups.
func memberIndex(participants []string) map[string]struct{} {
	set := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		set[p] = struct{}{}
	}
	return set
}

func unknown(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownParticipant, name)
}
