package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairsplit/fairsplit/internal/expense"
	"github.com/fairsplit/fairsplit/internal/group"
	"github.com/fairsplit/fairsplit/internal/money"
)

// ErrUnbalanced signals that balances did not settle to zero within the
// tolerance. Correct ledgers can never trigger it; it means the input
// was corrupted upstream.
var ErrUnbalanced = errors.New("balances do not settle to zero")

// residualTolerance is the slack allowed before a leftover balance is
// treated as an invariant breach rather than rounding noise.
const residualTolerance = money.Money(1)

// Service derives balances and transfer plans from a group's ledger.
// Both computations are pure re-derivations over a ledger snapshot;
// nothing here is stored or incrementally patched.
type Service struct {
	groups   group.Repository
	expenses expense.Repository
}

// NewService creates a new settlement service
func NewService(groups group.Repository, expenses expense.Repository) *Service {
	return &Service{groups: groups, expenses: expenses}
}

// ForGroup computes the member balances and the settlement plan for one
// group in a single pass over its ledger.
func (s *Service) ForGroup(ctx context.Context, groupID string) ([]*Balance, []*Transfer, error) {
	balances, err := s.ComputeBalances(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	transfers, err := ComputeSettlements(balances)
	if err != nil {
		return nil, nil, err
	}
	return balances, transfers, nil
}

// ComputeBalances folds the group's ledger into one Balance per
// participant, in the group's declared participant order. Participants
// with no expenses still get a zero entry.
func (s *Service) ComputeBalances(ctx context.Context, groupID string) ([]*Balance, error) {
	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: %s", group.ErrGroupNotFound, groupID)
	}

	expenses, err := s.expenses.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*Balance, len(g.Participants))
	balances := make([]*Balance, 0, len(g.Participants))
	for _, p := range g.Participants {
		b := &Balance{Participant: p}
		byName[p] = b
		balances = append(balances, b)
	}

	for _, e := range expenses {
		if payer, ok := byName[e.PaidBy]; ok {
			payer.TotalPaid = payer.TotalPaid.Add(e.Amount)
		}
		for participant, share := range e.Shares {
			if b, ok := byName[participant]; ok {
				b.TotalOwed = b.TotalOwed.Add(share)
			}
		}
	}

	for _, b := range balances {
		b.NetBalance = b.TotalPaid.Sub(b.TotalOwed)
	}
	return balances, nil
}

// ComputeSettlements reduces net balances to a transfer plan with the
// greedy cash-flow algorithm: repeatedly match the largest creditor with
// the largest debtor, ties broken by name, until both sides are empty.
// The plan has at most one transfer fewer than there are participants.
func ComputeSettlements(balances []*Balance) ([]*Transfer, error) {
	creditors := make(map[string]money.Money)
	debtors := make(map[string]money.Money)
	for _, b := range balances {
		switch {
		case b.NetBalance.IsPositive():
			creditors[b.Participant] = b.NetBalance
		case b.NetBalance.IsNegative():
			debtors[b.Participant] = b.NetBalance.Abs()
		}
	}

	transfers := make([]*Transfer, 0)
	for len(creditors) > 0 && len(debtors) > 0 {
		creditor := largest(creditors)
		debtor := largest(debtors)

		amount := creditors[creditor]
		if debtors[debtor] < amount {
			amount = debtors[debtor]
		}

		transfers = append(transfers, &Transfer{From: debtor, To: creditor, Amount: amount})

		creditors[creditor] = creditors[creditor].Sub(amount)
		debtors[debtor] = debtors[debtor].Sub(amount)
		if creditors[creditor].IsZero() {
			delete(creditors, creditor)
		}
		if debtors[debtor].IsZero() {
			delete(debtors, debtor)
		}
	}

	for _, remaining := range creditors {
		if remaining > residualTolerance {
			return nil, fmt.Errorf("%w: %s left uncollected", ErrUnbalanced, remaining)
		}
	}
	for _, remaining := range debtors {
		if remaining > residualTolerance {
			return nil, fmt.Errorf("%w: %s left unpaid", ErrUnbalanced, remaining)
		}
	}
	return transfers, nil
}

// largest picks the entry with the biggest remaining amount; equal
// amounts resolve to the lexically smallest name so the plan is
// deterministic.
func largest(remaining map[string]money.Money) string {
	var best string
	var bestAmount money.Money = -1
	for name, amount := range remaining {
		if amount > bestAmount || (amount == bestAmount && name < best) {
			best = name
			bestAmount = amount
		}
	}
	return best
}
