package expense

import (
	"context"

	"github.com/fairsplit/fairsplit/internal/money"
)

// Repository is the append-only ledger store. There is deliberately no
// update or delete of individual entries; a wrong expense is corrected
// by appending a compensating one.
type Repository interface {
	Append(ctx context.Context, expense *Expense) error

	// ListByGroup returns a group's expenses in insertion order. The
	// returned slice is a snapshot: later appends do not modify it.
	ListByGroup(ctx context.Context, groupID string) ([]*Expense, error)

	// TotalByGroup sums the amounts of a group's expenses.
	TotalByGroup(ctx context.Context, groupID string) (money.Money, error)

	// DeleteByGroup discards a group's entire ledger.
	DeleteByGroup(ctx context.Context, groupID string) error
}
