package expense

import (
	"context"
	"sync"

	"github.com/fairsplit/fairsplit/internal/money"
)

// MemoryRepository keeps each group's ledger as an in-memory slice.
// Entries are immutable, so a copied slice of pointers is a consistent
// snapshot for readers while writers keep appending.
type MemoryRepository struct {
	mu      sync.RWMutex
	ledgers map[string][]*Expense
}

// NewMemoryRepository creates an empty in-memory ledger store
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{ledgers: make(map[string][]*Expense)}
}

func (r *MemoryRepository) Append(_ context.Context, expense *Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ledgers[expense.GroupID] = append(r.ledgers[expense.GroupID], expense)
	return nil
}

func (r *MemoryRepository) ListByGroup(_ context.Context, groupID string) ([]*Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger := r.ledgers[groupID]
	snapshot := make([]*Expense, len(ledger))
	copy(snapshot, ledger)
	return snapshot, nil
}

func (r *MemoryRepository) TotalByGroup(_ context.Context, groupID string) (money.Money, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total money.Money
	for _, e := range r.ledgers[groupID] {
		total = total.Add(e.Amount)
	}
	return total, nil
}

func (r *MemoryRepository) DeleteByGroup(_ context.Context, groupID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.ledgers, groupID)
	return nil
}
