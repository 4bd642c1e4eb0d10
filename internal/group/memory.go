package group

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepository is the in-memory group store. Groups are immutable
// once created, so reads hand out the stored value directly; only the
// table itself is guarded.
type MemoryRepository struct {
	mu     sync.RWMutex
	groups map[string]*Group
	order  []string
}

// NewMemoryRepository creates an empty in-memory group repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{groups: make(map[string]*Group)}
}

func (r *MemoryRepository) Create(_ context.Context, group *Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.groups[group.GroupID] = group
	r.order = append(r.order, group.GroupID)
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.groups[id], nil
}

func (r *MemoryRepository) GetByName(_ context.Context, name string) (*Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.groups {
		if strings.EqualFold(g.GroupName, name) {
			return g, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	groups := make([]*Group, 0, len(r.order))
	for _, id := range r.order {
		if g, ok := r.groups[id]; ok {
			groups = append(groups, g)
		}
	}
	return groups, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.groups), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.groups, id)
	for i, gid := range r.order {
		if gid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
