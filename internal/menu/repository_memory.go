package menu

import (
	"context"
	"sync"
)

// InMemoryRepository keeps the catalog in process memory.
// This is the default storage for a running session.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []MenuItem
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Insert(ctx context.Context, item MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return nil
}

func (r *InMemoryRepository) Replace(ctx context.Context, item MenuItem) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]MenuItem, len(r.items))
	copy(out, r.items)
	return out, nil
}
