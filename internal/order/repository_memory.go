package order

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []*Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Save(ctx context.Context, order *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *InMemoryRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Order, 0)
	for _, o := range r.orders {
		if o.SessionID == sessionID {
			out = append(out, o)
		}
	}
	return out, nil
}
