package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

// Repository stores submitted orders.
type Repository interface {
	Save(ctx context.Context, order *Order) error
	Get(ctx context.Context, id uuid.UUID) (*Order, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*Order, error)
}
