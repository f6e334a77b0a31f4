package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its storage-generated id.
	// The order must be valid and not already have an id.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using its version
	// as an optimistic-concurrency token. Returns a concurrency conflict error
	// when another operation modified the order since it was loaded, and a
	// not-found error when the order no longer exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
