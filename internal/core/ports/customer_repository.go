package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate and assigns its storage-generated id.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier without
	// loading the order history.
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// GetWithOrders retrieves a customer aggregate together with their full
	// order history. Discount decisions must use this method: the rules read
	// the complete history, so a partial load would skew them.
	GetWithOrders(ctx context.Context, id int64) (*customer.Customer, error)
}
