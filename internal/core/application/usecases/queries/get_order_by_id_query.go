// Package queries contains read-only operations that bypass the domain
// repositories and read the store directly. Handlers hold a database handle,
// run raw SQL, and project rows into view models.
package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order with its customer's name and
// segment denormalized into the view.
type GetOrderByIDQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one order by its identifier.
func NewGetOrderByIDQuery(orderID int64) GetOrderByIDQuery {
	return GetOrderByIDQuery{
		orderID: orderID,

		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderByIDQuery) OrderID() int64 {
	return q.orderID
}
