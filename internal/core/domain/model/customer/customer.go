package customer

import (
	"errors"
	"unicode/utf8"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const maxNameLength = 100

// Customer is the aggregate root for a buyer and their order history.
type Customer struct {
	guard.ConstructorGuard

	id      int64
	name    string
	segment Segment
	orders  []*order.Order
}

// NewCustomer creates a new customer with an empty order history.
// The id is zero until storage assigns one via AssignID.
func NewCustomer(name string, segment Segment) (*Customer, error) {
	err := errors.Join(
		validateName(name),
		segment.Validate(),
	)
	if err != nil {
		return nil, err
	}

	return &Customer{
		ConstructorGuard: guard.NewConstructorGuard(),

		name:    name,
		segment: segment,
	}, nil
}

// RestoreCustomer reconstructs a customer from storage together with whatever
// slice of their orders the caller loaded. Values are trusted to have been
// validated when first persisted.
func RestoreCustomer(id int64, name string, segment Segment, orders []*order.Order) *Customer {
	return &Customer{
		ConstructorGuard: guard.NewConstructorGuard(),

		id:      id,
		name:    name,
		segment: segment,
		orders:  orders,
	}
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if length := utf8.RuneCountInString(name); length > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", length, 1, maxNameLength)
	}
	return nil
}

// ID returns the customer identifier. Zero means the customer is not persisted yet.
func (c *Customer) ID() int64 {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Segment returns the discount segment the customer belongs to.
func (c *Customer) Segment() Segment {
	return c.segment
}

// Orders returns the orders loaded for this customer. Whether the slice is the
// full history depends on how the aggregate was fetched; discount decisions
// require the full history.
func (c *Customer) Orders() []*order.Order {
	return c.orders
}

// AssignID binds the storage-generated identifier to a newly created customer.
// It may be called once, with a positive id.
func (c *Customer) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	if c.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	c.id = id
	return nil
}

// OrderCount returns the number of loaded orders regardless of status.
func (c *Customer) OrderCount() int {
	return len(c.orders)
}

// DeliveredOrderCount returns how many loaded orders reached Delivered.
func (c *Customer) DeliveredOrderCount() int {
	count := 0
	for _, o := range c.orders {
		if o.Status() == order.Delivered {
			count++
		}
	}
	return count
}
