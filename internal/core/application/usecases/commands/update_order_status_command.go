package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to advance an order to a new
// lifecycle status. NewStatus carries the wire-level status name; whether the
// transition itself is legal is decided by the order aggregate, not here.
type UpdateOrderStatusCommand struct {
	OrderID   int64  `json:"orderId"   validate:"required,gt=0"`
	NewStatus string `json:"newStatus" validate:"required,orderstatus"`

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Field-level rules are checked later by the handler's request validator.
func NewUpdateOrderStatusCommand(orderID int64, newStatus string) UpdateOrderStatusCommand {
	return UpdateOrderStatusCommand{
		OrderID:   orderID,
		NewStatus: newStatus,

		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}
