package commands

import (
	"errors"

	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order for a customer.
//
// Field rules are declared as validation tags and checked by the handler's
// request validator, which reports every violation at once rather than
// stopping at the first. TotalAmount deliberately carries only the
// greater-than-zero rule so an absent amount is reported the same way as an
// explicit zero.
//
// Example:
//
//	cmd := NewCreateOrderCommand(42, decimal.NewFromInt(250))
//	handler := NewCreateOrderCommandHandler(uowFactory, validator)
//
//	result := handler.Handle(ctx, cmd)
//	if result.IsSuccess() {
//	    fmt.Printf("Order %d placed", result.Value().ID)
//	}
type CreateOrderCommand struct {
	CustomerID  int64           `json:"customerId"  validate:"required,gt=0"`
	TotalAmount decimal.Decimal `json:"totalAmount" validate:"gt=0"`

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Field-level rules are checked later by the handler's request validator.
func NewCreateOrderCommand(customerID int64, totalAmount decimal.Decimal) CreateOrderCommand {
	return CreateOrderCommand{
		CustomerID:  customerID,
		TotalAmount: totalAmount,

		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
