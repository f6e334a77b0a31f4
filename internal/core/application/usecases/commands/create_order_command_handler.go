package commands

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/application/views"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/results"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Applies the segment discount policy before persisting, so the discount is
// fixed at creation and never recomputed.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, validator)
//	cmd := NewCreateOrderCommand(42, decimal.NewFromInt(250))
//
//	result := handler.Handle(ctx, cmd)
//	switch result.Kind() {
//	case results.KindSuccess:
//	    // result.Value() holds the created order view
//	case results.KindValidationFailure, results.KindNotFound:
//	    // surface to the caller
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	validator  ports.RequestValidator
	discounts  services.DiscountCalculator
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence and a request validator.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	validator ports.RequestValidator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		discounts:  services.NewDiscountCalculator(),
	}
}

// Handle processes the order placement command.
//
// Outcome kinds:
//   - Success with the created order view
//   - ValidationFailure listing every violated field rule
//   - NotFound when the customer does not exist
//   - UnexpectedError for storage and unforeseen faults
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) results.Result[views.OrderView] {
	if err := cmd.Validate(); err != nil {
		return h.fault(err)
	}

	if violations := h.validator.ValidateStruct(cmd); len(violations) > 0 {
		return results.Invalid[views.OrderView](violations...)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return h.fault(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The full history is required: the discount rules count prior and
	// delivered orders.
	c, err := uow.CustomerRepository().GetWithOrders(ctx, cmd.CustomerID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return results.NotFound[views.OrderView](
				fmt.Sprintf("Customer with ID '%d' not found.", cmd.CustomerID))
		}
		return h.fault(err)
	}

	o, err := order.NewOrder(cmd.CustomerID, cmd.TotalAmount)
	if err != nil {
		return h.fault(err)
	}

	if _, err = h.discounts.ApplyDiscount(o, c); err != nil {
		return h.fault(err)
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return h.fault(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return h.fault(err)
	}

	return results.Ok(views.NewOrderView(o, c.Name(), c.Segment()))
}

// fault classifies an internal error into an UnexpectedError result, surfacing
// the storage cause when the fault came from the database.
func (h *CreateOrderCommandHandler) fault(err error) results.Result[views.OrderView] {
	var dbErr *errs.DatabaseError
	if errors.As(err, &dbErr) {
		return results.Unexpected[views.OrderView](
			fmt.Sprintf("A database error occurred while creating the order: %s", dbErr.Cause), err)
	}
	return results.Unexpected[views.OrderView](
		fmt.Sprintf("An unexpected error occurred while creating the order: %s", err), err)
}
