package commands

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/application/views"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/results"
)

// UpdateOrderStatusCommandHandler handles the business logic for advancing an
// order through its lifecycle. The state machine lives in the order aggregate;
// the handler loads, asks the aggregate to transition, and persists with the
// loaded version as an optimistic-concurrency token.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	validator  ports.RequestValidator
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// Requires a UoWFactory for transactional persistence and a request validator.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	validator ports.RequestValidator,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

// Handle processes the status update command.
//
// Outcome kinds:
//   - Success with the updated order view
//   - ValidationFailure for field rules or a rejected status transition
//   - NotFound when the order does not exist
//   - UnexpectedError for concurrency, storage, and unforeseen faults
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) results.Result[views.OrderView] {
	if err := cmd.Validate(); err != nil {
		return h.fault(err)
	}

	if violations := h.validator.ValidateStruct(cmd); len(violations) > 0 {
		return results.Invalid[views.OrderView](violations...)
	}

	newStatus, err := order.ParseStatus(cmd.NewStatus)
	if err != nil {
		// The orderstatus tag already rejected unknown names; reaching this
		// point means the tag and the parser disagree.
		return h.fault(err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return h.fault(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return results.NotFound[views.OrderView](
				fmt.Sprintf("Order with ID '%d' not found.", cmd.OrderID))
		}
		return h.fault(err)
	}

	if err = o.TransitionTo(newStatus); err != nil {
		var transitionErr *order.StatusTransitionError
		if errors.As(err, &transitionErr) {
			return results.Invalid[views.OrderView](results.ValidationError{
				Message:    transitionErr.Error(),
				FieldNames: []string{"newStatus"},
			})
		}
		return h.fault(err)
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return results.NotFound[views.OrderView](
				fmt.Sprintf("Order with ID '%d' not found.", cmd.OrderID))
		}
		return h.fault(err)
	}

	c, err := uow.CustomerRepository().Get(ctx, o.CustomerID())
	if err != nil {
		return h.fault(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return h.fault(err)
	}

	return results.Ok(views.NewOrderView(o, c.Name(), c.Segment()))
}

// fault classifies an internal error into an UnexpectedError result. Lost
// optimistic-concurrency races and storage faults get their own phrasing so
// operators can tell them apart in logs.
func (h *UpdateOrderStatusCommandHandler) fault(err error) results.Result[views.OrderView] {
	var conflictErr *errs.ConcurrencyConflictError
	if errors.As(err, &conflictErr) {
		return results.Unexpected[views.OrderView](
			fmt.Sprintf("A concurrency error occurred while updating the order status: %s", err), err)
	}

	var dbErr *errs.DatabaseError
	if errors.As(err, &dbErr) {
		return results.Unexpected[views.OrderView](
			fmt.Sprintf("A database error occurred while updating the order status: %s", dbErr.Cause), err)
	}

	return results.Unexpected[views.OrderView](
		fmt.Sprintf("An unexpected error occurred while updating the order status: %s", err), err)
}
