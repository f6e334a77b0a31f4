package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/results"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateOrderCommand(42, decimal.NewFromInt(200))
	c := customer.RestoreCustomer(42, "Dana", customer.SegmentNew, nil)

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetWithOrders", mock.Anything, int64(42)).Return(c, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				o := args.Get(1).(*order.Order)
				_ = o.AssignID(7)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, passValidator{})
	result := h.Handle(ctx, cmd)

	require.True(t, result.IsSuccess(), result.Message())
	view := result.Value()
	assert.Equal(t, int64(7), view.ID)
	assert.Equal(t, "Dana", view.CustomerName)
	assert.Equal(t, "New", view.CustomerSegment)
	assert.Equal(t, "Pending", view.Status)
	assert.True(t, view.DiscountAmount.Equal(decimal.NewFromInt(20)), "first order of a new customer gets 10 percent")
	assert.True(t, view.FinalAmount.Equal(decimal.NewFromInt(180)))

	customerRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationFailure(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateOrderCommand(0, decimal.Zero)

	factory := new(MockUoWFactory)
	validator := failValidator{violations: []results.ValidationError{
		{Message: "Customer ID is required.", FieldNames: []string{"customerId"}},
		{Message: "Total amount must be greater than zero.", FieldNames: []string{"totalAmount"}},
	}}

	h := commands.NewCreateOrderCommandHandler(factory, validator)
	result := h.Handle(ctx, cmd)

	assert.Equal(t, results.KindValidationFailure, result.Kind())
	require.Len(t, result.ValidationErrors(), 2)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateOrderCommand

	h := commands.NewCreateOrderCommandHandler(new(MockUoWFactory), passValidator{})
	result := h.Handle(ctx, cmd)

	assert.Equal(t, results.KindUnexpectedError, result.Kind())
}

func TestCreateOrderCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateOrderCommand(99, decimal.NewFromInt(200))

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetWithOrders", mock.Anything, int64(99)).
			Return(nil, errs.NewObjectNotFoundError("customerID", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, passValidator{})
	result := h.Handle(ctx, cmd)

	assert.Equal(t, results.KindNotFound, result.Kind())
	assert.Equal(t, "Customer with ID '99' not found.", result.Message())
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DatabaseError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateOrderCommand(42, decimal.NewFromInt(200))
	c := customer.RestoreCustomer(42, "Dana", customer.SegmentRegular, nil)

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetWithOrders", mock.Anything, int64(42)).Return(c, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errs.NewDatabaseError("insert order", errors.New("connection reset"))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, passValidator{})
	result := h.Handle(ctx, cmd)

	assert.Equal(t, results.KindUnexpectedError, result.Kind())
	assert.Equal(t, "A database error occurred while creating the order: connection reset", result.Message())
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateOrderCommand(42, decimal.NewFromInt(200))

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, passValidator{})
	result := h.Handle(ctx, cmd)

	assert.Equal(t, results.KindUnexpectedError, result.Kind())
	assert.Contains(t, result.Message(), "An unexpected error occurred while creating the order")
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateOrderCommand(42, decimal.NewFromInt(200))
	c := customer.RestoreCustomer(42, "Dana", customer.SegmentRegular, nil)

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetWithOrders", mock.Anything, int64(42)).Return(c, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, passValidator{})
	result := h.Handle(ctx, cmd)

	assert.Equal(t, results.KindUnexpectedError, result.Kind())
	uow.AssertExpectations(t)
}
