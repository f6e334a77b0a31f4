// Package http exposes the ordering API over Echo. Handlers translate HTTP
// requests into commands and queries, and map every result kind onto a status
// code exhaustively, so an unhandled kind can never leak as a success.
package http

import (
	"net/http"
	"strconv"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/pkg/results"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the wire format of POST /orders.
type CreateOrderRequest struct {
	CustomerID  int64           `json:"customerId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// UpdateOrderStatusRequest is the wire format of PUT /orders/status.
type UpdateOrderStatusRequest struct {
	OrderID   int64  `json:"orderId"`
	NewStatus string `json:"newStatus"`
}

// ErrorResponse is the wire format of every non-validation error.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorItem describes one violated rule in a validation response.
type ValidationErrorItem struct {
	Message    string   `json:"message"`
	FieldNames []string `json:"fieldNames,omitempty"`
}

// ValidationErrorResponse is the wire format of a 400 validation failure.
type ValidationErrorResponse struct {
	Code    int                   `json:"code"`
	Message string                `json:"message"`
	Errors  []ValidationErrorItem `json:"errors"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderByIDHandler      queries.GetOrderByIDQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getOrderAnalyticsHandler queries.GetOrderAnalyticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderAnalyticsHandler queries.GetOrderAnalyticsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderAnalyticsHandler: getOrderAnalyticsHandler,
	}
}

// RegisterRoutes binds every API route on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetAllOrders)
	e.GET("/orders/:id", s.GetOrderByID)
	e.PUT("/orders/status", s.UpdateOrderStatus)
	e.GET("/analytics/orders", s.GetOrderAnalytics)
}

// respond maps a result onto its HTTP representation. The switch is
// exhaustive over the kind taxonomy; unknown kinds fall through to 500.
func respond[T any](ctx echo.Context, result results.Result[T], successStatus int) error {
	switch result.Kind() {
	case results.KindSuccess:
		return ctx.JSON(successStatus, result.Value())

	case results.KindValidationFailure:
		items := make([]ValidationErrorItem, 0, len(result.ValidationErrors()))
		for _, validationErr := range result.ValidationErrors() {
			items = append(items, ValidationErrorItem{
				Message:    validationErr.Message,
				FieldNames: validationErr.FieldNames,
			})
		}
		return ctx.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Validation failed.",
			Errors:  items,
		})

	case results.KindNotFound:
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: result.Message(),
		})

	case results.KindUnauthorized:
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: result.Message(),
		})

	case results.KindAlreadyExists, results.KindInUse:
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: result.Message(),
		})

	case results.KindUnexpectedError:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: result.Message(),
		})

	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "An unexpected error occurred.",
		})
	}
}

// CreateOrder handles POST /orders.
//
//	@Summary		Place a new order
//	@Description	Creates an order for a customer, applying the segment discount policy.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order to place"
//	@Success		201		{object}	views.OrderView
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd := commands.NewCreateOrderCommand(request.CustomerID, request.TotalAmount)
	result := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	return respond(ctx, result, http.StatusCreated)
}

// GetOrderByID handles GET /orders/:id.
//
//	@Summary		Get one order
//	@Description	Retrieves an order with its customer's name and segment.
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"Order ID"
//	@Success		200	{object}	views.OrderView
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/orders/{id} [get]
func (s *Server) GetOrderByID(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query := queries.NewGetOrderByIDQuery(id)
	result := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, http.StatusOK)
}

// GetAllOrders handles GET /orders.
//
//	@Summary		List all orders
//	@Description	Retrieves every order with customer fields denormalized.
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		views.OrderView
//	@Failure		500	{object}	ErrorResponse
//	@Router			/orders [get]
func (s *Server) GetAllOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()
	result := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, http.StatusOK)
}

// UpdateOrderStatus handles PUT /orders/status.
//
//	@Summary		Update an order's status
//	@Description	Advances an order through its lifecycle state machine.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateOrderStatusRequest	true	"Status change"
//	@Success		200		{object}	views.OrderView
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/orders/status [put]
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd := commands.NewUpdateOrderStatusCommand(request.OrderID, request.NewStatus)
	result := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	return respond(ctx, result, http.StatusOK)
}

// GetOrderAnalytics handles GET /analytics/orders.
//
//	@Summary		Order analytics
//	@Description	Aggregates order counts, the average order value, and the average fulfillment time.
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	views.OrderAnalyticsView
//	@Failure		500	{object}	ErrorResponse
//	@Router			/analytics/orders [get]
func (s *Server) GetOrderAnalytics(ctx echo.Context) error {
	query := queries.NewGetOrderAnalyticsQuery()
	result := s.getOrderAnalyticsHandler.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, http.StatusOK)
}
