package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/application/views"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/results"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single order joined with its customer.
//
// Example:
//
//	handler := NewGetOrderByIDQueryHandler(db)
//	query := NewGetOrderByIDQuery(7)
//
//	result := handler.Handle(ctx, query)
//	if result.IsSuccess() {
//	    fmt.Printf("Order %d is %s\n", result.Value().ID, result.Value().Status)
//	}
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup.
//
// Outcome kinds:
//   - Success with the order view
//   - NotFound when no order has the requested id
//   - UnexpectedError for storage faults
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) results.Result[views.OrderView] {
	if err := query.Validate(); err != nil {
		return h.fault(query.OrderID(), err)
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.order_date,
			o.total_amount,
			o.discount_amount,
			o.status,
			o.delivered_at,
			o.version,
			c.name,
			c.segment
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ?
	`, query.OrderID()).Row()

	view, err := scanOrderView(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return results.NotFound[views.OrderView](
				fmt.Sprintf("Order with ID '%d' not found.", query.OrderID()))
		}
		return h.fault(query.OrderID(), err)
	}

	return results.Ok(view)
}

func (h GetOrderByIDQueryHandler) fault(orderID int64, err error) results.Result[views.OrderView] {
	return results.Unexpected[views.OrderView](
		fmt.Sprintf("A database error occurred while retrieving order %d: %s", orderID, err), err)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrderView reads one joined order-customer row and projects it into a
// view by restoring the order aggregate first, so derived fields like the
// final amount come from one place.
func scanOrderView(row rowScanner) (views.OrderView, error) {
	var (
		id             int64
		customerID     int64
		orderDate      time.Time
		totalAmount    decimal.Decimal
		discountAmount decimal.Decimal
		status         int
		deliveredAt    sql.NullTime
		version        int
		name           string
		segment        int
	)

	err := row.Scan(
		&id,
		&customerID,
		&orderDate,
		&totalAmount,
		&discountAmount,
		&status,
		&deliveredAt,
		&version,
		&name,
		&segment,
	)
	if err != nil {
		return views.OrderView{}, err
	}

	var deliveredAtPtr *time.Time
	if deliveredAt.Valid {
		t := deliveredAt.Time.UTC()
		deliveredAtPtr = &t
	}

	o := order.RestoreOrder(id, customerID, orderDate.UTC(),
		totalAmount, discountAmount, order.Status(status), deliveredAtPtr, version)

	return views.NewOrderView(o, name, customer.Segment(segment)), nil
}
