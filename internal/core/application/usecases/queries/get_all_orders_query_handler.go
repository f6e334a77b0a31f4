package queries

import (
	"context"
	"fmt"

	"ordering/internal/core/application/views"
	"ordering/internal/pkg/results"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves every order joined with its customer.
// Results are sorted by order ID for consistent output.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the full order listing.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing. An empty store yields a Success with an empty
// slice, never a NotFound.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) results.Result[[]views.OrderView] {
	if err := query.Validate(); err != nil {
		return h.fault(err)
	}

	orderViews := make([]views.OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY o.id
	`).Rows()
	if err != nil {
		return h.fault(err)
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return h.fault(scanErr)
		}
		orderViews = append(orderViews, view)
	}

	if err = rows.Err(); err != nil {
		return h.fault(err)
	}

	return results.Ok(orderViews)
}

func (h GetAllOrdersQueryHandler) fault(err error) results.Result[[]views.OrderView] {
	return results.Unexpected[[]views.OrderView](
		fmt.Sprintf("A database error occurred while retrieving all orders: %s", err), err)
}
