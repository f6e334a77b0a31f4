package queries

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ordering/internal/core/application/views"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/results"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderAnalyticsQueryHandler computes aggregate order statistics.
//
// The handler loads the amount, status, and timing columns of every order and
// aggregates in Go so the averaging rules live next to each other: the average
// order value is taken over final amounts (total minus discount) of all
// orders, while the delivered count and the average fulfillment time are both
// taken over orders that are Delivered and carry a delivery timestamp,
// measured from order date to delivery in hours. Empty denominators yield
// zero, never an error.
type GetOrderAnalyticsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderAnalyticsQueryHandler creates a handler for order analytics.
// Requires a GORM database connection for query execution.
func NewGetOrderAnalyticsQueryHandler(db *gorm.DB) GetOrderAnalyticsQueryHandler {
	return GetOrderAnalyticsQueryHandler{db: db}
}

// Handle executes the aggregation.
func (h GetOrderAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderAnalyticsQuery,
) results.Result[views.OrderAnalyticsView] {
	if err := query.Validate(); err != nil {
		return h.fault(err)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_date,
			total_amount,
			discount_amount,
			status,
			delivered_at
		FROM orders
	`).Rows()
	if err != nil {
		return h.fault(err)
	}
	defer rows.Close()

	var (
		totalOrders      int64
		pendingOrders    int64
		deliveredOrders  int64
		finalAmountSum   decimal.Decimal
		fulfillmentTotal time.Duration
	)

	for rows.Next() {
		var (
			orderDate      time.Time
			totalAmount    decimal.Decimal
			discountAmount decimal.Decimal
			status         int
			deliveredAt    sql.NullTime
		)

		if err = rows.Scan(&orderDate, &totalAmount, &discountAmount, &status, &deliveredAt); err != nil {
			return h.fault(err)
		}

		totalOrders++
		finalAmountSum = finalAmountSum.Add(totalAmount.Sub(discountAmount))

		switch order.Status(status) {
		case order.Pending:
			pendingOrders++
		case order.Delivered:
			// Counted only with a timestamp, so the delivered count and
			// the fulfillment average cover the same rows.
			if deliveredAt.Valid {
				deliveredOrders++
				fulfillmentTotal += deliveredAt.Time.Sub(orderDate)
			}
		}
	}

	if err = rows.Err(); err != nil {
		return h.fault(err)
	}

	view := views.OrderAnalyticsView{
		TotalOrders:          totalOrders,
		TotalPendingOrders:   pendingOrders,
		TotalDeliveredOrders: deliveredOrders,
	}
	if totalOrders > 0 {
		view.AverageOrderValue = finalAmountSum.Div(decimal.NewFromInt(totalOrders)).Round(2)
	}
	if deliveredOrders > 0 {
		view.AverageFulfillmentTimeInHours = fulfillmentTotal.Hours() / float64(deliveredOrders)
	}

	return results.Ok(view)
}

func (h GetOrderAnalyticsQueryHandler) fault(err error) results.Result[views.OrderAnalyticsView] {
	return results.Unexpected[views.OrderAnalyticsView](
		fmt.Sprintf("An unexpected error occurred while retrieving order analytics: %s", err), err)
}
