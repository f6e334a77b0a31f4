// Package views defines the read models returned by query handlers and
// rendered by the transport layer. Views are flat snapshots: they carry
// denormalized customer fields next to order fields so callers never have to
// join aggregates themselves.
package views

import (
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderView is the read model of a single order enriched with the customer's
// name and segment. FinalAmount is derived from the order and never stored.
type OrderView struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	CustomerSegment string          `json:"customerSegment"`
	OrderDate       time.Time       `json:"orderDate"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	FinalAmount     decimal.Decimal `json:"finalAmount"`
	Status          string          `json:"status"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
}

// NewOrderView projects an order aggregate and its customer's denormalized
// fields into a view.
func NewOrderView(o *order.Order, customerName string, segment customer.Segment) OrderView {
	return OrderView{
		ID:              o.ID(),
		CustomerID:      o.CustomerID(),
		CustomerName:    customerName,
		CustomerSegment: segment.String(),
		OrderDate:       o.OrderDate(),
		TotalAmount:     o.TotalAmount(),
		DiscountAmount:  o.DiscountAmount(),
		FinalAmount:     o.FinalAmount(),
		Status:          o.Status().String(),
		DeliveredAt:     o.DeliveredAt(),
	}
}

// OrderAnalyticsView aggregates order statistics for reporting.
//
// AverageOrderValue averages the final amounts of all orders and is zero when
// no orders exist. AverageFulfillmentTimeInHours averages order-date-to-delivery
// spans over delivered orders only and is zero when none are delivered.
type OrderAnalyticsView struct {
	TotalOrders                   int64           `json:"totalOrders"`
	TotalPendingOrders            int64           `json:"totalPendingOrders"`
	TotalDeliveredOrders          int64           `json:"totalDeliveredOrders"`
	AverageOrderValue             decimal.Decimal `json:"averageOrderValue"`
	AverageFulfillmentTimeInHours float64         `json:"averageFulfillmentTimeInHours"`
}
