package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrGetOrderAnalyticsQueryIsNotConstructed = errors.New(
	"GetOrderAnalyticsQuery must be created via NewGetOrderAnalyticsQuery constructor",
)

// GetOrderAnalyticsQuery aggregates order statistics across the whole store:
// order counts by status, the average final amount, and the average
// fulfillment time of delivered orders.
type GetOrderAnalyticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderAnalyticsQuery creates a query for aggregate order statistics.
func NewGetOrderAnalyticsQuery() GetOrderAnalyticsQuery {
	return GetOrderAnalyticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderAnalyticsQueryIsNotConstructed if validation fails.
func (q GetOrderAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAnalyticsQueryIsNotConstructed)
}
