// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The id is generated by the database; Version is the optimistic-concurrency
// token checked on every update.
type OrderDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID     int64 `gorm:"index;not null"`
	OrderDate      time.Time
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status         int             `gorm:"index"`
	DeliveredAt    *time.Time
	Version        int `gorm:"not null;default:1"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// FromDomain converts an order domain aggregate to its database representation.
func FromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID(),
		CustomerID:     o.CustomerID(),
		OrderDate:      o.OrderDate(),
		TotalAmount:    o.TotalAmount(),
		DiscountAmount: o.DiscountAmount(),
		Status:         int(o.Status()),
		DeliveredAt:    o.DeliveredAt(),
		Version:        o.Version(),
	}
}

// ToDomain converts a database DTO to an order domain aggregate using
// RestoreOrder. Exported because the customer repository restores order
// histories from the same rows.
func ToDomain(dto OrderDTO) *order.Order {
	var deliveredAt *time.Time
	if dto.DeliveredAt != nil {
		t := dto.DeliveredAt.UTC()
		deliveredAt = &t
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.OrderDate.UTC(),
		dto.TotalAmount,
		dto.DiscountAmount,
		order.Status(dto.Status),
		deliveredAt,
		dto.Version,
	)
}
