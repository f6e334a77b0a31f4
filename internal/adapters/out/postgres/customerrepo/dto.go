// Package customerrepo provides data transfer objects and mapping functions for
// customer persistence, including the customer's order history association.
package customerrepo

import (
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
// Orders is the has-many association loaded only by GetWithOrders.
type CustomerDTO struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"size:100;not null"`
	Segment int
	Orders  []orderrepo.OrderDTO `gorm:"foreignKey:CustomerID"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
// The order history is persisted through the order repository, never here.
func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID(),
		Name:    c.Name(),
		Segment: int(c.Segment()),
	}
}

// toDomain converts a database DTO to a customer domain aggregate using
// RestoreCustomer, restoring whatever order history was loaded with it.
func toDomain(dto CustomerDTO) *customer.Customer {
	var orders []*order.Order
	if len(dto.Orders) > 0 {
		orders = make([]*order.Order, 0, len(dto.Orders))
		for _, orderDTO := range dto.Orders {
			orders = append(orders, orderrepo.ToDomain(orderDTO))
		}
	}

	return customer.RestoreCustomer(dto.ID, dto.Name, customer.Segment(dto.Segment), orders)
}
