package order

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root of the ordering domain.
//
// Invariants held at all times:
//   - totalAmount is strictly positive at creation
//   - discountAmount is within [0, max(totalAmount, 0)]
//   - status is a valid Status value
//   - deliveredAt is set if and only if status is Delivered
type Order struct {
	guard.ConstructorGuard

	id             int64
	customerID     int64
	orderDate      time.Time
	totalAmount    decimal.Decimal
	discountAmount decimal.Decimal
	status         Status
	deliveredAt    *time.Time
	version        int
}

// NewOrder creates a new order for a customer in Pending status with a zero
// discount. The order date is stamped with the current UTC time. The id is
// zero until storage assigns one via AssignID.
func NewOrder(customerID int64, totalAmount decimal.Decimal) (*Order, error) {
	err := errors.Join(
		validateCustomerID(customerID),
		validateTotalAmount(totalAmount),
	)
	if err != nil {
		return nil, err
	}

	return &Order{
		ConstructorGuard: guard.NewConstructorGuard(),

		id:             0,
		customerID:     customerID,
		orderDate:      time.Now().UTC(),
		totalAmount:    totalAmount,
		discountAmount: decimal.Zero,
		status:         Pending,
	}, nil
}

// RestoreOrder reconstructs an order from storage without re-running creation
// rules. Values are trusted to have been validated when first persisted.
func RestoreOrder(
	id int64,
	customerID int64,
	orderDate time.Time,
	totalAmount decimal.Decimal,
	discountAmount decimal.Decimal,
	status Status,
	deliveredAt *time.Time,
	version int,
) *Order {
	return &Order{
		ConstructorGuard: guard.NewConstructorGuard(),

		id:             id,
		customerID:     customerID,
		orderDate:      orderDate,
		totalAmount:    totalAmount,
		discountAmount: discountAmount,
		status:         status,
		deliveredAt:    deliveredAt,
		version:        version,
	}
}

func validateCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customerID")
	}
	return nil
}

func validateTotalAmount(totalAmount decimal.Decimal) error {
	if totalAmount.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidError("totalAmount")
	}
	return nil
}

// ID returns the order identifier. Zero means the order is not persisted yet.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// OrderDate returns the UTC time the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// TotalAmount returns the gross amount before discount.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// DiscountAmount returns the absolute discount applied to the order.
func (o *Order) DiscountAmount() decimal.Decimal {
	return o.discountAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveredAt returns the delivery timestamp, or nil while undelivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Version returns the optimistic-concurrency token loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// FinalAmount returns the amount the customer pays: total minus discount.
// It is derived and never stored independently.
func (o *Order) FinalAmount() decimal.Decimal {
	return o.totalAmount.Sub(o.discountAmount)
}

// AssignID binds the storage-generated identifier to a newly created order.
// It may be called once, with a positive id.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidError("id is already assigned")
	}
	o.id = id
	return nil
}

// SetDiscount sets the absolute discount on the order. The discount must be
// non-negative and must not exceed the total amount. A restored order with a
// non-positive total accepts only a zero discount.
func (o *Order) SetDiscount(discount decimal.Decimal) error {
	upper := o.totalAmount
	if upper.LessThan(decimal.Zero) {
		upper = decimal.Zero
	}
	if discount.LessThan(decimal.Zero) || discount.GreaterThan(upper) {
		return errs.NewValueIsOutOfRangeError("discount", discount, decimal.Zero, upper)
	}
	o.discountAmount = discount
	return nil
}

// TransitionTo advances the order to newStatus if the state machine allows it.
// The Shipped -> Delivered transition additionally stamps the delivery time
// with the current UTC time.
func (o *Order) TransitionTo(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	if next == Delivered {
		now := time.Now().UTC()
		o.deliveredAt = &now
	}
	return nil
}
