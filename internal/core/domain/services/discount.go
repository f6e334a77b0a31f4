// Package services contains stateless domain services that implement business
// rules spanning more than one aggregate.
package services

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// loyalDeliveredThreshold is the minimum number of delivered orders a Loyal
// customer needs before the loyalty rate applies.
const loyalDeliveredThreshold = 5

// DiscountCalculator is a domain service that computes and applies the discount
// for a new order based on the customer's segment and order history.
//
// Discount rules:
//   - New: 10% of the order total, only on the customer's very first order
//   - Loyal: 5% of the order total, only once the customer has at least
//     five delivered orders
//   - Wholesale, Regular: no discount
//
// The computed discount is clamped to [0, max(total, 0)] before being applied,
// so the final amount can never go negative, the discount can never exceed the
// total, and a non-positive total always yields a zero discount. The
// calculation is pure: it reads the customer's loaded order history and never
// touches storage.
//
// Example usage:
//
//	calculator := NewDiscountCalculator()
//	o, _ := order.NewOrder(customerID, total)
//
//	discount, err := calculator.ApplyDiscount(o, c)
//	if err != nil {
//	    // Handle invalid inputs
//	    return
//	}
//	// o now carries the discount; o.FinalAmount() reflects it
type DiscountCalculator struct{}

// NewDiscountCalculator creates a new DiscountCalculator instance.
func NewDiscountCalculator() DiscountCalculator {
	return DiscountCalculator{}
}

// ApplyDiscount computes the discount for o according to c's segment and
// applies it to the order.
//
// Parameters:
//   - o: The order receiving the discount (must not be nil)
//   - c: The customer placing the order, with their full order history loaded
//
// Returns:
//   - decimal.Decimal: The discount that was applied
//   - error: Validation errors for missing inputs or an invalid segment
func (d DiscountCalculator) ApplyDiscount(o *order.Order, c *customer.Customer) (decimal.Decimal, error) {
	if o == nil {
		return decimal.Zero, errs.NewValueIsRequiredError("order")
	}
	if c == nil {
		return decimal.Zero, errs.NewValueIsRequiredError("customer")
	}

	discount, err := d.calculate(o, c)
	if err != nil {
		return decimal.Zero, err
	}

	discount = clamp(discount, o.TotalAmount())
	if err := o.SetDiscount(discount); err != nil {
		return decimal.Zero, err
	}

	return discount, nil
}

func (d DiscountCalculator) calculate(o *order.Order, c *customer.Customer) (decimal.Decimal, error) {
	switch c.Segment() {
	case customer.SegmentNew:
		if c.OrderCount() == 0 {
			return o.TotalAmount().Mul(decimal.NewFromFloat(0.10)), nil
		}
		return decimal.Zero, nil

	case customer.SegmentLoyal:
		if c.DeliveredOrderCount() >= loyalDeliveredThreshold {
			return o.TotalAmount().Mul(decimal.NewFromFloat(0.05)), nil
		}
		return decimal.Zero, nil

	case customer.SegmentWholesale, customer.SegmentRegular:
		return decimal.Zero, nil

	default:
		return decimal.Zero, errs.NewValueIsInvalidError("customer segment")
	}
}

// clamp bounds the discount to [0, max(total, 0)]. A negative total yields zero.
func clamp(discount, total decimal.Decimal) decimal.Decimal {
	upper := total
	if upper.LessThan(decimal.Zero) {
		upper = decimal.Zero
	}
	if discount.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if discount.GreaterThan(upper) {
		return upper
	}
	return discount
}
