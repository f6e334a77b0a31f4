package services_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	var deliveredAt *time.Time
	if status == order.Delivered {
		now := time.Now().UTC()
		deliveredAt = &now
	}
	return order.RestoreOrder(1, 42, time.Now().UTC(),
		decimal.NewFromInt(50), decimal.Zero, status, deliveredAt, 1)
}

func history(t *testing.T, statuses ...order.Status) []*order.Order {
	t.Helper()
	orders := make([]*order.Order, 0, len(statuses))
	for _, s := range statuses {
		orders = append(orders, restoredOrder(t, s))
	}
	return orders
}

func TestDiscountCalculator_ApplyDiscount(t *testing.T) {
	calculator := services.NewDiscountCalculator()

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(42, decimal.NewFromInt(200))
		require.NoError(t, err)
		return o
	}

	t.Run("new customer gets 10 percent on the first order", func(t *testing.T) {
		c := customer.RestoreCustomer(42, "Dana", customer.SegmentNew, nil)
		o := newOrder(t)

		discount, err := calculator.ApplyDiscount(o, c)
		require.NoError(t, err)

		assert.True(t, discount.Equal(decimal.NewFromInt(20)), discount.String())
		assert.True(t, o.DiscountAmount().Equal(decimal.NewFromInt(20)))
		assert.True(t, o.FinalAmount().Equal(decimal.NewFromInt(180)))
	})

	t.Run("new customer with any prior order gets nothing", func(t *testing.T) {
		c := customer.RestoreCustomer(42, "Dana", customer.SegmentNew,
			history(t, order.Cancelled))
		o := newOrder(t)

		discount, err := calculator.ApplyDiscount(o, c)
		require.NoError(t, err)

		assert.True(t, discount.IsZero())
		assert.True(t, o.FinalAmount().Equal(decimal.NewFromInt(200)))
	})

	t.Run("loyal customer gets 5 percent at five delivered orders", func(t *testing.T) {
		c := customer.RestoreCustomer(42, "Dana", customer.SegmentLoyal,
			history(t, order.Delivered, order.Delivered, order.Delivered,
				order.Delivered, order.Delivered))
		o := newOrder(t)

		discount, err := calculator.ApplyDiscount(o, c)
		require.NoError(t, err)

		assert.True(t, discount.Equal(decimal.NewFromInt(10)), discount.String())
		assert.True(t, o.FinalAmount().Equal(decimal.NewFromInt(190)))
	})

	t.Run("loyal customer below the threshold gets nothing", func(t *testing.T) {
		c := customer.RestoreCustomer(42, "Dana", customer.SegmentLoyal,
			history(t, order.Delivered, order.Delivered, order.Delivered,
				order.Delivered, order.Pending, order.Cancelled))
		o := newOrder(t)

		discount, err := calculator.ApplyDiscount(o, c)
		require.NoError(t, err)

		assert.True(t, discount.IsZero())
	})

	t.Run("wholesale and regular customers get nothing", func(t *testing.T) {
		for _, segment := range []customer.Segment{customer.SegmentWholesale, customer.SegmentRegular} {
			c := customer.RestoreCustomer(42, "Dana", segment, nil)
			o := newOrder(t)

			discount, err := calculator.ApplyDiscount(o, c)
			require.NoError(t, err, segment.String())
			assert.True(t, discount.IsZero(), segment.String())
		}
	})

	t.Run("a non-positive total yields zero discount for every segment", func(t *testing.T) {
		histories := map[customer.Segment][]*order.Order{
			customer.SegmentNew: nil,
			customer.SegmentLoyal: history(t, order.Delivered, order.Delivered,
				order.Delivered, order.Delivered, order.Delivered),
			customer.SegmentWholesale: nil,
			customer.SegmentRegular:   nil,
		}

		for _, total := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
			for segment, orders := range histories {
				c := customer.RestoreCustomer(42, "Dana", segment, orders)
				o := order.RestoreOrder(1, 42, time.Now().UTC(),
					total, decimal.Zero, order.Pending, nil, 1)

				discount, err := calculator.ApplyDiscount(o, c)
				require.NoError(t, err, "%s total %s", segment, total)

				assert.True(t, discount.IsZero(), "%s total %s", segment, total)
				assert.True(t, o.DiscountAmount().IsZero(), "%s total %s", segment, total)
			}
		}
	})

	t.Run("applied discount stays within zero and the total", func(t *testing.T) {
		// A first-order New customer carries the largest rate.
		c := customer.RestoreCustomer(42, "Dana", customer.SegmentNew, nil)

		for _, totalInt := range []int64{-100, 0, 1, 200, 100000} {
			total := decimal.NewFromInt(totalInt)
			o := order.RestoreOrder(1, 42, time.Now().UTC(),
				total, decimal.Zero, order.Pending, nil, 1)

			discount, err := calculator.ApplyDiscount(o, c)
			require.NoError(t, err, total.String())

			upper := decimal.Max(total, decimal.Zero)
			assert.False(t, discount.LessThan(decimal.Zero), total.String())
			assert.False(t, discount.GreaterThan(upper), total.String())
			assert.True(t, o.DiscountAmount().Equal(discount), total.String())
		}
	})

	t.Run("rejects missing inputs", func(t *testing.T) {
		c := customer.RestoreCustomer(42, "Dana", customer.SegmentNew, nil)
		o := newOrder(t)

		_, err := calculator.ApplyDiscount(nil, c)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = calculator.ApplyDiscount(o, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects an invalid segment", func(t *testing.T) {
		c := customer.RestoreCustomer(42, "Dana", customer.SegmentUnknown, nil)
		o := newOrder(t)

		_, err := calculator.ApplyDiscount(o, c)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
