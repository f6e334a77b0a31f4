package customer_test

import (
	"testing"

	"ordering/internal/core/domain/model/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_Validate(t *testing.T) {
	t.Run("valid segments pass", func(t *testing.T) {
		for _, s := range []customer.Segment{
			customer.SegmentNew, customer.SegmentLoyal,
			customer.SegmentWholesale, customer.SegmentRegular,
		} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown and out of range values fail", func(t *testing.T) {
		assert.Error(t, customer.SegmentUnknown.Validate())
		assert.Error(t, customer.Segment(42).Validate())
	})
}

func TestSegment_String(t *testing.T) {
	testCases := []struct {
		segment  customer.Segment
		expected string
	}{
		{customer.SegmentNew, "New"},
		{customer.SegmentLoyal, "Loyal"},
		{customer.SegmentWholesale, "Wholesale"},
		{customer.SegmentRegular, "Regular"},
		{customer.SegmentUnknown, "Unknown"},
		{customer.Segment(42), "Unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.segment.String())
	}
}

func TestParseSegment(t *testing.T) {
	t.Run("round trips every valid name", func(t *testing.T) {
		for _, name := range []string{"New", "Loyal", "Wholesale", "Regular"} {
			parsed, err := customer.ParseSegment(name)
			require.NoError(t, err)
			assert.Equal(t, name, parsed.String())
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "new", "VIP"} {
			_, err := customer.ParseSegment(name)
			assert.Error(t, err, name)
		}
	})
}
