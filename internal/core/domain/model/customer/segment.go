package customer

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Segment classifies a customer for discount purposes.
type Segment int

const (
	// SegmentUnknown represents an invalid or undefined segment.
	// This value (0) helps catch uninitialized Segment values.
	SegmentUnknown Segment = iota

	// SegmentNew marks a customer who has not completed any order yet.
	SegmentNew

	// SegmentLoyal marks a customer with an established delivery history.
	SegmentLoyal

	// SegmentWholesale marks a bulk buyer with negotiated pricing.
	SegmentWholesale

	// SegmentRegular marks every customer outside the other segments.
	SegmentRegular
)

func getValidSegmentStrings() map[Segment]string {
	return map[Segment]string{
		SegmentNew:       "New",
		SegmentLoyal:     "Loyal",
		SegmentWholesale: "Wholesale",
		SegmentRegular:   "Regular",
	}
}

// Validate checks if the Segment value is one of the four valid segments.
func (s Segment) Validate() error {
	if _, ok := getValidSegmentStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("segment is invalid",
			fmt.Errorf("%d is not a valid segment", s))
	}
	return nil
}

// String returns the human-readable name of the segment.
func (s Segment) String() string {
	if str, ok := getValidSegmentStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseSegment converts a wire-level segment name into a Segment value.
func ParseSegment(value string) (Segment, error) {
	for segment, str := range getValidSegmentStrings() {
		if str == value {
			return segment, nil
		}
	}
	return SegmentUnknown, errs.NewValueIsInvalidErrorWithCause("segment is invalid",
		fmt.Errorf("%q is not a valid segment", value))
}
