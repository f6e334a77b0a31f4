package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │             │
//	   └──> Cancelled <──┘
//
// Delivered and Cancelled are terminal: no outgoing transitions exist.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order has been placed but not yet processed.
	Pending

	// Processing indicates the order is being prepared.
	Processing

	// Shipped indicates the order has been handed to the carrier.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before shipping. Terminal.
	Cancelled
)

// ErrInvalidStatusTransition is the sentinel wrapped by every rejected transition.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// allowedTransitions is the closed transition table of the state machine.
// Statuses absent from a value set are unreachable from that key.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
		Delivered:  {},
		Cancelled:  {},
	}
}

// Validate checks if the Status value is one of the five valid statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a wire-level status name into a Status value.
// Returns an error for any name outside the five valid statuses.
func ParseStatus(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", value))
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// StatusTransitionError describes a rejected status transition. Its message is
// user-facing and is surfaced verbatim as a validation failure.
type StatusTransitionError struct {
	From            Status
	To              Status
	AlreadyInStatus bool
}

func (e *StatusTransitionError) Error() string {
	if e.AlreadyInStatus {
		return fmt.Sprintf("Order is already in '%s' status.", e.To)
	}
	return fmt.Sprintf("Invalid status transition from '%s' to '%s'.", e.From, e.To)
}

func (e *StatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// TransitionTo decides whether the status may change to newStatus.
//
// Rules, evaluated in order:
//  1. newStatus equal to the current status is rejected as a no-op.
//  2. newStatus must appear in the allowed-transition table for the
//     current status; terminal statuses allow nothing.
//
// Returns:
//   - (newStatus, nil) when the transition is allowed
//   - (Unknown, *StatusTransitionError) when it is rejected
//
// This method decides only; applying the change and any side effects is the
// aggregate's responsibility.
func (s Status) TransitionTo(newStatus Status) (Status, error) {
	if newStatus == s {
		return Unknown, &StatusTransitionError{From: s, To: newStatus, AlreadyInStatus: true}
	}

	for _, allowed := range allowedTransitions()[s] {
		if newStatus == allowed {
			return newStatus, nil
		}
	}

	return Unknown, &StatusTransitionError{From: s, To: newStatus}
}
