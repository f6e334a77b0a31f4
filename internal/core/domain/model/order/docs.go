// Package order contains the Order aggregate and its status lifecycle.
//
// An order is created in Pending status with a zero discount, receives its
// discount exactly once at creation, and then advances through the status
// state machine until it reaches a terminal state (Delivered or Cancelled).
// The delivered timestamp is stamped exactly once, at the Shipped -> Delivered
// transition.
package order
