// Package customer contains the Customer aggregate and the Segment value object.
//
// A customer's segment drives the discount policy applied when the customer
// places an order. The aggregate also exposes order-history counters that the
// policy reads, so the discount rules never reach into storage themselves.
package customer
