// Package customorder contains the CustomOrder aggregate: one customer's
// request for a specific item, driven from submission through pricing,
// confirmation, pooling, and delivery (or cancellation/refund) by the
// Status state machine in status.go.
package customorder
