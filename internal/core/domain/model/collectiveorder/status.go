package collectiveorder

import (
	"fmt"

	"groupbuy/internal/pkg/errs"
)

// Status represents the lifecycle state of a collective order.
//
//	Open ──> MinimumReached ──> PaymentWindow ──> SupplierPaid ──> InTransit
//	                                                  ──> Received ──> Delivered ──> Closed
//
// Cancelled is reachable from Open, MinimumReached, and PaymentWindow; once
// the supplier has been paid the pool can only move forward. A pool never
// returns to Open after MinimumReached, even if a late detach drops the
// pooled value back below the threshold.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusOpen is the state of a pool accepting new member orders.
	StatusOpen

	// StatusMinimumReached means the pooled value crossed the supplier's
	// minimum. The crossing is permanent for the pool.
	StatusMinimumReached

	// StatusPaymentWindow is the customer payment-collection period bounded
	// by the payment deadline.
	StatusPaymentWindow

	// StatusSupplierPaid through StatusDelivered track physical fulfilment;
	// each transition cascades to every member order.
	StatusSupplierPaid
	StatusInTransit
	StatusReceived
	StatusDelivered

	// StatusClosed is a final state: delivered and financially settled.
	StatusClosed

	// StatusCancelled is a final state reachable only before supplier payment.
	StatusCancelled
)

// Action identifies a requested status transition for a collective order.
type Action string

const (
	ActionReachMinimum      Action = "reachMinimum"
	ActionOpenPaymentWindow Action = "openPaymentWindow"
	ActionPaySupplier       Action = "paySupplier"
	ActionMarkShipped       Action = "markShipped"
	ActionMarkReceived      Action = "markReceived"
	ActionMarkDelivered     Action = "markDelivered"
	ActionClose             Action = "close"
	ActionCancel            Action = "cancel"
)

// statusTransitions maps (state, action) to the allowed next state. Absence
// means the transition is illegal.
var statusTransitions = map[Status]map[Action]Status{
	StatusOpen: {
		ActionReachMinimum: StatusMinimumReached,
		ActionCancel:       StatusCancelled,
	},
	StatusMinimumReached: {
		ActionOpenPaymentWindow: StatusPaymentWindow,
		ActionCancel:            StatusCancelled,
	},
	StatusPaymentWindow: {
		ActionPaySupplier: StatusSupplierPaid,
		ActionCancel:      StatusCancelled,
	},
	StatusSupplierPaid: {
		ActionMarkShipped: StatusInTransit,
	},
	StatusInTransit: {
		ActionMarkReceived: StatusReceived,
	},
	StatusReceived: {
		ActionMarkDelivered: StatusDelivered,
	},
	StatusDelivered: {
		ActionClose: StatusClosed,
	},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusOpen:           "Open",
		StatusMinimumReached: "MinimumReached",
		StatusPaymentWindow:  "PaymentWindow",
		StatusSupplierPaid:   "SupplierPaid",
		StatusInTransit:      "InTransit",
		StatusReceived:       "Received",
		StatusDelivered:      "Delivered",
		StatusClosed:         "Closed",
		StatusCancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusCancelled
}

// StatusFromString parses a persisted status name back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Apply transitions the status according to the central transition table.
// Returns an InvalidStateTransitionError when the action is not legal from
// the current state.
func (s Status) Apply(action Action) (Status, error) {
	if next, ok := statusTransitions[s][action]; ok {
		return next, nil
	}
	return StatusUnknown, errs.NewInvalidStateTransitionError("CollectiveOrder", s.String(), string(action))
}
