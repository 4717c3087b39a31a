package customorder

import (
	"fmt"

	"groupbuy/internal/pkg/errs"
)

// Status represents the lifecycle state of a custom order.
//
// The happy path is strictly sequential:
//
//	PendingAnalysis ──> Priced ──> Confirmed ──> InCollective ──> SupplierPaid
//	                                   ^              │
//	                                   └──────────────┘ (detach)
//	SupplierPaid ──> InTransit ──> Received ──> Delivered
//
// Cancelled and Refunded are reachable from every non-terminal state.
// Transition legality lives in a single (state, action) table so the graph
// has one source of truth; the aggregate methods consult it through Apply.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPendingAnalysis is the state of a freshly submitted request
	// awaiting admin pricing.
	StatusPendingAnalysis

	// StatusPriced means an admin has set the final price and supplier.
	StatusPriced

	// StatusConfirmed means the customer accepted the price. This is the
	// signal the pool aggregator listens for.
	StatusConfirmed

	// StatusInCollective means the order is attached to a collective order.
	StatusInCollective

	// StatusSupplierPaid through StatusDelivered mirror the owning pool's
	// progress; they are only ever set by the pool cascade, never directly
	// by a client action.
	StatusSupplierPaid
	StatusInTransit
	StatusReceived

	// StatusDelivered is a final state: the customer has their item.
	StatusDelivered

	// StatusCancelled is a final state reached by an explicit cancellation.
	StatusCancelled

	// StatusRefunded is a final state: cancelled with a refund ledger credit.
	StatusRefunded
)

// Action identifies a requested status transition for a custom order.
type Action string

const (
	ActionAnalyze          Action = "analyze"
	ActionConfirm          Action = "confirm"
	ActionAttachToPool     Action = "attachToPool"
	ActionDetachFromPool   Action = "detachFromPool"
	ActionMarkSupplierPaid Action = "markSupplierPaid"
	ActionMarkShipped      Action = "markShipped"
	ActionMarkReceived     Action = "markReceived"
	ActionMarkDelivered    Action = "markDelivered"
	ActionCancel           Action = "cancel"
	ActionRefund           Action = "refund"
)

// statusTransitions maps (state, action) to the allowed next state. Absence
// means the transition is illegal.
var statusTransitions = map[Status]map[Action]Status{
	StatusPendingAnalysis: {
		ActionAnalyze: StatusPriced,
		ActionCancel:  StatusCancelled,
		ActionRefund:  StatusRefunded,
	},
	StatusPriced: {
		ActionConfirm: StatusConfirmed,
		ActionCancel:  StatusCancelled,
		ActionRefund:  StatusRefunded,
	},
	StatusConfirmed: {
		ActionAttachToPool: StatusInCollective,
		ActionCancel:       StatusCancelled,
		ActionRefund:       StatusRefunded,
	},
	StatusInCollective: {
		ActionDetachFromPool:   StatusConfirmed,
		ActionMarkSupplierPaid: StatusSupplierPaid,
		ActionCancel:           StatusCancelled,
		ActionRefund:           StatusRefunded,
	},
	StatusSupplierPaid: {
		ActionMarkShipped: StatusInTransit,
		ActionCancel:      StatusCancelled,
		ActionRefund:      StatusRefunded,
	},
	StatusInTransit: {
		ActionMarkReceived: StatusReceived,
		ActionCancel:       StatusCancelled,
		ActionRefund:       StatusRefunded,
	},
	StatusReceived: {
		ActionMarkDelivered: StatusDelivered,
		ActionCancel:        StatusCancelled,
		ActionRefund:        StatusRefunded,
	},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "Unknown",
		StatusPendingAnalysis: "PendingAnalysis",
		StatusPriced:          "Priced",
		StatusConfirmed:       "Confirmed",
		StatusInCollective:    "InCollective",
		StatusSupplierPaid:    "SupplierPaid",
		StatusInTransit:       "InTransit",
		StatusReceived:        "Received",
		StatusDelivered:       "Delivered",
		StatusCancelled:       "Cancelled",
		StatusRefunded:        "Refunded",
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

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusRefunded
}

// Apply transitions the status according to the central transition table.
// Returns an InvalidStateTransitionError when the action is not legal from
// the current state.
func (s Status) Apply(action Action) (Status, error) {
	if next, ok := statusTransitions[s][action]; ok {
		return next, nil
	}
	return StatusUnknown, errs.NewInvalidStateTransitionError("CustomOrder", s.String(), string(action))
}
