package credit

import (
	"fmt"

	"groupbuy/internal/pkg/errs"
)

// Status represents the lifecycle state of a ledger entry.
//
// The transition graph is strictly forward:
//
//	Pending ──> Active ──┬──> Used
//	                     ├──> Expired
//	                     └──> Blocked
//
// No entry re-enters Active once it has left it. Transition legality is
// checked centrally through the transition table below, so the graph has a
// single source of truth.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the state of an entry created but not yet confirmed.
	StatusPending

	// StatusActive is the state of an entry that counts toward the balance.
	StatusActive

	// StatusUsed is a final state: the credit has been consumed.
	StatusUsed

	// StatusExpired is a final state: the credit lapsed past its expiry.
	StatusExpired

	// StatusBlocked is a final state: the credit was administratively frozen.
	StatusBlocked
)

// Action identifies a requested status transition for a ledger entry.
type Action string

const (
	ActionActivate Action = "activate"
	ActionUse      Action = "use"
	ActionExpire   Action = "expire"
	ActionBlock    Action = "block"
)

// statusTransitions maps (state, action) to the allowed next state. Absence
// means the transition is illegal.
var statusTransitions = map[Status]map[Action]Status{
	StatusPending: {
		ActionActivate: StatusActive,
	},
	StatusActive: {
		ActionUse:    StatusUsed,
		ActionExpire: StatusExpired,
		ActionBlock:  StatusBlocked,
	},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		StatusPending: "Pending",
		StatusActive:  "Active",
		StatusUsed:    "Used",
		StatusExpired: "Expired",
		StatusBlocked: "Blocked",
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

// Apply transitions the status according to the central transition table.
// Returns an InvalidStateTransitionError when the action is not legal from
// the current state.
func (s Status) Apply(action Action) (Status, error) {
	if next, ok := statusTransitions[s][action]; ok {
		return next, nil
	}
	return StatusUnknown, errs.NewInvalidStateTransitionError("CreditTransaction", s.String(), string(action))
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
