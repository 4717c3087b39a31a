package customorder

import (
	"fmt"

	"groupbuy/internal/pkg/errs"
)

// Urgency expresses how quickly a customer wants their request handled.
// Pending-analysis listings are ordered by urgency first, then by age.
type Urgency int

const (
	// UrgencyUnknown represents an invalid or undefined urgency.
	UrgencyUnknown Urgency = iota

	UrgencyLow
	UrgencyNormal
	UrgencyHigh
	UrgencyUrgent
)

func getUrgencyStrings() map[Urgency]string {
	return map[Urgency]string{
		UrgencyUnknown: "Unknown",
		UrgencyLow:     "Low",
		UrgencyNormal:  "Normal",
		UrgencyHigh:    "High",
		UrgencyUrgent:  "Urgent",
	}
}

// Validate checks if the Urgency is one of the defined levels.
func (u Urgency) Validate() error {
	if _, ok := getUrgencyStrings()[u]; !ok || u == UrgencyUnknown {
		return errs.NewValueIsInvalidErrorWithCause("urgency is invalid",
			fmt.Errorf("%d is not a valid urgency", u))
	}
	return nil
}

// String returns the human-readable name of the urgency.
func (u Urgency) String() string {
	if str, ok := getUrgencyStrings()[u]; ok {
		return str
	}
	return "Unknown"
}
