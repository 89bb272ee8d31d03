package order

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Pending is the sole initial state, set at creation. Owners move orders
// through Cooking, Cooked, or into Reject; delivery drivers move claimed
// orders through PickedUp into Delivered. Delivered and Reject are terminal
// in the workflow: no role's happy path leads out of them.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial state of every created order.
	Pending

	// Cooking means the restaurant accepted the order and is preparing it.
	Cooking

	// Cooked means the order is ready for a driver to claim.
	Cooked

	// PickedUp means an assigned driver has collected the order.
	PickedUp

	// Delivered means the order reached the client.
	Delivered

	// Reject means the restaurant declined the order.
	Reject
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Cooking:       "Cooking",
		Cooked:        "Cooked",
		PickedUp:      "PickedUp",
		Delivered:     "Delivered",
		Reject:        "Reject",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as invalid
	return map[Status]string{
		Pending:   "Pending",
		Cooking:   "Cooking",
		Cooked:    "Cooked",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Reject:    "Reject",
	}
}

// StatusFromString parses a status name as carried on the wire.
func StatusFromString(s string) (Status, error) {
	for status, name := range validStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// String implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects StatusUnknown and out-of-range values. Used on every value
// arriving from persistence or transport.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}
