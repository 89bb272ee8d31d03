package order

import (
	"eats/internal/core/domain/model/actor"
	"eats/internal/pkg/errs"
)

// Denial reasons returned by CanTransition. Each is a stable value: repeating
// a denied request against unchanged state yields the identical reason.
var (
	// ErrCannotEditToPending denies re-entering Pending, for every actor.
	ErrCannotEditToPending = errs.NewValueIsInvalidError("orders cannot be edited back to Pending")

	// ErrDeliveryRoleForbidden denies delivery drivers the kitchen-side statuses.
	ErrDeliveryRoleForbidden = errs.NewNotAuthorizedError("delivery role may only set PickedUp or Delivered")

	// ErrNotAssignedDriver denies drivers that are not assigned to the order.
	ErrNotAssignedDriver = errs.NewNotAuthorizedError("only the assigned driver may edit this order")

	// ErrOwnerRoleForbidden denies owners the delivery-side statuses.
	ErrOwnerRoleForbidden = errs.NewNotAuthorizedError("owner role may only set Cooking, Cooked, or Reject")
)

// TransitionFacts carries the per-order facts the guard needs about the actor.
// The caller derives them from the loaded order and its restaurant.
type TransitionFacts struct {
	IsOwnerOfRestaurant bool
	IsAssignedDriver    bool
}

// forbiddenTargets is the role-gated part of the decision table: for each
// restricted role, the statuses it may never request.
var forbiddenTargets = map[actor.Role]map[Status]bool{
	actor.Delivery: {Cooking: true, Cooked: true, Reject: true},
	actor.Owner:    {PickedUp: true, Delivered: true},
}

// CanTransition decides whether the requested status change is permitted.
// It is a pure function: same inputs, same outcome, no side effects.
//
// Rules, in evaluation order:
//  1. requested must be a valid non-Pending status; Pending is never a target.
//  2. Delivery actors may not request Cooking, Cooked, or Reject, and must be
//     the assigned driver for anything else.
//  3. Owner actors may not request PickedUp or Delivered.
//  4. Everything else is allowed.
//
// Restaurant-ownership scoping for owners is the caller's concern (see the
// edit-status handler): the guard only gates role against target status.
// The current status participates in the contract and is validated, but the
// rule set keys on role and target only.
func CanTransition(current, requested Status, role actor.Role, facts TransitionFacts) error {
	if err := current.Validate(); err != nil {
		return err
	}
	if err := requested.Validate(); err != nil {
		return err
	}

	if requested == Pending {
		return ErrCannotEditToPending
	}

	switch role {
	case actor.Delivery:
		if forbiddenTargets[actor.Delivery][requested] {
			return ErrDeliveryRoleForbidden
		}
		if !facts.IsAssignedDriver {
			return ErrNotAssignedDriver
		}
	case actor.Owner:
		if forbiddenTargets[actor.Owner][requested] {
			return ErrOwnerRoleForbidden
		}
	}

	return nil
}
