// Package order provides the domain model for a food order and its lifecycle.
// It implements the Order aggregate root, the order's line items with their
// option-choice selections, the status state machine, and the role-gated
// transition guard.
//
// Key business rules:
//   - Orders are created in Pending status, bound to a client and a restaurant,
//     with at least one item; items exist only inside an order.
//   - Within one item, no option may carry more than one selected choice.
//   - The total is finalized exactly once per creation and never mutated after.
//   - Status changes pass through CanTransition, a pure decision table over
//     (current, requested, actor role, ownership and assignment facts).
//   - The driver is unset until a Delivery actor claims a Cooked order; the
//     claim moves the order to PickedUp.
//
// The aggregate can only be built through NewOrder or RestoreOrder, keeping
// invariants enforced on every path in and out of persistence.
package order
