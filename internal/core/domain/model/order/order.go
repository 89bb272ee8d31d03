package order

import (
	"errors"

	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when a creation request carries no items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("order items")

	// ErrTotalAlreadyFinalized guards the set-total-exactly-once invariant.
	ErrTotalAlreadyFinalized = errs.NewConflictError("order total is already finalized")

	// ErrNotCookedYet is returned when a driver claims an order that is not Cooked.
	ErrNotCookedYet = errs.NewConflictError("order is not cooked yet")

	// ErrAlreadyClaimed is returned when a driver claims an order that already has one.
	ErrAlreadyClaimed = errs.NewConflictError("order already has a driver")
)

// ErrStreetIsRequired is returned when a delivery address has no street line.
var ErrStreetIsRequired = errs.NewValueIsRequiredError("street")

// Address is the delivery destination captured at creation time.
type Address struct {
	Street string
	Lat    float64
	Lon    float64
}

// Validate requires a street line. Coordinates are optional routing hints.
func (a Address) Validate() error {
	if a.Street == "" {
		return ErrStreetIsRequired
	}
	return nil
}

// Order is the aggregate root for one client purchase against one restaurant.
//
// Invariants:
//   - bound to a client and a restaurant, with at least one item
//   - driver is unset while status is Pending, Cooking, or Cooked
//   - the total is finalized exactly once and never mutated afterwards
//   - status only changes through the guarded transition path or the claim
type Order struct {
	id           kernel.UUID
	clientID     kernel.UUID
	restaurantID kernel.UUID
	driverID     *kernel.UUID
	status       Status
	total        kernel.Money
	totalSet     bool
	address      Address
	items        []Item

	isConstructed bool
}

// NewOrder creates a Pending order bound to a client and restaurant.
// The total is not yet finalized; the order builder computes it from
// authoritative catalog prices after the items are persisted.
func NewOrder(id, clientID, restaurantID kernel.UUID, address Address, items []Item) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		restaurantID.Validate(),
		address.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}

	return &Order{
		id:            id,
		clientID:      clientID,
		restaurantID:  restaurantID,
		status:        Pending,
		address:       address,
		items:         items,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. total is nil while the
// creation transaction has not finalized it.
func RestoreOrder(
	id, clientID, restaurantID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	total *kernel.Money,
	address Address,
	items []Item,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		restaurantID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		id:            id,
		clientID:      clientID,
		restaurantID:  restaurantID,
		driverID:      driverID,
		status:        status,
		address:       address,
		items:         items,
		isConstructed: true,
	}
	if total != nil {
		if err := total.Validate(); err != nil {
			return nil, err
		}
		o.total = *total
		o.totalSet = true
	}
	return o, nil
}

// Validate ensures the order came through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the ordering client.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// RestaurantID returns the restaurant the order targets.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Driver returns the assigned driver's id, or nil before a claim.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the finalized total and whether it has been finalized yet.
// Readers must treat orders without a finalized total as still in flight.
func (o *Order) Total() (kernel.Money, bool) {
	return o.total, o.totalSet
}

// Address returns the delivery destination.
func (o *Order) Address() Address {
	return o.address
}

// Items returns the order's line items.
func (o *Order) Items() []Item {
	return o.items
}

// FinalizeTotal records the computed total. It may succeed at most once per
// order; creation is the only path that calls it.
func (o *Order) FinalizeTotal(total kernel.Money) error {
	if o.totalSet {
		return ErrTotalAlreadyFinalized
	}
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	o.totalSet = true
	return nil
}

// ChangeStatus applies the transition guard and, when allowed, moves the
// order to the requested status. role and facts describe the acting principal.
func (o *Order) ChangeStatus(requested Status, role actor.Role, facts TransitionFacts) error {
	if err := CanTransition(o.status, requested, role, facts); err != nil {
		return err
	}
	o.status = requested
	return nil
}

// CanBeClaimed reports whether a driver may claim this order right now.
// The persistence layer still re-checks atomically at write time; this check
// exists to give callers the precise reason before attempting the claim.
func (o *Order) CanBeClaimed() error {
	if o.status != Cooked {
		return ErrNotCookedYet
	}
	if o.driverID != nil {
		return ErrAlreadyClaimed
	}
	return nil
}

// AssignDriver records a successful claim: driver set and status PickedUp.
// Mirrors the conditional update the store performs.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if err := o.CanBeClaimed(); err != nil {
		return err
	}
	o.driverID = &driverID
	o.status = PickedUp
	return nil
}
