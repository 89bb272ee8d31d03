// Package queries contains the read side of the order lifecycle. Query
// handlers go straight to the database with read-optimized SQL instead of
// rehydrating aggregates, and enforce per-order visibility: an order is
// visible to its client, the owner of its restaurant, and the assigned
// driver, and to nobody else.
package queries

import (
	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrNotAllowedToSeeOrder denies reads by actors unrelated to the order.
// Deliberately an authorization denial rather than a not-found: the order id
// is not secret, the contents are.
var ErrNotAllowedToSeeOrder = errs.NewNotAuthorizedError("you can't see this order")

// OrderResponse is the summary projection of one order.
type OrderResponse struct {
	ID             kernel.UUID
	ClientID       kernel.UUID
	RestaurantID   kernel.UUID
	RestaurantName string
	DriverID       *kernel.UUID
	Status         string
	Total          *int64
	Street         string
	Lat            float64
	Lon            float64
}

// SelectionResponse is one selected option-choice pair with display names.
type SelectionResponse struct {
	OptionID   kernel.UUID
	OptionName string
	ChoiceID   kernel.UUID
	ChoiceName string
	Extra      int64
}

// ItemResponse is one order line with dish name and price.
type ItemResponse struct {
	DishID     kernel.UUID
	DishName   string
	DishPrice  int64
	Count      int
	Selections []SelectionResponse
}

// DetailOrderResponse is the full projection: the summary plus the lines.
type DetailOrderResponse struct {
	OrderResponse
	Items []ItemResponse
}

// visibleTo reports whether the viewer is related to the order as its client,
// the owner of its restaurant, or the assigned driver.
func (r OrderResponse) visibleTo(viewer actor.Actor, restaurantOwnerID kernel.UUID) bool {
	if r.ClientID.IsEqual(viewer.ID()) {
		return true
	}
	if restaurantOwnerID.IsEqual(viewer.ID()) {
		return true
	}
	return r.DriverID != nil && r.DriverID.IsEqual(viewer.ID())
}
