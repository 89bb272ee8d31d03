package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
)

// Topic names a notification stream on the external bus. Delivery is
// at-least-once with no ordering guarantee across topics.
type Topic string

const (
	// TopicNewPendingOrder announces a freshly created order to its
	// restaurant's owner dashboard.
	TopicNewPendingOrder Topic = "NEW_PENDING_ORDER"

	// TopicNewCookedOrder announces a cooked order to the driver pool.
	TopicNewCookedOrder Topic = "NEW_COOKED_ORDER"

	// TopicNewOrderUpdate announces every successful status or claim change
	// to the client, the owner, and the assigned driver.
	TopicNewOrderUpdate Topic = "NEW_ORDER_UPDATE"
)

// SnapshotSelection is a selected option-choice pair with display names and
// the surcharge, as subscribers render it.
type SnapshotSelection struct {
	OptionID   kernel.UUID `json:"optionId"`
	OptionName string      `json:"optionName"`
	ChoiceID   kernel.UUID `json:"choiceId"`
	ChoiceName string      `json:"choiceName"`
	Extra      int64       `json:"extra"`
}

// SnapshotItem is one order line enriched with dish name and price.
type SnapshotItem struct {
	DishID     kernel.UUID         `json:"dishId"`
	DishName   string              `json:"dishName"`
	DishPrice  int64               `json:"dishPrice"`
	Count      int                 `json:"count"`
	Selections []SnapshotSelection `json:"selections"`
}

// SnapshotRestaurant identifies the restaurant and its owner, so subscribers
// can route owner-facing events without a second lookup.
type SnapshotRestaurant struct {
	ID      kernel.UUID `json:"id"`
	OwnerID kernel.UUID `json:"ownerId"`
	Name    string      `json:"name"`
}

// OrderSnapshot is the notification payload: the affected order enriched with
// the relations subscribers need. It is ephemeral, never persisted, and the
// engine keeps no queue or retry state for it.
type OrderSnapshot struct {
	OrderID    kernel.UUID        `json:"orderId"`
	ClientID   kernel.UUID        `json:"clientId"`
	DriverID   *kernel.UUID       `json:"driverId,omitempty"`
	Status     string             `json:"status"`
	Total      *int64             `json:"total,omitempty"`
	Street     string             `json:"street"`
	Lat        float64            `json:"lat"`
	Lon        float64            `json:"lon"`
	Restaurant SnapshotRestaurant `json:"restaurant"`
	Items      []SnapshotItem     `json:"items"`
}

// Notifier publishes lifecycle events to named topics on the external bus.
// Publishing is fire-and-forget relative to the triggering operation: a
// failed publish must never convert a committed state change into a failure.
type Notifier interface {
	Publish(ctx context.Context, topic Topic, event *OrderSnapshot) error
}
