package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
)

// Restaurant is the catalog's view of a restaurant: enough to bind orders and
// derive ownership facts. Menu editing is out of scope; reads only.
type Restaurant struct {
	ID      kernel.UUID
	OwnerID kernel.UUID
	Name    string
}

// Dish is a menu entry with its base price.
type Dish struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        kernel.Money
}

// OptionChoice is one valid (option, choice) pairing for a dish, with the
// surcharge the choice adds.
type OptionChoice struct {
	OptionID kernel.UUID
	ChoiceID kernel.UUID
	Extra    kernel.Money
}

// CatalogReader exposes the read-only point lookups the order builder needs.
// No transactional guarantee is required across separate calls: the builder
// re-reads authoritative prices inside the creation transaction rather than
// trusting validation-time reads, so benign staleness between validate and
// finalize is accepted.
type CatalogReader interface {
	// FindRestaurant resolves a restaurant id, or returns a not-found error.
	FindRestaurant(ctx context.Context, id kernel.UUID) (*Restaurant, error)

	// FindDish resolves a dish id, or returns a not-found error.
	FindDish(ctx context.Context, id kernel.UUID) (*Dish, error)

	// FindOptionChoice resolves an (option, choice) pair scoped to a dish,
	// or returns a not-found error when the pairing is not valid for it.
	FindOptionChoice(ctx context.Context, dishID, optionID, choiceID kernel.UUID) (*OptionChoice, error)
}
