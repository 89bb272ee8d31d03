// Package ports defines the contracts between the order lifecycle core and
// its collaborators: the persistent order store, the read-only menu catalog,
// and the notification bus. The interfaces enable dependency inversion and
// let the engine be tested without live infrastructure.
package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Add, GetPricedItems, and UpdateTotal participate in the creation
// transaction when obtained through a unit of work; partial orders must
// never be visible outside that transaction.
type OrderRepository interface {
	// Add persists a new order with its items and selections.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id, without the restaurant projection.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetPricedItems re-reads the order's lines joined with the
	// authoritative dish prices and choice extras. Called inside the
	// creation transaction so the total reflects catalog state at commit.
	GetPricedItems(ctx context.Context, id kernel.UUID) ([]services.PricedItem, error)

	// UpdateTotal finalizes the computed total on the order row.
	UpdateTotal(ctx context.Context, id kernel.UUID, total kernel.Money) error

	// UpdateStatus persists a new status for the order. Single-row write;
	// the guard has already run.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error

	// Claim atomically assigns the driver and moves the order to PickedUp,
	// succeeding only if the driver is still unset and the status is still
	// Cooked at write time. A lost race returns a conflict error. This is
	// deliberately a single conditional update, not read-then-write: two
	// engine instances interleaving separate reads would both observe
	// "unclaimed" and both succeed.
	Claim(ctx context.Context, id kernel.UUID, driverID kernel.UUID) error

	// ListCookedUnclaimed returns ids of orders that are Cooked with no
	// driver assigned. Used to re-announce stranded orders to the pool.
	ListCookedUnclaimed(ctx context.Context) ([]kernel.UUID, error)

	// GetSnapshot loads the order enriched with the relations notification
	// subscribers need: restaurant, client reference, items with names and
	// prices.
	GetSnapshot(ctx context.Context, id kernel.UUID) (*OrderSnapshot, error)
}
