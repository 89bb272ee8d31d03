package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// ErrNotRestaurantOwner denies status edits by owners on restaurants they do
// not own. Raised before the transition guard runs, so the denial does not
// depend on the requested status.
var ErrNotRestaurantOwner = errs.NewNotAuthorizedError(
	"only the owner of the order's restaurant may edit its status",
)

// EditOrderStatusCommandHandler moves an order through its lifecycle.
// Loads the order with its restaurant ownership, derives the actor facts the
// transition guard needs, persists the new status, and fans out notifications.
//
// The status update is a single-row write, so no unit of work is involved:
// the repository call itself is the atomicity boundary.
type EditOrderStatusCommandHandler struct {
	orders   ports.OrderRepository
	catalog  ports.CatalogReader
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewEditOrderStatusCommandHandler creates a handler for status edits.
func NewEditOrderStatusCommandHandler(
	orders ports.OrderRepository,
	catalog ports.CatalogReader,
	notifier ports.Notifier,
	logger *slog.Logger,
) EditOrderStatusCommandHandler {
	return EditOrderStatusCommandHandler{
		orders:   orders,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle processes the status edit.
//
// When an owner moves the order to Cooked, the driver pool is announced to
// before the general update event. Repeating a denied request against
// unchanged state yields the identical denial.
func (h *EditOrderStatusCommandHandler) Handle(ctx context.Context, cmd EditOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	loadedOrder, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	restaurant, err := h.catalog.FindRestaurant(ctx, loadedOrder.RestaurantID())
	if err != nil {
		return err
	}

	editor := cmd.Editor()
	facts := order.TransitionFacts{
		IsOwnerOfRestaurant: restaurant.OwnerID.IsEqual(editor.ID()),
		IsAssignedDriver: loadedOrder.Driver() != nil &&
			loadedOrder.Driver().IsEqual(editor.ID()),
	}

	if editor.Role() == actor.Owner && !facts.IsOwnerOfRestaurant {
		return ErrNotRestaurantOwner
	}

	if err = loadedOrder.ChangeStatus(cmd.Status(), editor.Role(), facts); err != nil {
		return err
	}

	if err = h.orders.UpdateStatus(ctx, loadedOrder.ID(), loadedOrder.Status()); err != nil {
		return err
	}

	snapshot, err := h.orders.GetSnapshot(ctx, loadedOrder.ID())
	if err != nil {
		return err
	}

	if editor.Role() == actor.Owner && loadedOrder.Status() == order.Cooked {
		publish(ctx, h.logger, h.notifier, ports.TopicNewCookedOrder, snapshot)
	}
	publish(ctx, h.logger, h.notifier, ports.TopicNewOrderUpdate, snapshot)

	return nil
}
