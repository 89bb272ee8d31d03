package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/ports"
)

// ClaimOrderCommandHandler assigns a cooked order to the claiming driver.
//
// The pre-checks on the loaded aggregate exist to give the precise denial
// reason; the decisive check is the repository's conditional update, which
// succeeds only if the driver is still unset and the status still Cooked at
// write time. Two drivers racing for the same order cannot both win.
type ClaimOrderCommandHandler struct {
	orders   ports.OrderRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewClaimOrderCommandHandler creates a handler for order claims.
func NewClaimOrderCommandHandler(
	orders ports.OrderRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		orders:   orders,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle processes the claim. On success the order carries the driver and
// status PickedUp, and the update event fans out.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	loadedOrder, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = loadedOrder.CanBeClaimed(); err != nil {
		return err
	}

	if err = h.orders.Claim(ctx, loadedOrder.ID(), cmd.Driver().ID()); err != nil {
		return err
	}

	snapshot, err := h.orders.GetSnapshot(ctx, loadedOrder.ID())
	if err != nil {
		return err
	}

	publish(ctx, h.logger, h.notifier, ports.TopicNewOrderUpdate, snapshot)

	return nil
}
