package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/ports"
)

// ReannounceCookedOrdersCommandHandler republishes the cooked-order
// announcement for every cooked order without a driver. A snapshot that
// fails to load or publish is logged and skipped; the rest of the batch
// still goes out.
type ReannounceCookedOrdersCommandHandler struct {
	orders   ports.OrderRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewReannounceCookedOrdersCommandHandler creates a handler for the
// re-announcement sweep.
func NewReannounceCookedOrdersCommandHandler(
	orders ports.OrderRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) ReannounceCookedOrdersCommandHandler {
	return ReannounceCookedOrdersCommandHandler{
		orders:   orders,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle processes one sweep over the unclaimed cooked orders.
func (h *ReannounceCookedOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd ReannounceCookedOrdersCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orderIDs, err := h.orders.ListCookedUnclaimed(ctx)
	if err != nil {
		return err
	}

	for _, orderID := range orderIDs {
		snapshot, snapshotErr := h.orders.GetSnapshot(ctx, orderID)
		if snapshotErr != nil {
			h.logger.ErrorContext(ctx, "failed to load snapshot for re-announcement",
				"orderId", orderID, "error", snapshotErr)
			continue
		}

		publish(ctx, h.logger, h.notifier, ports.TopicNewCookedOrder, snapshot)
	}

	return nil
}
