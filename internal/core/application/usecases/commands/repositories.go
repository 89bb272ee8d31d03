// Package commands contains the write operations of the order lifecycle:
// creating orders, editing their status, and claiming them for delivery.
// All commands follow a consistent pattern: constructor validation, guarded
// domain transitions, persistence, then best-effort notification fan-out.
package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers that span multiple rows. Status edits and claims are single-row
// writes and take repositories directly instead.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogFactory provides access to the catalog reader within a transaction.
	CatalogFactory interface {
		Catalog() ports.CatalogReader
	}

	// OrderUoW manages the order-creation transaction: order row, item and
	// selection rows, price re-read, and total update commit together.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogFactory
	}

	// OrderUoWFactory creates new unit of work instances per request.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// publish sends a lifecycle event and swallows failures. The state change has
// already committed by the time this runs; the bus is best-effort and a
// publish error must not turn a successful operation into a failed one.
func publish(ctx context.Context, logger *slog.Logger, notifier ports.Notifier, topic ports.Topic, event *ports.OrderSnapshot) {
	if event == nil {
		return
	}
	if err := notifier.Publish(ctx, topic, event); err != nil {
		logger.ErrorContext(ctx, "failed to publish order event",
			"topic", string(topic),
			"order_id", event.OrderID.String(),
			"error", err,
		)
	}
}
