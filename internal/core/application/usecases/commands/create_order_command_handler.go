package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Validates every referenced catalog entity, persists the order with its items
// and selections, and finalizes the total from authoritative prices re-read
// inside the same transaction. Client-supplied prices are never trusted.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewOrderPricer(), notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now Pending and the owner dashboard has been notified
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     services.OrderPricer
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricer services.OrderPricer,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the order placement command.
//
// The whole creation runs in one transaction: the order shell, every item and
// selection row, the price re-read, and the total update commit together or
// not at all. The announcement publishes only after the commit and is
// best-effort.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalog := uow.Catalog()

	if _, err := catalog.FindRestaurant(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		dish, err := catalog.FindDish(ctx, input.DishID)
		if err != nil {
			return err
		}
		if !dish.RestaurantID.IsEqual(cmd.RestaurantID()) {
			return errs.NewObjectNotFoundError("dishId", input.DishID.String())
		}

		selections := make([]order.Selection, 0, len(input.Selections))
		for _, sel := range input.Selections {
			if _, err = catalog.FindOptionChoice(ctx, input.DishID, sel.OptionID, sel.ChoiceID); err != nil {
				return err
			}
			selection, selErr := order.NewSelection(sel.OptionID, sel.ChoiceID)
			if selErr != nil {
				return selErr
			}
			selections = append(selections, selection)
		}

		item, err := order.NewItem(input.DishID, input.Count, selections)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Client().ID(), cmd.RestaurantID(), cmd.Address(), items)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	pricedItems, err := orderRepo.GetPricedItems(ctx, newOrder.ID())
	if err != nil {
		return err
	}

	total := h.pricer.Total(pricedItems)
	if err = newOrder.FinalizeTotal(total); err != nil {
		return err
	}
	if err = orderRepo.UpdateTotal(ctx, newOrder.ID(), total); err != nil {
		return err
	}

	snapshot, err := orderRepo.GetSnapshot(ctx, newOrder.ID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, h.logger, h.notifier, ports.TopicNewPendingOrder, snapshot)

	return nil
}
