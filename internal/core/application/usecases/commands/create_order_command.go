package commands

import (
	"errors"

	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredError("items")
	ErrActorMustBeClient     = errs.NewNotAuthorizedError("only a client can place an order")
)

// SelectionInput is one requested (option, choice) pair for an item, as it
// arrives from transport. Validity against the dish menu is checked by the
// handler, not here.
type SelectionInput struct {
	OptionID kernel.UUID
	ChoiceID kernel.UUID
}

// ItemInput is one requested order line: a dish, a quantity, and the chosen
// customizations.
type ItemInput struct {
	DishID     kernel.UUID
	Count      int
	Selections []SelectionInput
}

// CreateOrderCommand represents a request to place a new order with a
// restaurant. Carries the client placing it, the delivery address, and the
// requested items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), restaurantID, client, address, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, pricer, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	client       actor.Actor
	address      order.Address
	items        []ItemInput

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identities, requires the actor to carry the client role, and
// requires at least one item. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	client actor.Actor,
	address order.Address,
	items []ItemInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setClient(client),
		orderCommand.setAddress(address),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the restaurant the order is placed with.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Client returns the client placing the order.
func (c CreateOrderCommand) Client() actor.Actor {
	return c.client
}

// Address returns the delivery destination.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setClient(client actor.Actor) error {
	if err := client.Validate(); err != nil {
		return err
	}
	if client.Role() != actor.Client {
		return ErrActorMustBeClient
	}

	c.client = client
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = items
	return nil
}
