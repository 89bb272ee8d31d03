package commands

import (
	"errors"

	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

var ErrEditOrderStatusCommandIsNotConstructed = errors.New(
	"EditOrderStatusCommand must be created via NewEditOrderStatusCommand constructor",
)

// EditOrderStatusCommand represents a request to move an order to a new
// lifecycle status on behalf of an actor. Whether the move is permitted is
// decided by the transition guard at handle time, against the loaded order.
type EditOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	editor  actor.Actor

	guard kernel.ConstructorGuard
}

// NewEditOrderStatusCommand creates a command to edit an order's status.
// Validates the order id, the requested status, and the acting principal.
func NewEditOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	editor actor.Actor,
) (EditOrderStatusCommand, error) {
	statusCommand := EditOrderStatusCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setStatus(status),
		statusCommand.setEditor(editor),
	); err != nil {
		return EditOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c EditOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c EditOrderStatusCommand) Status() order.Status {
	return c.status
}

// Editor returns the actor requesting the change.
func (c EditOrderStatusCommand) Editor() actor.Actor {
	return c.editor
}

func (c *EditOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *EditOrderStatusCommand) setEditor(editor actor.Actor) error {
	if err := editor.Validate(); err != nil {
		return err
	}

	c.editor = editor
	return nil
}
