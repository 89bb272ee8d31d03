package commands

import (
	"errors"

	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var (
	ErrClaimOrderCommandIsNotConstructed = errors.New(
		"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
	)
	ErrActorMustBeDriver = errs.NewNotAuthorizedError("only a delivery driver can claim an order")
)

// ClaimOrderCommand represents a driver's request to take a cooked order for
// delivery. First come, first served: when several drivers race for the same
// order, exactly one claim succeeds.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	driver  actor.Actor

	guard kernel.ConstructorGuard
}

// NewClaimOrderCommand creates a command to claim an order.
// Requires the actor to carry the delivery role.
func NewClaimOrderCommand(orderID kernel.UUID, driver actor.Actor) (ClaimOrderCommand, error) {
	claimCommand := ClaimOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		claimCommand.setOrderID(orderID),
		claimCommand.setDriver(driver),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return claimCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the order to claim.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Driver returns the claiming driver.
func (c ClaimOrderCommand) Driver() actor.Actor {
	return c.driver
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setDriver(driver actor.Actor) error {
	if err := driver.Validate(); err != nil {
		return err
	}
	if driver.Role() != actor.Delivery {
		return ErrActorMustBeDriver
	}

	c.driver = driver
	return nil
}
