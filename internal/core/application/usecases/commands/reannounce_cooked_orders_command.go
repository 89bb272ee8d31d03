package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
)

var ErrReannounceCookedOrdersCommandIsNotConstructed = errors.New(
	"ReannounceCookedOrdersCommand must be created via NewReannounceCookedOrdersCommand constructor",
)

// ReannounceCookedOrdersCommand triggers a re-broadcast of every cooked order
// that still has no driver. Notifications are best-effort, so a cooked order
// can sit unclaimed because its announcement was lost; the periodic
// re-broadcast keeps it visible to driver dashboards until someone claims it.
type ReannounceCookedOrdersCommand struct {
	guard kernel.ConstructorGuard
}

// NewReannounceCookedOrdersCommand creates a parameterless command to
// re-announce unclaimed cooked orders.
func NewReannounceCookedOrdersCommand() ReannounceCookedOrdersCommand {
	return ReannounceCookedOrdersCommand{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReannounceCookedOrdersCommandIsNotConstructed if validation fails.
func (c *ReannounceCookedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReannounceCookedOrdersCommandIsNotConstructed)
}
