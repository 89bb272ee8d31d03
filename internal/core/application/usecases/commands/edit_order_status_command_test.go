package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditOrderStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	editor, err := actor.NewActor(kernel.NewUUID(), actor.Owner)
	require.NoError(t, err)

	cmd, err := commands.NewEditOrderStatusCommand(id, order.Cooking, editor)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.Cooking, cmd.Status())
	assert.Equal(t, editor, cmd.Editor())
}

func TestNewEditOrderStatusCommand_InvalidOrderID(t *testing.T) {
	editor, _ := actor.NewActor(kernel.NewUUID(), actor.Owner)
	_, err := commands.NewEditOrderStatusCommand(kernel.UUID{}, order.Cooking, editor)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewEditOrderStatusCommand_InvalidStatus(t *testing.T) {
	editor, _ := actor.NewActor(kernel.NewUUID(), actor.Owner)
	_, err := commands.NewEditOrderStatusCommand(kernel.NewUUID(), order.StatusUnknown, editor)
	require.Error(t, err)
}

func TestNewEditOrderStatusCommand_InvalidEditor(t *testing.T) {
	_, err := commands.NewEditOrderStatusCommand(kernel.NewUUID(), order.Cooking, actor.Actor{})
	require.Error(t, err)
}

func TestEditOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.EditOrderStatusCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrEditOrderStatusCommandIsNotConstructed)
}
