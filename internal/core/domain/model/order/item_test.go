package order_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSelection(t *testing.T, optionID, choiceID kernel.UUID) order.Selection {
	t.Helper()
	sel, err := order.NewSelection(optionID, choiceID)
	require.NoError(t, err)
	return sel
}

func TestNewSelection(t *testing.T) {
	optionID := kernel.NewUUID()
	choiceID := kernel.NewUUID()

	sel, err := order.NewSelection(optionID, choiceID)
	require.NoError(t, err)
	assert.True(t, sel.OptionID().IsEqual(optionID))
	assert.True(t, sel.ChoiceID().IsEqual(choiceID))

	_, err = order.NewSelection(kernel.UUID{}, choiceID)
	require.Error(t, err)
	_, err = order.NewSelection(optionID, kernel.UUID{})
	require.Error(t, err)
}

func TestNewItem(t *testing.T) {
	dishID := kernel.NewUUID()

	t.Run("count defaults to one when unspecified", func(t *testing.T) {
		item, err := order.NewItem(dishID, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, item.Count())
	})

	t.Run("explicit count is kept", func(t *testing.T) {
		item, err := order.NewItem(dishID, 3, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, item.Count())
	})

	t.Run("negative count is rejected", func(t *testing.T) {
		_, err := order.NewItem(dishID, -1, nil)
		require.Error(t, err)
	})

	t.Run("distinct options are accepted", func(t *testing.T) {
		selections := []order.Selection{
			mustSelection(t, kernel.NewUUID(), kernel.NewUUID()),
			mustSelection(t, kernel.NewUUID(), kernel.NewUUID()),
		}
		item, err := order.NewItem(dishID, 1, selections)
		require.NoError(t, err)
		assert.Len(t, item.Selections(), 2)
	})

	t.Run("duplicate option ids are rejected", func(t *testing.T) {
		optionID := kernel.NewUUID()
		selections := []order.Selection{
			mustSelection(t, optionID, kernel.NewUUID()),
			mustSelection(t, optionID, kernel.NewUUID()),
		}
		_, err := order.NewItem(dishID, 1, selections)
		require.ErrorIs(t, err, order.ErrDuplicateOptionSelection)
	})

	t.Run("zero dish id is rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, 1, nil)
		require.Error(t, err)
	})
}
