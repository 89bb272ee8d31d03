package order_test

import (
	"testing"

	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	for _, name := range []string{"Pending", "Cooking", "Cooked", "PickedUp", "Delivered", "Reject"} {
		status, err := order.StatusFromString(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, status.String())
		require.NoError(t, status.Validate())
	}

	_, err := order.StatusFromString("Shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatusValidate(t *testing.T) {
	require.Error(t, order.StatusUnknown.Validate())
	require.Error(t, order.Status(99).Validate())
	require.NoError(t, order.Pending.Validate())
}

func TestStatusString_UnknownValues(t *testing.T) {
	assert.Equal(t, "Unknown", order.StatusUnknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}
