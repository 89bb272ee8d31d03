package queries_test

import (
	"testing"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	viewer, err := actor.NewActor(kernel.NewUUID(), actor.Client)
	require.NoError(t, err)

	q, err := queries.NewGetOrderQuery(id, viewer)
	require.NoError(t, err)
	assert.Equal(t, id, q.OrderID())
	assert.Equal(t, viewer, q.Viewer())
}

func TestNewGetOrderQuery_InvalidOrderID(t *testing.T) {
	viewer, _ := actor.NewActor(kernel.NewUUID(), actor.Client)
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, viewer)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetOrderQuery_InvalidViewer(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.NewUUID(), actor.Actor{})
	require.Error(t, err)
}

func TestGetOrderQuery_Validate_NotConstructed(t *testing.T) {
	q := queries.GetOrderQuery{}
	require.ErrorIs(t, q.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}
