package queries

import (
	"errors"

	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/kernel"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the summary projection of one order, subject to the
// viewer's visibility.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	viewer  actor.Actor

	guard kernel.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order on behalf of a viewer.
func NewGetOrderQuery(orderID kernel.UUID, viewer actor.Actor) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderQuery.setOrderID(orderID),
		orderQuery.setViewer(viewer),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to read.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Viewer returns the actor reading the order.
func (q GetOrderQuery) Viewer() actor.Actor {
	return q.viewer
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setViewer(viewer actor.Actor) error {
	if err := viewer.Validate(); err != nil {
		return err
	}

	q.viewer = viewer
	return nil
}
