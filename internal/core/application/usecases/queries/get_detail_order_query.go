package queries

import (
	"errors"

	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/kernel"
)

var ErrGetDetailOrderQueryIsNotConstructed = errors.New(
	"GetDetailOrderQuery must be created via NewGetDetailOrderQuery constructor",
)

// GetDetailOrderQuery retrieves the full projection of one order, items and
// selections included, subject to the viewer's visibility.
type GetDetailOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	viewer  actor.Actor

	guard kernel.ConstructorGuard
}

// NewGetDetailOrderQuery creates a detail query for one order on behalf of a viewer.
func NewGetDetailOrderQuery(orderID kernel.UUID, viewer actor.Actor) (GetDetailOrderQuery, error) {
	detailQuery := GetDetailOrderQuery{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		detailQuery.setOrderID(orderID),
		detailQuery.setViewer(viewer),
	); err != nil {
		return GetDetailOrderQuery{}, err
	}

	return detailQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDetailOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDetailOrderQueryIsNotConstructed)
}

// OrderID returns the order to read.
func (q GetDetailOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Viewer returns the actor reading the order.
func (q GetDetailOrderQuery) Viewer() actor.Actor {
	return q.viewer
}

func (q *GetDetailOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetDetailOrderQuery) setViewer(viewer actor.Actor) error {
	if err := viewer.Validate(); err != nil {
		return err
	}

	q.viewer = viewer
	return nil
}
