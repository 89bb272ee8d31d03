package queries

import (
	"errors"

	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists the orders the viewer is related to, optionally
// filtered by status. The viewer's role decides the scope: clients see their
// own orders, owners the orders of their restaurants, drivers their
// assignments. The status filter applies within that scope, never widening it.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	viewer actor.Actor
	status *order.Status

	guard kernel.ConstructorGuard
}

// NewGetOrdersQuery creates a list query for a viewer. status is optional;
// nil lists every order in the viewer's scope.
func NewGetOrdersQuery(viewer actor.Actor, status *order.Status) (GetOrdersQuery, error) {
	listQuery := GetOrdersQuery{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		listQuery.setViewer(viewer),
		listQuery.setStatus(status),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Viewer returns the actor listing their orders.
func (q GetOrdersQuery) Viewer() actor.Actor {
	return q.viewer
}

// Status returns the optional status filter, or nil.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *GetOrdersQuery) setViewer(viewer actor.Actor) error {
	if err := viewer.Validate(); err != nil {
		return err
	}

	q.viewer = viewer
	return nil
}

func (q *GetOrdersQuery) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}
