package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type createOrderFixture struct {
	orderID      kernel.UUID
	restaurantID kernel.UUID
	dishID       kernel.UUID
	optionID     kernel.UUID
	choiceID     kernel.UUID
	client       actor.Actor
	cmd          commands.CreateOrderCommand
}

func newCreateOrderFixture(t *testing.T) createOrderFixture {
	t.Helper()

	f := createOrderFixture{
		orderID:      kernel.NewUUID(),
		restaurantID: kernel.NewUUID(),
		dishID:       kernel.NewUUID(),
		optionID:     kernel.NewUUID(),
		choiceID:     kernel.NewUUID(),
	}

	client, err := actor.NewActor(kernel.NewUUID(), actor.Client)
	require.NoError(t, err)
	f.client = client

	f.cmd, err = commands.NewCreateOrderCommand(
		f.orderID,
		f.restaurantID,
		f.client,
		order.Address{Street: "Main St", Lat: 52.52, Lon: 13.405},
		[]commands.ItemInput{
			{
				DishID: f.dishID,
				Count:  2,
				Selections: []commands.SelectionInput{
					{OptionID: f.optionID, ChoiceID: f.choiceID},
				},
			},
		},
	)
	require.NoError(t, err)

	return f
}

func (f createOrderFixture) restaurant() *ports.Restaurant {
	return &ports.Restaurant{ID: f.restaurantID, OwnerID: kernel.NewUUID(), Name: "Testaurant"}
}

func (f createOrderFixture) dish() *ports.Dish {
	return &ports.Dish{ID: f.dishID, RestaurantID: f.restaurantID, Name: "Burger", Price: 1000}
}

func (f createOrderFixture) optionChoice() *ports.OptionChoice {
	return &ports.OptionChoice{OptionID: f.optionID, ChoiceID: f.choiceID, Extra: 200}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)

	pricedItems := []services.PricedItem{
		{DishPrice: 1000, Extras: []kernel.Money{200}, Count: 2},
	}
	snapshot := &ports.OrderSnapshot{OrderID: f.orderID, Status: order.Pending.String()}

	repo := new(MockOrderRepository)
	catalog := new(MockCatalogReader)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Catalog").Return(catalog).Once(),
		catalog.On("FindRestaurant", ctx, f.restaurantID).Return(f.restaurant(), nil).Once(),
		catalog.On("FindDish", ctx, f.dishID).Return(f.dish(), nil).Once(),
		catalog.On("FindOptionChoice", ctx, f.dishID, f.optionID, f.choiceID).
			Return(f.optionChoice(), nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		repo.On("GetPricedItems", ctx, f.orderID).Return(pricedItems, nil).Once(),
		repo.On("UpdateTotal", ctx, f.orderID, kernel.Money(2400)).Return(nil).Once(),
		repo.On("GetSnapshot", ctx, f.orderID).Return(snapshot, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Publish", ctx, ports.TopicNewPendingOrder, snapshot).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewOrderPricer(), notifier, discardLogger())
	err := h.Handle(ctx, f.cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	catalog.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, services.NewOrderPricer(), new(MockNotifier), discardLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)

	catalog := new(MockCatalogReader)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Catalog").Return(catalog).Once(),
		catalog.On("FindRestaurant", ctx, f.restaurantID).
			Return(nil, errs.NewObjectNotFoundError("restaurantId", f.restaurantID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewOrderPricer(), new(MockNotifier), discardLogger())
	err := h.Handle(ctx, f.cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	catalog.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DishFromOtherRestaurant(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)

	foreignDish := &ports.Dish{
		ID:           f.dishID,
		RestaurantID: kernel.NewUUID(),
		Name:         "Pizza",
		Price:        1500,
	}

	catalog := new(MockCatalogReader)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Catalog").Return(catalog).Once(),
		catalog.On("FindRestaurant", ctx, f.restaurantID).Return(f.restaurant(), nil).Once(),
		catalog.On("FindDish", ctx, f.dishID).Return(foreignDish, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewOrderPricer(), new(MockNotifier), discardLogger())
	err := h.Handle(ctx, f.cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	catalog.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)

	repo := new(MockOrderRepository)
	catalog := new(MockCatalogReader)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Catalog").Return(catalog).Once(),
		catalog.On("FindRestaurant", ctx, f.restaurantID).Return(f.restaurant(), nil).Once(),
		catalog.On("FindDish", ctx, f.dishID).Return(f.dish(), nil).Once(),
		catalog.On("FindOptionChoice", ctx, f.dishID, f.optionID, f.choiceID).
			Return(f.optionChoice(), nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewOrderPricer(), new(MockNotifier), discardLogger())
	err := h.Handle(ctx, f.cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)

	pricedItems := []services.PricedItem{
		{DishPrice: 1000, Extras: []kernel.Money{200}, Count: 2},
	}
	snapshot := &ports.OrderSnapshot{OrderID: f.orderID, Status: order.Pending.String()}

	repo := new(MockOrderRepository)
	catalog := new(MockCatalogReader)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Catalog").Return(catalog).Once(),
		catalog.On("FindRestaurant", ctx, f.restaurantID).Return(f.restaurant(), nil).Once(),
		catalog.On("FindDish", ctx, f.dishID).Return(f.dish(), nil).Once(),
		catalog.On("FindOptionChoice", ctx, f.dishID, f.optionID, f.choiceID).
			Return(f.optionChoice(), nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		repo.On("GetPricedItems", ctx, f.orderID).Return(pricedItems, nil).Once(),
		repo.On("UpdateTotal", ctx, f.orderID, kernel.Money(2400)).Return(nil).Once(),
		repo.On("GetSnapshot", ctx, f.orderID).Return(snapshot, nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	h := commands.NewCreateOrderCommandHandler(factory, services.NewOrderPricer(), notifier, discardLogger())
	err := h.Handle(ctx, f.cmd)
	require.Error(t, err)
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PublishFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)

	pricedItems := []services.PricedItem{
		{DishPrice: 1000, Extras: []kernel.Money{200}, Count: 2},
	}
	snapshot := &ports.OrderSnapshot{OrderID: f.orderID, Status: order.Pending.String()}

	repo := new(MockOrderRepository)
	catalog := new(MockCatalogReader)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Catalog").Return(catalog).Once(),
		catalog.On("FindRestaurant", ctx, f.restaurantID).Return(f.restaurant(), nil).Once(),
		catalog.On("FindDish", ctx, f.dishID).Return(f.dish(), nil).Once(),
		catalog.On("FindOptionChoice", ctx, f.dishID, f.optionID, f.choiceID).
			Return(f.optionChoice(), nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		repo.On("GetPricedItems", ctx, f.orderID).Return(pricedItems, nil).Once(),
		repo.On("UpdateTotal", ctx, f.orderID, kernel.Money(2400)).Return(nil).Once(),
		repo.On("GetSnapshot", ctx, f.orderID).Return(snapshot, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Publish", ctx, ports.TopicNewPendingOrder, snapshot).
			Return(errors.New("broker down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewOrderPricer(), notifier, discardLogger())
	err := h.Handle(ctx, f.cmd)
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}
