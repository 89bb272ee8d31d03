package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/actor"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(
	t *testing.T,
	id, clientID, restaurantID kernel.UUID,
	driverID *kernel.UUID,
	status order.Status,
) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 1, nil)
	require.NoError(t, err)
	total := kernel.Money(2400)
	o, err := order.RestoreOrder(
		id, clientID, restaurantID, driverID, status, &total,
		order.Address{Street: "Main St"}, []order.Item{item},
	)
	require.NoError(t, err)
	return o
}

func TestEditOrderStatusCommandHandler_Handle_OwnerStartsCooking(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	owner, _ := actor.NewActor(ownerID, actor.Owner)
	cmd, err := commands.NewEditOrderStatusCommand(orderID, order.Cooking, owner)
	require.NoError(t, err)

	loaded := restoredOrder(t, orderID, kernel.NewUUID(), restaurantID, nil, order.Pending)
	snapshot := &ports.OrderSnapshot{OrderID: orderID, Status: order.Cooking.String()}

	repo := new(MockOrderRepository)
	catalog := new(MockCatalogReader)
	notifier := new(MockNotifier)
	mock.InOrder(
		repo.On("Get", ctx, orderID).Return(loaded, nil).Once(),
		catalog.On("FindRestaurant", ctx, restaurantID).
			Return(&ports.Restaurant{ID: restaurantID, OwnerID: ownerID, Name: "Testaurant"}, nil).Once(),
		repo.On("UpdateStatus", ctx, orderID, order.Cooking).Return(nil).Once(),
		repo.On("GetSnapshot", ctx, orderID).Return(snapshot, nil).Once(),
		notifier.On("Publish", ctx, ports.TopicNewOrderUpdate, snapshot).Return(nil).Once(),
	)

	h := commands.NewEditOrderStatusCommandHandler(repo, catalog, notifier, discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	catalog.AssertExpectations(t)
	notifier.AssertExpectations(t)
	notifier.AssertNotCalled(t, "Publish", ctx, ports.TopicNewCookedOrder, mock.Anything)
}

func TestEditOrderStatusCommandHandler_Handle_OwnerCookedAnnouncesDrivers(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	owner, _ := actor.NewActor(ownerID, actor.Owner)
	cmd, err := commands.NewEditOrderStatusCommand(orderID, order.Cooked, owner)
	require.NoError(t, err)

	loaded := restoredOrder(t, orderID, kernel.NewUUID(), restaurantID, nil, order.Cooking)
	snapshot := &ports.OrderSnapshot{OrderID: orderID, Status: order.Cooked.String()}

	repo := new(MockOrderRepository)
	catalog := new(MockCatalogReader)
	notifier := new(MockNotifier)
	mock.InOrder(
		repo.On("Get", ctx, orderID).Return(loaded, nil).Once(),
		catalog.On("FindRestaurant", ctx, restaurantID).
			Return(&ports.Restaurant{ID: restaurantID, OwnerID: ownerID, Name: "Testaurant"}, nil).Once(),
		repo.On("UpdateStatus", ctx, orderID, order.Cooked).Return(nil).Once(),
		repo.On("GetSnapshot", ctx, orderID).Return(snapshot, nil).Once(),
		notifier.On("Publish", ctx, ports.TopicNewCookedOrder, snapshot).Return(nil).Once(),
		notifier.On("Publish", ctx, ports.TopicNewOrderUpdate, snapshot).Return(nil).Once(),
	)

	h := commands.NewEditOrderStatusCommandHandler(repo, catalog, notifier, discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestEditOrderStatusCommandHandler_Handle_OwnerOfOtherRestaurantDenied(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	owner, _ := actor.NewActor(kernel.NewUUID(), actor.Owner)
	cmd, err := commands.NewEditOrderStatusCommand(orderID, order.Cooking, owner)
	require.NoError(t, err)

	loaded := restoredOrder(t, orderID, kernel.NewUUID(), restaurantID, nil, order.Pending)

	repo := new(MockOrderRepository)
	catalog := new(MockCatalogReader)
	mock.InOrder(
		repo.On("Get", ctx, orderID).Return(loaded, nil).Once(),
		catalog.On("FindRestaurant", ctx, restaurantID).
			Return(&ports.Restaurant{ID: restaurantID, OwnerID: kernel.NewUUID(), Name: "Testaurant"}, nil).Once(),
	)

	h := commands.NewEditOrderStatusCommandHandler(repo, catalog, new(MockNotifier), discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditOrderStatusCommandHandler_Handle_AssignedDriverDelivers(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	driver, _ := actor.NewActor(driverID, actor.Delivery)
	cmd, err := commands.NewEditOrderStatusCommand(orderID, order.Delivered, driver)
	require.NoError(t, err)

	loaded := restoredOrder(t, orderID, kernel.NewUUID(), restaurantID, &driverID, order.PickedUp)
	snapshot := &ports.OrderSnapshot{OrderID: orderID, Status: order.Delivered.String()}

	repo := new(MockOrderRepository)
	catalog := new(MockCatalogReader)
	notifier := new(MockNotifier)
	mock.InOrder(
		repo.On("Get", ctx, orderID).Return(loaded, nil).Once(),
		catalog.On("FindRestaurant", ctx, restaurantID).
			Return(&ports.Restaurant{ID: restaurantID, OwnerID: kernel.NewUUID(), Name: "Testaurant"}, nil).Once(),
		repo.On("UpdateStatus", ctx, orderID, order.Delivered).Return(nil).Once(),
		repo.On("GetSnapshot", ctx, orderID).Return(snapshot, nil).Once(),
		notifier.On("Publish", ctx, ports.TopicNewOrderUpdate, snapshot).Return(nil).Once(),
	)

	h := commands.NewEditOrderStatusCommandHandler(repo, catalog, notifier, discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEditOrderStatusCommandHandler_Handle_UnassignedDriverDenied(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	assigned := kernel.NewUUID()
	stranger, _ := actor.NewActor(kernel.NewUUID(), actor.Delivery)
	cmd, err := commands.NewEditOrderStatusCommand(orderID, order.Delivered, stranger)
	require.NoError(t, err)

	loaded := restoredOrder(t, orderID, kernel.NewUUID(), restaurantID, &assigned, order.PickedUp)

	repo := new(MockOrderRepository)
	catalog := new(MockCatalogReader)
	mock.InOrder(
		repo.On("Get", ctx, orderID).Return(loaded, nil).Once(),
		catalog.On("FindRestaurant", ctx, restaurantID).
			Return(&ports.Restaurant{ID: restaurantID, OwnerID: kernel.NewUUID(), Name: "Testaurant"}, nil).Once(),
	)

	h := commands.NewEditOrderStatusCommandHandler(repo, catalog, new(MockNotifier), discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditOrderStatusCommandHandler_Handle_NobodyEditsToPending(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	client, _ := actor.NewActor(clientID, actor.Client)
	cmd, err := commands.NewEditOrderStatusCommand(orderID, order.Pending, client)
	require.NoError(t, err)

	loaded := restoredOrder(t, orderID, clientID, restaurantID, nil, order.Cooking)

	repo := new(MockOrderRepository)
	catalog := new(MockCatalogReader)
	mock.InOrder(
		repo.On("Get", ctx, orderID).Return(loaded, nil).Once(),
		catalog.On("FindRestaurant", ctx, restaurantID).
			Return(&ports.Restaurant{ID: restaurantID, OwnerID: kernel.NewUUID(), Name: "Testaurant"}, nil).Once(),
	)

	h := commands.NewEditOrderStatusCommandHandler(repo, catalog, new(MockNotifier), discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	owner, _ := actor.NewActor(kernel.NewUUID(), actor.Owner)
	cmd, err := commands.NewEditOrderStatusCommand(orderID, order.Cooking, owner)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once()

	h := commands.NewEditOrderStatusCommandHandler(repo, new(MockCatalogReader), new(MockNotifier), discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
