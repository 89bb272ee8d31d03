package commands_test

import (
	"errors"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReannounceCookedOrdersCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.ReannounceCookedOrdersCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrReannounceCookedOrdersCommandIsNotConstructed)
}

func TestReannounceCookedOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	firstID := kernel.NewUUID()
	secondID := kernel.NewUUID()
	firstSnapshot := &ports.OrderSnapshot{OrderID: firstID, Status: order.Cooked.String()}
	secondSnapshot := &ports.OrderSnapshot{OrderID: secondID, Status: order.Cooked.String()}

	repo := new(MockOrderRepository)
	notifier := new(MockNotifier)
	repo.On("ListCookedUnclaimed", ctx).Return([]kernel.UUID{firstID, secondID}, nil).Once()
	repo.On("GetSnapshot", ctx, firstID).Return(firstSnapshot, nil).Once()
	repo.On("GetSnapshot", ctx, secondID).Return(secondSnapshot, nil).Once()
	notifier.On("Publish", ctx, ports.TopicNewCookedOrder, firstSnapshot).Return(nil).Once()
	notifier.On("Publish", ctx, ports.TopicNewCookedOrder, secondSnapshot).Return(nil).Once()

	h := commands.NewReannounceCookedOrdersCommandHandler(repo, notifier, discardLogger())
	err := h.Handle(ctx, commands.NewReannounceCookedOrdersCommand())
	require.NoError(t, err)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestReannounceCookedOrdersCommandHandler_Handle_SnapshotFailureSkipsOrder(t *testing.T) {
	ctx := t.Context()
	brokenID := kernel.NewUUID()
	healthyID := kernel.NewUUID()
	snapshot := &ports.OrderSnapshot{OrderID: healthyID, Status: order.Cooked.String()}

	repo := new(MockOrderRepository)
	notifier := new(MockNotifier)
	repo.On("ListCookedUnclaimed", ctx).Return([]kernel.UUID{brokenID, healthyID}, nil).Once()
	repo.On("GetSnapshot", ctx, brokenID).Return(nil, errors.New("row gone")).Once()
	repo.On("GetSnapshot", ctx, healthyID).Return(snapshot, nil).Once()
	notifier.On("Publish", ctx, ports.TopicNewCookedOrder, snapshot).Return(nil).Once()

	h := commands.NewReannounceCookedOrdersCommandHandler(repo, notifier, discardLogger())
	err := h.Handle(ctx, commands.NewReannounceCookedOrdersCommand())
	require.NoError(t, err)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestReannounceCookedOrdersCommandHandler_Handle_ListError(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	notifier := new(MockNotifier)
	repo.On("ListCookedUnclaimed", ctx).Return(nil, errors.New("db down")).Once()

	h := commands.NewReannounceCookedOrdersCommandHandler(repo, notifier, discardLogger())
	err := h.Handle(ctx, commands.NewReannounceCookedOrdersCommand())
	require.Error(t, err)
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestReannounceCookedOrdersCommandHandler_Handle_NoCookedOrders(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	notifier := new(MockNotifier)
	repo.On("ListCookedUnclaimed", ctx).Return([]kernel.UUID{}, nil).Once()

	h := commands.NewReannounceCookedOrdersCommandHandler(repo, notifier, discardLogger())
	err := h.Handle(ctx, commands.NewReannounceCookedOrdersCommand())
	require.NoError(t, err)
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
