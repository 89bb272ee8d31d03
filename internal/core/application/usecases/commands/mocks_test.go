package commands_test

import (
	"context"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetPricedItems(ctx context.Context, id kernel.UUID) ([]services.PricedItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.PricedItem), args.Error(1)
}

func (m *MockOrderRepository) UpdateTotal(ctx context.Context, id kernel.UUID, total kernel.Money) error {
	args := m.Called(ctx, id, total)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Claim(ctx context.Context, id kernel.UUID, driverID kernel.UUID) error {
	args := m.Called(ctx, id, driverID)
	return args.Error(0)
}

func (m *MockOrderRepository) ListCookedUnclaimed(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockOrderRepository) GetSnapshot(ctx context.Context, id kernel.UUID) (*ports.OrderSnapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.OrderSnapshot), args.Error(1)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) FindRestaurant(ctx context.Context, id kernel.UUID) (*ports.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Restaurant), args.Error(1)
}

func (m *MockCatalogReader) FindDish(ctx context.Context, id kernel.UUID) (*ports.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Dish), args.Error(1)
}

func (m *MockCatalogReader) FindOptionChoice(
	ctx context.Context,
	dishID, optionID, choiceID kernel.UUID,
) (*ports.OptionChoice, error) {
	args := m.Called(ctx, dishID, optionID, choiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.OptionChoice), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Publish(ctx context.Context, topic ports.Topic, event *ports.OrderSnapshot) error {
	args := m.Called(ctx, topic, event)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) Catalog() ports.CatalogReader {
	args := m.Called()
	return args.Get(0).(ports.CatalogReader)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
