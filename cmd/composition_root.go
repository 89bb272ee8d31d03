package cmd

import (
	"log/slog"

	"eats/internal/adapters/out/postgres"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewOrderPricer(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateEditOrderStatusCommandHandler() commands.EditOrderStatusCommandHandler {
	return commands.NewEditOrderStatusCommandHandler(
		postgres.NewOrderRepository(c.gormDB),
		postgres.NewCatalogReader(c.gormDB),
		c.notifier,
		c.logger,
	)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(postgres.NewOrderRepository(c.gormDB), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateReannounceCookedOrdersCommandHandler() commands.ReannounceCookedOrdersCommandHandler {
	return commands.NewReannounceCookedOrdersCommandHandler(
		postgres.NewOrderRepository(c.gormDB),
		c.notifier,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDetailOrderQueryHandler() queries.GetDetailOrderQueryHandler {
	return queries.NewGetDetailOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
