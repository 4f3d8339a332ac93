package cmd

import (
	"salesorders/internal/adapters/out/postgres"
	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePerformOrderTransactionCommandHandler() commands.PerformOrderTransactionCommandHandler {
	return commands.NewPerformOrderTransactionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePerformItemTransactionCommandHandler() commands.PerformItemTransactionCommandHandler {
	return commands.NewPerformItemTransactionCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderItemsCommandHandler() commands.CancelOrderItemsCommandHandler {
	return commands.NewCancelOrderItemsCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateBackorderItemsCommandHandler() commands.BackorderItemsCommandHandler {
	return commands.NewBackorderItemsCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateRestartOrderCommandHandler() commands.RestartOrderCommandHandler {
	return commands.NewRestartOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRestartDisputedOrderCommandHandler() commands.RestartDisputedOrderCommandHandler {
	return commands.NewRestartDisputedOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeShipmentAddressCommandHandler() commands.ChangeShipmentAddressCommandHandler {
	return commands.NewChangeShipmentAddressCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeDeliverySpeedCommandHandler() commands.ChangeDeliverySpeedCommandHandler {
	return commands.NewChangeDeliverySpeedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeRecurrenceCommandHandler() commands.ChangeRecurrenceCommandHandler {
	return commands.NewChangeRecurrenceCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddItemsCommandHandler() commands.AddItemsCommandHandler {
	return commands.NewAddItemsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWaitingRecurrentOrdersQueryHandler() queries.GetWaitingRecurrentOrdersQueryHandler {
	return queries.NewGetWaitingRecurrentOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
