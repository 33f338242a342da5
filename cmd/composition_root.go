package cmd

import (
	"log/slog"

	"fosso/internal/adapters/out/fossoapi"
	"fosso/internal/adapters/out/postgres"
	"fosso/internal/core/application/usecases/commands"
	"fosso/internal/core/application/usecases/queries"
	"fosso/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	cartClient     *fossoapi.CartClient
	catalogClient  *fossoapi.CatalogClient
	customerClient *fossoapi.CustomerClient
	logger         *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	cartClient, err := fossoapi.NewCartClient(config.CartServiceURL, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	catalogClient, err := fossoapi.NewCatalogClient(config.CatalogServiceURL, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	customerClient, err := fossoapi.NewCustomerClient(config.CustomerServiceURL, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartClient:     cartClient,
		catalogClient:  catalogClient,
		customerClient: customerClient,
		logger:         logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(
		c.orderUoWFactory(),
		c.cartClient,
		c.catalogClient,
		c.customerClient,
		services.NewPricingEngine(),
	)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelLineItemCommandHandler() commands.CancelLineItemCommandHandler {
	return commands.NewCancelLineItemCommandHandler(c.orderUoWFactory(), services.NewPricingEngine())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateLineItemStatusCommandHandler() commands.UpdateLineItemStatusCommandHandler {
	return commands.NewUpdateLineItemStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveriesCommandHandler() commands.CompleteDeliveriesCommandHandler {
	return commands.NewCompleteDeliveriesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByTrackingNumberQueryHandler() queries.GetOrderByTrackingNumberQueryHandler {
	return queries.NewGetOrderByTrackingNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersByStatusQueryHandler() queries.ListOrdersByStatusQueryHandler {
	return queries.NewListOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMerchantOrdersQueryHandler() queries.ListMerchantOrdersQueryHandler {
	return queries.NewListMerchantOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersByDateRangeQueryHandler() queries.ListOrdersByDateRangeQueryHandler {
	return queries.NewListOrdersByDateRangeQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
