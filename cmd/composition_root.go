package cmd

import (
	"seller/internal/adapters/out/postgres"
	"seller/internal/core/application/usecases/commands"
	"seller/internal/core/application/usecases/queries"
	"seller/internal/core/ports"
	"seller/internal/jobs"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	refunds    ports.RefundService
	logger     *log.Entry
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	refunds ports.RefundService,
	logger *log.Entry,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		refunds:    refunds,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.refunds)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPayOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateFinishOrderCommandHandler() commands.FinishOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinishOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	// No transaction is begun, so the repository reads through the pool.
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateListBuyerOrdersQueryHandler() queries.ListBuyerOrdersQueryHandler {
	return queries.NewListBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetExpiredUnpaidOrdersQueryHandler() queries.GetExpiredUnpaidOrdersQueryHandler {
	return queries.NewGetExpiredUnpaidOrdersQueryHandler(c.gormDB)
}

// CreateJobManager returns the scheduled jobs enabled by the configuration.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var enabled []jobs.Job

	if c.config.OrderPaymentTimeout > 0 {
		expired := c.CreateGetExpiredUnpaidOrdersQueryHandler()
		cancel := c.CreateCancelOrderCommandHandler()
		enabled = append(enabled, jobs.NewPaymentTimeoutJob(expired, &cancel, c.config.OrderPaymentTimeout, c.logger))
	}

	return jobs.NewJobManager(enabled...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
