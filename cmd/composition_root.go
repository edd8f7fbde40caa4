package cmd

import (
	"log/slog"

	"mfgorder/internal/adapters/out/kafka"
	"mfgorder/internal/adapters/out/postgres"
	"mfgorder/internal/adapters/out/printspool"
	"mfgorder/internal/adapters/out/systemclock"
	"mfgorder/internal/adapters/out/warehouseapi"
	"mfgorder/internal/core/application/usecases/commands"
	"mfgorder/internal/core/application/usecases/queries"
	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the application together: it owns the database handle,
// the unit of work factory and every outbound adapter, and hands out fully
// constructed command and query handlers.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	clock     *systemclock.Clock
	resolver  *warehouseapi.Client
	spooler   *printspool.Client
	publisher *kafka.Publisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      systemclock.NewClock(),
		resolver:   warehouseapi.NewClient(config.WarehouseServiceURL, logger),
		spooler:    printspool.NewClient(config.PrintSpoolerURL, logger),
		publisher:  kafka.NewPublisher(config.KafkaHost, config.KafkaOrderEventsTopic, logger),
	}
}

// Close releases resources held by outbound adapters.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

// DefaultCompany returns the company substituted when a request omits one.
func (c *CompositionRoot) DefaultCompany() int {
	return c.config.DefaultCompany
}

func (c *CompositionRoot) CreateUpdateDocumentsPrintedCommandHandler() commands.UpdateDocumentsPrintedCommandHandler {
	var f commands.OrderHeaderUoWFactory = FuncOrderHeaderUoWFactory(func() commands.OrderHeaderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDocumentsPrintedCommandHandler(f, c.clock, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateDocumentsPrintedByWarehouseCommandHandler() commands.UpdateDocumentsPrintedByWarehouseCommandHandler {
	var f commands.OrderHeaderUoWFactory = FuncOrderHeaderUoWFactory(func() commands.OrderHeaderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDocumentsPrintedByWarehouseCommandHandler(
		f, c.resolver, c.clock, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderHeaderQueryHandler() queries.GetOrderHeaderQueryHandler {
	return queries.NewGetOrderHeaderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUnprintedOrdersQueryHandler() queries.ListUnprintedOrdersQueryHandler {
	return queries.NewListUnprintedOrdersQueryHandler(c.gormDB)
}

// CreateJobManager wires the document print job under the configured service
// session.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	session, err := kernel.NewSession(c.config.DefaultCompany, c.config.PrintJobUser)
	if err != nil {
		return nil, err
	}

	printJob := jobs.NewDocumentPrintJob(
		c.CreateListUnprintedOrdersQueryHandler(),
		c.CreateUpdateDocumentsPrintedCommandHandler(),
		c.spooler,
		session,
		c.config.PrintJobFacility,
		c.config.PrintJobBatchSize,
		c.config.PrintJobSchedule,
		c.logger,
	)

	return jobs.NewJobManager(printJob), nil
}

type FuncOrderHeaderUoWFactory func() commands.OrderHeaderUoW

func (f FuncOrderHeaderUoWFactory) Create() commands.OrderHeaderUoW {
	return f()
}
