package cmd

import (
	"log/slog"
	"time"

	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	location   *time.Location
	metrics    *metrics.Metrics
	publisher  *kafka.AuditEventPublisher
	scheduler  *commands.Scheduler
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	loc, err := config.Location()
	if err != nil {
		return CompositionRoot{}, err
	}

	c := CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		location:   loc,
		metrics:    metrics.New(),
		logger:     logger,
	}

	// A nil *AuditEventPublisher must not end up inside the interface.
	var publisher ports.EventPublisher
	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		c.publisher = kafka.NewAuditEventPublisher(brokers, config.AuditTopic(), logger)
		publisher = c.publisher
	} else {
		logger.Warn("KAFKA_HOST is not set, audit events are stored but not published")
	}

	clock := func() time.Time { return time.Now().In(loc) }
	c.scheduler = commands.NewScheduler(publisher, c.metrics, clock, logger)

	return c, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// Close releases the connections owned by the root.
func (c *CompositionRoot) Close() error {
	if c.publisher != nil {
		return c.publisher.Close()
	}
	return nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.scheduler)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.uow(), c.scheduler)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uow(), c.scheduler)
}

func (c *CompositionRoot) CreateAdvanceDeliveryStatusCommandHandler() commands.AdvanceDeliveryStatusCommandHandler {
	return commands.NewAdvanceDeliveryStatusCommandHandler(c.uow(), c.scheduler)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.uow(), c.scheduler)
}

func (c *CompositionRoot) CreateChangeDriverStatusCommandHandler() commands.ChangeDriverStatusCommandHandler {
	return commands.NewChangeDriverStatusCommandHandler(c.uow(), c.scheduler)
}

func (c *CompositionRoot) CreateRebalanceCommandHandler() commands.RebalanceCommandHandler {
	return commands.NewRebalanceCommandHandler(c.uow(), c.scheduler)
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFleetQueryHandler() queries.GetFleetQueryHandler {
	return queries.NewGetFleetQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		UpdateOrder:           c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:           c.CreateDeleteOrderCommandHandler(),
		AdvanceDeliveryStatus: c.CreateAdvanceDeliveryStatusCommandHandler(),
		CompleteOrder:         c.CreateCompleteOrderCommandHandler(),
		CreateVehicle:         c.CreateCreateVehicleCommandHandler(),
		ChangeDriverStatus:    c.CreateChangeDriverStatusCommandHandler(),
		Rebalance:             c.CreateRebalanceCommandHandler(),
		ActiveOrders:          c.CreateGetActiveOrdersQueryHandler(),
		Fleet:                 c.CreateGetFleetQueryHandler(),
		AuditTrail:            c.CreateGetAuditTrailQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	job := jobs.NewRebalanceJob(c.CreateRebalanceCommandHandler(), c.config.Schedule(), c.location, c.logger)
	return jobs.NewJobManager(job)
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
