package cmd

import (
	"log/slog"

	httpin "depot/internal/adapters/in/http"
	"depot/internal/adapters/in/seed"
	"depot/internal/adapters/out/eventlog"
	"depot/internal/adapters/out/kafka"
	"depot/internal/adapters/out/memory"
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/ports"
	"depot/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	store      *memory.Store
	publisher  ports.EventPublisher
	uowFactory commands.UoWFactory
	closers    []func() error
}

// NewCompositionRoot wires the store and the event publisher. Events go to
// Kafka when brokers are configured and to the log otherwise.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config: config,
		logger: logger,
		store:  memory.NewStore(),
	}

	if len(config.KafkaBrokers) > 0 {
		publisher, err := kafka.NewPublisher(config.KafkaBrokers, config.KafkaDepotEventsTopic)
		if err != nil {
			return nil, err
		}
		c.publisher = publisher
		c.closers = append(c.closers, publisher.Close)
		logger.Info("Publishing depot events to kafka",
			"brokers", config.KafkaBrokers, "topic", config.KafkaDepotEventsTopic)
	} else {
		c.publisher = eventlog.NewPublisher(logger)
	}

	memoryFactory := memory.NewUnitOfWorkFactory(c.store, c.publisher, logger)
	c.uowFactory = FuncUoWFactory(func() commands.UoW {
		return memoryFactory.Create()
	})

	return c, nil
}

// Close releases the resources held by the adapters.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *CompositionRoot) CreateAddVehicleCommandHandler() commands.AddVehicleCommandHandler {
	return commands.NewAddVehicleCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateAddDriverCommandHandler() commands.AddDriverCommandHandler {
	return commands.NewAddDriverCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateAssignVehicleCommandHandler() commands.AssignVehicleCommandHandler {
	return commands.NewAssignVehicleCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreatePerformDeliveriesCommandHandler() commands.PerformDeliveriesCommandHandler {
	return commands.NewPerformDeliveriesCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateDispatchPendingOrdersCommandHandler() commands.DispatchPendingOrdersCommandHandler {
	return commands.NewDispatchPendingOrdersCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateRunDeliveryRoundCommandHandler() commands.RunDeliveryRoundCommandHandler {
	return commands.NewRunDeliveryRoundCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetAvailableVehiclesQueryHandler() queries.GetAvailableVehiclesQueryHandler {
	return queries.NewGetAvailableVehiclesQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetDriversQueryHandler() queries.GetDriversQueryHandler {
	return queries.NewGetDriversQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateDescribeDepotStateQueryHandler() queries.DescribeDepotStateQueryHandler {
	return queries.NewDescribeDepotStateQueryHandler(c.store)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		AddVehicle:        c.CreateAddVehicleCommandHandler(),
		AddDriver:         c.CreateAddDriverCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		AssignVehicle:     c.CreateAssignVehicleCommandHandler(),
		AssignOrder:       c.CreateAssignOrderCommandHandler(),
		PerformDeliveries: c.CreatePerformDeliveriesCommandHandler(),
		Dispatch:          c.CreateDispatchPendingOrdersCommandHandler(),
		AvailableVehicles: c.CreateGetAvailableVehiclesQueryHandler(),
		Drivers:           c.CreateGetDriversQueryHandler(),
		PendingOrders:     c.CreateGetPendingOrdersQueryHandler(),
		DepotState:        c.CreateDescribeDepotStateQueryHandler(),
	})
}

func (c *CompositionRoot) CreateSeedLoader() *seed.Loader {
	return seed.NewLoader(seed.Handlers{
		AddVehicle:    c.CreateAddVehicleCommandHandler(),
		AddDriver:     c.CreateAddDriverCommandHandler(),
		CreateOrder:   c.CreateCreateOrderCommandHandler(),
		AssignVehicle: c.CreateAssignVehicleCommandHandler(),
		AssignOrder:   c.CreateAssignOrderCommandHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateDispatchPendingOrdersCommandHandler(),
		c.CreateRunDeliveryRoundCommandHandler(),
		jobs.Schedules{
			Dispatch:      c.config.DispatchSchedule,
			DeliveryRound: c.config.DeliverySchedule,
		},
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
