package cmd

import (
	"errors"
	"fmt"
	"strings"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/events"
	"marketplace/internal/adapters/out/events/kafkapub"
	"marketplace/internal/adapters/out/events/rabbitpub"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/menurepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/settingsrepo"
	"marketplace/internal/adapters/out/postgres/storerepo"
	"marketplace/internal/adapters/out/redis/idempotency"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     zerolog.Logger

	publisher   ports.OrderEventPublisher
	idempotency ports.IdempotencyStore
	scheduler   *jobs.ProgressionScheduler
	jobManager  *jobs.JobManager

	closers []func() error
}

// NewCompositionRoot wires the adapters around gormDB. Brokers and Redis are
// connected here; Close releases them.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger zerolog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	publisher, err := c.newPublisher()
	if err != nil {
		return nil, err
	}
	c.publisher = publisher

	if configs.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
		c.closers = append(c.closers, rdb.Close)
		c.idempotency = idempotency.NewRedisStore(rdb)
	} else {
		logger.Warn().Msg("REDIS_ADDR is empty, idempotency keys are ignored")
	}

	advancer := c.CreateAdvanceOrderStatusCommandHandler()
	c.scheduler = jobs.NewProgressionScheduler(advancer, logger)

	var sweep *jobs.ProgressionSweepJob
	if configs.ProgressionSweep {
		sweep = jobs.NewProgressionSweepJob(orderrepo.NewGormOrderRepository(gormDB), advancer, logger)
	}
	c.jobManager = jobs.NewJobManager(c.scheduler, sweep, logger)

	return c, nil
}

func (c *CompositionRoot) newPublisher() (ports.OrderEventPublisher, error) {
	switch strings.ToLower(c.configs.EventsBroker) {
	case BrokerKafka:
		publisher := kafkapub.NewPublisher(kafkapub.NewWriter(c.configs.KafkaBrokers, c.configs.KafkaTopic))
		c.closers = append(c.closers, publisher.Close)
		return publisher, nil
	case BrokerRabbitMQ:
		conn, err := rabbitpub.Dial(c.configs.RabbitURL)
		if err != nil {
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		publisher := rabbitpub.NewPublisher(conn, c.configs.RabbitExchange)
		c.closers = append(c.closers, publisher.Close)
		return publisher, nil
	case "", BrokerNone:
		return events.NewNoop(c.logger), nil
	default:
		return nil, fmt.Errorf("unknown events broker %q", c.configs.EventsBroker)
	}
}

// JobManager returns the background jobs; the caller starts and stops them.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

// Close releases broker and Redis connections.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	return errors.Join(errs...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(),
		c.uowFactory.Create(),
		c.CreateSearchMenusQueryHandler(),
		c.scheduler,
		c.publisher,
		c.idempotency,
		c.logger,
	)
}

func (c *CompositionRoot) CreateOrchestrateCommandHandler() commands.OrchestrateCommandHandler {
	return commands.NewOrchestrateCommandHandler(
		c.CreateSearchMenusQueryHandler(),
		settingsrepo.NewGormSettingsRepository(c.gormDB),
		c.CreateGetMenuDetailQueryHandler(),
		c.CreateCreateOrderCommandHandler(),
		orderrepo.NewGormOrderRepository(c.gormDB),
		commands.DefaultOrchestrateOptions(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateStoreCommandHandler() commands.UpdateStoreCommandHandler {
	return commands.NewUpdateStoreCommandHandler(c.catalogUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	return commands.NewCreateMenuCommandHandler(c.catalogUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateMenuCommandHandler() commands.UpdateMenuCommandHandler {
	return commands.NewUpdateMenuCommandHandler(c.catalogUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeleteMenuCommandHandler() commands.DeleteMenuCommandHandler {
	return commands.NewDeleteMenuCommandHandler(c.catalogUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateSearchMenusQueryHandler() queries.SearchMenusQueryHandler {
	return queries.NewSearchMenusQueryHandler(
		menurepo.NewGormMenuRepository(c.gormDB),
		storerepo.NewGormStoreRepository(c.gormDB),
		settingsrepo.NewGormSettingsRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetMenuDetailQueryHandler() queries.GetMenuDetailQueryHandler {
	return queries.NewGetMenuDetailQueryHandler(
		menurepo.NewGormMenuRepository(c.gormDB),
		storerepo.NewGormStoreRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOwnerQueriesHandler() queries.OwnerQueriesHandler {
	return queries.NewOwnerQueriesHandler(
		storerepo.NewGormStoreRepository(c.gormDB),
		menurepo.NewGormMenuRepository(c.gormDB),
		orderrepo.NewGormOrderRepository(c.gormDB),
	)
}

// UseCases bundles the handlers served over HTTP.
func (c *CompositionRoot) UseCases() httpadapter.UseCases {
	return httpadapter.UseCases{
		PlaceOrder:  c.CreateCreateOrderCommandHandler(),
		OrderStatus: c.CreateGetOrderStatusQueryHandler(),
		Search:      c.CreateSearchMenusQueryHandler(),
		MenuDetail:  c.CreateGetMenuDetailQueryHandler(),
		Orchestrate: c.CreateOrchestrateCommandHandler(),
		Owner:       c.CreateOwnerQueriesHandler(),
		UpdateStore: c.CreateUpdateStoreCommandHandler(),
		CreateMenu:  c.CreateCreateMenuCommandHandler(),
		UpdateMenu:  c.CreateUpdateMenuCommandHandler(),
		DeleteMenu:  c.CreateDeleteMenuCommandHandler(),
	}
}

// RouterConfig maps the HTTP settings of the configuration.
func (c *CompositionRoot) RouterConfig() httpadapter.RouterConfig {
	return httpadapter.RouterConfig{
		AllowedOrigins: c.configs.AllowedOrigins,
		Auth: httpadapter.AuthConfig{
			JWTSecret:     c.configs.JWTSecret,
			BypassEnabled: c.configs.BypassAuth,
			BypassToken:   c.configs.BypassAuthToken,
			BypassOwnerID: c.configs.BypassAuthUID,
		},
		RateLimit:      c.configs.RateLimit,
		RateWindow:     c.configs.RateWindow,
		DashboardRate:  c.configs.DashboardRate,
		DashboardBurst: c.configs.DashboardBurst,
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
