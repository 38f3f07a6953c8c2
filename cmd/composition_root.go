package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/kafka"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/auth"
	"foodorder/internal/pkg/metrics"
)

// CompositionRoot wires adapters into use case handlers. All handlers
// share one unit of work factory; each Create call hands out a fresh
// transaction scope.
type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    *postgres.GormUnitOfWorkFactory
	tokenIssuer   *auth.TokenIssuer
	publisher     ports.OrderEventPublisher
	serverMetrics *metrics.ServerMetrics
}

// NewCompositionRoot builds the object graph from configuration. The Kafka
// publisher is optional: with no brokers configured, order events are
// simply not published. The concrete publisher is only assigned to the
// interface when it exists, so handlers see a true nil otherwise.
func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	tokenIssuer, err := auth.NewTokenIssuer(configs.JWTSecret, configs.AccessTokenTTL, configs.RefreshTokenTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	root := CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB),
		tokenIssuer:   tokenIssuer,
		serverMetrics: metrics.NewServerMetrics(),
	}

	if publisher := kafka.NewOrderEventPublisher(configs.KafkaBrokers, configs.KafkaOrderChangedTopic); publisher != nil {
		root.publisher = publisher
	}

	return root, nil
}

// TokenIssuer exposes the shared token issuer for HTTP middleware.
func (c *CompositionRoot) TokenIssuer() *auth.TokenIssuer {
	return c.tokenIssuer
}

// ServerMetrics exposes the shared metrics registry.
func (c *CompositionRoot) ServerMetrics() *metrics.ServerMetrics {
	return c.serverMetrics
}

// ClosePublisher flushes and closes the Kafka writer, if one was configured.
func (c *CompositionRoot) ClosePublisher() error {
	if closer, ok := c.publisher.(*kafka.OrderEventPublisher); ok {
		return closer.Close()
	}
	return nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) addressUoWFactory() commands.AddressUoWFactory {
	return FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.accountUoWFactory(), c.tokenIssuer)
}

func (c *CompositionRoot) CreateRefreshTokenCommandHandler() commands.RefreshTokenCommandHandler {
	return commands.NewRefreshTokenCommandHandler(c.accountUoWFactory(), c.tokenIssuer)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCreateAddressCommandHandler() commands.CreateAddressCommandHandler {
	return commands.NewCreateAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAddressCommandHandler() commands.UpdateAddressCommandHandler {
	return commands.NewUpdateAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateDeleteAddressCommandHandler() commands.DeleteAddressCommandHandler {
	return commands.NewDeleteAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreatePurgeExpiredTokensCommandHandler() commands.PurgeExpiredTokensCommandHandler {
	return commands.NewPurgeExpiredTokensCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemsQueryHandler() queries.GetMenuItemsQueryHandler {
	return queries.NewGetMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoriesQueryHandler() queries.GetCategoriesQueryHandler {
	return queries.NewGetCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAddressesQueryHandler() queries.GetAddressesQueryHandler {
	return queries.NewGetAddressesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP server with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerDeps{
		RegisterUserHandler:      c.CreateRegisterUserCommandHandler(),
		LoginHandler:             c.CreateLoginCommandHandler(),
		RefreshTokenHandler:      c.CreateRefreshTokenCommandHandler(),
		PlaceOrderHandler:        c.CreatePlaceOrderCommandHandler(),
		CancelOrderHandler:       c.CreateCancelOrderCommandHandler(),
		UpdateOrderStatusHandler: c.CreateUpdateOrderStatusCommandHandler(),
		CreateAddressHandler:     c.CreateCreateAddressCommandHandler(),
		UpdateAddressHandler:     c.CreateUpdateAddressCommandHandler(),
		DeleteAddressHandler:     c.CreateDeleteAddressCommandHandler(),
		GetOrdersHandler:         c.CreateGetOrdersQueryHandler(),
		GetOrderHandler:          c.CreateGetOrderQueryHandler(),
		GetMenuItemsHandler:      c.CreateGetMenuItemsQueryHandler(),
		GetCategoriesHandler:     c.CreateGetCategoriesQueryHandler(),
		GetAddressesHandler:      c.CreateGetAddressesQueryHandler(),
		GetUserHandler:           c.CreateGetUserQueryHandler(),
		TokenIssuer:              c.tokenIssuer,
		ServerMetrics:            c.serverMetrics,
	})
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePurgeExpiredTokensCommandHandler(), logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
