package cmd

import (
	"strconv"
	"time"

	api "suqia/internal/adapters/in/http"
	"suqia/internal/adapters/out/postgres"
	"suqia/internal/core/application/usecases/commands"
	"suqia/internal/core/application/usecases/queries"
	"suqia/internal/pkg/auth"

	"gorm.io/gorm"
)

const defaultTokenTTL = 8 * time.Hour

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     auth.BcryptHasher
	tokens     auth.TokenService
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	ttl := defaultTokenTTL
	if minutes, err := strconv.Atoi(config.JWTTTLMinutes); err == nil && minutes > 0 {
		ttl = time.Duration(minutes) * time.Minute
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     auth.NewBcryptHasher(),
		tokens:     auth.NewTokenService(config.JWTSecret, ttl),
	}
}

func (c *CompositionRoot) TokenService() auth.TokenService {
	return c.tokens
}

func (c *CompositionRoot) PasswordHasher() auth.BcryptHasher {
	return c.hasher
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

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

// NewHandlers wires every command and query handler the HTTP server routes to.
func (c *CompositionRoot) NewHandlers() api.Handlers {
	return api.Handlers{
		CreateOrder:      commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		AcceptOrder:      commands.NewAcceptOrderCommandHandler(c.orderUoWFactory()),
		RejectOrder:      commands.NewRejectOrderCommandHandler(c.orderUoWFactory()),
		CancelOrder:      commands.NewCancelOrderCommandHandler(c.orderUoWFactory()),
		StartDelivery:    commands.NewStartDeliveryCommandHandler(c.orderUoWFactory()),
		CompleteDelivery: commands.NewCompleteDeliveryCommandHandler(c.orderUoWFactory()),
		RateOrder:        commands.NewRateOrderCommandHandler(c.orderUoWFactory()),
		DeleteOrder:      commands.NewDeleteOrderCommandHandler(c.orderUoWFactory()),
		RegisterUser:     commands.NewRegisterUserCommandHandler(c.accountUoWFactory(), c.hasher),
		DeleteCustomer:   commands.NewDeleteCustomerCommandHandler(c.accountUoWFactory()),
		DeleteDriver:     commands.NewDeleteDriverCommandHandler(c.accountUoWFactory()),
		CreateRegion:     commands.NewCreateRegionCommandHandler(c.catalogUoWFactory()),
		UpdateRegion:     commands.NewUpdateRegionCommandHandler(c.catalogUoWFactory()),
		DeleteRegion:     commands.NewDeleteRegionCommandHandler(c.catalogUoWFactory()),
		CreateTank:       commands.NewCreateTankCommandHandler(c.catalogUoWFactory()),
		UpdateTank:       commands.NewUpdateTankCommandHandler(c.catalogUoWFactory()),
		DeleteTank:       commands.NewDeleteTankCommandHandler(c.catalogUoWFactory()),
		UpdateCustomer:   commands.NewUpdateCustomerCommandHandler(c.accountUoWFactory()),
		UpdateDriver:     commands.NewUpdateDriverCommandHandler(c.accountUoWFactory()),
		SetAccountLock:   commands.NewSetAccountLockCommandHandler(c.accountUoWFactory()),

		Authenticate:      queries.NewAuthenticateUserQueryHandler(c.gormDB, c.hasher),
		GetRegions:        queries.NewGetRegionsQueryHandler(c.gormDB),
		GetAvailableTanks: queries.NewGetAvailableTanksQueryHandler(c.gormDB),
		GetCustomerOrders: queries.NewGetCustomerOrdersQueryHandler(c.gormDB),
		GetPendingOrders:  queries.NewGetPendingOrdersQueryHandler(c.gormDB),
		GetAssignedOrders: queries.NewGetAssignedOrdersQueryHandler(c.gormDB),
		GetOrderDetails:   queries.NewGetOrderDetailsQueryHandler(c.gormDB),
		GetDashboard:      queries.NewGetDashboardQueryHandler(c.gormDB),
		GetStatistics:     queries.NewGetStatisticsQueryHandler(c.gormDB),
		GetAllOrders:      queries.NewGetAllOrdersQueryHandler(c.gormDB),
		GetCustomers:      queries.NewGetCustomersQueryHandler(c.gormDB),
		GetDrivers:        queries.NewGetDriversQueryHandler(c.gormDB),
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

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
