package http

import (
	"net/http"

	"suqia/internal/core/application/usecases/commands"
	"suqia/internal/core/application/usecases/queries"
	"suqia/internal/core/domain/model/account"
	"suqia/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	tokens auth.TokenService

	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	acceptOrderHandler      commands.AcceptOrderCommandHandler
	rejectOrderHandler      commands.RejectOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	startDeliveryHandler    commands.StartDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	rateOrderHandler        commands.RateOrderCommandHandler
	deleteOrderHandler      commands.DeleteOrderCommandHandler
	registerUserHandler     commands.RegisterUserCommandHandler
	deleteCustomerHandler   commands.DeleteCustomerCommandHandler
	deleteDriverHandler     commands.DeleteDriverCommandHandler
	createRegionHandler     commands.CreateRegionCommandHandler
	updateRegionHandler     commands.UpdateRegionCommandHandler
	deleteRegionHandler     commands.DeleteRegionCommandHandler
	createTankHandler       commands.CreateTankCommandHandler
	updateTankHandler       commands.UpdateTankCommandHandler
	deleteTankHandler       commands.DeleteTankCommandHandler
	updateCustomerHandler   commands.UpdateCustomerCommandHandler
	updateDriverHandler     commands.UpdateDriverCommandHandler
	setAccountLockHandler   commands.SetAccountLockCommandHandler

	// Query handlers
	authenticateHandler      queries.AuthenticateUserQueryHandler
	getRegionsHandler        queries.GetRegionsQueryHandler
	getAvailableTanksHandler queries.GetAvailableTanksQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getPendingOrdersHandler  queries.GetPendingOrdersQueryHandler
	getAssignedOrdersHandler queries.GetAssignedOrdersQueryHandler
	getOrderDetailsHandler   queries.GetOrderDetailsQueryHandler
	getDashboardHandler      queries.GetDashboardQueryHandler
	getStatisticsHandler     queries.GetStatisticsQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getCustomersHandler      queries.GetCustomersQueryHandler
	getDriversHandler        queries.GetDriversQueryHandler
}

// Handlers bundles everything a Server routes to.
type Handlers struct {
	CreateOrder      commands.CreateOrderCommandHandler
	AcceptOrder      commands.AcceptOrderCommandHandler
	RejectOrder      commands.RejectOrderCommandHandler
	CancelOrder      commands.CancelOrderCommandHandler
	StartDelivery    commands.StartDeliveryCommandHandler
	CompleteDelivery commands.CompleteDeliveryCommandHandler
	RateOrder        commands.RateOrderCommandHandler
	DeleteOrder      commands.DeleteOrderCommandHandler
	RegisterUser     commands.RegisterUserCommandHandler
	DeleteCustomer   commands.DeleteCustomerCommandHandler
	DeleteDriver     commands.DeleteDriverCommandHandler
	CreateRegion     commands.CreateRegionCommandHandler
	UpdateRegion     commands.UpdateRegionCommandHandler
	DeleteRegion     commands.DeleteRegionCommandHandler
	CreateTank       commands.CreateTankCommandHandler
	UpdateTank       commands.UpdateTankCommandHandler
	DeleteTank       commands.DeleteTankCommandHandler
	UpdateCustomer   commands.UpdateCustomerCommandHandler
	UpdateDriver     commands.UpdateDriverCommandHandler
	SetAccountLock   commands.SetAccountLockCommandHandler

	Authenticate      queries.AuthenticateUserQueryHandler
	GetRegions        queries.GetRegionsQueryHandler
	GetAvailableTanks queries.GetAvailableTanksQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
	GetPendingOrders  queries.GetPendingOrdersQueryHandler
	GetAssignedOrders queries.GetAssignedOrdersQueryHandler
	GetOrderDetails   queries.GetOrderDetailsQueryHandler
	GetDashboard      queries.GetDashboardQueryHandler
	GetStatistics     queries.GetStatisticsQueryHandler
	GetAllOrders      queries.GetAllOrdersQueryHandler
	GetCustomers      queries.GetCustomersQueryHandler
	GetDrivers        queries.GetDriversQueryHandler
}

// NewServer creates an HTTP server routing to the given handlers.
func NewServer(tokens auth.TokenService, h Handlers) *Server {
	return &Server{
		tokens:                   tokens,
		createOrderHandler:       h.CreateOrder,
		acceptOrderHandler:       h.AcceptOrder,
		rejectOrderHandler:       h.RejectOrder,
		cancelOrderHandler:       h.CancelOrder,
		startDeliveryHandler:     h.StartDelivery,
		completeDeliveryHandler:  h.CompleteDelivery,
		rateOrderHandler:         h.RateOrder,
		deleteOrderHandler:       h.DeleteOrder,
		registerUserHandler:      h.RegisterUser,
		deleteCustomerHandler:    h.DeleteCustomer,
		deleteDriverHandler:      h.DeleteDriver,
		createRegionHandler:      h.CreateRegion,
		updateRegionHandler:      h.UpdateRegion,
		deleteRegionHandler:      h.DeleteRegion,
		createTankHandler:        h.CreateTank,
		updateTankHandler:        h.UpdateTank,
		deleteTankHandler:        h.DeleteTank,
		updateCustomerHandler:    h.UpdateCustomer,
		updateDriverHandler:      h.UpdateDriver,
		setAccountLockHandler:    h.SetAccountLock,
		authenticateHandler:      h.Authenticate,
		getRegionsHandler:        h.GetRegions,
		getAvailableTanksHandler: h.GetAvailableTanks,
		getCustomerOrdersHandler: h.GetCustomerOrders,
		getPendingOrdersHandler:  h.GetPendingOrders,
		getAssignedOrdersHandler: h.GetAssignedOrders,
		getOrderDetailsHandler:   h.GetOrderDetails,
		getDashboardHandler:      h.GetDashboard,
		getStatisticsHandler:     h.GetStatistics,
		getAllOrdersHandler:      h.GetAllOrders,
		getCustomersHandler:      h.GetCustomers,
		getDriversHandler:        h.GetDrivers,
	}
}

// RegisterRoutes mounts the API under /api/v1. Role gates are coarse route
// guards; per-order scoping happens in the access policy, which answers
// out-of-scope requests with not found.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI: true, LogStatus: true, LogMethod: true,
		LogValuesFunc: logRequest,
	}))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/regions", s.GetRegions)

	authed := api.Group("", JWTAuth(s.tokens))

	customer := authed.Group("", RequireRole(account.RoleCustomer))
	customer.GET("/tanks/available", s.GetAvailableTanks)
	customer.POST("/orders", s.CreateOrder)
	customer.GET("/orders/my", s.GetMyOrders)
	customer.POST("/orders/:id/cancel", s.CancelOrder)
	customer.POST("/orders/:id/rate", s.RateOrder)

	driver := authed.Group("", RequireRole(account.RoleDriver))
	driver.GET("/orders/pool", s.GetOrderPool)
	driver.GET("/orders/assigned", s.GetAssignedOrders)
	driver.POST("/orders/:id/start", s.StartDelivery)
	driver.POST("/orders/:id/complete", s.CompleteDelivery)

	authed.GET("/orders/:id", s.GetOrderDetails)
	authed.POST("/orders/:id/accept", s.AcceptOrder,
		RequireRole(account.RoleDriver, account.RoleAdmin))
	authed.DELETE("/orders/:id", s.DeleteOrder,
		RequireRole(account.RoleCustomer, account.RoleAdmin))

	admin := authed.Group("/admin", RequireRole(account.RoleAdmin))
	admin.POST("/orders/:id/reject", s.RejectOrder)
	admin.GET("/orders", s.GetAllOrders)
	admin.GET("/dashboard", s.GetDashboard)
	admin.GET("/statistics", s.GetStatistics)
	admin.POST("/regions", s.CreateRegion)
	admin.PUT("/regions/:id", s.UpdateRegion)
	admin.DELETE("/regions/:id", s.DeleteRegion)
	admin.POST("/tanks", s.CreateTank)
	admin.PUT("/tanks/:id", s.UpdateTank)
	admin.DELETE("/tanks/:id", s.DeleteTank)
	admin.GET("/customers", s.GetCustomers)
	admin.PUT("/customers/:id", s.UpdateCustomer)
	admin.DELETE("/customers/:id", s.DeleteCustomer)
	admin.GET("/drivers", s.GetDrivers)
	admin.PUT("/drivers/:id", s.UpdateDriver)
	admin.DELETE("/drivers/:id", s.DeleteDriver)
	admin.POST("/accounts/:id/lock", s.LockAccount)
	admin.POST("/accounts/:id/unlock", s.UnlockAccount)
}

// Login handles POST /api/v1/auth/login.
//
//	@Summary	Authenticate and receive an access token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		LoginRequest	true	"login credentials"
//	@Success	200			{object}	TokenResponse
//	@Failure	401			{object}	ErrorResponse
//	@Router		/auth/login [post]
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	identity, err := s.authenticateHandler.Handle(c.Request().Context(), query)
	if err != nil {
		// wrong password and unknown email answer identically
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "invalid credentials",
		})
	}

	token, err := s.tokens.Issue(identity.UserID, identity.ActorID, identity.Role,
		identity.RegionID, identity.FullName)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Token:    token,
		Role:     identity.Role.String(),
		FullName: identity.FullName,
	})
}

// Register handles POST /api/v1/auth/register.
//
//	@Summary	Register a customer or driver account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		registration	body		RegisterRequest	true	"account details"
//	@Success	201				{object}	CreatedResponse
//	@Failure	400				{object}	ErrorResponse
//	@Router		/auth/register [post]
func (s *Server) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return writeBadRequest(c, "unknown role")
	}

	regionID, err := parseUUID(req.RegionID)
	if err != nil {
		return writeBadRequest(c, "invalid region id")
	}

	userID := newUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Email, req.Password,
		req.FullName, req.Phone, req.Address, role, regionID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.registerUserHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: userID.String()})
}

// GetRegions handles GET /api/v1/regions.
//
//	@Summary	List service regions
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	RegionResponse
//	@Router		/regions [get]
func (s *Server) GetRegions(c echo.Context) error {
	regions, err := s.getRegionsHandler.Handle(c.Request().Context(), queries.NewGetRegionsQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]RegionResponse, 0, len(regions))
	for _, r := range regions {
		response = append(response, RegionResponse{ID: r.ID.String(), Name: r.Name})
	}

	return c.JSON(http.StatusOK, response)
}
