package http

import (
	"net/http"

	"suqia/internal/core/application/usecases/commands"
	"suqia/internal/core/application/usecases/queries"
	"suqia/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetDashboard handles GET /api/v1/admin/dashboard.
//
//	@Summary	System counters and recent orders
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	DashboardResponse
//	@Router		/admin/dashboard [get]
func (s *Server) GetDashboard(c echo.Context) error {
	dashboard, err := s.getDashboardHandler.Handle(c.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return writeError(c, err)
	}

	recent := make([]OrderSummaryResponse, 0, len(dashboard.RecentOrders))
	for _, o := range dashboard.RecentOrders {
		recent = append(recent, OrderSummaryResponse{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			TankName:     o.TankName,
			Quantity:     o.Quantity,
			Price:        o.Price,
			OrderTime:    o.OrderTime,
			Status:       o.Status,
		})
	}

	return c.JSON(http.StatusOK, DashboardResponse{
		TotalOrders:     dashboard.TotalOrders,
		PendingOrders:   dashboard.PendingOrders,
		DeliveredOrders: dashboard.DeliveredOrders,
		TotalCustomers:  dashboard.TotalCustomers,
		TotalDrivers:    dashboard.TotalDrivers,
		RecentOrders:    recent,
	})
}

// GetStatistics handles GET /api/v1/admin/statistics.
//
//	@Summary	Order breakdowns and a six month revenue series
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	StatisticsResponse
//	@Router		/admin/statistics [get]
func (s *Server) GetStatistics(c echo.Context) error {
	stats, err := s.getStatisticsHandler.Handle(c.Request().Context(), queries.NewGetStatisticsQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := StatisticsResponse{
		OrdersByStatus: make([]StatusCount, 0, len(stats.OrdersByStatus)),
		OrdersByRegion: make([]RegionCount, 0, len(stats.OrdersByRegion)),
		Monthly:        make([]MonthlyStats, 0, len(stats.Monthly)),
	}
	for _, sc := range stats.OrdersByStatus {
		response.OrdersByStatus = append(response.OrdersByStatus, StatusCount(sc))
	}
	for _, rc := range stats.OrdersByRegion {
		response.OrdersByRegion = append(response.OrdersByRegion, RegionCount(rc))
	}
	for _, m := range stats.Monthly {
		response.Monthly = append(response.Monthly, MonthlyStats(m))
	}

	return c.JSON(http.StatusOK, response)
}

// CreateRegion handles POST /api/v1/admin/regions.
//
//	@Summary	Add a service region
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		region	body		RegionRequest	true	"region"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/admin/regions [post]
func (s *Server) CreateRegion(c echo.Context) error {
	var req RegionRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	regionID := newUUID()
	cmd, err := commands.NewCreateRegionCommand(regionID, req.Name)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.createRegionHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: regionID.String()})
}

// UpdateRegion handles PUT /api/v1/admin/regions/:id.
//
//	@Summary	Rename a service region
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path	string			true	"region id"
//	@Param		region	body	RegionRequest	true	"region"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/regions/{id} [put]
func (s *Server) UpdateRegion(c echo.Context) error {
	regionID, err := pathID(c)
	if err != nil {
		return writeBadRequest(c, "invalid region id")
	}

	var req RegionRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateRegionCommand(regionID, req.Name)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.updateRegionHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteRegion handles DELETE /api/v1/admin/regions/:id.
//
//	@Summary	Delete an empty service region
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"region id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/admin/regions/{id} [delete]
func (s *Server) DeleteRegion(c echo.Context) error {
	regionID, err := pathID(c)
	if err != nil {
		return writeBadRequest(c, "invalid region id")
	}

	cmd, err := commands.NewDeleteRegionCommand(regionID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.deleteRegionHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// tankCommandInput converts a TankRequest into domain-ready values.
func tankCommandInput(req TankRequest) (kernel.Money, []kernel.UUID, error) {
	price, err := kernel.NewMoney(req.PricePerBarrel)
	if err != nil {
		return kernel.Money{}, nil, err
	}

	regionIDs := make([]kernel.UUID, 0, len(req.RegionIDs))
	for _, raw := range req.RegionIDs {
		regionID, parseErr := parseUUID(raw)
		if parseErr != nil {
			return kernel.Money{}, nil, parseErr
		}
		regionIDs = append(regionIDs, regionID)
	}

	return price, regionIDs, nil
}

// CreateTank handles POST /api/v1/admin/tanks.
//
//	@Summary	Add a water tank
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		tank	body		TankRequest	true	"tank"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/admin/tanks [post]
func (s *Server) CreateTank(c echo.Context) error {
	var req TankRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	price, regionIDs, err := tankCommandInput(req)
	if err != nil {
		return writeError(c, err)
	}

	tankID := newUUID()
	cmd, err := commands.NewCreateTankCommand(tankID, req.Name, req.Capacity,
		req.WaterType, price, req.Location, regionIDs)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.createTankHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: tankID.String()})
}

// UpdateTank handles PUT /api/v1/admin/tanks/:id.
//
//	@Summary	Edit a water tank
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path	string		true	"tank id"
//	@Param		tank	body	TankRequest	true	"tank"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/tanks/{id} [put]
func (s *Server) UpdateTank(c echo.Context) error {
	tankID, err := pathID(c)
	if err != nil {
		return writeBadRequest(c, "invalid tank id")
	}

	var req TankRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	price, regionIDs, err := tankCommandInput(req)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateTankCommand(tankID, req.Name, req.Capacity,
		req.WaterType, price, req.Location, regionIDs)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.updateTankHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteTank handles DELETE /api/v1/admin/tanks/:id.
//
//	@Summary	Delete an unreferenced water tank
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"tank id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/admin/tanks/{id} [delete]
func (s *Server) DeleteTank(c echo.Context) error {
	tankID, err := pathID(c)
	if err != nil {
		return writeBadRequest(c, "invalid tank id")
	}

	cmd, err := commands.NewDeleteTankCommand(tankID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.deleteTankHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAllOrders handles GET /api/v1/admin/orders.
//
//	@Summary	List orders across every customer and driver
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		customerId	query		string	false	"only this customer's orders"
//	@Param		driverId	query		string	false	"only this driver's orders"
//	@Success	200			{array}		OrderSummaryResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/admin/orders [get]
func (s *Server) GetAllOrders(c echo.Context) error {
	var customerID, driverID *kernel.UUID
	if raw := c.QueryParam("customerId"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return writeBadRequest(c, "invalid customer id")
		}
		customerID = &id
	}
	if raw := c.QueryParam("driverId"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return writeBadRequest(c, "invalid driver id")
		}
		driverID = &id
	}

	query, err := queries.NewGetAllOrdersQuery(customerID, driverID)
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.getAllOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderSummaryResponse{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			TankName:     o.TankName,
			DriverName:   o.DriverName,
			Quantity:     o.Quantity,
			Price:        o.Price,
			OrderTime:    o.OrderTime,
			Status:       o.Status,
			Rating:       o.Rating,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetCustomers handles GET /api/v1/admin/customers.
//
//	@Summary	List customer accounts
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	CustomerAccountResponse
//	@Router		/admin/customers [get]
func (s *Server) GetCustomers(c echo.Context) error {
	customers, err := s.getCustomersHandler.Handle(c.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]CustomerAccountResponse, 0, len(customers))
	for _, cust := range customers {
		response = append(response, CustomerAccountResponse{
			ID:         cust.ID.String(),
			UserID:     cust.UserID.String(),
			FullName:   cust.FullName,
			Email:      cust.Email,
			Phone:      cust.Phone,
			Address:    cust.Address,
			RegionName: cust.RegionName,
			OrderCount: cust.OrderCount,
			Locked:     cust.Locked,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetDrivers handles GET /api/v1/admin/drivers.
//
//	@Summary	List driver accounts
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	DriverAccountResponse
//	@Router		/admin/drivers [get]
func (s *Server) GetDrivers(c echo.Context) error {
	drivers, err := s.getDriversHandler.Handle(c.Request().Context(), queries.NewGetDriversQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]DriverAccountResponse, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, DriverAccountResponse{
			ID:              d.ID.String(),
			UserID:          d.UserID.String(),
			FullName:        d.FullName,
			Email:           d.Email,
			Phone:           d.Phone,
			RegionName:      d.RegionName,
			ActiveOrders:    d.ActiveOrders,
			DeliveredOrders: d.DeliveredOrders,
			Locked:          d.Locked,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateCustomer handles PUT /api/v1/admin/customers/:id.
//
//	@Summary	Edit a customer's profile and region
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id			path	string				true	"customer id"
//	@Param		customer	body	EditCustomerRequest	true	"customer"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/customers/{id} [put]
func (s *Server) UpdateCustomer(c echo.Context) error {
	customerID, err := pathID(c)
	if err != nil {
		return writeBadRequest(c, "invalid customer id")
	}

	var req EditCustomerRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	regionID, err := parseUUID(req.RegionID)
	if err != nil {
		return writeBadRequest(c, "invalid region id")
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, req.FullName,
		req.Phone, req.Address, regionID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.updateCustomerHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateDriver handles PUT /api/v1/admin/drivers/:id.
//
//	@Summary	Edit a driver's profile and region
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path	string				true	"driver id"
//	@Param		driver	body	EditDriverRequest	true	"driver"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/drivers/{id} [put]
func (s *Server) UpdateDriver(c echo.Context) error {
	driverID, err := pathID(c)
	if err != nil {
		return writeBadRequest(c, "invalid driver id")
	}

	var req EditDriverRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	regionID, err := parseUUID(req.RegionID)
	if err != nil {
		return writeBadRequest(c, "invalid region id")
	}

	cmd, err := commands.NewUpdateDriverCommand(driverID, req.FullName, req.Phone, regionID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.updateDriverHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// LockAccount handles POST /api/v1/admin/accounts/:id/lock.
//
//	@Summary	Lock an account out of signing in
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"user id"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/accounts/{id}/lock [post]
func (s *Server) LockAccount(c echo.Context) error {
	return s.setAccountLock(c, true)
}

// UnlockAccount handles POST /api/v1/admin/accounts/:id/unlock.
//
//	@Summary	Let a locked account sign in again
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"user id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/accounts/{id}/unlock [post]
func (s *Server) UnlockAccount(c echo.Context) error {
	return s.setAccountLock(c, false)
}

func (s *Server) setAccountLock(c echo.Context, locked bool) error {
	userID, err := pathID(c)
	if err != nil {
		return writeBadRequest(c, "invalid user id")
	}

	cmd, err := commands.NewSetAccountLockCommand(userID, locked)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.setAccountLockHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /api/v1/admin/customers/:id.
//
//	@Summary	Delete a customer and everything they own
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"customer id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/customers/{id} [delete]
func (s *Server) DeleteCustomer(c echo.Context) error {
	customerID, err := pathID(c)
	if err != nil {
		return writeBadRequest(c, "invalid customer id")
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.deleteCustomerHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteDriver handles DELETE /api/v1/admin/drivers/:id.
//
//	@Summary	Delete a driver, returning their active orders to the pool
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"driver id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/drivers/{id} [delete]
func (s *Server) DeleteDriver(c echo.Context) error {
	driverID, err := pathID(c)
	if err != nil {
		return writeBadRequest(c, "invalid driver id")
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.deleteDriverHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
