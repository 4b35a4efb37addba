package http

import (
	"net/http"

	"suqia/internal/core/application/usecases/commands"
	"suqia/internal/core/application/usecases/queries"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// GetAvailableTanks handles GET /api/v1/tanks/available.
//
//	@Summary	List tanks serving the customer's region
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	TankResponse
//	@Router		/tanks/available [get]
func (s *Server) GetAvailableTanks(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	query, err := queries.NewGetAvailableTanksQuery(principal.ActorID())
	if err != nil {
		return writeError(c, err)
	}

	tanks, err := s.getAvailableTanksHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]TankResponse, 0, len(tanks))
	for _, t := range tanks {
		response = append(response, TankResponse{
			ID:             t.ID.String(),
			Name:           t.Name,
			Capacity:       t.Capacity,
			WaterType:      t.WaterType,
			PricePerBarrel: t.PricePerBarrel,
			Location:       t.Location,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
//
//	@Summary	Place a water delivery order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		order	body		CreateOrderRequest	true	"order details"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	tankID, err := parseUUID(req.TankID)
	if err != nil {
		return writeBadRequest(c, "invalid tank id")
	}

	orderID := newUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, principal.ActorID(), tankID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetMyOrders handles GET /api/v1/orders/my.
//
//	@Summary	List the customer's orders, newest first
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	OrderSummaryResponse
//	@Router		/orders/my [get]
func (s *Server) GetMyOrders(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	query, err := queries.NewGetCustomerOrdersQuery(principal.ActorID())
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderSummaryResponse{
			ID:         o.ID.String(),
			TankName:   o.TankName,
			DriverName: o.DriverName,
			Quantity:   o.Quantity,
			Price:      o.Price,
			OrderTime:  o.OrderTime,
			Status:     o.Status,
			Rating:     o.Rating,
			Comment:    o.Comment,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrderPool handles GET /api/v1/orders/pool.
//
//	@Summary	List claimable pending orders in the driver's region, oldest first
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	OrderSummaryResponse
//	@Router		/orders/pool [get]
func (s *Server) GetOrderPool(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	query, err := queries.NewGetPendingOrdersQuery(principal.ActorID())
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.getPendingOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderSummaryResponse{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			Address:      o.Address,
			TankName:     o.TankName,
			Quantity:     o.Quantity,
			Price:        o.Price,
			OrderTime:    o.OrderTime,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetAssignedOrders handles GET /api/v1/orders/assigned.
//
//	@Summary	List the driver's claimed orders, newest first
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	OrderSummaryResponse
//	@Router		/orders/assigned [get]
func (s *Server) GetAssignedOrders(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	query, err := queries.NewGetAssignedOrdersQuery(principal.ActorID())
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.getAssignedOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderSummaryResponse{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			Address:      o.Address,
			TankName:     o.TankName,
			Quantity:     o.Quantity,
			Price:        o.Price,
			OrderTime:    o.OrderTime,
			Status:       o.Status,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrderDetails handles GET /api/v1/orders/:id.
//
//	@Summary	Read one order within the caller's scope
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"order id"
//	@Success	200	{object}	OrderDetailsResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (s *Server) GetOrderDetails(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	orderID, err := pathID(c)
	if err != nil {
		return writeBadRequest(c, "invalid order id")
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID, principal)
	if err != nil {
		return writeError(c, err)
	}

	details, err := s.getOrderDetailsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderDetailsResponse(details))
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
//
//	@Summary	Accept a pending order
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"order id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/accept [post]
func (s *Server) AcceptOrder(c echo.Context) error {
	return s.runOrderCommand(c, func(orderID kernel.UUID, principal services.Principal) error {
		cmd, err := commands.NewAcceptOrderCommand(orderID, principal)
		if err != nil {
			return err
		}
		return s.acceptOrderHandler.Handle(c.Request().Context(), cmd)
	})
}

// RejectOrder handles POST /api/v1/admin/orders/:id/reject.
//
//	@Summary	Reject a pending or accepted order
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"order id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/admin/orders/{id}/reject [post]
func (s *Server) RejectOrder(c echo.Context) error {
	return s.runOrderCommand(c, func(orderID kernel.UUID, principal services.Principal) error {
		cmd, err := commands.NewRejectOrderCommand(orderID, principal)
		if err != nil {
			return err
		}
		return s.rejectOrderHandler.Handle(c.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
//
//	@Summary	Cancel an own pending order
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"order id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/cancel [post]
func (s *Server) CancelOrder(c echo.Context) error {
	return s.runOrderCommand(c, func(orderID kernel.UUID, principal services.Principal) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, principal)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(c.Request().Context(), cmd)
	})
}

// StartDelivery handles POST /api/v1/orders/:id/start.
//
//	@Summary	Start delivering an accepted order
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"order id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/start [post]
func (s *Server) StartDelivery(c echo.Context) error {
	return s.runOrderCommand(c, func(orderID kernel.UUID, principal services.Principal) error {
		cmd, err := commands.NewStartDeliveryCommand(orderID, principal)
		if err != nil {
			return err
		}
		return s.startDeliveryHandler.Handle(c.Request().Context(), cmd)
	})
}

// CompleteDelivery handles POST /api/v1/orders/:id/complete.
//
//	@Summary	Mark an order as delivered
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"order id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/complete [post]
func (s *Server) CompleteDelivery(c echo.Context) error {
	return s.runOrderCommand(c, func(orderID kernel.UUID, principal services.Principal) error {
		cmd, err := commands.NewCompleteDeliveryCommand(orderID, principal)
		if err != nil {
			return err
		}
		return s.completeDeliveryHandler.Handle(c.Request().Context(), cmd)
	})
}

// RateOrder handles POST /api/v1/orders/:id/rate.
//
//	@Summary	Rate a delivered order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path	string			true	"order id"
//	@Param		rating	body	RateOrderRequest	true	"rating"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id}/rate [post]
func (s *Server) RateOrder(c echo.Context) error {
	var req RateOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	return s.runOrderCommand(c, func(orderID kernel.UUID, principal services.Principal) error {
		cmd, err := commands.NewRateOrderCommand(orderID, principal, req.Rating, req.Comment)
		if err != nil {
			return err
		}
		return s.rateOrderHandler.Handle(c.Request().Context(), cmd)
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
//
//	@Summary	Delete an order
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path	string	true	"order id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id} [delete]
func (s *Server) DeleteOrder(c echo.Context) error {
	return s.runOrderCommand(c, func(orderID kernel.UUID, principal services.Principal) error {
		cmd, err := commands.NewDeleteOrderCommand(orderID, principal)
		if err != nil {
			return err
		}
		return s.deleteOrderHandler.Handle(c.Request().Context(), cmd)
	})
}
