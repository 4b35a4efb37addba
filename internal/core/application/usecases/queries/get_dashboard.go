package queries

import (
	"context"
	"time"

	"suqia/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDashboardQuery retrieves the admin landing page counters and the
// most recent orders. It carries no parameters.
type GetDashboardQuery struct{}

// NewGetDashboardQuery creates a dashboard query.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{}
}

// RecentOrderResponse is one row of the dashboard's recent order feed.
type RecentOrderResponse struct {
	ID           kernel.UUID
	CustomerName string
	TankName     string
	Quantity     int
	Price        float64
	OrderTime    time.Time
	Status       string
}

// GetDashboardQueryResponse aggregates the admin dashboard.
type GetDashboardQueryResponse struct {
	TotalOrders     int
	PendingOrders   int
	DeliveredOrders int
	TotalCustomers  int
	TotalDrivers    int
	RecentOrders    []RecentOrderResponse
}

// GetDashboardQueryHandler builds the admin dashboard.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle returns system wide counters plus the ten most recent orders.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	_ GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	var response GetDashboardQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = 'Pending'),
			(SELECT COUNT(*) FROM orders WHERE status = 'Delivered'),
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM drivers)
	`).Row()
	if err := row.Scan(
		&response.TotalOrders,
		&response.PendingOrders,
		&response.DeliveredOrders,
		&response.TotalCustomers,
		&response.TotalDrivers,
	); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	response.RecentOrders = make([]RecentOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			u.full_name,
			t.name,
			o.quantity,
			o.price,
			o.order_time,
			o.status
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN users u ON u.id = c.user_id
		JOIN tanks t ON t.id = o.tank_id
		ORDER BY o.order_time DESC
		LIMIT 10
	`).Rows()
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var o RecentOrderResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&o.CustomerName,
			&o.TankName,
			&o.Quantity,
			&o.Price,
			&o.OrderTime,
			&o.Status,
		); err != nil {
			return GetDashboardQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetDashboardQueryResponse{}, idErr
		}
		o.ID = orderID
		response.RecentOrders = append(response.RecentOrders, o)
	}

	if err = rows.Err(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return response, nil
}
