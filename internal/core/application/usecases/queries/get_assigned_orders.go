package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery retrieves every order a driver has claimed,
// including delivered and rejected ones.
type GetAssignedOrdersQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates a query for a driver's claimed orders.
func NewGetAssignedOrdersQuery(driverID kernel.UUID) (GetAssignedOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetAssignedOrdersQuery{}, err
	}

	return GetAssignedOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// DriverID returns the browsing driver.
func (q GetAssignedOrdersQuery) DriverID() kernel.UUID {
	return q.driverID
}

// AssignedOrderResponse is one claimed order as a driver sees it.
type AssignedOrderResponse struct {
	ID           kernel.UUID
	CustomerName string
	Address      string
	TankName     string
	Quantity     int
	Price        float64
	OrderTime    time.Time
	Status       string
}

// GetAssignedOrdersQueryHandler lists a driver's claimed orders.
type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for driver order queries.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle returns the driver's claimed orders, newest first.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]AssignedOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]AssignedOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			u.full_name,
			u.address,
			t.name,
			o.quantity,
			o.price,
			o.order_time,
			o.status
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN users u ON u.id = c.user_id
		JOIN tanks t ON t.id = o.tank_id
		WHERE o.driver_id = ?
		ORDER BY o.order_time DESC
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o AssignedOrderResponse
		var id uuid.UUID
		var address sql.NullString

		if err = rows.Scan(
			&id,
			&o.CustomerName,
			&address,
			&o.TankName,
			&o.Quantity,
			&o.Price,
			&o.OrderTime,
			&o.Status,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		o.ID = orderID
		o.Address = address.String
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
