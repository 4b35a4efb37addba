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

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves the unclaimed order pool for a driver:
// pending orders placed by customers in the driver's region.
type GetPendingOrdersQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for a driver's claimable orders.
func NewGetPendingOrdersQuery(driverID kernel.UUID) (GetPendingOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetPendingOrdersQuery{}, err
	}

	return GetPendingOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// DriverID returns the browsing driver.
func (q GetPendingOrdersQuery) DriverID() kernel.UUID {
	return q.driverID
}

// PendingOrderResponse is one claimable order as a driver sees it.
type PendingOrderResponse struct {
	ID           kernel.UUID
	CustomerName string
	Address      string
	TankName     string
	Quantity     int
	Price        float64
	OrderTime    time.Time
}

// GetPendingOrdersQueryHandler lists the unclaimed order pool for a driver.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for driver pool queries.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle returns pending orders from the driver's region, oldest first so
// that long waiting customers are served before fresh ones.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]PendingOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]PendingOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			u.full_name,
			u.address,
			t.name,
			o.quantity,
			o.price,
			o.order_time
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN users u ON u.id = c.user_id
		JOIN tanks t ON t.id = o.tank_id
		JOIN drivers d ON d.region_id = c.region_id
		WHERE d.id = ? AND o.status = 'Pending' AND o.driver_id IS NULL
		ORDER BY o.order_time ASC
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o PendingOrderResponse
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
