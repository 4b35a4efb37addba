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

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves the admin order ledger. Optional customer
// and driver filters narrow it to one person's history, which is how the
// per-account drill-down views are served.
type GetAllOrdersQuery struct {
	customerID *kernel.UUID
	driverID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates an order ledger query. Nil filters mean
// every order.
func NewGetAllOrdersQuery(customerID, driverID *kernel.UUID) (GetAllOrdersQuery, error) {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}

	return GetAllOrdersQuery{
		customerID: customerID,
		driverID:   driverID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, or nil.
func (q GetAllOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// DriverID returns the driver filter, or nil.
func (q GetAllOrdersQuery) DriverID() *kernel.UUID {
	return q.driverID
}

// AdminOrderResponse is one order in the admin ledger.
type AdminOrderResponse struct {
	ID           kernel.UUID
	CustomerName string
	TankName     string
	DriverName   string
	Quantity     int
	Price        float64
	OrderTime    time.Time
	Status       string
	Rating       *int
}

// GetAllOrdersQueryHandler lists orders across every customer and driver.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for admin order queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns the matching orders, newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]AdminOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			o.id,
			u.full_name,
			t.name,
			du.full_name,
			o.quantity,
			o.price,
			o.order_time,
			o.status,
			o.rating
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN users u ON u.id = c.user_id
		JOIN tanks t ON t.id = o.tank_id
		LEFT JOIN drivers d ON d.id = o.driver_id
		LEFT JOIN users du ON du.id = d.user_id
		WHERE 1 = 1`
	args := make([]any, 0, 2)
	if id := query.CustomerID(); id != nil {
		stmt += ` AND o.customer_id = ?`
		args = append(args, id.Bytes())
	}
	if id := query.DriverID(); id != nil {
		stmt += ` AND o.driver_id = ?`
		args = append(args, id.Bytes())
	}
	stmt += ` ORDER BY o.order_time DESC`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]AdminOrderResponse, 0)
	for rows.Next() {
		var o AdminOrderResponse
		var id uuid.UUID
		var driverName sql.NullString
		var rating sql.NullInt64

		if err = rows.Scan(
			&id,
			&o.CustomerName,
			&o.TankName,
			&driverName,
			&o.Quantity,
			&o.Price,
			&o.OrderTime,
			&o.Status,
			&rating,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		o.ID = orderID
		o.DriverName = driverName.String
		if rating.Valid {
			value := int(rating.Int64)
			o.Rating = &value
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
