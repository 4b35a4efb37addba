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

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's full order history.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the browsing customer.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CustomerOrderResponse is one order as its owner sees it.
type CustomerOrderResponse struct {
	ID         kernel.UUID
	TankName   string
	DriverName string
	Quantity   int
	Price      float64
	OrderTime  time.Time
	Status     string
	Rating     *int
	Comment    string
}

// GetCustomerOrdersQueryHandler lists a customer's orders.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns the customer's orders, newest first. DriverName is empty
// until a driver claims the order.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]CustomerOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]CustomerOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			t.name,
			du.full_name,
			o.quantity,
			o.price,
			o.order_time,
			o.status,
			o.rating,
			o.comment
		FROM orders o
		JOIN tanks t ON t.id = o.tank_id
		LEFT JOIN drivers d ON d.id = o.driver_id
		LEFT JOIN users du ON du.id = d.user_id
		WHERE o.customer_id = ?
		ORDER BY o.order_time DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o CustomerOrderResponse
		var id uuid.UUID
		var driverName, comment sql.NullString
		var rating sql.NullInt64

		if err = rows.Scan(
			&id,
			&o.TankName,
			&driverName,
			&o.Quantity,
			&o.Price,
			&o.OrderTime,
			&o.Status,
			&rating,
			&comment,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		o.ID = orderID
		o.DriverName = driverName.String
		o.Comment = comment.String
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
