package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"suqia/internal/core/domain/model/account"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/services"
	"suqia/internal/pkg/errs"
	"suqia/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves one order scoped to the caller. Orders
// outside the caller's scope read as missing, not as forbidden.
type GetOrderDetailsQuery struct {
	orderID   kernel.UUID
	principal services.Principal

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a scoped single order query.
func NewGetOrderDetailsQuery(
	orderID kernel.UUID,
	principal services.Principal,
) (GetOrderDetailsQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		principal.Validate(),
	); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return GetOrderDetailsQuery{
		orderID:   orderID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Principal returns the caller's identity.
func (q GetOrderDetailsQuery) Principal() services.Principal {
	return q.principal
}

// OrderDetailsResponse is the full view of one order.
type OrderDetailsResponse struct {
	ID           kernel.UUID
	CustomerName string
	Address      string
	RegionName   string
	TankName     string
	DriverName   string
	Quantity     int
	Price        float64
	OrderTime    time.Time
	Status       string
	Rating       *int
	Comment      string
}

// GetOrderDetailsQueryHandler reads one order within the caller's scope.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for single order queries.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle returns the order when the caller may see it. Customers see only
// their own orders. Drivers see orders assigned to them plus the unclaimed
// pending pool of their region. Admins see everything.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	base := `
		SELECT
			o.id,
			u.full_name,
			u.address,
			r.name,
			t.name,
			du.full_name,
			o.quantity,
			o.price,
			o.order_time,
			o.status,
			o.rating,
			o.comment
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN users u ON u.id = c.user_id
		JOIN regions r ON r.id = c.region_id
		JOIN tanks t ON t.id = o.tank_id
		LEFT JOIN drivers d ON d.id = o.driver_id
		LEFT JOIN users du ON du.id = d.user_id
		WHERE o.id = ?`

	principal := query.Principal()

	var rows *sql.Rows
	var err error
	switch principal.Role() {
	case account.RoleCustomer:
		rows, err = h.db.WithContext(ctx).Raw(base+` AND o.customer_id = ?`,
			query.OrderID().Bytes(), principal.ActorID().Bytes()).Rows()
	case account.RoleDriver:
		rows, err = h.db.WithContext(ctx).Raw(base+`
			AND (o.driver_id = ?
				OR (o.driver_id IS NULL AND o.status = 'Pending' AND c.region_id = ?))`,
			query.OrderID().Bytes(), principal.ActorID().Bytes(), principal.RegionID().Bytes()).Rows()
	default:
		rows, err = h.db.WithContext(ctx).Raw(base, query.OrderID().Bytes()).Rows()
	}
	if err != nil {
		return OrderDetailsResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderDetailsResponse{}, err
		}
		return OrderDetailsResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	var o OrderDetailsResponse
	var id uuid.UUID
	var address, driverName, comment sql.NullString
	var rating sql.NullInt64

	if err = rows.Scan(
		&id,
		&o.CustomerName,
		&address,
		&o.RegionName,
		&o.TankName,
		&driverName,
		&o.Quantity,
		&o.Price,
		&o.OrderTime,
		&o.Status,
		&rating,
		&comment,
	); err != nil {
		return OrderDetailsResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderDetailsResponse{}, err
	}
	o.ID = orderID
	o.Address = address.String
	o.DriverName = driverName.String
	o.Comment = comment.String
	if rating.Valid {
		value := int(rating.Int64)
		o.Rating = &value
	}

	return o, nil
}
