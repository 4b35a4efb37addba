package queries

import (
	"context"
	"database/sql"

	"suqia/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriversQuery retrieves the admin driver roster.
type GetDriversQuery struct{}

// NewGetDriversQuery creates a driver roster query.
func NewGetDriversQuery() GetDriversQuery {
	return GetDriversQuery{}
}

// DriverAccountResponse is one driver as the admin roster shows it.
type DriverAccountResponse struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	FullName        string
	Email           string
	Phone           string
	RegionName      string
	ActiveOrders    int
	DeliveredOrders int
	Locked          bool
}

// GetDriversQueryHandler lists every driver with account state and
// workload counts.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for driver roster queries.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle returns every driver sorted by name, with in-flight and delivered
// order counts and whether the account is currently locked out.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	_ GetDriversQuery,
) ([]DriverAccountResponse, error) {
	drivers := make([]DriverAccountResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			u.id,
			u.full_name,
			u.email,
			u.phone,
			r.name,
			COUNT(o.id) FILTER (WHERE o.status IN ('Accepted', 'InDelivery')),
			COUNT(o.id) FILTER (WHERE o.status = 'Delivered'),
			u.locked_until IS NOT NULL AND u.locked_until > NOW()
		FROM drivers d
		JOIN users u ON u.id = d.user_id
		JOIN regions r ON r.id = d.region_id
		LEFT JOIN orders o ON o.driver_id = d.id
		GROUP BY d.id, u.id, u.full_name, u.email, u.phone, r.name, u.locked_until
		ORDER BY u.full_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d DriverAccountResponse
		var id, userID uuid.UUID
		var phone sql.NullString

		if err = rows.Scan(
			&id,
			&userID,
			&d.FullName,
			&d.Email,
			&phone,
			&d.RegionName,
			&d.ActiveOrders,
			&d.DeliveredOrders,
			&d.Locked,
		); err != nil {
			return nil, err
		}

		if d.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if d.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		d.Phone = phone.String
		drivers = append(drivers, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
