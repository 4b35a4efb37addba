package queries

import (
	"context"
	"database/sql"

	"suqia/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQuery retrieves the admin customer roster. It carries no
// parameters and needs no constructor guard.
type GetCustomersQuery struct{}

// NewGetCustomersQuery creates a customer roster query.
func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{}
}

// CustomerAccountResponse is one customer as the admin roster shows it.
// UserID identifies the account behind the customer for lockout toggles.
type CustomerAccountResponse struct {
	ID         kernel.UUID
	UserID     kernel.UUID
	FullName   string
	Email      string
	Phone      string
	Address    string
	RegionName string
	OrderCount int
	Locked     bool
}

// GetCustomersQueryHandler lists every customer with account state.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer roster queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle returns every customer sorted by name, with their order count and
// whether the account is currently locked out.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	_ GetCustomersQuery,
) ([]CustomerAccountResponse, error) {
	customers := make([]CustomerAccountResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			u.id,
			u.full_name,
			u.email,
			u.phone,
			u.address,
			r.name,
			COUNT(o.id),
			u.locked_until IS NOT NULL AND u.locked_until > NOW()
		FROM customers c
		JOIN users u ON u.id = c.user_id
		JOIN regions r ON r.id = c.region_id
		LEFT JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id, u.id, u.full_name, u.email, u.phone, u.address, r.name, u.locked_until
		ORDER BY u.full_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c CustomerAccountResponse
		var id, userID uuid.UUID
		var phone, address sql.NullString

		if err = rows.Scan(
			&id,
			&userID,
			&c.FullName,
			&c.Email,
			&phone,
			&address,
			&c.RegionName,
			&c.OrderCount,
			&c.Locked,
		); err != nil {
			return nil, err
		}

		if c.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if c.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		c.Phone = phone.String
		c.Address = address.String
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
