// Package queries contains the read side. Query handlers go straight to
// the database with raw SQL and return flat read models; they never load
// aggregates or go through repositories.
package queries

import (
	"context"
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAvailableTanksQueryIsNotConstructed = errors.New(
	"GetAvailableTanksQuery must be created via NewGetAvailableTanksQuery constructor",
)

// GetAvailableTanksQuery retrieves the tanks a customer may order from:
// every tank linked to the customer's region.
type GetAvailableTanksQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableTanksQuery creates a query for a customer's orderable tanks.
func NewGetAvailableTanksQuery(customerID kernel.UUID) (GetAvailableTanksQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetAvailableTanksQuery{}, err
	}

	return GetAvailableTanksQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableTanksQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableTanksQueryIsNotConstructed)
}

// CustomerID returns the browsing customer.
func (q GetAvailableTanksQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetAvailableTanksQueryResponse is one orderable tank.
type GetAvailableTanksQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Capacity       int
	WaterType      string
	PricePerBarrel float64
	Location       string
}

// GetAvailableTanksQueryHandler lists a customer's orderable tanks.
type GetAvailableTanksQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableTanksQueryHandler creates a handler for tank availability queries.
func NewGetAvailableTanksQueryHandler(db *gorm.DB) GetAvailableTanksQueryHandler {
	return GetAvailableTanksQueryHandler{db: db}
}

// Handle returns the tanks linked to the customer's region, sorted by name.
func (h GetAvailableTanksQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableTanksQuery,
) ([]GetAvailableTanksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tanks := make([]GetAvailableTanksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.name,
			t.capacity,
			t.water_type,
			t.price_per_barrel,
			t.location
		FROM tanks t
		JOIN tank_regions tr ON tr.tank_id = t.id
		JOIN customers c ON c.region_id = tr.region_id
		WHERE c.id = ?
		ORDER BY t.name
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tank GetAvailableTanksQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&tank.Name,
			&tank.Capacity,
			&tank.WaterType,
			&tank.PricePerBarrel,
			&tank.Location,
		); err != nil {
			return nil, err
		}

		tankID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		tank.ID = tankID
		tanks = append(tanks, tank)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tanks, nil
}
