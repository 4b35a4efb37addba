package queries

import (
	"context"

	"suqia/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRegionsQuery retrieves the region catalog. It carries no parameters
// and needs no constructor guard.
type GetRegionsQuery struct{}

// NewGetRegionsQuery creates a region catalog query.
func NewGetRegionsQuery() GetRegionsQuery {
	return GetRegionsQuery{}
}

// GetRegionsQueryResponse is one service region.
type GetRegionsQueryResponse struct {
	ID   kernel.UUID
	Name string
}

// GetRegionsQueryHandler lists all service regions.
type GetRegionsQueryHandler struct {
	db *gorm.DB
}

// NewGetRegionsQueryHandler creates a handler for region catalog queries.
func NewGetRegionsQueryHandler(db *gorm.DB) GetRegionsQueryHandler {
	return GetRegionsQueryHandler{db: db}
}

// Handle returns every region sorted by name.
func (h GetRegionsQueryHandler) Handle(
	ctx context.Context,
	_ GetRegionsQuery,
) ([]GetRegionsQueryResponse, error) {
	regions := make([]GetRegionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM regions
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r GetRegionsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &r.Name); err != nil {
			return nil, err
		}

		regionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		r.ID = regionID
		regions = append(regions, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return regions, nil
}
