// Package orderrepo persists order aggregates, converting between domain
// entities and their relational representation.
package orderrepo

import (
	"time"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Indexed by customer, driver, tank, and status to serve both
// the command side and the raw read models.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	TankID     uuid.UUID  `gorm:"type:uuid;index"`
	DriverID   *uuid.UUID `gorm:"type:uuid;index"`
	Quantity   int
	Price      float64 `gorm:"type:numeric(18,2)"`
	OrderTime  time.Time
	Status     string `gorm:"type:varchar(20);index"`
	Rating     *int
	Comment    string
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := o.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:         o.ID().Bytes(),
		CustomerID: o.CustomerID().Bytes(),
		TankID:     o.TankID().Bytes(),
		DriverID:   driverID,
		Quantity:   o.Quantity(),
		Price:      o.Price().Float64(),
		OrderTime:  o.OrderTime(),
		Status:     o.Status().String(),
		Rating:     o.Rating(),
		Comment:    o.Comment(),
	}
}

// toDomain reconstructs an order aggregate from its database row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	tankID, err := kernel.UUIDFromBytes(dto.TankID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, tankID, driverID,
		dto.Quantity, price, dto.OrderTime, status, dto.Rating, dto.Comment)
}
