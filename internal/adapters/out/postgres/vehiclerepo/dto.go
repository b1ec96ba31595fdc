// Package vehiclerepo maps vehicle aggregates to the vehicles table.
package vehiclerepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
// AssignedOrders keeps the carried order IDs in assignment order.
type VehicleDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name           string         `gorm:"not null;uniqueIndex"`
	Capacity       int64          `gorm:"not null"`
	Dimensions     DimensionsDTO  `gorm:"embedded;embeddedPrefix:cargo_"`
	Driver         string
	DriverStatus   string         `gorm:"not null"`
	AssignedOrders pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CurrentLoad    int64          `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

// DimensionsDTO is the embedded cargo space of a vehicle.
type DimensionsDTO struct {
	Length int64
	Width  int64
	Height int64
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	assigned := v.AssignedOrders()
	orderIDs := make(pq.StringArray, 0, len(assigned))
	for _, id := range assigned {
		orderIDs = append(orderIDs, id.String())
	}

	return VehicleDTO{
		ID:       v.ID().Bytes(),
		Name:     v.Name(),
		Capacity: v.Capacity(),
		Dimensions: DimensionsDTO{
			Length: v.Dimensions().Length(),
			Width:  v.Dimensions().Width(),
			Height: v.Dimensions().Height(),
		},
		Driver:         v.Driver(),
		DriverStatus:   v.DriverStatus().String(),
		AssignedOrders: orderIDs,
		CurrentLoad:    v.CurrentLoad(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	dims, err := kernel.NewDimensions(dto.Dimensions.Length, dto.Dimensions.Width, dto.Dimensions.Height)
	if err != nil {
		return nil, err
	}

	status, err := vehicle.ParseDriverStatus(dto.DriverStatus)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.AssignedOrders))
	for _, raw := range dto.AssignedOrders {
		orderID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	return vehicle.RestoreVehicle(id, dto.Name, dto.Capacity, dims, dto.Driver, status, orderIDs, dto.CurrentLoad)
}
