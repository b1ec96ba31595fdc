package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// A vehicle is stored with its driver, driver status and the ordered list of
// carried orders.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	// The vehicle must be valid and its name not already taken.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAll retrieves the whole fleet ordered by name.
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)

	// ExistsName reports whether a vehicle already uses name.
	ExistsName(ctx context.Context, name string) (bool, error)
}
