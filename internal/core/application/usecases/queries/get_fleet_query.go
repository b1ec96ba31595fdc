package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetFleetQueryIsNotConstructed = errors.New(
		"GetFleetQuery must be created via NewGetFleetQuery constructor",
	)
)

// GetFleetQuery lists every vehicle with its driver and load figures.
type GetFleetQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFleetQuery() GetFleetQuery {
	return GetFleetQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFleetQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetQueryIsNotConstructed)
}

// GetFleetQueryResponse describes one vehicle.
//
// MaxDateLoad is the display statistic: the largest total load the vehicle
// carries for a single delivery date. CurrentLoad is the cached value written
// by the last assignment or rebalance.
type GetFleetQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Capacity       int64
	Dimensions     kernel.Dimensions
	Driver         string
	DriverStatus   vehicle.DriverStatus
	AssignedOrders int
	CurrentLoad    int64
	MaxDateLoad    int64
}

// Utilization is MaxDateLoad as a share of the capacity.
func (r GetFleetQueryResponse) Utilization() float64 {
	if r.Capacity <= 0 {
		return 0
	}
	return float64(r.MaxDateLoad) / float64(r.Capacity)
}
