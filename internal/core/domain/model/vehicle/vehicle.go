package vehicle

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrNameIsRequired is returned when attempting to create a vehicle without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Vehicle represents a delivery truck of the fleet.
//
// Key responsibilities:
//   - Holding the static limits used by eligibility (capacity and cargo box)
//   - Tracking the driver and the driver status state machine
//   - Keeping the ordered set of carried orders and the cached load
//
// Business rules:
//   - Vehicle must have a valid UUID, a non-empty name and a positive capacity
//   - Every cargo box side must be positive
//   - The cached load never exceeds capacity
//   - An order appears at most once in assignedOrders
type Vehicle struct {
	id             kernel.UUID
	name           string
	capacity       int64
	dimensions     kernel.Dimensions
	driver         string
	driverStatus   DriverStatus
	assignedOrders []kernel.UUID
	currentLoad    int64
	guard          guard.ConstructorGuard
}

// NewVehicle creates an empty vehicle.
//
// Parameters:
//   - id: Unique identifier for the vehicle (must be valid UUID)
//   - name: Human-readable name, unique in the fleet (must be non-empty)
//   - capacity: Volumetric capacity (must be positive)
//   - dimensions: Cargo box (every side must be positive)
//   - driver: Driver name, may be empty
//   - driverStatus: Initial driver status (must be valid)
//
// Returns:
//   - *Vehicle: A vehicle carrying nothing
//   - error: Aggregated validation errors
//
// Example:
//
//	box, _ := kernel.NewDimensions(600, 240, 240)
//	truck, err := NewVehicle(kernel.NewUUID(), "Truck 1", 1_000_000, box, "Alice", Available)
func NewVehicle(
	id kernel.UUID,
	name string,
	capacity int64,
	dimensions kernel.Dimensions,
	driver string,
	driverStatus DriverStatus,
) (*Vehicle, error) {
	v := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
		v.setCapacity(capacity),
		v.setDimensions(dimensions),
		v.setDriver(driver, driverStatus),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage,
// including its carried orders and cached load.
//
// Business Rules:
//   - All NewVehicle rules apply
//   - assignedOrders must not contain duplicates
//   - currentLoad must be within [0, capacity]
func RestoreVehicle(
	id kernel.UUID,
	name string,
	capacity int64,
	dimensions kernel.Dimensions,
	driver string,
	driverStatus DriverStatus,
	assignedOrders []kernel.UUID,
	currentLoad int64,
) (*Vehicle, error) {
	v, err := NewVehicle(id, name, capacity, dimensions, driver, driverStatus)
	if err != nil {
		return nil, err
	}

	if err := v.ReplaceCargo(assignedOrders, currentLoad); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate checks if the Vehicle was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by identifier.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

func (v *Vehicle) ID() kernel.UUID               { return v.id }
func (v *Vehicle) Name() string                  { return v.name }
func (v *Vehicle) Capacity() int64               { return v.capacity }
func (v *Vehicle) Dimensions() kernel.Dimensions { return v.dimensions }
func (v *Vehicle) Driver() string                { return v.driver }
func (v *Vehicle) DriverStatus() DriverStatus    { return v.driverStatus }

// CurrentLoad returns the cached load written by the last assignment or rebalance.
// It is for display only.
func (v *Vehicle) CurrentLoad() int64 {
	return v.currentLoad
}

// AssignedOrders returns a copy of the carried order ids in assignment order.
func (v *Vehicle) AssignedOrders() []kernel.UUID {
	out := make([]kernel.UUID, len(v.assignedOrders))
	copy(out, v.assignedOrders)
	return out
}

// Carries reports whether the order is in assignedOrders.
func (v *Vehicle) Carries(orderID kernel.UUID) bool {
	return slices.ContainsFunc(v.assignedOrders, orderID.IsEqual)
}

// AddOrder appends an order to the cargo. The cached load grows by load and is
// clamped to capacity. Adding a carried order again is a no-op.
func (v *Vehicle) AddOrder(orderID kernel.UUID, load int64) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if load < 0 {
		return errs.NewValueIsInvalidErrorWithCause("load", fmt.Errorf("%d is negative", load))
	}
	if v.Carries(orderID) {
		return nil
	}
	v.assignedOrders = append(v.assignedOrders, orderID)
	v.currentLoad = min(v.currentLoad+load, v.capacity)
	return nil
}

// RemoveOrder drops an order from the cargo and lowers the cached load by load.
func (v *Vehicle) RemoveOrder(orderID kernel.UUID, load int64) {
	idx := slices.IndexFunc(v.assignedOrders, orderID.IsEqual)
	if idx < 0 {
		return
	}
	v.assignedOrders = slices.Delete(v.assignedOrders, idx, idx+1)
	v.currentLoad = max(v.currentLoad-load, 0)
}

// ReplaceCargo overwrites the carried orders and the cached load. It is the
// write path of a full rebalance.
func (v *Vehicle) ReplaceCargo(orderIDs []kernel.UUID, load int64) error {
	if load < 0 || load > v.capacity {
		return errs.NewValueIsOutOfRangeError("currentLoad", load, 0, v.capacity)
	}
	cargo := make([]kernel.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if slices.ContainsFunc(cargo, id.IsEqual) {
			return errs.NewValueIsInvalidErrorWithCause("assignedOrders",
				fmt.Errorf("order %s is listed twice", id))
		}
		cargo = append(cargo, id)
	}
	v.assignedOrders = cargo
	v.currentLoad = load
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	v.name = name
	return nil
}

func (v *Vehicle) setCapacity(capacity int64) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	v.capacity = capacity
	return nil
}

func (v *Vehicle) setDimensions(d kernel.Dimensions) error {
	if !d.HasVolume() {
		return errs.NewValueIsInvalidErrorWithCause("dimensions", fmt.Errorf("%s has a zero side", d))
	}
	v.dimensions = d
	return nil
}

func (v *Vehicle) setDriver(driver string, status DriverStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.driver = strings.TrimSpace(driver)
	v.driverStatus = status
	return nil
}
