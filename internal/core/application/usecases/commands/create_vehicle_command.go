package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateVehicleCommandIsNotConstructed = errors.New(
		"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
	)
	ErrNameIsRequired       = errors.New("name is required")
	ErrCapacityIsInvalid    = errors.New("capacity must be greater than 0")
	ErrDimensionsAreInvalid = errors.New("every cargo box side must be greater than 0")
)

// CreateVehicleCommand represents a request to add a truck to the fleet.
// The driver status starts as not set; the driver reports it later.
//
// Example:
//
//	box, _ := kernel.NewDimensions(600, 240, 240)
//	cmd, err := NewCreateVehicleCommand("Truck 1", 1_000_000, box, "Alice")
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create vehicle: %w", err)
//	}
//	fmt.Printf("Created vehicle with ID: %s", cmd.VehicleID())
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID  kernel.UUID
	name       string
	capacity   int64
	dimensions kernel.Dimensions
	driver     string

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Automatically generates a unique ID for the vehicle.
// Validates that name is not blank, capacity is positive and the cargo box has volume.
func NewCreateVehicleCommand(
	name string,
	capacity int64,
	dimensions kernel.Dimensions,
	driver string,
) (CreateVehicleCommand, error) {
	command := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(kernel.NewUUID()),
		command.setName(name),
		command.setCapacity(capacity),
		command.setDimensions(dimensions),
	); err != nil {
		return CreateVehicleCommand{}, err
	}
	command.driver = strings.TrimSpace(driver)

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateVehicleCommandIsNotConstructed if validation fails.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the generated vehicle ID.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Name returns the vehicle name, unique in the fleet.
func (c CreateVehicleCommand) Name() string {
	return c.name
}

// Capacity returns the volumetric capacity.
func (c CreateVehicleCommand) Capacity() int64 {
	return c.capacity
}

// Dimensions returns the cargo box.
func (c CreateVehicleCommand) Dimensions() kernel.Dimensions {
	return c.dimensions
}

// Driver returns the driver name, possibly empty.
func (c CreateVehicleCommand) Driver() string {
	return c.driver
}

func (c *CreateVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}

func (c *CreateVehicleCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateVehicleCommand) setCapacity(capacity int64) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}

func (c *CreateVehicleCommand) setDimensions(dimensions kernel.Dimensions) error {
	if !dimensions.HasVolume() {
		return ErrDimensionsAreInvalid
	}

	c.dimensions = dimensions
	return nil
}
