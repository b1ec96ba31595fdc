package commands

import (
	"context"

	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/errs"
)

// CreateVehicleCommandHandler handles the business logic for vehicle registration.
// Creates and persists a new, empty vehicle whose driver status is not set yet.
//
// Example:
//
//	handler := NewCreateVehicleCommandHandler(uowFactory)
//	box, _ := kernel.NewDimensions(600, 240, 240)
//	cmd, _ := NewCreateVehicleCommand("Truck 7", 1_000_000, box, "Bob")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("vehicle registration failed: %w", err)
//	}
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
// Requires a VehicleUoWFactory for transactional persistence operations.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle creation command.
// Rejects a name already used in the fleet with errs.AlreadyExistsError.
// Automatically rolls back on any error to prevent partial data.
func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()

	exists, err := vehicleRepo.ExistsName(ctx, cmd.Name())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewAlreadyExistsError("name", cmd.Name())
	}

	truck, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.Name(), cmd.Capacity(), cmd.Dimensions(),
		cmd.Driver(), vehicle.NotSet)
	if err != nil {
		return err
	}

	if err = vehicleRepo.Add(ctx, truck); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
