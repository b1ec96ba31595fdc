package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/guard"
)

var ErrChangeDriverStatusCommandIsNotConstructed = errors.New(
	"ChangeDriverStatusCommand must be created via NewChangeDriverStatusCommand constructor",
)

// ChangeDriverStatusCommand moves the driver of a vehicle to a new status.
//
// Example:
//
//	cmd, err := NewChangeDriverStatusCommand(vehicleID, vehicle.InTransit)
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); errors.Is(err, errs.ErrTransitionNotAllowed) {
//	    // the driver still has deliveries to finish
//	}
type ChangeDriverStatusCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	status    vehicle.DriverStatus

	guard guard.ConstructorGuard
}

func NewChangeDriverStatusCommand(vehicleID kernel.UUID, status vehicle.DriverStatus) (ChangeDriverStatusCommand, error) {
	command := ChangeDriverStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(vehicleID),
		command.setStatus(status),
	); err != nil {
		return ChangeDriverStatusCommand{}, err
	}

	return command, nil
}

func (c ChangeDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverStatusCommandIsNotConstructed)
}

func (c ChangeDriverStatusCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c ChangeDriverStatusCommand) Status() vehicle.DriverStatus {
	return c.status
}

func (c *ChangeDriverStatusCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *ChangeDriverStatusCommand) setStatus(status vehicle.DriverStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
