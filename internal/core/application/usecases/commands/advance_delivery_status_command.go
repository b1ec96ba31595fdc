package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrAdvanceDeliveryStatusCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryStatusCommand must be created via NewAdvanceDeliveryStatusCommand constructor",
)

// AdvanceDeliveryStatusCommand records driver progress on one order.
type AdvanceDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.DeliveryStatus

	guard guard.ConstructorGuard
}

func NewAdvanceDeliveryStatusCommand(orderID kernel.UUID, status order.DeliveryStatus) (AdvanceDeliveryStatusCommand, error) {
	command := AdvanceDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStatus(status),
	); err != nil {
		return AdvanceDeliveryStatusCommand{}, err
	}

	return command, nil
}

func (c AdvanceDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryStatusCommandIsNotConstructed)
}

func (c AdvanceDeliveryStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceDeliveryStatusCommand) Status() order.DeliveryStatus {
	return c.status
}

func (c *AdvanceDeliveryStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceDeliveryStatusCommand) setStatus(status order.DeliveryStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
