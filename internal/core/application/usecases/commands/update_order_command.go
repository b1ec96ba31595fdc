package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces the editable fields of an order that is not on the road yet.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	fields  orderFields

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand applies the same field rules as NewCreateOrderCommand.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	customID, companyName, cluster string,
	deliveryDate *kernel.Date,
	items []order.LineItem,
) (UpdateOrderCommand, error) {
	command := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	fields, err := newOrderFields(customID, companyName, cluster, deliveryDate, items)
	if err = errors.Join(command.setOrderID(orderID), err); err != nil {
		return UpdateOrderCommand{}, err
	}
	command.fields = fields

	return command, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) CustomID() string {
	return c.fields.customID
}

func (c UpdateOrderCommand) Details() order.Details {
	return c.fields.details()
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
