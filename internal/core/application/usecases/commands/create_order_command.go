package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new purchase order.
// The order is measured against the catalog and offered to the fleet right away.
//
// Example:
//
//	date := kernel.NewDate(2025, time.March, 14)
//	item, _ := order.NewLineItem("SKU-1", 20, order.PerPiece, 0)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "PO-1042", "Acme", "north", &date, []order.LineItem{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	fields  orderFields

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the ID is valid, that custom ID and company name are not blank
// and that at least one line item is given. An empty cluster or a nil date are allowed.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customID, companyName, cluster string,
	deliveryDate *kernel.Date,
	items []order.LineItem,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	fields, err := newOrderFields(customID, companyName, cluster, deliveryDate, items)
	if err = errors.Join(command.setOrderID(orderID), err); err != nil {
		return CreateOrderCommand{}, err
	}
	command.fields = fields

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomID returns the business identifier of the order.
func (c CreateOrderCommand) CustomID() string {
	return c.fields.customID
}

// Details returns the order fields ready for order.NewOrder.
func (c CreateOrderCommand) Details() order.Details {
	return c.fields.details()
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
