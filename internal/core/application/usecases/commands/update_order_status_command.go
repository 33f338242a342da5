package commands

import (
	"errors"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/domain/model/order"
	"fosso/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to set the status of a whole
// order, propagating it to every non-cancelled line item.
//
// Notes are accepted for API compatibility but order-level updates do not
// record them; only line item updates do.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	notes   string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to update an order's status.
// Validates that the order ID is valid and the status is a known value.
// Whether the status may actually be assigned is decided by the aggregate.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	notes string,
) (UpdateOrderStatusCommand, error) {
	updateCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	updateCommand.notes = notes

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status to apply to the order and its line items.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// Notes returns the notes supplied with the update.
func (c UpdateOrderStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
