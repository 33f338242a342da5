package commands

import (
	"errors"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/domain/model/order"
	"fosso/internal/pkg/guard"
)

var ErrUpdateLineItemStatusCommandIsNotConstructed = errors.New(
	"UpdateLineItemStatusCommand must be created via NewUpdateLineItemStatusCommand constructor",
)

// UpdateLineItemStatusCommand represents a request to update the fulfillment
// status of a single line item, identified by product ID plus variant color
// and size. The notes are recorded on the line item's track.
type UpdateLineItemStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID string
	color     string
	size      string
	status    order.Status
	notes     string

	guard guard.ConstructorGuard
}

// NewUpdateLineItemStatusCommand creates a command to update one line item's status.
// Validates that the order ID is valid, the product ID is not empty, and the
// status is a known value.
func NewUpdateLineItemStatusCommand(
	orderID kernel.UUID,
	productID, color, size string,
	status order.Status,
	notes string,
) (UpdateLineItemStatusCommand, error) {
	updateCommand := UpdateLineItemStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setProductID(productID),
		updateCommand.setStatus(status),
	); err != nil {
		return UpdateLineItemStatusCommand{}, err
	}
	updateCommand.color = color
	updateCommand.size = size
	updateCommand.notes = notes

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateLineItemStatusCommandIsNotConstructed if validation fails.
func (c UpdateLineItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLineItemStatusCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (c UpdateLineItemStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product whose line item is being updated.
func (c UpdateLineItemStatusCommand) ProductID() string {
	return c.productID
}

// Color returns the variant color of the line item.
func (c UpdateLineItemStatusCommand) Color() string {
	return c.color
}

// Size returns the variant size of the line item.
func (c UpdateLineItemStatusCommand) Size() string {
	return c.size
}

// Status returns the status to apply to the line item.
func (c UpdateLineItemStatusCommand) Status() order.Status {
	return c.status
}

// Notes returns the notes to record on the line item's track.
func (c UpdateLineItemStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateLineItemStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateLineItemStatusCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}

func (c *UpdateLineItemStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
