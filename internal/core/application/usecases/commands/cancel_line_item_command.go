package commands

import (
	"errors"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/pkg/guard"
)

var (
	ErrCancelLineItemCommandIsNotConstructed = errors.New(
		"CancelLineItemCommand must be created via NewCancelLineItemCommand constructor",
	)
	ErrProductIDIsRequired = errors.New("product id is required")
)

// CancelLineItemCommand represents a request to cancel a single line item of an
// order. The line is identified by product ID plus the color and size of the
// variant that was ordered.
type CancelLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID string
	color     string
	size      string
	notes     string

	guard guard.ConstructorGuard
}

// NewCancelLineItemCommand creates a command to cancel one line item.
// Validates that the order ID is valid and the product ID is not empty.
// Color and size may be empty when the ordered variant had none.
func NewCancelLineItemCommand(
	orderID kernel.UUID,
	productID, color, size, notes string,
) (CancelLineItemCommand, error) {
	cancelCommand := CancelLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderID(orderID),
		cancelCommand.setProductID(productID),
	); err != nil {
		return CancelLineItemCommand{}, err
	}
	cancelCommand.color = color
	cancelCommand.size = size
	cancelCommand.notes = notes

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelLineItemCommandIsNotConstructed if validation fails.
func (c CancelLineItemCommand) Validate() error {
	return c.guard.Validate(ErrCancelLineItemCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (c CancelLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product whose line item is being cancelled.
func (c CancelLineItemCommand) ProductID() string {
	return c.productID
}

// Color returns the variant color of the line item.
func (c CancelLineItemCommand) Color() string {
	return c.color
}

// Size returns the variant size of the line item.
func (c CancelLineItemCommand) Size() string {
	return c.size
}

// Notes returns the cancellation notes to record on the line item's track.
func (c CancelLineItemCommand) Notes() string {
	return c.notes
}

func (c *CancelLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelLineItemCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}
