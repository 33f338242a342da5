package commands

import (
	"errors"

	"fosso/internal/pkg/guard"
)

var ErrCompleteDeliveriesCommandIsNotConstructed = errors.New(
	"CompleteDeliveriesCommand must be created via NewCompleteDeliveriesCommand constructor",
)

// CompleteDeliveriesCommand triggers the completion of shipped orders whose
// promised delivery date has passed. Each matching order is moved to the
// delivered status together with its active line items.
//
// Example:
//
//	cmd := NewCompleteDeliveriesCommand()
//	handler := NewCompleteDeliveriesCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Delivery completion failed: %v", err)
//	}
type CompleteDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteDeliveriesCommand creates a new command to trigger delivery completion.
// This is a parameterless command that sweeps all overdue shipped orders.
func NewCompleteDeliveriesCommand() CompleteDeliveriesCommand {
	return CompleteDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveriesCommandIsNotConstructed if validation fails.
func (c *CompleteDeliveriesCommand) Validate() error {
	return c.guard.Validate(
		ErrCompleteDeliveriesCommandIsNotConstructed,
	)
}
