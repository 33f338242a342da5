package commands

import (
	"context"
	"time"
)

// UpdateLineItemStatusCommandHandler handles line-item status updates.
// The aggregate updates the matched line item's track and then re-derives the
// order-level status from the non-cancelled line items.
//
// Example:
//
//	handler := NewUpdateLineItemStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateLineItemStatusCommand(orderID, "prod-1", "Black", "M", order.Shipped, "left warehouse")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("line item status update failed: %w", err)
//	}
type UpdateLineItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateLineItemStatusCommandHandler creates a handler for line-item status updates.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateLineItemStatusCommandHandler(uowFactory OrderUoWFactory) UpdateLineItemStatusCommandHandler {
	return UpdateLineItemStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line item status update command.
// Loads the order, applies the update through the aggregate, and persists it
// with a version-checked update inside a transaction.
func (h *UpdateLineItemStatusCommandHandler) Handle(ctx context.Context, cmd UpdateLineItemStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	err = aggregate.UpdateLineItemStatus(
		cmd.ProductID(), cmd.Color(), cmd.Size(),
		cmd.Status(), cmd.Notes(), time.Now(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
