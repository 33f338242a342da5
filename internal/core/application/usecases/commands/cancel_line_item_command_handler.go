package commands

import (
	"context"
	"time"

	"fosso/internal/core/domain/services"
)

// CancelLineItemCommandHandler handles the business logic for cancelling a
// single line item. The aggregate rebalances the order totals through the
// pricing engine and cancels the whole order once every line item is cancelled.
//
// Example:
//
//	handler := NewCancelLineItemCommandHandler(uowFactory, pricer)
//	cmd, _ := NewCancelLineItemCommand(orderID, "prod-1", "Black", "M", "out of stock")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("line item cancellation failed: %w", err)
//	}
type CancelLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     services.PricingEngine
}

// NewCancelLineItemCommandHandler creates a handler for line item cancellation.
// Requires an OrderUoWFactory for transactional persistence and the pricing
// engine to rebalance the order totals.
func NewCancelLineItemCommandHandler(
	uowFactory OrderUoWFactory,
	pricer services.PricingEngine,
) CancelLineItemCommandHandler {
	return CancelLineItemCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle processes the line item cancellation command.
// Loads the order, cancels the matched line item through the aggregate, and
// persists it with a version-checked update inside a transaction.
func (h *CancelLineItemCommandHandler) Handle(ctx context.Context, cmd CancelLineItemCommand) error {
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

	err = aggregate.CancelLineItem(
		cmd.ProductID(), cmd.Color(), cmd.Size(), cmd.Notes(),
		h.pricer, time.Now(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
