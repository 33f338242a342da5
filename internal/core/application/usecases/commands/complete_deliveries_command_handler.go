package commands

import (
	"context"
	"errors"
	"time"

	"fosso/internal/core/domain/model/order"
)

// ErrNoDueOrdersFound is returned when no shipped order is past its delivery date.
var ErrNoDueOrdersFound = errors.New("no due orders found")

// CompleteDeliveriesCommandHandler marks overdue shipped orders as delivered.
// Orders are considered overdue once their promised delivery date is not after
// the current time. Each order is updated within a single transaction.
type CompleteDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteDeliveriesCommandHandler creates a handler for delivery completion sweeps.
func NewCompleteDeliveriesCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveriesCommandHandler {
	return CompleteDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
// Retrieves all shipped orders due by now and moves each to the delivered
// status. Returns ErrNoDueOrdersFound when the sweep finds nothing to do.
func (h *CompleteDeliveriesCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	dueOrders, err := repo.GetAllInStatusDueBy(ctx, order.Shipped, now)
	if err != nil {
		return err
	}
	if len(dueOrders) == 0 {
		return ErrNoDueOrdersFound
	}

	for _, aggregate := range dueOrders {
		if err := aggregate.UpdateStatus(order.Delivered, now); err != nil {
			return err
		}
		if err := repo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
