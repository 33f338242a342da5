package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fosso/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryCompletionJob manages the scheduled completion of shipped orders.
// Runs every hour to move orders past their promised delivery date to the
// delivered status.
type DeliveryCompletionJob struct {
	handler commands.CompleteDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryCompletionJob creates a new job for completing overdue deliveries.
// Uses CompleteDeliveriesCommandHandler to sweep shipped orders every hour.
func NewDeliveryCompletionJob(handler commands.CompleteDeliveriesCommandHandler, logger *slog.Logger) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delivery_completion_job"),
	}
}

// Start begins the delivery completion job to run at the top of every hour.
func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCompleteDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty sweep is the normal case, not a failure
			if !errors.Is(err, commands.ErrNoDueOrdersFound) {
				j.logger.ErrorContext(ctx, "Delivery completion job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started (running every hour)")
	return nil
}

// Stop stops the delivery completion job.
func (j *DeliveryCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}
