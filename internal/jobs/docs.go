// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. DeliveryCompletionJob - Runs every hour to mark overdue shipped orders as delivered
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(completeDeliveriesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The delivery completion job uses the cron expression "0 * * * *" and runs at
// the top of every hour. Orders are completed based on their promised delivery
// date, so an hourly sweep keeps the visible status close to reality without
// hammering the database.
//
// # Error Handling
//
// - The completion job ignores the expected no-due-orders result
// - All other errors are logged as they indicate system issues
package jobs
