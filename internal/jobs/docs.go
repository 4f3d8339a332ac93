// Package jobs provides scheduled background tasks for the sales order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. RecurrenceRestartJob - Restarts waiting recurrent orders so their next installment is placed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(waitingOrdersHandler, restartOrderHandler, schedule, logger)
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
// The restart job's cron expression is configurable; the default "0 * * * * *"
// runs once a minute, which is frequent enough for day-granular recurrence gaps.
//
// # Error Handling
//
// - Guard rejections and version conflicts are expected business scenarios and are skipped
// - All other errors are logged as they indicate system issues
package jobs
