// Package jobs provides scheduled background tasks for the group ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic housekeeping the ordering workflow requires.
//
// # Available Jobs
//
// 1. CreditExpirationJob - Runs hourly to expire lapsed credit entries and write the matching expiration debits
// 2. PaymentDeadlineJob - Runs hourly to report pools still collecting customer payments past their deadline
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireCreditsHandler, overduePoolsHandler, logger)
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
// Both jobs use the cron expression "0 * * * *" and run at the top of every
// hour. Expiry and payment deadlines carry day-level granularity, so hourly
// sweeps keep the lag well below what customers can observe.
//
// # Error Handling
//
// - The expiration sweep runs one transaction per customer; a failing customer is logged and retried on the next tick while the rest of the sweep completes
// - The deadline sweep only reports; it never cancels a pool on its own
// - Failed job starts will stop any already running jobs
package jobs
