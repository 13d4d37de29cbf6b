// Package jobs provides scheduled background tasks for the seller service.
//
// Jobs are cron-based and use github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// 1. PaymentTimeoutJob - Runs every minute to cancel New orders that stayed unpaid past the configured timeout
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	timeoutJob := jobs.NewPaymentTimeoutJob(&expiredHandler, &cancelHandler, 30*time.Minute, logger)
//	jobManager := jobs.NewJobManager(timeoutJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// PaymentTimeoutJob uses the cron expression "0 * * * * *", the first second of
// every minute. A single pass cancels at most PaymentTimeoutBatchSize orders,
// oldest first.
//
// # Error Handling
//
// - Orders paid, finished or canceled between the query and the cancel are logged at debug level
// - All other failures are logged at error level and the pass continues with the next order
// - Failed job starts will stop any already running jobs
package jobs
