// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3 with second
// precision, and delegate all work to application command handlers.
//
// # Available Jobs
//
// ReadyOrdersReminderJob runs every minute by default. It asks
// RemindReadyOrdersCommandHandler to re-broadcast ready orders no courier
// has claimed to every available courier. A round that is still running
// when the next one is due is skipped.
//
// # Usage
//
//	reminder := jobs.NewReadyOrdersReminderJob(handler, jobs.DefaultReminderSchedule, 2*time.Minute, logger)
//	jobManager := jobs.NewJobManager(reminder)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failed rounds are logged and retried on the next tick. Failed job starts
// stop any already running jobs.
package jobs
