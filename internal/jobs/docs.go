// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// RebalanceJob runs the full-fleet rebalance on a schedule, by default
// "0 5 0 * * *" (00:05:00 every day in the configured time zone). Orders that
// were waiting for the earliest scheduled date become assignable once their
// date is today, and the nightly run applies that without any request.
//
// # Usage
//
//	job := jobs.NewRebalanceJob(rebalanceHandler, cfg.RebalanceSchedule, loc, logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A rebalance rejected by validation is logged with its violations and leaves
// the stored fleet untouched. Failed job starts stop any already running jobs.
package jobs
