// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
//  1. AuditDigestJob - summarizes the audit trail into the service log
//     (hourly unless AUDIT_DIGEST_SCHEDULE says otherwise)
//
// # Usage
//
//	digest := jobs.NewAuditDigestJob(summaryHandler, cfg.AuditDigestSchedule, logger)
//	jobManager := jobs.NewJobManager(digest)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six cron fields with seconds first, so "0 */15 * * * *"
// runs every fifteen minutes.
//
// # Error Handling
//
// A failed run is logged and the schedule continues. A job that fails to
// start stops the jobs started before it.
package jobs
