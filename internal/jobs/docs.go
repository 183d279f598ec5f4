// Package jobs provides scheduled background tasks for the recruitment backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StorageHealthJob - Pings the object storage on HEALTH_CHECK_SCHEDULE and
// keeps the last result for GET /health
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	healthJob := jobs.NewStorageHealthJob(blobStore, config.HealthCheckSchedule, logger)
//	jobManager := jobs.NewJobManager(healthJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field. The
// default "*/30 * * * * *" checks twice a minute.
//
// # Error Handling
//
// - The check is bounded by a ten second timeout
// - Only transitions between reachable and unreachable are logged
// - The job reports unhealthy until the first check has completed
package jobs
