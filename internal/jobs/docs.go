// Package jobs provides scheduled background tasks for the shop service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. OrderReportJob - Periodically logs the per-status order breakdown for monitoring
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statsHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The report job schedule is configurable through ORDER_REPORT_SCHEDULE and
// uses standard five-field cron syntax.
package jobs
