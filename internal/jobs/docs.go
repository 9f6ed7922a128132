// Package jobs provides scheduled background tasks for the depot.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use six fields, the first one being seconds.
//
// # Available Jobs
//
// 1. DispatchJob - assigns pending orders to the least loaded driver able to carry them
// 2. DeliveryRoundJob - performs the deliveries of every driver holding a vehicle and queued orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, deliveryRoundHandler, jobs.Schedules{
//		Dispatch:      "*/5 * * * * *",
//		DeliveryRound: "0 * * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Dispatch job ignores an empty pending pool
// - Delivery round job logs every error as it indicates a system issue
// - Failed job starts will stop any already running jobs
package jobs
