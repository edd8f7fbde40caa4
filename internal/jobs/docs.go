// Package jobs provides scheduled background tasks for the order header service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for document production.
//
// # Available Jobs
//
// 1. DocumentPrintJob - Lists headers awaiting document production, spools their
// documents to the print service and marks each header printed on success
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required jobs
//	jobManager := jobs.NewJobManager(documentPrintJob)
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
// The print job's cron expression comes from configuration (seconds field
// included), so operators tune the print cadence per environment.
//
// # Error Handling
//
// - Spool failures leave the header unprinted; the next tick retries it
// - Update failures on concurrently-modified rows are expected and not logged
// - Every other failure is logged and the job keeps running
package jobs
