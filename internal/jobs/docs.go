// Package jobs provides scheduled background tasks for the dispatch console.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the dispatch service.
//
// # Available Jobs
//
// 1. AvailabilityReconciliationJob - Runs every minute to recompute rider
// availability from persisted request statuses
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
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
// The reconciliation job uses the cron expression "0 * * * * *", firing at
// the top of every minute. The manual availability toggle can contradict a
// rider's actual workload at any time, so a minute of drift is the accepted
// ceiling.
//
// # Error Handling
//
// Reconciliation errors are logged and the job keeps its schedule; a failed
// sweep is retried implicitly on the next tick.
package jobs
