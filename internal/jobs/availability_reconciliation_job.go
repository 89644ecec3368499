package jobs

import (
	"context"
	"log/slog"

	"fixxo/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AvailabilityReconciliationJob periodically recomputes every rider's
// availability flag from their persisted request statuses. It repairs
// drift introduced by the manual admin toggle.
type AvailabilityReconciliationJob struct {
	handler commands.ReconcileAvailabilityCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAvailabilityReconciliationJob creates a job that reconciles rider
// availability every minute.
func NewAvailabilityReconciliationJob(
	handler commands.ReconcileAvailabilityCommandHandler, logger *slog.Logger,
) *AvailabilityReconciliationJob {
	return &AvailabilityReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "availability_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run at the top of every minute.
func (j *AvailabilityReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileAvailabilityCommand()

		corrected, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Availability reconciliation job failed", "error", err)
			return
		}
		if corrected > 0 {
			j.logger.InfoContext(ctx, "Repaired drifted availability flags", "corrected", corrected)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Availability reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *AvailabilityReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Availability reconciliation job stopped")
}
