package jobs

import (
	"fmt"
	"log/slog"

	"groupbuy/internal/core/application/usecases/commands"
	"groupbuy/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	creditExpirationJob *CreditExpirationJob
	paymentDeadlineJob  *PaymentDeadlineJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireCreditsHandler commands.ExpireOverdueCreditsCommandHandler,
	overduePoolsHandler queries.GetOverduePaymentPoolsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		creditExpirationJob: NewCreditExpirationJob(expireCreditsHandler, logger),
		paymentDeadlineJob:  NewPaymentDeadlineJob(overduePoolsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.creditExpirationJob.Start(); err != nil {
		return fmt.Errorf("failed to start credit expiration job: %w", err)
	}

	if err := jm.paymentDeadlineJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.creditExpirationJob.Stop()
		return fmt.Errorf("failed to start payment deadline job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentDeadlineJob.Stop()
	jm.creditExpirationJob.Stop()
}
