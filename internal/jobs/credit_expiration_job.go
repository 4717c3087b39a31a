package jobs

import (
	"context"
	"log/slog"

	"groupbuy/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CreditExpirationJob runs the ledger expiration sweep on a schedule. Each
// run expires every Active credit entry past its expiry and writes the
// matching expiration debits, keeping cached balances equal to the ledger sum.
type CreditExpirationJob struct {
	handler commands.ExpireOverdueCreditsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCreditExpirationJob creates a new job for expiring lapsed credits.
func NewCreditExpirationJob(handler commands.ExpireOverdueCreditsCommandHandler, logger *slog.Logger) *CreditExpirationJob {
	return &CreditExpirationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "credit_expiration_job"),
	}
}

// Start begins the credit expiration job to run at the top of every hour.
func (j *CreditExpirationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireOverdueCreditsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Credit expiration sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Credit expiration job started (running hourly)")
	return nil
}

// Stop stops the credit expiration job.
func (j *CreditExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Credit expiration job stopped")
}
