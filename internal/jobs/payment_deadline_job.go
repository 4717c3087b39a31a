package jobs

import (
	"context"
	"log/slog"
	"time"

	"groupbuy/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PaymentDeadlineJob sweeps pools still collecting customer payments past
// their deadline. The workflow never auto-cancels on a missed deadline; the
// sweep surfaces overdue pools to the operations log so an admin decides
// whether to extend, cancel, or chase the missing payments.
type PaymentDeadlineJob struct {
	handler queries.GetOverduePaymentPoolsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentDeadlineJob creates a new job for reporting overdue payment pools.
func NewPaymentDeadlineJob(handler queries.GetOverduePaymentPoolsQueryHandler, logger *slog.Logger) *PaymentDeadlineJob {
	return &PaymentDeadlineJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "payment_deadline_job"),
	}
}

// Start begins the payment deadline job to run at the top of every hour.
func (j *PaymentDeadlineJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		j.sweep(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment deadline job started (running hourly)")
	return nil
}

// Stop stops the payment deadline job.
func (j *PaymentDeadlineJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment deadline job stopped")
}

func (j *PaymentDeadlineJob) sweep(ctx context.Context) {
	query, err := queries.NewGetOverduePaymentPoolsQuery(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment deadline sweep failed to build query", "error", err)
		return
	}

	pools, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment deadline sweep failed", "error", err)
		return
	}

	for _, pool := range pools {
		j.logger.WarnContext(ctx, "Collective order payment overdue",
			"collective_order_id", pool.ID.String(),
			"supplier_id", pool.SupplierID.String(),
			"deadline", pool.PaymentDeadline,
			"overdue_by", pool.OverdueBy.String(),
			"expected", pool.CurrentValue.String(),
			"received", pool.TotalReceived.String(),
		)
	}
}
