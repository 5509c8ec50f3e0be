package jobs

import (
	"context"
	"log/slog"

	"returns/internal/core/application/usecases/queries"
	"returns/internal/core/domain/model/request"
	"returns/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// pendingDigestSchedule fires every morning at 08:00 server time.
const pendingDigestSchedule = "0 0 8 * * *"

// digestPageSize bounds how many pending requests one digest reports.
const digestPageSize = 100

// PendingDigestJob mails the shop admin a daily summary of return
// requests still awaiting review, so unattended requests surface instead
// of aging silently. The summary is also logged.
type PendingDigestJob struct {
	handler  queries.GetRequestsForReviewQueryHandler
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingDigestJob creates a job reporting pending requests every
// morning.
func NewPendingDigestJob(
	handler queries.GetRequestsForReviewQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *PendingDigestJob {
	return &PendingDigestJob{
		handler:  handler,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pending_digest_job"),
	}
}

// Start schedules the daily digest.
func (j *PendingDigestJob) Start() error {
	_, err := j.cron.AddFunc(pendingDigestSchedule, func() {
		ctx := context.Background()

		query, err := queries.NewGetRequestsForReviewQuery(
			request.Pending.String(), digestPageSize, 0)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending digest query construction failed", "error", err)
			return
		}

		pending, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending digest job failed", "error", err)
			return
		}

		if len(pending) == 0 {
			j.logger.InfoContext(ctx, "No return requests awaiting review")
			return
		}

		codes := make([]string, 0, len(pending))
		items := make([]ports.PendingReviewItem, 0, len(pending))
		for _, summary := range pending {
			codes = append(codes, summary.Code)
			items = append(items, ports.PendingReviewItem{
				Code:        summary.Code,
				OrderNumber: summary.OrderNumber,
				Reason:      summary.Reason,
			})
		}

		j.logger.InfoContext(ctx, "Return requests awaiting review",
			"count", len(pending), "codes", codes)

		digest := ports.PendingReviewDigest{Count: len(pending), Items: items}
		if err := j.notifier.NotifyPendingReviewDigest(ctx, digest); err != nil {
			j.logger.ErrorContext(ctx, "Pending digest notification failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending digest job started (running daily at 08:00)")
	return nil
}

// Stop stops the digest job.
func (j *PendingDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending digest job stopped")
}
