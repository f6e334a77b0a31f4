package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// AnalyticsSnapshotJob periodically computes order analytics and logs the
// snapshot. Runs every minute so operators see order flow without querying
// the API.
type AnalyticsSnapshotJob struct {
	handler queries.GetOrderAnalyticsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAnalyticsSnapshotJob creates a new job for analytics snapshots.
// Uses GetOrderAnalyticsQueryHandler to compute the aggregates every minute.
func NewAnalyticsSnapshotJob(handler queries.GetOrderAnalyticsQueryHandler, logger *slog.Logger) *AnalyticsSnapshotJob {
	return &AnalyticsSnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "analytics_snapshot_job"),
	}
}

// Start begins the analytics snapshot job to run every minute.
func (j *AnalyticsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderAnalyticsQuery()

		result := j.handler.Handle(ctx, query)
		if !result.IsSuccess() {
			j.logger.ErrorContext(ctx, "Analytics snapshot job failed",
				"error", result.Cause())
			return
		}

		view := result.Value()
		j.logger.InfoContext(ctx, "Order analytics snapshot",
			"totalOrders", view.TotalOrders,
			"pendingOrders", view.TotalPendingOrders,
			"deliveredOrders", view.TotalDeliveredOrders,
			"averageOrderValue", view.AverageOrderValue.String(),
			"averageFulfillmentHours", view.AverageFulfillmentTimeInHours,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Analytics snapshot job started (running every minute)")
	return nil
}

// Stop stops the analytics snapshot job.
func (j *AnalyticsSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Analytics snapshot job stopped")
}
