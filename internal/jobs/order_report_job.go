package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderReportJob periodically logs the per-status order breakdown.
// The report is observational only; it never modifies order state.
type OrderReportJob struct {
	handler  queries.GetOrderStatsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderReportJob creates a job that reports order statistics on the
// given five-field cron schedule.
func NewOrderReportJob(
	handler queries.GetOrderStatsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OrderReportJob {
	return &OrderReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "order_report_job"),
	}
}

// Start begins the order report job on its configured schedule.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query := queries.NewGetOrderStatsQuery()

		stats, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order report job failed", "error", err)
			return
		}

		total := 0
		attrs := make([]any, 0, len(stats)*2+2)
		for _, row := range stats {
			attrs = append(attrs, row.Status, row.Count)
			total += row.Count
		}
		attrs = append(attrs, "total", total)

		j.logger.InfoContext(ctx, "Order status report", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order report job.
func (j *OrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}
