package jobs

import (
	"context"
	"log/slog"
	"time"

	"rfidship/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultAuditDigestSchedule runs the digest at the top of every hour.
const DefaultAuditDigestSchedule = "0 0 * * * *"

const digestTimeout = 30 * time.Second

type LogSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetLogSummaryQuery) (queries.LogSummary, error)
}

// AuditDigestJob periodically summarizes the audit trail into the service
// log: totals, distinct users and the most frequent actions.
type AuditDigestJob struct {
	handler  LogSummaryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAuditDigestJob uses a six-field cron schedule (seconds first). An empty
// schedule means DefaultAuditDigestSchedule.
func NewAuditDigestJob(handler LogSummaryHandler, schedule string, logger *slog.Logger) *AuditDigestJob {
	if schedule == "" {
		schedule = DefaultAuditDigestSchedule
	}
	return &AuditDigestJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "audit_digest_job"),
	}
}

func (j *AuditDigestJob) Name() string {
	return "audit digest"
}

func (j *AuditDigestJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
		defer cancel()
		j.Run(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Audit digest job started", "schedule", j.schedule)
	return nil
}

// Run produces one digest. Failures are logged, never returned, so a
// broken run does not stop the schedule.
func (j *AuditDigestJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetLogSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Audit digest failed", "error", err)
		return
	}

	actions := make([]any, 0, len(summary.MostCommonActions))
	for _, action := range summary.MostCommonActions {
		actions = append(actions, slog.Int64(action.Action, action.Count))
	}

	j.logger.InfoContext(ctx, "Audit digest",
		slog.Int64("totalLogs", summary.TotalLogs),
		slog.Int64("uniqueUsers", summary.UniqueUsers),
		slog.Group("topActions", actions...),
	)
}

func (j *AuditDigestJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Audit digest job stopped")
}
