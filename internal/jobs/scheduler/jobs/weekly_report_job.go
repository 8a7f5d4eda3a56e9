package jobs

import (
	"campaign-server/internal/observability"
	reportsProcessor "campaign-server/internal/reports/processor"
	"context"
	"errors"
	"time"
)

// WeeklyReportJob sends the weekly performance digest on a schedule
type WeeklyReportJob struct {
	reports  reportsProcessor.ReportProcessor
	logger   *observability.Logger
	interval time.Duration
}

// NewWeeklyReportJob creates a new weekly report job
func NewWeeklyReportJob(reports reportsProcessor.ReportProcessor, logger *observability.Logger, interval time.Duration) *WeeklyReportJob {
	if interval == 0 {
		interval = 7 * 24 * time.Hour
	}

	return &WeeklyReportJob{
		reports:  reports,
		logger:   logger,
		interval: interval,
	}
}

// Name returns the job name
func (j *WeeklyReportJob) Name() string {
	return "weekly_report"
}

// Schedule returns how often the job should run
func (j *WeeklyReportJob) Schedule() time.Duration {
	return j.interval
}

// RunOnStart is false: a restart must not re-send the weekly email
func (j *WeeklyReportJob) RunOnStart() bool {
	return false
}

// Run generates and emails the weekly report. A disabled reports toggle is
// not an error: the job logs and waits for the next tick.
func (j *WeeklyReportJob) Run(ctx context.Context) error {
	err := j.reports.SendWeeklyReport(ctx)
	if errors.Is(err, reportsProcessor.ErrReportsDisabled) {
		j.logger.Info(ctx, "weekly reports are disabled, skipping run")
		return nil
	}
	return err
}
