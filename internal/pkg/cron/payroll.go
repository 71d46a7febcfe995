package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/utils"
)

// PayrollJobs keeps the stored snapshots of the running week up to date.
type PayrollJobs struct {
	payrollService payroll.PayrollService
	interval       time.Duration
	now            func() time.Time
}

func NewPayrollJobs(payrollService payroll.PayrollService, interval time.Duration) *PayrollJobs {
	return &PayrollJobs{
		payrollService: payrollService,
		interval:       interval,
		now:            time.Now,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("snapshot_current_week", j.interval, j.SnapshotCurrentWeek)
}

func (j *PayrollJobs) SnapshotCurrentWeek(ctx context.Context) error {
	week := utils.FormatDate(utils.WeekStart(j.now()))

	report, err := j.payrollService.SnapshotWeek(ctx, week)
	if err != nil {
		return fmt.Errorf("snapshot week %s: %w", week, err)
	}

	slog.Info("weekly snapshot refreshed",
		"week", week,
		"employees", report.TotalEmployees,
		"skipped", len(report.Skipped),
		"grand_total", report.GrandTotal.String())
	return nil
}
