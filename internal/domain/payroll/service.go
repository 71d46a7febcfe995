package payroll

import "context"

type PayrollService interface {
	// ComputeWeeklyPayout recomputes one employee-week from its inputs; repeated calls give equal results.
	ComputeWeeklyPayout(ctx context.Context, employeeID, week string) (WeeklyPayoutResponse, error)
	// GenerateWeeklyReport computes every qualifying employee of the week. One employee
	// failing never aborts the report.
	GenerateWeeklyReport(ctx context.Context, week string) (WeeklyReportResponse, error)
	// ListActiveWeeks lists the Mondays that have any daily record, newest first.
	ListActiveWeeks(ctx context.Context) ([]string, error)
	// SnapshotWeek recomputes the week and replaces its snapshots with the report rows.
	SnapshotWeek(ctx context.Context, week string) (WeeklyReportResponse, error)
	GetSnapshots(ctx context.Context, week string) ([]WeeklyPayoutResponse, error)
}
