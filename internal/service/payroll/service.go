package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payment"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/display"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	recordRepo   attendance.DailyRecordRepository
	ledger       payment.Ledger
	snapshotRepo payroll.SnapshotRepository
	calculator   *Calculator
	formatter    *display.CurrencyFormatter
	workers      int
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	recordRepo attendance.DailyRecordRepository,
	ledger payment.Ledger,
	snapshotRepo payroll.SnapshotRepository,
	policy payroll.Policy,
	formatter *display.CurrencyFormatter,
	workers int,
) payroll.PayrollService {
	if workers < 1 {
		workers = 1
	}
	return &PayrollServiceImpl{
		employeeRepo: employeeRepo,
		recordRepo:   recordRepo,
		ledger:       ledger,
		snapshotRepo: snapshotRepo,
		calculator:   NewCalculator(policy),
		formatter:    formatter,
		workers:      workers,
	}
}

// computed pairs a payout with the per-day splits it was built from.
type computed struct {
	payout payroll.WeeklyPayout
	days   []payroll.DaySplit
}

func parseWeek(week string) (time.Time, error) {
	weekStart, err := utils.ParseWeek(week)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", payroll.ErrInvalidWeek, week)
	}
	return weekStart, nil
}

// ComputeWeeklyPayout implements payroll.PayrollService.
func (s *PayrollServiceImpl) ComputeWeeklyPayout(ctx context.Context, employeeID, week string) (payroll.WeeklyPayoutResponse, error) {
	weekStart, err := parseWeek(week)
	if err != nil {
		return payroll.WeeklyPayoutResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.WeeklyPayoutResponse{}, err
	}

	c, err := s.compute(ctx, emp, weekStart)
	if err != nil {
		return payroll.WeeklyPayoutResponse{}, err
	}

	return s.toPayoutResponse(c.payout, c.days), nil
}

func (s *PayrollServiceImpl) compute(ctx context.Context, emp employee.Employee, weekStart time.Time) (computed, error) {
	records, err := s.recordRepo.GetWeekRecords(ctx, emp.ID, weekStart)
	if err != nil {
		return computed{}, fmt.Errorf("failed to load daily records: %w", err)
	}

	payments, err := s.ledger.PaymentsForWeek(ctx, emp.ID, weekStart)
	if err != nil {
		return computed{}, fmt.Errorf("failed to load payments: %w", err)
	}
	payments = payment.EffectiveForWeek(payments, weekStart)
	for _, p := range payments {
		if p.Kind() == payment.KindUnknown {
			slog.Warn("Ignoring payment with unknown type", "payment_id", p.ID, "employee_id", emp.ID, "type", p.Type)
		}
	}

	summary := Aggregate(weekStart, records)
	return computed{
		payout: s.calculator.Calculate(emp, summary, payments),
		days:   summary.Days,
	}, nil
}

// GenerateWeeklyReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) GenerateWeeklyReport(ctx context.Context, week string) (payroll.WeeklyReportResponse, error) {
	weekStart, err := parseWeek(week)
	if err != nil {
		return payroll.WeeklyReportResponse{}, err
	}

	report, err := s.buildReport(ctx, weekStart)
	if err != nil {
		return payroll.WeeklyReportResponse{}, err
	}

	return s.toReportResponse(report), nil
}

// buildReport computes every candidate of the week: active employees plus any
// inactive employee that still has records in it. Only rows with at least one
// active day are kept.
func (s *PayrollServiceImpl) buildReport(ctx context.Context, weekStart time.Time) (payroll.WeeklyReport, error) {
	active, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.WeeklyReport{}, fmt.Errorf("failed to list active employees: %w", err)
	}
	withRecords, err := s.recordRepo.ListEmployeeIDsWithRecords(ctx, weekStart)
	if err != nil {
		return payroll.WeeklyReport{}, fmt.Errorf("failed to list employees with records: %w", err)
	}

	type candidate struct {
		id  string
		emp *employee.Employee
	}
	var candidates []candidate
	known := make(map[string]bool, len(active))
	for i := range active {
		known[active[i].ID] = true
		candidates = append(candidates, candidate{id: active[i].ID, emp: &active[i]})
	}
	for _, id := range withRecords {
		if !known[id] {
			known[id] = true
			candidates = append(candidates, candidate{id: id})
		}
	}

	results := make([]*computed, len(candidates))
	skipped := make([]*payroll.SkippedEmployee, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, cand := range candidates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			var emp employee.Employee
			if cand.emp != nil {
				emp = *cand.emp
			} else {
				var err error
				if emp, err = s.employeeRepo.GetByID(gCtx, cand.id); err != nil {
					slog.Warn("Skipping employee in weekly report", "employee_id", cand.id, "error", err)
					skipped[i] = &payroll.SkippedEmployee{EmployeeID: cand.id, Reason: err.Error()}
					return nil
				}
			}

			c, err := s.compute(gCtx, emp, weekStart)
			if err != nil {
				if ctxErr := gCtx.Err(); ctxErr != nil {
					return ctxErr
				}
				slog.Warn("Skipping employee in weekly report", "employee_id", emp.ID, "error", err)
				skipped[i] = &payroll.SkippedEmployee{EmployeeID: emp.ID, Reason: err.Error()}
				return nil
			}
			results[i] = &c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return payroll.WeeklyReport{}, err
	}

	report := payroll.WeeklyReport{WeekStart: weekStart}
	for i := range candidates {
		if skipped[i] != nil {
			report.Skipped = append(report.Skipped, *skipped[i])
			continue
		}
		if results[i] == nil || results[i].payout.ActiveDays == 0 {
			continue
		}
		report.Payouts = append(report.Payouts, results[i].payout)
	}

	sort.SliceStable(report.Payouts, func(a, b int) bool {
		if report.Payouts[a].EmployeeName != report.Payouts[b].EmployeeName {
			return report.Payouts[a].EmployeeName < report.Payouts[b].EmployeeName
		}
		return report.Payouts[a].EmployeeID < report.Payouts[b].EmployeeID
	})
	report.GrandTotal = GrandTotal(report.Payouts)

	return report, nil
}

// ListActiveWeeks implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListActiveWeeks(ctx context.Context) ([]string, error) {
	weeks, err := s.recordRepo.ListWeeksWithActivity(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(weeks))
	for _, w := range weeks {
		result = append(result, utils.FormatDate(utils.WeekStart(w)))
	}
	return result, nil
}

// SnapshotWeek implements payroll.PayrollService.
func (s *PayrollServiceImpl) SnapshotWeek(ctx context.Context, week string) (payroll.WeeklyReportResponse, error) {
	weekStart, err := parseWeek(week)
	if err != nil {
		return payroll.WeeklyReportResponse{}, err
	}

	report, err := s.buildReport(ctx, weekStart)
	if err != nil {
		return payroll.WeeklyReportResponse{}, err
	}

	if err := s.snapshotRepo.ReplaceWeek(ctx, weekStart, report.Payouts); err != nil {
		return payroll.WeeklyReportResponse{}, fmt.Errorf("failed to store snapshots: %w", err)
	}
	slog.Info("Stored weekly snapshots", "week_start", utils.FormatDate(weekStart), "count", len(report.Payouts))

	return s.toReportResponse(report), nil
}

// GetSnapshots implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSnapshots(ctx context.Context, week string) ([]payroll.WeeklyPayoutResponse, error) {
	weekStart, err := parseWeek(week)
	if err != nil {
		return nil, err
	}

	snapshots, err := s.snapshotRepo.ListSnapshotsByWeek(ctx, weekStart)
	if err != nil {
		if errors.Is(err, payroll.ErrSnapshotNotFound) {
			return []payroll.WeeklyPayoutResponse{}, nil
		}
		return nil, err
	}

	result := make([]payroll.WeeklyPayoutResponse, 0, len(snapshots))
	for _, snap := range snapshots {
		result = append(result, s.toPayoutResponse(snap.WeeklyPayout, nil))
	}
	return result, nil
}

func (s *PayrollServiceImpl) toPayoutResponse(p payroll.WeeklyPayout, days []payroll.DaySplit) payroll.WeeklyPayoutResponse {
	resp := payroll.WeeklyPayoutResponse{
		EmployeeID:         p.EmployeeID,
		EmployeeName:       p.EmployeeName,
		WeekStart:          utils.FormatDate(p.WeekStart),
		NormalHours:        p.NormalHours(),
		OvertimeHours:      p.OvertimeHours(),
		NormalHoursText:    display.FormatMinutes(p.NormalMinutes),
		OvertimeHoursText:  display.FormatMinutes(p.OvertimeMinutes),
		ActiveDays:         p.ActiveDays,
		MealCredits:        p.MealCredits,
		NormalPay:          p.NormalPay,
		OvertimePay:        p.OvertimePay,
		FoodAllowance:      p.FoodAllowance,
		TransportAllowance: p.TransportAllowance,
		TotalAdditions:     p.TotalAdditions,
		TotalDeductions:    p.TotalDeductions,
		TotalPayable:       p.TotalPayable,
		RoundedPayable:     p.RoundedPayable,
		TotalPayableText:   s.formatter.Format(p.TotalPayable),
		AdditionsDetail:    p.AdditionsDetail,
		DeductionsDetail:   p.DeductionsDetail,
	}
	for _, d := range days {
		resp.Days = append(resp.Days, payroll.DayBreakdownResponse{
			Date:          utils.FormatDate(d.Date),
			Counted:       d.Valid,
			NormalHours:   display.FormatMinutes(d.NormalMinutes),
			OvertimeHours: display.FormatMinutes(d.OvertimeMinutes),
		})
	}
	return resp
}

func (s *PayrollServiceImpl) toReportResponse(r payroll.WeeklyReport) payroll.WeeklyReportResponse {
	resp := payroll.WeeklyReportResponse{
		WeekStart:      utils.FormatDate(r.WeekStart),
		Payouts:        make([]payroll.WeeklyPayoutResponse, 0, len(r.Payouts)),
		TotalEmployees: len(r.Payouts),
		GrandTotal:     r.GrandTotal,
		GrandTotalText: s.formatter.Format(r.GrandTotal),
	}
	for _, p := range r.Payouts {
		resp.Payouts = append(resp.Payouts, s.toPayoutResponse(p, nil))
	}
	for _, sk := range r.Skipped {
		resp.Skipped = append(resp.Skipped, payroll.SkippedEmployeeResponse{
			EmployeeID: sk.EmployeeID,
			Reason:     sk.Reason,
		})
	}
	return resp
}
