package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/utils"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type snapshotRepositoryImpl struct {
	db *database.DB
}

func NewSnapshotRepository(db *database.DB) payroll.SnapshotRepository {
	return &snapshotRepositoryImpl{db: db}
}

const snapshotColumns = `
	employee_id, week_start, employee_name, normal_minutes, overtime_minutes, active_days, meal_credits,
	normal_pay, overtime_pay, food_allowance, transport_allowance, total_additions, total_deductions,
	total_payable, rounded_payable, additions_detail, deductions_detail, created_at, updated_at`

func scanSnapshot(row pgx.Row) (payroll.WeeklySnapshot, error) {
	var s payroll.WeeklySnapshot
	err := row.Scan(
		&s.EmployeeID, &s.WeekStart, &s.EmployeeName, &s.NormalMinutes, &s.OvertimeMinutes,
		&s.ActiveDays, &s.MealCredits, &s.NormalPay, &s.OvertimePay, &s.FoodAllowance,
		&s.TransportAllowance, &s.TotalAdditions, &s.TotalDeductions, &s.TotalPayable,
		&s.RoundedPayable, &s.AdditionsDetail, &s.DeductionsDetail, &s.CreatedAt, &s.UpdatedAt,
	)
	s.WeekStart = utils.DateOnly(s.WeekStart)
	return s, err
}

// UpsertWeeklySnapshot implements payroll.SnapshotRepository.
func (r *snapshotRepositoryImpl) UpsertWeeklySnapshot(ctx context.Context, p payroll.WeeklyPayout) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO weekly_snapshots (
			employee_id, week_start, employee_name, normal_minutes, overtime_minutes, active_days, meal_credits,
			normal_pay, overtime_pay, food_allowance, transport_allowance, total_additions, total_deductions,
			total_payable, rounded_payable, additions_detail, deductions_detail
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (employee_id, week_start) DO UPDATE
		SET employee_name = EXCLUDED.employee_name,
			normal_minutes = EXCLUDED.normal_minutes,
			overtime_minutes = EXCLUDED.overtime_minutes,
			active_days = EXCLUDED.active_days,
			meal_credits = EXCLUDED.meal_credits,
			normal_pay = EXCLUDED.normal_pay,
			overtime_pay = EXCLUDED.overtime_pay,
			food_allowance = EXCLUDED.food_allowance,
			transport_allowance = EXCLUDED.transport_allowance,
			total_additions = EXCLUDED.total_additions,
			total_deductions = EXCLUDED.total_deductions,
			total_payable = EXCLUDED.total_payable,
			rounded_payable = EXCLUDED.rounded_payable,
			additions_detail = EXCLUDED.additions_detail,
			deductions_detail = EXCLUDED.deductions_detail,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		p.EmployeeID, utils.WeekStart(p.WeekStart), p.EmployeeName, p.NormalMinutes, p.OvertimeMinutes,
		p.ActiveDays, p.MealCredits, p.NormalPay, p.OvertimePay, p.FoodAllowance, p.TransportAllowance,
		p.TotalAdditions, p.TotalDeductions, p.TotalPayable, p.RoundedPayable,
		nonNilDetail(p.AdditionsDetail), nonNilDetail(p.DeductionsDetail),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert weekly snapshot: %w", err)
	}
	return nil
}

// ReplaceWeek implements payroll.SnapshotRepository.
func (r *snapshotRepositoryImpl) ReplaceWeek(ctx context.Context, weekStart time.Time, payouts []payroll.WeeklyPayout) error {
	start := utils.WeekStart(weekStart)

	keep := make([]string, 0, len(payouts))
	for _, p := range payouts {
		keep = append(keep, p.EmployeeID)
	}

	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `DELETE FROM weekly_snapshots WHERE week_start = $1 AND employee_id <> ALL($2::uuid[])`
		if _, err := q.Exec(txCtx, query, start, keep); err != nil {
			return fmt.Errorf("failed to prune weekly snapshots: %w", err)
		}

		for _, p := range payouts {
			p.WeekStart = start
			if err := r.UpsertWeeklySnapshot(txCtx, p); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetSnapshot implements payroll.SnapshotRepository.
func (r *snapshotRepositoryImpl) GetSnapshot(ctx context.Context, employeeID string, weekStart time.Time) (payroll.WeeklySnapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + snapshotColumns + ` FROM weekly_snapshots WHERE employee_id = $1 AND week_start = $2`

	s, err := scanSnapshot(q.QueryRow(ctx, query, employeeID, utils.WeekStart(weekStart)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.WeeklySnapshot{}, payroll.ErrSnapshotNotFound
		}
		return payroll.WeeklySnapshot{}, fmt.Errorf("failed to get weekly snapshot: %w", err)
	}
	return s, nil
}

// ListSnapshotsByWeek implements payroll.SnapshotRepository.
func (r *snapshotRepositoryImpl) ListSnapshotsByWeek(ctx context.Context, weekStart time.Time) ([]payroll.WeeklySnapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + snapshotColumns + `
		FROM weekly_snapshots
		WHERE week_start = $1
		ORDER BY employee_name, employee_id
	`

	rows, err := q.Query(ctx, query, utils.WeekStart(weekStart))
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []payroll.WeeklySnapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

func nonNilDetail(m map[string]decimal.Decimal) map[string]decimal.Decimal {
	if m == nil {
		return map[string]decimal.Decimal{}
	}
	return m
}
