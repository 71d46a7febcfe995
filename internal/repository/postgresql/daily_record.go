package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/utils"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type dailyRecordRepositoryImpl struct {
	db *database.DB
}

func NewDailyRecordRepository(db *database.DB) attendance.DailyRecordRepository {
	return &dailyRecordRepositoryImpl{db: db}
}

const dailyRecordColumns = `employee_id, work_date, entry_time, lunch_start, lunch_end, exit_time, day_active, created_at, updated_at`

const upsertDailyRecord = `
	INSERT INTO daily_records (employee_id, work_date, entry_time, lunch_start, lunch_end, exit_time, day_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (employee_id, work_date) DO UPDATE
	SET entry_time = EXCLUDED.entry_time,
		lunch_start = EXCLUDED.lunch_start,
		lunch_end = EXCLUDED.lunch_end,
		exit_time = EXCLUDED.exit_time,
		day_active = EXCLUDED.day_active,
		updated_at = NOW()
	RETURNING ` + dailyRecordColumns

func scanDailyRecord(row pgx.Row) (attendance.DailyRecord, error) {
	var r attendance.DailyRecord
	err := row.Scan(
		&r.EmployeeID, &r.Date, &r.Entry, &r.LunchStart, &r.LunchEnd, &r.Exit,
		&r.DayActive, &r.CreatedAt, &r.UpdatedAt,
	)
	r.Date = utils.DateOnly(r.Date)
	return r, err
}

func upsertArgs(r attendance.DailyRecord) []interface{} {
	return []interface{}{
		r.EmployeeID, utils.DateOnly(r.Date), r.Entry, r.LunchStart, r.LunchEnd, r.Exit, r.DayActive,
	}
}

// GetWeekRecords implements attendance.DailyRecordRepository.
func (d *dailyRecordRepositoryImpl) GetWeekRecords(ctx context.Context, employeeID string, weekStart time.Time) ([]attendance.DailyRecord, error) {
	if !validator.IsValidUUID(employeeID) {
		return nil, nil
	}
	q := GetQuerier(ctx, d.db)

	start := utils.WeekStart(weekStart)
	query := `
		SELECT ` + dailyRecordColumns + `
		FROM daily_records
		WHERE employee_id = $1 AND work_date BETWEEN $2 AND $3
		ORDER BY work_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, utils.WeekEnd(start))
	if err != nil {
		return nil, fmt.Errorf("failed to get week records: %w", err)
	}
	defer rows.Close()

	var records []attendance.DailyRecord
	for rows.Next() {
		r, err := scanDailyRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetByDate implements attendance.DailyRecordRepository.
func (d *dailyRecordRepositoryImpl) GetByDate(ctx context.Context, employeeID string, date time.Time) (attendance.DailyRecord, error) {
	if !validator.IsValidUUID(employeeID) {
		return attendance.DailyRecord{}, attendance.ErrRecordNotFound
	}
	q := GetQuerier(ctx, d.db)

	query := `SELECT ` + dailyRecordColumns + ` FROM daily_records WHERE employee_id = $1 AND work_date = $2`

	r, err := scanDailyRecord(q.QueryRow(ctx, query, employeeID, utils.DateOnly(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DailyRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.DailyRecord{}, fmt.Errorf("failed to get daily record: %w", err)
	}
	return r, nil
}

// Upsert implements attendance.DailyRecordRepository.
func (d *dailyRecordRepositoryImpl) Upsert(ctx context.Context, record attendance.DailyRecord) (attendance.DailyRecord, error) {
	q := GetQuerier(ctx, d.db)

	saved, err := scanDailyRecord(q.QueryRow(ctx, upsertDailyRecord, upsertArgs(record)...))
	if err != nil {
		return attendance.DailyRecord{}, fmt.Errorf("failed to upsert daily record: %w", err)
	}
	return saved, nil
}

// UpsertMany implements attendance.DailyRecordRepository.
func (d *dailyRecordRepositoryImpl) UpsertMany(ctx context.Context, records []attendance.DailyRecord) error {
	if len(records) == 0 {
		return nil
	}

	return WithTransaction(ctx, d.db, func(txCtx context.Context) error {
		batch := &pgx.Batch{}
		for _, r := range records {
			batch.Queue(upsertDailyRecord, upsertArgs(r)...)
		}

		results := GetQuerier(txCtx, d.db).SendBatch(txCtx, batch)
		for range records {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to upsert daily records: %w", err)
			}
		}
		return results.Close()
	})
}

// Delete implements attendance.DailyRecordRepository.
func (d *dailyRecordRepositoryImpl) Delete(ctx context.Context, employeeID string, date time.Time) error {
	if !validator.IsValidUUID(employeeID) {
		return attendance.ErrRecordNotFound
	}
	q := GetQuerier(ctx, d.db)

	tag, err := q.Exec(ctx, `DELETE FROM daily_records WHERE employee_id = $1 AND work_date = $2`, employeeID, utils.DateOnly(date))
	if err != nil {
		return fmt.Errorf("failed to delete daily record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// SetDayActive implements attendance.DailyRecordRepository.
func (d *dailyRecordRepositoryImpl) SetDayActive(ctx context.Context, employeeID string, date time.Time, active bool) error {
	if !validator.IsValidUUID(employeeID) {
		return attendance.ErrRecordNotFound
	}
	q := GetQuerier(ctx, d.db)

	query := `
		UPDATE daily_records SET day_active = $3, updated_at = NOW()
		WHERE employee_id = $1 AND work_date = $2
	`

	tag, err := q.Exec(ctx, query, employeeID, utils.DateOnly(date), active)
	if err != nil {
		return fmt.Errorf("failed to set day active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// ListEmployeeIDsWithRecords implements attendance.DailyRecordRepository.
func (d *dailyRecordRepositoryImpl) ListEmployeeIDsWithRecords(ctx context.Context, weekStart time.Time) ([]string, error) {
	q := GetQuerier(ctx, d.db)

	start := utils.WeekStart(weekStart)
	query := `
		SELECT DISTINCT employee_id::text
		FROM daily_records
		WHERE work_date BETWEEN $1 AND $2
		ORDER BY 1
	`

	rows, err := q.Query(ctx, query, start, utils.WeekEnd(start))
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with records: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with records: %w", err)
	}
	return ids, nil
}

// ListWeeksWithActivity implements attendance.DailyRecordRepository.
func (d *dailyRecordRepositoryImpl) ListWeeksWithActivity(ctx context.Context) ([]time.Time, error) {
	q := GetQuerier(ctx, d.db)

	// ISO weeks start on Monday, matching date_trunc('week', ...)
	query := `
		SELECT DISTINCT date_trunc('week', work_date)::date AS week_start
		FROM daily_records
		ORDER BY week_start DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active weeks: %w", err)
	}

	weeks, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("failed to list active weeks: %w", err)
	}
	for i := range weeks {
		weeks[i] = utils.DateOnly(weeks[i])
	}
	return weeks, nil
}
