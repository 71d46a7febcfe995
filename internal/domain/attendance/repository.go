package attendance

import (
	"context"
	"time"
)

type DailyRecordRepository interface {
	// GetWeekRecords returns the records dated within [weekStart, weekStart+6], at most seven.
	GetWeekRecords(ctx context.Context, employeeID string, weekStart time.Time) ([]DailyRecord, error)
	GetByDate(ctx context.Context, employeeID string, date time.Time) (DailyRecord, error)
	// Upsert writes the record keyed by (employee, date), replacing any existing punches.
	Upsert(ctx context.Context, record DailyRecord) (DailyRecord, error)
	// UpsertMany writes all records in one transaction.
	UpsertMany(ctx context.Context, records []DailyRecord) error
	Delete(ctx context.Context, employeeID string, date time.Time) error
	SetDayActive(ctx context.Context, employeeID string, date time.Time, active bool) error
	// ListEmployeeIDsWithRecords returns employees holding at least one record in the week.
	ListEmployeeIDsWithRecords(ctx context.Context, weekStart time.Time) ([]string, error)
	// ListWeeksWithActivity returns the distinct Mondays having any record, newest first.
	ListWeeksWithActivity(ctx context.Context) ([]time.Time, error)
}
