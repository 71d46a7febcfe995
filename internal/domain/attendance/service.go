package attendance

import "context"

type AttendanceService interface {
	// GetWeek returns seven slots, Monday first; days without a record come back blank.
	GetWeek(ctx context.Context, employeeID, week string) (WeekResponse, error)
	UpsertDay(ctx context.Context, req UpsertDayRequest) (DayResponse, error)
	ClearDay(ctx context.Context, employeeID, date string) error
	SetDayActive(ctx context.Context, req SetDayActiveRequest) error
	// FlushWeek persists a batch of pending day edits in one transaction.
	FlushWeek(ctx context.Context, req FlushWeekRequest) (WeekResponse, error)
	// ApplyDefaultWeek fills Monday to Friday days that have no record with the default punches.
	ApplyDefaultWeek(ctx context.Context, employeeID, week string) (WeekResponse, error)
}
