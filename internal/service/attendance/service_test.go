package attendance

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/utils"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

type fakeEmployees struct {
	employee.EmployeeRepository
}

func (fakeEmployees) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if id != "emp-1" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, Active: true}, nil
}

type recordKey struct {
	employeeID string
	date       time.Time
}

type fakeRecords struct {
	attendance.DailyRecordRepository
	store     map[recordKey]attendance.DailyRecord
	batches   int
	failBatch bool
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{store: map[recordKey]attendance.DailyRecord{}}
}

func (f *fakeRecords) GetWeekRecords(_ context.Context, employeeID string, weekStart time.Time) ([]attendance.DailyRecord, error) {
	var result []attendance.DailyRecord
	for k, r := range f.store {
		if k.employeeID == employeeID && utils.InWeek(k.date, weekStart) {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (f *fakeRecords) GetByDate(_ context.Context, employeeID string, date time.Time) (attendance.DailyRecord, error) {
	r, ok := f.store[recordKey{employeeID, date}]
	if !ok {
		return attendance.DailyRecord{}, attendance.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRecords) Upsert(_ context.Context, r attendance.DailyRecord) (attendance.DailyRecord, error) {
	f.store[recordKey{r.EmployeeID, r.Date}] = r
	return r, nil
}

func (f *fakeRecords) UpsertMany(_ context.Context, records []attendance.DailyRecord) error {
	if f.failBatch {
		return assert.AnError
	}
	f.batches++
	for _, r := range records {
		f.store[recordKey{r.EmployeeID, r.Date}] = r
	}
	return nil
}

func (f *fakeRecords) Delete(_ context.Context, employeeID string, date time.Time) error {
	k := recordKey{employeeID, date}
	if _, ok := f.store[k]; !ok {
		return attendance.ErrRecordNotFound
	}
	delete(f.store, k)
	return nil
}

func (f *fakeRecords) SetDayActive(_ context.Context, employeeID string, date time.Time, active bool) error {
	k := recordKey{employeeID, date}
	r, ok := f.store[k]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	r.DayActive = active
	f.store[k] = r
	return nil
}

var defaults = attendance.Punches{Entry: "08:15", LunchStart: "13:15", LunchEnd: "13:45", Exit: "18:45"}

func newService() (attendance.AttendanceService, *fakeRecords) {
	records := newFakeRecords()
	return NewAttendanceService(records, fakeEmployees{}, defaults), records
}

func str(v string) *string { return &v }

func TestGetWeek_SevenSlots(t *testing.T) {
	svc, _ := newService()

	week, err := svc.GetWeek(context.Background(), "emp-1", "2024-03-09")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-04", week.WeekStart)
	require.Len(t, week.Days, 7)
	assert.Equal(t, "Monday", week.Days[0].Weekday)
	assert.Equal(t, "Sunday", week.Days[6].Weekday)
	for _, d := range week.Days {
		assert.False(t, d.HasRecord)
		assert.Nil(t, d.Entry)
		assert.Equal(t, "00:00", d.NormalHours)
	}

	_, err = svc.GetWeek(context.Background(), "emp-2", "2024-03-04")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpsertDay_MergesPunches(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	day, err := svc.UpsertDay(ctx, attendance.UpsertDayRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-04",
		Entry:      str("8:15"),
		LunchStart: str("13:15"),
	})
	require.NoError(t, err)
	assert.Equal(t, "08:15", *day.Entry)
	assert.True(t, day.DayActive)
	assert.Equal(t, "00:00", day.NormalHours)

	day, err = svc.UpsertDay(ctx, attendance.UpsertDayRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-04",
		LunchEnd:   str("13:45"),
		Exit:       str("20:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "08:15", *day.Entry)
	assert.Equal(t, "10:00", day.NormalHours)
	assert.Equal(t, "01:45", day.OvertimeHours)

	day, err = svc.UpsertDay(ctx, attendance.UpsertDayRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-04",
		Exit:       str(""),
	})
	require.NoError(t, err)
	assert.Nil(t, day.Exit)
	assert.Equal(t, "00:00", day.OvertimeHours)
}

func TestUpsertDay_RejectsMalformedTime(t *testing.T) {
	svc, records := newService()

	_, err := svc.UpsertDay(context.Background(), attendance.UpsertDayRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-04",
		Entry:      str("25:00"),
		Exit:       str("7pm"),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "entry")
	assert.Contains(t, verrs.ToMap(), "exit")
	assert.Empty(t, records.store)
}

func TestClearDay(t *testing.T) {
	svc, records := newService()
	ctx := context.Background()
	_, err := svc.UpsertDay(ctx, attendance.UpsertDayRequest{EmployeeID: "emp-1", Date: "2024-03-05", Entry: str("09:00")})
	require.NoError(t, err)

	require.NoError(t, svc.ClearDay(ctx, "emp-1", "2024-03-05"))
	assert.Empty(t, records.store)

	assert.ErrorIs(t, svc.ClearDay(ctx, "emp-1", "2024-03-05"), attendance.ErrRecordNotFound)
}

func TestSetDayActive(t *testing.T) {
	svc, records := newService()
	ctx := context.Background()

	// no record yet: an empty one carries the flag
	require.NoError(t, svc.SetDayActive(ctx, attendance.SetDayActiveRequest{EmployeeID: "emp-1", Date: "2024-03-06", Active: false}))
	r := records.store[recordKey{"emp-1", monday.AddDate(0, 0, 2)}]
	assert.False(t, r.DayActive)

	_, err := svc.UpsertDay(ctx, attendance.UpsertDayRequest{
		EmployeeID: "emp-1", Date: "2024-03-06",
		Entry: str("08:15"), LunchStart: str("13:15"), LunchEnd: str("13:45"), Exit: str("18:45"),
	})
	require.NoError(t, err)

	week, err := svc.GetWeek(ctx, "emp-1", "2024-03-04")
	require.NoError(t, err)
	assert.False(t, week.Days[2].DayActive)
	assert.Equal(t, "00:00", week.Days[2].NormalHours)

	require.NoError(t, svc.SetDayActive(ctx, attendance.SetDayActiveRequest{EmployeeID: "emp-1", Date: "2024-03-06", Active: true}))
	week, err = svc.GetWeek(ctx, "emp-1", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, "10:00", week.Days[2].NormalHours)
}

func TestFlushWeek(t *testing.T) {
	svc, records := newService()
	ctx := context.Background()

	week, err := svc.FlushWeek(ctx, attendance.FlushWeekRequest{
		EmployeeID: "emp-1",
		WeekStart:  "2024-03-04",
		Days: []attendance.UpsertDayRequest{
			{Date: "2024-03-04", Entry: str("08:15"), LunchStart: str("13:15"), LunchEnd: str("13:45"), Exit: str("18:45")},
			{Date: "2024-03-09", Entry: str("09:00"), LunchStart: str("12:00"), LunchEnd: str("12:30"), Exit: str("15:30")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, records.batches)
	assert.Len(t, records.store, 2)
	assert.Equal(t, "10:00", week.Days[0].NormalHours)
	assert.Equal(t, "06:00", week.Days[5].OvertimeHours)
	assert.False(t, week.Days[1].HasRecord)
}

func TestFlushWeek_RejectsBadBatches(t *testing.T) {
	svc, records := newService()
	ctx := context.Background()

	_, err := svc.FlushWeek(ctx, attendance.FlushWeekRequest{
		EmployeeID: "emp-1",
		WeekStart:  "2024-03-04",
		Days:       []attendance.UpsertDayRequest{{Date: "2024-03-11", Entry: str("08:00")}},
	})
	assert.ErrorIs(t, err, attendance.ErrDateOutsideWeek)

	_, err = svc.FlushWeek(ctx, attendance.FlushWeekRequest{
		EmployeeID: "emp-1",
		WeekStart:  "2024-03-04",
		Days: []attendance.UpsertDayRequest{
			{Date: "2024-03-05", Entry: str("08:00")},
			{Date: "2024-03-05", Entry: str("09:00")},
		},
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateDate)

	_, err = svc.FlushWeek(ctx, attendance.FlushWeekRequest{
		EmployeeID: "emp-1",
		WeekStart:  "2024-03-04",
		Days:       []attendance.UpsertDayRequest{{Date: "2024-03-05", Exit: str("99:99")}},
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "days[0].exit")

	records.failBatch = true
	_, err = svc.FlushWeek(ctx, attendance.FlushWeekRequest{
		EmployeeID: "emp-1",
		WeekStart:  "2024-03-04",
		Days:       []attendance.UpsertDayRequest{{Date: "2024-03-05", Entry: str("08:00")}},
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, records.store)
}

func TestApplyDefaultWeek_FillsOnlyEmptyWeekdays(t *testing.T) {
	svc, records := newService()
	ctx := context.Background()
	_, err := svc.UpsertDay(ctx, attendance.UpsertDayRequest{
		EmployeeID: "emp-1", Date: "2024-03-05",
		Entry: str("10:00"), LunchStart: str("13:00"), LunchEnd: str("13:30"), Exit: str("17:00"),
	})
	require.NoError(t, err)

	week, err := svc.ApplyDefaultWeek(ctx, "emp-1", "2024-03-04")
	require.NoError(t, err)

	assert.Len(t, records.store, 5)
	assert.Equal(t, "08:15", *week.Days[0].Entry)
	assert.Equal(t, "10:00", *week.Days[1].Entry)
	assert.Equal(t, "10:00", week.Days[4].NormalHours)
	assert.False(t, week.Days[5].HasRecord)
	assert.False(t, week.Days[6].HasRecord)

	_, err = svc.ApplyDefaultWeek(ctx, "emp-1", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 1, records.batches)
}
