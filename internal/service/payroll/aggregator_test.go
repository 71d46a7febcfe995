package payroll

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(v string) int {
	m, err := utils.ParseClock(v)
	if err != nil {
		panic(err)
	}
	return m
}

func record(day time.Time, entry, lunchStart, lunchEnd, exit string) attendance.DailyRecord {
	r := attendance.DailyRecord{EmployeeID: "emp-1", Date: day, DayActive: true}
	if entry != "" {
		r.Entry = s(entry)
	}
	if lunchStart != "" {
		r.LunchStart = s(lunchStart)
	}
	if lunchEnd != "" {
		r.LunchEnd = s(lunchEnd)
	}
	if exit != "" {
		r.Exit = s(exit)
	}
	return r
}

func standardWeek() []attendance.DailyRecord {
	var records []attendance.DailyRecord
	for i := 0; i < 5; i++ {
		records = append(records, record(monday.AddDate(0, 0, i), "09:15", "13:15", "13:45", "18:45"))
	}
	return records
}

func TestAggregate_StandardWeek(t *testing.T) {
	summary := Aggregate(monday, standardWeek())

	assert.Equal(t, monday, summary.WeekStart)
	assert.Equal(t, 45.0, summary.NormalHours())
	assert.Equal(t, 0.0, summary.OvertimeHours())
	assert.Equal(t, 5, summary.ActiveDays)
	assert.Equal(t, 5, summary.MealCredits)
	assert.Len(t, summary.Days, 5)
}

func TestAggregate_NormalizesWeekStart(t *testing.T) {
	summary := Aggregate(monday.AddDate(0, 0, 3), standardWeek())

	assert.Equal(t, monday, summary.WeekStart)
	assert.Equal(t, 5, summary.ActiveDays)
}

func TestAggregate_SaturdayWithoutLunchIsIgnored(t *testing.T) {
	records := append(standardWeek(), record(saturday, "08:00", "", "", "14:00"))
	summary := Aggregate(monday, records)

	assert.Equal(t, 45.0, summary.NormalHours())
	assert.Equal(t, 0.0, summary.OvertimeHours())
	assert.Equal(t, 5, summary.ActiveDays)
	assert.Equal(t, 5, summary.MealCredits)
}

func TestAggregate_InactiveDayIsSkipped(t *testing.T) {
	records := standardWeek()
	records[2].DayActive = false
	summary := Aggregate(monday, records)

	assert.Equal(t, 36.0, summary.NormalHours())
	assert.Equal(t, 4, summary.ActiveDays)
	assert.Equal(t, 4, summary.MealCredits)
}

func TestAggregate_RecordsOutsideWeekIgnored(t *testing.T) {
	records := []attendance.DailyRecord{
		record(monday.AddDate(0, 0, -1), "08:00", "12:00", "13:00", "17:00"),
		record(monday.AddDate(0, 0, 7), "08:00", "12:00", "13:00", "17:00"),
	}
	summary := Aggregate(monday, records)

	assert.Zero(t, summary.ActiveDays)
	assert.Empty(t, summary.Days)
}

func TestAggregate_DuplicateDateCountedOnce(t *testing.T) {
	records := []attendance.DailyRecord{
		record(monday, "08:00", "12:00", "13:00", "17:00"),
		record(monday, "08:00", "12:00", "13:00", "17:00"),
	}
	summary := Aggregate(monday, records)

	assert.Equal(t, 1, summary.ActiveDays)
	assert.Equal(t, 480, summary.NormalMinutes)
}

func TestAggregate_EmptyWeek(t *testing.T) {
	summary := Aggregate(monday, nil)

	assert.Zero(t, summary.NormalMinutes)
	assert.Zero(t, summary.OvertimeMinutes)
	assert.Zero(t, summary.ActiveDays)
	assert.Zero(t, summary.MealCredits)
}

func TestAggregate_WeekendIsOvertime(t *testing.T) {
	records := []attendance.DailyRecord{record(saturday, "09:00", "12:00", "12:30", "15:30")}
	summary := Aggregate(monday, records)

	assert.Equal(t, 0.0, summary.NormalHours())
	assert.Equal(t, 6.0, summary.OvertimeHours())
	assert.Equal(t, 1, summary.ActiveDays)
	assert.Equal(t, 1, summary.MealCredits)
}

func TestMealCredits(t *testing.T) {
	cases := []struct {
		name  string
		punch [4]string
		want  int
	}{
		{"exactly five hours earns nothing", [4]string{"08:00", "10:00", "10:30", "13:30"}, 0},
		{"one minute over five hours", [4]string{"08:00", "10:00", "10:30", "13:31"}, 1},
		{"late exit with long day", [4]string{"08:15", "13:15", "13:45", "20:30"}, 2},
		{"exit at 20:00 is not late", [4]string{"08:15", "13:15", "13:45", "20:00"}, 1},
		{"short late shift", [4]string{"16:00", "18:00", "18:30", "20:30"}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			split := SplitDay(monday, s(c.punch[0]), s(c.punch[1]), s(c.punch[2]), s(c.punch[3]))
			assert.Equal(t, c.want, MealCredits(split))
		})
	}

	assert.Zero(t, MealCredits(payroll.DaySplit{}))
}

func TestAggregate_LateExitEarnsTwoMeals(t *testing.T) {
	records := []attendance.DailyRecord{record(monday, "09:15", "13:15", "13:45", "20:30")}
	summary := Aggregate(monday, records)

	require.Equal(t, 1, summary.ActiveDays)
	assert.Equal(t, 2, summary.MealCredits)
	assert.Equal(t, 540, summary.NormalMinutes)
	assert.Equal(t, 105, summary.OvertimeMinutes)
}
