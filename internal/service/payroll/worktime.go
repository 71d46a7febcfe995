package payroll

import (
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/utils"
)

const (
	// OvertimeThreshold is 18:45; weekday minutes worked after it are overtime.
	OvertimeThreshold = 18*60 + 45
	// LateMealThreshold is 20:00; leaving strictly after it earns a second meal credit.
	LateMealThreshold = 20 * 60
	// MealMinimumMinutes is the worked time a day must strictly exceed to earn a meal credit.
	MealMinimumMinutes = 5 * 60
)

// SplitDay computes the normal/overtime split of one day from its four punches.
// Any missing or unparseable punch yields a zero, invalid split.
func SplitDay(date time.Time, entry, lunchStart, lunchEnd, exit *string) payroll.DaySplit {
	split := payroll.DaySplit{Date: utils.DateOnly(date)}

	clocks, ok := parsePunches(entry, lunchStart, lunchEnd, exit)
	if !ok {
		return split
	}
	in, ls, le, out := clocks[0], clocks[1], clocks[2], clocks[3]

	split.Valid = true
	split.ExitMinute = out

	// lunch is never counted, wherever it falls
	segments := [2][2]int{{in, ls}, {le, out}}

	if utils.IsWeekend(date) {
		for _, s := range segments {
			split.OvertimeMinutes += span(s[0], s[1])
		}
		return split
	}

	for _, s := range segments {
		normal, overtime := splitAt(s[0], s[1], OvertimeThreshold)
		split.NormalMinutes += normal
		split.OvertimeMinutes += overtime
	}
	return split
}

// SplitRecord is SplitDay over a stored record.
func SplitRecord(r attendance.DailyRecord) payroll.DaySplit {
	return SplitDay(r.Date, r.Entry, r.LunchStart, r.LunchEnd, r.Exit)
}

func parsePunches(punches ...*string) ([4]int, bool) {
	var clocks [4]int
	for i, p := range punches {
		if p == nil {
			return clocks, false
		}
		m, err := utils.ParseClock(*p)
		if err != nil {
			return clocks, false
		}
		clocks[i] = m
	}
	return clocks, true
}

// span is the length of [from, to], clamped at zero.
func span(from, to int) int {
	if to <= from {
		return 0
	}
	return to - from
}

// splitAt divides [from, to] into the part before threshold and the part after it.
func splitAt(from, to, threshold int) (before, after int) {
	if to <= from {
		return 0, 0
	}
	before = span(from, min(to, threshold))
	after = span(max(from, threshold), to)
	return before, after
}
