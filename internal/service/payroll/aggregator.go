package payroll

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/utils"
)

// Aggregate folds one employee's daily records into weekly totals.
//
// weekStart is normalized to its Monday and records dated outside that week are
// ignored. Only days flagged active with four valid punches are counted. Each
// counted day earns one meal credit when more than five hours were worked and
// another when the exit is after 20:00.
func Aggregate(weekStart time.Time, records []attendance.DailyRecord) payroll.WeeklySummary {
	start := utils.WeekStart(weekStart)
	summary := payroll.WeeklySummary{WeekStart: start}

	sorted := make([]attendance.DailyRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	seen := make(map[time.Time]bool, len(sorted))
	for _, r := range sorted {
		day := utils.DateOnly(r.Date)
		if !utils.InWeek(day, start) || seen[day] {
			continue
		}
		seen[day] = true

		if !r.DayActive {
			summary.Days = append(summary.Days, payroll.DaySplit{Date: day})
			continue
		}

		split := SplitRecord(r)
		summary.Days = append(summary.Days, split)
		if !split.Valid {
			continue
		}

		summary.NormalMinutes += split.NormalMinutes
		summary.OvertimeMinutes += split.OvertimeMinutes
		summary.ActiveDays++
		summary.MealCredits += MealCredits(split)
	}

	return summary
}

// MealCredits returns how many meal allowances a counted day earns: 0, 1 or 2.
func MealCredits(split payroll.DaySplit) int {
	if !split.Valid {
		return 0
	}
	credits := 0
	if split.WorkedMinutes() > MealMinimumMinutes {
		credits++
	}
	if split.ExitMinute > LateMealThreshold {
		credits++
	}
	return credits
}
