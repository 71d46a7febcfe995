package attendance

import (
	"time"
)

// DailyRecord holds one employee's punches for one calendar day.
// A nil punch means the time was never entered.
type DailyRecord struct {
	EmployeeID string
	Date       time.Time
	Entry      *string
	LunchStart *string
	LunchEnd   *string
	Exit       *string
	DayActive  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Punches holds a default set of punch times applied to untouched weekdays.
type Punches struct {
	Entry      string
	LunchStart string
	LunchEnd   string
	Exit       string
}
