package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// OvertimeMultiplier scales the hourly rate for overtime hours.
var OvertimeMultiplier = decimal.NewFromFloat(1.5)

// Policy holds the deployment-level payroll switches.
type Policy struct {
	// IncludePermanentIfNoWork keeps permanent payments in weeks without any active day.
	IncludePermanentIfNoWork bool
}

// DaySplit is the normal/overtime split of one calendar day.
type DaySplit struct {
	Date            time.Time
	Valid           bool // all four punches present and parseable
	NormalMinutes   int
	OvertimeMinutes int
	ExitMinute      int // minutes after midnight; meaningful only when Valid
}

// WorkedMinutes is the sum of normal and overtime minutes.
func (d DaySplit) WorkedMinutes() int {
	return d.NormalMinutes + d.OvertimeMinutes
}

// WeeklySummary is the attendance aggregate of one employee-week.
type WeeklySummary struct {
	WeekStart       time.Time
	NormalMinutes   int
	OvertimeMinutes int
	ActiveDays      int
	MealCredits     int
	Days            []DaySplit
}

func (s WeeklySummary) NormalHours() float64   { return float64(s.NormalMinutes) / 60 }
func (s WeeklySummary) OvertimeHours() float64 { return float64(s.OvertimeMinutes) / 60 }

// WeeklyPayout is the computed pay breakdown of one employee-week. It is
// derived entirely from daily records, the employee and payments.
type WeeklyPayout struct {
	EmployeeID         string
	EmployeeName       string
	WeekStart          time.Time
	NormalMinutes      int
	OvertimeMinutes    int
	ActiveDays         int
	MealCredits        int
	NormalPay          decimal.Decimal
	OvertimePay        decimal.Decimal
	FoodAllowance      decimal.Decimal
	TransportAllowance decimal.Decimal
	TotalAdditions     decimal.Decimal
	TotalDeductions    decimal.Decimal
	TotalPayable       decimal.Decimal
	RoundedPayable     decimal.Decimal
	AdditionsDetail    map[string]decimal.Decimal
	DeductionsDetail   map[string]decimal.Decimal
}

func (p WeeklyPayout) NormalHours() float64   { return float64(p.NormalMinutes) / 60 }
func (p WeeklyPayout) OvertimeHours() float64 { return float64(p.OvertimeMinutes) / 60 }

// WeeklyReport is the payout of every qualifying employee for one week.
type WeeklyReport struct {
	WeekStart  time.Time
	Payouts    []WeeklyPayout
	Skipped    []SkippedEmployee
	GrandTotal decimal.Decimal
}

// SkippedEmployee records why an employee produced no row.
type SkippedEmployee struct {
	EmployeeID string
	Reason     string
}

// WeeklySnapshot is a persisted WeeklyPayout kept for audit and history.
type WeeklySnapshot struct {
	WeeklyPayout
	CreatedAt time.Time
	UpdatedAt time.Time
}
