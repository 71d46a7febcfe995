package payroll

import (
	"github.com/shopspring/decimal"
)

type DayBreakdownResponse struct {
	Date          string `json:"date"`
	Counted       bool   `json:"counted"`
	NormalHours   string `json:"normal_hours"`
	OvertimeHours string `json:"overtime_hours"`
}

type WeeklyPayoutResponse struct {
	EmployeeID         string                     `json:"employee_id"`
	EmployeeName       string                     `json:"employee_name"`
	WeekStart          string                     `json:"week_start"`
	NormalHours        float64                    `json:"normal_hours"`
	OvertimeHours      float64                    `json:"overtime_hours"`
	NormalHoursText    string                     `json:"normal_hours_text"`
	OvertimeHoursText  string                     `json:"overtime_hours_text"`
	ActiveDays         int                        `json:"active_days"`
	MealCredits        int                        `json:"meal_credits"`
	NormalPay          decimal.Decimal            `json:"normal_pay"`
	OvertimePay        decimal.Decimal            `json:"overtime_pay"`
	FoodAllowance      decimal.Decimal            `json:"food_allowance"`
	TransportAllowance decimal.Decimal            `json:"transport_allowance"`
	TotalAdditions     decimal.Decimal            `json:"total_additions"`
	TotalDeductions    decimal.Decimal            `json:"total_deductions"`
	TotalPayable       decimal.Decimal            `json:"total_payable"`
	RoundedPayable     decimal.Decimal            `json:"rounded_payable"`
	TotalPayableText   string                     `json:"total_payable_text"`
	AdditionsDetail    map[string]decimal.Decimal `json:"additions_detail,omitempty"`
	DeductionsDetail   map[string]decimal.Decimal `json:"deductions_detail,omitempty"`
	Days               []DayBreakdownResponse     `json:"days,omitempty"`
}

type SkippedEmployeeResponse struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type WeeklyReportResponse struct {
	WeekStart      string                    `json:"week_start"`
	Payouts        []WeeklyPayoutResponse    `json:"payouts"`
	Skipped        []SkippedEmployeeResponse `json:"skipped,omitempty"`
	TotalEmployees int                       `json:"total_employees"`
	GrandTotal     decimal.Decimal           `json:"grand_total"`
	GrandTotalText string                    `json:"grand_total_text"`
}
