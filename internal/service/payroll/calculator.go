package payroll

import (
	"strings"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payment"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/display"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// Calculator turns a weekly attendance summary into a payout.
type Calculator struct {
	policy payroll.Policy
}

func NewCalculator(policy payroll.Policy) *Calculator {
	return &Calculator{policy: policy}
}

// Calculate is a pure function of its inputs. payments must already be the
// effective set for the week (see payment.EffectiveForWeek); entries whose type
// is neither an addition nor a deduction are ignored.
func (c *Calculator) Calculate(emp employee.Employee, summary payroll.WeeklySummary, payments []payment.Payment) payroll.WeeklyPayout {
	out := payroll.WeeklyPayout{
		EmployeeID:       emp.ID,
		EmployeeName:     emp.Name,
		WeekStart:        summary.WeekStart,
		NormalMinutes:    summary.NormalMinutes,
		OvertimeMinutes:  summary.OvertimeMinutes,
		ActiveDays:       summary.ActiveDays,
		MealCredits:      summary.MealCredits,
		TotalAdditions:   decimal.Zero,
		TotalDeductions:  decimal.Zero,
		AdditionsDetail:  make(map[string]decimal.Decimal),
		DeductionsDetail: make(map[string]decimal.Decimal),
	}

	// minutes * rate / 60 keeps whole-hour weeks exact
	out.NormalPay = minutesToPay(summary.NormalMinutes, emp.HourlyRate)
	out.OvertimePay = minutesToPay(summary.OvertimeMinutes, emp.HourlyRate).Mul(payroll.OvertimeMultiplier)
	out.FoodAllowance = emp.DailyFoodAllowance.Mul(decimal.NewFromInt(int64(summary.MealCredits)))
	out.TransportAllowance = emp.DailyTransportAllowance.Mul(decimal.NewFromInt(int64(summary.ActiveDays)))

	includePermanent := summary.ActiveDays > 0 || c.policy.IncludePermanentIfNoWork
	for _, p := range payments {
		if p.IsPermanent && !includePermanent {
			continue
		}
		switch p.Kind() {
		case payment.KindAddition:
			out.TotalAdditions = out.TotalAdditions.Add(p.Amount)
			addDetail(out.AdditionsDetail, p)
		case payment.KindDeduction:
			out.TotalDeductions = out.TotalDeductions.Add(p.Amount)
			addDetail(out.DeductionsDetail, p)
		}
	}

	out.TotalPayable = out.NormalPay.
		Add(out.OvertimePay).
		Add(out.FoodAllowance).
		Add(out.TransportAllowance).
		Add(out.TotalAdditions).
		Sub(out.TotalDeductions)
	out.RoundedPayable = display.Round10(out.TotalPayable)

	return out
}

// GrandTotal sums the per-employee rounded payables and rounds the sum again.
func GrandTotal(payouts []payroll.WeeklyPayout) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payouts {
		total = total.Add(display.Round10(p.TotalPayable))
	}
	return display.Round10(total)
}

func minutesToPay(minutes int, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Mul(rate).Div(minutesPerHour)
}

func addDetail(detail map[string]decimal.Decimal, p payment.Payment) {
	label := strings.TrimSpace(p.Description)
	if label == "" {
		label = strings.TrimSpace(p.Type)
	}
	detail[label] = detail[label].Add(p.Amount)
}
