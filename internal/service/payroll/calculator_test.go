package payroll

import (
	"testing"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payment"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, d(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:                      "emp-1",
		Name:                    "AYŞE YILMAZ",
		HourlyRate:              d("200"),
		DailyFoodAllowance:      d("50"),
		DailyTransportAllowance: d("30"),
		Active:                  true,
	}
}

func TestCalculate_StandardWeek(t *testing.T) {
	calc := NewCalculator(payroll.Policy{})
	out := calc.Calculate(testEmployee(), Aggregate(monday, standardWeek()), nil)

	assert.Equal(t, 45.0, out.NormalHours())
	assert.Equal(t, 0.0, out.OvertimeHours())
	assertDecimal(t, "9000", out.NormalPay)
	assertDecimal(t, "0", out.OvertimePay)
	assertDecimal(t, "250", out.FoodAllowance)
	assertDecimal(t, "150", out.TransportAllowance)
	assertDecimal(t, "0", out.TotalAdditions)
	assertDecimal(t, "0", out.TotalDeductions)
	assertDecimal(t, "9400", out.TotalPayable)
	assertDecimal(t, "9400", out.RoundedPayable)
	assert.Equal(t, "emp-1", out.EmployeeID)
	assert.Equal(t, monday, out.WeekStart)
}

func TestCalculate_OvertimeAtTimeAndAHalf(t *testing.T) {
	calc := NewCalculator(payroll.Policy{})
	// weekday 09:15-20:30: 9h normal, 1h45 overtime, two meals
	summary := Aggregate(monday, []attendance.DailyRecord{record(monday, "09:15", "13:15", "13:45", "20:30")})
	out := calc.Calculate(testEmployee(), summary, nil)

	assertDecimal(t, "1800", out.NormalPay)
	assertDecimal(t, "525", out.OvertimePay) // 1.75h * 200 * 1.5
	assertDecimal(t, "100", out.FoodAllowance)
	assertDecimal(t, "30", out.TransportAllowance)
	assertDecimal(t, "2455", out.TotalPayable)
	assertDecimal(t, "2460", out.RoundedPayable)
}

func TestCalculate_AdditionsAndDeductions(t *testing.T) {
	calc := NewCalculator(payroll.Policy{})
	payments := []payment.Payment{
		{ID: "1", Type: "Bonus", Description: "Sales", Amount: d("300"), WeekStart: monday},
		{ID: "2", Type: "ikramiye", Description: "Sales", Amount: d("50"), WeekStart: monday},
		{ID: "3", Type: "Avans", Description: "Advance", Amount: d("1000"), WeekStart: monday},
		{ID: "4", Type: "penalty", Description: "", Amount: d("25.5"), WeekStart: monday},
		{ID: "5", Type: "gift", Description: "ignored", Amount: d("999"), WeekStart: monday},
	}
	out := calc.Calculate(testEmployee(), Aggregate(monday, standardWeek()), payments)

	assertDecimal(t, "350", out.TotalAdditions)
	assertDecimal(t, "1025.5", out.TotalDeductions)
	assertDecimal(t, "8724.5", out.TotalPayable)
	assertDecimal(t, "8720", out.RoundedPayable)
	assertDecimal(t, "350", out.AdditionsDetail["Sales"])
	assertDecimal(t, "25.5", out.DeductionsDetail["penalty"])
}

func TestCalculate_PermanentSuppressedWithoutWork(t *testing.T) {
	permanent := []payment.Payment{
		{ID: "1", Type: "permanent-bonus", Description: "Seniority", Amount: d("100"), WeekStart: monday, IsPermanent: true},
	}

	out := NewCalculator(payroll.Policy{IncludePermanentIfNoWork: false}).
		Calculate(testEmployee(), Aggregate(monday, nil), permanent)
	assertDecimal(t, "0", out.TotalAdditions)
	assertDecimal(t, "0", out.TotalPayable)

	out = NewCalculator(payroll.Policy{IncludePermanentIfNoWork: true}).
		Calculate(testEmployee(), Aggregate(monday, nil), permanent)
	assertDecimal(t, "100", out.TotalAdditions)
	assertDecimal(t, "100", out.TotalPayable)
}

func TestCalculate_PermanentIncludedWithWork(t *testing.T) {
	permanent := []payment.Payment{
		{ID: "1", Type: "permanent", Description: "Seniority", Amount: d("100"), WeekStart: monday, IsPermanent: true},
		{ID: "2", Type: "debt", Description: "Phone", Amount: d("20"), WeekStart: monday, IsPermanent: true},
	}
	out := NewCalculator(payroll.Policy{}).Calculate(testEmployee(), Aggregate(monday, standardWeek()), permanent)

	assertDecimal(t, "100", out.TotalAdditions)
	assertDecimal(t, "20", out.TotalDeductions)
	assertDecimal(t, "9480", out.TotalPayable)
}

func TestCalculate_ScopedPaymentsKeptWithoutWork(t *testing.T) {
	scoped := []payment.Payment{{ID: "1", Type: "bonus", Amount: d("75"), WeekStart: monday}}
	out := NewCalculator(payroll.Policy{}).Calculate(testEmployee(), Aggregate(monday, nil), scoped)

	assertDecimal(t, "75", out.TotalAdditions)
	assertDecimal(t, "0", out.FoodAllowance)
	assertDecimal(t, "0", out.TransportAllowance)
}

func TestCalculate_Idempotent(t *testing.T) {
	calc := NewCalculator(payroll.Policy{})
	payments := []payment.Payment{{ID: "1", Type: "bonus", Description: "x", Amount: d("12.34"), WeekStart: monday}}
	records := append(standardWeek(), record(saturday, "09:00", "12:00", "12:30", "15:10"))

	first := calc.Calculate(testEmployee(), Aggregate(monday, records), payments)
	second := calc.Calculate(testEmployee(), Aggregate(monday, records), payments)

	assert.Equal(t, first, second)
}

func TestCalculate_FractionalMinutes(t *testing.T) {
	calc := NewCalculator(payroll.Policy{})
	emp := testEmployee()
	emp.HourlyRate = d("100")
	// 08:00-12:00 + 12:20-12:40 = 4h20m
	summary := Aggregate(monday, []attendance.DailyRecord{record(monday, "08:00", "12:00", "12:20", "12:40")})
	out := calc.Calculate(emp, summary, nil)

	assertDecimal(t, "433.3333333333333333", out.NormalPay.Round(16))
	assertDecimal(t, "0", out.FoodAllowance)
}

func TestGrandTotal_RoundsPerEmployeeFirst(t *testing.T) {
	payouts := []payroll.WeeklyPayout{
		{TotalPayable: d("4")},
		{TotalPayable: d("4")},
		{TotalPayable: d("4")},
	}
	// 0 + 0 + 0, not round(12) = 10
	assertDecimal(t, "0", GrandTotal(payouts))

	payouts = []payroll.WeeklyPayout{
		{TotalPayable: d("9405")},
		{TotalPayable: d("1234.5")},
	}
	assertDecimal(t, "10640", GrandTotal(payouts))

	assertDecimal(t, "0", GrandTotal(nil))
}
