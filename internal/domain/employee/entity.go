package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Employee carries the pay parameters the weekly payroll needs.
// HourlyRate is the stored pay figure and is used as-is in payout math.
type Employee struct {
	ID                      string
	Name                    string
	HourlyRate              decimal.Decimal
	DailyFoodAllowance      decimal.Decimal
	DailyTransportAllowance decimal.Decimal
	Active                  bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// NormalizeName trims and upper-cases an employee name the way it is stored.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}
