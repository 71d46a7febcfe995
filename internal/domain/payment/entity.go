package payment

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Payment is an ad-hoc addition or deduction for one employee.
// A permanent payment recurs in its own week and every later week.
type Payment struct {
	ID          string
	EmployeeID  string
	WeekStart   time.Time
	Type        string
	Amount      decimal.Decimal
	Description string
	IsPermanent bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Kind classifies a payment type for the payout calculation.
type Kind string

const (
	KindAddition  Kind = "addition"
	KindDeduction Kind = "deduction"
	KindUnknown   Kind = "unknown"
)

// Type vocabularies, compared after trimming and lower-casing.
var (
	AdditionTypes = []string{
		"bonus", "prim", "ek ödeme", "ek odeme", "ikramiye",
		"permanent", "permanent-bonus", "kalıcı",
	}
	DeductionTypes = []string{
		"deduction", "penalty", "debt", "advance",
		"kesinti", "ceza", "borç", "borc", "avans",
	}
)

func normalizeType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// KindOf maps a free-text payment type onto the addition or deduction vocabulary.
func KindOf(paymentType string) Kind {
	t := normalizeType(paymentType)
	switch {
	case validator.IsInSlice(t, AdditionTypes):
		return KindAddition
	case validator.IsInSlice(t, DeductionTypes):
		return KindDeduction
	default:
		return KindUnknown
	}
}

// Kind classifies p by its type.
func (p Payment) Kind() Kind {
	return KindOf(p.Type)
}

// Identity is the key used to decide whether a week-scoped payment overrides a permanent one.
func (p Payment) Identity() string {
	return normalizeType(p.Type) + "\x00" + strings.ToLower(strings.TrimSpace(p.Description))
}

// AppliesTo reports whether p is effective in the week starting at weekStart.
func (p Payment) AppliesTo(weekStart time.Time) bool {
	if p.IsPermanent {
		return !p.WeekStart.After(weekStart)
	}
	return p.WeekStart.Equal(weekStart)
}

// EffectiveForWeek filters payments down to those effective in weekStart.
// A permanent payment sharing its identity with a week-scoped payment of the
// same week is dropped, so the week-scoped one wins and nothing is counted twice.
// Input order is preserved.
func EffectiveForWeek(payments []Payment, weekStart time.Time) []Payment {
	scoped := make(map[string]bool)
	for _, p := range payments {
		if !p.IsPermanent && p.AppliesTo(weekStart) {
			scoped[p.Identity()] = true
		}
	}

	seen := make(map[string]bool)
	result := make([]Payment, 0, len(payments))
	for _, p := range payments {
		if !p.AppliesTo(weekStart) || seen[p.ID] {
			continue
		}
		if p.IsPermanent && scoped[p.Identity()] {
			continue
		}
		if p.ID != "" {
			seen[p.ID] = true
		}
		result = append(result, p)
	}
	return result
}
