package payment

import (
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	EmployeeID  string          `json:"employee_id"`
	WeekStart   string          `json:"week_start"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	IsPermanent bool            `json:"is_permanent"`
}

func (r *CreatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "is required")
	}
	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs.Add("week_start", "must be YYYY-MM-DD")
	}
	if KindOf(r.Type) == KindUnknown {
		errs.Add("type", "must be a known addition or deduction type")
	}
	if !validator.IsNonNegative(r.Amount) {
		errs.Add("amount", "must be non-negative")
	}

	return errs.Err()
}

type UpdatePaymentRequest struct {
	ID          string           `json:"-"`
	WeekStart   *string          `json:"week_start,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	IsPermanent *bool            `json:"is_permanent,omitempty"`
}

func (r *UpdatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WeekStart != nil {
		if _, ok := validator.IsValidDate(*r.WeekStart); !ok {
			errs.Add("week_start", "must be YYYY-MM-DD")
		}
	}
	if r.Type != nil && KindOf(*r.Type) == KindUnknown {
		errs.Add("type", "must be a known addition or deduction type")
	}
	if r.Amount != nil && !validator.IsNonNegative(*r.Amount) {
		errs.Add("amount", "must be non-negative")
	}

	return errs.Err()
}

type PaymentResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	WeekStart   string          `json:"week_start"`
	Type        string          `json:"type"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	IsPermanent bool            `json:"is_permanent"`
}
