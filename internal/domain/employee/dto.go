package employee

import (
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name                    string          `json:"name"`
	HourlyRate              decimal.Decimal `json:"hourly_rate"`
	DailyFoodAllowance      decimal.Decimal `json:"daily_food_allowance"`
	DailyTransportAllowance decimal.Decimal `json:"daily_transport_allowance"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "is required")
	}
	validatePay(&errs, &r.HourlyRate, &r.DailyFoodAllowance, &r.DailyTransportAllowance)

	return errs.Err()
}

type UpdateEmployeeRequest struct {
	ID                      string           `json:"-"`
	Name                    *string          `json:"name,omitempty"`
	HourlyRate              *decimal.Decimal `json:"hourly_rate,omitempty"`
	DailyFoodAllowance      *decimal.Decimal `json:"daily_food_allowance,omitempty"`
	DailyTransportAllowance *decimal.Decimal `json:"daily_transport_allowance,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "must not be empty")
	}
	validatePay(&errs, r.HourlyRate, r.DailyFoodAllowance, r.DailyTransportAllowance)

	return errs.Err()
}

func validatePay(errs *validator.ValidationErrors, rate, food, transport *decimal.Decimal) {
	if rate != nil && !validator.IsNonNegative(*rate) {
		errs.Add("hourly_rate", "must be non-negative")
	}
	if food != nil && !validator.IsNonNegative(*food) {
		errs.Add("daily_food_allowance", "must be non-negative")
	}
	if transport != nil && !validator.IsNonNegative(*transport) {
		errs.Add("daily_transport_allowance", "must be non-negative")
	}
}

type SetActiveRequest struct {
	ID     string `json:"-"`
	Active bool   `json:"active"`
}

type EmployeeResponse struct {
	ID                      string          `json:"id"`
	Name                    string          `json:"name"`
	HourlyRate              decimal.Decimal `json:"hourly_rate"`
	DailyFoodAllowance      decimal.Decimal `json:"daily_food_allowance"`
	DailyTransportAllowance decimal.Decimal `json:"daily_transport_allowance"`
	Active                  bool            `json:"active"`
}
