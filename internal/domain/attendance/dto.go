package attendance

import (
	"strconv"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
)

type UpsertDayRequest struct {
	EmployeeID string  `json:"-"`
	Date       string  `json:"date"`
	Entry      *string `json:"entry,omitempty"`
	LunchStart *string `json:"lunch_start,omitempty"`
	LunchEnd   *string `json:"lunch_end,omitempty"`
	Exit       *string `json:"exit,omitempty"`
	DayActive  *bool   `json:"day_active,omitempty"`
}

func (r *UpsertDayRequest) Validate() error {
	var errs validator.ValidationErrors
	r.validateInto(&errs, "")
	return errs.Err()
}

func (r *UpsertDayRequest) validateInto(errs *validator.ValidationErrors, prefix string) {
	if validator.IsEmpty(r.EmployeeID) {
		errs.Add(prefix+"employee_id", "is required")
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add(prefix+"date", "must be YYYY-MM-DD")
	}
	punches := []struct {
		field string
		value *string
	}{
		{"entry", r.Entry},
		{"lunch_start", r.LunchStart},
		{"lunch_end", r.LunchEnd},
		{"exit", r.Exit},
	}
	for _, p := range punches {
		if p.value != nil && !validator.IsEmpty(*p.value) && !validator.IsValidClock(*p.value) {
			errs.Add(prefix+p.field, "must be HH:MM")
		}
	}
}

// FlushWeekRequest carries the pending edits of one employee-week.
type FlushWeekRequest struct {
	EmployeeID string             `json:"-"`
	WeekStart  string             `json:"-"`
	Days       []UpsertDayRequest `json:"days"`
}

func (r *FlushWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "is required")
	}
	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs.Add("week", "must be YYYY-MM-DD")
	}
	for i := range r.Days {
		r.Days[i].EmployeeID = r.EmployeeID
		r.Days[i].validateInto(&errs, "days["+strconv.Itoa(i)+"].")
	}

	return errs.Err()
}

type SetDayActiveRequest struct {
	EmployeeID string `json:"-"`
	Date       string `json:"-"`
	Active     bool   `json:"active"`
}

type DayResponse struct {
	Date          string  `json:"date"`
	Weekday       string  `json:"weekday"`
	Entry         *string `json:"entry"`
	LunchStart    *string `json:"lunch_start"`
	LunchEnd      *string `json:"lunch_end"`
	Exit          *string `json:"exit"`
	DayActive     bool    `json:"day_active"`
	HasRecord     bool    `json:"has_record"`
	NormalHours   string  `json:"normal_hours"`
	OvertimeHours string  `json:"overtime_hours"`
}

type WeekResponse struct {
	EmployeeID string        `json:"employee_id"`
	WeekStart  string        `json:"week_start"`
	Days       []DayResponse `json:"days"`
}
