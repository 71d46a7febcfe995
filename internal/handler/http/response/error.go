package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payment"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/utils"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Input errors
	case errors.Is(err, utils.ErrInvalidDate), errors.Is(err, payroll.ErrInvalidWeek):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNameExists):
		Conflict(w, "Employee name already exists")
	case errors.Is(err, employee.ErrEmployeeAlreadyActive):
		Conflict(w, "Employee is already active")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Daily record not found")
	case errors.Is(err, attendance.ErrDateOutsideWeek), errors.Is(err, attendance.ErrDuplicateDate):
		BadRequest(w, err.Error(), nil)

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSnapshotNotFound):
		NotFound(w, "Weekly snapshot not found")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
