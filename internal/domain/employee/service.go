package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee adds an employee; names are stored upper-case and must be unique ignoring case
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	ListEmployees(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)

	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// SetActive toggles whether the employee shows up in new weeks
	SetActive(ctx context.Context, req SetActiveRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee together with all of its history
	DeleteEmployee(ctx context.Context, id string) error
}
