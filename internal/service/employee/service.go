package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	name := employee.NormalizeName(req.Name)
	exists, err := s.employeeRepo.ExistsByName(ctx, name, "")
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee name: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNameExists
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:                    name,
		HourlyRate:              req.HourlyRate,
		DailyFoodAllowance:      req.DailyFoodAllowance,
		DailyTransportAllowance: req.DailyTransportAllowance,
		Active:                  true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Created employee", "employee_id", created.ID, "name", created.Name)
	return toResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, toResponse(emp))
	}
	return result, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		name := employee.NormalizeName(*req.Name)
		if name != existing.Name {
			exists, err := s.employeeRepo.ExistsByName(ctx, name, existing.ID)
			if err != nil {
				return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee name: %w", err)
			}
			if exists {
				return employee.EmployeeResponse{}, employee.ErrEmployeeNameExists
			}
			existing.Name = name
		}
	}
	if req.HourlyRate != nil {
		existing.HourlyRate = *req.HourlyRate
	}
	if req.DailyFoodAllowance != nil {
		existing.DailyFoodAllowance = *req.DailyFoodAllowance
	}
	if req.DailyTransportAllowance != nil {
		existing.DailyTransportAllowance = *req.DailyTransportAllowance
	}

	updated, err := s.employeeRepo.Update(ctx, existing)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return toResponse(updated), nil
}

// SetActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetActive(ctx context.Context, req employee.SetActiveRequest) (employee.EmployeeResponse, error) {
	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if existing.Active == req.Active {
		if req.Active {
			return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyActive
		}
		return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyInactive
	}

	if err := s.employeeRepo.SetActive(ctx, req.ID, req.Active); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to change employee status: %w", err)
	}
	existing.Active = req.Active

	slog.Info("Changed employee status", "employee_id", existing.ID, "active", existing.Active)
	return toResponse(existing), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.employeeRepo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.Info("Deleted employee with history", "employee_id", id)
	return nil
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                      emp.ID,
		Name:                    emp.Name,
		HourlyRate:              emp.HourlyRate,
		DailyFoodAllowance:      emp.DailyFoodAllowance,
		DailyTransportAllowance: emp.DailyTransportAllowance,
		Active:                  emp.Active,
	}
}
