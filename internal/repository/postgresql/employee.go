package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, hourly_rate, daily_food_allowance, daily_transport_allowance, active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.HourlyRate, &emp.DailyFoodAllowance,
		&emp.DailyTransportAllowance, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return emp, nil
}

// GetActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return e.List(ctx, true)
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE ($1 = FALSE OR active = TRUE)
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// ExistsByName implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE LOWER(name) = LOWER($1) AND ($2 = '' OR id::text <> $2)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee name: %w", err)
	}
	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO employees (id, name, hourly_rate, daily_food_allowance, daily_transport_allowance, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.Name, newEmployee.HourlyRate,
		newEmployee.DailyFoodAllowance, newEmployee.DailyTransportAllowance, newEmployee.Active,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeNameExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $2, hourly_rate = $3, daily_food_allowance = $4,
			daily_transport_allowance = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.Name, emp.HourlyRate, emp.DailyFoodAllowance, emp.DailyTransportAllowance,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeNameExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", emp.ID, err)
	}
	return updated, nil
}

// SetActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	if !validator.IsValidUUID(id) {
		return employee.ErrEmployeeNotFound
	}
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to set employee status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// DeleteCascade implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) DeleteCascade(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return employee.ErrEmployeeNotFound
	}

	return WithTransaction(ctx, e.db, func(txCtx context.Context) error {
		tx := GetQuerier(txCtx, e.db)
		for _, query := range []string{
			`DELETE FROM weekly_snapshots WHERE employee_id = $1`,
			`DELETE FROM payments WHERE employee_id = $1`,
			`DELETE FROM daily_records WHERE employee_id = $1`,
		} {
			if _, err := tx.Exec(txCtx, query, id); err != nil {
				return fmt.Errorf("failed to delete employee history: %w", err)
			}
		}

		tag, err := tx.Exec(txCtx, `DELETE FROM employees WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return employee.ErrEmployeeNotFound
		}
		return nil
	})
}
