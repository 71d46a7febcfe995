package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
	// ExistsByName matches case-insensitively; excludeID skips the employee being renamed.
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	SetActive(ctx context.Context, id string, active bool) error
	// DeleteCascade removes the employee with its daily records, payments and snapshots.
	DeleteCascade(ctx context.Context, id string) error
}
