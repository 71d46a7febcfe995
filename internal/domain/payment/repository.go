package payment

import (
	"context"
	"time"
)

type PaymentRepository interface {
	Create(ctx context.Context, p Payment) (Payment, error)
	GetByID(ctx context.Context, id string) (Payment, error)
	Update(ctx context.Context, p Payment) (Payment, error)
	Delete(ctx context.Context, id string) error
	// ListForWeek returns the employee's payments scoped to weekStart plus every
	// permanent payment that started on or before weekStart. No de-duplication.
	ListForWeek(ctx context.Context, employeeID string, weekStart time.Time) ([]Payment, error)
}
