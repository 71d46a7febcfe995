package payment

import (
	"context"
	"time"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (PaymentResponse, error)
	GetPayment(ctx context.Context, id string) (PaymentResponse, error)
	UpdatePayment(ctx context.Context, req UpdatePaymentRequest) (PaymentResponse, error)
	DeletePayment(ctx context.Context, id string) error
	// ListForWeek returns the payments effective in the week, permanent ones
	// overridden by a week-scoped payment of the same identity left out.
	ListForWeek(ctx context.Context, employeeID, week string) ([]PaymentResponse, error)
}

// Ledger is the read side used by the payroll engine. It returns the effective
// payments of the week: week-scoped ones plus permanent ones, de-duplicated by identity.
type Ledger interface {
	PaymentsForWeek(ctx context.Context, employeeID string, weekStart time.Time) ([]Payment, error)
}
