package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payment"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/utils"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

const paymentColumns = `id, employee_id, week_start, type, amount, description, is_permanent, created_at, updated_at`

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var p payment.Payment
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.WeekStart, &p.Type, &p.Amount,
		&p.Description, &p.IsPermanent, &p.CreatedAt, &p.UpdatedAt,
	)
	p.WeekStart = utils.DateOnly(p.WeekStart)
	return p, err
}

// Create implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO payments (id, employee_id, week_start, type, amount, description, is_permanent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + paymentColumns

	created, err := scanPayment(q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, utils.WeekStart(p.WeekStart), p.Type, p.Amount, p.Description, p.IsPermanent,
	))
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}
	return created, nil
}

// GetByID implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	if !validator.IsValidUUID(id) {
		return payment.Payment{}, payment.ErrPaymentNotFound
	}
	q := GetQuerier(ctx, r.db)

	p, err := scanPayment(q.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to get payment with id %s: %w", id, err)
	}
	return p, nil
}

// Update implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Update(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payments
		SET week_start = $2, type = $3, amount = $4, description = $5, is_permanent = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + paymentColumns

	updated, err := scanPayment(q.QueryRow(ctx, query,
		p.ID, utils.WeekStart(p.WeekStart), p.Type, p.Amount, p.Description, p.IsPermanent,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to update payment with id %s: %w", p.ID, err)
	}
	return updated, nil
}

// Delete implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return payment.ErrPaymentNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}

// ListForWeek implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListForWeek(ctx context.Context, employeeID string, weekStart time.Time) ([]payment.Payment, error) {
	if !validator.IsValidUUID(employeeID) {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE employee_id = $1
			AND ((is_permanent = FALSE AND week_start = $2) OR (is_permanent = TRUE AND week_start <= $2))
		ORDER BY is_permanent DESC, week_start, created_at, id
	`

	rows, err := q.Query(ctx, query, employeeID, utils.WeekStart(weekStart))
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
