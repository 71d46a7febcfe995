package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payment"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/utils"
)

type PaymentServiceImpl struct {
	paymentRepo  payment.PaymentRepository
	employeeRepo employee.EmployeeRepository
}

func NewPaymentService(paymentRepo payment.PaymentRepository, employeeRepo employee.EmployeeRepository) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		paymentRepo:  paymentRepo,
		employeeRepo: employeeRepo,
	}
}

var (
	_ payment.PaymentService = (*PaymentServiceImpl)(nil)
	_ payment.Ledger         = (*PaymentServiceImpl)(nil)
)

// CreatePayment implements payment.PaymentService.
func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, req payment.CreatePaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payment.PaymentResponse{}, err
	}

	weekStart, err := utils.ParseWeek(req.WeekStart)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	created, err := s.paymentRepo.Create(ctx, payment.Payment{
		EmployeeID:  req.EmployeeID,
		WeekStart:   weekStart,
		Type:        strings.TrimSpace(req.Type),
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		IsPermanent: req.IsPermanent,
	})
	if err != nil {
		return payment.PaymentResponse{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return toResponse(created), nil
}

// GetPayment implements payment.PaymentService.
func (s *PaymentServiceImpl) GetPayment(ctx context.Context, id string) (payment.PaymentResponse, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	return toResponse(p), nil
}

// UpdatePayment implements payment.PaymentService.
func (s *PaymentServiceImpl) UpdatePayment(ctx context.Context, req payment.UpdatePaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	existing, err := s.paymentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	if req.WeekStart != nil {
		weekStart, err := utils.ParseWeek(*req.WeekStart)
		if err != nil {
			return payment.PaymentResponse{}, err
		}
		existing.WeekStart = weekStart
	}
	if req.Type != nil {
		existing.Type = strings.TrimSpace(*req.Type)
	}
	if req.Amount != nil {
		existing.Amount = *req.Amount
	}
	if req.Description != nil {
		existing.Description = strings.TrimSpace(*req.Description)
	}
	if req.IsPermanent != nil {
		existing.IsPermanent = *req.IsPermanent
	}

	updated, err := s.paymentRepo.Update(ctx, existing)
	if err != nil {
		return payment.PaymentResponse{}, fmt.Errorf("failed to update payment: %w", err)
	}

	return toResponse(updated), nil
}

// DeletePayment implements payment.PaymentService.
func (s *PaymentServiceImpl) DeletePayment(ctx context.Context, id string) error {
	return s.paymentRepo.Delete(ctx, id)
}

// ListForWeek implements payment.PaymentService.
func (s *PaymentServiceImpl) ListForWeek(ctx context.Context, employeeID, week string) ([]payment.PaymentResponse, error) {
	weekStart, err := utils.ParseWeek(week)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	payments, err := s.PaymentsForWeek(ctx, employeeID, weekStart)
	if err != nil {
		return nil, err
	}

	result := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, toResponse(p))
	}
	return result, nil
}

// PaymentsForWeek implements payment.Ledger.
func (s *PaymentServiceImpl) PaymentsForWeek(ctx context.Context, employeeID string, weekStart time.Time) ([]payment.Payment, error) {
	weekStart = utils.WeekStart(weekStart)
	payments, err := s.paymentRepo.ListForWeek(ctx, employeeID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payment.EffectiveForWeek(payments, weekStart), nil
}

func toResponse(p payment.Payment) payment.PaymentResponse {
	return payment.PaymentResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		WeekStart:   utils.FormatDate(p.WeekStart),
		Type:        p.Type,
		Kind:        string(p.Kind()),
		Amount:      p.Amount,
		Description: p.Description,
		IsPermanent: p.IsPermanent,
	}
}
