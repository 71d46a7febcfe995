package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payment"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PaymentHandler interface {
	CreatePayment(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	UpdatePayment(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
	ListForWeek(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandlerImpl{paymentService: paymentService}
}

func (h *paymentHandlerImpl) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req payment.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.paymentService.CreatePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment created successfully", result)
}

func (h *paymentHandlerImpl) GetPayment(w http.ResponseWriter, r *http.Request) {
	result, err := h.paymentService.GetPayment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *paymentHandlerImpl) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req payment.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.paymentService.UpdatePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment updated successfully", result)
}

func (h *paymentHandlerImpl) DeletePayment(w http.ResponseWriter, r *http.Request) {
	if err := h.paymentService.DeletePayment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment deleted successfully", nil)
}

// ListForWeek returns the payments effective in the week.
func (h *paymentHandlerImpl) ListForWeek(w http.ResponseWriter, r *http.Request) {
	result, err := h.paymentService.ListForWeek(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
