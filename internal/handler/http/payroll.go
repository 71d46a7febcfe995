package http

import (
	"net/http"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GetWeeklyPayout(w http.ResponseWriter, r *http.Request)
	ListActiveWeeks(w http.ResponseWriter, r *http.Request)
	GetWeeklyReport(w http.ResponseWriter, r *http.Request)
	SnapshotWeek(w http.ResponseWriter, r *http.Request)
	GetSnapshots(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) GetWeeklyPayout(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ComputeWeeklyPayout(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListActiveWeeks(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListActiveWeeks(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetWeeklyReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GenerateWeeklyReport(r.Context(), chi.URLParam(r, "week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) SnapshotWeek(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.SnapshotWeek(r.Context(), chi.URLParam(r, "week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Weekly snapshots stored successfully", result)
}

func (h *payrollHandlerImpl) GetSnapshots(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetSnapshots(r.Context(), chi.URLParam(r, "week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
