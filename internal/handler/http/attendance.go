package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	GetWeek(w http.ResponseWriter, r *http.Request)
	FlushWeek(w http.ResponseWriter, r *http.Request)
	ApplyDefaultWeek(w http.ResponseWriter, r *http.Request)
	UpsertDay(w http.ResponseWriter, r *http.Request)
	SetDayActive(w http.ResponseWriter, r *http.Request)
	ClearDay(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetWeek(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// FlushWeek saves all pending day edits of the week at once.
func (h *attendanceHandlerImpl) FlushWeek(w http.ResponseWriter, r *http.Request) {
	var req attendance.FlushWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")
	req.WeekStart = chi.URLParam(r, "week")

	result, err := h.attendanceService.FlushWeek(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Week saved successfully", result)
}

func (h *attendanceHandlerImpl) ApplyDefaultWeek(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ApplyDefaultWeek(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "week"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Default week applied successfully", result)
}

func (h *attendanceHandlerImpl) UpsertDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")
	req.Date = chi.URLParam(r, "date")

	result, err := h.attendanceService.UpsertDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) SetDayActive(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetDayActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")
	req.Date = chi.URLParam(r, "date")

	if err := h.attendanceService.SetDayActive(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day status updated successfully", nil)
}

func (h *attendanceHandlerImpl) ClearDay(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.ClearDay(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "date")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily record deleted successfully", nil)
}
