package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/display"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/utils"
	payrollservice "github.com/cmlabs-hris/weekly-payroll-go/internal/service/payroll"
)

type AttendanceServiceImpl struct {
	recordRepo   attendance.DailyRecordRepository
	employeeRepo employee.EmployeeRepository
	defaults     attendance.Punches
}

func NewAttendanceService(
	recordRepo attendance.DailyRecordRepository,
	employeeRepo employee.EmployeeRepository,
	defaults attendance.Punches,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		recordRepo:   recordRepo,
		employeeRepo: employeeRepo,
		defaults:     defaults,
	}
}

// GetWeek implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetWeek(ctx context.Context, employeeID, week string) (attendance.WeekResponse, error) {
	weekStart, err := utils.ParseWeek(week)
	if err != nil {
		return attendance.WeekResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.WeekResponse{}, err
	}

	return s.loadWeek(ctx, employeeID, weekStart)
}

func (s *AttendanceServiceImpl) loadWeek(ctx context.Context, employeeID string, weekStart time.Time) (attendance.WeekResponse, error) {
	records, err := s.recordRepo.GetWeekRecords(ctx, employeeID, weekStart)
	if err != nil {
		return attendance.WeekResponse{}, fmt.Errorf("failed to load week records: %w", err)
	}

	byDate := make(map[time.Time]attendance.DailyRecord, len(records))
	for _, r := range records {
		byDate[utils.DateOnly(r.Date)] = r
	}

	resp := attendance.WeekResponse{
		EmployeeID: employeeID,
		WeekStart:  utils.FormatDate(weekStart),
		Days:       make([]attendance.DayResponse, 0, utils.DaysPerWeek),
	}
	for _, day := range utils.WeekDays(weekStart) {
		r, ok := byDate[day]
		if !ok {
			resp.Days = append(resp.Days, blankDay(day))
			continue
		}
		resp.Days = append(resp.Days, toDayResponse(r))
	}
	return resp, nil
}

// UpsertDay implements attendance.AttendanceService. A nil punch keeps the stored
// value and an empty one clears it.
func (s *AttendanceServiceImpl) UpsertDay(ctx context.Context, req attendance.UpsertDayRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.DayResponse{}, err
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	existing, err := s.recordRepo.GetByDate(ctx, req.EmployeeID, date)
	if err != nil {
		if !errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.DayResponse{}, err
		}
		existing = attendance.DailyRecord{EmployeeID: req.EmployeeID, Date: date, DayActive: true}
	}

	saved, err := s.recordRepo.Upsert(ctx, merge(existing, req))
	if err != nil {
		return attendance.DayResponse{}, fmt.Errorf("failed to save daily record: %w", err)
	}

	return toDayResponse(saved), nil
}

// ClearDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClearDay(ctx context.Context, employeeID, date string) error {
	day, err := utils.ParseDate(date)
	if err != nil {
		return err
	}
	return s.recordRepo.Delete(ctx, employeeID, day)
}

// SetDayActive implements attendance.AttendanceService. A day without a record
// gets an empty one carrying the flag.
func (s *AttendanceServiceImpl) SetDayActive(ctx context.Context, req attendance.SetDayActiveRequest) error {
	day, err := utils.ParseDate(req.Date)
	if err != nil {
		return err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}

	err = s.recordRepo.SetDayActive(ctx, req.EmployeeID, day, req.Active)
	if errors.Is(err, attendance.ErrRecordNotFound) {
		_, err = s.recordRepo.Upsert(ctx, attendance.DailyRecord{
			EmployeeID: req.EmployeeID,
			Date:       day,
			DayActive:  req.Active,
		})
	}
	return err
}

// FlushWeek implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) FlushWeek(ctx context.Context, req attendance.FlushWeekRequest) (attendance.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.WeekResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.WeekResponse{}, err
	}

	weekStart, err := utils.ParseWeek(req.WeekStart)
	if err != nil {
		return attendance.WeekResponse{}, err
	}

	current, err := s.recordRepo.GetWeekRecords(ctx, req.EmployeeID, weekStart)
	if err != nil {
		return attendance.WeekResponse{}, fmt.Errorf("failed to load week records: %w", err)
	}
	byDate := make(map[time.Time]attendance.DailyRecord, len(current))
	for _, r := range current {
		byDate[utils.DateOnly(r.Date)] = r
	}

	seen := make(map[time.Time]bool, len(req.Days))
	records := make([]attendance.DailyRecord, 0, len(req.Days))
	for _, d := range req.Days {
		day, err := utils.ParseDate(d.Date)
		if err != nil {
			return attendance.WeekResponse{}, err
		}
		if !utils.InWeek(day, weekStart) {
			return attendance.WeekResponse{}, fmt.Errorf("%w: %s", attendance.ErrDateOutsideWeek, d.Date)
		}
		if seen[day] {
			return attendance.WeekResponse{}, fmt.Errorf("%w: %s", attendance.ErrDuplicateDate, d.Date)
		}
		seen[day] = true

		existing, ok := byDate[day]
		if !ok {
			existing = attendance.DailyRecord{EmployeeID: req.EmployeeID, Date: day, DayActive: true}
		}
		records = append(records, merge(existing, d))
	}

	if len(records) > 0 {
		if err := s.recordRepo.UpsertMany(ctx, records); err != nil {
			return attendance.WeekResponse{}, fmt.Errorf("failed to save week: %w", err)
		}
	}

	return s.loadWeek(ctx, req.EmployeeID, weekStart)
}

// ApplyDefaultWeek implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ApplyDefaultWeek(ctx context.Context, employeeID, week string) (attendance.WeekResponse, error) {
	weekStart, err := utils.ParseWeek(week)
	if err != nil {
		return attendance.WeekResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.WeekResponse{}, err
	}

	current, err := s.recordRepo.GetWeekRecords(ctx, employeeID, weekStart)
	if err != nil {
		return attendance.WeekResponse{}, fmt.Errorf("failed to load week records: %w", err)
	}
	has := make(map[time.Time]bool, len(current))
	for _, r := range current {
		has[utils.DateOnly(r.Date)] = true
	}

	var records []attendance.DailyRecord
	for _, day := range utils.WeekDays(weekStart) {
		if utils.IsWeekend(day) || has[day] {
			continue
		}
		records = append(records, attendance.DailyRecord{
			EmployeeID: employeeID,
			Date:       day,
			Entry:      punch(s.defaults.Entry),
			LunchStart: punch(s.defaults.LunchStart),
			LunchEnd:   punch(s.defaults.LunchEnd),
			Exit:       punch(s.defaults.Exit),
			DayActive:  true,
		})
	}

	if len(records) > 0 {
		if err := s.recordRepo.UpsertMany(ctx, records); err != nil {
			return attendance.WeekResponse{}, fmt.Errorf("failed to apply default week: %w", err)
		}
	}

	return s.loadWeek(ctx, employeeID, weekStart)
}

func merge(r attendance.DailyRecord, req attendance.UpsertDayRequest) attendance.DailyRecord {
	if req.Entry != nil {
		r.Entry = punch(*req.Entry)
	}
	if req.LunchStart != nil {
		r.LunchStart = punch(*req.LunchStart)
	}
	if req.LunchEnd != nil {
		r.LunchEnd = punch(*req.LunchEnd)
	}
	if req.Exit != nil {
		r.Exit = punch(*req.Exit)
	}
	if req.DayActive != nil {
		r.DayActive = *req.DayActive
	}
	return r
}

// punch turns a raw input into a stored punch; blank means not entered.
func punch(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if m, err := utils.ParseClock(v); err == nil {
		v = utils.FormatClock(m)
	}
	return &v
}

func blankDay(day time.Time) attendance.DayResponse {
	return attendance.DayResponse{
		Date:          utils.FormatDate(day),
		Weekday:       day.Weekday().String(),
		DayActive:     true,
		NormalHours:   display.FormatMinutes(0),
		OvertimeHours: display.FormatMinutes(0),
	}
}

func toDayResponse(r attendance.DailyRecord) attendance.DayResponse {
	resp := attendance.DayResponse{
		Date:       utils.FormatDate(r.Date),
		Weekday:    r.Date.Weekday().String(),
		Entry:      r.Entry,
		LunchStart: r.LunchStart,
		LunchEnd:   r.LunchEnd,
		Exit:       r.Exit,
		DayActive:  r.DayActive,
		HasRecord:  true,
	}

	split := payrollservice.SplitRecord(r)
	if !r.DayActive {
		split.NormalMinutes, split.OvertimeMinutes = 0, 0
	}
	resp.NormalHours = display.FormatMinutes(split.NormalMinutes)
	resp.OvertimeHours = display.FormatMinutes(split.OvertimeMinutes)
	return resp
}
