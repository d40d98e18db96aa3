package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/presencio/presence-backend-go/internal/domain/attendance"
	"github.com/presencio/presence-backend-go/internal/domain/employee"
	"github.com/presencio/presence-backend-go/internal/domain/payroll"
)

type AttendanceServiceImpl struct {
	eventRepo    attendance.EventRepository
	employeeRepo employee.EmployeeRepository
	policy       payroll.DeductionPolicy
}

func NewAttendanceService(
	eventRepo attendance.EventRepository,
	employeeRepo employee.EmployeeRepository,
	policy payroll.DeductionPolicy,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
		policy:       policy,
	}
}

func (s *AttendanceServiceImpl) RecordClock(ctx context.Context, req attendance.ClockRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	timestamp := time.Now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}
	// Minute precision is the contract; drop anything finer.
	timestamp = timestamp.Truncate(time.Minute)

	if timestamp.After(time.Now()) {
		return attendance.EventResponse{}, attendance.ErrFutureTimestamp
	}

	emp, err := s.employeeRepo.GetByCode(ctx, req.Code)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	event := attendance.ClockEvent{
		EmployeeID: emp.ID,
		Timestamp:  timestamp,
		Kind:       req.Kind,
	}

	// Lateness is stamped at record time for entries. Informational only;
	// the payroll engine recomputes lateness from raw timestamps.
	if req.Kind == attendance.KindEntry {
		event.Late, event.LateMinutes = s.lateness(timestamp)
		if event.Late {
			slog.Info("late clock-in recorded",
				"employee_code", emp.Code,
				"late_minutes", event.LateMinutes,
			)
		}
	}

	saved, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to record clock event for %s: %w", emp.Code, err)
	}

	saved.EmployeeCode = &emp.Code
	saved.EmployeeLastName = &emp.LastName
	saved.EmployeeFirstName = &emp.FirstName

	return attendance.ToResponse(saved), nil
}

// lateness compares a clock-in against the work start on the same date.
func (s *AttendanceServiceImpl) lateness(timestamp time.Time) (bool, int) {
	workStart := time.Date(
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		s.policy.WorkStart.Hour(), s.policy.WorkStart.Minute(), 0, 0,
		timestamp.Location(),
	)
	if !timestamp.After(workStart) {
		return false, 0
	}
	return true, int(timestamp.Sub(workStart).Minutes())
}

func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.EventResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return attendance.ToResponses(events), nil
}

func (s *AttendanceServiceImpl) ListByPeriod(ctx context.Context, start, end time.Time) ([]attendance.EventResponse, error) {
	events, err := s.eventRepo.GetByPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return attendance.ToResponses(events), nil
}

func (s *AttendanceServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	if _, err := s.eventRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) IsPresentToday(ctx context.Context, employeeID string) (bool, error) {
	today := time.Now()

	entries, err := s.eventRepo.CountByKindOnDate(ctx, employeeID, attendance.KindEntry, today)
	if err != nil {
		return false, err
	}
	exits, err := s.eventRepo.CountByKindOnDate(ctx, employeeID, attendance.KindExit, today)
	if err != nil {
		return false, err
	}

	// Present when there is an open session: more entries than exits.
	return entries > exits, nil
}

func (s *AttendanceServiceImpl) MarkAbsent(ctx context.Context, employeeID string, date time.Time) error {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	// Absence is stamped at the work end time of the day being swept.
	timestamp := time.Date(
		date.Year(), date.Month(), date.Day(),
		s.policy.WorkEnd.Hour(), s.policy.WorkEnd.Minute(), 0, 0,
		date.Location(),
	)

	event := attendance.ClockEvent{
		EmployeeID: emp.ID,
		Timestamp:  timestamp,
		Kind:       attendance.KindAbsent,
	}

	if _, err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to mark absence for %s: %w", emp.Code, err)
	}

	slog.Info("absence marked", "employee_code", emp.Code, "date", date.Format("2006-01-02"))
	return nil
}
