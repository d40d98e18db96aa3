package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/presencio/presence-backend-go/internal/domain/attendance"
	"github.com/presencio/presence-backend-go/internal/domain/employee"
	payrollsvc "github.com/presencio/presence-backend-go/internal/service/payroll"
)

// AttendanceJobs holds the daily absence sweep: any employee with no
// presence by the end of the working day gets a synthetic ABSENT event.
type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
	employeeRepo  employee.EmployeeRepository
	workEndHour   int
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService, employeeRepo employee.EmployeeRepository, workEndHour int) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		employeeRepo:  employeeRepo,
		workEndHour:   workEndHour,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.atWorkEnd, j.MarkAbsentEmployees)
}

// atWorkEnd gates the sweep to the hour the working day ends, and to
// business days only.
func (j *AttendanceJobs) atWorkEnd(now time.Time) bool {
	return now.Hour() == j.workEndHour && payrollsvc.IsBusinessDay(now)
}

// MarkAbsentEmployees writes an ABSENT event for every employee without
// an open presence today. Failures on one employee do not stop the
// sweep.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	slog.Info("Cron: Starting mark absent employees job")

	employees, err := j.employeeRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	today := time.Now()
	marked := 0
	for _, emp := range employees {
		present, err := j.attendanceSvc.IsPresentToday(ctx, emp.ID)
		if err != nil {
			slog.Error("Cron: Failed to check presence", "employee_id", emp.ID, "error", err)
			continue
		}
		if present {
			continue
		}

		if err := j.attendanceSvc.MarkAbsent(ctx, emp.ID, today); err != nil {
			slog.Error("Cron: Failed to mark absent", "employee_id", emp.ID, "error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: Marked absent employees", "count", marked)
	return nil
}
