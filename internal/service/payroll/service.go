package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/presencio/presence-backend-go/internal/domain/attendance"
	"github.com/presencio/presence-backend-go/internal/domain/employee"
	"github.com/presencio/presence-backend-go/internal/domain/payroll"
	"github.com/presencio/presence-backend-go/internal/pkg/email"
)

type PayrollServiceImpl struct {
	bulletinRepo payroll.BulletinRepository
	employeeRepo employee.EmployeeRepository
	eventRepo    attendance.EventRepository
	emailSvc     email.EmailService
	policy       payroll.DeductionPolicy
}

func NewPayrollService(
	bulletinRepo payroll.BulletinRepository,
	employeeRepo employee.EmployeeRepository,
	eventRepo attendance.EventRepository,
	emailSvc email.EmailService,
	policy payroll.DeductionPolicy,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		bulletinRepo: bulletinRepo,
		employeeRepo: employeeRepo,
		eventRepo:    eventRepo,
		emailSvc:     emailSvc,
		policy:       policy,
	}
}

func (s *PayrollServiceImpl) ComputeMonthly(ctx context.Context, employeeID string, month time.Time) (payroll.BulletinResponse, error) {
	start, end := monthBounds(month)
	if err := validatePeriod(start, end); err != nil {
		return payroll.BulletinResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.BulletinResponse{}, err
	}

	bulletin, err := s.computeForEmployee(ctx, emp, start, end)
	if err != nil {
		return payroll.BulletinResponse{}, err
	}

	saved, err := s.bulletinRepo.Upsert(ctx, bulletin)
	if err != nil {
		return payroll.BulletinResponse{}, fmt.Errorf("failed to persist bulletin for employee %s: %w", emp.Code, err)
	}

	return payroll.ToResponse(saved), nil
}

func (s *PayrollServiceImpl) ComputeAllMonthly(ctx context.Context, month time.Time) (payroll.BatchResult, error) {
	start, end := monthBounds(month)
	if err := validatePeriod(start, end); err != nil {
		return payroll.BatchResult{}, err
	}

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return payroll.BatchResult{}, fmt.Errorf("failed to list employees: %w", err)
	}

	slog.Info("starting batch payroll run", "month", month.Format("2006-01"), "employees", len(employees))

	result := payroll.BatchResult{Total: len(employees)}
	for _, emp := range employees {
		bulletin, err := s.computeForEmployee(ctx, emp, start, end)
		if err != nil {
			// Fail fast: bulletins persisted so far stand, the rest of
			// the batch is never attempted.
			return result, &payroll.BatchError{EmployeeCode: emp.Code, Err: err}
		}

		if _, err := s.bulletinRepo.Upsert(ctx, bulletin); err != nil {
			return result, &payroll.BatchError{EmployeeCode: emp.Code, Err: err}
		}

		result.Computed++
		slog.Info("bulletin computed and saved", "employee_code", emp.Code, "net_salary", bulletin.NetSalary)
	}

	slog.Info("batch payroll run finished", "computed", result.Computed)
	return result, nil
}

// computeForEmployee runs the single-employee pipeline: fetch events,
// aggregate, analyse, deduct, assemble. Callers validate the period
// before any repository call and decide when to save the bulletin.
func (s *PayrollServiceImpl) computeForEmployee(ctx context.Context, emp employee.Employee, start, end time.Time) (payroll.Bulletin, error) {
	events, err := s.eventRepo.GetByEmployeeAndRange(ctx, emp.ID, start, endOfDay(end))
	if err != nil {
		return payroll.Bulletin{}, &payroll.ComputationError{
			EmployeeCode: emp.Code,
			PeriodStart:  start,
			PeriodEnd:    end,
			Err:          fmt.Errorf("failed to fetch clock events: %w", err),
		}
	}

	if len(events) == 0 {
		// Informational, not an error: the employee still gets a bulletin
		// with zero days worked and full absence deductions.
		slog.Warn("no clock events found for period",
			"employee_code", emp.Code,
			"period_start", start.Format("2006-01-02"),
			"period_end", end.Format("2006-01-02"),
		)
	}

	buckets := groupByDay(events)
	analysis := analyze(buckets, start, end, s.policy)
	deductions := computeDeductions(analysis, emp.BaseSalary, s.policy)

	return assembleBulletin(emp, start, end, analysis, deductions), nil
}

// assembleBulletin is a pure combination step: no I/O, no failure modes.
func assembleBulletin(emp employee.Employee, start, end time.Time, analysis payroll.PresenceAnalysis, deductions payroll.DeductionResult) payroll.Bulletin {
	return payroll.Bulletin{
		EmployeeID:        emp.ID,
		EmployeeCode:      emp.Code,
		EmployeeLastName:  emp.LastName,
		EmployeeFirstName: emp.FirstName,
		PeriodStart:       start,
		PeriodEnd:         end,
		BaseSalary:        emp.BaseSalary,
		DaysWorked:        analysis.DaysWorked,
		DaysAbsent:        analysis.DaysAbsent,
		LateMinutesTotal:  analysis.LateMinutesTotal,
		OvertimeHours:     analysis.OvertimeHours,
		AbsenceDeduction:  deductions.AbsenceDeduction,
		LatenessDeduction: deductions.LatenessDeduction,
		NetSalary:         deductions.NetSalary,
		Sent:              false,
	}
}

func (s *PayrollServiceImpl) SendBulletin(ctx context.Context, bulletinID string) error {
	bulletin, err := s.bulletinRepo.GetByID(ctx, bulletinID)
	if err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, bulletin.EmployeeID)
	if err != nil {
		return err
	}

	data := email.PayslipData{
		EmployeeName:      emp.FullName(),
		EmployeeCode:      emp.Code,
		PeriodStart:       bulletin.PeriodStart.Format("2006-01-02"),
		PeriodEnd:         bulletin.PeriodEnd.Format("2006-01-02"),
		BaseSalary:        bulletin.BaseSalary.StringFixed(2),
		DaysWorked:        bulletin.DaysWorked,
		DaysAbsent:        bulletin.DaysAbsent,
		LateMinutes:       bulletin.LateMinutesTotal,
		OvertimeHours:     fmt.Sprintf("%.2f", bulletin.OvertimeHours),
		AbsenceDeduction:  bulletin.AbsenceDeduction.StringFixed(2),
		LatenessDeduction: bulletin.LatenessDeduction.StringFixed(2),
		NetSalary:         bulletin.NetSalary.StringFixed(2),
	}

	if err := s.emailSvc.SendPayslip(emp.Email, data); err != nil {
		return fmt.Errorf("failed to send payslip to %s: %w", emp.Code, err)
	}

	if err := s.bulletinRepo.MarkSent(ctx, bulletin.ID); err != nil {
		return fmt.Errorf("failed to mark bulletin %s as sent: %w", bulletin.ID, err)
	}

	return nil
}

func (s *PayrollServiceImpl) SendPending(ctx context.Context) (int, error) {
	unsent, err := s.bulletinRepo.FindUnsent(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list unsent bulletins: %w", err)
	}

	sent := 0
	for _, bulletin := range unsent {
		if err := s.SendBulletin(ctx, bulletin.ID); err != nil {
			// One undeliverable payslip must not block the rest.
			slog.Error("failed to send pending bulletin",
				"bulletin_id", bulletin.ID,
				"employee_code", bulletin.EmployeeCode,
				"error", err,
			)
			continue
		}
		sent++
	}

	slog.Info("pending bulletins sent", "sent", sent, "pending", len(unsent))
	return sent, nil
}

func (s *PayrollServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.BulletinResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	bulletins, err := s.bulletinRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return payroll.ToResponses(bulletins), nil
}

// monthBounds normalises any date inside a month to that month's first
// and last calendar day.
func monthBounds(month time.Time) (time.Time, time.Time) {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}

// validatePeriod rejects bad periods before any fetch happens.
func validatePeriod(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("%w: start %s is after end %s", payroll.ErrInvalidPeriod,
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	if start.After(time.Now()) {
		return fmt.Errorf("%w: period starts in the future", payroll.ErrInvalidPeriod)
	}
	return nil
}

func endOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())
}
