package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/presencio/presence-backend-go/internal/domain/payroll"
)

// PayrollJobs runs the monthly batch computation on the evening of the
// last day of each month.
type PayrollJobs struct {
	payrollSvc payroll.PayrollService
}

func NewPayrollJobs(payrollSvc payroll.PayrollService) *PayrollJobs {
	return &PayrollJobs{payrollSvc: payrollSvc}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("compute_monthly_payroll", 1*time.Hour, onLastEveningOfMonth, j.ComputeMonthlyPayroll)
}

// onLastEveningOfMonth is true during the 20:00-20:59 window of the
// month's final day.
func onLastEveningOfMonth(now time.Time) bool {
	if now.Hour() != 20 {
		return false
	}
	return now.AddDate(0, 0, 1).Month() != now.Month()
}

func (j *PayrollJobs) ComputeMonthlyPayroll(ctx context.Context) error {
	slog.Info("Cron: Starting monthly payroll batch")

	result, err := j.payrollSvc.ComputeAllMonthly(ctx, time.Now())
	if err != nil {
		// Bulletins persisted before the failure stand.
		slog.Error("Cron: Monthly payroll batch aborted", "computed", result.Computed, "total", result.Total, "error", err)
		return err
	}

	slog.Info("Cron: Monthly payroll batch finished", "computed", result.Computed, "total", result.Total)
	return nil
}
