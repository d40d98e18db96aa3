package payroll

import (
	"context"
	"time"
)

// PayrollService drives the monthly computation: fetch employee and
// events, aggregate, analyse, deduct, assemble, persist.
type PayrollService interface {
	// ComputeMonthly computes and persists the bulletin for one employee.
	// month may be any date inside the target month; the period is
	// normalised to [first day, last day].
	ComputeMonthly(ctx context.Context, employeeID string, month time.Time) (BulletinResponse, error)

	// ComputeAllMonthly runs the single-employee path for every employee
	// in the directory, persisting each bulletin as it is produced. The
	// first failure aborts the batch; already-persisted bulletins stand.
	ComputeAllMonthly(ctx context.Context, month time.Time) (BatchResult, error)

	// SendBulletin emails the payslip to the employee and marks the
	// bulletin as sent on success.
	SendBulletin(ctx context.Context, bulletinID string) error

	// SendPending emails every unsent bulletin, skipping over individual
	// failures. Returns the number actually sent.
	SendPending(ctx context.Context) (int, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]BulletinResponse, error)
}
