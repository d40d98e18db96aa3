package payroll

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidPeriod    = errors.New("invalid payroll period")
	ErrBulletinNotFound = errors.New("payroll bulletin not found")
)

// ComputationError wraps an unexpected failure inside a single-employee
// payroll computation. It always carries the employee code and the
// underlying cause.
type ComputationError struct {
	EmployeeCode string
	PeriodStart  time.Time
	PeriodEnd    time.Time
	Err          error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("payroll computation failed for employee %s (%s to %s): %v",
		e.EmployeeCode,
		e.PeriodStart.Format("2006-01-02"),
		e.PeriodEnd.Format("2006-01-02"),
		e.Err,
	)
}

func (e *ComputationError) Unwrap() error { return e.Err }

// BatchError wraps the first per-employee failure during a batch run.
// The batch aborts on the first failure; bulletins already persisted
// stand.
type BatchError struct {
	EmployeeCode string
	Err          error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch payroll aborted at employee %s: %v", e.EmployeeCode, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
