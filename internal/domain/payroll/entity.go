package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionPolicy is loaded once at startup and passed explicitly into
// the computation; it is never mutated afterwards.
type DeductionPolicy struct {
	DeductionPerAbsenceDay decimal.Decimal
	DeductionPerLateMinute decimal.Decimal
	// WorkStart and WorkEnd carry wall-clock time only; the date part is
	// ignored.
	WorkStart           time.Time
	WorkEnd             time.Time
	BusinessDaysPerWeek int
}

// DefaultPolicy returns the standard policy: 200.0/absence day,
// 2.0/late minute, 09:00-17:00 work window, 5 business days a week.
func DefaultPolicy() DeductionPolicy {
	return DeductionPolicy{
		DeductionPerAbsenceDay: decimal.NewFromFloat(200.0),
		DeductionPerLateMinute: decimal.NewFromFloat(2.0),
		WorkStart:              time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		WorkEnd:                time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC),
		BusinessDaysPerWeek:    5,
	}
}

// PresenceAnalysis summarises one employee's attendance over a period.
// Derived and ephemeral; recomputed on every payroll run.
type PresenceAnalysis struct {
	DaysWorked       int
	BusinessDays     int
	DaysAbsent       int
	LateMinutesTotal int
	OvertimeHours    float64
}

// DeductionResult holds the clamped deductions and the resulting net
// salary. AbsenceDeduction + LatenessDeduction never exceeds the base
// salary it was computed from.
type DeductionResult struct {
	AbsenceDeduction  decimal.Decimal
	LatenessDeduction decimal.Decimal
	NetSalary         decimal.Decimal
}

// Bulletin is the payroll statement for one employee-period. Immutable
// once computed, except for the sent flag and date which the delivery
// step mutates exactly once. Uniqueness key: (employee, period start,
// period end).
type Bulletin struct {
	ID                string
	EmployeeID        string
	EmployeeCode      string
	EmployeeLastName  string
	EmployeeFirstName string
	PeriodStart       time.Time
	PeriodEnd         time.Time
	BaseSalary        decimal.Decimal
	DaysWorked        int
	DaysAbsent        int
	LateMinutesTotal  int
	OvertimeHours     float64
	AbsenceDeduction  decimal.Decimal
	LatenessDeduction decimal.Decimal
	NetSalary         decimal.Decimal
	Sent              bool
	SentDate          *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
