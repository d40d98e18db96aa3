package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for clock events.
type AttendanceService interface {
	// RecordClock records a pointage identified by matricule. ENTRY events
	// get their lateness stamped against the configured work start time.
	RecordClock(ctx context.Context, req ClockRequest) (EventResponse, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]EventResponse, error)
	ListByPeriod(ctx context.Context, start, end time.Time) ([]EventResponse, error)
	DeleteEvent(ctx context.Context, id string) error

	// IsPresentToday reports whether the employee has more entries than
	// exits for the current calendar date.
	IsPresentToday(ctx context.Context, employeeID string) (bool, error)

	// MarkAbsent writes a synthetic ABSENT event for the given date. Used
	// by the daily sweep for employees with no presence by end of day.
	MarkAbsent(ctx context.Context, employeeID string, date time.Time) error
}
