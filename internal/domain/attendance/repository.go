package attendance

import (
	"context"
	"time"
)

// EventRepository defines data access methods for clock events. The
// payroll engine only reads through GetByEmployeeAndRange; writes happen
// on the attendance-recording path.
type EventRepository interface {
	Create(ctx context.Context, event ClockEvent) (ClockEvent, error)
	GetByID(ctx context.Context, id string) (ClockEvent, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]ClockEvent, error)

	// GetByEmployeeAndRange returns events with from <= timestamp <= to,
	// inclusive of both bounds to the second. Ordering is not guaranteed.
	GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]ClockEvent, error)

	// GetByPeriod returns all events whose calendar date falls within
	// [start, end], across employees.
	GetByPeriod(ctx context.Context, start, end time.Time) ([]ClockEvent, error)

	// CountByKindOnDate counts events of one kind for an employee on one
	// calendar date. Used by the presence-today check.
	CountByKindOnDate(ctx context.Context, employeeID string, kind EventKind, date time.Time) (int, error)

	Delete(ctx context.Context, id string) error
}
