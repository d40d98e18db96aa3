package attendance

import "time"

// EventKind classifies a clock event. ABSENT events are synthetic records
// written by the daily absence sweep for employees with no presence.
type EventKind string

const (
	KindEntry  EventKind = "ENTRY"
	KindExit   EventKind = "EXIT"
	KindAbsent EventKind = "ABSENT"
)

func (k EventKind) Valid() bool {
	switch k {
	case KindEntry, KindExit, KindAbsent:
		return true
	}
	return false
}

// ClockEvent is one timestamped attendance record. Events reference their
// employee by id only; the directory is looked up by that id when needed.
type ClockEvent struct {
	ID          string
	EmployeeID  string
	Timestamp   time.Time
	Kind        EventKind
	Late        bool
	LateMinutes int
	CreatedAt   time.Time

	// Joined fields
	EmployeeCode      *string
	EmployeeLastName  *string
	EmployeeFirstName *string
}
