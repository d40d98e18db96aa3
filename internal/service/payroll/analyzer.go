package payroll

import (
	"time"

	"github.com/presencio/presence-backend-go/internal/domain/attendance"
	"github.com/presencio/presence-backend-go/internal/domain/payroll"
)

// groupByDay buckets clock events by the calendar date of their
// timestamp. Input ordering is irrelevant; the store does not guarantee
// any. An empty input yields an empty map.
func groupByDay(events []attendance.ClockEvent) map[time.Time][]attendance.ClockEvent {
	buckets := make(map[time.Time][]attendance.ClockEvent, len(events))
	for _, e := range events {
		day := dayOf(e.Timestamp)
		buckets[day] = append(buckets[day], e)
	}
	return buckets
}

// analyze turns day buckets into the presence summary for [start, end].
//
// A day counts as worked only when it is a business day and its bucket
// holds at least one ENTRY. Lateness accumulates per ENTRY event, not
// per day: clocking in late twice on the same day counts twice. Overtime
// accumulates per EXIT past the work end, on non-weekend days only; the
// holiday hook does not apply to overtime.
func analyze(buckets map[time.Time][]attendance.ClockEvent, start, end time.Time, policy payroll.DeductionPolicy) payroll.PresenceAnalysis {
	daysWorked := 0
	lateMinutes := 0
	overtimeMinutes := 0

	for day, events := range buckets {
		if isWorkedDay(day, events) {
			daysWorked++
		}
		lateMinutes += lateMinutesForDay(day, events, policy)
		if !IsWeekend(day) {
			overtimeMinutes += overtimeMinutesForDay(day, events, policy)
		}
	}

	businessDays := BusinessDaysBetween(start, end)
	daysAbsent := businessDays - daysWorked
	if daysAbsent < 0 {
		daysAbsent = 0
	}

	return payroll.PresenceAnalysis{
		DaysWorked:       daysWorked,
		BusinessDays:     businessDays,
		DaysAbsent:       daysAbsent,
		LateMinutesTotal: lateMinutes,
		OvertimeHours:    float64(overtimeMinutes) / 60.0,
	}
}

func isWorkedDay(day time.Time, events []attendance.ClockEvent) bool {
	if !IsBusinessDay(day) {
		return false
	}
	for _, e := range events {
		if e.Kind == attendance.KindEntry {
			return true
		}
	}
	return false
}

func lateMinutesForDay(day time.Time, events []attendance.ClockEvent, policy payroll.DeductionPolicy) int {
	total := 0
	workStart := atTimeOn(day, policy.WorkStart)
	for _, e := range events {
		if e.Kind != attendance.KindEntry {
			continue
		}
		if e.Timestamp.After(workStart) {
			total += int(e.Timestamp.Sub(workStart).Minutes())
		}
	}
	return total
}

func overtimeMinutesForDay(day time.Time, events []attendance.ClockEvent, policy payroll.DeductionPolicy) int {
	total := 0
	workEnd := atTimeOn(day, policy.WorkEnd)
	for _, e := range events {
		if e.Kind != attendance.KindExit {
			continue
		}
		if e.Timestamp.After(workEnd) {
			total += int(e.Timestamp.Sub(workEnd).Minutes())
		}
	}
	return total
}

// atTimeOn combines a calendar date with a wall-clock time of day.
func atTimeOn(day time.Time, tod time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, day.Location())
}
