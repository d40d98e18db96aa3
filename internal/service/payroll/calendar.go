package payroll

import "time"

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday is a policy hook. No holiday calendar is wired in yet, so
// it always returns false.
func IsHoliday(date time.Time) bool {
	return false
}

// IsBusinessDay reports whether the date is neither weekend nor holiday.
func IsBusinessDay(date time.Time) bool {
	return !IsWeekend(date) && !IsHoliday(date)
}

// BusinessDaysBetween counts business days in [start, end], inclusive of
// both ends.
func BusinessDaysBetween(start, end time.Time) int {
	count := 0
	for d := dayOf(start); !d.After(dayOf(end)); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			count++
		}
	}
	return count
}

// dayOf truncates a timestamp to its calendar date at midnight,
// preserving the location.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
