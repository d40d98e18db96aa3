package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(date(2025, time.June, 7)))  // Saturday
	assert.True(t, IsWeekend(date(2025, time.June, 8)))  // Sunday
	assert.False(t, IsWeekend(date(2025, time.June, 9))) // Monday
	assert.False(t, IsWeekend(date(2025, time.June, 13)))
}

func TestIsBusinessDay(t *testing.T) {
	assert.True(t, IsBusinessDay(date(2025, time.June, 2)))
	assert.False(t, IsBusinessDay(date(2025, time.June, 1))) // Sunday
}

func TestBusinessDaysBetween(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"full June 2025", date(2025, time.June, 1), date(2025, time.June, 30), 21},
		{"full February 2025", date(2025, time.February, 1), date(2025, time.February, 28), 20},
		{"single business day", date(2025, time.June, 2), date(2025, time.June, 2), 1},
		{"single weekend day", date(2025, time.June, 7), date(2025, time.June, 7), 0},
		{"one working week", date(2025, time.June, 2), date(2025, time.June, 8), 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, BusinessDaysBetween(c.start, c.end))
		})
	}
}

func TestBusinessDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, time.June, 2, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 3, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, BusinessDaysBetween(start, end))
}
