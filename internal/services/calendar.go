package services

import "time"

// systemCalendar reads the wall clock
type systemCalendar struct{}

// NewSystemCalendar creates a Calendar backed by the system clock, truncated
// to UTC midnight so date comparisons are stable within a day
func NewSystemCalendar() Calendar {
	return systemCalendar{}
}

// CurrentDate returns today's date in UTC
func (systemCalendar) CurrentDate() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// FixedCalendar always reports the same date. Used to pin amortization
// arithmetic in tests and batch jobs that run "as of" a date.
type FixedCalendar struct {
	Date time.Time
}

// CurrentDate returns the pinned date
func (c FixedCalendar) CurrentDate() time.Time {
	return c.Date
}
