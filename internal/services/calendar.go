package services

import (
	"time"

	"treasury/internal/models"
)

// Calendar decides what "now" and "today" mean for the ledger.
type Calendar struct {
	Location *time.Location
	Now      func() time.Time
}

// NewCalendar uses the wall clock in loc. A nil loc means UTC.
func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{Location: loc, Now: time.Now}
}

// Time returns the current instant.
func (c Calendar) Time() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Today returns the current calendar date as YYYY-MM-DD.
func (c Calendar) Today() string {
	return c.DateOf(c.Time())
}

// DateOf returns the calendar date t falls on.
func (c Calendar) DateOf(t time.Time) string {
	return models.CalendarDate(t, c.Location)
}
