package models

import "time"

// DateLayout is the calendar-date format used for DailyLog.Date.
const DateLayout = "2006-01-02"

// DailyLog records one reconciliation of counted cash against the ledger.
// At most one exists per calendar date.
type DailyLog struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	SystemBalance float64 `json:"systemBalance"`
	ActualBalance float64 `json:"actualBalance"`
	Difference    float64 `json:"difference"`
	Notes         string  `json:"notes"`
	UserID        string  `json:"userId"`
}

// CalendarDate formats t as a DailyLog date in loc.
func CalendarDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}
