package domain

import (
	"fmt"
	"time"
)

// CalendarDay is the (year, ordinal day) pair used as the rotation key and as
// the validity key of a synchronized payload.
type CalendarDay struct {
	Year int

	// DayOfYear is 1-based: January 1st is day 1.
	DayOfYear int
}

// DayOf returns the calendar day of t in loc. The time is first anchored to
// the start of its day, so every instant of one local day maps to the same
// CalendarDay. A nil loc keeps t's own location.
func DayOf(t time.Time, loc *time.Location) CalendarDay {
	if loc != nil {
		t = t.In(loc)
	}

	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())

	return CalendarDay{
		Year:      start.Year(),
		DayOfYear: start.YearDay(),
	}
}

// String formats the day as YYYY-DDD.
func (d CalendarDay) String() string {
	return fmt.Sprintf("%04d-%03d", d.Year, d.DayOfYear)
}
