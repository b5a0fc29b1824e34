package service

import "time"

// DateLayout is the canonical day format stored in DATE columns.
const DateLayout = "2006-01-02"

// mondayIndex maps time.Weekday (Sunday=0) to the 0=Monday..6=Sunday
// convention used by goal schedules.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// weekStart is the Monday of the week containing day.
func weekStart(day time.Time) time.Time {
	return day.AddDate(0, 0, -mondayIndex(day.Weekday()))
}

// monthStart is the first calendar day of the month containing day.
func monthStart(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
}

// NormalizeMonth rolls out-of-range months into the adjacent year:
// month 0 becomes December of year-1, month 13 January of year+1.
// Arbitrarily distant values normalize the same way.
func NormalizeMonth(year, month int) (int, int) {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), int(t.Month())
}

// ParseDay parses a YYYY-MM-DD string in loc, falling back to today's
// date there when the input is absent or malformed.
func ParseDay(s string, loc *time.Location) time.Time {
	if s != "" {
		if d, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
			return d
		}
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}
