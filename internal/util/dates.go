package util

import "time"

// DateLayout is the storage and wire format for civil dates.
const DateLayout = "2006-01-02"

// Date truncates t to a civil date at UTC midnight.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays returns the civil date n days after t.
func AddDays(t time.Time, n int) time.Time {
	return Date(t).AddDate(0, 0, n)
}

// DaysBetween returns the signed number of whole days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)) / (24 * time.Hour))
}

// DateBefore reports whether a falls on an earlier civil date than b.
func DateBefore(a, b time.Time) bool {
	return Date(a).Before(Date(b))
}

// DateAfter reports whether a falls on a later civil date than b.
func DateAfter(a, b time.Time) bool {
	return Date(a).After(Date(b))
}

// SameDate reports whether a and b fall on the same civil date.
func SameDate(a, b time.Time) bool {
	return Date(a).Equal(Date(b))
}
