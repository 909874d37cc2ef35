// Package dateutils provides common date operations used throughout the
// application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO  = "2006-01-02"
	DateLayoutFull = "2006-01-02 15:04:05"
)

// CommonFormats is a list of formats to try when parsing calendar dates
// coming back from the backend or typed by the user.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	time.RFC3339,
	"02.01.2006",
	"02/01/2006",
	"2006/01/02",
}

// ParseDate attempts to parse a date string using the common formats.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatDate formats a time.Time value according to the specified layout.
// If no layout is provided, DateLayoutISO is used.
func FormatDate(date time.Time, layout string) string {
	if layout == "" {
		layout = DateLayoutISO
	}
	return date.Format(layout)
}

// CompareDates orders two calendar-date strings. Unparseable dates sort
// before parseable ones so malformed rows stay visible at the end of a
// descending list.
func CompareDates(a, b string) int {
	ta, errA := ParseDate(a)
	tb, errB := ParseDate(b)
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	default:
		return 0
	}
}

// WithinRange reports whether date falls inside the inclusive
// [startDate, endDate] bounds. Empty bounds are open.
func WithinRange(date, startDate, endDate string) bool {
	t, err := ParseDate(date)
	if err != nil {
		return false
	}
	if startDate != "" {
		start, err := ParseDate(startDate)
		if err == nil && t.Before(start) {
			return false
		}
	}
	if endDate != "" {
		end, err := ParseDate(endDate)
		if err == nil && t.After(end) {
			return false
		}
	}
	return true
}
