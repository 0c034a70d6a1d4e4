// Package dates formats calendar dates from local time fields. The reservation
// API works in YYYY-MM-DD strings; building them from Year/Month/Day instead of
// converting through UTC keeps the date stable across timezones.
package dates

import (
	"fmt"
	"time"
)

// Format renders t as YYYY-MM-DD using its local date fields.
func Format(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return Format(time.Now())
}

// IsToday reports whether the given YYYY-MM-DD string is today's local date.
func IsToday(s string) bool {
	return s == Today()
}
