package timeutil

import (
	"fmt"
	"time"
)

// Layouts of the flight API's scheduled-time strings, e.g. "2025-01-16 20:40+07:00"
// and "2025-01-16 13:40Z". The "T" separated form is accepted as well.
const (
	apiDateTimeLayout  = "2006-01-02 15:04Z07:00"
	apiDateTimeLayoutT = "2006-01-02T15:04Z07:00"
)

// ParseDateTime parses a scheduled-time string.
// The result keeps the wall clock exactly as written, in a fixed zone carrying the
// string's offset, so a local departure time stays the local departure time.
func ParseDateTime(text string) (time.Time, error) {
	t, err := time.Parse(apiDateTimeLayout, text)
	if err == nil {
		return t, nil
	}

	if t, errT := time.Parse(apiDateTimeLayoutT, text); errT == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("parse date-time %q: %w", text, err)
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

