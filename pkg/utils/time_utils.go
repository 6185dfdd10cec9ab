package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// LoadLocation resolves an IANA zone name, falling back to UTC when empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "UTC" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", name, err)
	}
	return loc, nil
}

// AddCalendarDays moves t forward by days on the calendar of t's own location.
// Wall-clock time is kept across DST changes and month ends are normalised,
// so 2024-01-31 + 1 is 2024-02-01 and 2024-02-29 + 365 is 2025-02-28.
func AddCalendarDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// ParseDate accepts a bare calendar date (midnight in loc) or an RFC 3339
// timestamp. Either way the result is in loc, so calendar arithmetic on it
// follows loc's DST rules rather than a fixed offset.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(DateLayout, value, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD or RFC 3339 date, got %q", value)
	}
	return t.In(loc), nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
