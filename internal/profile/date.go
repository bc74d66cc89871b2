package profile

import (
	"fmt"
	"time"
)

// DateLayout is the canonical form for calendar-date keys. No other shape
// is valid as a DailyProgress key.
const DateLayout = "2006-01-02"

// Date is a calendar date in the canonical yyyy-MM-dd form. The zero value
// is "no date" and sorts before every real date.
type Date string

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// ParseDate validates s against the canonical layout.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date(s), nil
}

// IsZero reports whether d is the "no date" value.
func (d Date) IsZero() bool {
	return d == ""
}

// Time returns the midnight instant of d in UTC. The zero Date returns the
// zero time.
func (d Date) Time() time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Before reports whether d is strictly earlier than other. The zero Date is
// before every non-zero date.
func (d Date) Before(other Date) bool {
	return string(d) < string(other)
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// DayOfYear returns the 1-based ordinal day within d's year.
func (d Date) DayOfYear() int {
	return d.Time().YearDay()
}

func (d Date) String() string {
	return string(d)
}
