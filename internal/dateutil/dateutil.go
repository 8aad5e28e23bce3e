// Package dateutil provides calendar-day parsing and week arithmetic.
//
// Days are represented as time.Time values at midnight UTC so that day
// arithmetic never crosses a daylight-saving boundary.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Layout is the ISO 8601 calendar date layout used for block dates.
const Layout = "2006-01-02"

// ErrInvalidDateFormat is returned when a date is not a real YYYY-MM-DD day.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseDay parses a strict YYYY-MM-DD date.
// Out-of-range months or days (2026-13-40) are rejected.
func ParseDay(s string) (time.Time, error) {
	if len(s) != len(Layout) {
		return time.Time{}, ErrInvalidDateFormat
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// IsValidDay reports whether s is a strict YYYY-MM-DD date.
func IsValidDay(s string) bool {
	_, err := ParseDay(s)
	return err == nil
}

// FormatDay formats a day as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(Layout)
}

// Day returns the calendar day of t (in t's location) as midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current local calendar day as midnight UTC.
func Today() time.Time {
	return Day(time.Now())
}

// MondayOf returns the Monday on or before t.
// Weeks start on Monday; Sunday is the seventh day.
func MondayOf(t time.Time) time.Time {
	t = Day(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// WeekRange returns the Monday and Sunday of the week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	monday = MondayOf(t)
	return monday, monday.AddDate(0, 0, 6)
}

// ParseRelativeDate parses a date string that can be:
//   - Empty string or "today": returns relativeTo's day
//   - Absolute date: "2026-01-15" (YYYY-MM-DD)
//   - Keywords: "tomorrow", "yesterday", "next-week"
//   - Weekday names: "monday" through "sunday" (next occurrence, always future)
//   - Next prefixed: "next-monday" through "next-sunday"
//
// All inputs are case-insensitive. Past dates are allowed.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := Day(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "next-week":
		return today.AddDate(0, 0, 7), nil
	}

	name := strings.TrimPrefix(input, "next-")
	if target, ok := weekdayMap[name]; ok {
		return nextWeekday(today, target), nil
	}
	if name != input {
		return time.Time{}, ErrInvalidDateFormat
	}

	return ParseDay(input)
}

// nextWeekday returns the next occurrence of target after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := int(target) - int(today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}
