// Package grid derives the four-week (date × slot) board from the block collection.
//
// Everything here is pure except Cache, which memoizes bucketing by store revision.
package grid

import (
	"fmt"
	"time"

	"github.com/javiermolinar/twine/internal/dateutil"
)

const (
	// DaysPerWeek is the length of one grid row group.
	DaysPerWeek = 7
	// Weeks is the number of weeks shown on the board.
	Weeks = 4
	// Days is the number of dates in a FourWeekRange.
	Days = Weeks * DaysPerWeek
)

// FourWeekRange returns 28 consecutive dates starting on the Monday on or
// before start.
func FourWeekRange(start time.Time) []time.Time {
	monday := dateutil.MondayOf(start)
	dates := make([]time.Time, Days)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// GroupIntoWeeks splits dates into contiguous runs of seven.
// The last run is shorter when len(dates) is not a multiple of seven.
func GroupIntoWeeks(dates []time.Time) [][]time.Time {
	var weeks [][]time.Time
	for i := 0; i < len(dates); i += DaysPerWeek {
		end := min(i+DaysPerWeek, len(dates))
		weeks = append(weeks, dates[i:end])
	}
	return weeks
}

// WeekLabel returns a header such as "Jan 5 - Jan 11" for a week of dates.
func WeekLabel(week []time.Time) string {
	if len(week) == 0 {
		return ""
	}
	first, last := week[0], week[len(week)-1]
	return fmt.Sprintf("%s - %s", first.Format("Jan 2"), last.Format("Jan 2"))
}

// WeekdayShortName returns the short name of the weekday (0=Monday).
func WeekdayShortName(weekday int) string {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if weekday < 0 || weekday >= DaysPerWeek {
		return ""
	}
	return names[weekday]
}

// Shift moves start by n weeks.
func Shift(start time.Time, n int) time.Time {
	return dateutil.MondayOf(start).AddDate(0, 0, n*DaysPerWeek)
}
