package week

import (
	"fmt"
	"time"
)

// dayLabels are Monday-first short weekday labels
var dayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// StartOfWeek returns the Monday of the week containing t, normalized to
// midnight. Sunday counts as the last day of its week, not the first day
// of the next one.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	offset := 1 - int(day.Weekday())
	if day.Weekday() == time.Sunday {
		offset = -6
	}

	return day.AddDate(0, 0, offset)
}

// Day returns the date of the dayIndex-th day (0 = Monday) of the week
// starting at weekStart
func Day(weekStart time.Time, dayIndex int) time.Time {
	return weekStart.AddDate(0, 0, dayIndex)
}

// FormatWeekRange renders a week as "11 - 17 November 2024". A week that
// spans a month or year boundary is labelled by its ending month and year.
func FormatWeekRange(weekStart time.Time) string {
	end := weekStart.AddDate(0, 0, 6)
	return fmt.Sprintf("%d - %d %s %d", weekStart.Day(), end.Day(), end.Month().String(), end.Year())
}

// DayLabel returns the Monday-first short weekday label for a date
func DayLabel(t time.Time) string {
	return dayLabels[(int(t.Weekday())+6)%7]
}

// IsCurrentWeek reports whether weekStart is the start of the week
// containing now. The two Mondays are compared as calendar dates, so a
// weekStart carried in a different location (a parsed UTC date against a
// local clock) still matches.
func IsCurrentWeek(weekStart, now time.Time) bool {
	current := StartOfWeek(now)
	return weekStart.Year() == current.Year() &&
		weekStart.Month() == current.Month() &&
		weekStart.Day() == current.Day()
}
