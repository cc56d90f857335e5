// File: datehelpers.go
// Title: Calendar Helpers
// Description: Day stepping, week membership and weekday search on calendar
//              dates. All comparisons use the calendar date in the value's
//              own location.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import (
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// Tomorrow returns t plus one calendar day
func Tomorrow(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// Yesterday returns t minus one calendar day
func Yesterday(t time.Time) time.Time {
	return t.AddDate(0, 0, -1)
}

// DatePartEquals reports whether a and b fall on the same calendar date
func DatePartEquals(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsDateInWeek reports whether t falls within the seven days beginning at
// startOfWeek
func IsDateInWeek(t, startOfWeek time.Time) bool {
	d := startOfWeek
	for i := 0; i < 7; i++ {
		if DatePartEquals(t, d) {
			return true
		}
		d = Tomorrow(d)
	}
	return false
}

// IsThisWeek reports whether t is in the Monday-based week of ref
func IsThisWeek(t, ref time.Time) bool {
	return IsDateInWeek(t, now.With(ref).Monday())
}

// IsNextWeek reports whether t is in the week after the week of ref
func IsNextWeek(t, ref time.Time) bool {
	return IsThisWeek(t, ref.AddDate(0, 0, 7))
}

// IsLastWeek reports whether t is in the week before the week of ref
func IsLastWeek(t, ref time.Time) bool {
	return IsThisWeek(t, ref.AddDate(0, 0, -7))
}

// WeekOfYear returns the ISO 8601 week number of t
func WeekOfYear(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// DateOfLastDay returns the latest date strictly before ref that falls on day
func DateOfLastDay(day time.Weekday, ref time.Time) time.Time {
	result := Yesterday(ref)
	for result.Weekday() != day {
		result = Yesterday(result)
	}
	return result
}

// DateOfNextDay returns the earliest date strictly after ref that falls on day
func DateOfNextDay(day time.Weekday, ref time.Time) time.Time {
	result := Tomorrow(ref)
	for result.Weekday() != day {
		result = Tomorrow(result)
	}
	return result
}

// DatesMatchingDay returns every date in [start, end) that falls on day
func DatesMatchingDay(day time.Weekday, start, end time.Time) []time.Time {
	var result []time.Time
	for d := start; d.Before(end) && !DatePartEquals(d, end); d = Tomorrow(d) {
		if d.Weekday() == day {
			result = append(result, d)
		}
	}
	return result
}

// FixedFormatNumber left-pads n with zeros to size digits
func FixedFormatNumber(n, size int) string {
	s := strconv.Itoa(n)
	if len(s) >= size {
		return s
	}
	return strings.Repeat("0", size-len(s)) + s
}

// isoWeekday converts an ISO weekday (Monday = 1, Sunday = 7) to time.Weekday
func isoWeekday(day int) time.Weekday {
	return time.Weekday(day % 7)
}
