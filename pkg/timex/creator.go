// File: creator.go
// Title: TIMEX Creator
// Description: Ready-made TIMEX literals and builders for common relative
//              expressions such as today or next week.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import "time"

// Weekday literals
const (
	Monday    = "XXXX-WXX-1"
	Tuesday   = "XXXX-WXX-2"
	Wednesday = "XXXX-WXX-3"
	Thursday  = "XXXX-WXX-4"
	Friday    = "XXXX-WXX-5"
	Saturday  = "XXXX-WXX-6"
	Sunday    = "XXXX-WXX-7"
)

// Part-of-day range literals
const (
	Morning   = "(T08,T12,PT4H)"
	Afternoon = "(T12,T16,PT4H)"
	Evening   = "(T16,T20,PT4H)"
	Daytime   = "(T08,T18,PT10H)"
	Night     = "(T20,T24,PT10H)"
)

// Today returns the date of ref
func Today(ref time.Time) string {
	return FromDate(ref).Timex()
}

// TomorrowOf returns the date after ref
func TomorrowOf(ref time.Time) string {
	return FromDate(Tomorrow(ref)).Timex()
}

// YesterdayOf returns the date before ref
func YesterdayOf(ref time.Time) string {
	return FromDate(Yesterday(ref)).Timex()
}

// WeekFromToday returns the seven days starting at ref
func WeekFromToday(ref time.Time) string {
	return daysFrom(ref, 7)
}

// WeekBackFromToday returns the seven days ending at ref
func WeekBackFromToday(ref time.Time) string {
	return daysFrom(ref.AddDate(0, 0, -7), 7)
}

// ThisWeek returns the Monday-based week containing ref
func ThisWeek(ref time.Time) string {
	return daysFrom(DateOfNextDay(time.Monday, ref.AddDate(0, 0, -7)), 7)
}

// NextWeek returns the week starting on the Monday after ref
func NextWeek(ref time.Time) string {
	return daysFrom(DateOfNextDay(time.Monday, ref), 7)
}

// LastWeek returns the week before the Monday preceding ref
func LastWeek(ref time.Time) string {
	return daysFrom(DateOfLastDay(time.Monday, ref).AddDate(0, 0, -7), 7)
}

// NextWeeksFromToday returns the n weeks starting at ref
func NextWeeksFromToday(n int, ref time.Time) string {
	return daysFrom(ref, 7*n)
}

func daysFrom(start time.Time, days int) string {
	p := FromDate(start)
	p.Days = Amount(int64(days))
	return p.Timex()
}
