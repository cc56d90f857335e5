// File: datehelpers_test.go
// Title: Calendar Helper Tests
// Description: Tests for weekday search, week membership and number padding.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestDateOfLastAndNextDay(t *testing.T) {
	ref := day(2024, 1, 10) // Wednesday

	tests := []struct {
		name     string
		got      time.Time
		expected time.Time
	}{
		{"last friday", DateOfLastDay(time.Friday, ref), day(2024, 1, 5)},
		{"last wednesday", DateOfLastDay(time.Wednesday, ref), day(2024, 1, 3)},
		{"next wednesday", DateOfNextDay(time.Wednesday, ref), day(2024, 1, 17)},
		{"next thursday", DateOfNextDay(time.Thursday, ref), day(2024, 1, 11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !DatePartEquals(tt.got, tt.expected) {
				t.Errorf("got %v, want %v", tt.got.Format(time.DateOnly), tt.expected.Format(time.DateOnly))
			}
		})
	}
}

func TestDatesMatchingDay(t *testing.T) {
	got := DatesMatchingDay(time.Monday, day(2024, 1, 1), day(2024, 1, 15))
	if len(got) != 2 {
		t.Fatalf("DatesMatchingDay() = %v, want 2 dates", got)
	}
	if !DatePartEquals(got[0], day(2024, 1, 1)) || !DatePartEquals(got[1], day(2024, 1, 8)) {
		t.Errorf("DatesMatchingDay() = %v", got)
	}

	if got := DatesMatchingDay(time.Monday, day(2024, 1, 15), day(2024, 1, 1)); len(got) != 0 {
		t.Errorf("inverted range = %v, want none", got)
	}
}

func TestWeekMembership(t *testing.T) {
	ref := day(2024, 1, 10)

	if !IsThisWeek(day(2024, 1, 8), ref) || !IsThisWeek(day(2024, 1, 14), ref) {
		t.Error("IsThisWeek() should cover Monday through Sunday")
	}
	if IsThisWeek(day(2024, 1, 15), ref) {
		t.Error("IsThisWeek() should exclude the next Monday")
	}
	if !IsNextWeek(day(2024, 1, 15), ref) {
		t.Error("IsNextWeek() = false for the next Monday")
	}
	if !IsLastWeek(day(2024, 1, 7), ref) {
		t.Error("IsLastWeek() = false for the previous Sunday")
	}
	if got := WeekOfYear(ref); got != 2 {
		t.Errorf("WeekOfYear() = %d, want 2", got)
	}
}

func TestFixedFormatNumber(t *testing.T) {
	tests := []struct {
		n, size  int
		expected string
	}{
		{7, 2, "07"},
		{5, 4, "0005"},
		{2017, 2, "2017"},
		{12, 2, "12"},
	}

	for _, tt := range tests {
		if got := FixedFormatNumber(tt.n, tt.size); got != tt.expected {
			t.Errorf("FixedFormatNumber(%d, %d) = %q, want %q", tt.n, tt.size, got, tt.expected)
		}
	}
}

func TestIsoWeekday(t *testing.T) {
	if isoWeekday(7) != time.Sunday || isoWeekday(1) != time.Monday {
		t.Error("isoWeekday() mapping broken")
	}
}
