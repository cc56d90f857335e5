// File: constraints_test.go
// Title: Constraint Collapsing Tests
// Description: Tests for merging overlapping time and date ranges.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import (
	"reflect"
	"testing"
	"time"
)

func hours(start, end int) TimeRange {
	return TimeRange{Start: Time{Hour: start}, End: Time{Hour: end}}
}

func days(start, end int) DateRange {
	return DateRange{
		Start: time.Date(2017, 9, start, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2017, 9, end, 0, 0, 0, 0, time.UTC),
	}
}

func TestCollapseTimeRanges(t *testing.T) {
	tests := []struct {
		name     string
		input    []TimeRange
		expected []TimeRange
	}{
		{"empty", nil, []TimeRange{}},
		{"single", []TimeRange{hours(9, 12)}, []TimeRange{hours(9, 12)}},
		{"overlapping", []TimeRange{hours(9, 12), hours(11, 14)}, []TimeRange{hours(11, 12)}},
		{"contained", []TimeRange{hours(8, 18), hours(10, 12)}, []TimeRange{hours(10, 12)}},
		{"chain", []TimeRange{hours(8, 12), hours(10, 14), hours(11, 13)}, []TimeRange{hours(11, 12)}},
		{"disjoint sorted", []TimeRange{hours(13, 14), hours(8, 9)}, []TimeRange{hours(8, 9), hours(13, 14)}},
		{"adjacent", []TimeRange{hours(8, 10), hours(10, 12)}, []TimeRange{hours(8, 10), hours(10, 12)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollapseTimeRanges(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("CollapseTimeRanges() = %v, want %v", got, tt.expected)
			}
			if again := CollapseTimeRanges(got); !reflect.DeepEqual(again, got) {
				t.Errorf("collapse not idempotent: %v then %v", got, again)
			}
		})
	}
}

func TestCollapseTimeRanges_DoesNotModifyInput(t *testing.T) {
	input := []TimeRange{hours(9, 12), hours(11, 14)}
	CollapseTimeRanges(input)

	if input[0] != hours(9, 12) || input[1] != hours(11, 14) {
		t.Errorf("input modified: %v", input)
	}
}

func TestCollapseDateRanges(t *testing.T) {
	tests := []struct {
		name     string
		input    []DateRange
		expected []DateRange
	}{
		{"overlapping", []DateRange{days(1, 15), days(10, 20)}, []DateRange{days(10, 15)}},
		{"disjoint sorted", []DateRange{days(20, 25), days(1, 5)}, []DateRange{days(1, 5), days(20, 25)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollapseDateRanges(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("CollapseDateRanges() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if !got[i].Start.Equal(tt.expected[i].Start) || !got[i].End.Equal(tt.expected[i].End) {
					t.Errorf("range %d = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestRangeOverlaps(t *testing.T) {
	if !hours(9, 12).Overlaps(hours(11, 14)) {
		t.Error("(9,12) should overlap (11,14)")
	}
	if hours(9, 11).Overlaps(hours(11, 14)) {
		t.Error("(9,11) should not overlap (11,14)")
	}
	if !days(1, 10).Contains(time.Date(2017, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("range should contain its start")
	}
	if days(1, 10).Contains(time.Date(2017, 9, 10, 0, 0, 0, 0, time.UTC)) {
		t.Error("range should not contain its end")
	}
}

func TestTime_Millis(t *testing.T) {
	tm := Time{Hour: 13, Minute: 45, Second: 30}
	if got := NewTimeFromMillis(tm.Millis()); got != tm {
		t.Errorf("NewTimeFromMillis(Millis()) = %v, want %v", got, tm)
	}
	if got := tm.String(); got != "13:45:30" {
		t.Errorf("String() = %q", got)
	}
}
