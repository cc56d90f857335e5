// File: value_test.go
// Title: Value Renderer Tests
// Description: Tests for date, time and duration value rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import (
	"testing"
)

func TestDateValue(t *testing.T) {
	tests := []struct {
		timex    string
		expected string
	}{
		{"2017-09-27", "2017-09-27"},
		{"0099-01-02", "0099-01-02"},
		{"XXXX-WXX-3", ""},
		{"XXXX-09-27", ""},
	}

	for _, tt := range tests {
		if got := DateValue(MustParse(tt.timex)); got != tt.expected {
			t.Errorf("DateValue(%q) = %q, want %q", tt.timex, got, tt.expected)
		}
	}
}

func TestTimeValue(t *testing.T) {
	tests := []struct {
		timex    string
		expected string
	}{
		{"T14", "14:00:00"},
		{"T07:05", "07:05:00"},
		{"T23:59:59", "23:59:59"},
		{"2017-09-27", ""},
	}

	for _, tt := range tests {
		if got := TimeValue(MustParse(tt.timex)); got != tt.expected {
			t.Errorf("TimeValue(%q) = %q, want %q", tt.timex, got, tt.expected)
		}
	}
}

func TestDurationValue(t *testing.T) {
	tests := []struct {
		timex    string
		expected string
	}{
		{"P1Y", "31536000"},
		{"P1M", "2592000"},
		{"P2W", "1209600"},
		{"P1D", "86400"},
		{"PT1.5H", "5400"},
		{"PT30M", "1800"},
		{"PT15S", "15"},
		{"T10", ""},
	}

	for _, tt := range tests {
		if got := DurationValue(MustParse(tt.timex)); got != tt.expected {
			t.Errorf("DurationValue(%q) = %q, want %q", tt.timex, got, tt.expected)
		}
	}
}

func TestDateTimeValue(t *testing.T) {
	if got := DateTimeValue(MustParse("2017-09-27T14:30")); got != "2017-09-27 14:30:00" {
		t.Errorf("DateTimeValue() = %q", got)
	}
}
