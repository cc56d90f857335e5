// File: unit_test.go
// Title: Unit, Set and Renderer Tests
// Description: Tests for duration units, recurring sets and the natural
//              language hook.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected Unit
	}{
		{"year", UnitYear},
		{"Months", UnitMonth},
		{"week", UnitWeek},
		{"days", UnitDay},
		{" hour ", UnitHour},
		{"minutes", UnitMinute},
		{"second", UnitSecond},
	}

	for _, tt := range tests {
		got, err := ParseUnit(tt.input)
		if err != nil {
			t.Errorf("ParseUnit(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseUnit(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}

	if _, err := ParseUnit("fortnight"); !IsInvalidArgument(err) {
		t.Errorf("ParseUnit(fortnight) error = %v, want invalid argument", err)
	}
}

func TestUnit_Duration(t *testing.T) {
	tests := []struct {
		unit     Unit
		amount   string
		expected string
	}{
		{UnitYear, "1", "P1Y"},
		{UnitWeek, "2", "P2W"},
		{UnitDay, "0.5", "P0.5D"},
		{UnitHour, "3", "PT3H"},
		{UnitMinute, "1.5", "PT1.5M"},
		{UnitSecond, "45", "PT45S"},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			got := tt.unit.Duration(decimal.RequireFromString(tt.amount)).Timex()
			if got != tt.expected {
				t.Errorf("Duration(%s) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}

	if Unit(42).String() != "unknown" {
		t.Error("out of range unit should be unknown")
	}
}

func TestSet(t *testing.T) {
	s, err := NewSet("P1W")
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}
	if got := s.String(); got != "P1W" {
		t.Errorf("String() = %q, want P1W", got)
	}

	var empty *Set
	if empty.String() != "" {
		t.Error("nil set should format as empty")
	}
}

func TestToNaturalLanguage(t *testing.T) {
	p := MustParse("2017-09-27")
	ref := time.Date(2017, 9, 27, 0, 0, 0, 0, time.UTC)

	if got := p.ToNaturalLanguage(nil, ref); got != "2017-09-27" {
		t.Errorf("ToNaturalLanguage(nil) = %q", got)
	}

	today := RendererFunc(func(p *Property, ref time.Time) string {
		if DateValue(p) == ref.Format(time.DateOnly) {
			return "today"
		}
		return p.Timex()
	})
	if got := p.ToNaturalLanguage(today, ref); got != "today" {
		t.Errorf("ToNaturalLanguage() = %q, want today", got)
	}
}
