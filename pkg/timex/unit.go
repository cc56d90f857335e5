// File: unit.go
// Title: Duration Units
// Description: Named duration units and a builder for single-unit
//              duration properties.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Unit is a duration unit
type Unit int

// Duration units, largest first
const (
	UnitYear Unit = iota
	UnitMonth
	UnitWeek
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
)

var unitNames = []string{"year", "month", "week", "day", "hour", "minute", "second"}

// String returns the lower-case unit name
func (u Unit) String() string {
	if u < UnitYear || u > UnitSecond {
		return "unknown"
	}
	return unitNames[u]
}

// ParseUnit parses a unit name. Plural forms are accepted.
func ParseUnit(s string) (Unit, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for i, n := range unitNames {
		if n == name {
			return Unit(i), nil
		}
	}
	return 0, invalidArgument("timex.ParseUnit", "unknown duration unit %q", s)
}

// Duration builds a duration property of amount units
func (u Unit) Duration(amount decimal.Decimal) *Property {
	p := &Property{}
	a := &amount
	switch u {
	case UnitYear:
		p.Years = a
	case UnitMonth:
		p.Months = a
	case UnitWeek:
		p.Weeks = a
	case UnitDay:
		p.Days = a
	case UnitHour:
		p.Hours = a
	case UnitMinute:
		p.Minutes = a
	case UnitSecond:
		p.Seconds = a
	}
	return p
}
