// File: value.go
// Title: Value Renderers
// Description: Renders properties as resolution values: ISO dates, clock
//              times and durations in seconds.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Seconds per duration unit used by DurationValue
var (
	secondsPerYear   = decimal.NewFromInt(31536000)
	secondsPerMonth  = decimal.NewFromInt(2592000)
	secondsPerWeek   = decimal.NewFromInt(604800)
	secondsPerDay    = decimal.NewFromInt(86400)
	secondsPerHour   = decimal.NewFromInt(3600)
	secondsPerMinute = decimal.NewFromInt(60)
)

// DateValue renders a definite date as YYYY-MM-DD, otherwise ""
func DateValue(p *Property) string {
	if !isDefinite(p) {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s",
		FixedFormatNumber(*p.Year, 4), FixedFormatNumber(*p.Month, 2), FixedFormatNumber(*p.DayOfMonth, 2))
}

// TimeValue renders the time as hh:mm:ss, otherwise ""
func TimeValue(p *Property) string {
	if p.Time == nil {
		return ""
	}
	return fmt.Sprintf("%s:%s:%s",
		FixedFormatNumber(p.Time.Hour, 2), FixedFormatNumber(p.Time.Minute, 2), FixedFormatNumber(p.Time.Second, 2))
}

// DateTimeValue renders a definite date and its time separated by a space
func DateTimeValue(p *Property) string {
	return DateValue(p) + " " + TimeValue(p)
}

// DurationValue renders the largest duration unit of p in seconds, otherwise ""
func DurationValue(p *Property) string {
	switch {
	case p.Years != nil:
		return secondsPerYear.Mul(*p.Years).String()
	case p.Months != nil:
		return secondsPerMonth.Mul(*p.Months).String()
	case p.Weeks != nil:
		return secondsPerWeek.Mul(*p.Weeks).String()
	case p.Days != nil:
		return secondsPerDay.Mul(*p.Days).String()
	case p.Hours != nil:
		return secondsPerHour.Mul(*p.Hours).String()
	case p.Minutes != nil:
		return secondsPerMinute.Mul(*p.Minutes).String()
	case p.Seconds != nil:
		return p.Seconds.String()
	}
	return ""
}
