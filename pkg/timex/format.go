// File: format.go
// Title: TIMEX Formatter
// Description: Serializes a Property back to canonical TIMEX text.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Format returns the canonical TIMEX text of p, or "" when p carries nothing
// that can be expressed.
func Format(p *Property) string {
	types := p.Types()

	switch {
	case types.Has(TypePresent):
		return PresentRef

	case (types.Has(TypeDateTimeRange) || types.Has(TypeDateRange) || types.Has(TypeTimeRange)) &&
		types.Has(TypeDuration):
		r := ExpandDateTimeRange(p)
		return fmt.Sprintf("(%s,%s,%s)", Format(r.Start), Format(r.End), Format(r.Duration))

	case types.Has(TypeDateTimeRange):
		return formatDate(p) + formatTimeRange(p)

	case types.Has(TypeDateRange):
		return formatDateRange(p)

	case types.Has(TypeTimeRange):
		return formatTimeRange(p)

	case types.Has(TypeDateTime):
		return formatDate(p) + formatTime(p)

	case types.Has(TypeDuration):
		return formatDuration(p)

	case types.Has(TypeDate):
		return formatDate(p)

	case types.Has(TypeTime):
		return formatTime(p)
	}
	return ""
}

func formatDuration(p *Property) string {
	switch {
	case p.Years != nil:
		return "P" + formatAmount(*p.Years) + "Y"
	case p.Months != nil:
		return "P" + formatAmount(*p.Months) + "M"
	case p.Weeks != nil:
		return "P" + formatAmount(*p.Weeks) + "W"
	case p.Days != nil:
		return "P" + formatAmount(*p.Days) + "D"
	case p.Hours != nil:
		return "PT" + formatAmount(*p.Hours) + "H"
	case p.Minutes != nil:
		return "PT" + formatAmount(*p.Minutes) + "M"
	case p.Seconds != nil:
		return "PT" + formatAmount(*p.Seconds) + "S"
	}
	return ""
}

// formatAmount keeps the scale the amount was written with, so 1.50 stays 1.50
func formatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

func formatTime(p *Property) string {
	t := p.Time
	switch {
	case t.Minute == 0 && t.Second == 0:
		return "T" + FixedFormatNumber(t.Hour, 2)
	case t.Second == 0:
		return fmt.Sprintf("T%s:%s", FixedFormatNumber(t.Hour, 2), FixedFormatNumber(t.Minute, 2))
	default:
		return fmt.Sprintf("T%s:%s:%s",
			FixedFormatNumber(t.Hour, 2), FixedFormatNumber(t.Minute, 2), FixedFormatNumber(t.Second, 2))
	}
}

func formatDate(p *Property) string {
	switch {
	case p.Year != nil && p.Month != nil && p.DayOfMonth != nil:
		return fmt.Sprintf("%s-%s-%s",
			FixedFormatNumber(*p.Year, 4), FixedFormatNumber(*p.Month, 2), FixedFormatNumber(*p.DayOfMonth, 2))
	case p.Month != nil && p.DayOfMonth != nil:
		return fmt.Sprintf("XXXX-%s-%s", FixedFormatNumber(*p.Month, 2), FixedFormatNumber(*p.DayOfMonth, 2))
	case p.Month != nil && p.WeekOfMonth != nil && p.DayOfWeek != nil:
		return fmt.Sprintf("XXXX-%s-WXX-%d-%d", FixedFormatNumber(*p.Month, 2), *p.WeekOfMonth, *p.DayOfWeek)
	case p.DayOfWeek != nil:
		return fmt.Sprintf("XXXX-WXX-%d", *p.DayOfWeek)
	case p.DayOfMonth != nil:
		return "XXXX-XX-" + FixedFormatNumber(*p.DayOfMonth, 2)
	}
	return ""
}

func formatDateRange(p *Property) string {
	switch {
	case p.Year != nil && p.WeekOfYear != nil && p.Weekend:
		return fmt.Sprintf("%s-W%s-WE", FixedFormatNumber(*p.Year, 4), FixedFormatNumber(*p.WeekOfYear, 2))
	case p.Year != nil && p.WeekOfYear != nil:
		return fmt.Sprintf("%s-W%s", FixedFormatNumber(*p.Year, 4), FixedFormatNumber(*p.WeekOfYear, 2))
	case p.Year != nil && p.Season != "":
		return FixedFormatNumber(*p.Year, 4) + "-" + p.Season
	case p.Season != "":
		return p.Season
	case p.Year != nil && p.Month != nil:
		return FixedFormatNumber(*p.Year, 4) + "-" + FixedFormatNumber(*p.Month, 2)
	case p.Year != nil:
		return FixedFormatNumber(*p.Year, 4)
	case p.Month != nil && p.WeekOfMonth != nil && p.DayOfWeek != nil:
		return fmt.Sprintf("XXXX-%s-WXX-%d-%d", FixedFormatNumber(*p.Month, 2), *p.WeekOfMonth, *p.DayOfWeek)
	case p.Month != nil && p.WeekOfMonth != nil:
		return fmt.Sprintf("XXXX-%s-W%s", FixedFormatNumber(*p.Month, 2), FixedFormatNumber(*p.WeekOfMonth, 2))
	case p.Month != nil:
		return "XXXX-" + FixedFormatNumber(*p.Month, 2)
	}
	return ""
}

func formatTimeRange(p *Property) string {
	if p.PartOfDay != "" {
		return "T" + p.PartOfDay
	}
	return ""
}
