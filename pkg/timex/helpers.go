// File: helpers.go
// Title: Range Expansion and Calendar Arithmetic
// Description: Expands range-typed properties into start/end/duration triples
//              and adds durations to dates and times with calendar overflow.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
)

// anchorYear stands in for an absent year in calendar arithmetic
const anchorYear = 2001

// Range is the expansion of a range-typed property
type Range struct {
	Start    *Property
	End      *Property
	Duration *Property
}

var partOfDayLiterals = map[string]string{
	PartOfDayMorning:   Morning,
	PartOfDayAfternoon: Afternoon,
	PartOfDayEvening:   Evening,
	PartOfDayNight:     Night,
	PartOfDayDaytime:   Daytime,
}

// ExpandDateTimeRange expands p into a start, end and duration.
//
// A property with a duration is split into a pure anchor and a pure duration
// and the end is anchor + duration. Otherwise a property with a year becomes
// a month window when it has a month and a year window when it does not.
// Anything else expands to empty properties. ISO week windows are built by
// ExpandWeekRange.
func ExpandDateTimeRange(p *Property) Range {
	if p.Types().Has(TypeDuration) {
		start := p.CloneDateTime()
		duration := p.CloneDuration()
		return Range{Start: start, End: DateTimeAdd(start, duration), Duration: duration}
	}

	if p.Year != nil {
		switch {
		case p.Month != nil:
			start := now.With(date(*p.Year, *p.Month, 1)).BeginningOfMonth()
			return Range{
				Start:    FromDate(start),
				End:      FromDate(start.AddDate(0, 1, 0)),
				Duration: &Property{Months: Amount(1)},
			}
		default:
			start := now.With(date(*p.Year, 1, 1)).BeginningOfYear()
			return Range{
				Start:    FromDate(start),
				End:      FromDate(start.AddDate(1, 0, 0)),
				Duration: &Property{Years: Amount(1)},
			}
		}
	}

	return Range{Start: &Property{}, End: &Property{}, Duration: &Property{}}
}

// ExpandWeekRange expands a year and ISO week into Monday through the next
// Monday (P7D), or into Saturday through Monday (P2D) for a weekend.
func ExpandWeekRange(p *Property) (Range, error) {
	const op = "timex.ExpandWeekRange"

	if p.Year == nil || p.WeekOfYear == nil {
		return Range{}, invalidArgument(op, "argument must carry a year and a week: %q", p.Timex())
	}

	r := yearWeekDateRange(*p.Year, *p.WeekOfYear, p.Weekend)
	days := int64(r.End.Sub(r.Start).Hours() / 24)
	return Range{
		Start:    FromDate(r.Start),
		End:      FromDate(r.End),
		Duration: &Property{Days: Amount(days)},
	}, nil
}

// ExpandTimeRange expands a timerange property. A part of day is first
// replaced by its canonical range literal.
func ExpandTimeRange(p *Property) (Range, error) {
	const op = "timex.ExpandTimeRange"

	if !p.Types().Has(TypeTimeRange) {
		return Range{}, invalidArgument(op, "argument must be a timerange: %q", p.Timex())
	}

	if p.PartOfDay != "" {
		literal, ok := partOfDayLiterals[p.PartOfDay]
		if !ok {
			return Range{}, invalidArgument(op, "unrecognized part of day timerange: %q", p.PartOfDay)
		}
		p = MustParse(literal)
	}

	start := &Property{}
	if p.Time != nil {
		t := *p.Time
		start.Time = &t
	}
	duration := p.CloneDuration()
	return Range{Start: start, End: TimeAdd(start, duration), Duration: duration}, nil
}

// DateAdd adds the date part of duration to start.
//
// A weekday-only start moves by the rounded number of days. A start with
// month and day moves by days (or weeks as days), years or months on a real
// calendar, using an anchor year when the start has none; fields absent on
// the start stay absent. Any other start is returned unchanged.
func DateAdd(start, duration *Property) *Property {
	if start.DayOfWeek != nil {
		result := start.CloneDateTime()
		if duration.Days != nil {
			result.DayOfWeek = Int(shiftWeekday(*result.DayOfWeek, roundInt(duration.Days)))
		}
		return result
	}

	if start.Month != nil && start.DayOfMonth != nil {
		year := anchorYear
		if start.Year != nil {
			year = *start.Year
		}

		var t time.Time
		switch {
		case duration.Days != nil:
			t = date(year, *start.Month, *start.DayOfMonth).AddDate(0, 0, int(duration.Days.IntPart()))
		case duration.Weeks != nil:
			t = date(year, *start.Month, *start.DayOfMonth).AddDate(0, 0, int(duration.Weeks.Mul(decimal.NewFromInt(7)).IntPart()))
		case duration.Years != nil && start.Year != nil:
			t = addMonthsClamped(year, *start.Month, *start.DayOfMonth, 12*roundInt(duration.Years))
		case duration.Months != nil:
			t = addMonthsClamped(year, *start.Month, *start.DayOfMonth, roundInt(duration.Months))
		default:
			return start.Clone()
		}

		result := start.CloneDateTime()
		if start.Year != nil {
			result.Year = Int(t.Year())
		}
		result.Month = Int(int(t.Month()))
		result.DayOfMonth = Int(t.Day())
		return result
	}

	return start.Clone()
}

// TimeAdd adds the time part of duration to start. Hour overflow rolls into
// the date or weekday; minute and second overflow carry once into the next
// larger unit.
func TimeAdd(start, duration *Property) *Property {
	result := start.Clone()

	switch {
	case duration.Hours != nil:
		hour := valueOf(result.Hour()) + roundInt(duration.Hours)
		if hour > 23 {
			days := hour / 24
			hour %= 24
			result.SetHour(&hour)
			shiftDays(result, days)
		} else {
			result.SetHour(&hour)
		}

	case duration.Minutes != nil:
		minute := valueOf(result.Minute()) + roundInt(duration.Minutes)
		if minute > 59 {
			result.SetHour(Int(valueOf(result.Hour()) + 1))
			minute %= 60
		}
		result.SetMinute(&minute)

	case duration.Seconds != nil:
		second := valueOf(result.Second()) + roundInt(duration.Seconds)
		if second > 59 {
			result.SetMinute(Int(valueOf(result.Minute()) + 1))
			second %= 60
		}
		result.SetSecond(&second)
	}

	return result
}

// DateTimeAdd adds duration to both the date and the time of start
func DateTimeAdd(start, duration *Property) *Property {
	return TimeAdd(DateAdd(start, duration), duration)
}

// DateFromTimex converts p to a UTC instant. Absent fields default to
// 2001-01-01 00:00:00.
func DateFromTimex(p *Property) time.Time {
	year, month, day := anchorYear, 1, 1
	if p.Year != nil {
		year = *p.Year
	}
	if p.Month != nil {
		month = *p.Month
	}
	if p.DayOfMonth != nil {
		day = *p.DayOfMonth
	}
	t := TimeFromTimex(p)
	return time.Date(year, time.Month(month), day, t.Hour, t.Minute, t.Second, 0, time.UTC)
}

// TimeFromTimex returns the time of p, zero when absent
func TimeFromTimex(p *Property) Time {
	if p.Time == nil {
		return Time{}
	}
	return *p.Time
}

// DateRangeFromTimex expands p into a concrete date range
func DateRangeFromTimex(p *Property) DateRange {
	r := ExpandDateTimeRange(p)
	return DateRange{Start: DateFromTimex(r.Start), End: DateFromTimex(r.End)}
}

// TimeRangeFromTimex expands a timerange property into a concrete time range
func TimeRangeFromTimex(p *Property) (TimeRange, error) {
	r, err := ExpandTimeRange(p)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: TimeFromTimex(r.Start), End: TimeFromTimex(r.End)}, nil
}

func shiftDays(p *Property, days int) {
	switch {
	case p.Year != nil && p.Month != nil && p.DayOfMonth != nil:
		t := date(*p.Year, *p.Month, *p.DayOfMonth).AddDate(0, 0, days)
		p.Year = Int(t.Year())
		p.Month = Int(int(t.Month()))
		p.DayOfMonth = Int(t.Day())
	case p.Month != nil && p.DayOfMonth != nil:
		// the year stays absent
		t := date(anchorYear, *p.Month, *p.DayOfMonth).AddDate(0, 0, days)
		p.Month = Int(int(t.Month()))
		p.DayOfMonth = Int(t.Day())
	case p.DayOfWeek != nil:
		p.DayOfWeek = Int(shiftWeekday(*p.DayOfWeek, days))
	}
}

// shiftWeekday moves an ISO weekday by n days, wrapping within 1..7
func shiftWeekday(day, n int) int {
	return ((day-1+n)%7+7)%7 + 1
}

// addMonthsClamped adds n months and clamps the day to the target month
func addMonthsClamped(year, month, day, n int) time.Time {
	first := date(year, month, 1).AddDate(0, n, 0)
	last := now.With(first).EndOfMonth().Day()
	return date(first.Year(), int(first.Month()), min(day, last))
}

// isoWeekStart returns the Monday of ISO week w of year
func isoWeekStart(year, week int) time.Time {
	return now.With(date(year, 1, 4)).Monday().AddDate(0, 0, (week-1)*7)
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func roundInt(d *decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}

func valueOf(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
