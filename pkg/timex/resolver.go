// File: resolver.go
// Title: Human Resolver
// Description: Resolves TIMEX values against a reference date into
//              human-facing dates, times, ranges and durations. Ambiguous
//              dates yield both the past and the future candidate.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import (
	"time"

	"github.com/jinzhu/now"
)

// Resolution entry types
const (
	EntryDate          = "date"
	EntryTime          = "time"
	EntryDateTime      = "datetime"
	EntryDateRange     = "daterange"
	EntryTimeRange     = "timerange"
	EntryDateTimeRange = "datetimerange"
	EntryDuration      = "duration"
)

// NotResolved is the value used when a range has no concrete calendar window
const NotResolved = "not resolved"

// Entry is a single resolved value. Point types carry Value, range types
// carry Start and End.
type Entry struct {
	Timex string `json:"timex"`
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Resolution is the result of Resolve
type Resolution struct {
	Values []Entry `json:"values"`
}

type clockWindow struct {
	start, end string
}

var partOfDayWindows = map[string]clockWindow{
	PartOfDayMorning:   {"08:00:00", "12:00:00"},
	PartOfDayAfternoon: {"12:00:00", "16:00:00"},
	PartOfDayEvening:   {"16:00:00", "20:00:00"},
	PartOfDayNight:     {"20:00:00", "24:00:00"},
	PartOfDayDaytime:   {"08:00:00", "18:00:00"},
}

// Resolve resolves every TIMEX in timexes against ref. A zero ref means now.
func Resolve(timexes []string, ref time.Time) (*Resolution, error) {
	if ref.IsZero() {
		ref = time.Now()
	}

	resolution := &Resolution{Values: []Entry{}}
	for _, s := range timexes {
		p, err := Parse(s)
		if err != nil {
			return nil, err
		}
		entries, err := resolveTimex(p, ref)
		if err != nil {
			return nil, err
		}
		resolution.Values = append(resolution.Values, entries...)
	}
	return resolution, nil
}

func resolveTimex(p *Property, ref time.Time) ([]Entry, error) {
	types := p.Types()

	switch {
	case types.Has(TypePresent):
		return resolvePresent(ref), nil
	case types.Has(TypeDateTimeRange):
		return resolveDateTimeRange(p, ref), nil
	case types.Has(TypeDefinite) && types.Has(TypeTime):
		return []Entry{{Timex: p.Timex(), Type: EntryDateTime, Value: DateTimeValue(p)}}, nil
	case types.Has(TypeDefinite) && types.Has(TypeDateRange):
		r := ExpandDateTimeRange(p)
		return []Entry{{Timex: p.Timex(), Type: EntryDateRange, Start: DateValue(r.Start), End: DateValue(r.End)}}, nil
	case types.Has(TypeDateRange):
		return resolveDateRange(p, ref), nil
	case types.Has(TypeDefinite):
		return []Entry{{Timex: p.Timex(), Type: EntryDate, Value: DateValue(p)}}, nil
	case types.Has(TypeTimeRange):
		return resolveClockRange(p)
	case types.Has(TypeDateTime):
		return resolveDateTime(p, ref), nil
	case types.Has(TypeDuration):
		return []Entry{{Timex: p.Timex(), Type: EntryDuration, Value: DurationValue(p)}}, nil
	case types.Has(TypeDate):
		return resolveDate(p, ref), nil
	case types.Has(TypeTime):
		return []Entry{{Timex: p.Timex(), Type: EntryTime, Value: TimeValue(p)}}, nil
	}
	return nil, nil
}

func resolvePresent(ref time.Time) []Entry {
	return []Entry{{Timex: PresentRef, Type: EntryDateTime, Value: DateTimeValue(FromDateTime(ref))}}
}

func resolveDate(p *Property, ref time.Time) []Entry {
	var entries []Entry
	for _, inst := range instantiate(p, ref) {
		entries = append(entries, Entry{Timex: p.Timex(), Type: EntryDate, Value: DateValue(inst)})
	}
	return entries
}

func resolveDateTime(p *Property, ref time.Time) []Entry {
	var entries []Entry
	for _, inst := range instantiate(p, ref) {
		entries = append(entries, Entry{Timex: p.Timex(), Type: EntryDateTime, Value: DateTimeValue(inst)})
	}
	return entries
}

func resolveDateTimeRange(p *Property, ref time.Time) []Entry {
	anchors := []*Property{p}
	if !isDefinite(p) {
		if inst := instantiate(p, ref); len(inst) > 0 {
			anchors = inst
		}
	}

	var entries []Entry
	for _, anchor := range anchors {
		if p.PartOfDay != "" {
			window := partOfDayWindow(p.PartOfDay)
			date := DateValue(anchor)
			entries = append(entries, Entry{
				Timex: p.Timex(),
				Type:  EntryDateTimeRange,
				Start: date + " " + window.start,
				End:   date + " " + window.end,
			})
			continue
		}
		r := ExpandDateTimeRange(anchor)
		entries = append(entries, Entry{
			Timex: p.Timex(),
			Type:  EntryDateTimeRange,
			Start: DateTimeValue(r.Start),
			End:   DateTimeValue(r.End),
		})
	}
	return entries
}

func resolveDateRange(p *Property, ref time.Time) []Entry {
	timex := p.Timex()
	dateRange := func(r DateRange) Entry {
		return Entry{Timex: timex, Type: EntryDateRange, Start: DateValue(FromDate(r.Start)), End: DateValue(FromDate(r.End))}
	}

	switch {
	case p.Season != "":
		return []Entry{{Timex: timex, Type: EntryDateRange, Value: NotResolved}}
	case p.Year != nil && p.Month != nil:
		return []Entry{dateRange(monthDateRange(*p.Year, *p.Month))}
	case p.Year != nil && p.WeekOfYear != nil:
		return []Entry{dateRange(yearWeekDateRange(*p.Year, *p.WeekOfYear, p.Weekend))}
	case p.Month != nil && p.WeekOfMonth != nil:
		return []Entry{
			dateRange(monthWeekDateRange(ref.Year()-1, *p.Month, *p.WeekOfMonth)),
			dateRange(monthWeekDateRange(ref.Year(), *p.Month, *p.WeekOfMonth)),
		}
	case p.Month != nil:
		return []Entry{
			dateRange(monthDateRange(ref.Year()-1, *p.Month)),
			dateRange(monthDateRange(ref.Year(), *p.Month)),
		}
	case p.Year != nil:
		start := now.With(date(*p.Year, 1, 1)).BeginningOfYear()
		return []Entry{dateRange(DateRange{Start: start, End: start.AddDate(1, 0, 0)})}
	}
	return nil
}

func resolveClockRange(p *Property) ([]Entry, error) {
	if p.PartOfDay != "" {
		window := partOfDayWindow(p.PartOfDay)
		return []Entry{{Timex: p.Timex(), Type: EntryTimeRange, Start: window.start, End: window.end}}, nil
	}

	r, err := ExpandTimeRange(p)
	if err != nil {
		return nil, err
	}
	return []Entry{{Timex: p.Timex(), Type: EntryTimeRange, Start: TimeValue(r.Start), End: TimeValue(r.End)}}, nil
}

func partOfDayWindow(code string) clockWindow {
	if w, ok := partOfDayWindows[code]; ok {
		return w
	}
	return clockWindow{NotResolved, NotResolved}
}

// instantiate returns the most recent past and the nearest future definite
// dates matching the date fields of p. Weekdays are searched strictly before
// and after ref; other forms treat a match on ref itself as the future one.
func instantiate(p *Property, ref time.Time) []*Property {
	refYear, refMonth, refDay := ref.Date()

	var past, future [3]int
	switch {
	case p.Month != nil && p.DayOfMonth != nil:
		m, d := *p.Month, *p.DayOfMonth
		if m < int(refMonth) || (m == int(refMonth) && d < refDay) {
			past, future = [3]int{refYear, m, d}, [3]int{refYear + 1, m, d}
		} else {
			past, future = [3]int{refYear - 1, m, d}, [3]int{refYear, m, d}
		}

	case p.Month != nil && p.WeekOfMonth != nil && p.DayOfWeek != nil:
		nth := func(year int) time.Time {
			return nthWeekdayOfMonth(year, *p.Month, *p.WeekOfMonth, isoWeekday(*p.DayOfWeek))
		}
		today := date(refYear, int(refMonth), refDay)
		if this := nth(refYear); this.Before(today) {
			past, future = dateParts(this), dateParts(nth(refYear+1))
		} else {
			past, future = dateParts(nth(refYear-1)), dateParts(this)
		}

	case p.DayOfWeek != nil:
		day := isoWeekday(*p.DayOfWeek)
		past, future = dateParts(DateOfLastDay(day, ref)), dateParts(DateOfNextDay(day, ref))

	case p.DayOfMonth != nil:
		d := *p.DayOfMonth
		thisMonth := date(refYear, int(refMonth), 1)
		if d < refDay {
			past, future = monthDay(thisMonth, d), monthDay(thisMonth.AddDate(0, 1, 0), d)
		} else {
			past, future = monthDay(thisMonth.AddDate(0, -1, 0), d), monthDay(thisMonth, d)
		}

	default:
		return nil
	}

	return []*Property{withDate(p, past), withDate(p, future)}
}

func withDate(p *Property, ymd [3]int) *Property {
	c := p.Clone()
	c.Year = Int(ymd[0])
	c.Month = Int(ymd[1])
	c.DayOfMonth = Int(ymd[2])
	c.DayOfWeek = nil
	c.WeekOfMonth = nil
	return c
}

func dateParts(t time.Time) [3]int {
	y, m, d := t.Date()
	return [3]int{y, int(m), d}
}

func monthDay(firstOfMonth time.Time, day int) [3]int {
	return [3]int{firstOfMonth.Year(), int(firstOfMonth.Month()), day}
}

// monthDateRange is the calendar month; December ends on January 1 of the
// following year
func monthDateRange(year, month int) DateRange {
	start := now.With(date(year, month, 1)).BeginningOfMonth()
	return DateRange{Start: start, End: start.AddDate(0, 1, 0)}
}

// yearWeekDateRange is ISO week w of year, or its Saturday and Sunday
func yearWeekDateRange(year, week int, weekend bool) DateRange {
	start := isoWeekStart(year, week)
	if weekend {
		start = start.AddDate(0, 0, 5)
		return DateRange{Start: start, End: start.AddDate(0, 0, 2)}
	}
	return DateRange{Start: start, End: start.AddDate(0, 0, 7)}
}

// monthWeekDateRange is the Monday-based week containing day 1+(w-1)*7 of
// the month
func monthWeekDateRange(year, month, week int) DateRange {
	start := now.With(date(year, month, 1+(week-1)*7)).Monday()
	return DateRange{Start: start, End: start.AddDate(0, 0, 7)}
}

// nthWeekdayOfMonth returns the n-th given weekday of the month
func nthWeekdayOfMonth(year, month, n int, day time.Weekday) time.Time {
	first := date(year, month, 1)
	offset := (int(day) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+(n-1)*7)
}
