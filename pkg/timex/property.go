// File: property.go
// Title: TIMEX Property
// Description: The partial date/time record produced by parsing a TIMEX
//              expression, with constructors, cloning and field assignment.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Season codes
const (
	SeasonSpring = "SP"
	SeasonSummer = "SU"
	SeasonFall   = "FA"
	SeasonWinter = "WI"
)

// Part-of-day codes
const (
	PartOfDayMorning   = "MO"
	PartOfDayAfternoon = "AF"
	PartOfDayEvening   = "EV"
	PartOfDayNight     = "NI"
	PartOfDayDaytime   = "DT"
)

// Property is a partial date/time value. Nil pointers and empty strings mark
// absent fields.
//
// Hour, minute and second are held together in Time: setting any one of them
// on a property without a time materializes a zero-filled Time, and clearing
// any one of them clears all three.
type Property struct {
	Now bool

	// Duration amounts
	Years   *decimal.Decimal
	Months  *decimal.Decimal
	Weeks   *decimal.Decimal
	Days    *decimal.Decimal
	Hours   *decimal.Decimal
	Minutes *decimal.Decimal
	Seconds *decimal.Decimal

	// Absolute date components
	Year        *int
	Month       *int
	DayOfMonth  *int
	DayOfWeek   *int // ISO 8601, Monday = 1
	Season      string
	WeekOfYear  *int
	Weekend     bool
	WeekOfMonth *int

	// Absolute time components
	Time      *Time
	PartOfDay string
}

// Int returns a pointer to v
func Int(v int) *int {
	return &v
}

// Amount returns a pointer to a decimal holding v
func Amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// FromDate builds a definite date from the calendar date of t
func FromDate(t time.Time) *Property {
	return &Property{
		Year:       Int(t.Year()),
		Month:      Int(int(t.Month())),
		DayOfMonth: Int(t.Day()),
	}
}

// FromDateTime builds a definite date with a time from t
func FromDateTime(t time.Time) *Property {
	p := FromDate(t)
	p.Time = &Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
	return p
}

// FromTime builds a time-only property
func FromTime(t Time) *Property {
	return &Property{Time: &t}
}

// Hour returns the hour or nil
func (p *Property) Hour() *int {
	if p.Time == nil {
		return nil
	}
	return Int(p.Time.Hour)
}

// Minute returns the minute or nil
func (p *Property) Minute() *int {
	if p.Time == nil {
		return nil
	}
	return Int(p.Time.Minute)
}

// Second returns the second or nil
func (p *Property) Second() *int {
	if p.Time == nil {
		return nil
	}
	return Int(p.Time.Second)
}

// SetHour sets the hour; nil clears the whole time
func (p *Property) SetHour(v *int) {
	if p.ensureTime(v) {
		p.Time.Hour = *v
	}
}

// SetMinute sets the minute; nil clears the whole time
func (p *Property) SetMinute(v *int) {
	if p.ensureTime(v) {
		p.Time.Minute = *v
	}
}

// SetSecond sets the second; nil clears the whole time
func (p *Property) SetSecond(v *int) {
	if p.ensureTime(v) {
		p.Time.Second = *v
	}
}

// ClearTime removes hour, minute and second
func (p *Property) ClearTime() {
	p.Time = nil
}

func (p *Property) ensureTime(v *int) bool {
	if v == nil {
		p.Time = nil
		return false
	}
	if p.Time == nil {
		p.Time = &Time{}
	}
	return true
}

// Types infers the semantic types of p
func (p *Property) Types() TypeSet {
	return Infer(p)
}

// Timex returns the canonical TIMEX text of p
func (p *Property) Timex() string {
	return Format(p)
}

// String returns the canonical TIMEX text of p
func (p *Property) String() string {
	return Format(p)
}

// Clone returns a deep copy of p
func (p *Property) Clone() *Property {
	c := *p
	c.Years = cloneDecimal(p.Years)
	c.Months = cloneDecimal(p.Months)
	c.Weeks = cloneDecimal(p.Weeks)
	c.Days = cloneDecimal(p.Days)
	c.Hours = cloneDecimal(p.Hours)
	c.Minutes = cloneDecimal(p.Minutes)
	c.Seconds = cloneDecimal(p.Seconds)
	c.Year = cloneInt(p.Year)
	c.Month = cloneInt(p.Month)
	c.DayOfMonth = cloneInt(p.DayOfMonth)
	c.DayOfWeek = cloneInt(p.DayOfWeek)
	c.WeekOfYear = cloneInt(p.WeekOfYear)
	c.WeekOfMonth = cloneInt(p.WeekOfMonth)
	if p.Time != nil {
		t := *p.Time
		c.Time = &t
	}
	return &c
}

// CloneDateTime returns a copy of p without any duration amounts
func (p *Property) CloneDateTime() *Property {
	c := p.Clone()
	c.stripDuration()
	return c
}

// CloneDuration returns a copy of p holding only its duration amounts
func (p *Property) CloneDuration() *Property {
	c := p.Clone()
	c.Year = nil
	c.Month = nil
	c.DayOfMonth = nil
	c.DayOfWeek = nil
	c.WeekOfYear = nil
	c.WeekOfMonth = nil
	c.Season = ""
	c.Weekend = false
	c.PartOfDay = ""
	c.Time = nil
	return c
}

func (p *Property) stripDuration() {
	p.Years = nil
	p.Months = nil
	p.Weeks = nil
	p.Days = nil
	p.Hours = nil
	p.Minutes = nil
	p.Seconds = nil
}

// AssignProperties applies captured grammar groups onto p. Blank values are
// ignored and unknown keys are skipped. A dateUnit group needs a companion
// amount group.
func (p *Property) AssignProperties(fields map[string]string) error {
	const op = "timex.AssignProperties"

	for key, value := range fields {
		if value == "" {
			continue
		}

		var err error
		switch key {
		case "year":
			p.Year, err = parseInt(value)
		case "month":
			p.Month, err = parseInt(value)
		case "dayOfMonth":
			p.DayOfMonth, err = parseInt(value)
		case "dayOfWeek":
			p.DayOfWeek, err = parseInt(value)
		case "season":
			p.Season = value
		case "weekOfYear":
			p.WeekOfYear, err = parseInt(value)
		case "weekend":
			p.Weekend = true
		case "weekOfMonth":
			p.WeekOfMonth, err = parseInt(value)
		case "hour":
			var v *int
			if v, err = parseInt(value); err == nil {
				p.SetHour(v)
			}
		case "minute":
			var v *int
			if v, err = parseInt(value); err == nil {
				p.SetMinute(v)
			}
		case "second":
			var v *int
			if v, err = parseInt(value); err == nil {
				p.SetSecond(v)
			}
		case "partOfDay":
			p.PartOfDay = value
		case "dateUnit":
			if err = p.assignDateDuration(value, fields["amount"]); err != nil {
				key, value = "amount", fields["amount"]
			}
		case "hourAmount":
			p.Hours, err = parseAmount(value)
		case "minuteAmount":
			p.Minutes, err = parseAmount(value)
		case "secondAmount":
			p.Seconds, err = parseAmount(value)
		case "now":
			p.Now = true
		}
		if err != nil {
			return malformedInput(op, key, value, err)
		}
	}
	return nil
}

func (p *Property) assignDateDuration(unit, amount string) error {
	if amount == "" {
		return nil
	}
	d, err := parseAmount(amount)
	if err != nil {
		return err
	}
	switch unit {
	case "Y":
		p.Years = d
	case "M":
		p.Months = d
	case "W":
		p.Weeks = d
	case "D":
		p.Days = d
	}
	return nil
}

func parseInt(s string) (*int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseAmount(s string) (*decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	return Int(*v)
}

func cloneDecimal(v *decimal.Decimal) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := *v
	return &d
}
