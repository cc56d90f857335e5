// File: time.go
// Title: Time Value Primitives
// Description: Time of day, time ranges and date ranges used by range
//              expansion and constraint resolution.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import (
	"fmt"
	"time"
)

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
)

// Time is a time of day. Fields are not range checked; an hour of 24 is a
// valid end-of-day marker.
type Time struct {
	Hour   int
	Minute int
	Second int
}

// NewTimeFromMillis builds a Time from milliseconds since midnight
func NewTimeFromMillis(millis int64) Time {
	hour := millis / millisPerHour
	millis -= hour * millisPerHour
	minute := millis / millisPerMinute
	millis -= minute * millisPerMinute
	return Time{Hour: int(hour), Minute: int(minute), Second: int(millis / millisPerSecond)}
}

// Millis returns the milliseconds since midnight
func (t Time) Millis() int64 {
	return int64(t.Hour)*millisPerHour + int64(t.Minute)*millisPerMinute + int64(t.Second)*millisPerSecond
}

// String formats the time as hh:mm:ss
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// TimeRange is a half-open [Start, End) interval of times of day
type TimeRange struct {
	Start Time
	End   Time
}

// Overlaps reports whether r and o overlap
func (r TimeRange) Overlaps(o TimeRange) bool {
	return overlaps(r.bounds, o.bounds)
}

func (r TimeRange) bounds() (int64, int64) {
	return r.Start.Millis(), r.End.Millis()
}

func (r TimeRange) intersect(o TimeRange) TimeRange {
	start, end := intersectBounds(r.bounds, o.bounds)
	return TimeRange{Start: NewTimeFromMillis(start), End: NewTimeFromMillis(end)}
}

// DateRange is a half-open [Start, End) interval of calendar instants
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether r and o overlap
func (r DateRange) Overlaps(o DateRange) bool {
	return overlaps(r.bounds, o.bounds)
}

// Contains reports whether t lies within [Start, End)
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

func (r DateRange) bounds() (int64, int64) {
	return r.Start.UnixMilli(), r.End.UnixMilli()
}

func (r DateRange) intersect(o DateRange) DateRange {
	result := r
	if o.Start.After(result.Start) {
		result.Start = o.Start
	}
	if o.End.Before(result.End) {
		result.End = o.End
	}
	return result
}

func overlaps(a, b func() (int64, int64)) bool {
	s1, e1 := a()
	s2, e2 := b()
	return (e1 > s2 && s1 <= s2) || (s1 < e2 && s1 >= s2)
}

func intersectBounds(a, b func() (int64, int64)) (int64, int64) {
	s1, e1 := a()
	s2, e2 := b()
	return max(s1, s2), min(e1, e2)
}
