// File: types.go
// Title: Semantic Type Tags
// Description: The closed set of semantic types a TIMEX property can carry.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import "strings"

// Type is a single semantic tag
type Type uint16

const (
	TypePresent Type = 1 << iota
	TypeDefinite
	TypeDate
	TypeDateRange
	TypeDuration
	TypeTime
	TypeTimeRange
	TypeDateTime
	TypeDateTimeRange
)

var typeNames = []struct {
	t    Type
	name string
}{
	{TypePresent, "present"},
	{TypeDefinite, "definite"},
	{TypeDate, "date"},
	{TypeDateRange, "daterange"},
	{TypeDuration, "duration"},
	{TypeTime, "time"},
	{TypeTimeRange, "timerange"},
	{TypeDateTime, "datetime"},
	{TypeDateTimeRange, "datetimerange"},
}

// String returns the lowercase tag name
func (t Type) String() string {
	for _, n := range typeNames {
		if n.t == t {
			return n.name
		}
	}
	return "unknown"
}

// TypeSet is a set of semantic tags
type TypeSet uint16

// NewTypeSet builds a set from tags
func NewTypeSet(types ...Type) TypeSet {
	var s TypeSet
	for _, t := range types {
		s = s.Add(t)
	}
	return s
}

// Has reports whether t is in the set
func (s TypeSet) Has(t Type) bool {
	return s&TypeSet(t) != 0
}

// Add returns the set with t added
func (s TypeSet) Add(t Type) TypeSet {
	return s | TypeSet(t)
}

// Len returns the number of tags in the set
func (s TypeSet) Len() int {
	n := 0
	for _, tn := range typeNames {
		if s.Has(tn.t) {
			n++
		}
	}
	return n
}

// Strings returns the tag names in declaration order
func (s TypeSet) Strings() []string {
	names := make([]string, 0, len(typeNames))
	for _, n := range typeNames {
		if s.Has(n.t) {
			names = append(names, n.name)
		}
	}
	return names
}

// String joins the tag names with commas
func (s TypeSet) String() string {
	return strings.Join(s.Strings(), ",")
}
