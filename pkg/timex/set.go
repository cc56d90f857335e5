// File: set.go
// Title: TIMEX Set
// Description: A recurring expression wrapping the period TIMEX that
//              describes its interval, such as P1W for "every week".
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

// Set is a recurring TIMEX. Timex holds the recurrence interval.
type Set struct {
	Timex *Property
}

// NewSet parses s as the recurrence interval of a set
func NewSet(s string) (*Set, error) {
	p, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &Set{Timex: p}, nil
}

// String returns the canonical TIMEX of the interval
func (s *Set) String() string {
	if s == nil || s.Timex == nil {
		return ""
	}
	return s.Timex.Timex()
}
