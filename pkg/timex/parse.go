// File: parse.go
// Title: TIMEX Parser
// Description: Dispatches TIMEX text to the date, time and period grammars
//              and assigns the captured fields onto a Property.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import "strings"

// PresentRef is the TIMEX literal for the present moment
const PresentRef = "PRESENT_REF"

// Parse parses TIMEX text. Parsing is best effort: text that matches no
// grammar yields an empty property rather than an error. An error is
// returned only when a captured numeric field cannot be converted.
func Parse(s string) (*Property, error) {
	p := &Property{}
	if err := parseInto(s, p); err != nil {
		return nil, err
	}
	return p, nil
}

// MustParse is like Parse but panics on error. It is intended for constants
// and tests.
func MustParse(s string) *Property {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseInto(s string, p *Property) error {
	switch {
	case s == PresentRef:
		p.Now = true
		return nil
	case strings.HasPrefix(s, "P"):
		return extractDuration(s, p)
	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"):
		return extractStartEndRange(s, p)
	default:
		return extractDateTime(s, p)
	}
}

func extractDuration(s string, p *Property) error {
	fields := make(map[string]string)
	extract(grammarPeriod, s, fields)
	return p.AssignProperties(fields)
}

// extractStartEndRange parses (start,end,duration). The end is derivable from
// start and duration and is not parsed.
func extractStartEndRange(s string, p *Property) error {
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 3 {
		return nil
	}
	if err := extractDateTime(parts[0], p); err != nil {
		return err
	}
	return extractDuration(parts[2], p)
}

func extractDateTime(s string, p *Property) error {
	fields := make(map[string]string)
	if i := strings.Index(s, "T"); i < 0 {
		extract(grammarDate, s, fields)
	} else {
		extract(grammarDate, s[:i], fields)
		extract(grammarTime, s[i:], fields)
	}
	return p.AssignProperties(fields)
}
