// File: regex.go
// Title: TIMEX Grammar Tables
// Description: Compiled regular expressions for the date, time and period
//              sub-grammars. Each alternative yields named capture groups.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import "regexp"

type grammar int

const (
	grammarDate grammar = iota
	grammarTime
	grammarPeriod
)

var grammars = map[grammar][]*regexp.Regexp{
	grammarDate: {
		// date
		regexp.MustCompile(`^(?P<year>\d\d\d\d)-(?P<month>\d\d)-(?P<dayOfMonth>\d\d)$`),
		regexp.MustCompile(`^XXXX-WXX-(?P<dayOfWeek>\d)$`),
		regexp.MustCompile(`^XXXX-(?P<month>\d\d)-(?P<dayOfMonth>\d\d)$`),
		regexp.MustCompile(`^XXXX-XX-(?P<dayOfMonth>\d\d)$`),

		// daterange
		regexp.MustCompile(`^(?P<year>\d\d\d\d)$`),
		regexp.MustCompile(`^(?P<year>\d\d\d\d)-(?P<month>\d\d)$`),
		regexp.MustCompile(`^(?P<season>SP|SU|FA|WI)$`),
		regexp.MustCompile(`^(?P<year>\d\d\d\d)-(?P<season>SP|SU|FA|WI)$`),
		regexp.MustCompile(`^(?P<year>\d\d\d\d)-W(?P<weekOfYear>\d\d)$`),
		regexp.MustCompile(`^(?P<year>\d\d\d\d)-W(?P<weekOfYear>\d\d)-(?P<weekend>WE)$`),
		regexp.MustCompile(`^XXXX-(?P<month>\d\d)$`),
		regexp.MustCompile(`^XXXX-(?P<month>\d\d)-W(?P<weekOfMonth>\d\d)$`),
		regexp.MustCompile(`^XXXX-(?P<month>\d\d)-WXX-(?P<weekOfMonth>\d{1,2})$`),
		regexp.MustCompile(`^XXXX-(?P<month>\d\d)-WXX-(?P<weekOfMonth>\d)-(?P<dayOfWeek>\d)$`),
	},
	grammarTime: {
		// time
		regexp.MustCompile(`^T(?P<hour>\d\d)Z?$`),
		regexp.MustCompile(`^T(?P<hour>\d\d):(?P<minute>\d\d)Z?$`),
		regexp.MustCompile(`^T(?P<hour>\d\d):(?P<minute>\d\d):(?P<second>\d\d)Z?$`),

		// timerange
		regexp.MustCompile(`^T(?P<partOfDay>DT|NI|MO|AF|EV)$`),
	},
	grammarPeriod: {
		regexp.MustCompile(`^P(?P<amount>\d*\.?\d+)(?P<dateUnit>Y|M|W|D)$`),
		regexp.MustCompile(`^PT(?P<hourAmount>\d*\.?\d+)H(?:(?P<minuteAmount>\d*\.?\d+)M)?(?:(?P<secondAmount>\d*\.?\d+)S)?$`),
		regexp.MustCompile(`^PT(?P<minuteAmount>\d*\.?\d+)M(?:(?P<secondAmount>\d*\.?\d+)S)?$`),
		regexp.MustCompile(`^PT(?P<secondAmount>\d*\.?\d+)S$`),
	},
}

// extract applies every alternative of g to s and merges the non-blank named
// groups of all matching alternatives into fields. It reports whether any
// alternative matched.
func extract(g grammar, s string, fields map[string]string) bool {
	matched := false
	for _, re := range grammars[g] {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		matched = true
		for i, name := range re.SubexpNames() {
			if name == "" || m[i] == "" {
				continue
			}
			fields[name] = m[i]
		}
	}
	return matched
}
