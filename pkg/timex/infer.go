// File: infer.go
// Title: Type Inference
// Description: Derives the semantic types of a Property from which of its
//              fields are populated.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

// Infer returns the semantic types of p
func Infer(p *Property) TypeSet {
	var types TypeSet

	if isPresent(p) {
		types = types.Add(TypePresent)
	}
	if isDefinite(p) {
		types = types.Add(TypeDefinite)
	}
	if isDate(p) {
		types = types.Add(TypeDate)
	}
	if isDateRange(p) {
		types = types.Add(TypeDateRange)
	}
	if isDuration(p) {
		types = types.Add(TypeDuration)
	}
	if isTime(p) {
		types = types.Add(TypeTime)
	}
	if isTimeRange(p) {
		types = types.Add(TypeTimeRange)
	}

	// derived types, order matters
	if types.Has(TypePresent) {
		types = types.Add(TypeDate).Add(TypeTime)
	}
	if types.Has(TypeTime) && types.Has(TypeDuration) {
		types = types.Add(TypeTimeRange)
	}
	if types.Has(TypeDate) && types.Has(TypeTime) {
		types = types.Add(TypeDateTime)
	}
	if types.Has(TypeDate) && types.Has(TypeDuration) {
		types = types.Add(TypeDateRange)
	}
	if types.Has(TypeDateTime) && types.Has(TypeDuration) {
		types = types.Add(TypeDateTimeRange)
	}
	if types.Has(TypeDate) && types.Has(TypeTimeRange) {
		types = types.Add(TypeDateTimeRange)
	}

	return types
}

func isPresent(p *Property) bool {
	return p.Now
}

func isDuration(p *Property) bool {
	return p.Years != nil || p.Months != nil || p.Weeks != nil || p.Days != nil ||
		p.Hours != nil || p.Minutes != nil || p.Seconds != nil
}

func isTime(p *Property) bool {
	return p.Time != nil
}

func isDate(p *Property) bool {
	return p.DayOfMonth != nil || p.DayOfWeek != nil
}

func isTimeRange(p *Property) bool {
	return p.PartOfDay != ""
}

func isDateRange(p *Property) bool {
	return p.DayOfMonth == nil && p.DayOfWeek == nil &&
		(p.Year != nil || p.Month != nil || p.Season != "" || p.WeekOfYear != nil || p.WeekOfMonth != nil)
}

func isDefinite(p *Property) bool {
	return p.Year != nil && p.Month != nil && p.DayOfMonth != nil
}
