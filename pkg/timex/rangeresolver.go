// File: rangeresolver.go
// Title: Range Resolver
// Description: Narrows candidate TIMEX values using constraint TIMEX values:
//              durations are anchored, then dates, times and time ranges are
//              projected onto the constraints.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

// Evaluate resolves candidates against constraints and returns the resulting
// properties without duplicates, in first-seen order. Constraint kinds that
// are absent leave the candidates unchanged.
func Evaluate(candidates, constraints []string) ([]*Property, error) {
	timexConstraints := make([]*Property, 0, len(constraints))
	for _, c := range constraints {
		p, err := Parse(c)
		if err != nil {
			return nil, err
		}
		timexConstraints = append(timexConstraints, p)
	}

	stages := []func([]string, []*Property) ([]string, error){
		resolveDurations,
		resolveByDateRangeConstraints,
		resolveByTimeConstraints,
		resolveByTimeRangeConstraints,
	}

	current := candidates
	for _, stage := range stages {
		next, err := stage(current, timexConstraints)
		if err != nil {
			return nil, err
		}
		current = next
	}

	current = removeDuplicates(current)
	results := make([]*Property, 0, len(current))
	for _, s := range current {
		p, err := Parse(s)
		if err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, nil
}

func resolveDurations(candidates []string, constraints []*Property) ([]string, error) {
	results := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		p, err := Parse(candidate)
		if err != nil {
			return nil, err
		}
		if !p.Types().Has(TypeDuration) {
			results = append(results, candidate)
			continue
		}
		for _, constraint := range constraints {
			types := constraint.Types()
			switch {
			case types.Has(TypeDateTime):
				results = append(results, DateTimeAdd(constraint, p).Timex())
			case types.Has(TypeTime):
				results = append(results, TimeAdd(constraint, p).Timex())
			}
		}
	}
	return results, nil
}

func resolveByDateRangeConstraints(candidates []string, constraints []*Property) ([]string, error) {
	var ranges []DateRange
	for _, c := range constraints {
		if c.Types().Has(TypeDateRange) {
			ranges = append(ranges, DateRangeFromTimex(c))
		}
	}
	ranges = CollapseDateRanges(ranges)
	if len(ranges) == 0 {
		return candidates, nil
	}

	var results []string
	for _, candidate := range candidates {
		p, err := Parse(candidate)
		if err != nil {
			return nil, err
		}
		for _, r := range ranges {
			results = append(results, resolveDateAgainstConstraint(p, r)...)
		}
	}
	return removeDuplicates(results), nil
}

func resolveDateAgainstConstraint(p *Property, constraint DateRange) []string {
	var results []string

	switch {
	case p.Month != nil && p.DayOfMonth != nil:
		for year := constraint.Start.Year(); year <= constraint.End.Year(); year++ {
			t := p.Clone()
			t.Year = Int(year)
			results = append(results, resolveDefiniteAgainstConstraint(t, constraint)...)
		}

	case p.DayOfWeek != nil:
		day := isoWeekday(*p.DayOfWeek)
		for _, d := range DatesMatchingDay(day, constraint.Start, constraint.End) {
			t := p.Clone()
			t.DayOfWeek = nil
			t.Year = Int(d.Year())
			t.Month = Int(int(d.Month()))
			t.DayOfMonth = Int(d.Day())
			results = append(results, t.Timex())
		}

	case p.Time != nil:
		for day := constraint.Start; !day.After(constraint.End); day = Tomorrow(day) {
			t := p.Clone()
			t.Year = Int(day.Year())
			t.Month = Int(int(day.Month()))
			t.DayOfMonth = Int(day.Day())
			results = append(results, resolveDefiniteAgainstConstraint(t, constraint)...)
		}
	}

	return results
}

func resolveDefiniteAgainstConstraint(p *Property, constraint DateRange) []string {
	if constraint.Contains(DateFromTimex(p)) {
		return []string{p.Timex()}
	}
	return nil
}

func resolveByTimeConstraints(candidates []string, constraints []*Property) ([]string, error) {
	var times []Time
	for _, c := range constraints {
		if c.Types().Has(TypeTime) {
			times = append(times, TimeFromTimex(c))
		}
	}
	if len(times) == 0 {
		return candidates, nil
	}

	var results []string
	for _, candidate := range candidates {
		p, err := Parse(candidate)
		if err != nil {
			return nil, err
		}
		types := p.Types()
		if !types.Has(TypeDate) || types.Has(TypeTime) {
			results = append(results, p.Timex())
			continue
		}
		for _, t := range times {
			resolved := p.Clone()
			resolved.Time = &Time{Hour: t.Hour, Minute: t.Minute, Second: t.Second}
			results = append(results, resolved.Timex())
		}
	}
	return removeDuplicates(results), nil
}

func resolveByTimeRangeConstraints(candidates []string, constraints []*Property) ([]string, error) {
	var ranges []TimeRange
	for _, c := range constraints {
		if !c.Types().Has(TypeTimeRange) {
			continue
		}
		r, err := TimeRangeFromTimex(c)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	ranges = CollapseTimeRanges(ranges)
	if len(ranges) == 0 {
		return candidates, nil
	}

	var results []string
	for _, candidate := range candidates {
		p, err := Parse(candidate)
		if err != nil {
			return nil, err
		}
		types := p.Types()
		switch {
		case types.Has(TypeTimeRange):
			resolved, err := resolveTimeRange(p, ranges)
			if err != nil {
				return nil, err
			}
			results = append(results, resolved...)
		case types.Has(TypeTime):
			results = append(results, resolveTime(p, ranges)...)
		}
	}
	return removeDuplicates(results), nil
}

func resolveTimeRange(p *Property, constraints []TimeRange) ([]string, error) {
	candidate, err := TimeRangeFromTimex(p)
	if err != nil {
		return nil, err
	}

	var results []string
	for _, constraint := range constraints {
		if !candidate.Overlaps(constraint) {
			continue
		}
		start := NewTimeFromMillis(max(candidate.Start.Millis(), constraint.Start.Millis()))

		resolved := p.Clone()
		resolved.PartOfDay = ""
		resolved.Hours = nil
		resolved.Minutes = nil
		resolved.Seconds = nil
		resolved.Time = &start
		results = append(results, resolved.Timex())
	}
	return results, nil
}

func resolveTime(p *Property, constraints []TimeRange) []string {
	var results []string
	t := TimeFromTimex(p).Millis()
	for _, constraint := range constraints {
		if t >= constraint.Start.Millis() && t < constraint.End.Millis() {
			results = append(results, p.Timex())
		}
	}
	return results
}

func removeDuplicates(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
