// File: constraints.go
// Title: Constraint Collapsing
// Description: Merges overlapping time and date range constraints until no
//              pair overlaps, then orders the survivors by start.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import "sort"

type span[R any] interface {
	bounds() (int64, int64)
	intersect(R) R
}

// CollapseTimeRanges merges overlapping time ranges. Two overlapping ranges
// are replaced by their intersection. The input slice is not modified.
func CollapseTimeRanges(ranges []TimeRange) []TimeRange {
	return collapse(ranges)
}

// CollapseDateRanges merges overlapping date ranges. Two overlapping ranges
// are replaced by their intersection. The input slice is not modified.
func CollapseDateRanges(ranges []DateRange) []DateRange {
	return collapse(ranges)
}

func collapse[R span[R]](ranges []R) []R {
	result := make([]R, len(ranges))
	copy(result, ranges)

	for {
		merged, ok := collapseOnce(result)
		if !ok {
			break
		}
		result = merged
	}

	sort.SliceStable(result, func(i, j int) bool {
		si, _ := result[i].bounds()
		sj, _ := result[j].bounds()
		return si < sj
	})
	return result
}

// collapseOnce replaces the first overlapping pair with its intersection
func collapseOnce[R span[R]](ranges []R) ([]R, bool) {
	if len(ranges) <= 1 {
		return ranges, false
	}
	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			if !overlaps(ranges[i].bounds, ranges[j].bounds) {
				continue
			}
			merged := ranges[i].intersect(ranges[j])
			next := make([]R, 0, len(ranges)-1)
			next = append(next, ranges[:i]...)
			next = append(next, ranges[i+1:j]...)
			next = append(next, ranges[j+1:]...)
			return append(next, merged), true
		}
	}
	return ranges, false
}
