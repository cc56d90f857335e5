// File: doc.go
// Title: TIMEX Engine
// Description: Package documentation for the TIMEX expression engine.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

// Package timex parses, formats, classifies and resolves TIMEX expressions,
// the compact textual grammar used by temporal extractors to describe fully
// or partially specified dates, times, durations and ranges.
//
// A TIMEX string is parsed into a Property, a partial date/time record whose
// populated fields determine its semantic types:
//
//	p, _ := timex.Parse("XXXX-WXX-5")   // any Friday
//	p.Types().Has(timex.TypeDate)       // true
//	p.Types().Has(timex.TypeDefinite)   // false
//
// Underspecified values are resolved either against a reference date
// (Resolve, producing human-facing values) or against constraint expressions
// (Evaluate, narrowing candidates to concrete TIMEX values):
//
//	res, _ := timex.Resolve([]string{"XXXX-WXX-5"}, ref)
//	out, _ := timex.Evaluate([]string{"XXXX-WXX-5"}, []string{"2017-09"})
//
// All functions are pure and safe for concurrent use. Properties are plain
// values; callers that derive one property from another use Clone before
// mutating.
//
// Supported grammar:
//
//	PRESENT_REF                     reference to the present
//	P<n>Y P<n>M P<n>W P<n>D         date durations
//	PT<n>H PT<n>M PT<n>S            time durations
//	YYYY-MM-DD XXXX-MM-DD           dates
//	XXXX-WXX-d XXXX-XX-DD           weekday, day of month
//	YYYY YYYY-MM SP SU FA WI        date ranges and seasons
//	YYYY-Www YYYY-Www-WE            ISO weeks and weekends
//	XXXX-MM XXXX-MM-Www             months and weeks of month
//	XXXX-MM-WXX-w-d                 n-th weekday of a month
//	Thh Thh:mm Thh:mm:ss            times (optional trailing Z)
//	TMO TAF TEV TNI TDT             parts of day
//	(start,end,duration)            compound ranges
package timex
