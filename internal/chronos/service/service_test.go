package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	mdwerror "github.com/msto63/mdw-chronos/foundation/core/error"
	"github.com/msto63/mdw-chronos/pkg/timex"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(DefaultConfig())
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	t.Cleanup(svc.Close)
	return svc
}

func TestNewService(t *testing.T) {
	svc, err := NewService(Config{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	defer svc.Close()

	if svc.cache != nil {
		t.Error("cache should be disabled")
	}
	if svc.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", svc.Location())
	}
}

func TestService_Parse(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	result, err := svc.Parse(ctx, " XXXX-09-WXX-2 ")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.Timex != "XXXX-09-WXX-2" {
		t.Errorf("Timex = %q", result.Timex)
	}
	if result.Canonical != "XXXX-09-W02" {
		t.Errorf("Canonical = %q, want XXXX-09-W02", result.Canonical)
	}
	if !reflect.DeepEqual(result.Types, []string{"daterange"}) {
		t.Errorf("Types = %v, want [daterange]", result.Types)
	}
}

func TestService_Parse_ReturnsClones(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Parse(ctx, "2017-09-27")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	*first.Property.Year = 1999

	second, err := svc.Parse(ctx, "2017-09-27")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := second.Property.Timex(); got != "2017-09-27" {
		t.Errorf("cached property was mutated: %q", got)
	}

	hits, misses, _ := svc.CacheStats()
	if hits != 1 || misses != 1 {
		t.Errorf("CacheStats() = %d hits, %d misses, want 1 and 1", hits, misses)
	}
}

func TestService_InvalidInput(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"Parse", func() error { _, err := svc.Parse(ctx, "  "); return err }},
		{"Infer", func() error { _, err := svc.Infer(ctx, ""); return err }},
		{"Format", func() error { _, err := svc.Format(ctx, nil); return err }},
		{"FormatFields", func() error { _, err := svc.FormatFields(ctx, nil); return err }},
		{"Expand", func() error { _, err := svc.Expand(ctx, ""); return err }},
		{"Resolve", func() error { _, err := svc.Resolve(ctx, nil, time.Time{}); return err }},
		{"Evaluate", func() error { _, err := svc.Evaluate(ctx, nil, []string{"T10"}); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
				t.Errorf("error = %v, want %s", err, mdwerror.CodeInvalidInput)
			}
		})
	}
}

func TestService_CanceledContext(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Parse(ctx, "2017"); err != context.Canceled {
		t.Errorf("Parse() error = %v, want context.Canceled", err)
	}
	if _, err := svc.Resolve(ctx, []string{"2017"}, time.Time{}); err != context.Canceled {
		t.Errorf("Resolve() error = %v, want context.Canceled", err)
	}
}

func TestService_FormatFields(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.FormatFields(context.Background(), map[string]string{
		"year": "2017", "month": "09", "dayOfMonth": "27", "hour": "14",
	})
	if err != nil {
		t.Fatalf("FormatFields() error = %v", err)
	}
	if got != "2017-09-27T14" {
		t.Errorf("FormatFields() = %q, want 2017-09-27T14", got)
	}

	_, err = svc.FormatFields(context.Background(), map[string]string{"year": "twenty"})
	if !timex.IsMalformedInput(err) {
		t.Errorf("FormatFields() error = %v, want malformed input", err)
	}
}

func TestService_Expand(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		timex    string
		expected ExpandResult
	}{
		{"2017-09", ExpandResult{Timex: "2017-09", Kind: "datetimerange", Start: "2017-09-01", End: "2017-10-01", Duration: "P1M"}},
		{"2017-W37", ExpandResult{Timex: "2017-W37", Kind: "datetimerange", Start: "2017-09-11", End: "2017-09-18", Duration: "P7D"}},
		{"TEV", ExpandResult{Timex: "TEV", Kind: "timerange", Start: "T16", End: "T20", Duration: "PT4H"}},
		{"(2017-09-27T14,2017-09-27T16,PT2H)", ExpandResult{
			Timex: "(2017-09-27T14,2017-09-27T16,PT2H)", Kind: "datetimerange",
			Start: "2017-09-27T14", End: "2017-09-27T16", Duration: "PT2H",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.timex, func(t *testing.T) {
			got, err := svc.Expand(ctx, tt.timex)
			if err != nil {
				t.Fatalf("Expand() error = %v", err)
			}
			if *got != tt.expected {
				t.Errorf("Expand() = %+v, want %+v", *got, tt.expected)
			}
		})
	}

	if _, err := svc.Expand(ctx, "T10"); !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Errorf("Expand(T10) error = %v, want %s", err, mdwerror.CodeInvalidArgument)
	}
}

func TestService_Resolve(t *testing.T) {
	svc := newTestService(t)
	ref := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	res, err := svc.Resolve(context.Background(), []string{"XXXX-WXX-5"}, ref)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(res.Values) != 2 {
		t.Fatalf("len(Values) = %d, want 2", len(res.Values))
	}
	if res.Values[0].Value != "2024-01-05" || res.Values[1].Value != "2024-01-12" {
		t.Errorf("Values = %+v", res.Values)
	}
}

func TestService_Evaluate(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Evaluate(context.Background(),
		[]string{"XXXX-WXX-3"}, []string{"(2017-09-01,2017-09-15,P14D)"})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if want := []string{"2017-09-06", "2017-09-13"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}
}

func TestService_ParseReference(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("zone data unavailable: %v", err)
	}
	svc, _ := NewService(Config{Location: berlin})
	defer svc.Close()

	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2024-01-10", time.Date(2024, 1, 10, 0, 0, 0, 0, berlin)},
		{"2024-01-10 14:30", time.Date(2024, 1, 10, 14, 30, 0, 0, berlin)},
		{"2024-01-10T14:30:00Z", time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := svc.ParseReference(tt.input)
			if err != nil {
				t.Fatalf("ParseReference() error = %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("ParseReference(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}

	if got, err := svc.ParseReference(""); err != nil || !got.IsZero() {
		t.Errorf("ParseReference(\"\") = %v, %v", got, err)
	}
	if _, err := svc.ParseReference("next tuesday"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("ParseReference() error = %v, want %s", err, mdwerror.CodeInvalidInput)
	}
}
