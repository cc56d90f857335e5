// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level parsing, formatters and the logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-12-14

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelStrings(t *testing.T) {
	if LevelWarn.String() != "warn" || LevelWarn.ShortString() != "WRN" {
		t.Errorf("unexpected warn strings: %s %s", LevelWarn.String(), LevelWarn.ShortString())
	}
	if Level(99).String() != "unknown" {
		t.Errorf("unexpected string for invalid level")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("text"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(text) = %v, %v", f, err)
	}
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestJSONFormatter(t *testing.T) {
	entry := &Entry{
		Timestamp: time.Date(2025, 1, 24, 10, 0, 0, 0, time.UTC),
		Level:     LevelInfo,
		Message:   "parsed",
		Logger:    "chronos",
		RequestID: "req-1",
		Fields:    Fields{"timex": "2017-09-08"},
	}

	out, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	want := map[string]string{
		"level":      "info",
		"message":    "parsed",
		"logger":     "chronos",
		"request_id": "req-1",
		"timex":      "2017-09-08",
		"timestamp":  "2025-01-24T10:00:00Z",
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("data[%q] = %v, want %v", k, data[k], v)
		}
	}
}

func TestTextFormatter(t *testing.T) {
	entry := &Entry{
		Timestamp: time.Date(2025, 1, 24, 10, 0, 0, 0, time.UTC),
		Level:     LevelWarn,
		Message:   "slow",
		Logger:    "grpc",
		Fields:    Fields{"b": 2, "a": 1},
		Error:     errors.New("boom"),
	}

	out, err := NewTextFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := `10:00:00 [WRN] {grpc} slow [a=1 b=2] error="boom"` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info message should be filtered")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn message should be written")
	}
	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should not be enabled")
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf})
	logger := base.WithName("svc").WithRequestID("abc").WithField("component", "resolver")

	logger.Debug("hello", Fields{"n": 3})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if data["logger"] != "svc" || data["request_id"] != "abc" || data["component"] != "resolver" {
		t.Errorf("context missing from entry: %v", data)
	}
	if data["n"] != float64(3) {
		t.Errorf("field n = %v, want 3", data["n"])
	}

	// base logger must not see derived context
	buf.Reset()
	base.Info("plain")
	if strings.Contains(buf.String(), "component") {
		t.Error("WithField leaked into parent logger")
	}
}

func TestLoggerCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf, EnableCaller: true})
	logger.Info("where")

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Errorf("caller not reported: %s", buf.String())
	}
}

// logThrough adds one frame between the test and the logger
func logThrough(logger *Logger, message string) {
	logger.LogDepth(1, LevelInfo, message, nil)
}

func TestLoggerCaller_Depth(t *testing.T) {
	tests := []struct {
		name string
		log  func(*Logger)
	}{
		{"direct", func(l *Logger) { l.Warn("direct") }},
		{"error with err", func(l *Logger) { l.ErrorWithErr("failed", errors.New("boom")) }},
		{"depth zero", func(l *Logger) { l.LogDepth(0, LevelInfo, "zero", nil) }},
		{"wrapper", func(l *Logger) { logThrough(l, "wrapped") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf, EnableCaller: true})
			tt.log(logger)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("invalid JSON output: %v (%s)", err, buf.String())
			}
			caller, _ := data["caller"].(string)
			if !strings.HasPrefix(caller, "logger_test.go:") {
				t.Errorf("caller = %q, want logger_test.go:<line>", caller)
			}
		})
	}
}

type failingWriter struct{ calls int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("disk full")
}

func TestLoggerWriteFailure(t *testing.T) {
	w := &failingWriter{}
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: w})

	logger.Info("first")
	logger.Error("second")

	if w.calls != 2 {
		t.Errorf("writes = %d, want 2", w.calls)
	}
}
