// File: error_test.go
// Title: Core Error Tests
// Description: Tests for error construction, wrapping and code lookup.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-12-14

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should be set")
	}
}

func TestWithCode_SetsSeverity(t *testing.T) {
	tests := []struct {
		code     Code
		expected Severity
	}{
		{CodeInvalidArgument, SeverityLow},
		{CodeMalformedInput, SeverityLow},
		{CodeServiceInitialization, SeverityHigh},
		{CodeServiceUnavailable, SeverityCritical},
		{CodeInternal, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.expected {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.expected)
			}
		})
	}
}

func TestWithCode_KeepsExplicitSeverity(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want critical", err.Severity())
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := New("bad month").WithCode(CodeMalformedInput).WithDetail("field", "month")
	wrapped := Wrap(base, "parse failed")

	if wrapped.Code() != CodeMalformedInput {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeMalformedInput)
	}
	if wrapped.Error() != "parse failed: bad month" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if wrapped.Details()["field"] != "month" {
		t.Error("details should be carried over")
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestWrap_StandardError(t *testing.T) {
	wrapped := Wrap(errors.New("io"), "load")
	if wrapped.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeUnknown)
	}
}

func TestHasCode_ThroughFmtWrapping(t *testing.T) {
	base := New("bad").WithCode(CodeInvalidArgument)
	err := fmt.Errorf("outer: %w", base)

	if !HasCode(err, CodeInvalidArgument) {
		t.Error("HasCode should see through fmt.Errorf wrapping")
	}
	if HasCode(errors.New("plain"), CodeInvalidArgument) {
		t.Error("plain errors have no code")
	}
	if GetCode(nil) != CodeUnknown {
		t.Error("GetCode(nil) should be CodeUnknown")
	}
	if GetSeverity(err) != SeverityLow {
		t.Errorf("GetSeverity() = %v, want low", GetSeverity(err))
	}
}

func TestError_String(t *testing.T) {
	err := New("boom").WithCode(CodeInternal).WithOperation("timex.Parse").WithRequestID("req-1")
	s := err.String()
	for _, want := range []string{"[INTERNAL]", "boom", "timex.Parse", "req-1"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestError_MarshalJSON(t *testing.T) {
	err := New("boom").WithCode(CodeInvalidInput).WithOperation("op").WithDetail("k", "v")
	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal error = %v", jerr)
	}
	if decoded["code"] != "INVALID_INPUT" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "op" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
}

func TestCode_IsClientError(t *testing.T) {
	if !CodeMalformedInput.IsClientError() {
		t.Error("MALFORMED_INPUT is a client error")
	}
	if CodeInternal.IsClientError() {
		t.Error("INTERNAL is not a client error")
	}
}
