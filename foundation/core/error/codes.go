// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the Chronos service so that
//              callers, transports and logs can classify failures without
//              matching on message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-12-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-12-14 v0.2.0: Reduced to the codes used by the temporal engine and service

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Input handling
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeMalformedInput  Code = "MALFORMED_INPUT"

	// Service
	CodeServiceUnavailable    Code = "SERVICE_UNAVAILABLE"
	CodeServiceInitialization Code = "SERVICE_INITIALIZATION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsClientError reports whether the code describes a problem with the
// caller's input rather than with the service itself.
func (c Code) IsClientError() bool {
	switch c {
	case CodeInvalidInput, CodeInvalidArgument, CodeMalformedInput, CodeNotFound:
		return true
	}
	return false
}
