// File: errors.go
// Title: Engine Errors
// Description: Constructors for the coded errors returned by the engine.
// Author: msto63
// Version: v0.1.0
// Created: 2025-12-14
// Modified: 2025-12-14

package timex

import (
	mdwerror "github.com/msto63/mdw-chronos/foundation/core/error"
)

func invalidArgument(operation, format string, args ...interface{}) error {
	return mdwerror.Newf(format, args...).
		WithCode(mdwerror.CodeInvalidArgument).
		WithOperation(operation)
}

func malformedInput(operation, field, value string, cause error) error {
	return mdwerror.Wrap(cause, "malformed "+field).
		WithCode(mdwerror.CodeMalformedInput).
		WithOperation(operation).
		WithDetail("field", field).
		WithDetail("value", value)
}

// IsInvalidArgument reports whether err is an invalid-argument error
func IsInvalidArgument(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidArgument)
}

// IsMalformedInput reports whether err is a malformed-input error
func IsMalformedInput(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeMalformedInput)
}
