// ============================================================================
// mDW Chronos - Temporal Expression Service
// ============================================================================
//
// Package:     version
// Description: Version information for the chronos binaries
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Chronos service and CLI version
	Chronos = "1.0.0"

	// API version of the gRPC surface
	API = "v1"
)

// Build metadata, set via -ldflags "-X ..."
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns a one-line description of the running build
func Info() string {
	return fmt.Sprintf("chronos %s (api %s, commit %s, built %s, %s %s/%s)",
		Chronos, API, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
