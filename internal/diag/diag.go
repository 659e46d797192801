// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package diag implements the process-wide diagnostic stderr toggle
// described in spec.md §6: a peripheral utility, not a core concern, that
// lets a caller turn verbose stderr output on or off without plumbing a
// logger through every call. When disabled, Printf is a no-op returning 0,
// mirroring the original design's redirected-printf contract
// (cecies_disable_fprintf / cecies_printf_enabled).
package diag

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/luxfi/ecies/internal/obs"
)

var enabled atomic.Bool

// Enable turns on diagnostic stderr output.
func Enable() {
	enabled.Store(true)
}

// Disable turns off diagnostic stderr output. Printf becomes a no-op.
func Disable() {
	enabled.Store(false)
}

// Enabled reports the current state of the toggle.
func Enabled() bool {
	return enabled.Load()
}

// Printf writes a diagnostic line to stderr and forwards it through the
// package-level logger, if diagnostics are enabled; otherwise it is a no-op
// that returns 0, matching the original C API's disabled-printf contract.
func Printf(format string, args ...any) int {
	if !enabled.Load() {
		return 0
	}
	n, err := fmt.Fprintf(os.Stderr, format, args...)
	if err != nil {
		return n
	}
	obs.Logger().Debug(fmt.Sprintf(format, args...))
	return n
}
