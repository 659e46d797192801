// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecies

import (
	"github.com/luxfi/log"

	"github.com/luxfi/ecies/internal/obs"
)

// SetLogger wires a logger into the module's diagnostic path (spec.md §6).
// Nothing secret - no plaintext, no key material, no shared secrets - is
// ever written through it; it only ever carries envelope fingerprints (see
// internal/obs.Fingerprint) alongside human-readable status lines, and only
// when diagnostics are enabled via internal/diag.Enable.
func SetLogger(l log.Logger) {
	obs.SetLogger(l)
}
