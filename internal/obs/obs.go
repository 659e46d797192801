// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package obs holds the module's single logger handle and a helper for
// tagging diagnostic log lines with a short, non-secret envelope
// fingerprint, so two concurrent encrypt/decrypt calls are distinguishable
// in logs without ever writing plaintext or key material to them.
package obs

import (
	"encoding/hex"
	"sync/atomic"

	"github.com/luxfi/log"
	"github.com/zeebo/blake3"
)

var logger atomic.Pointer[log.Logger]

func init() {
	l := log.NewTestLogger(log.InfoLevel)
	logger.Store(&l)
}

// SetLogger replaces the package-level logger. A nil value restores the
// default test logger.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewTestLogger(log.InfoLevel)
	}
	logger.Store(&l)
}

// Logger returns the current package-level logger.
func Logger() log.Logger {
	return *logger.Load()
}

// Fingerprint returns a short hex tag derived from a BLAKE3 hash of fields
// that are safe to log: never plaintext, never key material. It exists
// purely so an operator can correlate two log lines about the same
// envelope without the logger ever seeing the envelope's secret fields.
func Fingerprint(publicFields ...[]byte) string {
	h := blake3.New()
	for _, f := range publicFields {
		_, _ = h.Write(f)
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
