// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package obs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprintDeterministic(t *testing.T) {
	a := Fingerprint([]byte("salt"), []byte("iv"))
	b := Fingerprint([]byte("salt"), []byte("iv"))
	require.Equal(t, a, b)
	require.Len(t, a, 16) // 8 bytes, hex-encoded
}

func TestFingerprintDiffersOnInput(t *testing.T) {
	a := Fingerprint([]byte("salt1"))
	b := Fingerprint([]byte("salt2"))
	require.NotEqual(t, a, b)
}

func TestLoggerDefaultNotNil(t *testing.T) {
	require.NotNil(t, Logger())
}
