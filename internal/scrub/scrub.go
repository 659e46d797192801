// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package scrub wipes secret-bearing buffers before they go out of scope.
// A plain `for i := range b { b[i] = 0 }` loop is legal for the compiler to
// optimize away once it can prove b is never read again; runtime.KeepAlive
// denies it that proof.
package scrub

import "runtime"

// Bytes zeroes b in place. Call it on every exit path of a function that
// handled key material, success or failure.
func Bytes(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Array32 zeroes a fixed [32]byte buffer in place.
func Array32(b *[32]byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Array16 zeroes a fixed [16]byte buffer in place.
func Array16(b *[16]byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
