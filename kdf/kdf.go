// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kdf derives the AES-256 key and GCM IV this module's envelope
// format needs from an ECDH shared secret, via HMAC-SHA-512-based HKDF
// (spec.md §4.2). Both curve variants share this single derivation step;
// only the shared secret's width differs upstream.
package kdf

import (
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// SaltSize is the length of the random salt mixed into HKDF-Extract and
	// carried in the envelope so the recipient can reproduce the derivation.
	SaltSize = 32
	// AESKeySize is the length of the derived AES-256 key.
	AESKeySize = 32
	// IVSize is the length of the derived AES-GCM nonce.
	IVSize = 16

	expandSize = AESKeySize + IVSize
)

// Derive runs HKDF-Extract(salt, sharedSecret) then HKDF-Expand(.., 48) and
// splits the output into an AES-256 key and a GCM IV. salt must be SaltSize
// bytes: fresh random bytes on encrypt, or the salt read back out of the
// envelope on decrypt.
func Derive(sharedSecret, salt []byte) (aesKey [AESKeySize]byte, iv [IVSize]byte, err error) {
	r := hkdf.New(sha512.New, sharedSecret, salt, nil)
	out := make([]byte, expandSize)
	if _, err = io.ReadFull(r, out); err != nil {
		return aesKey, iv, err
	}
	copy(aesKey[:], out[:AESKeySize])
	copy(iv[:], out[AESKeySize:])
	return aesKey, iv, nil
}
