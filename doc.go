// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ecies implements hybrid public-key encryption over Curve25519 and
// Curve448: an ephemeral-static ECDH key agreement, HKDF-SHA-512 key
// derivation, and AES-256-GCM authenticated encryption, assembled into a
// single fixed-offset binary envelope that is optionally Base64-wrapped.
//
// Encrypt and Decrypt are the owning-buffer entry points; EncryptInto and
// DecryptInto are caller-buffer variants sized with the envelope package's
// CalcBinarySize/CalcBase64Size helpers. GenerateKeypair produces the
// hex-encoded keypairs both operations consume.
//
// Every failure collapses into one of three closed, curve-independent error
// taxonomies (KeygenError, EncryptError, DecryptError); see errors.go.
// Cryptographic failures - a wrong key, a tampered envelope, a failed KDF -
// are deliberately indistinguishable from one another as ErrInternal, so a
// caller can never use this library's errors as a decryption oracle.
package ecies
