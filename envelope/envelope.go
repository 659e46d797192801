// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package envelope builds and parses the on-wire ECIES envelope:
//
//	offset  size  field
//	0       32    salt                 (HKDF salt)
//	32      16    iv                   (AES-GCM nonce)
//	48      16    gcm_tag              (AES-GCM authentication tag)
//	64      P     ephemeral_public_key (P = 32 for curve25519, 56 for curve448)
//	64+P    N     ciphertext           (N = plaintext length)
//
// The layout is fixed and unversioned: there is no magic byte and no length
// prefix anywhere in it (spec.md §3, §9). Decode relies entirely on the
// curve's known P and the total input length to recover N.
package envelope

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/luxfi/ecies/curve"
	"github.com/luxfi/ecies/kdf"
)

const (
	saltOffset = 0
	ivOffset   = saltOffset + kdf.SaltSize
	tagOffset  = ivOffset + kdf.IVSize
	tagSize    = 16
	headerSize = tagOffset + tagSize // 64
)

// ErrTooShort is returned when an envelope is shorter than the fixed header
// plus at least one plaintext byte.
var ErrTooShort = errors.New("envelope: too short to be a valid envelope")

// Fields is a parsed envelope's component parts, each a view into the
// binary envelope (no copies): the buffer passed to Decode, or the buffer
// DecodeBase64 decodes into.
type Fields struct {
	Salt         []byte
	IV           []byte
	GCMTag       []byte
	EphemeralPub []byte
	Ciphertext   []byte
}

// CalcBinarySize returns the exact size of the binary envelope that encoding
// plaintextLen bytes under c would produce: 64 + P + plaintextLen.
func CalcBinarySize(c curve.Curve, plaintextLen int) int {
	return headerSize + c.PointSize() + plaintextLen
}

// CalcBase64Size returns the exact size of the Base64 rendering of a binary
// envelope of binaryLen bytes, including the +1 the original C API reserves
// for a trailing NUL terminator. Go's base64 output carries no such
// terminator, so EncodeBase64 always returns a slice one byte shorter than
// this prediction.
func CalcBase64Size(binaryLen int) int {
	return ((binaryLen+2)/3)*4 + 1
}

// Encode concatenates the envelope fields in wire order.
func Encode(salt, iv, gcmTag, ephemeralPub, ciphertext []byte) ([]byte, error) {
	if len(salt) != kdf.SaltSize {
		return nil, fmt.Errorf("envelope: salt must be %d bytes, got %d", kdf.SaltSize, len(salt))
	}
	if len(iv) != kdf.IVSize {
		return nil, fmt.Errorf("envelope: iv must be %d bytes, got %d", kdf.IVSize, len(iv))
	}
	if len(gcmTag) != tagSize {
		return nil, fmt.Errorf("envelope: gcm tag must be %d bytes, got %d", tagSize, len(gcmTag))
	}

	out := make([]byte, 0, headerSize+len(ephemeralPub)+len(ciphertext))
	out = append(out, salt...)
	out = append(out, iv...)
	out = append(out, gcmTag...)
	out = append(out, ephemeralPub...)
	out = append(out, ciphertext...)
	return out, nil
}

// EncodeBase64 is Encode followed by standard, padded Base64 encoding
// (RFC 4648).
func EncodeBase64(salt, iv, gcmTag, ephemeralPub, ciphertext []byte) ([]byte, error) {
	bin, err := Encode(salt, iv, gcmTag, ephemeralPub, ciphertext)
	if err != nil {
		return nil, err
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(bin)))
	base64.StdEncoding.Encode(out, bin)
	return out, nil
}

// Decode parses a binary envelope produced for curve c. The pointSize
// argument is implicit in c.
func Decode(c curve.Curve, env []byte) (Fields, error) {
	p := c.PointSize()
	if len(env) < headerSize+p+1 {
		return Fields{}, ErrTooShort
	}
	return Fields{
		Salt:         env[saltOffset:ivOffset],
		IV:           env[ivOffset:tagOffset],
		GCMTag:       env[tagOffset:headerSize],
		EphemeralPub: env[headerSize : headerSize+p],
		Ciphertext:   env[headerSize+p:],
	}, nil
}

// DecodeBase64 first Base64-decodes env (tolerating a single trailing NUL
// byte left over from a C-style string buffer), then parses it as in
// Decode.
func DecodeBase64(c curve.Curve, env []byte) (Fields, error) {
	if len(env) > 0 && env[len(env)-1] == 0 {
		env = env[:len(env)-1]
	}
	bin := make([]byte, base64.StdEncoding.DecodedLen(len(env)))
	n, err := base64.StdEncoding.Decode(bin, env)
	if err != nil {
		return Fields{}, fmt.Errorf("envelope: invalid base64: %w", err)
	}
	return Decode(c, bin[:n])
}
