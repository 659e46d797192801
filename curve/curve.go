// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package curve defines the closed set of Montgomery curves the ecies
// module supports, and the per-curve scalar/point validity checks the
// encrypt/decrypt engine relies on.
package curve

import (
	"crypto/subtle"
	"fmt"

	"github.com/cloudflare/circl/dh/x448"
	"golang.org/x/crypto/curve25519"
)

// Curve selects the Montgomery curve used for ECDH key agreement.
type Curve int

const (
	// Curve25519 gives roughly 128-bit security.
	Curve25519 Curve = iota + 1
	// Curve448 gives roughly 224-bit security.
	Curve448
)

// String implements fmt.Stringer.
func (c Curve) String() string {
	switch c {
	case Curve25519:
		return "curve25519"
	case Curve448:
		return "curve448"
	default:
		return fmt.Sprintf("curve(%d)", int(c))
	}
}

// Valid reports whether c is one of the closed set of known curves.
func (c Curve) Valid() bool {
	switch c {
	case Curve25519, Curve448:
		return true
	default:
		return false
	}
}

// ScalarSize returns the private scalar length in bytes for c.
func (c Curve) ScalarSize() int {
	switch c {
	case Curve25519:
		return 32
	case Curve448:
		return x448.Size
	default:
		return 0
	}
}

// PointSize returns the X-only public point length in bytes for c. It is
// always equal to ScalarSize for the Montgomery curves this package supports.
func (c Curve) PointSize() int {
	return c.ScalarSize()
}

// HexScalarLen returns the number of hex characters a private scalar decodes
// to/from for c.
func (c Curve) HexScalarLen() int {
	return c.ScalarSize() * 2
}

// HexPointLen returns the number of hex characters a public point decodes
// to/from for c.
func (c Curve) HexPointLen() int {
	return c.PointSize() * 2
}

// ScalarBaseMult computes scalar*G, the public point for a freshly generated
// or loaded private scalar.
func (c Curve) ScalarBaseMult(scalar []byte) ([]byte, error) {
	switch c {
	case Curve25519:
		if len(scalar) != 32 {
			return nil, fmt.Errorf("curve25519: scalar must be 32 bytes, got %d", len(scalar))
		}
		pub, err := curve25519.X25519(scalar, curve25519.Basepoint)
		if err != nil {
			return nil, err
		}
		return pub, nil
	case Curve448:
		if len(scalar) != x448.Size {
			return nil, fmt.Errorf("curve448: scalar must be %d bytes, got %d", x448.Size, len(scalar))
		}
		var priv, pub x448.Key
		copy(priv[:], scalar)
		x448.KeyGen(&pub, &priv)
		return append([]byte(nil), pub[:]...), nil
	default:
		return nil, fmt.Errorf("curve: unsupported curve %v", c)
	}
}

// ScalarMult computes the ECDH shared secret scalar*point, rejecting
// degenerate (all-zero / low-order) results.
func (c Curve) ScalarMult(scalar, point []byte) ([]byte, error) {
	switch c {
	case Curve25519:
		if len(scalar) != 32 || len(point) != 32 {
			return nil, fmt.Errorf("curve25519: scalar and point must be 32 bytes")
		}
		shared, err := curve25519.X25519(scalar, point)
		if err != nil {
			// curve25519.X25519 itself rejects the all-zero (low-order) result.
			return nil, err
		}
		return shared, nil
	case Curve448:
		if len(scalar) != x448.Size || len(point) != x448.Size {
			return nil, fmt.Errorf("curve448: scalar and point must be %d bytes", x448.Size)
		}
		var priv, pub, shared x448.Key
		copy(priv[:], scalar)
		copy(pub[:], point)
		if !x448.Shared(&shared, &priv, &pub) {
			return nil, fmt.Errorf("curve448: shared secret is degenerate (low-order point)")
		}
		return append([]byte(nil), shared[:]...), nil
	default:
		return nil, fmt.Errorf("curve: unsupported curve %v", c)
	}
}

// ValidPoint reports whether point is a structurally valid (correctly sized,
// non-zero) public point for c. It does not guarantee the point is not a
// low-order point; that is caught by ScalarMult's degenerate-secret check.
func (c Curve) ValidPoint(point []byte) bool {
	if !c.Valid() || len(point) != c.PointSize() {
		return false
	}
	return !isAllZero(point)
}

// ValidScalar reports whether scalar is a structurally valid private scalar
// for c.
func (c Curve) ValidScalar(scalar []byte) bool {
	if !c.Valid() || len(scalar) != c.ScalarSize() {
		return false
	}
	return !isAllZero(scalar)
}

func isAllZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return subtle.ConstantTimeByteEq(acc, 0) == 1
}
