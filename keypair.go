// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecies

import (
	"crypto/rand"
	"crypto/sha512"

	"golang.org/x/crypto/hkdf"

	"github.com/luxfi/ecies/curve"
	"github.com/luxfi/ecies/hexutil"
	"github.com/luxfi/ecies/internal/scrub"
)

// Keypair is a hex-encoded public/private keypair for a single curve. It is
// produced only by GenerateKeypair; this package never mutates an existing
// Keypair.
type Keypair struct {
	PrivateKey string
	PublicKey  string
}

// GenerateKeypair draws a private scalar from crypto/rand, mixed with
// additionalEntropy (which may be nil, empty, arbitrarily long, or contain
// non-ASCII bytes) via HKDF-SHA-512, where it is the info input, and derives
// the matching public point.
func GenerateKeypair(c curve.Curve, additionalEntropy []byte) (*Keypair, error) {
	if !c.Valid() {
		return nil, keygenErr(ErrNullArg, nil)
	}

	scalarSize := c.ScalarSize()
	sysRandom := make([]byte, scalarSize)
	if _, err := rand.Read(sysRandom); err != nil {
		return nil, keygenErr(ErrInternal, err)
	}
	defer scrub.Bytes(sysRandom)

	scalar, err := personalizeScalar(sysRandom, additionalEntropy, scalarSize)
	if err != nil {
		return nil, keygenErr(ErrInternal, err)
	}
	defer scrub.Bytes(scalar)

	if !c.ValidScalar(scalar) {
		return nil, keygenErr(ErrInternal, nil)
	}

	pub, err := c.ScalarBaseMult(scalar)
	if err != nil {
		return nil, keygenErr(ErrInternal, err)
	}

	return &Keypair{
		PrivateKey: hexutil.Encode(scalar),
		PublicKey:  hexutil.Encode(pub),
	}, nil
}

// personalizeScalar mixes additional caller-supplied entropy into system
// randomness via a single HKDF-Extract+Expand pass, so a caller with an
// external entropy source can influence key generation while a nil/empty
// additionalEntropy still yields a uniformly random scalar.
func personalizeScalar(sysRandom, additionalEntropy []byte, size int) ([]byte, error) {
	r := hkdf.New(sha512.New, sysRandom, nil, additionalEntropy)
	out := make([]byte, size)
	if _, err := r.Read(out); err != nil {
		return nil, err
	}
	return out, nil
}
