// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecies

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/luxfi/ecies/curve"
	"github.com/luxfi/ecies/envelope"
	"github.com/luxfi/ecies/hexutil"
	"github.com/luxfi/ecies/internal/diag"
	"github.com/luxfi/ecies/internal/obs"
	"github.com/luxfi/ecies/internal/scrub"
	"github.com/luxfi/ecies/kdf"
)

// Encrypt hybrid-encrypts plaintext to recipientPubHex on curve c, returning
// a freshly allocated envelope. If base64 is true the envelope is wrapped in
// standard, padded Base64.
//
// This is the owning-buffer form; EncryptInto is the caller-buffer form that
// matches the sizing helpers in package envelope.
func Encrypt(c curve.Curve, plaintext []byte, recipientPubHex string, base64 bool) ([]byte, error) {
	size := envelope.CalcBinarySize(c, len(plaintext))
	if base64 {
		size = envelope.CalcBase64Size(size) - 1 // no trailing NUL slot in Go output
	}
	out := make([]byte, size)
	n, err := EncryptInto(c, plaintext, recipientPubHex, out, base64)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

// EncryptInto hybrid-encrypts plaintext into out, which must be at least
// envelope.CalcBinarySize (or CalcBase64Size-1, for base64) bytes long. It
// returns the number of bytes written.
func EncryptInto(c curve.Curve, plaintext []byte, recipientPubHex string, out []byte, base64 bool) (int, error) {
	if !c.Valid() {
		return 0, encryptErr(ErrNullArg, nil)
	}
	if len(plaintext) == 0 {
		return 0, encryptErr(ErrInvalidArg, nil)
	}
	if recipientPubHex == "" {
		return 0, encryptErr(ErrNullArg, nil)
	}

	required := envelope.CalcBinarySize(c, len(plaintext))
	if base64 {
		required = envelope.CalcBase64Size(required) - 1
	}
	if len(out) < required {
		return 0, encryptErr(ErrInsufficientOutputBufferSize, nil)
	}

	recipientPub, err := hexutil.Decode(recipientPubHex)
	if err != nil {
		return 0, encryptErr(ErrInvalidArg, err)
	}
	if !c.ValidPoint(recipientPub) {
		return 0, encryptErr(ErrInvalidArg, nil)
	}

	ephPriv := make([]byte, c.ScalarSize())
	if _, err := rand.Read(ephPriv); err != nil {
		return 0, encryptErr(ErrInternal, err)
	}
	defer scrub.Bytes(ephPriv)

	ephPub, err := c.ScalarBaseMult(ephPriv)
	if err != nil {
		return 0, encryptErr(ErrInternal, err)
	}

	sharedSecret, err := c.ScalarMult(ephPriv, recipientPub)
	if err != nil {
		return 0, encryptErr(ErrInternal, err)
	}
	defer scrub.Bytes(sharedSecret)

	salt := make([]byte, kdf.SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return 0, encryptErr(ErrInternal, err)
	}

	aesKey, iv, err := kdf.Derive(sharedSecret, salt)
	if err != nil {
		return 0, encryptErr(ErrInternal, err)
	}
	defer scrub.Array32(&aesKey)
	defer scrub.Array16(&iv)

	block, err := aes.NewCipher(aesKey[:])
	if err != nil {
		return 0, encryptErr(ErrInternal, err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, kdf.IVSize)
	if err != nil {
		return 0, encryptErr(ErrInternal, err)
	}

	sealed := gcm.Seal(nil, iv[:], plaintext, nil)
	ciphertext := sealed[:len(plaintext)]
	gcmTag := sealed[len(plaintext):]

	var env []byte
	if base64 {
		env, err = envelope.EncodeBase64(salt, iv[:], gcmTag, ephPub, ciphertext)
	} else {
		env, err = envelope.Encode(salt, iv[:], gcmTag, ephPub, ciphertext)
	}
	if err != nil {
		return 0, encryptErr(ErrInternal, err)
	}

	n := copy(out, env)

	diag.Printf("ecies: encrypt curve=%s base64=%t envelope=%s\n", c, base64, obs.Fingerprint(salt, iv[:], ephPub))

	return n, nil
}
