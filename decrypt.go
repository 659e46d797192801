// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecies

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/luxfi/ecies/curve"
	"github.com/luxfi/ecies/envelope"
	"github.com/luxfi/ecies/hexutil"
	"github.com/luxfi/ecies/internal/diag"
	"github.com/luxfi/ecies/internal/obs"
	"github.com/luxfi/ecies/internal/scrub"
	"github.com/luxfi/ecies/kdf"
)

// Decrypt reverses Encrypt, returning a freshly allocated plaintext buffer.
//
// This is the owning-buffer form; DecryptInto is the caller-buffer form.
func Decrypt(c curve.Curve, env []byte, isBase64 bool, recipientPrivHex string) ([]byte, error) {
	// Ciphertext can never be larger than the envelope itself, so sizing
	// the scratch buffer to len(env) is always sufficient.
	out := make([]byte, len(env))
	n, err := DecryptInto(c, env, isBase64, recipientPrivHex, out)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

// DecryptInto reverses EncryptInto, writing plaintext into out and returning
// the number of bytes written.
func DecryptInto(c curve.Curve, env []byte, isBase64 bool, recipientPrivHex string, out []byte) (int, error) {
	if !c.Valid() {
		return 0, decryptErr(ErrNullArg, nil)
	}
	if len(env) == 0 {
		return 0, decryptErr(ErrNullArg, nil)
	}
	if recipientPrivHex == "" {
		return 0, decryptErr(ErrNullArg, nil)
	}

	var fields envelope.Fields
	var err error
	if isBase64 {
		fields, err = envelope.DecodeBase64(c, env)
	} else {
		fields, err = envelope.Decode(c, env)
	}
	if err != nil {
		return 0, decryptErr(ErrInvalidArg, err)
	}

	if len(out) < len(fields.Ciphertext) {
		return 0, decryptErr(ErrInsufficientOutputBufferSize, nil)
	}

	if !c.ValidPoint(fields.EphemeralPub) {
		return 0, decryptErr(ErrInvalidArg, nil)
	}

	recipientPriv, err := hexutil.Decode(recipientPrivHex)
	if err != nil {
		return 0, decryptErr(ErrInvalidArg, err)
	}
	if !c.ValidScalar(recipientPriv) {
		return 0, decryptErr(ErrInvalidArg, nil)
	}
	defer scrub.Bytes(recipientPriv)

	sharedSecret, err := c.ScalarMult(recipientPriv, fields.EphemeralPub)
	if err != nil {
		return 0, decryptErr(ErrInternal, err)
	}
	defer scrub.Bytes(sharedSecret)

	aesKey, _, err := kdf.Derive(sharedSecret, fields.Salt)
	if err != nil {
		return 0, decryptErr(ErrInternal, err)
	}
	defer scrub.Array32(&aesKey)

	block, err := aes.NewCipher(aesKey[:])
	if err != nil {
		return 0, decryptErr(ErrInternal, err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, kdf.IVSize)
	if err != nil {
		return 0, decryptErr(ErrInternal, err)
	}

	sealed := make([]byte, 0, len(fields.Ciphertext)+len(fields.GCMTag))
	sealed = append(sealed, fields.Ciphertext...)
	sealed = append(sealed, fields.GCMTag...)

	// fields.IV, not a value re-derived from salt+sharedSecret, is the
	// nonce AES-GCM was sealed under.
	plaintext, err := gcm.Open(nil, fields.IV, sealed, nil)
	if err != nil {
		// Tag mismatch, tampered ciphertext, and wrong key all land here,
		// deliberately indistinguishable from the caller's side.
		return 0, decryptErr(ErrInternal, nil)
	}

	n := copy(out, plaintext)

	diag.Printf("ecies: decrypt curve=%s base64=%t envelope=%s\n", c, isBase64, obs.Fingerprint(fields.Salt, fields.IV, fields.EphemeralPub))

	return n, nil
}
