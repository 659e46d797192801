// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecies

import "fmt"

// ErrorCode is a closed enumeration of the failure kinds the three error
// taxonomies below can carry (spec.md §7). Not every code is valid for
// every taxonomy: Keygen only ever returns ErrNullArg or ErrInternal.
type ErrorCode int

const (
	// ErrNullArg marks a required input that was missing entirely (an
	// empty slice/string where the operation has no meaningful
	// interpretation of "empty", or an unrecognized curve.Curve value).
	ErrNullArg ErrorCode = iota + 1
	// ErrInvalidArg marks a structurally present but malformed input:
	// bad hex, bad Base64, a wrong envelope length, a wrong-length or
	// all-zero public key, a wrong-length or all-zero private scalar.
	// Public keys get no on-curve test.
	ErrInvalidArg
	// ErrInsufficientOutputBufferSize marks a caller-supplied output
	// buffer (the *Into functions) too small for the operation's result.
	ErrInsufficientOutputBufferSize
	// ErrInternal is the single opaque code every cryptographic failure
	// collapses into: GCM tag mismatch, KDF failure, a degenerate ECDH
	// result. Deliberately indistinguishable from the caller's side.
	ErrInternal
)

// String implements fmt.Stringer.
func (c ErrorCode) String() string {
	switch c {
	case ErrNullArg:
		return "null_arg"
	case ErrInvalidArg:
		return "invalid_arg"
	case ErrInsufficientOutputBufferSize:
		return "insufficient_output_buffer_size"
	case ErrInternal:
		return "internal_error"
	default:
		return fmt.Sprintf("error_code(%d)", int(c))
	}
}

// KeygenError is returned by GenerateKeypair. Its Code is always one of
// ErrNullArg or ErrInternal.
type KeygenError struct {
	Code ErrorCode
	Err  error
}

func (e *KeygenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ecies: keygen failed (%s): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("ecies: keygen failed (%s)", e.Code)
}

func (e *KeygenError) Unwrap() error { return e.Err }

// EncryptError is returned by Encrypt/EncryptInto.
type EncryptError struct {
	Code ErrorCode
	Err  error
}

func (e *EncryptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ecies: encrypt failed (%s): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("ecies: encrypt failed (%s)", e.Code)
}

func (e *EncryptError) Unwrap() error { return e.Err }

// DecryptError is returned by Decrypt/DecryptInto.
type DecryptError struct {
	Code ErrorCode
	Err  error
}

func (e *DecryptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ecies: decrypt failed (%s): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("ecies: decrypt failed (%s)", e.Code)
}

func (e *DecryptError) Unwrap() error { return e.Err }

func keygenErr(code ErrorCode, err error) error {
	return &KeygenError{Code: code, Err: err}
}

func encryptErr(code ErrorCode, err error) error {
	return &EncryptError{Code: code, Err: err}
}

func decryptErr(code ErrorCode, err error) error {
	return &DecryptError{Code: code, Err: err}
}
