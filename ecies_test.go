// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecies

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ecies/curve"
	"github.com/luxfi/ecies/hexutil"
)

const (
	s1PlaintextASCII = "the quick brown fox jumps over the lazy dog, and then does it again, and again, and one more time for good measure because two hundred and sixty three bytes takes a while to reach when you're just jumping over lazy dogs all day, every single day of the whole week"
	s1RecipientPub   = "b6bc315987f3753498778857fa2aafb83a43cf3c4f1fcee0b6175ebd59cbf40e"
	s1RecipientPriv  = "4e71a74bacee7dabfe00c1c0ac7d339e27da503586fad0df8faf171490926690"
	s3WrongPriv      = "72250c5248fd1d9780126ee15f94dabcb0f3cb4622f9625f523a76d5884ffbb0"
)

func requireCode(t *testing.T, err error, want ErrorCode) {
	t.Helper()
	var kerr *KeygenError
	var eerr *EncryptError
	var derr *DecryptError
	switch {
	case errors.As(err, &kerr):
		require.Equal(t, want, kerr.Code)
	case errors.As(err, &eerr):
		require.Equal(t, want, eerr.Code)
	case errors.As(err, &derr):
		require.Equal(t, want, derr.Code)
	default:
		t.Fatalf("err %v is not one of the three ecies error types", err)
	}
}

// S1: Curve25519 round-trip, binary.
func TestS1_Curve25519RoundTripBinary(t *testing.T) {
	plaintext := []byte(s1PlaintextASCII)
	env, err := Encrypt(curve.Curve25519, plaintext, s1RecipientPub, false)
	require.NoError(t, err)

	got, err := Decrypt(curve.Curve25519, env, false, s1RecipientPriv)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

// S2: Curve25519 round-trip, Base64.
func TestS2_Curve25519RoundTripBase64(t *testing.T) {
	plaintext := []byte(s1PlaintextASCII)

	binSize := len(plaintext) + 64 + curve.Curve25519.PointSize()
	wantLen := ((binSize+2)/3)*4 + 1 - 1 // CalcBase64Size minus the trailing NUL

	env, err := Encrypt(curve.Curve25519, plaintext, s1RecipientPub, true)
	require.NoError(t, err)
	require.Equal(t, wantLen, len(env))

	got, err := Decrypt(curve.Curve25519, env, true, s1RecipientPriv)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

// S3: Curve25519 wrong-key rejection.
func TestS3_Curve25519WrongKey(t *testing.T) {
	plaintext := []byte(s1PlaintextASCII)
	env, err := Encrypt(curve.Curve25519, plaintext, s1RecipientPub, false)
	require.NoError(t, err)

	_, err = Decrypt(curve.Curve25519, env, false, s3WrongPriv)
	require.Error(t, err)
	requireCode(t, err, ErrInternal)
}

// S4: Curve25519 tamper rejection.
func TestS4_Curve25519Tamper(t *testing.T) {
	plaintext := []byte(s1PlaintextASCII)
	env, err := Encrypt(curve.Curve25519, plaintext, s1RecipientPub, false)
	require.NoError(t, err)

	for _, offset := range []int{200, 201, 202} {
		tampered := append([]byte(nil), env...)
		tampered[offset] ^= 0xFF
		_, err := Decrypt(curve.Curve25519, tampered, false, s1RecipientPriv)
		require.Error(t, err)
		requireCode(t, err, ErrInternal)
	}
}

// S5: Curve448 round-trip, Base64.
func TestS5_Curve448RoundTripBase64(t *testing.T) {
	kp, err := GenerateKeypair(curve.Curve448, nil)
	require.NoError(t, err)

	plaintext := []byte(s1PlaintextASCII)
	env, err := Encrypt(curve.Curve448, plaintext, kp.PublicKey, true)
	require.NoError(t, err)

	got, err := Decrypt(curve.Curve448, env, true, kp.PrivateKey)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

// S6: keygen + round-trip, both curves.
func TestS6_KeygenRoundTrip(t *testing.T) {
	for _, c := range []curve.Curve{curve.Curve25519, curve.Curve448} {
		t.Run(c.String(), func(t *testing.T) {
			kp, err := GenerateKeypair(c, []byte("testtesttest"))
			require.NoError(t, err)

			plaintext := []byte("short message")
			env, err := Encrypt(c, plaintext, kp.PublicKey, false)
			require.NoError(t, err)

			got, err := Decrypt(c, env, false, kp.PrivateKey)
			require.NoError(t, err)
			require.Equal(t, plaintext, got)
		})
	}
}

func TestSizePrediction(t *testing.T) {
	for _, c := range []curve.Curve{curve.Curve25519, curve.Curve448} {
		kp, err := GenerateKeypair(c, nil)
		require.NoError(t, err)

		for _, base64 := range []bool{false, true} {
			plaintext := []byte("abc123")
			env, err := Encrypt(c, plaintext, kp.PublicKey, base64)
			require.NoError(t, err)

			binSize := 64 + c.PointSize() + len(plaintext)
			want := binSize
			if base64 {
				want = ((binSize+2)/3)*4 + 1 - 1
			}
			require.Equal(t, want, len(env))
		}
	}
}

func TestWrongKeyRejectionAcrossManyKeypairs(t *testing.T) {
	kp, err := GenerateKeypair(curve.Curve25519, nil)
	require.NoError(t, err)

	plaintext := []byte("hello")
	env, err := Encrypt(curve.Curve25519, plaintext, kp.PublicKey, false)
	require.NoError(t, err)

	for i := 0; i < 64; i++ {
		other, err := GenerateKeypair(curve.Curve25519, nil)
		require.NoError(t, err)
		_, err = Decrypt(curve.Curve25519, env, false, other.PrivateKey)
		require.Error(t, err)
		requireCode(t, err, ErrInternal)
	}
}

func TestSelfDecryptWithPublicKeyFails(t *testing.T) {
	kp, err := GenerateKeypair(curve.Curve25519, nil)
	require.NoError(t, err)

	plaintext := []byte("hello")
	env, err := Encrypt(curve.Curve25519, plaintext, kp.PublicKey, false)
	require.NoError(t, err)

	_, err = Decrypt(curve.Curve25519, env, false, kp.PublicKey)
	require.Error(t, err)
}

func TestTamperEveryRegion(t *testing.T) {
	kp, err := GenerateKeypair(curve.Curve25519, nil)
	require.NoError(t, err)

	plaintext := []byte("a reasonably long plaintext to tamper around in")
	env, err := Encrypt(curve.Curve25519, plaintext, kp.PublicKey, false)
	require.NoError(t, err)

	for offset := 0; offset < len(env); offset++ {
		tampered := append([]byte(nil), env...)
		tampered[offset] ^= 0x01
		_, err := Decrypt(curve.Curve25519, tampered, false, kp.PrivateKey)
		require.Error(t, err, "offset %d", offset)
	}
}

func TestModeMismatchRejection(t *testing.T) {
	kp, err := GenerateKeypair(curve.Curve25519, nil)
	require.NoError(t, err)

	plaintext := []byte("hello")

	binEnv, err := Encrypt(curve.Curve25519, plaintext, kp.PublicKey, false)
	require.NoError(t, err)
	_, err = Decrypt(curve.Curve25519, binEnv, true, kp.PrivateKey)
	require.Error(t, err)

	b64Env, err := Encrypt(curve.Curve25519, plaintext, kp.PublicKey, true)
	require.NoError(t, err)
	_, err = Decrypt(curve.Curve25519, b64Env, false, kp.PrivateKey)
	require.Error(t, err)
}

func TestArgumentValidation(t *testing.T) {
	kp, err := GenerateKeypair(curve.Curve25519, nil)
	require.NoError(t, err)

	t.Run("encrypt empty plaintext", func(t *testing.T) {
		_, err := Encrypt(curve.Curve25519, nil, kp.PublicKey, false)
		require.Error(t, err)
		requireCode(t, err, ErrInvalidArg)
	})

	t.Run("encrypt missing recipient key", func(t *testing.T) {
		_, err := Encrypt(curve.Curve25519, []byte("x"), "", false)
		require.Error(t, err)
		requireCode(t, err, ErrNullArg)
	})

	t.Run("encrypt insufficient output buffer", func(t *testing.T) {
		out := make([]byte, 1)
		_, err := EncryptInto(curve.Curve25519, []byte("hello"), kp.PublicKey, out, false)
		require.Error(t, err)
		requireCode(t, err, ErrInsufficientOutputBufferSize)
	})

	t.Run("decrypt empty envelope", func(t *testing.T) {
		_, err := Decrypt(curve.Curve25519, nil, false, kp.PrivateKey)
		require.Error(t, err)
		requireCode(t, err, ErrNullArg)
	})

	t.Run("decrypt missing private key", func(t *testing.T) {
		env, err := Encrypt(curve.Curve25519, []byte("hello"), kp.PublicKey, false)
		require.NoError(t, err)
		_, err = Decrypt(curve.Curve25519, env, false, "")
		require.Error(t, err)
		requireCode(t, err, ErrNullArg)
	})

	t.Run("decrypt insufficient output buffer", func(t *testing.T) {
		env, err := Encrypt(curve.Curve25519, []byte("hello world"), kp.PublicKey, false)
		require.NoError(t, err)
		out := make([]byte, 2)
		_, err = DecryptInto(curve.Curve25519, env, false, kp.PrivateKey, out)
		require.Error(t, err)
		requireCode(t, err, ErrInsufficientOutputBufferSize)
	})

	t.Run("encrypt invalid recipient key hex", func(t *testing.T) {
		_, err := Encrypt(curve.Curve25519, []byte("hello"), "not-hex", false)
		require.Error(t, err)
		requireCode(t, err, ErrInvalidArg)
	})
}

func TestNonceFreshness(t *testing.T) {
	kp, err := GenerateKeypair(curve.Curve25519, nil)
	require.NoError(t, err)

	plaintext := []byte("same plaintext every time")
	env1, err := Encrypt(curve.Curve25519, plaintext, kp.PublicKey, false)
	require.NoError(t, err)
	env2, err := Encrypt(curve.Curve25519, plaintext, kp.PublicKey, false)
	require.NoError(t, err)

	require.False(t, bytes.Equal(env1, env2))
	require.False(t, bytes.Equal(env1[:32], env2[:32]), "salt should differ")
	require.False(t, bytes.Equal(env1[32:48], env2[32:48]), "iv should differ")
}

func TestKeygenValidityAcrossEntropyShapes(t *testing.T) {
	entropies := [][]byte{
		nil,
		{},
		bytes.Repeat([]byte{0xAB}, 10_000),
		[]byte("\x00\x01\xff\xfe non-ascii \xc3\xa9\xc3\xa8"),
	}
	for _, c := range []curve.Curve{curve.Curve25519, curve.Curve448} {
		for _, entropy := range entropies {
			kp, err := GenerateKeypair(c, entropy)
			require.NoError(t, err)
			priv, err := hexutil.Decode(kp.PrivateKey)
			require.NoError(t, err)
			pub, err := hexutil.Decode(kp.PublicKey)
			require.NoError(t, err)
			require.True(t, c.ValidScalar(priv))
			require.True(t, c.ValidPoint(pub))
		}
	}
}
