// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ed25519_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/ed25519"
)

func TestGenerateKeySizes(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	require.Len(t, pub, ed25519.PublicKeySize)
	require.Len(t, priv, ed25519.PrivateKeySize)
	require.Equal(t, []byte(pub), []byte(priv.Public()))
}

func TestNewKeyFromSeedDeterministic(t *testing.T) {
	var seed [ed25519.SeedSize]byte
	for i := range seed {
		seed[i] = byte(i)
	}

	sk1, err := ed25519.NewKeyFromSeed(seed[:])
	require.NoError(t, err)

	sk2, err := ed25519.NewKeyFromSeed(seed[:])
	require.NoError(t, err)

	require.Equal(t, []byte(sk1), []byte(sk2))
}

func TestNewKeyFromSeedRejectsBadLength(t *testing.T) {
	_, err := ed25519.NewKeyFromSeed(make([]byte, 16))
	require.ErrorIs(t, err, ed25519.ErrBadSeedLength)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	msg := []byte("a message for Ed25519")

	sig, err := ed25519.Sign(priv, msg)
	require.NoError(t, err)
	require.Len(t, sig, ed25519.SignatureSize)

	require.NoError(t, ed25519.Verify(priv.Public(), msg, sig))
}

func TestSignIsDeterministic(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	msg := []byte("deterministic nonce check")

	sig1, err := ed25519.Sign(priv, msg)
	require.NoError(t, err)

	sig2, err := ed25519.Sign(priv, msg)
	require.NoError(t, err)

	require.Equal(t, sig1, sig2)
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	sig, err := ed25519.Sign(priv, []byte("original"))
	require.NoError(t, err)

	err = ed25519.Verify(pub, []byte("tampered"), sig)
	require.ErrorIs(t, err, ed25519.ErrSignatureMismatch)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	msg := []byte("original")

	sig, err := ed25519.Sign(priv, msg)
	require.NoError(t, err)

	sig[0] ^= 0xff

	err = ed25519.Verify(pub, msg, sig)
	require.Error(t, err)
}

func TestVerifyRejectsBadLengths(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	sig, err := ed25519.Sign(priv, []byte("msg"))
	require.NoError(t, err)

	require.ErrorIs(t, ed25519.Verify(make([]byte, 16), []byte("msg"), sig), ed25519.ErrBadPublicKeyLength)
	require.ErrorIs(t, ed25519.Verify(pub, []byte("msg"), make([]byte, 16)), ed25519.ErrBadSignatureLength)
}

func TestCtxVariantBindsToContext(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	msg := []byte("context-bound message")

	sig, err := ed25519.SignCtx(priv, msg, []byte("protocol-v1"))
	require.NoError(t, err)

	require.NoError(t, ed25519.VerifyCtx(pub, msg, []byte("protocol-v1"), sig))
	require.Error(t, ed25519.VerifyCtx(pub, msg, []byte("protocol-v2"), sig))
	// A signature produced with a context must not verify under the plain,
	// context-free API: the dom2 prefix changes what was actually signed.
	require.Error(t, ed25519.Verify(pub, msg, sig))
}

func TestPHVariantBindsToPrehash(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	msg := []byte("prehashed message")

	sig, err := ed25519.SignPH(priv, msg, nil)
	require.NoError(t, err)

	require.NoError(t, ed25519.VerifyPH(pub, msg, nil, sig))
	require.Error(t, ed25519.Verify(pub, msg, sig))
}

func TestContextTooLong(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	ctx := make([]byte, 256)

	_, err = ed25519.SignCtx(priv, []byte("msg"), ctx)
	require.ErrorIs(t, err, ed25519.ErrContextTooLong)
}

func TestStrictVerificationRejectsIdentityKey(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	msg := []byte("msg")

	sig, err := ed25519.Sign(priv, msg)
	require.NoError(t, err)

	// y=1, x=0 is the canonical encoding of the identity point, which has
	// order 1 (dividing the cofactor 8): strict verification must reject it
	// as a public key regardless of what signature is presented.
	identityKey := make(ed25519.PublicKey, ed25519.PublicKeySize)
	identityKey[0] = 1

	err = ed25519.Verify(identityKey, msg, sig)
	require.ErrorIs(t, err, ed25519.ErrWeakPublicKey)
}

func TestCofactoredVerificationRoundTrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	msg := []byte("cofactored check")

	sig, err := ed25519.Sign(priv, msg)
	require.NoError(t, err)

	require.NoError(t, ed25519.Verify(pub, msg, sig, ed25519.WithCofactoredVerification()))
}

func TestVerifyBatchAllValid(t *testing.T) {
	const n = 5

	pubs := make([]ed25519.PublicKey, n)
	sigs := make([][]byte, n)
	msgs := make([][]byte, n)

	for i := 0; i < n; i++ {
		pub, priv, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)

		msg := []byte{byte(i), byte(i + 1), byte(i + 2)}
		sig, err := ed25519.Sign(priv, msg)
		require.NoError(t, err)

		pubs[i] = pub
		sigs[i] = sig
		msgs[i] = msg
	}

	errs := ed25519.VerifyBatch(pubs, msgs, sigs)
	for _, err := range errs {
		require.NoError(t, err)
	}
}

func TestVerifyBatchDetectsSingleFailure(t *testing.T) {
	const n = 4

	pubs := make([]ed25519.PublicKey, n)
	sigs := make([][]byte, n)
	msgs := make([][]byte, n)

	for i := 0; i < n; i++ {
		pub, priv, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)

		msg := []byte{byte(i), byte(i + 1)}
		sig, err := ed25519.Sign(priv, msg)
		require.NoError(t, err)

		pubs[i] = pub
		sigs[i] = sig
		msgs[i] = msg
	}

	// Corrupt one signature.
	sigs[2][0] ^= 0xff

	errs := ed25519.VerifyBatch(pubs, msgs, sigs)
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.Error(t, errs[2])
	require.NoError(t, errs[3])
}
