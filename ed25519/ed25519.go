// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ed25519 implements the Ed25519 signature scheme (RFC 8032) —
// signing, strict and cofactored verification, the Ed25519ctx/Ed25519ph
// context-binding variants, and batch verification — directly on this
// module's edwards25519 point and scalar arithmetic rather than on
// crypto/ed25519.
package ed25519

import (
	"crypto/rand"
	"io"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/edwards25519"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/hash"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/scalar"
)

var defaultRandReader = rand.Reader

const (
	// SeedSize is the byte length of an Ed25519 private key seed.
	SeedSize = 32

	// PublicKeySize is the byte length of an Ed25519 public key.
	PublicKeySize = 32

	// PrivateKeySize is the byte length of a private key as this package
	// represents it: the 32-byte seed followed by its 32-byte public key,
	// matching crypto/ed25519's layout.
	PrivateKeySize = 64

	// SignatureSize is the byte length of an Ed25519 signature.
	SignatureSize = 64

	// dom2Prefix is the RFC 8032 §5.1 domain separator prefixed to the two
	// internal hashes whenever a context or the Ed25519ph prehash is used.
	dom2Prefix = "SigEd25519 no Ed25519 collisions"

	maxContextSize = 255
)

// PrivateKey is a 64-byte Ed25519 private key: seed || public key.
type PrivateKey []byte

// PublicKey is a 32-byte Ed25519 public key.
type PublicKey []byte

// Seed returns the 32-byte seed that generated sk.
func (sk PrivateKey) Seed() []byte {
	seed := make([]byte, SeedSize)
	copy(seed, sk[:SeedSize])

	return seed
}

// Public returns the public key half of sk.
func (sk PrivateKey) Public() PublicKey {
	pub := make(PublicKey, PublicKeySize)
	copy(pub, sk[SeedSize:])

	return pub
}

// NewKeyFromSeed deterministically expands a 32-byte seed into a private
// key, per RFC 8032 §5.1.5.
func NewKeyFromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, ErrBadSeedLength
	}

	a, _ := expandSeed(seed)

	var A edwards25519.Point
	A.ScalarBaseMult(a)
	encoded := A.Compress()

	sk := make(PrivateKey, PrivateKeySize)
	copy(sk[:SeedSize], seed)
	copy(sk[SeedSize:], encoded[:])

	return sk, nil
}

// GenerateKey generates a fresh key pair, reading randomness from rand (or
// crypto/rand's default Reader if rand is nil).
func GenerateKey(rand io.Reader) (PublicKey, PrivateKey, error) {
	seed := make([]byte, SeedSize)
	if rand == nil {
		rand = defaultRandReader
	}

	if _, err := io.ReadFull(rand, seed); err != nil {
		return nil, nil, err
	}

	sk, err := NewKeyFromSeed(seed)
	if err != nil {
		return nil, nil, err
	}

	return sk.Public(), sk, nil
}

// expandSeed runs the RFC 8032 §5.1.5 key-expansion hash, returning the
// clamped scalar a and the second half of the digest used as the nonce
// derivation prefix.
func expandSeed(seed []byte) (a *scalar.Scalar, prefix []byte) {
	h := hash.SHA512.Get().Hash(seed)

	var clamped [32]byte
	copy(clamped[:], h[:32])

	return new(scalar.Scalar).FromBitsClamped(clamped), h[32:64]
}

// buildDom2 returns the RFC 8032 §5.1 domain-separation string for the given
// prehash flag and context. It always builds the string; callers pass a nil
// dom2 instead of calling it in pure Ed25519 mode.
func buildDom2(phflag byte, context []byte) []byte {
	buf := make([]byte, 0, len(dom2Prefix)+2+len(context))
	buf = append(buf, dom2Prefix...)
	buf = append(buf, phflag, byte(len(context)))
	buf = append(buf, context...)

	return buf
}

// Sign signs message with sk, returning the 64-byte signature. With no
// options this is plain RFC 8032 Ed25519; WithContext and/or WithPreHash
// select the Ed25519ctx/Ed25519ph domain-separated variants.
func Sign(sk PrivateKey, message []byte, opts ...Option) ([]byte, error) {
	if len(sk) != PrivateKeySize {
		return nil, ErrBadPrivateKeyLength
	}

	cfg := buildConfig(opts)
	if len(cfg.context) > maxContextSize {
		return nil, ErrContextTooLong
	}

	a, prefix := expandSeed(sk.Seed())
	pub := sk.Public()

	m := message
	if cfg.preHash {
		m = hash.SHA512.Get().Hash(message)
	}

	var dom2 []byte
	if cfg.preHash || cfg.context != nil {
		dom2 = buildDom2(phflag(cfg.preHash), cfg.context)
	}

	rDigest := hash.SHA512.Get().Hash(dom2, prefix, m)
	r := new(scalar.Scalar).FromBytesModOrderWide(rDigest)

	var R edwards25519.Point
	R.ScalarBaseMult(r)
	REncoded := R.Compress()

	kDigest := hash.SHA512.Get().Hash(dom2, REncoded[:], pub, m)
	k := new(scalar.Scalar).FromBytesModOrderWide(kDigest)

	var s scalar.Scalar
	s.MultiplyAdd(k, a, r)

	sig := make([]byte, SignatureSize)
	copy(sig[:32], REncoded[:])
	copy(sig[32:], s.Bytes())

	return sig, nil
}

func phflag(preHash bool) byte {
	if preHash {
		return 1
	}

	return 0
}

// Verify reports whether signature is a valid signature of message under
// publicKey. WithContext/WithPreHash select the Ed25519ctx/Ed25519ph
// variant to match how the signature was produced; WithCofactoredVerification
// switches to the ZIP-215-style equation that tolerates small-order R/A
// components, instead of the default strict check.
func Verify(publicKey PublicKey, message, signature []byte, opts ...Option) error {
	if len(publicKey) != PublicKeySize {
		return ErrBadPublicKeyLength
	}

	if len(signature) != SignatureSize {
		return ErrBadSignatureLength
	}

	cfg := buildConfig(opts)
	if len(cfg.context) > maxContextSize {
		return ErrContextTooLong
	}

	A, err := edwards25519.Decompress(publicKey)
	if err != nil {
		return ErrInvalidEncoding
	}

	if !cfg.cofactored && A.IsSmallOrder() {
		return ErrWeakPublicKey
	}

	R, err := edwards25519.Decompress(signature[:32])
	if err != nil {
		return ErrInvalidEncoding
	}

	var S scalar.Scalar
	if !S.FromCanonicalBytes(signature[32:64]) {
		return ErrInvalidEncoding
	}

	m := message
	if cfg.preHash {
		m = hash.SHA512.Get().Hash(message)
	}

	var dom2 []byte
	if cfg.preHash || cfg.context != nil {
		dom2 = buildDom2(phflag(cfg.preHash), cfg.context)
	}

	kDigest := hash.SHA512.Get().Hash(dom2, signature[:32], []byte(publicKey), m)
	k := new(scalar.Scalar).FromBytesModOrderWide(kDigest)
	kNeg := new(scalar.Scalar).Negate(k)

	// [S]B - [k]A, compared against R: the rearranged form of [S]B == R + [k]A
	// that VarTimeDoubleScalarBaseMult computes in a single Straus pass.
	combined := edwards25519.VarTimeDoubleScalarBaseMult(kNeg, A, &S)

	if cfg.cofactored {
		lhs := new(edwards25519.Point).MultByCofactor(combined)
		rhs := new(edwards25519.Point).MultByCofactor(R)

		if lhs.Equal(rhs) != 1 {
			return ErrSignatureMismatch
		}

		return nil
	}

	if combined.Equal(R) != 1 {
		return ErrSignatureMismatch
	}

	return nil
}
