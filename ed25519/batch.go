// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ed25519

import (
	"crypto/rand"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/edwards25519"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/hash"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/scalar"
)

// VerifyBatch verifies a batch of (publicKey, message, signature) triples in
// one combined equation, weighting each by an independent random scalar per
// Bernstein et al.'s batch verification: the combined check can pass by
// accident only with negligible probability, and a single valid equation
// costs one multiscalar pass instead of len(signatures) independent checks.
// The combined equation is checked as-is, without multiplying by the
// cofactor. Keys and the context length are screened as Verify screens them
// under the same options, and ctx/preHash options apply uniformly across
// the batch.
//
// On success all signatures are valid. On failure each signature is checked
// on its own with Verify, so the returned []error reports exactly which
// entries failed; entries that verified individually are nil.
func VerifyBatch(publicKeys []PublicKey, messages [][]byte, signatures [][]byte, opts ...Option) []error {
	n := len(publicKeys)
	if len(messages) != n || len(signatures) != n {
		panic("ed25519: VerifyBatch argument slices must have equal length")
	}

	if n == 0 {
		return nil
	}

	cfg := buildConfig(opts)
	if len(cfg.context) > maxContextSize {
		return verifyIndividually(publicKeys, messages, signatures, opts)
	}

	points := make([]*edwards25519.Point, 0, 2*n+1)
	scalars := make([]*scalar.Scalar, 0, 2*n+1)

	sSum := new(scalar.Scalar)

	ok := true

	for i := 0; i < n; i++ {
		if len(publicKeys[i]) != PublicKeySize || len(signatures[i]) != SignatureSize {
			ok = false
			continue
		}

		A, err := edwards25519.Decompress(publicKeys[i])
		if err != nil || (!cfg.cofactored && A.IsSmallOrder()) {
			ok = false
			continue
		}

		R, err := edwards25519.Decompress(signatures[i][:32])
		if err != nil {
			ok = false
			continue
		}

		var S scalar.Scalar
		if !S.FromCanonicalBytes(signatures[i][32:64]) {
			ok = false
			continue
		}

		m := messages[i]
		if cfg.preHash {
			m = hash.SHA512.Get().Hash(messages[i])
		}

		var dom2 []byte
		if cfg.preHash || cfg.context != nil {
			dom2 = buildDom2(phflag(cfg.preHash), cfg.context)
		}

		kDigest := hash.SHA512.Get().Hash(dom2, signatures[i][:32], []byte(publicKeys[i]), m)
		k := new(scalar.Scalar).FromBytesModOrderWide(kDigest)

		z := randomBatchWeight()

		var zk scalar.Scalar
		zk.Multiply(z, k)

		var zS scalar.Scalar
		zS.Multiply(z, &S)
		sSum.Add(sSum, &zS)

		var zNeg, zkNeg scalar.Scalar
		zNeg.Negate(z)
		zkNeg.Negate(&zk)

		scalars = append(scalars, &zNeg, &zkNeg)
		points = append(points, R, A)
	}

	if ok {
		scalars = append([]*scalar.Scalar{sSum}, scalars...)
		points = append([]*edwards25519.Point{edwards25519.Generator()}, points...)

		combined := edwards25519.VarTimeMultiscalarMult(scalars, points)
		if combined.IsIdentity() {
			return make([]error, n)
		}
	}

	return verifyIndividually(publicKeys, messages, signatures, opts)
}

func verifyIndividually(publicKeys []PublicKey, messages [][]byte, signatures [][]byte, opts []Option) []error {
	errs := make([]error, len(publicKeys))

	for i := range publicKeys {
		errs[i] = Verify(publicKeys[i], messages[i], signatures[i], opts...)
	}

	return errs
}

func randomBatchWeight() *scalar.Scalar {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}

	return new(scalar.Scalar).FromBytesModOrder(buf[:])
}
