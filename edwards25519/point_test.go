// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards25519_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/edwards25519"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/scalar"
)

func randomScalar(t *testing.T) *scalar.Scalar {
	t.Helper()

	var b [64]byte
	_, err := rand.Read(b[:])
	require.NoError(t, err)

	return new(scalar.Scalar).FromBytesModOrderWide(b[:])
}

func TestIdentityIsNeutral(t *testing.T) {
	g := edwards25519.Generator()

	var sum edwards25519.Point
	sum.Add(g, edwards25519.Identity())

	require.Equal(t, 1, sum.Equal(g))
}

func TestDoubleMatchesAdd(t *testing.T) {
	g := edwards25519.Generator()

	var doubled, added edwards25519.Point
	doubled.Double(g)
	added.Add(g, g)

	require.Equal(t, 1, doubled.Equal(&added))
}

func TestNegateRoundTrip(t *testing.T) {
	g := edwards25519.Generator()

	var neg, sum edwards25519.Point
	neg.Negate(g)
	sum.Add(g, &neg)

	require.Equal(t, 1, sum.Equal(edwards25519.Identity()))
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := randomScalar(t)

		var p edwards25519.Point
		p.ScalarBaseMult(s)

		enc := p.Compress()

		q, err := edwards25519.Decompress(enc[:])
		require.NoError(t, err)
		require.Equal(t, 1, p.Equal(q))
	}
}

func TestDecompressRejectsBadLength(t *testing.T) {
	_, err := edwards25519.Decompress(make([]byte, 31))
	require.Error(t, err)
}

func TestScalarBaseMultMatchesScalarMultOfGenerator(t *testing.T) {
	for i := 0; i < 20; i++ {
		s := randomScalar(t)

		var viaBase, viaGeneric edwards25519.Point
		viaBase.ScalarBaseMult(s)
		viaGeneric.ScalarMult(s, edwards25519.Generator())

		require.Equal(t, 1, viaBase.Equal(&viaGeneric))
	}
}

func TestVarTimeDoubleScalarBaseMultMatchesSeparateMults(t *testing.T) {
	for i := 0; i < 20; i++ {
		a := randomScalar(t)
		b := randomScalar(t)

		A := new(edwards25519.Point).ScalarBaseMult(randomScalar(t))

		var aA, bB, want edwards25519.Point
		aA.ScalarMult(a, A)
		bB.ScalarBaseMult(b)
		want.Add(&aA, &bB)

		got := edwards25519.VarTimeDoubleScalarBaseMult(a, A, b)

		require.Equal(t, 1, want.Equal(got))
	}
}

func TestVarTimeMultiscalarMultMatchesSequentialSum(t *testing.T) {
	n := 6
	scalars := make([]*scalar.Scalar, n)
	points := make([]*edwards25519.Point, n)

	want := edwards25519.Identity()

	for i := 0; i < n; i++ {
		scalars[i] = randomScalar(t)
		points[i] = new(edwards25519.Point).ScalarBaseMult(randomScalar(t))

		term := new(edwards25519.Point).ScalarMult(scalars[i], points[i])
		want.Add(want, term)
	}

	got := edwards25519.VarTimeMultiscalarMult(scalars, points)

	require.Equal(t, 1, want.Equal(got))
}

func TestIsSmallOrder(t *testing.T) {
	// The identity itself has order dividing 8.
	id := edwards25519.Identity()
	require.True(t, id.IsSmallOrder())

	g := edwards25519.Generator()
	require.False(t, g.IsSmallOrder())
}

func TestHashToCurveIsDeterministic(t *testing.T) {
	p1 := edwards25519.HashToCurve([]byte("input"), []byte("dst"))
	p2 := edwards25519.HashToCurve([]byte("input"), []byte("dst"))

	require.Equal(t, 1, p1.Equal(p2))

	p3 := edwards25519.HashToCurve([]byte("different"), []byte("dst"))
	require.NotEqual(t, 1, p1.Equal(p3))
}
