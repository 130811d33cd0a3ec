// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/ristretto"
)

func group(t *testing.T) internal.Group {
	t.Helper()
	return ristretto.New()
}

func TestBaseIsNotIdentity(t *testing.T) {
	g := group(t)
	require.False(t, g.Base().IsIdentity())
	require.True(t, g.NewElement().IsIdentity())
}

func TestElementEncodeDecodeRoundTrip(t *testing.T) {
	g := group(t)

	for i := 0; i < 50; i++ {
		s := g.NewScalar().Random()
		e := g.Base().Multiply(s)

		enc := e.Encode()
		require.Len(t, enc, g.ElementLength())

		dec := g.NewElement()
		require.NoError(t, dec.Decode(enc))
		require.Equal(t, 1, e.Equal(dec))
	}
}

func TestElementAddSubtractInverse(t *testing.T) {
	g := group(t)

	a := g.Base().Multiply(g.NewScalar().Random())
	b := g.Base().Multiply(g.NewScalar().Random())

	sum := a.Copy().Add(b)
	diff := sum.Subtract(b)

	require.Equal(t, 1, diff.Equal(a))
}

func TestElementDoubleMatchesAdd(t *testing.T) {
	g := group(t)

	a := g.Base().Multiply(g.NewScalar().Random())

	doubled := a.Copy().Double()
	added := a.Copy().Add(a)

	require.Equal(t, 1, doubled.Equal(added))
}

func TestScalarMultiplyDistributesOverAdd(t *testing.T) {
	g := group(t)

	s1 := g.NewScalar().Random()
	s2 := g.NewScalar().Random()
	sSum := s1.Copy().Add(s2)

	lhs := g.Base().Multiply(sSum)

	rhs := g.Base().Multiply(s1).Add(g.Base().Multiply(s2))

	require.Equal(t, 1, lhs.Equal(rhs))
}

func TestScalarEncodeDecodeRoundTrip(t *testing.T) {
	g := group(t)

	for i := 0; i < 50; i++ {
		s := g.NewScalar().Random()
		enc := s.Encode()
		require.Len(t, enc, g.ScalarLength())

		dec := g.NewScalar()
		require.NoError(t, dec.Decode(enc))
		require.Equal(t, 1, s.Equal(dec))
	}
}

func TestScalarInvert(t *testing.T) {
	g := group(t)

	s := g.NewScalar().Random()
	inv := s.Copy().Invert()

	product := s.Copy().Multiply(inv)
	require.Equal(t, 1, product.Equal(g.NewScalar().One()))
}

func TestDecodeRejectsBadLength(t *testing.T) {
	g := group(t)
	require.Error(t, g.NewElement().Decode(make([]byte, 31)))
}

func TestDecodeRejectsNonCanonical(t *testing.T) {
	g := group(t)

	// All-0xff is never a valid canonical encoding: it exceeds the field
	// modulus p = 2^255 - 19.
	bad := make([]byte, 32)
	for i := range bad {
		bad[i] = 0xff
	}

	require.Error(t, g.NewElement().Decode(bad))
}

func TestHashToGroupIsDeterministicAndDistinct(t *testing.T) {
	g := group(t)

	dst := []byte("ristretto255_XMD:SHA-512_R255MAP_RO_test")

	e1 := g.HashToGroup([]byte("abc"), dst)
	e2 := g.HashToGroup([]byte("abc"), dst)
	require.Equal(t, 1, e1.Equal(e2))

	e3 := g.HashToGroup([]byte("xyz"), dst)
	require.NotEqual(t, 1, e1.Equal(e3))
}

func TestHashToScalarIsDeterministic(t *testing.T) {
	g := group(t)

	dst := []byte("ristretto255_XMD:SHA-512_R255MAP_RO_test")

	s1 := g.HashToScalar([]byte("abc"), dst)
	s2 := g.HashToScalar([]byte("abc"), dst)
	require.Equal(t, 1, s1.Equal(s2))
}
