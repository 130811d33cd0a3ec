// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ristretto implements the Ristretto255 prime-order group quotient
// over edwards25519, exposing a simple group API with hash-to-curve
// operations per draft-irtf-cfrg-ristretto255-decaf448.
package ristretto

import (
	"crypto"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/edwards25519"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/hash2curve"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/field"
	coreScalar "github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/scalar"
)

const (
	// ristrettoInputLength is the number of expanded bytes consumed by
	// hash-to-group: two 32-byte halves, each fed through the Elligator2 map.
	ristrettoInputLength = 64

	// H2C is the hash-to-curve ciphersuite identifier.
	H2C = "ristretto255_XMD:SHA-512_R255MAP_RO_"
)

// Group represents the Ristretto255 group.
type Group struct{}

// New returns a Ristretto255 Group.
func New() internal.Group {
	return Group{}
}

// NewScalar returns a new scalar set to 0.
func (r Group) NewScalar() internal.Scalar {
	return new(Scalar)
}

// NewElement returns the identity element (point at infinity).
func (r Group) NewElement() internal.Element {
	e := new(Element)
	e.p.SetIdentity()

	return e
}

// Base returns the group's base point a.k.a. canonical generator.
func (r Group) Base() internal.Element {
	e := new(Element)
	e.p.Set(edwards25519.Generator())

	return e
}

// HashToScalar safely maps arbitrary input to a Scalar.
func (r Group) HashToScalar(input, dst []byte) internal.Scalar {
	uniform := hash2curve.ExpandXMD(crypto.SHA512, input, dst, ristrettoInputLength)

	s := new(Scalar)
	s.s.FromBytesModOrderWide(uniform)

	return s
}

// HashToGroup safely maps arbitrary input to an Element in the Group, via
// expand_message_xmd followed by the Ristretto255 Elligator2 map applied to
// each half of the 64-byte digest, summed.
func (r Group) HashToGroup(input, dst []byte) internal.Element {
	uniform := hash2curve.ExpandXMD(crypto.SHA512, input, dst, ristrettoInputLength)

	return mapUniformBytes(uniform)
}

// EncodeToGroup non-uniformly maps arbitrary input to an Element in the
// Group. Ristretto255 has no distinct non-uniform encoding defined, so this
// matches HashToGroup.
func (r Group) EncodeToGroup(input, dst []byte) internal.Element {
	return r.HashToGroup(input, dst)
}

func mapUniformBytes(uniform []byte) internal.Element {
	t0 := new(field.Element).SetBytes(uniform[:32])
	t1 := new(field.Element).SetBytes(uniform[32:64])

	p0 := edwards25519.MapToCurve(t0)
	p1 := edwards25519.MapToCurve(t1)

	e := new(Element)
	e.p.Add(p0, p1)

	return e
}

// Ciphersuite returns the hash-to-curve ciphersuite identifier.
func (r Group) Ciphersuite() string {
	return H2C
}

// ScalarLength returns the byte size of an encoded scalar.
func (r Group) ScalarLength() int {
	return canonicalEncodingLength
}

// ElementLength returns the byte size of an encoded element.
func (r Group) ElementLength() int {
	return canonicalEncodingLength
}

// Order returns the order of the group's scalar field, l, in decimal.
func (r Group) Order() string {
	return coreScalar.L.String()
}
