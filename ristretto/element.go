// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/edwards25519"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/field"
)

// Element implements the Element interface for the Ristretto255 group
// element, backed by an edwards25519.Point and the quotient-group
// encode/decode/equality defined in codec.go.
type Element struct {
	p edwards25519.Point
}

func checkElement(in internal.Element) *Element {
	if in == nil {
		panic(internal.ErrParamNilPoint)
	}

	ec, ok := in.(*Element)
	if !ok {
		panic(internal.ErrCastElement)
	}

	return ec
}

// Base sets e to the group's base point and returns it.
func (e *Element) Base() internal.Element {
	e.p.Set(edwards25519.Generator())
	return e
}

// Identity sets e to the point at infinity and returns it.
func (e *Element) Identity() internal.Element {
	e.p.SetIdentity()
	return e
}

// Add sets e = e + in and returns e.
func (e *Element) Add(in internal.Element) internal.Element {
	ec := checkElement(in)
	e.p.Add(&e.p, &ec.p)

	return e
}

// Double sets e = 2*e and returns e.
func (e *Element) Double() internal.Element {
	e.p.Double(&e.p)
	return e
}

// Negate sets e to its negation and returns e.
func (e *Element) Negate() internal.Element {
	e.p.Negate(&e.p)
	return e
}

// Subtract sets e = e - in and returns e.
func (e *Element) Subtract(in internal.Element) internal.Element {
	ec := checkElement(in)
	e.p.Subtract(&e.p, &ec.p)

	return e
}

// Multiply sets e = in*e and returns e.
func (e *Element) Multiply(in internal.Scalar) internal.Element {
	if in == nil {
		panic(internal.ErrParamNilScalar)
	}

	sc, ok := in.(*Scalar)
	if !ok {
		panic(internal.ErrCastScalar)
	}

	e.p.ScalarMult(&sc.s, &e.p)

	return e
}

// Equal returns 1 if e and in represent the same Ristretto255 element, 0
// otherwise. Comparison follows the quotient-group cross-multiplication rule
// (draft-irtf-cfrg-ristretto255-decaf448 §3.3.2), not plain projective
// equality, since each Ristretto element has four extended-coordinates
// representatives.
func (e *Element) Equal(in internal.Element) int {
	ec := checkElement(in)

	x1, y1 := &e.p.X, &e.p.Y
	x2, y2 := &ec.p.X, &ec.p.Y

	var x1y2, y1x2, x1x2, y1y2 field.Element
	x1y2.Multiply(x1, y2)
	y1x2.Multiply(y1, x2)
	x1x2.Multiply(x1, x2)
	y1y2.Multiply(y1, y2)

	return x1y2.Equal(&y1x2) | x1x2.Equal(&y1y2)
}

// IsIdentity reports whether e is the group's identity element.
func (e *Element) IsIdentity() bool {
	var id Element
	id.p.SetIdentity()

	return e.Equal(&id) == 1
}

// Set sets e to the value of in and returns e.
func (e *Element) Set(in internal.Element) internal.Element {
	ec := checkElement(in)
	e.p.Set(&ec.p)

	return e
}

// Copy returns a copy of e.
func (e *Element) Copy() internal.Element {
	c := new(Element)
	c.p.Set(&e.p)

	return c
}

// Encode returns the canonical 32-byte Ristretto255 encoding of e.
func (e *Element) Encode() []byte {
	out := ristrettoEncode(&e.p)
	return out[:]
}

// XCoordinate returns the canonical encoding of the x-coordinate of e's
// extended-coordinates representative. This is not a quotient-group
// invariant (it depends on which of the four representatives e currently
// holds); it mirrors the Edwards group's XCoordinate for callers that need a
// Diffie-Hellman-style output from a prime-order group rather than a proper
// Ristretto255 encoding.
func (e *Element) XCoordinate() []byte {
	return e.p.XCoordinate()
}

// Decode sets e to the decoding of in, and returns an error on failure.
func (e *Element) Decode(in []byte) error {
	p, ok := ristrettoDecode(in)
	if !ok {
		return internal.ErrParamInvalidPointEncoding
	}

	e.p = *p

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (e *Element) MarshalBinary() ([]byte, error) {
	return e.Encode(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (e *Element) UnmarshalBinary(data []byte) error {
	return e.Decode(data)
}
