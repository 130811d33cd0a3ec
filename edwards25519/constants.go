// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package edwards25519 implements the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2
//
// that is birationally equivalent to Curve25519, together with variable and
// fixed base scalar multiplication, a Straus double-scalar engine, and
// Elligator2 hash-to-curve. It is the curve underlying the Ed25519 signature
// scheme and the Ristretto255 group quotient.
//
// Arithmetic is built directly on internal/core/field's constant-time
// GF(2^255-19) element and internal/core/scalar's scalar-field element; there
// is no dependency on a separately-maintained point-arithmetic library.
package edwards25519

import "github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/field"

func smallFieldElement(v uint64) *field.Element {
	var b [32]byte
	for i := 0; i < 8 && v > 0; i++ {
		b[i] = byte(v)
		v >>= 8
	}

	return new(field.Element).SetBytes(b[:])
}

// d and D2 are the curve's d = -121665/121666 parameter (and its double),
// computed from the small integer constants rather than transcribed as a
// magic byte string, so the derivation is auditable from the curve equation
// itself.
var (
	d  = new(field.Element).Negate(new(field.Element).Multiply(smallFieldElement(121665), new(field.Element).Invert(smallFieldElement(121666))))
	d2 = new(field.Element).Add(d, d)

	// montgomeryA is the Montgomery-form curve constant A = 486662 from
	// v^2 = u^3 + A*u^2 + u, an input of computeInvSqrtD.
	montgomeryA    = smallFieldElement(486662)
	montgomeryNegA = new(field.Element).Negate(montgomeryA)

	feOne  = new(field.Element).One()
	feZero = new(field.Element).Zero()
	feTwo  = smallFieldElement(2)

	// invSqrtD is 1/sqrt(-(A+2)), the constant of the Montgomery (u, v) to
	// Edwards (x, y) map; no function in this package reads it.
	invSqrtD = computeInvSqrtD()

	// invSqrtAMinusD is 1/sqrt(a-d) for this curve's a = -1, the "enchanted
	// denominator" constant used by Ristretto255 encode/decode.
	invSqrtAMinusD = computeInvSqrtAMinusD()

	// oneMinusDSq, dMinusOneSq and sqrtADMinusOne are the remaining
	// Ristretto255 Elligator constants: 1-d^2, (d-1)^2 and sqrt(a*d-1)
	// (a = -1, so a*d-1 = a-d, the same quantity invSqrtAMinusD inverts).
	oneMinusDSq    = computeOneMinusDSq()
	dMinusOneSq    = computeDMinusOneSq()
	sqrtADMinusOne = new(field.Element).Invert(invSqrtAMinusD)
)

func computeOneMinusDSq() *field.Element {
	var dSq field.Element
	dSq.Square(d)
	return new(field.Element).Subtract(feOne, &dSq)
}

func computeDMinusOneSq() *field.Element {
	var dMinusOne field.Element
	dMinusOne.Subtract(d, feOne)
	return new(field.Element).Square(&dMinusOne)
}

func computeInvSqrtD() *field.Element {
	aPlus2 := new(field.Element).Add(montgomeryA, feTwo)
	negAPlus2 := new(field.Element).Negate(aPlus2)
	r, _ := new(field.Element).SqrtRatio(feOne, negAPlus2)

	return r
}

func computeInvSqrtAMinusD() *field.Element {
	aMinusD := new(field.Element).Negate(new(field.Element).Add(feOne, d))
	r, _ := new(field.Element).SqrtRatio(feOne, aMinusD)

	return r
}

// D returns the curve's d parameter (d = -121665/121666).
func D() *field.Element { return new(field.Element).Set(d) }

// InvSqrtAMinusD returns 1/sqrt(a-d) (a = -1), the constant Ristretto255
// encode/decode uses to rotate between the two curve points of a coset that
// differ by the point of order 4.
func InvSqrtAMinusD() *field.Element { return new(field.Element).Set(invSqrtAMinusD) }

// generator is the standard Ed25519 base point, recovered from its y = 4/5
// coordinate via this package's own point decompression (sign bit clear),
// so the generator is self-consistently derived from the decode routine it
// will be exercised against, rather than pasted in as an opaque constant.
var generator = computeGenerator()

func computeGenerator() *Point {
	y := new(field.Element).Multiply(feTwo, feTwo) // 4
	five := new(field.Element).Add(y, feOne)
	y.Multiply(y, new(field.Element).Invert(five))

	p, err := decompressWithSign(y, 0)
	if err != nil {
		panic("edwards25519: failed to derive base point: " + err.Error())
	}

	return p
}
