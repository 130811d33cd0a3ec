// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards25519

import "github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/field"

// MapToCurve implements the Ristretto255 Elligator2 one-way map
// (draft-irtf-cfrg-ristretto255-decaf448 §4.3.4): it sends a single field
// element to a point on the curve, with no rejection (every input maps to
// some point), so that applying it to two halves of a wide hash digest and
// adding the results yields a uniformly distributed group element.
func MapToCurve(t *field.Element) *Point {
	one := new(field.Element).One()

	var r field.Element
	r.Square(t)
	r.Multiply(&r, field.SqrtM1)

	var rPlus1 field.Element
	rPlus1.Add(&r, one)

	ns := new(field.Element).Multiply(&rPlus1, oneMinusDSq)

	c := new(field.Element).Negate(one)

	var cMinusRD field.Element
	cMinusRD.Multiply(d, &r)
	cMinusRD.Subtract(c, &cMinusRD)

	var rPlusD field.Element
	rPlusD.Add(&r, d)

	den := new(field.Element).Multiply(&cMinusRD, &rPlusD)

	s, nsDIsSquare := new(field.Element).SqrtRatio(ns, den)

	sPrime := new(field.Element).Multiply(s, t)
	sPrime.CondNegate(sPrime, 1-sPrime.IsNegative())

	s.Select(s, sPrime, nsDIsSquare)
	c.Select(c, &r, nsDIsSquare)

	var rMinus1 field.Element
	rMinus1.Subtract(&r, one)

	var cTimes field.Element
	cTimes.Multiply(c, &rMinus1)
	cTimes.Multiply(&cTimes, dMinusOneSq)

	nt := new(field.Element).Subtract(&cTimes, den)

	var sSq field.Element
	sSq.Square(s)

	w0 := new(field.Element)
	w0.Add(s, s)
	w0.Multiply(w0, den)

	w1 := new(field.Element).Multiply(nt, sqrtADMinusOne)

	w2 := new(field.Element).Subtract(one, &sSq)
	w3 := new(field.Element).Add(one, &sSq)

	p := new(Point)
	p.X.Multiply(w0, w3)
	p.Y.Multiply(w2, w1)
	p.Z.Multiply(w1, w3)
	p.T.Multiply(w0, w2)

	return p
}
