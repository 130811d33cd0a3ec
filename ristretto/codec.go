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
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/field"
)

// ristrettoEncode implements the Ristretto255 Encode algorithm
// (draft-irtf-cfrg-ristretto255-decaf448 §4.4): it picks, out of the coset
// of four extended-coordinates representatives that map to the same
// Ristretto element, the canonical one and returns its 32-byte encoding.
func ristrettoEncode(p *edwards25519.Point) [32]byte {
	x, y, z, t := &p.X, &p.Y, &p.Z, &p.T

	var u1, u2 field.Element
	var zpy, zmy field.Element
	zpy.Add(z, y)
	zmy.Subtract(z, y)
	u1.Multiply(&zpy, &zmy)
	u2.Multiply(x, y)

	var u2sq field.Element
	u2sq.Square(&u2)

	var ratioDen field.Element
	ratioDen.Multiply(&u1, &u2sq)

	one := new(field.Element).One()
	invsqrt, _ := new(field.Element).SqrtRatio(one, &ratioDen)

	var i1, i2 field.Element
	i1.Multiply(invsqrt, &u1)
	i2.Multiply(invsqrt, &u2)

	var zInv field.Element
	var i2t field.Element
	i2t.Multiply(&i2, t)
	zInv.Multiply(&i1, &i2t)

	var ix, iy field.Element
	ix.Multiply(x, field.SqrtM1)
	iy.Multiply(y, field.SqrtM1)

	enchantedDenominator := new(field.Element).Multiply(&i1, edwards25519.InvSqrtAMinusD())

	var tzInv field.Element
	tzInv.Multiply(t, &zInv)
	rotate := tzInv.IsNegative()

	xOut := new(field.Element)
	yOut := new(field.Element)
	xOut.Select(&iy, x, rotate)
	yOut.Select(&ix, y, rotate)

	denInv := new(field.Element)
	denInv.Select(enchantedDenominator, &i2, rotate)

	var xzInv field.Element
	xzInv.Multiply(xOut, &zInv)
	yOut.CondNegate(yOut, xzInv.IsNegative())

	var zMinusY field.Element
	zMinusY.Subtract(z, yOut)

	s := new(field.Element).Multiply(denInv, &zMinusY)
	s.CondNegate(s, s.IsNegative())

	var out [32]byte
	copy(out[:], s.Bytes())

	return out
}

// ristrettoDecode implements the Ristretto255 Decode algorithm
// (draft-irtf-cfrg-ristretto255-decaf448 §4.3). It returns (point, true) on
// success, or (nil, false) if in is not a valid Ristretto255 encoding.
func ristrettoDecode(in []byte) (*edwards25519.Point, bool) {
	if len(in) != 32 {
		return nil, false
	}

	if !field.IsCanonical(in) {
		return nil, false
	}

	s := new(field.Element).SetBytes(in)
	if s.IsNegative() == 1 {
		return nil, false
	}

	one := new(field.Element).One()

	var ss field.Element
	ss.Square(s)

	u1 := new(field.Element).Subtract(one, &ss)
	u2 := new(field.Element).Add(one, &ss)

	var u2sq field.Element
	u2sq.Square(u2)

	var u1sq field.Element
	u1sq.Square(u1)

	negD := new(field.Element).Negate(edwards25519.D())

	var t1 field.Element
	t1.Multiply(negD, &u1sq)

	v := new(field.Element).Subtract(&t1, &u2sq)

	var vu2sq field.Element
	vu2sq.Multiply(v, &u2sq)

	invsqrt, wasSquare := new(field.Element).SqrtRatio(one, &vu2sq)
	if wasSquare == 0 {
		return nil, false
	}

	dx := new(field.Element).Multiply(invsqrt, u2)

	var dxv field.Element
	dxv.Multiply(dx, v)
	dy := new(field.Element).Multiply(invsqrt, &dxv)

	var twoS field.Element
	twoS.Add(s, s)

	x := new(field.Element).Multiply(&twoS, dx)
	x.Absolute(x)

	y := new(field.Element).Multiply(u1, dy)

	t := new(field.Element).Multiply(x, y)

	if t.IsNegative() == 1 || y.IsZero() == 1 {
		return nil, false
	}

	p := new(edwards25519.Point)
	p.X.Set(x)
	p.Y.Set(y)
	p.Z.One()
	p.T.Set(t)

	return p, true
}
