// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards25519

import (
	"errors"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/field"
)

// Point is a point on the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2
//
// held in extended projective coordinates (X:Y:Z:T) with x = X/Z, y = Y/Z,
// x*y = T/Z. The identity element is (0:1:1:0). The zero value is not a
// valid point; use Identity or Generator to obtain one.
type Point struct {
	X, Y, Z, T field.Element
}

// ErrInvalidEncoding is returned by Decompress when the input bytes do not
// decode to a point on the curve: a non-canonical y-coordinate, or a y for
// which (y^2-1)/(d*y^2+1) is not a square in GF(p).
var ErrInvalidEncoding = errors.New("edwards25519: invalid point encoding")

// Identity returns the point at infinity (0, 1).
func Identity() *Point {
	return new(Point).SetIdentity()
}

// SetIdentity sets p to the identity element and returns p.
func (p *Point) SetIdentity() *Point {
	p.X.Zero()
	p.Y.One()
	p.Z.One()
	p.T.Zero()
	return p
}

// Generator returns the standard Ed25519 base point B.
func Generator() *Point {
	return new(Point).Set(generator)
}

// Set sets p to a copy of q and returns p.
func (p *Point) Set(q *Point) *Point {
	p.X.Set(&q.X)
	p.Y.Set(&q.Y)
	p.Z.Set(&q.Z)
	p.T.Set(&q.T)
	return p
}

// IsIdentity reports whether p is the identity element.
func (p *Point) IsIdentity() bool {
	return p.Equal(Identity()) == 1
}

// Equal returns 1 if p and q represent the same affine point, and 0
// otherwise. Comparison is done by cross-multiplication so it does not
// depend on the (non-unique) projective representative: X1*Z2 == X2*Z1 and
// Y1*Z2 == Y2*Z1.
func (p *Point) Equal(q *Point) int {
	var xz1, xz2, yz1, yz2 field.Element
	xz1.Multiply(&p.X, &q.Z)
	xz2.Multiply(&q.X, &p.Z)
	yz1.Multiply(&p.Y, &q.Z)
	yz2.Multiply(&q.Y, &p.Z)

	return xz1.Equal(&xz2) & yz1.Equal(&yz2)
}

// Negate sets p = -q and returns p. Negation flips the sign of X and T and
// leaves Y, Z untouched.
func (p *Point) Negate(q *Point) *Point {
	p.X.Negate(&q.X)
	p.Y.Set(&q.Y)
	p.Z.Set(&q.Z)
	p.T.Negate(&q.T)
	return p
}

// Double sets p = 2*q and returns p, via the projective-coordinates doubling
// formula (3M+4S).
func (p *Point) Double(q *Point) *Point {
	var proj projective
	proj.fromExtended(q)

	var c completed
	c.double(&proj)

	return p.toExtended(&c)
}

// Add sets p = q + r and returns p (9M+1D via a projNiels intermediate).
func (p *Point) Add(q, r *Point) *Point {
	var rNiels projNiels
	rNiels.fromExtended(r)

	var c completed
	c.addProjNiels(q, &rNiels)

	return p.toExtended(&c)
}

// Subtract sets p = q - r and returns p.
func (p *Point) Subtract(q, r *Point) *Point {
	var rNiels projNiels
	rNiels.fromExtended(r)

	var c completed
	c.subProjNiels(q, &rNiels)

	return p.toExtended(&c)
}

// MultByCofactor sets p = [8]q and returns p (three doublings; the curve's
// cofactor is 8).
func (p *Point) MultByCofactor(q *Point) *Point {
	p.Double(q)
	p.Double(p)
	p.Double(p)
	return p
}

// IsSmallOrder reports whether p has order dividing the cofactor 8, i.e.
// [8]p == identity. This flags the eight small-subgroup points that a
// strict Ed25519 verifier rejects as signing/verifying keys.
func (p *Point) IsSmallOrder() bool {
	var q Point
	return q.MultByCofactor(p).IsIdentity()
}

// IsTorsionFree reports whether p lies in the prime-order subgroup, i.e.
// [l]p == identity where l is the group order. l itself has no canonical
// scalar.Scalar representation (scalar.Scalar values are always held
// reduced mod l, so l reduces to 0) — this multiplies by l's raw bit
// pattern directly rather than going through the scalar field.
func (p *Point) IsTorsionFree() bool {
	return mulByGroupOrder(p).IsIdentity()
}

// CompressedSize is the byte length of a compressed Edwards point.
const CompressedSize = 32

// Compress returns the 32-byte little-endian encoding of p: the canonical
// encoding of y, with the sign of x folded into bit 255.
func (p *Point) Compress() [32]byte {
	var recip, x, y field.Element
	recip.Invert(&p.Z)
	x.Multiply(&p.X, &recip)
	y.Multiply(&p.Y, &recip)

	var out [32]byte
	copy(out[:], y.Bytes())
	out[31] ^= byte(x.IsNegative()) << 7

	return out
}

// Decompress decodes a 32-byte compressed Edwards point, recovering x from
// y via x = sqrt((y^2-1)/(d*y^2+1)) and applying the encoded sign. It
// returns ErrInvalidEncoding if y is not canonical or the radicand is not a
// square.
func Decompress(in []byte) (*Point, error) {
	if len(in) != CompressedSize {
		return nil, ErrInvalidEncoding
	}

	var buf [32]byte
	copy(buf[:], in)
	sign := buf[31] >> 7
	buf[31] &= 0x7f

	if !field.IsCanonical(buf[:]) {
		return nil, ErrInvalidEncoding
	}

	y := new(field.Element).SetBytes(buf[:])

	return decompressWithSign(y, int(sign))
}

// decompressWithSign implements the shared recovery-of-x step used both by
// Decompress and by the self-derivation of the base point in constants.go.
func decompressWithSign(y *field.Element, sign int) (*Point, error) {
	var y2, u, v, x field.Element
	y2.Square(y)
	u.Subtract(&y2, feOne)
	v.Multiply(&y2, d)
	v.Add(&v, feOne)

	root, wasSquare := x.SqrtRatio(&u, &v)
	if wasSquare == 0 {
		return nil, ErrInvalidEncoding
	}

	if root.IsZero() == 1 && sign == 1 {
		return nil, ErrInvalidEncoding
	}

	root.CondNegate(root, root.IsNegative()^sign)

	p := new(Point)
	p.X.Set(root)
	p.Y.Set(y)
	p.Z.One()
	p.T.Multiply(root, y)

	return p, nil
}

// XCoordinate returns the canonical 32-byte little-endian encoding of p's
// affine x-coordinate, e.g. for use as a Montgomery u-like public value in
// protocols that compare against an X25519 output.
func (p *Point) XCoordinate() []byte {
	var recip, x field.Element
	recip.Invert(&p.Z)
	x.Multiply(&p.X, &recip)

	return x.Bytes()
}
