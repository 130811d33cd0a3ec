// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards25519

import "github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/field"

// projective holds a point in projective (X:Y:Z) coordinates, x = X/Z,
// y = Y/Z. Cheaper to double than extended coordinates; used as the
// intermediate of Point.Double.
type projective struct {
	X, Y, Z field.Element
}

// completed holds the output of a single addition or doubling step before it
// has been folded back into extended coordinates: x = X/Z, y = Y/T,
// x*y = (X/Z)*(Y/T) so the extended T-coordinate of the result is X*Y and
// its Z-coordinate is Z*T.
type completed struct {
	X, Y, Z, T field.Element
}

// projNiels is a precomputed point in the form (Y+X, Y-X, Z, 2dT), used to
// accelerate variable-base addition: mixing a Point with a projNiels costs
// 8M instead of the 9M+1D of two general extended-coordinate points.
type projNiels struct {
	YplusX, YminusX, Z, T2d field.Element
}

// affineNiels is a precomputed affine point in the form (y+x, y-x, 2dxy),
// with Z implicitly 1; used by fixed-base scalar multiplication against the
// precomputed generator table (mixed addition, 7M).
type affineNiels struct {
	YplusX, YminusX, XY2d field.Element
}

func (p *projective) setIdentity() *projective {
	p.X.Zero()
	p.Y.One()
	p.Z.One()
	return p
}

// fromExtended drops the T-coordinate: extended -> projective is a free
// reinterpretation.
func (p *projective) fromExtended(e *Point) *projective {
	p.X.Set(&e.X)
	p.Y.Set(&e.Y)
	p.Z.Set(&e.Z)
	return p
}

// double computes 2*P from projective coordinates into completed form, in
// 3M+4S, following the "dbl-2008-hwcd" formulas (HWCD Section 3.3, a = -1
// specialization folded into the completed-point representation).
func (c *completed) double(p *projective) *completed {
	var xx, yy, zz2, xPlusYsq field.Element

	xx.Square(&p.X)
	yy.Square(&p.Y)
	zz2.Square(&p.Z)
	zz2.Add(&zz2, &zz2)
	xPlusYsq.Add(&p.X, &p.Y)
	xPlusYsq.Square(&xPlusYsq)

	c.Y.Add(&yy, &xx)
	c.Z.Subtract(&yy, &xx)
	c.X.Subtract(&xPlusYsq, &c.Y)
	c.T.Subtract(&zz2, &c.Z)

	return c
}

// addProjNiels computes P + Q where Q is precomputed projNiels form, in 8M,
// following "add-2008-hwcd-3".
func (c *completed) addProjNiels(p *Point, q *projNiels) *completed {
	var yPlusX, yMinusX, pp, mm, tt2d, zz2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Subtract(&p.Y, &p.X)

	pp.Multiply(&yPlusX, &q.YplusX)
	mm.Multiply(&yMinusX, &q.YminusX)
	tt2d.Multiply(&p.T, &q.T2d)
	zz2.Multiply(&p.Z, &q.Z)
	zz2.Add(&zz2, &zz2)

	c.X.Subtract(&pp, &mm)
	c.Y.Add(&pp, &mm)
	c.Z.Add(&zz2, &tt2d)
	c.T.Subtract(&zz2, &tt2d)

	return c
}

// subProjNiels computes P - Q, mirroring addProjNiels with q's sign flipped.
func (c *completed) subProjNiels(p *Point, q *projNiels) *completed {
	var yPlusX, yMinusX, pp, mm, tt2d, zz2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Subtract(&p.Y, &p.X)

	pp.Multiply(&yPlusX, &q.YminusX)
	mm.Multiply(&yMinusX, &q.YplusX)
	tt2d.Multiply(&p.T, &q.T2d)
	zz2.Multiply(&p.Z, &q.Z)
	zz2.Add(&zz2, &zz2)

	c.X.Subtract(&pp, &mm)
	c.Y.Add(&pp, &mm)
	c.Z.Subtract(&zz2, &tt2d)
	c.T.Add(&zz2, &tt2d)

	return c
}

// addAffineNiels computes P + Q where Q is a precomputed affine-niels table
// entry (Z implicitly 1), in 7M.
func (c *completed) addAffineNiels(p *Point, q *affineNiels) *completed {
	var yPlusX, yMinusX, pp, mm, tt2d, z2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Subtract(&p.Y, &p.X)

	pp.Multiply(&yPlusX, &q.YplusX)
	mm.Multiply(&yMinusX, &q.YminusX)
	tt2d.Multiply(&p.T, &q.XY2d)
	z2.Add(&p.Z, &p.Z)

	c.X.Subtract(&pp, &mm)
	c.Y.Add(&pp, &mm)
	c.Z.Add(&z2, &tt2d)
	c.T.Subtract(&z2, &tt2d)

	return c
}

// subAffineNiels computes P - Q.
func (c *completed) subAffineNiels(p *Point, q *affineNiels) *completed {
	var yPlusX, yMinusX, pp, mm, tt2d, z2 field.Element

	yPlusX.Add(&p.Y, &p.X)
	yMinusX.Subtract(&p.Y, &p.X)

	pp.Multiply(&yPlusX, &q.YminusX)
	mm.Multiply(&yMinusX, &q.YplusX)
	tt2d.Multiply(&p.T, &q.XY2d)
	z2.Add(&p.Z, &p.Z)

	c.X.Subtract(&pp, &mm)
	c.Y.Add(&pp, &mm)
	c.Z.Subtract(&z2, &tt2d)
	c.T.Add(&z2, &tt2d)

	return c
}

// toExtended folds a completed point back into extended (X:Y:Z:T)
// coordinates: x = X/Z, y = Y/T -> the shared denominator is Z*T.
func (e *Point) toExtended(c *completed) *Point {
	e.X.Multiply(&c.X, &c.T)
	e.Y.Multiply(&c.Y, &c.Z)
	e.Z.Multiply(&c.Z, &c.T)
	e.T.Multiply(&c.X, &c.Y)
	return e
}

// toProjective folds a completed point into projective (X:Y:Z) coordinates,
// discarding the information needed to recover T cheaply.
func (p *projective) toProjective(c *completed) *projective {
	p.X.Multiply(&c.X, &c.T)
	p.Y.Multiply(&c.Y, &c.Z)
	p.Z.Multiply(&c.Z, &c.T)
	return p
}

func (q *projNiels) fromExtended(p *Point) *projNiels {
	q.YplusX.Add(&p.Y, &p.X)
	q.YminusX.Subtract(&p.Y, &p.X)
	q.Z.Set(&p.Z)
	q.T2d.Multiply(&p.T, d2)
	return q
}

// negate computes the projNiels representation of -P from P's.
func (q *projNiels) negate(p *projNiels) *projNiels {
	q.YplusX.Set(&p.YminusX)
	q.YminusX.Set(&p.YplusX)
	q.Z.Set(&p.Z)
	q.T2d.Negate(&p.T2d)
	return q
}

func (q *affineNiels) fromExtended(p *Point) *affineNiels {
	var zInv field.Element
	zInv.Invert(&p.Z)

	var x, y field.Element
	x.Multiply(&p.X, &zInv)
	y.Multiply(&p.Y, &zInv)

	q.YplusX.Add(&y, &x)
	q.YminusX.Subtract(&y, &x)
	q.XY2d.Multiply(&x, &y)
	q.XY2d.Multiply(&q.XY2d, d2)

	return q
}

func (q *affineNiels) negate(p *affineNiels) *affineNiels {
	q.YplusX.Set(&p.YminusX)
	q.YminusX.Set(&p.YplusX)
	q.XY2d.Negate(&p.XY2d)
	return q
}

// selectProjNiels sets q to table[|digit|] conditionally negated by
// digit's sign, scanning the entire table so the table index never branches
// on a secret value.
func selectProjNiels(table *[8]projNiels, digit int8) projNiels {
	sign := digit >> 7 // 0 or -1 (all-ones)
	absDigit := (digit ^ int8(sign)) - int8(sign)

	var result projNiels
	result.YplusX.One()
	result.YminusX.One()
	result.Z.One()
	result.T2d.Zero()

	for i := 1; i <= 8; i++ {
		cond := int(subtleEqualInt8(absDigit, int8(i)))
		result.YplusX.Select(&table[i-1].YplusX, &result.YplusX, cond)
		result.YminusX.Select(&table[i-1].YminusX, &result.YminusX, cond)
		result.Z.Select(&table[i-1].Z, &result.Z, cond)
		result.T2d.Select(&table[i-1].T2d, &result.T2d, cond)
	}

	var negated projNiels
	negated.negate(&result)
	negCond := int(sign & 1)
	result.YplusX.Select(&negated.YplusX, &result.YplusX, negCond)
	result.YminusX.Select(&negated.YminusX, &result.YminusX, negCond)
	result.Z.Select(&negated.Z, &result.Z, negCond)
	result.T2d.Select(&negated.T2d, &result.T2d, negCond)

	return result
}

// selectAffineNiels is the fixed-base analogue of selectProjNiels, scanning
// a table of 8 affine-niels entries.
func selectAffineNiels(table *[8]affineNiels, digit int8) affineNiels {
	sign := digit >> 7
	absDigit := (digit ^ int8(sign)) - int8(sign)

	var result affineNiels
	result.YplusX.One()
	result.YminusX.One()
	result.XY2d.Zero()

	for i := 1; i <= 8; i++ {
		cond := int(subtleEqualInt8(absDigit, int8(i)))
		result.YplusX.Select(&table[i-1].YplusX, &result.YplusX, cond)
		result.YminusX.Select(&table[i-1].YminusX, &result.YminusX, cond)
		result.XY2d.Select(&table[i-1].XY2d, &result.XY2d, cond)
	}

	var negated affineNiels
	negated.negate(&result)
	negCond := int(sign & 1)
	result.YplusX.Select(&negated.YplusX, &result.YplusX, negCond)
	result.YminusX.Select(&negated.YminusX, &result.YminusX, negCond)
	result.XY2d.Select(&negated.XY2d, &result.XY2d, negCond)

	return result
}

// subtleEqualInt8 returns 1 if a == b and 0 otherwise, without branching on
// the values.
func subtleEqualInt8(a, b int8) uint8 {
	x := uint8(a) ^ uint8(b)
	x |= x >> 4
	x |= x >> 2
	x |= x >> 1
	return (x & 1) ^ 1
}
