// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards25519

import "github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/scalar"

// groupOrderBytes is the 32-byte little-endian encoding of the *unreduced*
// group order l = 2^252 + 27742317777372353535851937790883648493, used only
// by mulByGroupOrder (IsTorsionFree's [l]P check). This is distinct from a
// scalar.Scalar, whose values are always held reduced mod l and so can never
// represent l itself.
var groupOrderBytes = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// mulByGroupOrder computes [l]p by plain double-and-add over the public,
// fixed bit pattern of l. Not constant-time: l is a public constant, not
// secret material, so this is not on the constant-time hot path.
func mulByGroupOrder(p *Point) *Point {
	result := Identity()
	for i := 255; i >= 0; i-- {
		result.Double(result)
		bit := (groupOrderBytes[i/8] >> uint(i%8)) & 1
		if bit == 1 {
			result.Add(result, p)
		}
	}

	return result
}

// buildMultiplesTable returns the projNiels encodings of {P, 2P, ..., 8P},
// the table consumed by radix-16 variable-base scalar multiplication
// (spec.md §4.4 engine 1): each Radix16 digit is used directly as a table
// index, so the table must hold every multiple from 1 to 8, not just the
// odd ones.
func buildMultiplesTable(p *Point) *[8]projNiels {
	var table [8]projNiels
	table[0].fromExtended(p)

	current := new(Point).Set(p)
	for i := 1; i < 8; i++ {
		current.Add(current, p)
		table[i].fromExtended(current)
	}

	return &table
}

// buildOddMultiplesTable returns the projNiels encodings of {P, 3P, 5P, 7P,
// 9P, 11P, 13P, 15P}, consumed by width-5 NAF-based variable-time
// multiplication: a non-adjacent form's nonzero digits are always odd, so
// only the odd multiples need precomputing. Paired with selectProjNielsOdd,
// never with selectProjNiels.
func buildOddMultiplesTable(p *Point) *[8]projNiels {
	var table [8]projNiels
	table[0].fromExtended(p)

	var p2 Point
	p2.Double(p)

	current := new(Point).Set(p)
	for i := 1; i < 8; i++ {
		current.Add(&p2, current)
		table[i].fromExtended(current)
	}

	return &table
}

// selectProjNielsOdd is selectProjNiels' counterpart for a table of odd
// multiples {1P, 3P, ..., 15P}: digit must be odd (as guaranteed by
// width-5 NAF recoding), and is mapped to table index (|digit|+1)/2.
func selectProjNielsOdd(table *[8]projNiels, digit int8) projNiels {
	sign := digit >> 7
	absDigit := (digit ^ int8(sign)) - int8(sign)

	var result projNiels
	result.YplusX.One()
	result.YminusX.One()
	result.Z.One()
	result.T2d.Zero()

	for i := 1; i <= 8; i++ {
		cond := int(subtleEqualInt8(absDigit, int8(2*i-1)))
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

// ScalarMult sets p = s*q for an arbitrary point q and a (potentially
// secret) scalar s, and returns p. It builds the 8-entry table of multiples
// {q, 2q, ..., 8q}, recodes s in balanced radix-16, and for every digit (most to least
// significant) performs four doublings followed by one constant-time table
// lookup and add: the table scan and conditional negation never branch on a
// secret value.
func (p *Point) ScalarMult(s *scalar.Scalar, q *Point) *Point {
	table := buildMultiplesTable(q)
	digits := s.Radix16()

	acc := Identity()
	for i := 63; i >= 0; i-- {
		acc.Double(acc)
		acc.Double(acc)
		acc.Double(acc)
		acc.Double(acc)

		entry := selectProjNiels(table, digits[i])

		var c completed
		c.addProjNiels(acc, &entry)
		acc.toExtended(&c)
	}

	return p.Set(acc)
}

// ScalarBaseMult sets p = s*B for the canonical generator B, using the
// precomputed fixed-base table (fixedBaseTable, generated once at package
// load from repeated doublings of the generator — see table.go). Each of
// the 64 radix-16 digits contributes one constant-time table lookup and one
// mixed addition; there is no doubling in the main loop.
func (p *Point) ScalarBaseMult(s *scalar.Scalar) *Point {
	digits := s.Radix16()

	acc := Identity()
	for i := 0; i < 64; i++ {
		entry := selectAffineNiels(&fixedBaseTable[i], digits[i])

		var c completed
		c.addAffineNiels(acc, &entry)
		acc.toExtended(&c)
	}

	return p.Set(acc)
}

// varTimeScalarMult sets p = s*q using width-5 NAF recoding. s must be a
// PUBLIC scalar (e.g. a decoded verification scalar): the digit loop
// branches on NAF digit values and is not constant-time.
func (p *Point) varTimeScalarMult(s *scalar.Scalar, q *Point) *Point {
	naf := s.NonAdjacentForm(5)

	table := buildOddMultiplesTable(q)

	acc := Identity()
	started := false
	for i := 255; i >= 0; i-- {
		if started {
			acc.Double(acc)
		}

		if naf[i] != 0 {
			started = true
			// selectProjNielsOdd already folds the digit's sign into entry,
			// so the combining step is always an addition.
			entry := selectProjNielsOdd(table, naf[i])

			var c completed
			c.addProjNiels(acc, &entry)
			acc.toExtended(&c)
		}
	}

	if !started {
		acc.SetIdentity()
	}

	return p.Set(acc)
}

// ScalarMultVarTime is the exported, explicitly-named non-constant-time
// single-scalar multiply, for callers that operate on public scalars and
// want that guarantee documented at the call site.
func (p *Point) ScalarMultVarTime(s *scalar.Scalar, q *Point) *Point {
	return p.varTimeScalarMult(s, q)
}

// VarTimeDoubleScalarBaseMult computes [a]A + [b]B for public scalars a, b
// and an arbitrary point A, using Straus's method: both scalars are
// recoded in width-5 NAF and processed with a single shared doubling chain,
// so the combination costs one multiscalar pass instead of two independent
// multiplications plus an addition. This is the verification-equation
// workhorse of spec.md §4.4 engine 3 and §4.8. Not constant-time — a, b and
// the resulting combination are public by construction (a signature
// verification equation).
func VarTimeDoubleScalarBaseMult(a *scalar.Scalar, A *Point, b *scalar.Scalar) *Point {
	aTable := buildOddMultiplesTable(A)
	bTable := buildOddMultiplesTable(Generator())

	aNaf := a.NonAdjacentForm(5)
	bNaf := b.NonAdjacentForm(5)

	acc := Identity()
	started := false
	for i := 255; i >= 0; i-- {
		if started {
			acc.Double(acc)
		}

		if aNaf[i] != 0 {
			started = true
			entry := selectProjNielsOdd(aTable, aNaf[i])

			var c completed
			c.addProjNiels(acc, &entry)
			acc.toExtended(&c)
		}

		if bNaf[i] != 0 {
			started = true
			entry := selectProjNielsOdd(bTable, bNaf[i])

			var c completed
			c.addProjNiels(acc, &entry)
			acc.toExtended(&c)
		}
	}

	if !started {
		acc.SetIdentity()
	}

	return acc
}

// VarTimeMultiscalarMult computes the sum of scalars[i]*points[i] for
// parallel slices of public scalars and points, switching internally from a
// Straus-style interleaved-NAF pass (few points) to a bucketed Pippenger
// pass (many points) — spec.md §4.4 engine 3's "choose by call site"
// dispatch, with the threshold tuned for batch Ed25519 verification.
func VarTimeMultiscalarMult(scalars []*scalar.Scalar, points []*Point) *Point {
	if len(scalars) != len(points) {
		panic("edwards25519: mismatched scalar/point count")
	}

	if len(scalars) == 0 {
		return Identity()
	}

	const pippengerThreshold = 190
	if len(scalars) > pippengerThreshold {
		return pippengerMultiscalarMult(scalars, points)
	}

	return strausMultiscalarMult(scalars, points)
}

func strausMultiscalarMult(scalars []*scalar.Scalar, points []*Point) *Point {
	n := len(scalars)
	tables := make([]*[8]projNiels, n)
	nafs := make([][256]int8, n)

	for i := range scalars {
		tables[i] = buildOddMultiplesTable(points[i])
		nafs[i] = scalars[i].NonAdjacentForm(5)
	}

	acc := Identity()
	started := false
	for i := 255; i >= 0; i-- {
		if started {
			acc.Double(acc)
		}

		for j := 0; j < n; j++ {
			d := nafs[j][i]
			if d == 0 {
				continue
			}

			started = true
			entry := selectProjNielsOdd(tables[j], d)

			var c completed
			c.addProjNiels(acc, &entry)
			acc.toExtended(&c)
		}
	}

	if !started {
		acc.SetIdentity()
	}

	return acc
}

// pippengerBucketWidth picks a bucket digit width from log2(number of
// points), following the standard Pippenger tuning heuristic: wider buckets
// amortize precomputation better as the point count grows.
func pippengerBucketWidth(n int) uint {
	switch {
	case n < 500:
		return 6
	case n < 800:
		return 7
	case n < 2000:
		return 8
	case n < 4000:
		return 9
	default:
		return 10
	}
}

// pippengerMultiscalarMult implements bucketed Pippenger multiscalar
// multiplication for the many-points case (batch Ed25519 verification with
// a large number of signatures). Scalars are recoded in a non-adjacent-ish
// fixed-width radix-2^w digit set and accumulated into 2^(w-1) buckets per
// digit column; buckets are combined with a running-sum sweep
// (bucket[2^(w-1)], then + bucket[2^(w-1)-1], accumulating a weighted
// total), which is the standard way to avoid materializing an explicit
// multiply-by-index step per bucket.
func pippengerMultiscalarMult(scalars []*scalar.Scalar, points []*Point) *Point {
	w := pippengerBucketWidth(len(scalars))
	digitsPerScalar := 256/int(w) + 1
	half := 1 << (w - 1)

	digits := make([][]int16, len(scalars))
	for i, s := range scalars {
		digits[i] = signedRadixDigits(s, w, digitsPerScalar)
	}

	result := Identity()
	for col := digitsPerScalar - 1; col >= 0; col-- {
		for k := uint(0); k < w; k++ {
			result.Double(result)
		}

		buckets := make([]*Point, half+1)

		for i := range scalars {
			d := digits[i][col]
			if d == 0 {
				continue
			}

			idx := int(d)
			neg := false
			if idx < 0 {
				idx = -idx
				neg = true
			}

			if buckets[idx] == nil {
				buckets[idx] = Identity()
			}

			if neg {
				buckets[idx].Subtract(buckets[idx], points[i])
			} else {
				buckets[idx].Add(buckets[idx], points[i])
			}
		}

		sum := Identity()
		total := Identity()
		for b := half; b >= 1; b-- {
			if buckets[b] != nil {
				sum.Add(sum, buckets[b])
			}
			total.Add(total, sum)
		}

		result.Add(result, total)
	}

	return result
}

// signedRadixDigits recodes s into count signed digits of width w bits
// (values in [-2^(w-1), 2^(w-1))), least-significant first, propagating the
// carry out of each digit into the next — the same balanced recoding
// principle as Radix16, generalized to an arbitrary width for Pippenger.
// Digits are returned as int16: at w=10 a digit can reach -512, which does
// not fit in int8.
func signedRadixDigits(s *scalar.Scalar, w uint, count int) []int16 {
	b := s.Bytes()

	var bitbuf [256]uint8
	for i := 0; i < 256; i++ {
		bitbuf[i] = (b[i/8] >> uint(i%8)) & 1
	}

	digits := make([]int16, count)
	carry := int32(0)
	width := int32(1) << w

	for i := 0; i < count; i++ {
		var window int32
		for bitIdx := 0; bitIdx < int(w); bitIdx++ {
			pos := i*int(w) + bitIdx
			if pos < 256 {
				window |= int32(bitbuf[pos]) << uint(bitIdx)
			}
		}

		window += carry
		if window >= width/2 {
			digits[i] = int16(window - width)
			carry = 1
		} else {
			digits[i] = int16(window)
			carry = 0
		}
	}

	return digits
}
