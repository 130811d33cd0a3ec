// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file. This file's multiply/square carry chain is
// adapted from filippo.io/edwards25519's field/fe.go; see field.go for the
// full notice.

package field

import "math/bits"

// Schoolbook multiplication of five 51-bit limbs into ten 102-bit partial
// products, folded back using 2^255 ≡ 19 (mod p), then carried once. This
// mirrors the generic (non-assembly) path of every radix-51 field element
// implementation of this curve.

func mul64(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return
}

func addMul64(lo, hi, a, b uint64) (rlo, rhi uint64) {
	mhi, mlo := bits.Mul64(a, b)
	var carry uint64
	rlo, carry = bits.Add64(lo, mlo, 0)
	rhi, _ = bits.Add64(hi, mhi, carry)
	return
}

// shiftRightBy51 returns (hi<<13 | lo>>51), i.e. the 128-bit value (hi:lo)
// shifted right by 51 bits, which fits in 64 bits for our operand sizes.
func shiftRightBy51(lo, hi uint64) uint64 {
	return (hi << 13) | (lo >> 51)
}

// feMul sets v = a * b mod p.
func feMul(v, a, b *Element) {
	a0, a1, a2, a3, a4 := a.l0, a.l1, a.l2, a.l3, a.l4
	b0, b1, b2, b3, b4 := b.l0, b.l1, b.l2, b.l3, b.l4

	// b_i19 = 19 * b_i, used for the folded high terms.
	b1_19 := b1 * 19
	b2_19 := b2 * 19
	b3_19 := b3 * 19
	b4_19 := b4 * 19

	var r0lo, r0hi, r1lo, r1hi, r2lo, r2hi, r3lo, r3hi, r4lo, r4hi uint64

	r0lo, r0hi = mul64(a0, b0)
	r0lo, r0hi = addMul64(r0lo, r0hi, a1, b4_19)
	r0lo, r0hi = addMul64(r0lo, r0hi, a2, b3_19)
	r0lo, r0hi = addMul64(r0lo, r0hi, a3, b2_19)
	r0lo, r0hi = addMul64(r0lo, r0hi, a4, b1_19)

	r1lo, r1hi = mul64(a0, b1)
	r1lo, r1hi = addMul64(r1lo, r1hi, a1, b0)
	r1lo, r1hi = addMul64(r1lo, r1hi, a2, b4_19)
	r1lo, r1hi = addMul64(r1lo, r1hi, a3, b3_19)
	r1lo, r1hi = addMul64(r1lo, r1hi, a4, b2_19)

	r2lo, r2hi = mul64(a0, b2)
	r2lo, r2hi = addMul64(r2lo, r2hi, a1, b1)
	r2lo, r2hi = addMul64(r2lo, r2hi, a2, b0)
	r2lo, r2hi = addMul64(r2lo, r2hi, a3, b4_19)
	r2lo, r2hi = addMul64(r2lo, r2hi, a4, b3_19)

	r3lo, r3hi = mul64(a0, b3)
	r3lo, r3hi = addMul64(r3lo, r3hi, a1, b2)
	r3lo, r3hi = addMul64(r3lo, r3hi, a2, b1)
	r3lo, r3hi = addMul64(r3lo, r3hi, a3, b0)
	r3lo, r3hi = addMul64(r3lo, r3hi, a4, b4_19)

	r4lo, r4hi = mul64(a0, b4)
	r4lo, r4hi = addMul64(r4lo, r4hi, a1, b3)
	r4lo, r4hi = addMul64(r4lo, r4hi, a2, b2)
	r4lo, r4hi = addMul64(r4lo, r4hi, a3, b1)
	r4lo, r4hi = addMul64(r4lo, r4hi, a4, b0)

	carryPropagateWide(v, r0lo, r0hi, r1lo, r1hi, r2lo, r2hi, r3lo, r3hi, r4lo, r4hi)
}

// feSquare sets v = a * a mod p, exploiting the doubling of cross terms.
func feSquare(v, a *Element) {
	a0, a1, a2, a3, a4 := a.l0, a.l1, a.l2, a.l3, a.l4

	a0_2 := a0 * 2
	a1_2 := a1 * 2
	a1_38 := a1 * 38
	a2_38 := a2 * 38
	a3_38 := a3 * 38
	a3_19 := a3 * 19
	a4_19 := a4 * 19

	var r0lo, r0hi, r1lo, r1hi, r2lo, r2hi, r3lo, r3hi, r4lo, r4hi uint64

	// r0 = a0^2 + 38*a1*a4 + 38*a2*a3
	r0lo, r0hi = mul64(a0, a0)
	r0lo, r0hi = addMul64(r0lo, r0hi, a1_38, a4)
	r0lo, r0hi = addMul64(r0lo, r0hi, a2_38, a3)

	// r1 = 2*a0*a1 + 38*a2*a4 + 19*a3^2
	r1lo, r1hi = mul64(a0_2, a1)
	r1lo, r1hi = addMul64(r1lo, r1hi, a2_38, a4)
	r1lo, r1hi = addMul64(r1lo, r1hi, a3_19, a3)

	// r2 = 2*a0*a2 + a1^2 + 38*a3*a4
	r2lo, r2hi = mul64(a0_2, a2)
	r2lo, r2hi = addMul64(r2lo, r2hi, a1, a1)
	r2lo, r2hi = addMul64(r2lo, r2hi, a3_38, a4)

	// r3 = 2*a0*a3 + 2*a1*a2 + 19*a4^2
	r3lo, r3hi = mul64(a0_2, a3)
	r3lo, r3hi = addMul64(r3lo, r3hi, a1_2, a2)
	r3lo, r3hi = addMul64(r3lo, r3hi, a4_19, a4)

	// r4 = 2*a0*a4 + 2*a1*a3 + a2^2
	r4lo, r4hi = mul64(a0_2, a4)
	r4lo, r4hi = addMul64(r4lo, r4hi, a1_2, a3)
	r4lo, r4hi = addMul64(r4lo, r4hi, a2, a2)

	carryPropagateWide(v, r0lo, r0hi, r1lo, r1hi, r2lo, r2hi, r3lo, r3hi, r4lo, r4hi)
}

// carryPropagateWide folds ten 128-bit wide partial limbs into the five
// 51-bit limbs of v, applying one carry chain.
func carryPropagateWide(v *Element, r0lo, r0hi, r1lo, r1hi, r2lo, r2hi, r3lo, r3hi, r4lo, r4hi uint64) {
	c0 := shiftRightBy51(r0lo, r0hi)
	c1 := shiftRightBy51(r1lo, r1hi)
	c2 := shiftRightBy51(r2lo, r2hi)
	c3 := shiftRightBy51(r3lo, r3hi)
	c4 := shiftRightBy51(r4lo, r4hi)

	rr0 := r0lo&maskLow51Bits + c4*19
	rr1 := r1lo&maskLow51Bits + c0
	rr2 := r2lo&maskLow51Bits + c1
	rr3 := r3lo&maskLow51Bits + c2
	rr4 := r4lo&maskLow51Bits + c3

	v.l0, v.l1, v.l2, v.l3, v.l4 = rr0, rr1, rr2, rr3, rr4
	v.carryPropagate()
}
