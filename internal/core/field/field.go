// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// This package's limb layout, carry chain and addition-chain inversion are
// adapted from filippo.io/edwards25519's field/fe.go (itself derived from
// the Go standard library's former ed25519/internal/edwards25519), under
// that package's BSD-3-Clause license reproduced below. Identifiers were
// renamed (L0..L4 -> l0..l4) and the file split into field.go/mul.go/
// invert.go to match this module's per-concern layout, but the underlying
// radix-51 representation and arithmetic sequence are the original work.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//   - Redistributions of source code must retain the above copyright
//     notice, this list of conditions and the following disclaimer.
//   - Redistributions in binary form must reproduce the above
//     copyright notice, this list of conditions and the following disclaimer
//     in the documentation and/or other materials provided with the
//     distribution.
//   - Neither the name of Google Inc. nor the names of its
//     contributors may be used to endorse or promote products derived from
//     this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

// Package field implements constant-time arithmetic over GF(2^255-19), the
// base field of Curve25519 and Ed25519.
//
// An Element represents an integer modulo p = 2^255 - 19. Internally it is
// held as five 51-bit-ish limbs, consistently with the radix-51 layout used
// throughout the reference implementations of this curve: the value equals
//
//	L0 + L1*2^51 + L2*2^102 + L3*2^153 + L4*2^204
//
// Limbs may exceed 2^51 between operations (up to 2^54); Reduce brings them
// back to canonical bounds. The zero value is the additive identity.
package field

import (
	"crypto/subtle"
	"encoding/binary"
	"math/big"
)

// Element is an element of GF(2^255-19).
type Element struct {
	l0, l1, l2, l3, l4 uint64
}

const maskLow51Bits uint64 = (1 << 51) - 1

var (
	feZero     = &Element{0, 0, 0, 0, 0}
	feOne      = &Element{1, 0, 0, 0, 0}
	feTwo      = &Element{2, 0, 0, 0, 0}
	feMinusOne = new(Element).Negate(feOne)

	// fieldOrder is p = 2^255 - 19, used only by the big.Int escape hatches.
	fieldOrder = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

	// SqrtM1 is a square root of -1 modulo p, used by SqrtRatio and by
	// Ristretto/decompression sign fixups.
	SqrtM1 = &Element{1718705420411056, 234908883556509,
		2233514472574048, 2117202627021982, 765476049583133}
)

// Zero sets v = 0 and returns v.
func (v *Element) Zero() *Element { *v = *feZero; return v }

// One sets v = 1 and returns v.
func (v *Element) One() *Element { *v = *feOne; return v }

// Set sets v = a and returns v.
func (v *Element) Set(a *Element) *Element { *v = *a; return v }

// carryPropagate brings limbs back under 2^51, folding the overflow of the
// top limb back in with a factor of 19 (2^255 ≡ 19 mod p).
func (v *Element) carryPropagate() *Element {
	c0 := v.l0 >> 51
	c1 := v.l1 >> 51
	c2 := v.l2 >> 51
	c3 := v.l3 >> 51
	c4 := v.l4 >> 51

	v.l0 = v.l0&maskLow51Bits + c4*19
	v.l1 = v.l1&maskLow51Bits + c0
	v.l2 = v.l2&maskLow51Bits + c1
	v.l3 = v.l3&maskLow51Bits + c2
	v.l4 = v.l4&maskLow51Bits + c3

	return v
}

// reduce brings v to the canonical representative in [0, p).
func (v *Element) reduce() *Element {
	v.carryPropagate()

	// v < 2^255 + 19 here; v + 19 overflows 2^255-1 (carries out of bit 255)
	// iff v >= p, which lets us detect "needs one more subtraction" branch
	// free.
	c := (v.l0 + 19) >> 51
	c = (v.l1 + c) >> 51
	c = (v.l2 + c) >> 51
	c = (v.l3 + c) >> 51
	c = (v.l4 + c) >> 51

	v.l0 += 19 * c

	v.l1 += v.l0 >> 51
	v.l0 &= maskLow51Bits
	v.l2 += v.l1 >> 51
	v.l1 &= maskLow51Bits
	v.l3 += v.l2 >> 51
	v.l2 &= maskLow51Bits
	v.l4 += v.l3 >> 51
	v.l3 &= maskLow51Bits
	v.l4 &= maskLow51Bits

	return v
}

// Add sets v = a + b and returns v.
func (v *Element) Add(a, b *Element) *Element {
	v.l0 = a.l0 + b.l0
	v.l1 = a.l1 + b.l1
	v.l2 = a.l2 + b.l2
	v.l3 = a.l3 + b.l3
	v.l4 = a.l4 + b.l4
	return v.carryPropagate()
}

// Subtract sets v = a - b and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	// Add 2*p before subtracting b so every limb stays non-negative; the
	// limb constants below are 2*p's limbs (2^52-38, then 2^52-2).
	v.l0 = (a.l0 + 0xFFFFFFFFFFFDA) - b.l0
	v.l1 = (a.l1 + 0xFFFFFFFFFFFFE) - b.l1
	v.l2 = (a.l2 + 0xFFFFFFFFFFFFE) - b.l2
	v.l3 = (a.l3 + 0xFFFFFFFFFFFFE) - b.l3
	v.l4 = (a.l4 + 0xFFFFFFFFFFFFE) - b.l4
	return v.carryPropagate()
}

// Negate sets v = -a and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(feZero, a)
}

// Select sets v to a if cond == 1, and to b if cond == 0. cond must be 0 or 1.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := uint64(cond) * (1<<64 - 1)
	v.l0 = (m & a.l0) | (^m & b.l0)
	v.l1 = (m & a.l1) | (^m & b.l1)
	v.l2 = (m & a.l2) | (^m & b.l2)
	v.l3 = (m & a.l3) | (^m & b.l3)
	v.l4 = (m & a.l4) | (^m & b.l4)
	return v
}

// Swap conditionally swaps v and u: if cond == 1 they are exchanged, if
// cond == 0 both are left unchanged.
func (v *Element) Swap(u *Element, cond int) {
	m := uint64(cond) * (1<<64 - 1)
	t := m & (v.l0 ^ u.l0)
	v.l0 ^= t
	u.l0 ^= t
	t = m & (v.l1 ^ u.l1)
	v.l1 ^= t
	u.l1 ^= t
	t = m & (v.l2 ^ u.l2)
	v.l2 ^= t
	u.l2 ^= t
	t = m & (v.l3 ^ u.l3)
	v.l3 ^= t
	u.l3 ^= t
	t = m & (v.l4 ^ u.l4)
	v.l4 ^= t
	u.l4 ^= t
}

// CondNegate sets v to -u if cond == 1, and to u if cond == 0.
func (v *Element) CondNegate(u *Element, cond int) *Element {
	var neg Element
	neg.Negate(u)
	return v.Select(&neg, u, cond)
}

// IsNegative returns 1 if v's canonical encoding has its least significant
// bit set, and 0 otherwise. This is the sign convention used throughout
// Ristretto and Ed25519 point compression.
func (v *Element) IsNegative() int {
	b := v.Bytes()
	return int(b[0] & 1)
}

// Absolute sets v to the non-negative representative of u.
func (v *Element) Absolute(u *Element) *Element {
	return v.CondNegate(u, u.IsNegative())
}

// IsZero returns 1 if v == 0 mod p, and 0 otherwise.
func (v *Element) IsZero() int {
	return v.Equal(feZero)
}

// Equal returns 1 if v and u are equal mod p, and 0 otherwise. Constant time.
func (v *Element) Equal(u *Element) int {
	sv, su := v.Bytes(), u.Bytes()
	return subtle.ConstantTimeCompare(sv, su)
}

func mul51(a uint64, b uint32) (lo uint64, hi uint64) {
	mh, ml := bitsMul64(a, uint64(b))
	lo = ml & maskLow51Bits
	hi = (mh << 13) | (ml >> 51)
	return
}

func bitsMul64(x, y uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1
	x0, x1 := x&mask32, x>>32
	y0, y1 := y&mask32, y>>32
	w0 := x0 * y0
	t := x1*y0 + w0>>32
	w1 := t & mask32
	w2 := t >> 32
	w1 += x0 * y1
	hi = x1*y1 + w2 + w1>>32
	lo = x * y
	return
}

// Mult32 sets v = x * y for a small (32-bit) multiplier y, and returns v.
func (v *Element) Mult32(x *Element, y uint32) *Element {
	x0lo, x0hi := mul51(x.l0, y)
	x1lo, x1hi := mul51(x.l1, y)
	x2lo, x2hi := mul51(x.l2, y)
	x3lo, x3hi := mul51(x.l3, y)
	x4lo, x4hi := mul51(x.l4, y)
	v.l0 = x0lo + 19*x4hi
	v.l1 = x1lo + x0hi
	v.l2 = x2lo + x1hi
	v.l3 = x3lo + x2hi
	v.l4 = x4lo + x3hi
	return v
}

// SetBytes sets v from a 32-byte little-endian encoding. The top bit of the
// last byte is ignored, and inputs are not reduced modulo p; callers that
// need a canonical value must reduce before comparing or re-encoding.
func (v *Element) SetBytes(x []byte) *Element {
	if len(x) != 32 {
		panic("field: invalid element input size")
	}

	v.l0 = binary.LittleEndian.Uint64(x[0:8]) & maskLow51Bits
	v.l1 = (binary.LittleEndian.Uint64(x[6:14]) >> 3) & maskLow51Bits
	v.l2 = (binary.LittleEndian.Uint64(x[12:20]) >> 6) & maskLow51Bits
	v.l3 = (binary.LittleEndian.Uint64(x[19:27]) >> 1) & maskLow51Bits
	v.l4 = (binary.LittleEndian.Uint64(x[24:32]) >> 12) & maskLow51Bits

	return v
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	var out [32]byte
	return v.putBytes(&out)
}

func (v *Element) putBytes(out *[32]byte) []byte {
	t := *v
	t.reduce()

	var buf [8]byte
	for i, l := range [5]uint64{t.l0, t.l1, t.l2, t.l3, t.l4} {
		bitsOffset := i * 51
		binary.LittleEndian.PutUint64(buf[:], l<<uint(bitsOffset%8))
		for j, bb := range buf {
			off := bitsOffset/8 + j
			if off >= len(out) {
				break
			}
			out[off] |= bb
		}
	}

	return out[:]
}

// IsCanonical reports whether the input is the canonical encoding of a field
// element, i.e. strictly less than p = 2^255-19.
func IsCanonical(x []byte) bool {
	if len(x) != 32 {
		return false
	}

	var e Element
	e.SetBytes(x)
	return subtle.ConstantTimeCompare(e.Bytes(), x) == 1
}

// FromBig sets v from a big.Int, reduced modulo p. Intended for test vectors
// and constant derivation, not for hot-path use.
func (v *Element) FromBig(x *big.Int) *Element {
	var b [32]byte
	r := new(big.Int).Mod(x, fieldOrder)
	buf := r.Bytes()
	for i, c := range buf {
		b[len(buf)-1-i] = c
	}
	return v.SetBytes(b[:])
}

// ToBig returns the canonical big.Int value of v.
func (v *Element) ToBig() *big.Int {
	b := v.Bytes()
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	return new(big.Int).SetBytes(be)
}
