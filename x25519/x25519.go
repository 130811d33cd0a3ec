// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package x25519 implements the X25519 Diffie-Hellman function (RFC 7748):
// scalar multiplication of a clamped scalar against a Montgomery u-coordinate
// via the classic projective (X:Z) ladder. It composes only
// internal/core/field's constant-time field element and
// internal/core/scalar's clamp helper — it does not depend on the Edwards
// point package.
package x25519

import (
	"crypto/subtle"
	"errors"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/field"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/scalar"
)

const (
	// ScalarSize is the byte length of an X25519 scalar (private key).
	ScalarSize = 32

	// PointSize is the byte length of a Montgomery u-coordinate.
	PointSize = 32

	// a24 is (A-2)/4 for the Montgomery curve v^2 = u^3 + A*u^2 + u,
	// A = 486662, the constant folded into the ladder's z2 update.
	a24 = 121665
)

// Basepoint is the canonical Curve25519 generator's u-coordinate, u = 9.
var Basepoint = [32]byte{9}

// ErrBadScalarLength is returned by X25519 when the scalar input is not
// exactly ScalarSize bytes.
var ErrBadScalarLength = errors.New("x25519: invalid scalar length")

// ErrBadPointLength is returned by X25519 when the point input is not
// exactly PointSize bytes.
var ErrBadPointLength = errors.New("x25519: invalid point length")

// ScalarMult sets dst to the u-coordinate of [in]P where P has u-coordinate
// base, clamping in first per RFC 7748 §5. dst, in and base alias freely.
func ScalarMult(dst, in, base *[32]byte) {
	var clamped [32]byte
	copy(clamped[:], in[:])
	scalar.ClampInteger(&clamped)

	u := new(field.Element).SetBytes(base[:])
	out := ladder(&clamped, u)
	copy(dst[:], out.Bytes())
}

// ScalarBaseMult sets dst to the u-coordinate of [in]B for the canonical
// generator B.
func ScalarBaseMult(dst, in *[32]byte) {
	ScalarMult(dst, in, &Basepoint)
}

// X25519 computes the X25519 function over byte slices: the shared secret
// (or public key, when point is Basepoint) resulting from multiplying the
// clamped scalar by point's u-coordinate.
//
// Per RFC 7748 §6.1, X25519 does not reject low-order or otherwise
// contributory-broken inputs: a low-order point yields a well-defined
// all-zero output rather than an error. Callers that need contributory
// behavior must check the result with IsContributory themselves — silently
// rejecting here would hide that policy choice from the caller.
//
// When IsContributory reports false, the caller is holding an all-zero
// shared secret contributed entirely by the other party's (low-order) key,
// and should abort rather than use it.
func X25519(scalarIn, point []byte) ([]byte, error) {
	if len(scalarIn) != ScalarSize {
		return nil, ErrBadScalarLength
	}
	if len(point) != PointSize {
		return nil, ErrBadPointLength
	}

	var in, base, dst [32]byte
	copy(in[:], scalarIn)
	copy(base[:], point)

	ScalarMult(&dst, &in, &base)

	return dst[:], nil
}

// IsContributory reports whether out is a valid, non-all-zero X25519
// output — the check a contributory-behavior-requiring caller (RFC 7748
// §6.1) should run before trusting the shared secret.
func IsContributory(out []byte) bool {
	var zero [32]byte
	return subtle.ConstantTimeCompare(out, zero[:]) != 1
}

// ladder runs the Montgomery ladder over 255 bits of the clamped scalar k
// (bit 254 down to bit 0 — bit 255 is always zero after clamping), against
// the starting u-coordinate u1, and returns the resulting u-coordinate. Each
// step performs a constant-time conditional swap (via field.Element.Swap)
// followed by one differential-addition-and-doubling step, so the sequence
// of field operations never depends on k's bits.
func ladder(k *[32]byte, u1 *field.Element) *field.Element {
	var x2, z2, x3, z3 field.Element
	x2.One()
	z2.Zero()
	x3.Set(u1)
	z3.One()

	swap := 0
	for t := 254; t >= 0; t-- {
		kt := int((k[t/8] >> uint(t%8)) & 1)
		swap ^= kt

		x2.Swap(&x3, swap)
		z2.Swap(&z3, swap)

		swap = kt

		var a, aa, b, bb, e, c, d, da, cb field.Element
		a.Add(&x2, &z2)
		aa.Square(&a)
		b.Subtract(&x2, &z2)
		bb.Square(&b)
		e.Subtract(&aa, &bb)
		c.Add(&x3, &z3)
		d.Subtract(&x3, &z3)
		da.Multiply(&d, &a)
		cb.Multiply(&c, &b)

		var sum, diff field.Element
		sum.Add(&da, &cb)
		x3.Square(&sum)
		diff.Subtract(&da, &cb)
		diff.Square(&diff)
		z3.Multiply(u1, &diff)

		x2.Multiply(&aa, &bb)

		var a24e field.Element
		a24e.Mult32(&e, a24)
		a24e.Add(&a24e, &aa)
		z2.Multiply(&e, &a24e)
	}

	x2.Swap(&x3, swap)
	z2.Swap(&z3, swap)

	var zInv, out field.Element
	zInv.Invert(&z2)
	out.Multiply(&x2, &zInv)

	return &out
}
