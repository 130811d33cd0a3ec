// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards25519

import (
	"crypto"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/hash2curve"
	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/field"
)

// hashToCurveInputLength is the number of expanded bytes consumed: two
// 32-byte halves, each fed through the Elligator2 map before being summed.
const hashToCurveInputLength = 64

// HashToCurve maps arbitrary input to a point in the edwards25519 prime
// order subgroup, via expand_message_xmd, the Elligator2 map applied to
// each half of the resulting 64-byte digest, and cofactor clearing.
// Unlike Ristretto255's HashToGroup, the output is a bare curve point: two
// distinct points can encode the same coset, so callers that need an
// injective, comparable group element belong in the ristretto package
// instead.
func HashToCurve(input, dst []byte) *Point {
	uniform := hash2curve.ExpandXMD(crypto.SHA512, input, dst, hashToCurveInputLength)

	t0 := new(field.Element).SetBytes(uniform[:32])
	t1 := new(field.Element).SetBytes(uniform[32:64])

	p0 := MapToCurve(t0)
	p1 := MapToCurve(t1)

	p := new(Point).Add(p0, p1)

	return p.MultByCofactor(p)
}
