// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards25519

// fixedBaseTable holds, for each of the 64 Radix16 digit positions k, the
// eight affine-niels points {1, 2, ..., 8} * 16^k * B, where B is the
// canonical generator. ScalarBaseMult consumes this with no doublings in
// its main loop: every digit contributes one table lookup and one mixed
// addition.
//
// This differs from curve25519-dalek's packed two-digit-per-block layout
// (32 blocks of 8 entries, each serving a pair of adjacent digits via a
// shared doubling step) in favor of one block per digit position — simpler
// to generate and to reason about, at roughly double the precomputed table
// size. The precomputed values themselves are never transcribed as literal
// bytes; they are generated once at package load from the generator via
// this package's own doubling and addition.
var fixedBaseTable = computeFixedBaseTable()

func computeFixedBaseTable() *[64][8]affineNiels {
	var table [64][8]affineNiels

	basis := new(Point).Set(Generator())

	for k := 0; k < 64; k++ {
		current := new(Point).Set(basis)
		table[k][0].fromExtended(current)

		for j := 1; j < 8; j++ {
			current = new(Point).Add(current, basis)
			table[k][j].fromExtended(current)
		}

		var next Point
		next.Double(basis)
		next.Double(&next)
		next.Double(&next)
		next.Double(&next)
		basis = &next
	}

	return &table
}
