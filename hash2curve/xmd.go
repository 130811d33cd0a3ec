// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package hash2curve

import (
	"crypto"
	"fmt"
	"hash"
	"math"
)

// expandXMD implements expand_message_xmd from
// draft-irtf-cfrg-hash-to-curve section 5.4.1, the message-expansion step
// that feeds Elligator2 for Ed25519/Ristretto255 hash-to-group and Ed25519ph
// style wide-reduction digests.
func expandXMD(id crypto.Hash, input, dst []byte, length int) []byte {
	h := id.New()
	dst = vetDSTXMD(h, dst)
	b := id.Size()
	blockSize := h.BlockSize()

	ell := math.Ceil(float64(length) / float64(b))
	if ell > 255 {
		panic(fmt.Errorf("the hash function's output length is too low: %d/%d", b, length))
	}

	zPad := make([]byte, blockSize)
	lib := i2osp(length, 2)
	zeroByte := []byte{0}
	dstPrime := dstPrime(dst)

	b0 := _hash(h, zPad, input, lib, zeroByte, dstPrime)
	b1 := _hash(h, b0, []byte{1}, dstPrime)

	if ell < 2 {
		return b1[0:length]
	}

	return xmd(h, b0, b1, dstPrime, uint(ell), length)
}

func dstPrime(dst []byte) []byte {
	return append(dst, byte(len(dst)))
}

// xmd expands the message digest until it reaches the desirable length.
func xmd(h hash.Hash, b0, b1, dstPrime []byte, ell uint, length int) []byte {
	uniformBytes := make([]byte, 0, length)
	uniformBytes = append(uniformBytes, b1...)
	bi := make([]byte, len(b1))
	copy(bi, b1)

	for i := uint(2); i <= ell; i++ {
		xor := xorSlices(bi, b0)
		bi = _hash(h, xor, []byte{byte(i)}, dstPrime)
		uniformBytes = append(uniformBytes, bi...)
	}

	return uniformBytes[0:length]
}

// xorSlices xors b0 into bi byte by byte, in place, and returns bi. b0 must
// be at least as long as bi.
func xorSlices(bi, b0 []byte) []byte {
	for i := range bi {
		bi[i] ^= b0[i]
	}

	return bi
}

func vetDSTXMD(h hash.Hash, dst []byte) []byte {
	if len(dst) <= dstMaxLength {
		return dst
	}

	return _hash(h, []byte(dstLongPrefix), dst)
}

func _hash(h hash.Hash, inputs ...[]byte) []byte {
	h.Reset()
	for _, in := range inputs {
		_, _ = h.Write(in)
	}

	return h.Sum(nil)
}
