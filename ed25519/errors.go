// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ed25519

import "errors"

var (
	// ErrInvalidEncoding indicates a key or signature field is not a valid
	// point/scalar encoding.
	ErrInvalidEncoding = errors.New("ed25519: invalid encoding")

	// ErrWeakPublicKey indicates a public key lying in the curve's small
	// (order-dividing-8) subgroup; strict verification rejects these.
	ErrWeakPublicKey = errors.New("ed25519: public key has small order")

	// ErrSignatureMismatch indicates the verification equation did not hold.
	ErrSignatureMismatch = errors.New("ed25519: signature verification failed")

	// ErrBatchFailure names the batch-failure error kind. VerifyBatch does not
	// return it: it reports failures through its per-signature []error result.
	ErrBatchFailure = errors.New("ed25519: batch verification failed")

	// ErrContextTooLong indicates a context string longer than 255 bytes, the
	// RFC 8032 dom2 length limit.
	ErrContextTooLong = errors.New("ed25519: context too long")

	// ErrBadSeedLength indicates a seed that is not SeedSize bytes.
	ErrBadSeedLength = errors.New("ed25519: bad seed length")

	// ErrBadPrivateKeyLength indicates a private key that is not
	// PrivateKeySize bytes.
	ErrBadPrivateKeyLength = errors.New("ed25519: bad private key length")

	// ErrBadPublicKeyLength indicates a public key that is not
	// PublicKeySize bytes.
	ErrBadPublicKeyLength = errors.New("ed25519: bad public key length")

	// ErrBadSignatureLength indicates a signature that is not
	// SignatureSize bytes.
	ErrBadSignatureLength = errors.New("ed25519: bad signature length")
)
