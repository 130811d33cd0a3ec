// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ed25519

// SignCtx signs message under the Ed25519ctx variant (RFC 8032 §5.1),
// binding the signature to ctx. Equivalent to Sign with WithContext(ctx).
func SignCtx(sk PrivateKey, message, ctx []byte) ([]byte, error) {
	return Sign(sk, message, WithContext(ctx))
}

// SignPH signs message under the Ed25519ph variant (RFC 8032 §5.1): message
// is first hashed with SHA-512, and the result is signed with an optional
// context. Equivalent to Sign with WithContext(ctx), WithPreHash().
func SignPH(sk PrivateKey, message, ctx []byte) ([]byte, error) {
	return Sign(sk, message, WithContext(ctx), WithPreHash())
}

// VerifyCtx verifies signature against message under the Ed25519ctx variant.
// Equivalent to Verify with WithContext(ctx).
func VerifyCtx(publicKey PublicKey, message, ctx, signature []byte) error {
	return Verify(publicKey, message, signature, WithContext(ctx))
}

// VerifyPH verifies signature against message under the Ed25519ph variant.
// Equivalent to Verify with WithContext(ctx), WithPreHash().
func VerifyPH(publicKey PublicKey, message, ctx, signature []byte) error {
	return Verify(publicKey, message, signature, WithContext(ctx), WithPreHash())
}
