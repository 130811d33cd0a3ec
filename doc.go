// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

/*
Package crypto documents the curve25519 family engine this module provides:
field and scalar arithmetic, edwards25519 point operations and scalar
multiplication, X25519 key agreement, the Ristretto255 prime-order group,
and Ed25519 signing and verification. It has no exported API of its own;
the concrete packages are:

- edwards25519: point arithmetic, scalar multiplication engines,
  compression, and hash-to-curve.

- x25519: the Montgomery ladder and RFC 7748 key agreement function.

- ristretto: the Ristretto255 group, implementing the abstract Group/
  Element/Scalar interfaces in internal.

- ed25519: RFC 8032 signing, strict and cofactored verification, the
  Ed25519ctx/Ed25519ph variants, and batch verification.

- hash, hash2curve, encoding: the ambient digest, expand-message, and
  wire-format helpers the above packages are built on.

- signature: a scheme-agnostic façade over ed25519, mirroring the
  construction-by-identifier style used elsewhere in this module.
*/
package crypto
