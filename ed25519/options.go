// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ed25519

// config collects the knobs Sign/Verify accept as functional options,
// mirroring the ciphersuite/enum-driven construction used elsewhere in this
// module's Group facades.
type config struct {
	context    []byte
	preHash    bool
	cofactored bool
}

// Option configures a Sign or Verify call.
type Option func(*config)

// WithContext attaches a context string, switching Sign/Verify to the
// Ed25519ctx (or Ed25519ph, if combined with WithPreHash) domain-separated
// variant of RFC 8032 §5.1. ctx must be at most 255 bytes.
func WithContext(ctx []byte) Option {
	return func(c *config) { c.context = ctx }
}

// WithPreHash selects the Ed25519ph variant: the message is first hashed
// with SHA-512 before the usual signing/verification steps run over the
// digest.
func WithPreHash() Option {
	return func(c *config) { c.preHash = true }
}

// WithStrictVerification selects the default, non-cofactored verification
// equation ([S]B == R + [k]A checked directly) and additionally rejects
// small-order public keys. This is the only mode Sign respects; it is a
// no-op there.
func WithStrictVerification() Option {
	return func(c *config) { c.cofactored = false }
}

// WithCofactoredVerification selects the ZIP-215-style verification equation
// ([8][S]B == [8]R + [8][k]A), which tolerates small-order components of R
// and A. Has no effect on Sign.
func WithCofactoredVerification() Option {
	return func(c *config) { c.cofactored = true }
}

func buildConfig(opts []Option) *config {
	c := new(config)
	for _, opt := range opts {
		opt(c)
	}

	return c
}
