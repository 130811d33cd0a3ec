// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"math/big"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal"
	coreScalar "github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/scalar"
)

// canonicalEncodingLength is the byte size of an encoded Ristretto255 scalar.
const canonicalEncodingLength = 32

// Scalar implements the Scalar interface for Ristretto255 scalars. The
// Ristretto255 scalar field is exactly Ed25519's scalar field mod l, so this
// wraps internal/core/scalar's implementation directly rather than keeping a
// separate field.
type Scalar struct {
	s coreScalar.Scalar
}

func assertScalar(in internal.Scalar) *Scalar {
	if in == nil {
		panic(internal.ErrParamNilScalar)
	}

	sc, ok := in.(*Scalar)
	if !ok {
		panic(internal.ErrCastScalar)
	}

	return sc
}

// Zero sets s to 0 and returns it.
func (s *Scalar) Zero() internal.Scalar {
	s.s.Zero()
	return s
}

// One sets s to 1 and returns it.
func (s *Scalar) One() internal.Scalar {
	s.s.One()
	return s
}

// Random sets s to a uniformly random non-zero scalar and returns it. Wide
// reduction (64 random bytes mod l) avoids the bias a 32-byte reduction
// would introduce.
func (s *Scalar) Random() internal.Scalar {
	for {
		s.s.FromBytesModOrderWide(internal.RandomBytes(64))
		if s.s.IsZero() == 0 {
			return s
		}
	}
}

// Add sets s = s + in and returns s.
func (s *Scalar) Add(in internal.Scalar) internal.Scalar {
	o := assertScalar(in)
	s.s.Add(&s.s, &o.s)

	return s
}

// Subtract sets s = s - in and returns s.
func (s *Scalar) Subtract(in internal.Scalar) internal.Scalar {
	o := assertScalar(in)
	s.s.Sub(&s.s, &o.s)

	return s
}

// Multiply sets s = s * in and returns s.
func (s *Scalar) Multiply(in internal.Scalar) internal.Scalar {
	o := assertScalar(in)
	s.s.Multiply(&s.s, &o.s)

	return s
}

// Pow sets s = s**in mod l and returns s. If in is nil, s is set to 1.
func (s *Scalar) Pow(in internal.Scalar) internal.Scalar {
	if in == nil {
		return s.One()
	}

	o := assertScalar(in)
	r := new(big.Int).Exp(s.s.BigInt(), o.s.BigInt(), coreScalar.L)
	s.s.SetBigInt(r)

	return s
}

// Invert sets s = 1/s mod l and returns s.
func (s *Scalar) Invert() internal.Scalar {
	s.s.Invert(&s.s)
	return s
}

// Equal returns 1 if s and in are equal, 0 otherwise.
func (s *Scalar) Equal(in internal.Scalar) int {
	o := assertScalar(in)
	return s.s.Equal(&o.s)
}

// LessOrEqual returns 1 if s <= in, 0 otherwise.
func (s *Scalar) LessOrEqual(in internal.Scalar) int {
	o := assertScalar(in)
	if s.s.BigInt().Cmp(o.s.BigInt()) <= 0 {
		return 1
	}

	return 0
}

// IsZero returns whether s is 0.
func (s *Scalar) IsZero() bool {
	return s.s.IsZero() == 1
}

// Set sets s to the value of in and returns s.
func (s *Scalar) Set(in internal.Scalar) internal.Scalar {
	o := assertScalar(in)
	s.s.Set(&o.s)

	return s
}

// SetInt sets s = i mod l and returns an error if i is nil.
func (s *Scalar) SetInt(i *big.Int) error {
	if i == nil {
		return internal.ErrParamNilScalar
	}

	s.s.SetBigInt(i)

	return nil
}

// Copy returns a copy of s.
func (s *Scalar) Copy() internal.Scalar {
	c := new(Scalar)
	c.s.Set(&s.s)

	return c
}

// Encode returns the 32-byte little-endian encoding of s.
func (s *Scalar) Encode() []byte {
	return s.s.Bytes()
}

// Decode sets s to the decoding of in, and returns an error on failure.
func (s *Scalar) Decode(in []byte) error {
	if len(in) == 0 {
		return internal.ErrParamNilScalar
	}

	if len(in) != canonicalEncodingLength {
		return internal.ErrParamScalarLength
	}

	if !s.s.FromCanonicalBytes(in) {
		return internal.ErrParamScalarInvalidEncoding
	}

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	return s.Encode(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	return s.Decode(data)
}
