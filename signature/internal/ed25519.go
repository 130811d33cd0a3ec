// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal holds different signature mechanisms.
package internal

import (
	"crypto"
	"io"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/ed25519"
)

// Ed25519 implements the Signature interface over this module's from-scratch
// ed25519 package rather than crypto/ed25519.
type Ed25519 struct {
	sk ed25519.PrivateKey
	pk ed25519.PublicKey
}

// NewEd25519 returns an empty Ed25519 structure.
func NewEd25519() *Ed25519 {
	return &Ed25519{
		sk: nil,
		pk: nil,
	}
}

// SetPrivateKey loads the given private key seed and sets the public key
// accordingly.
func (ed *Ed25519) SetPrivateKey(privateKey []byte) {
	sk, err := ed25519.NewKeyFromSeed(privateKey)
	if err != nil {
		panic(err)
	}

	ed.sk = sk
	ed.pk = sk.Public()
}

// GenerateKey generates a fresh private/public key pair and stores it in ed.
func (ed *Ed25519) GenerateKey() error {
	pk, sk, err := ed25519.GenerateKey(nil)
	if err != nil {
		return err
	}

	ed.sk = sk
	ed.pk = pk

	return nil
}

// GetPrivateKey returns the private key seed (without the public key part).
func (ed *Ed25519) GetPrivateKey() []byte {
	return ed.sk.Seed()
}

// GetPublicKey returns the public key.
func (ed *Ed25519) GetPublicKey() []byte {
	return ed.pk
}

// Public implements the Signer.Public() function.
func (ed *Ed25519) Public() crypto.PublicKey {
	return crypto.PublicKey(ed.pk)
}

// SignatureLength returns the byte size of a signature.
func (ed *Ed25519) SignatureLength() uint {
	return ed25519.SignatureSize
}

// SignMessage uses the private key in ed to sign the input. The input
// doesn't need to be hashed beforehand.
func (ed *Ed25519) SignMessage(message ...[]byte) []byte {
	length := 0
	for _, in := range message {
		length += len(in)
	}

	buf := make([]byte, 0, length)

	for _, in := range message {
		buf = append(buf, in...)
	}

	sig, err := ed25519.Sign(ed.sk, buf)
	if err != nil {
		panic(err)
	}

	return sig
}

// Sign implements the Signer.Sign() function. opts is ignored: this scheme
// has no hash-pre-image variant selectable through crypto.SignerOpts.
func (ed *Ed25519) Sign(_ io.Reader, digest []byte, _ crypto.SignerOpts) (signature []byte, err error) {
	return ed25519.Sign(ed.sk, digest)
}

// Verify checks whether signature of the message is valid given the public
// key, using strict (non-cofactored) verification.
func (ed *Ed25519) Verify(publicKey, message, signature []byte) bool {
	return ed25519.Verify(publicKey, message, signature) == nil
}
