package x25519_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/x25519"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestRFC7748Vector1(t *testing.T) {
	scalar := decodeHex(t, "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4")
	point := decodeHex(t, "e6db6867583030db3594c1a424b15f7c726624ec26b3353b10a903a6d0ab1c4c")
	want := decodeHex(t, "c3da55379de9c6908e94ea4df28d084f32eccf03491c71f754b4075577a28552")

	got, err := x25519.X25519(scalar, point)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestScalarBaseMultMatchesBasepoint(t *testing.T) {
	scalar := decodeHex(t, "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4")

	var in, viaBase, viaScalarBase [32]byte
	copy(in[:], scalar)

	x25519.ScalarMult(&viaBase, &in, &x25519.Basepoint)
	x25519.ScalarBaseMult(&viaScalarBase, &in)

	require.Equal(t, viaBase, viaScalarBase)
}

func TestDHCommutativity(t *testing.T) {
	alicePriv := decodeHex(t, "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	bobPriv := decodeHex(t, "5dab087e624a8a4b79e17f8b83800ee66f3bb1292618b6fd1c2f8b27ff88e0eb")

	alicePub, err := x25519.X25519(alicePriv, x25519.Basepoint[:])
	require.NoError(t, err)
	bobPub, err := x25519.X25519(bobPriv, x25519.Basepoint[:])
	require.NoError(t, err)

	aliceShared, err := x25519.X25519(alicePriv, bobPub)
	require.NoError(t, err)
	bobShared, err := x25519.X25519(bobPriv, alicePub)
	require.NoError(t, err)

	require.Equal(t, aliceShared, bobShared)
}

func TestRejectsBadLengths(t *testing.T) {
	_, err := x25519.X25519(make([]byte, 31), x25519.Basepoint[:])
	require.ErrorIs(t, err, x25519.ErrBadScalarLength)

	_, err = x25519.X25519(make([]byte, 32), make([]byte, 31))
	require.ErrorIs(t, err, x25519.ErrBadPointLength)
}

func TestLowOrderPointYieldsAllZeroOutput(t *testing.T) {
	// u = 0 is a low-order (order-dividing-the-cofactor) input: the ladder
	// is still well-defined and must not error, per the contributory-
	// behavior design note (RFC 7748 §6.1) — only IsContributory flags it.
	var zeroPoint [32]byte
	scalar := decodeHex(t, "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")

	out, err := x25519.X25519(scalar, zeroPoint[:])
	require.NoError(t, err)
	require.False(t, x25519.IsContributory(out))
}
