package scalar_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/scalar"
)

func randomScalar(t *testing.T) *scalar.Scalar {
	t.Helper()
	var b [64]byte
	_, err := rand.Read(b[:])
	require.NoError(t, err)
	return new(scalar.Scalar).FromBytesModOrderWide(b[:])
}

func TestCanonicalRoundTrip(t *testing.T) {
	for i := 0; i < 500; i++ {
		s := randomScalar(t)
		var r scalar.Scalar
		ok := r.FromCanonicalBytes(s.Bytes())
		require.True(t, ok)
		require.Equal(t, s.Bytes(), r.Bytes())
	}
}

func TestFromBytesModOrderIdempotent(t *testing.T) {
	for i := 0; i < 500; i++ {
		s := randomScalar(t)
		var r scalar.Scalar
		r.FromBytesModOrder(s.Bytes())
		require.Equal(t, s.Bytes(), r.Bytes())
	}
}

func TestInvert(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := randomScalar(t)
		if s.IsZero() == 1 {
			continue
		}
		var inv, product scalar.Scalar
		inv.Invert(s)
		product.Multiply(s, &inv)
		require.Equal(t, new(scalar.Scalar).One().Bytes(), product.Bytes())
	}
}

func TestClampIdempotent(t *testing.T) {
	var seed [32]byte
	_, err := rand.Read(seed[:])
	require.NoError(t, err)

	var s1 scalar.Scalar
	s1.FromBitsClamped(seed)

	clamped := s1.Bytes()
	var clampedArr [32]byte
	copy(clampedArr[:], clamped)

	var s2 scalar.Scalar
	s2.FromBitsClamped(clampedArr)

	require.Equal(t, s1.Bytes(), s2.Bytes())
}

func TestRadix16Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := randomScalar(t)
		digits := s.Radix16()
		for _, d := range digits {
			require.True(t, d >= -8 && d <= 7)
		}
	}
}

func TestNonAdjacentFormNoAdjacentNonzero(t *testing.T) {
	for i := 0; i < 50; i++ {
		s := randomScalar(t)
		naf := s.NonAdjacentForm(5)

		lastNonzero := -100
		for i, d := range naf {
			if d == 0 {
				continue
			}
			require.GreaterOrEqual(t, i-lastNonzero, 4)
			lastNonzero = i
		}
	}
}

func TestAddSubInverse(t *testing.T) {
	for i := 0; i < 200; i++ {
		a, b := randomScalar(t), randomScalar(t)
		var sum, diff scalar.Scalar
		sum.Add(a, b)
		diff.Sub(&sum, b)
		require.Equal(t, a.Bytes(), diff.Bytes())
	}
}
