package field_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Beneficial-AI-Foundation/libsignal-focus-dalek-lite/internal/core/field"
)

func randomElement(t *testing.T) *field.Element {
	t.Helper()
	var b [32]byte
	_, err := rand.Read(b[:])
	require.NoError(t, err)
	return new(field.Element).SetBytes(b[:])
}

func TestAddIdentity(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a := randomElement(t)
		var zero, sum field.Element
		sum.Add(a, zero.Zero())
		require.Equal(t, a.Bytes(), sum.Bytes())
	}
}

func TestSubSelf(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a := randomElement(t)
		var diff field.Element
		diff.Subtract(a, a)
		require.Equal(t, new(field.Element).Zero().Bytes(), diff.Bytes())
	}
}

func TestMulOne(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a := randomElement(t)
		var one, product field.Element
		product.Multiply(a, one.One())
		require.Equal(t, a.Bytes(), product.Bytes())
	}
}

func TestSquareMatchesMultiply(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a := randomElement(t)
		var sq, mul field.Element
		sq.Square(a)
		mul.Multiply(a, a)
		require.Equal(t, mul.Bytes(), sq.Bytes())
	}
}

func TestMulAssociative(t *testing.T) {
	for i := 0; i < 200; i++ {
		a, b, c := randomElement(t), randomElement(t), randomElement(t)
		var ab, abXc, bc, aXbc field.Element
		ab.Multiply(a, b)
		abXc.Multiply(&ab, c)
		bc.Multiply(b, c)
		aXbc.Multiply(a, &bc)
		require.Equal(t, abXc.Bytes(), aXbc.Bytes())
	}
}

func TestInvert(t *testing.T) {
	for i := 0; i < 500; i++ {
		a := randomElement(t)
		if a.IsZero() == 1 {
			continue
		}
		var inv, product field.Element
		inv.Invert(a)
		product.Multiply(a, &inv)
		require.Equal(t, new(field.Element).One().Bytes(), product.Bytes())
	}
}

func TestBytesRoundTrip(t *testing.T) {
	p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))
	for i := 0; i < 500; i++ {
		x, err := rand.Int(rand.Reader, p)
		require.NoError(t, err)

		e := new(field.Element).FromBig(x)
		require.Equal(t, x, e.ToBig())
	}
}

func TestSqrtRatioSquareCase(t *testing.T) {
	var u, v, r field.Element
	u.One()
	v.One()
	_, wasSquare := r.SqrtRatio(&u, &v)
	require.Equal(t, 1, wasSquare)

	var check field.Element
	check.Square(&r)
	require.Equal(t, u.Bytes(), check.Bytes())
}

func TestSelectAndSwap(t *testing.T) {
	a, b := randomElement(t), randomElement(t)

	var sel field.Element
	sel.Select(a, b, 1)
	require.Equal(t, a.Bytes(), sel.Bytes())
	sel.Select(a, b, 0)
	require.Equal(t, b.Bytes(), sel.Bytes())

	x, y := *a, *b
	x.Swap(&y, 1)
	require.Equal(t, b.Bytes(), x.Bytes())
	require.Equal(t, a.Bytes(), y.Bytes())
}

func TestIsCanonical(t *testing.T) {
	// p-1 is canonical.
	pMinus1 := []byte{
		0xec, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
	}
	require.True(t, field.IsCanonical(pMinus1))

	// p itself is not.
	p := []byte{
		0xed, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
	}
	require.False(t, field.IsCanonical(p))
}
