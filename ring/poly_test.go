package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolynomialAddSubNeg(t *testing.T) {
	a := FromSlice([]int32{1, 2, 3, 4})
	b := FromSlice([]int32{10, 20, 30, 40})

	require.Equal(t, []int32{11, 22, 33, 44}, a.Add(b).Coeffs())
	require.Equal(t, []int32{-9, -18, -27, -36}, a.Sub(b).Coeffs())
	require.Equal(t, []int32{-1, -2, -3, -4}, a.Neg().Coeffs())
}

func TestPolynomialRotateNegacyclic(t *testing.T) {
	p := FromSlice([]int32{1, 2, 3, 4})

	require.Equal(t, []int32{1, 2, 3, 4}, p.Rotate(0).Coeffs())
	require.Equal(t, []int32{-4, 1, 2, 3}, p.Rotate(1).Coeffs())
	require.Equal(t, []int32{-3, -4, 1, 2}, p.Rotate(2).Coeffs())

	// Rotating by N negates every coefficient (X^N = -1).
	require.Equal(t, []int32{-1, -2, -3, -4}, p.Rotate(4).Coeffs())

	// Negative rotation is the inverse of positive rotation.
	require.Equal(t, p.Coeffs(), p.Rotate(1).Rotate(-1).Coeffs())
}

func TestPolynomialRotateOddDegree(t *testing.T) {
	p := FromSlice([]int32{1, 2, 3, 4, 5})

	require.Equal(t, []int32{-5, 1, 2, 3, 4}, p.Rotate(1).Coeffs())
	require.Equal(t, []int32{2, 3, 4, 5, -1}, p.Rotate(-1).Coeffs())

	// The rotation has period 2N.
	require.Equal(t, p.Coeffs(), p.Rotate(10).Coeffs())
	require.Equal(t, p.Rotate(3).Coeffs(), p.Rotate(13).Coeffs())
}

func TestPolynomialDegreeMismatchPanics(t *testing.T) {
	a := FromSlice([]int32{1, 2})
	b := FromSlice([]int32{1, 2, 3})
	require.Panics(t, func() { a.Add(b) })
}

func TestCrossInt32Schoolbook(t *testing.T) {
	// (1 + X) * (1 + X) = 1 + 2X + X^2 reduced mod X^4+1 (no wraparound here).
	a := FromSlice([]int32{1, 1, 0, 0})
	got := CrossInt32(a, a)
	require.Equal(t, []int32{1, 2, 1, 0}, got.Coeffs())
}

func TestCrossInt32SchoolbookWraps(t *testing.T) {
	// X^3 * X^2 = X^5 = -X (mod X^4+1).
	a := FromSlice([]int32{0, 0, 0, 1})
	b := FromSlice([]int32{0, 0, 1, 0})
	got := CrossInt32(a, b)
	require.Equal(t, []int32{0, -1, 0, 0}, got.Coeffs())
}

func TestCrossInt32DegreeThreeKnownProduct(t *testing.T) {
	a := FromSlice([]int32{2, 3, 4})
	b := FromSlice([]int32{4, 5, 6})
	got := CrossInt32(a, b)
	require.Equal(t, []int32{-30, -2, 43}, got.Coeffs())
}

func TestMulAddInt32MatchesCrossPlusC(t *testing.T) {
	a := FromSlice([]int32{2, 3, 4})
	b := FromSlice([]int32{4, 5, 6})
	c := FromSlice([]int32{1, 1, 1})

	want := CrossInt32(a, b).Add(c)
	got := MulAddInt32(a, b, c)
	require.Equal(t, want.Coeffs(), got.Coeffs())
}

func TestMulAddTorusInt32MatchesCrossPlusC(t *testing.T) {
	a := FromSlice([]Torus{FromBits(1 << 30), FromBits(1 << 29), 0, 0})
	one := FromSlice([]int32{1, 0, 0, 0})
	c := FromSlice([]Torus{FromBits(1 << 20), 0, 0, 0})

	want := CrossTorusInt32(a, one).Add(c)
	got := MulAddTorusInt32(a, one, c)
	require.Equal(t, want.Coeffs(), got.Coeffs())
}

func TestPolynomialMulScalar(t *testing.T) {
	a := FromSlice([]int32{1, 2, 3, 4})
	require.Equal(t, []int32{3, 6, 9, 12}, a.MulScalar(3).Coeffs())
}

func TestMulScalarTorus(t *testing.T) {
	p := FromSlice([]Torus{FromBits(1 << 30), FromBits(1 << 29), FromBits(1 << 28)})

	gotU32 := MulScalarU32(p, 3)
	for i, c := range p.Coeffs() {
		require.Equal(t, c.MulU32(3), gotU32.At(i))
	}

	gotI32 := MulScalarI32(p, -2)
	for i, c := range p.Coeffs() {
		require.Equal(t, c.MulI32(-2), gotI32.At(i))
	}

	gotOne := MulScalarBinary(p, One)
	require.Equal(t, p.Coeffs(), gotOne.Coeffs())

	gotZero := MulScalarBinary(p, Zero)
	for _, c := range gotZero.Coeffs() {
		require.Equal(t, Torus(0), c)
	}
}

func TestCrossTorusBinaryMatchesInt32Cross(t *testing.T) {
	a := FromSlice([]Torus{FromBits(1 << 30), FromBits(1 << 29), FromBits(1 << 28), 0})
	key := FromSlice([]Binary{One, Zero, One, One})

	asInt := make([]int32, key.N())
	for i, b := range key.Coeffs() {
		asInt[i] = int32(b)
	}

	want := CrossTorusInt32(a, FromSlice(asInt))
	got := CrossTorusBinary(a, key)
	require.Equal(t, want.Coeffs(), got.Coeffs())

	c := FromSlice([]Torus{FromBits(1 << 20), 0, 0, 0})
	require.Equal(t, want.Add(c).Coeffs(), MulAddTorusBinary(a, key, c).Coeffs())
}

func TestCrossTorusInt32Identity(t *testing.T) {
	a := FromSlice([]Torus{FromBits(1 << 30), FromBits(1 << 29), 0, 0})
	one := FromSlice([]int32{1, 0, 0, 0})
	got := CrossTorusInt32(a, one)
	require.Equal(t, a.Coeffs(), got.Coeffs())
}
