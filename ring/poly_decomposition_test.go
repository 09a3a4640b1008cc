package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecomposePolyMatchesPerCoefficientDecompose(t *testing.T) {
	bits, l := 8, 4
	coeffs := []Torus{FromBits(0x80000000), FromBits(0x12345678), FromBits(0), FromBits(0xFFFFFFFF)}
	p := Polynomial[Torus]{coeffs: coeffs}

	digitPolys := DecomposePoly(p, bits, l)
	require.Len(t, digitPolys, l)

	for j, c := range coeffs {
		want := c.Decompose(bits, l)
		for i := 0; i < l; i++ {
			require.Equal(t, want[i], digitPolys[i].At(j), "digit %d of coefficient %d", i, j)
		}
	}
}
