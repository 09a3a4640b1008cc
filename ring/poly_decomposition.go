package ring

// DecomposePoly applies Torus.Decompose coefficientwise to p, returning l
// int32 polynomials d[0..l-1] such that, approximately,
// p == sum_i d[i] * Bg^(l-1-i) (scaled onto the torus), each d[i]'s
// coefficients lying in [-2^(bits-1), 2^(bits-1)). This is the polynomial
// lift of the gadget decomposition, the representation an external product
// multiplies a TRGSW ciphertext's rows against.
func DecomposePoly(p Polynomial[Torus], bits, l int) []Polynomial[int32] {
	n := p.N()
	out := make([]Polynomial[int32], l)
	for i := range out {
		out[i] = Polynomial[int32]{coeffs: make([]int32, n)}
	}
	for j := 0; j < n; j++ {
		digits := p.coeffs[j].Decompose(bits, l)
		for i := 0; i < l; i++ {
			out[i].coeffs[j] = digits[i]
		}
	}
	return out
}
