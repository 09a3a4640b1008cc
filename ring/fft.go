package ring

import (
	"fmt"
	"math"
	"math/big"
	"sync"
)

// fftPlan holds the precomputed twiddle tables for the half-size complex
// FFT convolution trick over R_N = Z[X]/(X^N+1): an N-point real negacyclic
// convolution is computed with one N/2-point complex transform pair plus a
// twist and an untwist, instead of an N-point transform, by packing a's
// first N/2 coefficients as real parts and its last N/2 coefficients as
// imaginary parts of an N/2-length complex vector, each entry twisted by a
// 2N-th root of unity.
type fftPlan struct {
	n       int          // N, the polynomial degree bound; must be even.
	m       int          // N/2, the complex transform length.
	twist   []complex128 // omega^k, k=0..m-1, omega = exp(i*pi/N)
	untwist []complex128 // omega^-k, k=0..m-1
	roots   []complex128 // m-th roots of unity, exp(-2*pi*i*k/m), k=0..m-1 (forward DFT)
	iroots  []complex128 // conjugates of roots (inverse DFT)
	rev     []int        // bit-reversal permutation of length m; nil unless m is a power of two
}

var (
	planCacheMu sync.RWMutex
	planCache   = map[int]*fftPlan{}
)

// getPlan returns the cached plan for degree n, building and inserting one
// under a write lock on first use. The cache is never evicted: the set of
// distinct N values a process exercises is small and fixed by its
// parameter choice.
func getPlan(n int) *fftPlan {
	planCacheMu.RLock()
	p, ok := planCache[n]
	planCacheMu.RUnlock()
	if ok {
		return p
	}

	planCacheMu.Lock()
	defer planCacheMu.Unlock()
	if p, ok := planCache[n]; ok {
		return p
	}
	p = newFFTPlan(n)
	planCache[n] = p
	return p
}

func newFFTPlan(n int) *fftPlan {
	if n <= 0 || n%2 != 0 {
		panic(fmt.Errorf("ring: fft requires an even polynomial degree, got %d", n))
	}
	m := n / 2

	twist := unitRoots(2*n, m, false)  // exp(+i*pi*k/N)
	untwist := unitRoots(2*n, m, true) // exp(-i*pi*k/N)
	roots := unitRoots(m, m, true)     // exp(-2*pi*i*k/m), forward DFT
	iroots := unitRoots(m, m, false)   // exp(+2*pi*i*k/m), inverse DFT

	// The radix-2 path needs a bit-reversal permutation; any other m falls
	// back to the direct DFT in transform, which needs none.
	var rev []int
	if m&(m-1) == 0 {
		rev = make([]int, m)
		bits := 0
		for (1 << bits) < m {
			bits++
		}
		for i := 0; i < m; i++ {
			r := 0
			x := i
			for b := 0; b < bits; b++ {
				r = (r << 1) | (x & 1)
				x >>= 1
			}
			rev[i] = r
		}
	}

	return &fftPlan{n: n, m: m, twist: twist, untwist: untwist, roots: roots, iroots: iroots, rev: rev}
}

// twiddlePrec is the big.Float working precision for the twiddle tables:
// comfortably past float64's 53 bits, so the angle-addition walk below
// cannot accumulate error visible after the final rounding.
const twiddlePrec = 80

// primitiveRoot returns cos(2*pi/order) and sin(2*pi/order) at big.Float
// precision. order must be a power of two; the angle is halved from pi down
// with cos(t/2) = sqrt((1+cos t)/2), sin(t/2) = sqrt((1-cos t)/2). Both
// halves stay in the first quadrant for t in (0, pi], so the positive
// square root (big.Float.Sqrt) is always the right branch.
func primitiveRoot(order int) (c, s *big.Float) {
	one := big.NewFloat(1).SetPrec(twiddlePrec)
	zero := big.NewFloat(0).SetPrec(twiddlePrec)
	if order == 1 {
		return one, zero
	}

	half := new(big.Float).SetPrec(twiddlePrec).SetFloat64(0.5)
	c = new(big.Float).SetPrec(twiddlePrec).SetFloat64(-1) // cos(pi)
	s = zero                                               // sin(pi)
	for o := 2; o < order; o <<= 1 {
		c2 := new(big.Float).SetPrec(twiddlePrec).Sqrt(new(big.Float).SetPrec(twiddlePrec).Mul(new(big.Float).Add(one, c), half))
		s2 := new(big.Float).SetPrec(twiddlePrec).Sqrt(new(big.Float).SetPrec(twiddlePrec).Mul(new(big.Float).Sub(one, c), half))
		c, s = c2, s2
	}
	return c, s
}

// unitRoots returns [exp(2*pi*i*k/order) for k in 0..count-1] rounded to
// complex128, conjugated when conj is set. For power-of-two order the walk
// multiplies by the primitive root at big.Float precision instead of
// calling math.Cos/math.Sin per entry, so every table entry is correctly
// rounded from a value whose own error is far below one float64 ulp; other
// orders have no sqrt-only angle construction and evaluate each entry with
// float64 trigonometry directly.
func unitRoots(order, count int, conj bool) []complex128 {
	if order&(order-1) != 0 {
		out := make([]complex128, count)
		for k := 0; k < count; k++ {
			theta := 2 * math.Pi * float64(k) / float64(order)
			s := math.Sin(theta)
			if conj {
				s = -s
			}
			out[k] = complex(math.Cos(theta), s)
		}
		return out
	}

	wc, ws := primitiveRoot(order)
	if conj {
		ws = new(big.Float).SetPrec(twiddlePrec).Neg(ws)
	}

	out := make([]complex128, count)
	cr := big.NewFloat(1).SetPrec(twiddlePrec)
	ci := big.NewFloat(0).SetPrec(twiddlePrec)
	for k := 0; k < count; k++ {
		rf, _ := cr.Float64()
		imf, _ := ci.Float64()
		out[k] = complex(rf, imf)

		// (cr + i*ci) *= (wc + i*ws)
		nr := new(big.Float).SetPrec(twiddlePrec).Sub(
			new(big.Float).SetPrec(twiddlePrec).Mul(cr, wc),
			new(big.Float).SetPrec(twiddlePrec).Mul(ci, ws),
		)
		ni := new(big.Float).SetPrec(twiddlePrec).Add(
			new(big.Float).SetPrec(twiddlePrec).Mul(cr, ws),
			new(big.Float).SetPrec(twiddlePrec).Mul(ci, wc),
		)
		cr, ci = nr, ni
	}
	return out
}

// transform runs the size-m complex DFT in place, using roots for the
// forward direction and iroots for the inverse: an iterative radix-2
// Cooley-Tukey FFT when m is a power of two, a direct O(m^2) DFT otherwise.
// The direct path keeps the FftCross family total over every even N; N
// values with a non-power-of-two half are rare enough that nothing faster
// is warranted.
func (p *fftPlan) transform(a []complex128, roots []complex128) {
	m := p.m
	if p.rev == nil {
		tmp := make([]complex128, m)
		for k := 0; k < m; k++ {
			var acc complex128
			for j := 0; j < m; j++ {
				acc += a[j] * roots[(j*k)%m]
			}
			tmp[k] = acc
		}
		copy(a, tmp)
		return
	}
	for i, r := range p.rev {
		if r > i {
			a[i], a[r] = a[r], a[i]
		}
	}
	for size := 2; size <= m; size <<= 1 {
		half := size / 2
		stride := m / size
		for start := 0; start < m; start += size {
			for j := 0; j < half; j++ {
				w := roots[j*stride]
				u := a[start+j]
				v := a[start+j+half] * w
				a[start+j] = u + v
				a[start+j+half] = u - v
			}
		}
	}
}

// forward runs the size-m complex DFT.
func (p *fftPlan) forward(a []complex128) {
	p.transform(a, p.roots)
}

// inverse runs the size-m complex inverse DFT, normalizing by 1/m.
func (p *fftPlan) inverse(a []complex128) {
	p.transform(a, p.iroots)
	inv := complex(1/float64(p.m), 0)
	for i := range a {
		a[i] *= inv
	}
}

// pack twists n real coefficients into m complex values: coefficient k
// (k<m) becomes the real part, coefficient k+m becomes the imaginary
// part, each scaled by omega^k before the DFT so the subsequent pointwise
// product corresponds to negacyclic (not cyclic) convolution — the
// standard packing for evaluating a real negacyclic polynomial at the N/2
// odd powers of the primitive 2N-th root of unity that are roots of
// X^(N/2) = i, via one N/2-point complex DFT.
func (p *fftPlan) pack(a []float64) []complex128 {
	c := make([]complex128, p.m)
	for k := 0; k < p.m; k++ {
		c[k] = complex(a[k], a[k+p.m]) * p.twist[k]
	}
	return c
}

// unpack untwists the m complex values produced by an inverse DFT back into
// n real coefficients.
func (p *fftPlan) unpack(c []complex128) []float64 {
	out := make([]float64, p.n)
	for k := 0; k < p.m; k++ {
		v := c[k] * p.untwist[k]
		out[k] = real(v)
		out[k+p.m] = imag(v)
	}
	return out
}

// convolveFloat64 computes the negacyclic convolution of two real
// coefficient vectors of length n via the half-size FFT trick.
func convolveFloat64(a, b []float64) []float64 {
	n := len(a)
	p := getPlan(n)

	ca := p.pack(a)
	cb := p.pack(b)
	p.forward(ca)
	p.forward(cb)

	cf := make([]complex128, p.m)
	for i := range cf {
		cf[i] = ca[i] * cb[i]
	}
	p.inverse(cf)

	return p.unpack(cf)
}

// convolveAddFloat64 computes a*b+c over real coefficient vectors of length
// n via the half-size FFT trick, adding c to the product in a fresh slice;
// c itself is not modified.
func convolveAddFloat64(a, b, c []float64) []float64 {
	conv := convolveFloat64(a, b)
	out := make([]float64, len(conv))
	for i := range out {
		out[i] = conv[i] + c[i]
	}
	return out
}

// FftCrossTorusInt32 computes the negacyclic convolution of a torus
// polynomial with a signed integer polynomial (typically a gadget digit
// polynomial) using the cached half-size FFT, rounding the float64 result
// back onto the torus. This trades the schoolbook's exactness for O(N log N)
// cost, the approximation TFHE's bootstrapped external product relies on.
func FftCrossTorusInt32(a Polynomial[Torus], b Polynomial[int32]) Polynomial[Torus] {
	a.requireSameDegreeGeneric(b.N())
	n := a.N()

	af := make([]float64, n)
	for i, v := range a.coeffs {
		af[i] = v.ToReal()
	}
	bf := make([]float64, n)
	for i, v := range b.coeffs {
		bf[i] = float64(v)
	}

	cf := convolveFloat64(af, bf)

	out := make([]Torus, n)
	for i, v := range cf {
		out[i] = FromReal(v)
	}
	return Polynomial[Torus]{coeffs: out}
}

// FftCrossFloat64 computes the negacyclic convolution of two float64
// polynomials using the cached half-size FFT.
func FftCrossFloat64(a, b Polynomial[float64]) Polynomial[float64] {
	a.requireSameDegreeGeneric(b.N())
	return Polynomial[float64]{coeffs: convolveFloat64(a.coeffs, b.coeffs)}
}

// FftMulAddTorusInt32 computes a*b+c in R_N using the cached half-size FFT,
// the step a gadget-decomposed external product repeats once per
// decomposition level. The product and the sum are built in freshly
// allocated buffers; c itself is not modified.
func FftMulAddTorusInt32(a Polynomial[Torus], b Polynomial[int32], c Polynomial[Torus]) Polynomial[Torus] {
	a.requireSameDegreeGeneric(b.N())
	a.requireSameDegreeGeneric(c.N())
	n := a.N()

	af := make([]float64, n)
	for i, v := range a.coeffs {
		af[i] = v.ToReal()
	}
	bf := make([]float64, n)
	for i, v := range b.coeffs {
		bf[i] = float64(v)
	}
	cf := make([]float64, n)
	for i, v := range c.coeffs {
		cf[i] = v.ToReal()
	}

	sum := convolveAddFloat64(af, bf, cf)

	out := make([]Torus, n)
	for i, v := range sum {
		out[i] = FromReal(v)
	}
	return Polynomial[Torus]{coeffs: out}
}

// FftMulAddFloat64 computes a*b+c over float64 polynomials using the cached
// half-size FFT.
func FftMulAddFloat64(a, b, c Polynomial[float64]) Polynomial[float64] {
	a.requireSameDegreeGeneric(b.N())
	a.requireSameDegreeGeneric(c.N())
	return Polynomial[float64]{coeffs: convolveAddFloat64(a.coeffs, b.coeffs, c.coeffs)}
}
