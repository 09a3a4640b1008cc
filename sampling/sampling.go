// Package sampling provides the torus/binary distributions the evaluator's
// noise and key generation draw from, layered directly over math/rand/v2.
package sampling

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/hideki1217/tfhe-core/ring"
)

// Source wraps a math/rand/v2 generator. Each sampler draws through a
// Source it is handed rather than owning one, so independent Sources can
// run on independent goroutines without sharing generator state.
type Source struct {
	rng *rand.Rand
}

// NewSource builds a Source seeded from two uint64 seeds, matching
// math/rand/v2.NewPCG's seed shape.
func NewSource(seed1, seed2 uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// NewSourceFromEntropy builds a Source seeded from the runtime's default
// (unpredictable) entropy source.
func NewSourceFromEntropy() *Source {
	return &Source{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// UniformTorus draws a torus element uniformly over the whole 32-bit range.
func (s *Source) UniformTorus() ring.Torus {
	return ring.FromBits(uint32(s.rng.Uint32()))
}

// UniformBinary draws a uniform, independent bit.
func (s *Source) UniformBinary() ring.Binary {
	return ring.Binary(s.rng.IntN(2))
}

// NextN fills out with n independently drawn values using next, the batch
// form every sampler below is built from.
func NextN[T any](s *Source, n int, next func(*Source) T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = next(s)
	}
	return out
}

// GaussianSampler draws torus noise from a Gaussian of standard deviation
// Sigma centered at 0 and wrapped onto the torus, the noise distribution
// TFHE encryption adds to mask the plaintext.
type GaussianSampler struct {
	Sigma float64
}

// NewGaussianSampler validates Sigma and returns a sampler for it. Sigma
// must be a finite, non-negative standard deviation expressed as a
// fraction of the torus (e.g. 2^-20 for a typical LWE noise level);
// construction fails fast rather than producing silently-wrong noise.
func NewGaussianSampler(sigma float64) (*GaussianSampler, error) {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return nil, fmt.Errorf("sampling: invalid gaussian sigma %v: must be finite and non-negative", sigma)
	}
	return &GaussianSampler{Sigma: sigma}, nil
}

// Sample draws one torus element from the sampler's Gaussian.
func (g *GaussianSampler) Sample(s *Source) ring.Torus {
	x := s.rng.NormFloat64() * g.Sigma
	return ring.FromReal(x)
}

// SampleN draws n independent torus elements from the sampler's Gaussian.
func (g *GaussianSampler) SampleN(s *Source, n int) []ring.Torus {
	return NextN(s, n, g.Sample)
}

// UniformBinarySampler draws independent uniform bits, the distribution
// TFHE secret-key coefficients are drawn from.
type UniformBinarySampler struct{}

// Sample draws one uniform bit.
func (UniformBinarySampler) Sample(s *Source) ring.Binary {
	return s.UniformBinary()
}

// SampleN draws n independent uniform bits.
func (u UniformBinarySampler) SampleN(s *Source, n int) []ring.Binary {
	return NextN(s, n, u.Sample)
}

// UniformTorusSampler draws torus elements uniformly over the full range,
// the distribution TFHE's random mask terms are drawn from.
type UniformTorusSampler struct{}

// Sample draws one uniform torus element.
func (UniformTorusSampler) Sample(s *Source) ring.Torus {
	return s.UniformTorus()
}

// SampleN draws n independent uniform torus elements.
func (u UniformTorusSampler) SampleN(s *Source, n int) []ring.Torus {
	return NextN(s, n, u.Sample)
}
