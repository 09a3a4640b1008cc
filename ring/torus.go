// Package ring implements fixed-precision torus arithmetic and fixed-size
// negacyclic polynomial arithmetic over R_N = Z[X]/(X^N+1), the algebraic
// substrate a TFHE-style evaluator is built on.
package ring

import (
	"fmt"
	"math"
)

// Torus is an element of R/Z, the fractional part of a real number,
// represented as a 32-bit unsigned integer u such that the real value is
// u / 2^32. All arithmetic on Torus is exact modulo 2^32: Go's native
// wraparound on unsigned overflow gives the wrapping semantics the torus
// requires for free, so Add/Sub/Neg below are plain uint32 operations.
type Torus uint32

// FromReal maps a real number x to its torus representative: the
// fractional part of x, scaled to [0, 2^32) and truncated. This is total
// and uniform over the torus; there is no rejection.
func FromReal[F ~float32 | ~float64](x F) Torus {
	f := float64(x)
	frac := f - math.Floor(f)
	const scale = 1 << 32
	return Torus(uint64(frac * scale))
}

// FromBits wraps a raw 32-bit pattern as a Torus.
func FromBits(u uint32) Torus {
	return Torus(u)
}

// Inner returns the underlying 32-bit representation.
func (t Torus) Inner() uint32 {
	return uint32(t)
}

// ToReal returns the real value u/2^32 in [0,1) as a float64.
func (t Torus) ToReal() float64 {
	const inv = 1.0 / (1 << 32)
	return float64(uint32(t)) * inv
}

// ToFloat32 returns the real value u/2^32 in [0,1) as a float32.
func (t Torus) ToFloat32() float32 {
	return float32(t.ToReal())
}

// Add returns t+rhs, wrapping modulo 1.
func (t Torus) Add(rhs Torus) Torus {
	return t + rhs
}

// Sub returns t-rhs, wrapping modulo 1.
func (t Torus) Sub(rhs Torus) Torus {
	return t - rhs
}

// Neg returns -t, wrapping modulo 1.
func (t Torus) Neg() Torus {
	return -t
}

// MulU32 returns t*k, wrapping modulo 1.
func (t Torus) MulU32(k uint32) Torus {
	return Torus(uint32(t) * k)
}

// MulI32 returns t*k, wrapping modulo 1. Negative k is computed as
// -(t*|k|), matching the sign convention of the source decomposition.
func (t Torus) MulI32(k int32) Torus {
	if k < 0 {
		return t.MulU32(uint32(-k)).Neg()
	}
	return t.MulU32(uint32(k))
}

// MulBinary returns t*b: the identity when b is One, zero when b is Zero.
func (t Torus) MulBinary(b Binary) Torus {
	return t.MulU32(uint32(b))
}

// Decompose returns the signed base-2^bits digit decomposition of t into L
// digits, per the gadget-decomposition algorithm TFHE's external product
// requires:
//
//  1. requires L*bits <= 32 (a programmer error otherwise; panics).
//  2. if L*bits < 32, pre-rounds u by adding 2^(32-L*bits-1) (wrapping) to
//     fold the truncated tail into the kept digits via round-to-nearest.
//  3. extracts L unsigned base-2^bits digits from the rounded u, most
//     significant first.
//  4. walks digits from least to most significant, recentering each
//     unsigned digit u_i into [-2^(bits-1), 2^(bits-1)) and propagating
//     the resulting carry into u_{i-1}; the top digit's carry is discarded.
//
// Every returned digit lies in [-2^(bits-1), 2^(bits-1)).
func (t Torus) Decompose(bits, l int) []int32 {
	if bits <= 0 || l < 0 || l*bits > 32 {
		panic(fmt.Errorf("ring: invalid decomposition parameters bits=%d l=%d: l*bits must be in [0, 32]", bits, l))
	}
	if l == 0 {
		return nil
	}

	const total = 32
	u := uint32(t)

	if rem := total - l*bits; rem > 0 {
		u += 1 << (rem - 1)
	}

	bg := uint32(1) << uint(bits)
	mask := bg - 1

	unsigned := make([]uint32, l)
	for i := 0; i < l; i++ {
		shift := total - bits*(i+1)
		unsigned[i] = (u >> uint(shift)) & mask
	}

	digits := make([]int32, l)
	for i := l - 1; i >= 0; i-- {
		ui := unsigned[i]
		if 2*ui >= bg {
			digits[i] = int32(ui) - int32(bg)
			if i > 0 {
				unsigned[i-1]++
			}
		} else {
			digits[i] = int32(ui)
		}
	}

	return digits
}
