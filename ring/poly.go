package ring

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of coefficient types our negacyclic polynomials are
// instantiated over in this module: any signed integer (gadget digits) or
// float (FFT buffers), via constraints.Signed/constraints.Float, plus the
// torus and binary types themselves, listed explicitly since their
// underlying unsigned-integer kinds must stay disjoint from the signed/
// float terms above for the union to type-check.
type Number interface {
	constraints.Signed | constraints.Float | Torus | Binary
}

// Polynomial is an element of R_N = Z[X]/(X^N+1): N coefficients of type T,
// index i holding the coefficient of X^i. N is a runtime value fixed at
// construction and validated once, not a compile-time constant.
type Polynomial[T Number] struct {
	coeffs []T
}

// New builds a zero polynomial of degree < n.
func New[T Number](n int) Polynomial[T] {
	if n <= 0 {
		panic(fmt.Errorf("ring: polynomial degree must be positive, got %d", n))
	}
	return Polynomial[T]{coeffs: make([]T, n)}
}

// FromSlice builds a polynomial whose coefficients are exactly coeffs, index
// i holding the coefficient of X^i. The slice is copied; coeffs determines N.
func FromSlice[T Number](coeffs []T) Polynomial[T] {
	if len(coeffs) == 0 {
		panic(fmt.Errorf("ring: polynomial degree must be positive, got 0"))
	}
	out := make([]T, len(coeffs))
	copy(out, coeffs)
	return Polynomial[T]{coeffs: out}
}

// N returns the polynomial's fixed degree bound.
func (p Polynomial[T]) N() int {
	return len(p.coeffs)
}

// At returns the coefficient of X^i.
func (p Polynomial[T]) At(i int) T {
	return p.coeffs[i]
}

// Set sets the coefficient of X^i to v.
func (p Polynomial[T]) Set(i int, v T) {
	p.coeffs[i] = v
}

// Coeffs returns the backing coefficient slice, index i holding the
// coefficient of X^i. Mutating it mutates p.
func (p Polynomial[T]) Coeffs() []T {
	return p.coeffs
}

// Clone returns a deep copy of p.
func (p Polynomial[T]) Clone() Polynomial[T] {
	out := make([]T, len(p.coeffs))
	copy(out, p.coeffs)
	return Polynomial[T]{coeffs: out}
}

func (p Polynomial[T]) requireSameDegree(q Polynomial[T]) {
	if len(p.coeffs) != len(q.coeffs) {
		panic(fmt.Errorf("ring: polynomial degree mismatch: %d != %d", len(p.coeffs), len(q.coeffs)))
	}
}

// Add returns p+rhs, coefficientwise.
func (p Polynomial[T]) Add(rhs Polynomial[T]) Polynomial[T] {
	p.requireSameDegree(rhs)
	out := make([]T, len(p.coeffs))
	for i := range out {
		out[i] = addT(p.coeffs[i], rhs.coeffs[i])
	}
	return Polynomial[T]{coeffs: out}
}

// Sub returns p-rhs, coefficientwise.
func (p Polynomial[T]) Sub(rhs Polynomial[T]) Polynomial[T] {
	p.requireSameDegree(rhs)
	out := make([]T, len(p.coeffs))
	for i := range out {
		out[i] = subT(p.coeffs[i], rhs.coeffs[i])
	}
	return Polynomial[T]{coeffs: out}
}

// Neg returns -p, coefficientwise.
func (p Polynomial[T]) Neg() Polynomial[T] {
	out := make([]T, len(p.coeffs))
	for i := range out {
		out[i] = negT(p.coeffs[i])
	}
	return Polynomial[T]{coeffs: out}
}

// Rotate returns p * X^k reduced modulo X^N+1. Multiplication by X has
// period 2N in this ring (X^N=-1, X^2N=1), so k is first reduced modulo
// 2N; a shift that lands in the second half of that period negates every
// coefficient outright, and within either half, coefficient i moves to
// position (i+k) mod N, negated again whenever i+k wraps past N-1. k may
// be negative.
func (p Polynomial[T]) Rotate(k int) Polynomial[T] {
	n := len(p.coeffs)
	out := make([]T, n)

	period := 2 * n
	ks := ((k % period) + period) % period
	base := ks % n
	halfFlip := ks >= n

	for i, c := range p.coeffs {
		j := i + base
		v := c
		if j >= n {
			j -= n
			v = negT(v)
		}
		if halfFlip {
			v = negT(v)
		}
		out[j] = v
	}
	return Polynomial[T]{coeffs: out}
}

// MulScalar returns p's coefficients each multiplied by k, for the
// uniform-type scalar products (an int32 gadget polynomial by an int32
// scalar, a float64 FFT buffer by a float64 scalar).
// Torus has no same-type Mul of its own — only MulU32/MulI32/MulBinary
// (ring/torus.go) — so a Torus polynomial's scalar product is MulScalarU32/
// MulScalarI32/MulScalarBinary below, not this method.
func (p Polynomial[T]) MulScalar(k T) Polynomial[T] {
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c * k
	}
	return Polynomial[T]{coeffs: out}
}

// MulScalarU32 multiplies every coefficient of a torus polynomial by the
// uint32 scalar k, wrapping per Torus.MulU32. A free function rather than a
// Polynomial[Torus] method, for the same reason CrossTorusInt32 in
// schoolbook.go is one: Go cannot add a method to a single instantiation of
// a generic type.
func MulScalarU32(p Polynomial[Torus], k uint32) Polynomial[Torus] {
	out := make([]Torus, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.MulU32(k)
	}
	return Polynomial[Torus]{coeffs: out}
}

// MulScalarI32 multiplies every coefficient of a torus polynomial by the
// int32 scalar k, wrapping per Torus.MulI32.
func MulScalarI32(p Polynomial[Torus], k int32) Polynomial[Torus] {
	out := make([]Torus, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.MulI32(k)
	}
	return Polynomial[Torus]{coeffs: out}
}

// MulScalarBinary multiplies every coefficient of a torus polynomial by the
// binary scalar k: the identity polynomial when k is One, the zero
// polynomial when k is Zero.
func MulScalarBinary(p Polynomial[Torus], k Binary) Polynomial[Torus] {
	out := make([]Torus, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.MulBinary(k)
	}
	return Polynomial[Torus]{coeffs: out}
}

func addT[T Number](a, b T) T { return a + b }
func subT[T Number](a, b T) T { return a - b }
func negT[T Number](a T) T    { return -a }
