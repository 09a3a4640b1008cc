package logic

// Logip is the one capability a plaintext or ciphertext type needs to
// evaluate a LogicExpr: a NAND gate over R. NAND alone is functionally
// complete, so And/Or/Xor/Not below all have a default, Logip-derived
// implementation; a type can still implement one of the optional Notter/
// Ander/Orer/Xorer interfaces to supply a cheaper native gate when its
// representation allows one (e.g. a ciphertext scheme where OR is a single
// bootstrap rather than three NANDs), checked via an optional-interface
// type assertion the way io.ReaderFrom and http.Flusher are.
type Logip[R any] interface {
	Nand(a, b R) R
}

// Notter is the optional single-gate override for Not.
type Notter[R any] interface {
	Not(a R) R
}

// Ander is the optional single-gate override for And.
type Ander[R any] interface {
	And(a, b R) R
}

// Orer is the optional single-gate override for Or.
type Orer[R any] interface {
	Or(a, b R) R
}

// Xorer is the optional single-gate override for Xor.
type Xorer[R any] interface {
	Xor(a, b R) R
}

// Not returns NOT a, using p's native override if p implements Notter[R],
// else the NAND derivation NOT(a) = NAND(a,a).
func Not[R any](p Logip[R], a R) R {
	if n, ok := any(p).(Notter[R]); ok {
		return n.Not(a)
	}
	return p.Nand(a, a)
}

// And returns a AND b, using p's native override if p implements
// Ander[R], else the NAND derivation AND(a,b) = NOT(NAND(a,b)).
func And[R any](p Logip[R], a, b R) R {
	if n, ok := any(p).(Ander[R]); ok {
		return n.And(a, b)
	}
	return Not(p, p.Nand(a, b))
}

// Or returns a OR b, using p's native override if p implements Orer[R],
// else the NAND derivation OR(a,b) = NAND(NOT(a),NOT(b)).
func Or[R any](p Logip[R], a, b R) R {
	if n, ok := any(p).(Orer[R]); ok {
		return n.Or(a, b)
	}
	return p.Nand(Not(p, a), Not(p, b))
}

// Xor returns a XOR b, using p's native override if p implements Xorer[R],
// else the NAND derivation XOR(a,b) = NAND(NAND(a,n),NAND(b,n)) with
// n = NAND(a,b).
func Xor[R any](p Logip[R], a, b R) R {
	if n, ok := any(p).(Xorer[R]); ok {
		return n.Xor(a, b)
	}
	n := p.Nand(a, b)
	return p.Nand(p.Nand(a, n), p.Nand(b, n))
}
