package logic

import "github.com/hideki1217/tfhe-core/ring"

// PlaintextLogip evaluates LogicExpr[ring.Binary] directly over plaintext
// bits, with no encryption involved. It exists so this package's own tests
// (and any caller building a quick reference evaluation) have a concrete
// Logip[ring.Binary] without depending on an encryption layer that is out
// of scope here.
type PlaintextLogip struct{}

// Nand implements Logip[ring.Binary].
func (PlaintextLogip) Nand(a, b ring.Binary) ring.Binary {
	return a.And(b).Not()
}

// Not overrides the NAND-derived default with ring.Binary's own complement.
func (PlaintextLogip) Not(a ring.Binary) ring.Binary {
	return a.Not()
}

// And overrides the NAND-derived default with ring.Binary's own conjunction.
func (PlaintextLogip) And(a, b ring.Binary) ring.Binary {
	return a.And(b)
}

// Or overrides the NAND-derived default with ring.Binary's own disjunction.
func (PlaintextLogip) Or(a, b ring.Binary) ring.Binary {
	return a.Or(b)
}

// Xor overrides the NAND-derived default with ring.Binary's own xor.
func (PlaintextLogip) Xor(a, b ring.Binary) ring.Binary {
	return a.Xor(b)
}
