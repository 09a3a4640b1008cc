package ring

// Binary is a single bit, {0,1}, used as a plaintext digit and as a
// polynomial coefficient type in its own right (e.g. a key polynomial).
type Binary uint8

const (
	Zero Binary = 0
	One  Binary = 1
)

// FromBool converts a bool into a Binary.
func FromBool(b bool) Binary {
	if b {
		return One
	}
	return Zero
}

// Bool returns the Go bool corresponding to b.
func (b Binary) Bool() bool {
	return b != Zero
}

// Xor returns b^rhs.
func (b Binary) Xor(rhs Binary) Binary {
	return b ^ rhs
}

// And returns b&rhs.
func (b Binary) And(rhs Binary) Binary {
	return b & rhs
}

// Or returns b|rhs.
func (b Binary) Or(rhs Binary) Binary {
	return b | rhs
}

// Not returns the complement of b within {0,1}.
func (b Binary) Not() Binary {
	return b ^ One
}

// LogicTrue reports the Binary value standing for logical true, satisfying
// logic.AsLogic structurally without this package importing logic.
func (b Binary) LogicTrue() Binary {
	return One
}

// LogicFalse reports the Binary value standing for logical false.
func (b Binary) LogicFalse() Binary {
	return Zero
}
