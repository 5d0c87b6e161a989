// Package gate - the Circuit container and its validation.
package gate

// Circuit is an ordered gate sequence over a fixed number of qubits.
// Gates apply left to right: Gates[0] acts on the state first.
type Circuit struct {
	// NumQubits is the number of logical qubits; every gate's qubit indices
	// must be < NumQubits.
	NumQubits int

	// Gates is the ordered operation list.
	Gates []Gate
}

// NewCircuit returns an empty circuit over numQubits qubits.
func NewCircuit(numQubits int) *Circuit {
	return &Circuit{NumQubits: numQubits}
}

// Add appends gates to the circuit and returns the circuit for chaining.
func (c *Circuit) Add(gates ...Gate) *Circuit {
	c.Gates = append(c.Gates, gates...)

	return c
}

// Validate checks that every gate's qubit indices are within range.
// Returns ErrQubitRange on the first violation.
func (c *Circuit) Validate() error {
	var (
		i int
		q int
	)
	for i = 0; i < len(c.Gates); i++ {
		for _, q = range c.Gates[i].qubits {
			if q < 0 || q >= c.NumQubits {
				return ErrQubitRange
			}
		}
	}

	return nil
}

// Clone returns a deep-enough copy: the gate slice is copied, the immutable
// Gate values are shared.
func (c *Circuit) Clone() *Circuit {
	gs := make([]Gate, len(c.Gates))
	copy(gs, c.Gates)

	return &Circuit{NumQubits: c.NumQubits, Gates: gs}
}
