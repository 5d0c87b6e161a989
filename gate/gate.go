// Package gate - the Gate value and its constructors.
//
// Gate values are immutable: constructors copy their qubit arguments, and
// OnQubits returns a rebound copy. Accessors hand out the internal slices for
// hot-path reasons; callers must treat them as read-only.
package gate

// Gate is a single operation: a kind, an ordered qubit tuple and the kind's
// numeric parameters. Construct via the typed constructors below; the zero
// Gate (KindInvalid) is not a valid operation.
type Gate struct {
	kind   Kind
	qubits []int
	params []float64
}

// New builds a gate from raw parts, copying both slices. It is the escape
// hatch for table-driven code; prefer the typed constructors.
func New(kind Kind, qubits []int, params []float64) Gate {
	q := make([]int, len(qubits))
	copy(q, qubits)
	var p []float64
	if len(params) > 0 {
		p = make([]float64, len(params))
		copy(p, params)
	}

	return Gate{kind: kind, qubits: q, params: p}
}

// Kind returns the gate's variant discriminator.
func (g Gate) Kind() Kind { return g.kind }

// Qubits returns the gate's ordered qubit tuple (controls first).
// The returned slice is shared; callers must not mutate it.
func (g Gate) Qubits() []int { return g.qubits }

// Params returns the gate's numeric parameters.
// The returned slice is shared; callers must not mutate it.
func (g Gate) Params() []float64 { return g.params }

// OnQubits returns a copy of g rebound onto the given qubit tuple.
// Decomposition templates are expressed on placeholder slots 0, 1, 2 and
// rebound through this method: slot i becomes qubits[i].
//
// Measure gates rebind positionally like every other kind.
func (g Gate) OnQubits(qubits []int) Gate {
	q := make([]int, len(g.qubits))
	var i int
	for i = 0; i < len(g.qubits); i++ {
		q[i] = qubits[g.qubits[i]]
	}

	return Gate{kind: g.kind, qubits: q, params: g.params}
}

// Remap returns a copy of g with every qubit index mapped through layout
// (index = old qubit, value = new qubit). Used by routers to rewrite logical
// indices into physical ones.
func (g Gate) Remap(layout []int) Gate {
	q := make([]int, len(g.qubits))
	var i int
	for i = 0; i < len(g.qubits); i++ {
		q[i] = layout[g.qubits[i]]
	}

	return Gate{kind: g.kind, qubits: q, params: g.params}
}

// --- single-qubit constructors -----------------------------------------------

// I returns an identity gate on q.
func I(q int) Gate { return Gate{kind: KindI, qubits: []int{q}} }

// X returns a Pauli-X gate on q.
func X(q int) Gate { return Gate{kind: KindX, qubits: []int{q}} }

// Y returns a Pauli-Y gate on q.
func Y(q int) Gate { return Gate{kind: KindY, qubits: []int{q}} }

// Z returns a Pauli-Z gate on q.
func Z(q int) Gate { return Gate{kind: KindZ, qubits: []int{q}} }

// H returns a Hadamard gate on q.
func H(q int) Gate { return Gate{kind: KindH, qubits: []int{q}} }

// S returns the phase gate diag(1, i) on q.
func S(q int) Gate { return Gate{kind: KindS, qubits: []int{q}} }

// SDag returns the inverse phase gate on q.
func SDag(q int) Gate { return Gate{kind: KindSDag, qubits: []int{q}} }

// T returns the π/8 gate on q.
func T(q int) Gate { return Gate{kind: KindT, qubits: []int{q}} }

// TDag returns the inverse π/8 gate on q.
func TDag(q int) Gate { return Gate{kind: KindTDag, qubits: []int{q}} }

// RX returns a rotation of theta about the X axis on q.
func RX(q int, theta float64) Gate {
	return Gate{kind: KindRX, qubits: []int{q}, params: []float64{theta}}
}

// RY returns a rotation of theta about the Y axis on q.
func RY(q int, theta float64) Gate {
	return Gate{kind: KindRY, qubits: []int{q}, params: []float64{theta}}
}

// RZ returns an abstract rotation of theta about the Z axis on q.
// Decomposition maps it to VirtualZ(theta/2); see the native package for the
// half-angle convention.
func RZ(q int, theta float64) Gate {
	return Gate{kind: KindRZ, qubits: []int{q}, params: []float64{theta}}
}

// U3 returns the generic single-qubit unitary U3(theta, phi, lambda) on q.
func U3(q int, theta, phi, lambda float64) Gate {
	return Gate{kind: KindU3, qubits: []int{q}, params: []float64{theta, phi, lambda}}
}

// --- two- and three-qubit constructors ---------------------------------------

// CNOT returns a controlled-X with control c and target t.
func CNOT(c, t int) Gate { return Gate{kind: KindCNOT, qubits: []int{c, t}} }

// CZ returns a controlled-Z on qubits a and b (symmetric).
func CZ(a, b int) Gate { return Gate{kind: KindCZ, qubits: []int{a, b}} }

// CRX returns a controlled X-rotation of theta with control c and target t.
func CRX(c, t int, theta float64) Gate {
	return Gate{kind: KindCRX, qubits: []int{c, t}, params: []float64{theta}}
}

// CRY returns a controlled Y-rotation of theta with control c and target t.
func CRY(c, t int, theta float64) Gate {
	return Gate{kind: KindCRY, qubits: []int{c, t}, params: []float64{theta}}
}

// CRZ returns a controlled Z-rotation of theta with control c and target t.
func CRZ(c, t int, theta float64) Gate {
	return Gate{kind: KindCRZ, qubits: []int{c, t}, params: []float64{theta}}
}

// CU1 returns a controlled phase gate diag(1,1,1,e^{iθ}).
func CU1(c, t int, theta float64) Gate {
	return Gate{kind: KindCU1, qubits: []int{c, t}, params: []float64{theta}}
}

// CU2 returns a controlled U2(phi, lambda) = controlled U3(π/2, phi, lambda).
func CU2(c, t int, phi, lambda float64) Gate {
	return Gate{kind: KindCU2, qubits: []int{c, t}, params: []float64{phi, lambda}}
}

// CU3 returns a controlled U3(theta, phi, lambda).
func CU3(c, t int, theta, phi, lambda float64) Gate {
	return Gate{kind: KindCU3, qubits: []int{c, t}, params: []float64{theta, phi, lambda}}
}

// SWAP returns a SWAP gate on qubits a and b.
func SWAP(a, b int) Gate { return Gate{kind: KindSWAP, qubits: []int{a, b}} }

// ISwap returns an iSWAP gate on qubits a and b.
func ISwap(a, b int) Gate { return Gate{kind: KindISwap, qubits: []int{a, b}} }

// FSwap returns a fermionic SWAP gate on qubits a and b.
func FSwap(a, b int) Gate { return Gate{kind: KindFSwap, qubits: []int{a, b}} }

// RXX returns exp(-iθ/2 X⊗X) on qubits a and b.
func RXX(a, b int, theta float64) Gate {
	return Gate{kind: KindRXX, qubits: []int{a, b}, params: []float64{theta}}
}

// RYY returns exp(-iθ/2 Y⊗Y) on qubits a and b.
func RYY(a, b int, theta float64) Gate {
	return Gate{kind: KindRYY, qubits: []int{a, b}, params: []float64{theta}}
}

// RZZ returns exp(-iθ/2 Z⊗Z) on qubits a and b.
func RZZ(a, b int, theta float64) Gate {
	return Gate{kind: KindRZZ, qubits: []int{a, b}, params: []float64{theta}}
}

// Toffoli returns a doubly-controlled X with controls a, b and target t.
func Toffoli(a, b, t int) Gate { return Gate{kind: KindToffoli, qubits: []int{a, b, t}} }

// --- native constructors ------------------------------------------------------

// Drag returns a DRAG pulse gate: a rotation of theta about the axis
// cos(phase)·X + sin(phase)·Y.
func Drag(q int, theta, phase float64) Gate {
	return Gate{kind: KindDrag, qubits: []int{q}, params: []float64{theta, phase}}
}

// VirtualZ returns a bookkeeping-only Z rotation of angle on q. It is folded
// into subsequent Drag phases rather than physically executed.
func VirtualZ(q int, angle float64) Gate {
	return Gate{kind: KindVirtualZ, qubits: []int{q}, params: []float64{angle}}
}

// Wait returns an idle period of duration (in minimum time units, typically
// nanoseconds) on q.
func Wait(q int, duration int) Gate {
	return Gate{kind: KindWait, qubits: []int{q}, params: []float64{float64(duration)}}
}

// Measure returns a Z-basis measurement of the given qubits.
func Measure(qubits ...int) Gate {
	q := make([]int, len(qubits))
	copy(q, qubits)

	return Gate{kind: KindMeasure, qubits: q}
}
