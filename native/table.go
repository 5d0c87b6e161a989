// Package native - the gate decomposition table.
//
// Every entry maps an abstract gate kind to a sequence over placeholder
// qubit slots (0 for single-qubit templates, 0/1 for controlled templates
// with the control in slot 0, 0/1/2 for Toffoli), later rebound onto the
// gate's actual qubit tuple via gate.OnQubits. Sequences are in
// left-to-right application order: element 0 acts on the state first.
//
// The table is a statically-initialized immutable map behind a read-only
// accessor; there is no runtime registration.
//
// Angle identities are exact (no trig is evaluated here):
//
//	I        → [RZ(0)]                      (virtual, zero angle)
//	H        → [Drag(π/2, −π/2), RZ(π)]
//	X        → [Drag(π, 0)]
//	Y        → [Drag(π, 0), RZ(π)]
//	Z        → [RZ(π)]
//	RX(θ)    → [Drag(θ, 0)]
//	RY(θ)    → [Drag(θ, π/2)]
//	RZ(θ)    → [RZ(θ/2)]                    (half-angle; see note below)
//	U3(θ,φ,λ)→ [Drag(θ, π/2−λ), RZ(φ+λ)]
//	CNOT     → [H(t), CZ(c,t), H(t)]
//
// where RZ on the right-hand side denotes the native VirtualZ kind. The
// RZ→RZ half-angle step reproduces the long-standing virtual-Z sign
// convention of the calibrated stack; the factor of 2 is folded elsewhere.
// Do not "fix" it without re-deriving the hardware phase convention.
package native

import (
	"math"

	"github.com/qilimanjaro-tech/pulsekit/gate"
)

// rule produces the decomposition of a concrete gate instance, already
// rebound onto the gate's qubit tuple.
type rule func(g gate.Gate) []gate.Gate

// fixed lifts a parameter-free template into a rule.
func fixed(template ...gate.Gate) rule {
	return func(g gate.Gate) []gate.Gate {
		return rebind(g, template)
	}
}

// rebind maps a slot-indexed template onto g's qubit tuple.
func rebind(g gate.Gate, template []gate.Gate) []gate.Gate {
	out := make([]gate.Gate, len(template))
	var i int
	for i = 0; i < len(template); i++ {
		out[i] = template[i].OnQubits(g.Qubits())
	}

	return out
}

// decompositions is the full table. Built once at package initialization;
// never mutated afterwards.
var decompositions = map[gate.Kind]rule{
	gate.KindI: fixed(gate.VirtualZ(0, 0)),
	gate.KindH: fixed(gate.Drag(0, math.Pi/2, -math.Pi/2), gate.VirtualZ(0, math.Pi)),
	gate.KindX: fixed(gate.Drag(0, math.Pi, 0)),
	gate.KindY: fixed(gate.Drag(0, math.Pi, 0), gate.VirtualZ(0, math.Pi)),
	gate.KindZ: fixed(gate.VirtualZ(0, math.Pi)),

	gate.KindS:    fixed(gate.VirtualZ(0, math.Pi/2)),
	gate.KindSDag: fixed(gate.VirtualZ(0, -math.Pi/2)),
	gate.KindT:    fixed(gate.VirtualZ(0, math.Pi/4)),
	gate.KindTDag: fixed(gate.VirtualZ(0, -math.Pi/4)),

	gate.KindRX: func(g gate.Gate) []gate.Gate {
		return rebind(g, []gate.Gate{gate.Drag(0, g.Params()[0], 0)})
	},
	gate.KindRY: func(g gate.Gate) []gate.Gate {
		return rebind(g, []gate.Gate{gate.Drag(0, g.Params()[0], math.Pi/2)})
	},
	// Half-angle convention: see the package header of this file.
	gate.KindRZ: func(g gate.Gate) []gate.Gate {
		return rebind(g, []gate.Gate{gate.VirtualZ(0, g.Params()[0]/2)})
	},
	gate.KindU3: func(g gate.Gate) []gate.Gate {
		var theta, phi, lambda = g.Params()[0], g.Params()[1], g.Params()[2]

		return rebind(g, []gate.Gate{
			gate.Drag(0, theta, -lambda+math.Pi/2),
			gate.VirtualZ(0, phi+lambda),
		})
	},

	gate.KindCNOT: fixed(gate.H(1), gate.CZ(0, 1), gate.H(1)),

	gate.KindSWAP: fixed(gate.CNOT(0, 1), gate.CNOT(1, 0), gate.CNOT(0, 1)),
	gate.KindISwap: fixed(
		gate.VirtualZ(0, math.Pi/2), gate.VirtualZ(1, math.Pi/2),
		gate.H(0), gate.CNOT(0, 1), gate.CNOT(1, 0), gate.H(1),
	),
	gate.KindFSwap: fixed(
		gate.CZ(0, 1), gate.CNOT(0, 1), gate.CNOT(1, 0), gate.CNOT(0, 1),
	),

	gate.KindCRZ: func(g gate.Gate) []gate.Gate {
		var theta = g.Params()[0]

		return rebind(g, []gate.Gate{
			gate.VirtualZ(1, theta/2),
			gate.CNOT(0, 1),
			gate.VirtualZ(1, -theta/2),
			gate.CNOT(0, 1),
		})
	},
	gate.KindCRY: func(g gate.Gate) []gate.Gate {
		var theta = g.Params()[0]

		return rebind(g, []gate.Gate{
			gate.Drag(1, theta/2, math.Pi/2),
			gate.CNOT(0, 1),
			gate.Drag(1, -theta/2, math.Pi/2),
			gate.CNOT(0, 1),
		})
	},
	gate.KindCRX: func(g gate.Gate) []gate.Gate {
		var theta = g.Params()[0]

		return rebind(g, []gate.Gate{
			gate.H(1),
			gate.VirtualZ(1, theta/2),
			gate.CNOT(0, 1),
			gate.VirtualZ(1, -theta/2),
			gate.CNOT(0, 1),
			gate.H(1),
		})
	},
	gate.KindCU1: func(g gate.Gate) []gate.Gate {
		var theta = g.Params()[0]

		return rebind(g, []gate.Gate{
			gate.VirtualZ(0, theta/2),
			gate.CNOT(0, 1),
			gate.VirtualZ(1, -theta/2),
			gate.CNOT(0, 1),
			gate.VirtualZ(1, theta/2),
		})
	},
	gate.KindCU2: func(g gate.Gate) []gate.Gate {
		var phi, lambda = g.Params()[0], g.Params()[1]

		return rebind(g, []gate.Gate{gate.CU3(0, 1, math.Pi/2, phi, lambda)})
	},
	gate.KindCU3: func(g gate.Gate) []gate.Gate {
		var theta, phi, lambda = g.Params()[0], g.Params()[1], g.Params()[2]

		return rebind(g, []gate.Gate{
			gate.VirtualZ(0, (lambda+phi)/2),
			gate.VirtualZ(1, (lambda-phi)/2),
			gate.CNOT(0, 1),
			gate.U3(1, -theta/2, 0, -(phi+lambda)/2),
			gate.CNOT(0, 1),
			gate.U3(1, theta/2, phi, 0),
		})
	},

	gate.KindRZZ: func(g gate.Gate) []gate.Gate {
		var theta = g.Params()[0]

		return rebind(g, []gate.Gate{
			gate.CNOT(0, 1), gate.VirtualZ(1, theta), gate.CNOT(0, 1),
		})
	},
	gate.KindRXX: func(g gate.Gate) []gate.Gate {
		var theta = g.Params()[0]

		return rebind(g, []gate.Gate{
			gate.H(0), gate.H(1),
			gate.CNOT(0, 1), gate.VirtualZ(1, theta), gate.CNOT(0, 1),
			gate.H(0), gate.H(1),
		})
	},
	gate.KindRYY: func(g gate.Gate) []gate.Gate {
		var theta = g.Params()[0]

		return rebind(g, []gate.Gate{
			gate.RX(0, math.Pi/2), gate.RX(1, math.Pi/2),
			gate.CNOT(0, 1), gate.VirtualZ(1, theta), gate.CNOT(0, 1),
			gate.RX(0, -math.Pi/2), gate.RX(1, -math.Pi/2),
		})
	},

	gate.KindToffoli: fixed(
		gate.H(2),
		gate.CNOT(1, 2), gate.TDag(2),
		gate.CNOT(0, 2), gate.T(2),
		gate.CNOT(1, 2), gate.TDag(2),
		gate.CNOT(0, 2), gate.T(1), gate.T(2),
		gate.H(2),
		gate.CNOT(0, 1), gate.T(0), gate.TDag(1),
		gate.CNOT(0, 1),
	),
}

// decompositionFor returns the decomposition of g rebound onto its qubits,
// or ErrUnsupportedGate when g's kind has no registered entry.
func decompositionFor(g gate.Gate) ([]gate.Gate, error) {
	r, ok := decompositions[g.Kind()]
	if !ok {
		return nil, ErrUnsupportedGate
	}

	return r(g), nil
}
