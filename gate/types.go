// Package gate - kind enumeration and sentinel errors for the gate model.
//
// The Kind set is closed: every pipeline stage dispatches on it exhaustively,
// so an unknown kind can only surface at the decomposition-table boundary.
package gate

import "errors"

// Sentinel errors returned by gate construction and rebinding.
var (
	// ErrQubitCount indicates a gate was given the wrong number of qubits
	// for its kind (e.g. a CZ on one qubit, a Drag on two).
	ErrQubitCount = errors.New("gate: wrong number of qubits for kind")

	// ErrParamCount indicates a gate was given the wrong number of numeric
	// parameters for its kind.
	ErrParamCount = errors.New("gate: wrong number of parameters for kind")

	// ErrQubitRange indicates a gate references a qubit index outside the
	// circuit's qubit count.
	ErrQubitRange = errors.New("gate: qubit index out of range")
)

// Kind discriminates the gate variant. The numbering is internal and carries
// no meaning beyond exhaustive dispatch.
type Kind int

const (
	// KindInvalid is the zero Kind; it never appears in a valid circuit and
	// exists so that an accidental zero value is caught at the table boundary.
	KindInvalid Kind = iota

	// Abstract (non-native) kinds, removed by decomposition.

	KindI       // identity
	KindX       // Pauli-X
	KindY       // Pauli-Y
	KindZ       // Pauli-Z
	KindH       // Hadamard
	KindS       // phase gate S = diag(1, i)
	KindSDag    // S†
	KindT       // T = diag(1, e^{iπ/4})
	KindTDag    // T†
	KindRX      // params: theta
	KindRY      // params: theta
	KindRZ      // params: theta (note the half-angle convention, see native)
	KindU3      // params: theta, phi, lambda
	KindCNOT    // qubits: control, target
	KindCRX     // qubits: control, target; params: theta
	KindCRY     // qubits: control, target; params: theta
	KindCRZ     // qubits: control, target; params: theta
	KindCU1     // controlled phase; qubits: control, target; params: theta
	KindCU2     // qubits: control, target; params: phi, lambda
	KindCU3     // qubits: control, target; params: theta, phi, lambda
	KindSWAP    // qubits: a, b
	KindISwap   // qubits: a, b
	KindFSwap   // fermionic SWAP; qubits: a, b
	KindRXX     // params: theta
	KindRYY     // params: theta
	KindRZZ     // params: theta
	KindToffoli // qubits: control a, control b, target

	// Native kinds, executed directly by hardware.

	KindDrag     // params: theta, phase
	KindCZ       // qubits: a, b
	KindVirtualZ // bookkeeping-only Z rotation; params: angle
	KindWait     // params: duration (integral nanoseconds, stored as float)
	KindMeasure  // qubits: any number, measured in the Z basis
)

// String returns the canonical gate name used by calibration lookups.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindX:
		return "X"
	case KindY:
		return "Y"
	case KindZ:
		return "Z"
	case KindH:
		return "H"
	case KindS:
		return "S"
	case KindSDag:
		return "SDag"
	case KindT:
		return "T"
	case KindTDag:
		return "TDag"
	case KindRX:
		return "RX"
	case KindRY:
		return "RY"
	case KindRZ:
		return "RZ"
	case KindU3:
		return "U3"
	case KindCNOT:
		return "CNOT"
	case KindCRX:
		return "CRX"
	case KindCRY:
		return "CRY"
	case KindCRZ:
		return "CRZ"
	case KindCU1:
		return "CU1"
	case KindCU2:
		return "CU2"
	case KindCU3:
		return "CU3"
	case KindSWAP:
		return "SWAP"
	case KindISwap:
		return "iSWAP"
	case KindFSwap:
		return "FSWAP"
	case KindRXX:
		return "RXX"
	case KindRYY:
		return "RYY"
	case KindRZZ:
		return "RZZ"
	case KindToffoli:
		return "Toffoli"
	case KindDrag:
		return "Drag"
	case KindCZ:
		return "CZ"
	case KindVirtualZ:
		return "RZ" // calibration records keep the historical name
	case KindWait:
		return "Wait"
	case KindMeasure:
		return "M"
	default:
		return "Invalid"
	}
}

// IsNative reports whether k belongs to the native set
// {Drag, CZ, VirtualZ, Wait, Measure}.
func (k Kind) IsNative() bool {
	switch k {
	case KindDrag, KindCZ, KindVirtualZ, KindWait, KindMeasure:
		return true
	default:
		return false
	}
}
