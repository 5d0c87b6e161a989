// Package statevec - the state vector and gate application.
package statevec

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/qilimanjaro-tech/pulsekit/gate"
)

var (
	// ErrBadQubits indicates a register size outside [1, 24].
	ErrBadQubits = errors.New("statevec: qubit count out of range")

	// ErrUnknownKind indicates a gate kind the simulator cannot apply.
	ErrUnknownKind = errors.New("statevec: unknown gate kind")

	// ErrSizeMismatch indicates two states of different register sizes.
	ErrSizeMismatch = errors.New("statevec: register sizes differ")
)

// maxQubits bounds the register so the amplitude slice stays allocatable.
const maxQubits = 24

// State is a dense n-qubit state vector.
type State struct {
	n    int
	amps []complex128
}

// NewState returns |0…0⟩ on n qubits.
func NewState(n int) (*State, error) {
	if n < 1 || n > maxQubits {
		return nil, ErrBadQubits
	}

	s := &State{n: n, amps: make([]complex128, 1<<uint(n))}
	s.amps[0] = 1

	return s, nil
}

// N returns the register size.
func (s *State) N() int { return s.n }

// Amplitudes returns the raw amplitude slice (shared, read-only).
func (s *State) Amplitudes() []complex128 { return s.amps }

// Run applies a gate sequence in order.
func (s *State) Run(gates []gate.Gate) error {
	var i int
	for i = 0; i < len(gates); i++ {
		if err := s.Apply(gates[i]); err != nil {
			return err
		}
	}

	return nil
}

// Apply applies one gate. Wait and Measure are identity here: timing has no
// amplitude effect, and equivalence checks compare pre-measurement states.
func (s *State) Apply(g gate.Gate) error {
	q := g.Qubits()
	p := g.Params()

	switch g.Kind() {
	case gate.KindI, gate.KindWait, gate.KindMeasure:
		return nil
	case gate.KindX:
		s.apply1(q[0], pauliX())
	case gate.KindY:
		s.apply1(q[0], pauliY())
	case gate.KindZ:
		s.apply1(q[0], pauliZ())
	case gate.KindH:
		s.apply1(q[0], hadamard())
	case gate.KindS:
		s.apply1(q[0], phaseGate(math.Pi/2))
	case gate.KindSDag:
		s.apply1(q[0], phaseGate(-math.Pi/2))
	case gate.KindT:
		s.apply1(q[0], phaseGate(math.Pi/4))
	case gate.KindTDag:
		s.apply1(q[0], phaseGate(-math.Pi/4))
	case gate.KindRX:
		s.apply1(q[0], rotX(p[0]))
	case gate.KindRY:
		s.apply1(q[0], rotY(p[0]))
	case gate.KindRZ, gate.KindVirtualZ:
		s.apply1(q[0], rotZ(p[0]))
	case gate.KindU3:
		s.apply1(q[0], u3(p[0], p[1], p[2]))
	case gate.KindDrag:
		s.apply1(q[0], drag(p[0], p[1]))

	case gate.KindCNOT:
		s.applyControlled(q[0], q[1], pauliX())
	case gate.KindCZ:
		s.applyControlled(q[0], q[1], pauliZ())
	case gate.KindCRX:
		s.applyControlled(q[0], q[1], rotX(p[0]))
	case gate.KindCRY:
		s.applyControlled(q[0], q[1], rotY(p[0]))
	case gate.KindCRZ:
		s.applyControlled(q[0], q[1], rotZ(p[0]))
	case gate.KindCU1:
		s.applyControlled(q[0], q[1], phaseGate(p[0]))
	case gate.KindCU2:
		s.applyControlled(q[0], q[1], u3(math.Pi/2, p[0], p[1]))
	case gate.KindCU3:
		s.applyControlled(q[0], q[1], u3(p[0], p[1], p[2]))

	case gate.KindSWAP:
		s.apply2(q[0], q[1], swapMat())
	case gate.KindISwap:
		s.apply2(q[0], q[1], iswapMat())
	case gate.KindFSwap:
		s.apply2(q[0], q[1], fswapMat())
	case gate.KindRXX:
		s.apply2(q[0], q[1], rotXX(p[0]))
	case gate.KindRYY:
		s.apply2(q[0], q[1], rotYY(p[0]))
	case gate.KindRZZ:
		s.apply2(q[0], q[1], rotZZ(p[0]))

	case gate.KindToffoli:
		s.applyToffoli(q[0], q[1], q[2])

	default:
		return ErrUnknownKind
	}

	return nil
}

// apply1 multiplies the 2×2 matrix m into qubit q.
func (s *State) apply1(q int, m [2][2]complex128) {
	bit := 1 << uint(q)

	var (
		i      int
		a0, a1 complex128
	)
	for i = 0; i < len(s.amps); i++ {
		if i&bit != 0 {
			continue
		}
		a0 = s.amps[i]
		a1 = s.amps[i|bit]
		s.amps[i] = m[0][0]*a0 + m[0][1]*a1
		s.amps[i|bit] = m[1][0]*a0 + m[1][1]*a1
	}
}

// applyControlled multiplies m into qubit t on the subspace where bit c is set.
func (s *State) applyControlled(c, t int, m [2][2]complex128) {
	cbit := 1 << uint(c)
	tbit := 1 << uint(t)

	var (
		i      int
		a0, a1 complex128
	)
	for i = 0; i < len(s.amps); i++ {
		if i&cbit == 0 || i&tbit != 0 {
			continue
		}
		a0 = s.amps[i]
		a1 = s.amps[i|tbit]
		s.amps[i] = m[0][0]*a0 + m[0][1]*a1
		s.amps[i|tbit] = m[1][0]*a0 + m[1][1]*a1
	}
}

// apply2 multiplies the 4×4 matrix m into the (a, b) pair. The local basis
// index of an amplitude is 2·bit(a) + bit(b).
func (s *State) apply2(a, b int, m [4][4]complex128) {
	abit := 1 << uint(a)
	bbit := 1 << uint(b)

	var (
		i   int
		v   [4]complex128
		idx [4]int
		r   int
		c   int
	)
	for i = 0; i < len(s.amps); i++ {
		if i&abit != 0 || i&bbit != 0 {
			continue
		}
		idx[0] = i
		idx[1] = i | bbit
		idx[2] = i | abit
		idx[3] = i | abit | bbit
		for r = 0; r < 4; r++ {
			v[r] = s.amps[idx[r]]
		}
		for r = 0; r < 4; r++ {
			var acc complex128
			for c = 0; c < 4; c++ {
				acc += m[r][c] * v[c]
			}
			s.amps[idx[r]] = acc
		}
	}
}

// applyToffoli flips bit t wherever bits a and b are both set.
func (s *State) applyToffoli(a, b, t int) {
	abit := 1 << uint(a)
	bbit := 1 << uint(b)
	tbit := 1 << uint(t)

	var i int
	for i = 0; i < len(s.amps); i++ {
		if i&abit == 0 || i&bbit == 0 || i&tbit != 0 {
			continue
		}
		s.amps[i], s.amps[i|tbit] = s.amps[i|tbit], s.amps[i]
	}
}

// Fidelity returns |⟨a|b⟩|. Two states represent the same physical state up
// to a global phase exactly when fidelity is 1.
func Fidelity(a, b *State) (float64, error) {
	if a.n != b.n {
		return 0, ErrSizeMismatch
	}

	var (
		inner complex128
		i     int
	)
	for i = 0; i < len(a.amps); i++ {
		inner += cmplx.Conj(a.amps[i]) * b.amps[i]
	}

	return cmplx.Abs(inner), nil
}

// SameUpToPhase reports whether two states agree up to a global phase within
// tol of unit fidelity.
func SameUpToPhase(a, b *State, tol float64) (bool, error) {
	f, err := Fidelity(a, b)
	if err != nil {
		return false, err
	}

	return math.Abs(f-1) <= tol, nil
}
