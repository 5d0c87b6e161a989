// Package native - the virtual-phase optimizer.
package native

import "github.com/qilimanjaro-tech/pulsekit/gate"

// Optimize commutes virtual-Z rotations through a fully native gate sequence,
// folding them into Drag phase offsets. The result is a shorter, physically
// equivalent sequence with no VirtualZ gates left.
//
// Single left-to-right pass over the input, tracking shift[q] per qubit:
//
//   - VirtualZ(q, θ): shift[q] += θ; the gate is consumed, not emitted.
//   - CZ(a, b): when corr has a calibrated correction for the pair, the
//     control/target constants are added to the respective accumulators;
//     the CZ itself is emitted unchanged.
//   - Drag(q, θ, φ): emitted as a new Drag(q, θ, φ−shift[q]).
//   - Wait, Measure: emitted unchanged.
//
// A rotation accumulated after the last Drag on a qubit is never re-emitted:
// trailing Z rotations before a terminal Z-basis measurement are physically
// unobservable.
//
// corr may be nil, in which case no CZ corrections apply.
//
// Errors: ErrNotNative when the input contains a kind outside the native set.
// Idempotence: optimizing an already-optimized sequence returns an identical
// sequence (there is no VirtualZ left to fold).
//
// Complexity: O(n) time, O(numQubits) extra space.
func Optimize(gates []gate.Gate, numQubits int, corr PhaseCorrector) ([]gate.Gate, error) {
	shift := make([]float64, numQubits)
	out := make([]gate.Gate, 0, len(gates))

	var (
		i  int
		g  gate.Gate
		q  int
		cc float64
		tc float64
		ok bool
	)
	for i = 0; i < len(gates); i++ {
		g = gates[i]
		switch g.Kind() {
		case gate.KindVirtualZ:
			shift[g.Qubits()[0]] += g.Params()[0]

		case gate.KindCZ:
			if corr != nil {
				cc, tc, ok = corr.CZPhaseCorrection(g.Qubits()[0], g.Qubits()[1])
				if ok {
					shift[g.Qubits()[0]] += cc
					shift[g.Qubits()[1]] += tc
				}
			}
			out = append(out, g)

		case gate.KindDrag:
			q = g.Qubits()[0]
			out = append(out, gate.Drag(q, g.Params()[0], g.Params()[1]-shift[q]))

		case gate.KindWait, gate.KindMeasure:
			out = append(out, g)

		default:
			return nil, ErrNotNative
		}
	}

	return out, nil
}
