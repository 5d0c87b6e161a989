// Package route - exact routing and placement for the star topology.
package route

import (
	"github.com/qilimanjaro-tech/pulsekit/gate"
	"github.com/qilimanjaro-tech/pulsekit/topology"
)

// StarRouter deterministically routes circuits onto a literal star chip
// (one degree-4 center), inserting at most one SWAP per non-center two-qubit
// gate. It needs no randomness and no lookahead cost model: the center
// candidate is picked by scanning forward through upcoming two-qubit gates.
type StarRouter struct {
	topo *topology.Graph
}

// NewStarRouter validates the star shape and returns the router.
// Errors: topology.ErrInvalidTopology via StarCenter.
func NewStarRouter(topo *topology.Graph) (*StarRouter, error) {
	if _, err := topo.StarCenter(); err != nil {
		return nil, err
	}

	return &StarRouter{topo: topo}, nil
}

// Route walks the circuit in order. Single-qubit gates and measurements are
// remapped through the live mapping and emitted. A two-qubit gate whose
// mapped qubits already include the center is remapped and emitted as-is;
// otherwise the forward scan chooses which of its qubits should become the
// center, a SWAP(candidate, center) is emitted immediately before the gate,
// and the mapping is updated before remapping the gate itself.
//
// Errors: ErrConnectivity for any gate (other than a measurement) targeting
// more than two qubits.
//
// Complexity: O(n²) worst case (forward scan per non-center gate).
func (r *StarRouter) Route(c *gate.Circuit, initial []int) (Result, error) {
	center, err := r.topo.StarCenter()
	if err != nil {
		return Result{}, err
	}
	if c.NumQubits > r.topo.N() {
		return Result{}, ErrConnectivity
	}
	cm, err := mapFromInitial(r.topo.N(), initial)
	if err != nil {
		return Result{}, err
	}

	out := make([]gate.Gate, 0, len(c.Gates))
	swaps := 0

	var (
		i    int
		g    gate.Gate
		qs   []int
		pa   int
		pb   int
		cand int
	)
	for i = 0; i < len(c.Gates); i++ {
		g = c.Gates[i]
		qs = g.Qubits()

		if g.Kind() == gate.KindMeasure {
			out = append(out, g.Remap(cm.l2p))
			continue
		}
		switch len(qs) {
		case 1:
			out = append(out, g.Remap(cm.l2p))
		case 2:
			pa, pb = cm.Physical(qs[0]), cm.Physical(qs[1])
			if pa != center && pb != center {
				cand = lookaheadCenter(c.Gates, i+1, pa, pb, cm)
				out = append(out, gate.SWAP(cand, center))
				swaps++
				cm.ApplySwap(cand, center)
			}
			out = append(out, g.Remap(cm.l2p))
		default:
			return Result{}, ErrConnectivity
		}
	}

	return Result{Gates: out, Layout: cm.Layout(), Swaps: swaps}, nil
}

// lookaheadCenter decides which of the two physical qubits pa, pb should
// move to the center. Upcoming two-qubit gates (measurements excluded) are
// scanned in order, intersecting the candidate set with each mapped pair:
// the scan stops when one candidate remains (pick it) or the intersection
// empties (tie: keep the first qubit pa). Exhausting the scan with both
// candidates alive is also a tie.
func lookaheadCenter(gates []gate.Gate, start, pa, pb int, cm *CircuitMap) int {
	haveA, haveB := true, true

	var (
		j     int
		qs    []int
		x, y  int
		keepA bool
		keepB bool
	)
	for j = start; j < len(gates); j++ {
		if gates[j].Kind() == gate.KindMeasure {
			continue
		}
		qs = gates[j].Qubits()
		if len(qs) != 2 {
			continue
		}
		x, y = cm.Physical(qs[0]), cm.Physical(qs[1])

		keepA = haveA && (x == pa || y == pa)
		keepB = haveB && (x == pb || y == pb)
		switch {
		case keepA && !keepB:
			return pa
		case keepB && !keepA:
			return pb
		case !keepA && !keepB:
			return pa // intersection emptied: keep the first qubit
		}
		haveA, haveB = keepA, keepB
	}

	return pa
}

// mapFromInitial builds the live mapping for a routing pass.
func mapFromInitial(n int, initial []int) (*CircuitMap, error) {
	if initial == nil {
		return NewCircuitMap(n), nil
	}
	if len(initial) != n {
		return nil, ErrBadLayout
	}

	return NewCircuitMapFromLayout(initial)
}

// StarPlacer chooses an initial layout for a star chip: a single pre-pass
// that moves the lookahead-preferred qubit of the first off-center two-qubit
// gate onto the center, then stops.
type StarPlacer struct {
	topo *topology.Graph
}

// NewStarPlacer validates the star shape and returns the placer.
func NewStarPlacer(topo *topology.Graph) (*StarPlacer, error) {
	if _, err := topo.StarCenter(); err != nil {
		return nil, err
	}

	return &StarPlacer{topo: topo}, nil
}

// Place scans for the first two-qubit gate (measurements excluded) not
// already involving the center under the identity mapping, picks which of
// its qubits should become the center by the shared forward-scan rule, and
// returns the identity layout with that qubit and the center exchanged.
// A circuit whose two-qubit gates all touch the center places as identity.
func (p *StarPlacer) Place(c *gate.Circuit) ([]int, error) {
	center, err := p.topo.StarCenter()
	if err != nil {
		return nil, err
	}
	if c.NumQubits > p.topo.N() {
		return nil, ErrConnectivity
	}
	cm := NewCircuitMap(p.topo.N())

	var (
		i    int
		qs   []int
		cand int
	)
	for i = 0; i < len(c.Gates); i++ {
		if c.Gates[i].Kind() == gate.KindMeasure {
			continue
		}
		qs = c.Gates[i].Qubits()
		if len(qs) != 2 {
			continue
		}
		if qs[0] == center || qs[1] == center {
			break // first two-qubit gate already uses the center; nothing to adjust
		}
		cand = lookaheadCenter(c.Gates, i+1, qs[0], qs[1], cm)
		cm.ApplySwap(cand, center)
		break // single pre-pass: stop after the first adjustment
	}

	return cm.Layout(), nil
}
