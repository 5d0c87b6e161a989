// Package route - reverse-traversal initial placement.
package route

import "github.com/qilimanjaro-tech/pulsekit/gate"

// ReverseTraversalPlacer bootstraps an initial layout by routing a synthetic
// probe circuit: the real circuit's two-qubit interaction pairs, reduced to
// bare CZ gates (single-qubit gates are irrelevant to connectivity), then
// inverted by reversing gate order - an involution on a CZ-only circuit.
// The router's final mapping after consuming the reversed probe becomes the
// initial placement; the routed probe itself is discarded.
type ReverseTraversalPlacer struct {
	router Router
	depth  int // probe length in two-qubit gates; 0 means the raw pair list
}

// NewReverseTraversalPlacer binds the placer to a router. depth > 0 requests
// a probe of exactly depth interactions, built by cycling the pair list
// forward then reversed (full cycles, then a partial remainder); depth == 0
// uses the pair list as-is.
func NewReverseTraversalPlacer(router Router, depth int) (*ReverseTraversalPlacer, error) {
	if depth < 0 {
		return nil, ErrBadOptions
	}

	return &ReverseTraversalPlacer{router: router, depth: depth}, nil
}

// Place builds, inverts and routes the probe, returning the router's final
// layout. Errors: ErrNoTwoQubitGates when the depth-bounded variant has no
// interaction pairs to cycle through; routing errors propagate.
func (p *ReverseTraversalPlacer) Place(c *gate.Circuit) ([]int, error) {
	pairs := interactionPairs(c.Gates)
	if len(pairs) == 0 {
		return nil, ErrNoTwoQubitGates
	}

	probe := pairs
	if p.depth > 0 {
		probe = cyclePairs(pairs, p.depth)
	}

	// Bare CZ per pair, then invert by reversing the order.
	probeCircuit := gate.NewCircuit(c.NumQubits)

	var i int
	for i = len(probe) - 1; i >= 0; i-- {
		probeCircuit.Add(gate.CZ(probe[i][0], probe[i][1]))
	}

	res, err := p.router.Route(probeCircuit, nil)
	if err != nil {
		return nil, err
	}

	return res.Layout, nil
}

// interactionPairs extracts the ordered two-qubit gate pairs of a circuit,
// skipping measurements and single-qubit gates.
func interactionPairs(gates []gate.Gate) [][2]int {
	var out [][2]int

	var (
		i  int
		qs []int
	)
	for i = 0; i < len(gates); i++ {
		if gates[i].Kind() == gate.KindMeasure {
			continue
		}
		qs = gates[i].Qubits()
		if len(qs) == 2 {
			out = append(out, [2]int{qs[0], qs[1]})
		}
	}

	return out
}

// cyclePairs extends or truncates the pair list to exactly depth entries by
// walking it forward, then backward, then forward again, and so on.
func cyclePairs(pairs [][2]int, depth int) [][2]int {
	out := make([][2]int, 0, depth)
	forward := true
	for len(out) < depth {
		if forward {
			for i := 0; i < len(pairs) && len(out) < depth; i++ {
				out = append(out, pairs[i])
			}
		} else {
			for i := len(pairs) - 1; i >= 0 && len(out) < depth; i-- {
				out = append(out, pairs[i])
			}
		}
		forward = !forward
	}

	return out
}
