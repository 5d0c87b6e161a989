// Package route - the block-level gate dependency DAG.
//
// Nodes are "blocks": a two-qubit operation together with the single-qubit
// gates that precede it on its qubit pair. Edges express "A must execute
// before B because they share a qubit", reduced to covering edges by
// transitive reduction. Each alive block carries a topological layer
// (depth over alive predecessors) used by the Sabre lookahead cost.
//
// Invariant: acyclic by construction (every edge points from a lower block
// index to a higher one, and blocks are created in program order).
package route

import "github.com/qilimanjaro-tech/pulsekit/gate"

// block is one DAG node: a two-qubit interaction on a fixed logical pair.
type block struct {
	id    int
	q1    int // logical pair, program order
	q2    int
	gates []gate.Gate // attached gates in program order, two-qubit gate last

	// entangling blocks need their pair connectivity-adjacent to execute;
	// non-entangling blocks (two-qubit measurements, degenerate pairs) are
	// pass-through.
	entangling bool

	alive bool
	layer int
}

// depGraph is the dependency structure for one routing pass.
type depGraph struct {
	blocks   []*block
	edge     [][]bool    // reduced direct edges, edge[i][j] implies i < j
	epilogue []gate.Gate // single-qubit gates after the last block on their qubit
	measures []gate.Gate // detached trailing measurements, re-appended at the end
}

// pendingGate tracks an unattached single-qubit gate with its program index,
// so merged attachment preserves program order.
type pendingGate struct {
	idx int
	g   gate.Gate
}

// buildDAG constructs the block DAG for a gate sequence. Trailing terminal
// measurement gates are detached first and kept aside. A gate on more than
// two qubits (other than a detached trailing measurement) is a routing
// contract violation.
//
// Complexity: O(n) block construction + O(B²) pairwise edge scan + O(B³)
// transitive reduction, B = number of blocks.
func buildDAG(gates []gate.Gate) (*depGraph, error) {
	// Detach the trailing measurement run.
	end := len(gates)
	for end > 0 && gates[end-1].Kind() == gate.KindMeasure {
		end--
	}
	d := &depGraph{}
	if end < len(gates) {
		d.measures = append(d.measures, gates[end:]...)
	}

	// Block construction: single-qubit gates accumulate per qubit until a
	// two-qubit gate on that qubit absorbs them.
	pending := make(map[int][]pendingGate)

	var (
		i  int
		g  gate.Gate
		qs []int
	)
	for i = 0; i < end; i++ {
		g = gates[i]
		qs = g.Qubits()
		switch len(qs) {
		case 1:
			pending[qs[0]] = append(pending[qs[0]], pendingGate{idx: i, g: g})
		case 2:
			b := &block{
				id:         len(d.blocks),
				q1:         qs[0],
				q2:         qs[1],
				entangling: g.Kind() != gate.KindMeasure && qs[0] != qs[1],
				alive:      true,
			}
			b.gates = mergePending(pending[qs[0]], pending[qs[1]])
			b.gates = append(b.gates, g)
			delete(pending, qs[0])
			delete(pending, qs[1])
			d.blocks = append(d.blocks, b)
		default:
			return nil, ErrConnectivity
		}
	}

	// Leftover singles become the epilogue, merged back into program order.
	d.epilogue = collectEpilogue(pending)

	d.buildEdges()
	d.recomputeLayers()

	return d, nil
}

// mergePending merges two per-qubit pending lists by program index.
func mergePending(a, b []pendingGate) []gate.Gate {
	out := make([]gate.Gate, 0, len(a)+len(b))

	var i, j int
	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && a[i].idx < b[j].idx):
			out = append(out, a[i].g)
			i++
		default:
			out = append(out, b[j].g)
			j++
		}
	}

	return out
}

// collectEpilogue flattens leftover pending gates back into program order.
func collectEpilogue(pending map[int][]pendingGate) []gate.Gate {
	var all []pendingGate
	for _, ps := range pending {
		all = append(all, ps...)
	}
	// Insertion sort by program index; epilogues are short.
	var i, j int
	var t pendingGate
	for i = 1; i < len(all); i++ {
		t = all[i]
		for j = i - 1; j >= 0 && all[j].idx > t.idx; j-- {
			all[j+1] = all[j]
		}
		all[j+1] = t
	}

	out := make([]gate.Gate, len(all))
	for i = 0; i < len(all); i++ {
		out[i] = all[i].g
	}

	return out
}

// sharesQubit reports whether blocks a and b act on a common logical qubit.
func sharesQubit(a, b *block) bool {
	return a.q1 == b.q1 || a.q1 == b.q2 || a.q2 == b.q1 || a.q2 == b.q2
}

// buildEdges runs the pairwise adjacency scan followed by transitive
// reduction, keeping only covering edges.
func (d *depGraph) buildEdges() {
	n := len(d.blocks)
	direct := make([][]bool, n)

	var i, j, k int
	for i = 0; i < n; i++ {
		direct[i] = make([]bool, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if sharesQubit(d.blocks[i], d.blocks[j]) {
				direct[i][j] = true
			}
		}
	}

	// Transitive closure over the forward-only edge set.
	closure := make([][]bool, n)
	for i = 0; i < n; i++ {
		closure[i] = make([]bool, n)
	}
	for i = n - 1; i >= 0; i-- {
		for j = i + 1; j < n; j++ {
			if !direct[i][j] {
				continue
			}
			closure[i][j] = true
			for k = j + 1; k < n; k++ {
				if closure[j][k] {
					closure[i][k] = true
				}
			}
		}
	}

	// Reduction: drop i→j when a longer path i→k→…→j exists.
	d.edge = make([][]bool, n)
	for i = 0; i < n; i++ {
		d.edge[i] = make([]bool, n)
		for j = i + 1; j < n; j++ {
			if !direct[i][j] {
				continue
			}
			redundant := false
			for k = i + 1; k < j; k++ {
				if direct[i][k] && closure[k][j] {
					redundant = true
					break
				}
			}
			d.edge[i][j] = !redundant
		}
	}
}

// recomputeLayers assigns each alive block its topological depth over alive
// predecessors. Layer 0 is the front layer: currently schedulable blocks.
func (d *depGraph) recomputeLayers() {
	var i, j int
	for j = 0; j < len(d.blocks); j++ {
		if !d.blocks[j].alive {
			continue
		}
		d.blocks[j].layer = 0
		for i = 0; i < j; i++ {
			if d.edge[i][j] && d.blocks[i].alive && d.blocks[i].layer+1 > d.blocks[j].layer {
				d.blocks[j].layer = d.blocks[i].layer + 1
			}
		}
	}
}

// front returns the alive layer-0 blocks in ascending id order.
func (d *depGraph) front() []*block {
	var out []*block

	var i int
	for i = 0; i < len(d.blocks); i++ {
		if d.blocks[i].alive && d.blocks[i].layer == 0 {
			out = append(out, d.blocks[i])
		}
	}

	return out
}

// aliveCount returns the number of unrouted blocks.
func (d *depGraph) aliveCount() int {
	n := 0

	var i int
	for i = 0; i < len(d.blocks); i++ {
		if d.blocks[i].alive {
			n++
		}
	}

	return n
}
