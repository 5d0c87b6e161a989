// Package route - the SABRE heuristic router for general topologies.
//
// The routing pass is a state machine over {Execute, FindSwap,
// ThresholdRecovery}. Execute commits every currently-executable front-layer
// block; FindSwap scores candidate SWAPs with a decaying lookahead cost over
// precomputed all-pairs shortest paths and applies the cheapest one;
// ThresholdRecovery rolls back a stalled swap run and force-routes the
// closest front block along an exact shortest path, which guarantees forward
// progress and therefore termination.
package route

import (
	"math"
	"math/rand"

	"github.com/qilimanjaro-tech/pulsekit/gate"
	"github.com/qilimanjaro-tech/pulsekit/topology"
)

// initialDelta is the reset value of every qubit's anti-overlap penalty.
const initialDelta = 1.0

// Sabre routes circuits over an arbitrary connected topology.
// Construct with NewSabre; a Sabre value is immutable and safe to share,
// each Route call owns its mutable state.
type Sabre struct {
	topo *topology.Graph
	opts Options
}

// NewSabre validates opts and binds the router to a connectivity graph.
func NewSabre(topo *topology.Graph, opts Options) (*Sabre, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Sabre{topo: topo, opts: opts}, nil
}

// Reseed returns a copy of the router with a different tie-break seed,
// every other option untouched.
func (s *Sabre) Reseed(seed int64) Router {
	opts := s.opts
	opts.Seed = seed

	return &Sabre{topo: s.topo, opts: opts}
}

// sabreState is the per-call mutable routing state.
type sabreState struct {
	dag  *depGraph
	cm   *CircuitMap
	dist [][]float64

	out   []gate.Gate
	swaps int

	delta  []float64 // anti-overlap penalty per physical qubit
	memory [][]int   // p2l snapshots of previously-tried mappings
	temp   [][2]int  // uncommitted swaps since the last Execute

	threshold float64 // SwapThreshold × diameter
}

// Route routes c starting from the given initial logical→physical layout
// (nil means identity). The routed gates are expressed on physical qubits;
// trailing measurements are re-appended, remapped through the final mapping.
//
// Errors: ErrConnectivity (>2-qubit gate), ErrBadLayout,
// topology.ErrDisconnected (via the distance matrix).
func (s *Sabre) Route(c *gate.Circuit, initial []int) (Result, error) {
	if c.NumQubits > s.topo.N() {
		return Result{}, ErrConnectivity
	}

	// Preprocessing: detach measurements, build the DAG, derive distances.
	dag, err := buildDAG(c.Gates)
	if err != nil {
		return Result{}, err
	}
	cm, err := mapFromInitial(s.topo.N(), initial)
	if err != nil {
		return Result{}, err
	}
	dist, err := s.topo.Distances()
	if err != nil {
		return Result{}, err
	}

	st := &sabreState{
		dag:   dag,
		cm:    cm,
		dist:  dist,
		delta: make([]float64, s.topo.N()),
	}
	var diameter float64
	for _, row := range dist {
		for _, v := range row {
			if v > diameter {
				diameter = v
			}
		}
	}
	st.threshold = s.opts.SwapThreshold * diameter
	st.resetPenalties()

	rng := rngFromSeed(s.opts.Seed)

	// Main loop: Execute while possible, otherwise FindSwap; recovery when
	// the uncommitted swap run exceeds the threshold.
	for st.dag.aliveCount() > 0 {
		if s.executeStep(st) {
			continue
		}
		s.findSwapStep(st, rng)
		if float64(len(st.temp)) > st.threshold {
			s.recoverStep(st)
		}
	}

	// Epilogue singles, then the detached measurements, both remapped
	// through the final mapping.
	var i int
	for i = 0; i < len(st.dag.epilogue); i++ {
		st.out = append(st.out, st.dag.epilogue[i].Remap(st.cm.l2p))
	}
	for i = 0; i < len(st.dag.measures); i++ {
		st.out = append(st.out, st.dag.measures[i].Remap(st.cm.l2p))
	}

	return Result{Gates: st.out, Layout: st.cm.Layout(), Swaps: st.swaps}, nil
}

// resetPenalties restores the delta register to its initial state.
func (st *sabreState) resetPenalties() {
	var p int
	for p = 0; p < len(st.delta); p++ {
		st.delta[p] = initialDelta
	}
}

// executable reports whether a front block can run under the live mapping:
// its physical pair is connectivity-adjacent, or it is non-entangling.
func (s *Sabre) executable(st *sabreState, b *block) bool {
	if !b.entangling {
		return true
	}

	return s.topo.Adjacent(st.cm.Physical(b.q1), st.cm.Physical(b.q2))
}

// executeStep commits every executable front-layer block in one step:
// gates move to the routed output qubit-remapped through the live mapping,
// the DAG node is removed, layers and the front layer are recomputed, and
// the per-step scratch state (memory, penalties, uncommitted swap counter)
// resets. Reports whether anything was committed.
func (s *Sabre) executeStep(st *sabreState) bool {
	committed := false
	for _, b := range st.dag.front() {
		if !s.executable(st, b) {
			continue
		}
		var i int
		for i = 0; i < len(b.gates); i++ {
			st.out = append(st.out, b.gates[i].Remap(st.cm.l2p))
		}
		b.alive = false
		committed = true
	}
	if committed {
		st.dag.recomputeLayers()
		st.memory = st.memory[:0]
		st.temp = st.temp[:0]
		st.resetPenalties()
	}

	return committed
}

// findSwapStep scores every candidate SWAP touching a front-layer physical
// qubit, applies the cheapest (ties broken uniformly at random from the
// seeded stream), and records it as uncommitted.
func (s *Sabre) findSwapStep(st *sabreState, rng *rand.Rand) {
	candidates := s.swapCandidates(st)

	var (
		bestCost = math.Inf(1)
		best     [][2]int // all minimum-cost candidates, for the tie-break
		cost     float64
		i        int
	)
	for i = 0; i < len(candidates); i++ {
		cost = s.swapCost(st, candidates[i])
		switch {
		case cost < bestCost:
			bestCost = cost
			best = best[:0]
			best = append(best, candidates[i])
		case cost == bestCost:
			best = append(best, candidates[i])
		}
	}
	pick := best[rng.Intn(len(best))]

	// Remember the pre-swap mapping so the inverse move is forbidden next
	// time (prevents 2-cycles), then apply.
	st.memory = append(st.memory, st.cm.snapshotP2L())
	st.cm.ApplySwap(pick[0], pick[1])
	st.out = append(st.out, gate.SWAP(pick[0], pick[1]))
	st.swaps++
	st.temp = append(st.temp, pick)
	st.delta[pick[0]] += s.opts.Delta
	st.delta[pick[1]] += s.opts.Delta
}

// swapCandidates enumerates physical SWAPs touching a qubit used by any
// entangling front block, paired with each of its connectivity neighbors.
// Candidates are produced in canonical (ascending pair) order, deduplicated.
func (s *Sabre) swapCandidates(st *sabreState) [][2]int {
	used := make([]bool, s.topo.N())
	for _, b := range st.dag.front() {
		if !b.entangling {
			continue
		}
		used[st.cm.Physical(b.q1)] = true
		used[st.cm.Physical(b.q2)] = true
	}

	seen := make(map[[2]int]bool)
	var out [][2]int

	var (
		p  int
		nb int
	)
	for p = 0; p < s.topo.N(); p++ {
		if !used[p] {
			continue
		}
		for _, nb = range s.topo.Neighbors(p) {
			pair := [2]int{p, nb}
			if nb < p {
				pair = [2]int{nb, p}
			}
			if seen[pair] {
				continue
			}
			seen[pair] = true
			out = append(out, pair)
		}
	}

	return out
}

// swapCost evaluates one candidate: a decaying weighted sum over the
// lookahead window of, for every entangling block in each layer,
// max(delta over its two physical qubits) × (distance after the candidate
// swap − 1) / (number of entangling blocks in that layer). A candidate whose
// resulting mapping was already tried scores +Inf.
func (s *Sabre) swapCost(st *sabreState, cand [2]int) float64 {
	if s.wouldRevisit(st, cand) {
		return math.Inf(1)
	}

	// mapThrough applies the candidate on top of the live mapping.
	mapThrough := func(l int) int {
		p := st.cm.Physical(l)
		switch p {
		case cand[0]:
			return cand[1]
		case cand[1]:
			return cand[0]
		default:
			return p
		}
	}

	var (
		total  float64
		weight = 1.0
		layer  int
	)
	for layer = 0; layer <= s.opts.Lookahead; layer++ {
		var (
			blocks []*block
			i      int
		)
		for i = 0; i < len(st.dag.blocks); i++ {
			b := st.dag.blocks[i]
			if b.alive && b.entangling && b.layer == layer {
				blocks = append(blocks, b)
			}
		}
		if len(blocks) > 0 {
			share := float64(len(blocks))
			for _, b := range blocks {
				p1, p2 := mapThrough(b.q1), mapThrough(b.q2)
				pen := st.delta[p1]
				if st.delta[p2] > pen {
					pen = st.delta[p2]
				}
				total += weight * pen * (st.dist[p1][p2] - 1) / share
			}
		}
		weight *= s.opts.DecayLookahead
	}

	return total
}

// wouldRevisit reports whether applying cand reproduces a mapping already
// recorded in the memory of tried mappings.
func (s *Sabre) wouldRevisit(st *sabreState, cand [2]int) bool {
	n := st.cm.N()

	var (
		m  []int
		p  int
		ok bool
	)
	for _, m = range st.memory {
		ok = true
		for p = 0; p < n; p++ {
			// Candidate only permutes entries cand[0] and cand[1].
			want := st.cm.Logical(p)
			switch p {
			case cand[0]:
				want = st.cm.Logical(cand[1])
			case cand[1]:
				want = st.cm.Logical(cand[0])
			}
			if m[p] != want {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}

	return false
}

// recoverStep undoes every uncommitted swap (restoring the mapping and
// trimming the routed output), then force-routes the front block with the
// smallest physical distance by swapping along one exact shortest path.
// The next executeStep commits it, so the loop always makes progress.
func (s *Sabre) recoverStep(st *sabreState) {
	// Roll back, newest first.
	var i int
	for i = len(st.temp) - 1; i >= 0; i-- {
		st.cm.UndoLastSwap()
	}
	st.out = st.out[:len(st.out)-len(st.temp)]
	st.swaps -= len(st.temp)
	st.temp = st.temp[:0]
	st.memory = st.memory[:0]
	st.resetPenalties()

	// Closest entangling front block, lowest id on ties.
	var (
		target *block
		bestD  = math.Inf(1)
		d      float64
	)
	for _, b := range st.dag.front() {
		if !b.entangling {
			continue
		}
		d = st.dist[st.cm.Physical(b.q1)][st.cm.Physical(b.q2)]
		if d < bestD {
			bestD = d
			target = b
		}
	}
	if target == nil {
		return // only pass-through blocks left; executeStep will drain them
	}

	// Plain shortest-path routing: walk q1's physical position toward q2,
	// always taking the neighbor that strictly reduces the remaining
	// distance (lowest index on ties for determinism).
	p2 := st.cm.Physical(target.q2)
	for {
		p1 := st.cm.Physical(target.q1)
		if s.topo.Adjacent(p1, p2) || p1 == p2 {
			return
		}
		next := -1
		nd := math.Inf(1)
		for _, nb := range s.topo.Neighbors(p1) {
			if st.dist[nb][p2] < nd {
				nd = st.dist[nb][p2]
				next = nb
			}
		}
		st.cm.ApplySwap(p1, next)
		st.out = append(st.out, gate.SWAP(p1, next))
		st.swaps++
	}
}
