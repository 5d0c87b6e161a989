// Package route - the bijective logical↔physical qubit mapping.
package route

// CircuitMap owns the paired logical→physical and physical→logical arrays.
// The two are mutual inverses at all times (l2p[p2l[p]] == p for every
// physical p); the invariant is preserved by construction because mutation is
// only possible through ApplySwap and UndoLastSwap.
//
// A CircuitMap is created fresh per routing call and discarded at the end;
// only the final layout survives.
type CircuitMap struct {
	l2p     []int
	p2l     []int
	history [][2]int // applied physical swap pairs, for undo
}

// NewCircuitMap returns the identity mapping over n qubits.
func NewCircuitMap(n int) *CircuitMap {
	m := &CircuitMap{
		l2p: make([]int, n),
		p2l: make([]int, n),
	}

	var i int
	for i = 0; i < n; i++ {
		m.l2p[i] = i
		m.p2l[i] = i
	}

	return m
}

// NewCircuitMapFromLayout builds a mapping from an explicit logical→physical
// layout. Returns ErrBadLayout unless layout is a permutation of 0..n-1.
func NewCircuitMapFromLayout(layout []int) (*CircuitMap, error) {
	n := len(layout)
	m := &CircuitMap{
		l2p: make([]int, n),
		p2l: make([]int, n),
	}

	var l, p int
	for p = 0; p < n; p++ {
		m.p2l[p] = -1
	}
	for l = 0; l < n; l++ {
		p = layout[l]
		if p < 0 || p >= n || m.p2l[p] != -1 {
			return nil, ErrBadLayout
		}
		m.l2p[l] = p
		m.p2l[p] = l
	}

	return m, nil
}

// N returns the number of qubits in the mapping.
func (m *CircuitMap) N() int { return len(m.l2p) }

// Physical returns the physical qubit hosting logical qubit l.
func (m *CircuitMap) Physical(l int) int { return m.l2p[l] }

// Logical returns the logical qubit hosted on physical qubit p.
func (m *CircuitMap) Logical(p int) int { return m.p2l[p] }

// ApplySwap exchanges the logical qubits hosted on physical qubits p1 and p2
// and records the swap for undo.
func (m *CircuitMap) ApplySwap(p1, p2 int) {
	l1, l2 := m.p2l[p1], m.p2l[p2]
	m.p2l[p1], m.p2l[p2] = l2, l1
	m.l2p[l1], m.l2p[l2] = p2, p1
	m.history = append(m.history, [2]int{p1, p2})
}

// UndoLastSwap reverses the most recently applied swap. Reports false when
// there is nothing to undo.
func (m *CircuitMap) UndoLastSwap() bool {
	if len(m.history) == 0 {
		return false
	}
	last := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]

	// A swap is its own inverse; re-exchange without re-recording.
	l1, l2 := m.p2l[last[0]], m.p2l[last[1]]
	m.p2l[last[0]], m.p2l[last[1]] = l2, l1
	m.l2p[l1], m.l2p[l2] = last[1], last[0]

	return true
}

// Layout returns a copy of the logical→physical array.
func (m *CircuitMap) Layout() []int {
	out := make([]int, len(m.l2p))
	copy(out, m.l2p)

	return out
}

// snapshotP2L returns a copy of the physical→logical array, used by the
// Sabre memory of previously-tried mappings.
func (m *CircuitMap) snapshotP2L() []int {
	out := make([]int, len(m.p2l))
	copy(out, m.p2l)

	return out
}
