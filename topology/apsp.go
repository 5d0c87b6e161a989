// Package topology - dense all-pairs shortest paths.
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) over the connectivity graph with
//     a deterministic loop order, shared by the routers for lookahead costs,
//     tie-break reproducibility and the recovery threshold.
//
// Contract:
//   - Unit edge weights (hop counts); the diagonal is 0.
//   - Disconnected graphs are rejected (ErrDisconnected) so every returned
//     distance is finite.
package topology

import "math"

// Distances computes hop-count shortest-path distances between every pair of
// physical qubits. The result is a fresh n×n matrix; callers own it and the
// graph is untouched.
//
// Loop order is fixed (k → i → j) with strict-improvement relaxation only,
// so the accumulation order - and therefore every downstream tie-break that
// reads these distances - is reproducible across platforms.
//
// Errors: ErrDisconnected when any pair is unreachable.
//
// Complexity: O(n³) time, O(n²) space for the returned matrix.
func (g *Graph) Distances() ([][]float64, error) {
	n := g.n
	d := make([][]float64, n)

	// Init: 0 on the diagonal, 1 on edges, +Inf elsewhere, row-by-row in a
	// fixed order.
	var i, j int
	for i = 0; i < n; i++ {
		d[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				d[i][j] = 0
			case g.adj[i][j]:
				d[i][j] = 1
			default:
				d[i][j] = math.Inf(1)
			}
		}
	}

	// Relaxation with the canonical k → i → j order.
	var (
		k    int
		ik   float64
		cand float64
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			ik = d[i][k]
			if math.IsInf(ik, 1) { // i cannot reach k; no path via k improves i→j
				continue
			}
			for j = 0; j < n; j++ {
				if math.IsInf(d[k][j], 1) {
					continue
				}
				cand = ik + d[k][j]
				if cand < d[i][j] { // strict improvement only
					d[i][j] = cand
				}
			}
		}
	}

	// Reject disconnected graphs: the router derives its recovery threshold
	// from the diameter, which must be finite.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if math.IsInf(d[i][j], 1) {
				return nil, ErrDisconnected
			}
		}
	}

	return d, nil
}

// Diameter returns the largest shortest-path distance in the graph.
//
// Errors: ErrDisconnected (via Distances).
//
// Complexity: O(n³).
func (g *Graph) Diameter() (float64, error) {
	d, err := g.Distances()
	if err != nil {
		return 0, err
	}

	var (
		i, j int
		max  float64
	)
	for i = 0; i < g.n; i++ {
		for j = 0; j < g.n; j++ {
			if d[i][j] > max {
				max = d[i][j]
			}
		}
	}

	return max, nil
}
