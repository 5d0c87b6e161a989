// Package topology - the connectivity graph and canonical chip shapes.
package topology

// starDegree is the center degree required by the star validation rule:
// one degree-4 center, four degree-1 leaves.
const starDegree = 4

// Graph is an undirected connectivity graph over physical qubit indices
// 0..N-1. Immutable after construction.
type Graph struct {
	n   int
	adj [][]bool
	deg []int
}

// New builds a graph over n qubits from an explicit edge list. Edges are
// undirected; duplicates are idempotent. Self-loops and out-of-range
// endpoints are rejected with ErrBadEdge.
//
// Complexity: O(n² + |edges|) (adjacency matrix allocation + edge pass).
func New(n int, edges [][2]int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrBadOrder
	}

	g := &Graph{
		n:   n,
		adj: make([][]bool, n),
		deg: make([]int, n),
	}
	var i int
	for i = 0; i < n; i++ {
		g.adj[i] = make([]bool, n)
	}

	var a, b int
	for i = 0; i < len(edges); i++ {
		a, b = edges[i][0], edges[i][1]
		if a < 0 || a >= n || b < 0 || b >= n || a == b {
			return nil, ErrBadEdge
		}
		if g.adj[a][b] {
			continue // duplicate edge; degree counted once
		}
		g.adj[a][b] = true
		g.adj[b][a] = true
		g.deg[a]++
		g.deg[b]++
	}

	return g, nil
}

// Star returns the five-qubit star chip: qubit center coupled to every other
// qubit, no other edges. center must be in [0, 5).
func Star(center int) (*Graph, error) {
	const n = starDegree + 1
	if center < 0 || center >= n {
		return nil, ErrBadEdge
	}
	edges := make([][2]int, 0, starDegree)

	var q int
	for q = 0; q < n; q++ {
		if q != center {
			edges = append(edges, [2]int{center, q})
		}
	}

	return New(n, edges)
}

// Line returns a 1D chain of n qubits: i coupled to i+1.
func Line(n int) (*Graph, error) {
	edges := make([][2]int, 0, n)

	var i int
	for i = 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}

	return New(n, edges)
}

// Grid returns an rows×cols lattice; qubit (r, c) has index r*cols + c and
// is coupled to its horizontal and vertical neighbors.
func Grid(rows, cols int) (*Graph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadOrder
	}
	edges := make([][2]int, 0, 2*rows*cols)

	var r, c, id int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			id = r*cols + c
			if c+1 < cols {
				edges = append(edges, [2]int{id, id + 1})
			}
			if r+1 < rows {
				edges = append(edges, [2]int{id, id + cols})
			}
		}
	}

	return New(rows*cols, edges)
}

// N returns the number of physical qubits.
func (g *Graph) N() int { return g.n }

// Adjacent reports whether a direct coupler exists between a and b.
// Out-of-range indices report false.
func (g *Graph) Adjacent(a, b int) bool {
	if a < 0 || a >= g.n || b < 0 || b >= g.n {
		return false
	}

	return g.adj[a][b]
}

// Degree returns the number of couplers attached to q.
func (g *Graph) Degree(q int) int { return g.deg[q] }

// Neighbors returns q's adjacent qubits in ascending order. A fresh slice is
// returned on every call; the iteration order is canonical by construction.
func (g *Graph) Neighbors(q int) []int {
	out := make([]int, 0, g.deg[q])

	var p int
	for p = 0; p < g.n; p++ {
		if g.adj[q][p] {
			out = append(out, p)
		}
	}

	return out
}

// StarCenter validates the star shape (exactly one node of degree 4, all
// others of degree 1) and returns the center index.
// Returns ErrInvalidTopology on any other shape.
//
// Complexity: O(n).
func (g *Graph) StarCenter() (int, error) {
	center := -1

	var q int
	for q = 0; q < g.n; q++ {
		switch g.deg[q] {
		case starDegree:
			if center >= 0 {
				return 0, ErrInvalidTopology // two centers
			}
			center = q
		case 1:
			// leaf; fine
		default:
			return 0, ErrInvalidTopology
		}
	}
	if center < 0 {
		return 0, ErrInvalidTopology
	}

	return center, nil
}
