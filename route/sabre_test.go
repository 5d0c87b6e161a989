// Package route_test - SABRE routing properties: adjacency of the output,
// gate preservation, layout consistency, determinism and forced recovery.
package route_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qilimanjaro-tech/pulsekit/gate"
	"github.com/qilimanjaro-tech/pulsekit/route"
	"github.com/qilimanjaro-tech/pulsekit/topology"
)

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// newSabre builds a router with defaults plus overrides applied.
func newSabre(t *testing.T, topo *topology.Graph, mut func(*route.Options)) *route.Sabre {
	t.Helper()
	opts := route.DefaultOptions()
	if mut != nil {
		mut(&opts)
	}
	s, err := route.NewSabre(topo, opts)
	require.NoError(t, err)

	return s
}

// requireRouted checks the core routing contract: every two-qubit gate in the
// output is connectivity-adjacent, the final layout is a permutation, the
// SWAP count matches, and the non-SWAP gate multiset equals the input's after
// accounting for the remapping.
func requireRouted(t *testing.T, topo *topology.Graph, c *gate.Circuit, res route.Result) {
	t.Helper()

	swaps := 0
	for _, g := range res.Gates {
		qs := g.Qubits()
		if g.Kind() == gate.KindSWAP {
			swaps++
			require.True(t, topo.Adjacent(qs[0], qs[1]), "SWAP %v not adjacent", qs)
			continue
		}
		if g.Kind() != gate.KindMeasure && len(qs) == 2 && qs[0] != qs[1] {
			require.True(t, topo.Adjacent(qs[0], qs[1]), "%s %v not adjacent", g.Kind(), qs)
		}
	}
	require.Equal(t, res.Swaps, swaps)

	// Layout is a permutation of the physical indices.
	seen := make([]bool, topo.N())
	require.Len(t, res.Layout, topo.N())
	for _, p := range res.Layout {
		require.False(t, seen[p])
		seen[p] = true
	}

	// Replaying the SWAPs over the identity start must reproduce the final
	// layout, and un-remapping each non-SWAP gate through the live mapping
	// must recover the input gate multiset.
	cm := route.NewCircuitMap(topo.N())
	counts := map[string]int{}
	for _, g := range c.Gates {
		counts[logicalKey(g)]++
	}
	for _, g := range res.Gates {
		if g.Kind() == gate.KindSWAP {
			cm.ApplySwap(g.Qubits()[0], g.Qubits()[1])
			continue
		}
		logical := make([]int, len(g.Qubits()))
		for i, p := range g.Qubits() {
			logical[i] = cm.Logical(p)
		}
		key := logicalKey(gate.New(g.Kind(), logical, g.Params()))
		counts[key]--
		require.GreaterOrEqual(t, counts[key], 0, "unexpected routed gate %s", key)
	}
	for key, n := range counts {
		require.Zero(t, n, "gate %s lost in routing", key)
	}
	require.Equal(t, res.Layout, cm.Layout())
}

// logicalKey folds a gate into a comparable multiset key.
func logicalKey(g gate.Gate) string {
	return fmt.Sprintf("%s%v%v", g.Kind(), g.Qubits(), g.Params())
}

// randomConnectedGraph draws a random spanning tree over n qubits plus up to
// two extra edges. Duplicate edges are idempotent in topology.New.
func randomConnectedGraph(t *testing.T, rng *rand.Rand, n int) *topology.Graph {
	t.Helper()
	perm := rng.Perm(n)
	edges := make([][2]int, 0, n+2)

	var i, a, b int
	for i = 1; i < n; i++ {
		edges = append(edges, [2]int{perm[rng.Intn(i)], perm[i]})
	}
	extra := rng.Intn(3)
	for i = 0; i < extra; i++ {
		a = rng.Intn(n)
		b = (a + 1 + rng.Intn(n-1)) % n
		edges = append(edges, [2]int{a, b})
	}

	topo, err := topology.New(n, edges)
	require.NoError(t, err)

	return topo
}

// benchmarkCircuit is a 4-qubit interaction pattern that cannot run on a line
// without SWAPs.
func benchmarkCircuit() *gate.Circuit {
	return gate.NewCircuit(4).Add(
		gate.H(0),
		gate.CZ(0, 3),
		gate.T(1),
		gate.CZ(1, 2),
		gate.CZ(0, 1),
		gate.X(3),
		gate.CZ(2, 3),
		gate.CZ(0, 2),
		gate.Measure(0, 1, 2, 3),
	)
}

// -----------------------------------------------------------------------------
// Contract
// -----------------------------------------------------------------------------

func TestSabre_Line(t *testing.T) {
	topo, err := topology.Line(4)
	require.NoError(t, err)
	s := newSabre(t, topo, nil)
	c := benchmarkCircuit()

	res, err := s.Route(c, nil)
	require.NoError(t, err)
	require.Greater(t, res.Swaps, 0, "0-3 on a line needs at least one SWAP")
	requireRouted(t, topo, c, res)
}

func TestSabre_Grid(t *testing.T) {
	topo, err := topology.Grid(2, 3)
	require.NoError(t, err)
	s := newSabre(t, topo, nil)

	c := gate.NewCircuit(6).Add(
		gate.CZ(0, 5),
		gate.CZ(1, 4),
		gate.CZ(0, 3),
		gate.CZ(2, 5),
		gate.CZ(3, 4),
		gate.Measure(0, 1, 2, 3, 4, 5),
	)

	res, err := s.Route(c, nil)
	require.NoError(t, err)
	requireRouted(t, topo, c, res)
}

func TestSabre_Star(t *testing.T) {
	topo, err := topology.Star(2)
	require.NoError(t, err)
	s := newSabre(t, topo, nil)

	c := gate.NewCircuit(5).Add(
		gate.CZ(0, 1),
		gate.CZ(3, 4),
		gate.CZ(0, 4),
	)

	res, err := s.Route(c, nil)
	require.NoError(t, err)
	requireRouted(t, topo, c, res)
}

func TestSabre_AdjacentCircuitNeedsNoSwaps(t *testing.T) {
	topo, err := topology.Line(3)
	require.NoError(t, err)
	s := newSabre(t, topo, nil)

	c := gate.NewCircuit(3).Add(
		gate.CZ(0, 1),
		gate.CZ(1, 2),
	)

	res, err := s.Route(c, nil)
	require.NoError(t, err)
	require.Zero(t, res.Swaps)
	requireRouted(t, topo, c, res)
}

func TestSabre_SingleQubitCircuit(t *testing.T) {
	topo, err := topology.Line(3)
	require.NoError(t, err)
	s := newSabre(t, topo, nil)

	c := gate.NewCircuit(2).Add(gate.H(0), gate.X(1), gate.Measure(0, 1))

	res, err := s.Route(c, nil)
	require.NoError(t, err)
	require.Zero(t, res.Swaps)
	require.Len(t, res.Gates, 3)
}

func TestSabre_InitialLayout(t *testing.T) {
	topo, err := topology.Line(4)
	require.NoError(t, err)
	s := newSabre(t, topo, nil)

	// Logical 0 and 3 placed adjacent: no SWAP needed for CZ(0, 3).
	c := gate.NewCircuit(4).Add(gate.CZ(0, 3))
	res, err := s.Route(c, []int{1, 0, 3, 2})
	require.NoError(t, err)
	require.Zero(t, res.Swaps)

	_, err = s.Route(c, []int{0, 1})
	require.ErrorIs(t, err, route.ErrBadLayout)
}

// TestSabre_RandomCircuitsOnRandomGraphs fuzzes the router: seeded random
// circuits on seeded random connected graphs must all satisfy the routing
// contract of requireRouted.
func TestSabre_RandomCircuitsOnRandomGraphs(t *testing.T) {
	const trials = 300
	rng := rand.New(rand.NewSource(5))

	var trial, i, n, depth, a, b int
	for trial = 0; trial < trials; trial++ {
		n = 4 + rng.Intn(5)
		topo := randomConnectedGraph(t, rng, n)

		c := gate.NewCircuit(n)
		depth = 3 + rng.Intn(10)
		for i = 0; i < depth; i++ {
			a = rng.Intn(n)
			b = (a + 1 + rng.Intn(n-1)) % n
			switch rng.Intn(4) {
			case 0:
				c.Add(gate.H(a))
			case 1:
				c.Add(gate.T(a))
			case 2:
				c.Add(gate.CZ(a, b))
			default:
				c.Add(gate.CNOT(a, b))
			}
		}
		measured := make([]int, n)
		for i = 0; i < n; i++ {
			measured[i] = i
		}
		c.Add(gate.Measure(measured...))

		s := newSabre(t, topo, func(o *route.Options) { o.Seed = int64(trial + 1) })
		res, err := s.Route(c, nil)
		require.NoError(t, err, "trial %d", trial)
		requireRouted(t, topo, c, res)
	}
}

// -----------------------------------------------------------------------------
// Determinism and seeding
// -----------------------------------------------------------------------------

func TestSabre_Deterministic(t *testing.T) {
	topo, err := topology.Grid(2, 3)
	require.NoError(t, err)
	c := benchmarkCircuit()

	s := newSabre(t, topo, func(o *route.Options) { o.Seed = 7 })
	a, err := s.Route(c, nil)
	require.NoError(t, err)
	b, err := s.Route(c, nil)
	require.NoError(t, err)

	require.Equal(t, a, b, "same seed, same route")
}

func TestSabre_ReseedKeepsContract(t *testing.T) {
	topo, err := topology.Line(4)
	require.NoError(t, err)
	base := newSabre(t, topo, nil)
	c := benchmarkCircuit()

	var seed int64
	for seed = 1; seed <= 5; seed++ {
		res, err := base.Reseed(route.DeriveSeed(0, uint64(seed))).Route(c, nil)
		require.NoError(t, err)
		requireRouted(t, topo, c, res)
	}
}

func TestDeriveSeed_StableAndDistinct(t *testing.T) {
	a := route.DeriveSeed(42, 0)
	b := route.DeriveSeed(42, 0)
	c := route.DeriveSeed(42, 1)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

// -----------------------------------------------------------------------------
// Recovery and options
// -----------------------------------------------------------------------------

func TestSabre_TinyThresholdStillTerminates(t *testing.T) {
	// A threshold this small trips recovery almost immediately; the result
	// must still satisfy the full routing contract.
	topo, err := topology.Line(5)
	require.NoError(t, err)
	s := newSabre(t, topo, func(o *route.Options) { o.SwapThreshold = 0.25 })

	c := gate.NewCircuit(5).Add(
		gate.CZ(0, 4),
		gate.CZ(1, 3),
		gate.CZ(0, 2),
		gate.CZ(2, 4),
	)

	res, err := s.Route(c, nil)
	require.NoError(t, err)
	requireRouted(t, topo, c, res)
}

func TestNewSabre_OptionValidation(t *testing.T) {
	topo, err := topology.Line(3)
	require.NoError(t, err)

	bad := []route.Options{
		{Lookahead: -1, DecayLookahead: 0.5, Delta: 0.02, SwapThreshold: 6},
		{Lookahead: 2, DecayLookahead: 0, Delta: 0.02, SwapThreshold: 6},
		{Lookahead: 2, DecayLookahead: 1.5, Delta: 0.02, SwapThreshold: 6},
		{Lookahead: 2, DecayLookahead: 0.5, Delta: -0.1, SwapThreshold: 6},
		{Lookahead: 2, DecayLookahead: 0.5, Delta: 0.02, SwapThreshold: 0},
	}
	for i, o := range bad {
		_, err = route.NewSabre(topo, o)
		require.ErrorIs(t, err, route.ErrBadOptions, "case %d", i)
	}
}

func TestSabre_DisconnectedTopology(t *testing.T) {
	topo, err := topology.New(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	s := newSabre(t, topo, nil)

	c := gate.NewCircuit(4).Add(gate.CZ(0, 3))
	_, err = s.Route(c, nil)
	require.ErrorIs(t, err, topology.ErrDisconnected)
}

func TestSabre_RejectsOversizedCircuit(t *testing.T) {
	topo, err := topology.Line(2)
	require.NoError(t, err)
	s := newSabre(t, topo, nil)

	c := gate.NewCircuit(3).Add(gate.CZ(0, 2))
	_, err = s.Route(c, nil)
	require.ErrorIs(t, err, route.ErrConnectivity)
}
