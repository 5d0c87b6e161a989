// Package route - sentinel errors, options and the router/placer contracts.
package route

import (
	"errors"

	"github.com/qilimanjaro-tech/pulsekit/gate"
)

var (
	// ErrConnectivity indicates a gate targeting more than two qubits
	// reached a router, or a malformed topology was supplied.
	ErrConnectivity = errors.New("route: gate exceeds two qubits or topology is malformed")

	// ErrNoTwoQubitGates indicates the depth-bounded reverse-traversal
	// placer received a circuit without any two-qubit gate to probe with.
	// The caller may retry with a different placer.
	ErrNoTwoQubitGates = errors.New("route: circuit has no two-qubit gates to place by")

	// ErrBadLayout indicates an initial layout that is not a permutation of
	// the physical qubit indices.
	ErrBadLayout = errors.New("route: initial layout is not a valid permutation")

	// ErrBadOptions indicates an out-of-range routing option.
	ErrBadOptions = errors.New("route: invalid routing options")
)

// Result is the outcome of one routing pass.
type Result struct {
	// Gates is the routed circuit. Qubit indices are physical; inserted
	// SWAP gates act on connectivity-adjacent physical pairs.
	Gates []gate.Gate

	// Layout is the final logical→physical mapping (index = logical qubit).
	Layout []int

	// Swaps is the number of SWAP gates inserted, the quality measure used
	// to select the best of several routing attempts.
	Swaps int
}

// Router routes a circuit starting from an initial logical→physical layout.
// A nil initial layout means the identity mapping.
type Router interface {
	Route(c *gate.Circuit, initial []int) (Result, error)
}

// Placer chooses an initial logical→physical layout for a circuit.
type Placer interface {
	Place(c *gate.Circuit) ([]int, error)
}

// Reseeder is implemented by routers whose tie-break stream can be re-derived,
// enabling several independent routing attempts from one configured router.
type Reseeder interface {
	Router
	Reseed(seed int64) Router
}

// Options configures the Sabre router.
//
//	Lookahead      - number of DAG layers beyond the front layer contributing
//	                 to the swap cost.
//	DecayLookahead - multiplicative weight decay per lookahead layer, in (0, 1].
//	Delta          - additive bump of a physical qubit's anti-overlap penalty
//	                 each time a swap touches it; reset on every committed block.
//	SwapThreshold  - recovery trigger: when the count of uncommitted swaps
//	                 exceeds SwapThreshold × (graph diameter), the attempt is
//	                 rolled back and the closest front block is routed along an
//	                 exact shortest path. Must be positive; this is the hard
//	                 liveness guarantee, not a best-effort tweak.
//	Seed           - tie-break RNG seed; 0 selects a fixed default stream.
type Options struct {
	Lookahead      int
	DecayLookahead float64
	Delta          float64
	SwapThreshold  float64
	Seed           int64
}

// DefaultOptions returns the Sabre defaults: two lookahead layers with a 0.5
// decay, a 0.02 penalty bump and a 6×diameter recovery threshold.
func DefaultOptions() Options {
	return Options{
		Lookahead:      2,
		DecayLookahead: 0.5,
		Delta:          0.02,
		SwapThreshold:  6,
		Seed:           0,
	}
}

// validate rejects option values that would break the cost function or the
// liveness guarantee.
func (o Options) validate() error {
	if o.Lookahead < 0 {
		return ErrBadOptions
	}
	if o.DecayLookahead <= 0 || o.DecayLookahead > 1 {
		return ErrBadOptions
	}
	if o.Delta < 0 {
		return ErrBadOptions
	}
	if o.SwapThreshold <= 0 {
		return ErrBadOptions
	}

	return nil
}
