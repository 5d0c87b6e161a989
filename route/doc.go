// Package route places and routes logical circuits onto restricted hardware
// connectivity by inserting SWAP gates until every two-qubit operation acts
// on a connectivity-adjacent physical qubit pair.
//
// Components:
//
//   - CircuitMap: the mutable bijective logical↔physical mapping, updated
//     only through ApplySwap/UndoLastSwap so the inverse invariant
//     (l2p[p2l[p]] == p) can never be broken from outside.
//   - A block-level dependency DAG: nodes are two-qubit blocks (a two-qubit
//     gate plus the single-qubit gates that precede it on its pair), edges
//     are share-a-qubit precedence after transitive reduction; each node
//     carries a topological layer used for lookahead costs.
//   - StarRouter: exact routing for the five-qubit star topology, at most
//     one SWAP per non-center two-qubit gate.
//   - Sabre: the SABRE heuristic for general topologies - a state machine
//     over Execute / FindSwap / ThresholdRecovery steps with a lookahead
//     cost over precomputed all-pairs shortest paths, an anti-oscillation
//     memory of tried mappings, and a bounded-retry fallback to exact
//     shortest-path routing that guarantees termination.
//   - Placers: StarPlacer (star-aware initial mapping) and
//     ReverseTraversalPlacer (bootstraps a mapping by routing a reversed
//     synthetic probe circuit).
//
// Determinism: the only randomness is the seeded tie-break in Sabre's
// FindSwap step; everything else iterates in fixed canonical order. Equal
// seeds produce identical routed circuits.
//
// Every routing call owns its CircuitMap, DAG and scratch state; the
// connectivity graph and its distance matrix are read-only and may be shared
// across parallel calls.
package route
