// Package topology models the physical qubit/coupler connectivity of a chip:
// an undirected graph over physical qubit indices whose edges are the allowed
// two-qubit interactions.
//
// The package provides:
//
//   - Graph construction from an explicit edge list, plus canonical chip
//     shapes (Star, Line, Grid) used by tests and examples.
//   - Star validation: exactly one node of degree 4, all others of degree 1.
//   - All-pairs shortest-path distances (dense Floyd–Warshall with a fixed
//     k→i→j loop order so accumulation is bit-reproducible), the graph
//     diameter, and a connectivity check.
//
// Disconnected topologies are rejected up front: the router's recovery
// threshold is derived from the graph diameter, which is undefined on a
// disconnected graph.
//
// A Graph and its distance matrix are read-only after construction and may
// be shared across parallel transpile calls.
package topology
