// Package topology - sentinel errors.
package topology

import "errors"

var (
	// ErrBadOrder indicates a non-positive qubit count.
	ErrBadOrder = errors.New("topology: qubit count must be positive")

	// ErrBadEdge indicates an edge endpoint out of range or a self-loop.
	ErrBadEdge = errors.New("topology: edge endpoints must be distinct qubits in range")

	// ErrInvalidTopology indicates a graph that does not match the requested
	// shape (e.g. star validation failed).
	ErrInvalidTopology = errors.New("topology: graph does not match required topology")

	// ErrDisconnected indicates a graph with unreachable qubit pairs.
	// Routing requires a finite diameter, so disconnected chips are rejected
	// as a precondition violation.
	ErrDisconnected = errors.New("topology: connectivity graph is disconnected")
)
