// Package gate defines the gate and circuit model shared by every stage of
// the circuit-to-pulse transpilation pipeline.
//
// A Gate is a closed tagged variant: a Kind discriminator plus an ordered
// qubit tuple and a fixed number of float parameters per kind. Instances are
// immutable once constructed; every transformation stage (decomposition,
// phase optimization, routing, scheduling) produces new Gate values and never
// mutates its input.
//
// Conventions:
//
//   - Controlled gates list control qubits first (CNOT(c, t), Toffoli(a, b, t)).
//   - A gate sequence represents left-to-right application order on the state:
//     element 0 is applied first. A decomposition of U = A·B (apply B first,
//     then A) is therefore the list [B, A].
//   - The native set — the only kinds hardware executes directly — is
//     {Drag, CZ, VirtualZ, Wait, Measure}.
//
// Complexity: all operations in this package are O(1) or O(k) in the number
// of qubits/parameters of a single gate.
package gate
