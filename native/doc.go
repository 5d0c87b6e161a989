// Package native lowers abstract circuits onto the native gate set
// {Drag, CZ, VirtualZ, Wait, Measure} and folds virtual-Z rotations into
// Drag phase offsets.
//
// Two operations are exported:
//
//   - Translate: repeatedly substitutes each non-native gate with its
//     registered decomposition (an explicit worklist, not recursion) until
//     only native kinds remain. Decompositions are templated on placeholder
//     qubit slots 0..2 and rebound onto the gate's actual qubit tuple.
//
//   - Optimize: a single left-to-right pass that consumes VirtualZ gates
//     into a per-qubit phase accumulator, adds calibrated CZ phase
//     corrections to that accumulator, and subtracts the accumulated shift
//     from every subsequent Drag phase. Trailing accumulated rotations
//     before a terminal Z-basis measurement are physically unobservable and
//     are dropped by construction.
//
// Determinism: both passes are pure sequential transformations; output
// depends only on the input gate list (and, for Optimize, the read-only
// phase-correction table).
//
// Complexity: Translate is O(total emitted gates); every decomposition step
// strictly reduces a well-founded measure (non-native gates decompose into
// strictly simpler kinds), so the worklist terminates. Optimize is O(n) in
// the input length with O(qubits) extra space.
package native
