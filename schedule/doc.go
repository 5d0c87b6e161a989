// Package schedule converts a fully native, routed gate sequence into a
// time-ordered, per-bus pulse schedule.
//
// The Builder walks the gate list once, keeping a lazily-initialized clock
// per qubit. Every scheduled gate resolves to its calibrated GateEvent list
// through the Platform collaborator; the gate's duration is the maximum
// event envelope (pulse duration + wait offset), rounded up to the next
// multiple of the platform's minimum clock time before the participating
// qubits' clocks advance. Multi-qubit gates leave every participant's clock
// synchronized to the same value.
//
// Wait gates advance a single qubit's clock verbatim (no quantization).
// VirtualZ gates are pulse-free and clock-neutral: their angle folds into
// the phase of subsequent Drag pulses exactly as the optimizer would fold
// it, so schedules built from unoptimized sequences remain correct.
//
// Determinism: qubits, events and buses are processed in fixed canonical
// order; two builds of the same input are identical.
//
// The calibration tables behind Platform are read-only for the duration of
// a build and may be shared across parallel builds; the Builder itself
// carries no mutable state between calls.
package schedule
