// Package pulsekit turns abstract quantum circuits into hardware pulse
// schedules.
//
// The pipeline is built from small, independently usable packages:
//
//   - gate       - the circuit model: gate kinds, immutable Gate values,
//     Circuit containers and phase normalization.
//   - native     - the decomposition table, the translator to the native set
//     {Drag, CZ, RZ(virtual), Wait, M} and the virtual-phase optimizer.
//   - topology   - connectivity graphs, canonical chip shapes and dense
//     all-pairs shortest paths.
//   - route      - qubit placement and routing: the exact star router and
//     the SABRE-style heuristic for general topologies.
//   - schedule   - the pulse schedule builder: per-qubit clocks, calibrated
//     gate events, clock quantization.
//   - calibration - in-memory platform settings with YAML loading.
//   - transpiler - the orchestrator composing the stages.
//   - statevec   - a dense simulator used to verify gate identities.
//
// Every stage is deterministic: fixed iteration orders throughout, and the
// only randomness (routing tie-breaks) flows from explicit seeds.
package pulsekit
