// Package calibration provides a concrete, in-memory implementation of the
// platform calibration lookups consumed by the scheduler and optimizer:
// gate schedules keyed by (gate name, qubit tuple), buses with ports and
// line kinds, the minimum clock time, the readout delay, and CZ
// phase-correction constants resolved by qubit role.
//
// Settings load from YAML (see Load) or build programmatically; after
// construction a Settings value is read-only and may be shared across
// parallel transpile calls.
package calibration
