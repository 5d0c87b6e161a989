// Package native - sentinel errors and collaborator interfaces.
package native

import "errors"

var (
	// ErrUnsupportedGate indicates a gate kind with no registered
	// decomposition reached the translator. The whole circuit's
	// transpilation aborts; there is no partial output.
	ErrUnsupportedGate = errors.New("native: gate kind has no registered decomposition")

	// ErrNotNative indicates the optimizer received a gate outside the
	// native supported set.
	ErrNotNative = errors.New("native: gate not part of native supported gates")
)

// PhaseCorrector resolves calibrated CZ phase-correction constants by qubit
// role. Implementations are read-only for the duration of a transpile call
// and may be shared across parallel calls.
//
// CZPhaseCorrection returns the phase added to the control and target
// accumulators when a CZ on (control, target) executes, and ok=false when no
// correction is calibrated for the pair.
type PhaseCorrector interface {
	CZPhaseCorrection(control, target int) (controlPhase, targetPhase float64, ok bool)
}
