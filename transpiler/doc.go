// Package transpiler orchestrates the full circuit-to-pulse pipeline:
// optional placement and routing, translation to the native gate set,
// virtual-Z phase folding, and pulse schedule construction.
//
// The stage order is routing first, then translation and optimization.
// Routing on the abstract circuit keeps inserted SWAPs eligible for the
// decomposition table, and phase corrections resolve against physical qubit
// pairs, which only exist after routing.
//
// A Transpiler is immutable after New and safe for concurrent use; distinct
// Transpile calls share no mutable state.
//
// Usage:
//
//	settings, err := calibration.Load("chip.yml")
//	// handle err
//	tp, err := transpiler.New(settings,
//	    transpiler.WithRouter(sabre),
//	    transpiler.WithPlacer(placer),
//	)
//	// handle err
//	schedules, err := tp.Transpile([]*gate.Circuit{c})
package transpiler
