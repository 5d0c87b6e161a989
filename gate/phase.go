// Package gate - phase normalization shared by the optimizer and scheduler.
package gate

import "math"

// twoPi is the full-turn constant used by NormalizePhase.
const twoPi = 2 * math.Pi

// NormalizePhase maps an angle into the half-open interval (−π, π].
//
// The rule is: reduce modulo 2π into [0, 2π), then subtract 2π when the
// remainder exceeds π. Math.Mod keeps the sign of the dividend, so negative
// inputs are first shifted into the positive range for a stable remainder.
//
// Complexity: O(1).
func NormalizePhase(x float64) float64 {
	m := math.Mod(x, twoPi)
	if m < 0 {
		m += twoPi
	}
	if m > math.Pi {
		m -= twoPi
	}

	return m
}
