// Package native_test - virtual-phase optimizer coverage.
package native_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qilimanjaro-tech/pulsekit/gate"
	"github.com/qilimanjaro-tech/pulsekit/native"
)

// pairCorrector is a test double for the calibrated CZ corrections.
type pairCorrector map[[2]int][2]float64

func (p pairCorrector) CZPhaseCorrection(control, target int) (float64, float64, bool) {
	c, ok := p[[2]int{control, target}]

	return c[0], c[1], ok
}

func TestOptimize_FoldsBetweenDrags(t *testing.T) {
	const exact = 1e-12

	in := []gate.Gate{
		gate.Drag(0, 1, 0),
		gate.VirtualZ(0, math.Pi/2),
		gate.Drag(0, 1, 0),
	}

	out, err := native.Optimize(in, 1, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.Equal(t, gate.KindDrag, out[0].Kind())
	require.InDelta(t, 0, out[0].Params()[1], exact)

	require.Equal(t, gate.KindDrag, out[1].Kind())
	require.InDelta(t, -math.Pi/2, out[1].Params()[1], exact)
}

func TestOptimize_Idempotent(t *testing.T) {
	in := []gate.Gate{
		gate.Drag(0, 1, 0.2),
		gate.VirtualZ(0, 0.7),
		gate.CZ(0, 1),
		gate.Drag(1, 0.5, -0.1),
		gate.VirtualZ(1, -0.3),
		gate.Drag(1, 0.5, 0.4),
		gate.Measure(0, 1),
	}

	once, err := native.Optimize(in, 2, nil)
	require.NoError(t, err)
	twice, err := native.Optimize(once, 2, nil)
	require.NoError(t, err)

	require.Equal(t, once, twice)
}

func TestOptimize_DropsTrailingRotations(t *testing.T) {
	// A Z rotation after the last pulse on a qubit is unobservable in a
	// terminal Z-basis measurement and must vanish.
	in := []gate.Gate{
		gate.Drag(0, 1, 0),
		gate.VirtualZ(0, 0.9),
		gate.Measure(0),
	}

	out, err := native.Optimize(in, 1, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, gate.KindDrag, out[0].Kind())
	require.Equal(t, gate.KindMeasure, out[1].Kind())
}

func TestOptimize_CZCorrections(t *testing.T) {
	const exact = 1e-12

	corr := pairCorrector{{0, 1}: {0.11, 0.22}}
	in := []gate.Gate{
		gate.CZ(0, 1),
		gate.Drag(0, 1, 0),
		gate.Drag(1, 1, 0),
	}

	out, err := native.Optimize(in, 2, corr)
	require.NoError(t, err)
	require.Len(t, out, 3)

	require.Equal(t, gate.KindCZ, out[0].Kind())
	require.InDelta(t, -0.11, out[1].Params()[1], exact)
	require.InDelta(t, -0.22, out[2].Params()[1], exact)
}

func TestOptimize_NoCorrectionForUncalibratedPair(t *testing.T) {
	corr := pairCorrector{{0, 1}: {0.11, 0.22}}
	in := []gate.Gate{
		gate.CZ(2, 3),
		gate.Drag(2, 1, 0.5),
	}

	out, err := native.Optimize(in, 4, corr)
	require.NoError(t, err)
	require.InDelta(t, 0.5, out[1].Params()[1], 1e-12)
}

func TestOptimize_WaitPassesThrough(t *testing.T) {
	in := []gate.Gate{
		gate.VirtualZ(0, 0.4),
		gate.Wait(0, 100),
		gate.Drag(0, 1, 0),
	}

	out, err := native.Optimize(in, 1, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, gate.KindWait, out[0].Kind())
	require.InDelta(t, -0.4, out[1].Params()[1], 1e-12)
}

func TestOptimize_RejectsAbstractGate(t *testing.T) {
	_, err := native.Optimize([]gate.Gate{gate.H(0)}, 1, nil)
	require.ErrorIs(t, err, native.ErrNotNative)
}

// TestOptimize_PreservesState checks physical equivalence on a sequence whose
// per-qubit rotation angles sum to zero, so no trailing rotation is dropped
// and the optimized output must reproduce the exact state up to a global
// phase.
func TestOptimize_PreservesState(t *testing.T) {
	in := []gate.Gate{
		gate.Drag(0, 0.6, 0.1),
		gate.VirtualZ(0, 0.8),
		gate.Drag(1, 1.1, -0.4),
		gate.CZ(0, 1),
		gate.VirtualZ(1, -0.5),
		gate.Drag(0, 0.9, 0.7),
		gate.Drag(1, 0.3, 0.2),
		gate.VirtualZ(0, -0.8),
		gate.VirtualZ(1, 0.5),
	}

	out, err := native.Optimize(in, 2, nil)
	require.NoError(t, err)
	requireSameState(t, 2, in, out)
}
