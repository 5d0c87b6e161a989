// Package transpiler_test - end-to-end pipeline coverage: circuits in, pulse
// schedules out, against a programmatically built calibration.
package transpiler_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qilimanjaro-tech/pulsekit/calibration"
	"github.com/qilimanjaro-tech/pulsekit/gate"
	"github.com/qilimanjaro-tech/pulsekit/route"
	"github.com/qilimanjaro-tech/pulsekit/schedule"
	"github.com/qilimanjaro-tech/pulsekit/topology"
	"github.com/qilimanjaro-tech/pulsekit/transpiler"
)

// starSettings calibrates a five-qubit star chip with the given center: every
// qubit driven and read out, every center coupler carrying a corrected CZ.
func starSettings(t *testing.T, center int) *calibration.Settings {
	t.Helper()

	var (
		buses []schedule.Bus
		gates []calibration.GateRecord
		q     int
	)
	for q = 0; q < 5; q++ {
		alias := fmt.Sprintf("drive_q%d", q)
		buses = append(buses, schedule.Bus{
			Alias: alias, Port: alias, Line: schedule.LineDrive, Targets: []int{q},
		})
		gates = append(gates,
			calibration.GateRecord{
				Name:   "Drag",
				Qubits: []int{q},
				Events: []schedule.GateEvent{{
					Bus:   alias,
					Pulse: schedule.PulseTemplate{Amplitude: 0.8, Duration: 20, Shape: "drag"},
				}},
			},
			calibration.GateRecord{
				Name:   "M",
				Qubits: []int{q},
				Events: []schedule.GateEvent{{
					Bus:   "readout",
					Pulse: schedule.PulseTemplate{Amplitude: 0.3, Duration: 100, Shape: "square"},
				}},
			},
		)
	}
	buses = append(buses, schedule.Bus{
		Alias: "readout", Port: "feedline", Line: schedule.LineReadout,
		Targets: []int{0, 1, 2, 3, 4},
	})
	for q = 0; q < 5; q++ {
		if q == center {
			continue
		}
		alias := fmt.Sprintf("flux_c%d_%d", center, q)
		buses = append(buses, schedule.Bus{
			Alias: alias, Port: alias, Line: schedule.LineFlux,
			Targets: []int{center, q}, HasWaveforms: true,
		})
		gates = append(gates, calibration.GateRecord{
			Name:            "CZ",
			Qubits:          []int{center, q},
			PhaseCorrection: &calibration.PhaseCorrection{Control: 0.11, Target: 0.22},
			Events: []schedule.GateEvent{{
				Bus:   alias,
				Pulse: schedule.PulseTemplate{Amplitude: 1, Duration: 30, Shape: "snz"},
			}},
		})
	}

	s, err := calibration.New(4, 120, buses, gates)
	require.NoError(t, err)

	return s
}

// noCorrections stubs out the CZ phase-correction source.
type noCorrections struct{}

func (noCorrections) CZPhaseCorrection(int, int) (float64, float64, bool) {
	return 0, 0, false
}

// flakyRouter fails its first fail Route calls, then delegates.
type flakyRouter struct {
	calls *int
	fail  int
	inner route.Router
}

func (f flakyRouter) Reseed(int64) route.Router { return f }

func (f flakyRouter) Route(c *gate.Circuit, initial []int) (route.Result, error) {
	*f.calls++
	if *f.calls <= f.fail {
		return route.Result{}, errors.New("transient routing failure")
	}

	return f.inner.Route(c, initial)
}

// -----------------------------------------------------------------------------
// Construction
// -----------------------------------------------------------------------------

func TestNew_Validation(t *testing.T) {
	_, err := transpiler.New(nil)
	require.ErrorIs(t, err, transpiler.ErrNoPlatform)

	_, err = transpiler.New(starSettings(t, 2), transpiler.WithRoutingIterations(0))
	require.ErrorIs(t, err, transpiler.ErrBadIterations)
}

// -----------------------------------------------------------------------------
// Pipeline without routing
// -----------------------------------------------------------------------------

func TestTranspile_BellCircuit(t *testing.T) {
	tp, err := transpiler.New(starSettings(t, 2))
	require.NoError(t, err)

	c := gate.NewCircuit(3).Add(
		gate.H(2),
		gate.CNOT(2, 0), // center pair; schedulable without routing
		gate.Measure(0, 2),
	)

	out, err := tp.Transpile([]*gate.Circuit{c})
	require.NoError(t, err)
	require.Len(t, out, 1)

	require.NotNil(t, out[0].Timeline("drive_q0"))
	require.NotNil(t, out[0].Timeline("drive_q2"))
	require.NotNil(t, out[0].Timeline("flux_c2_0"))

	ro := out[0].Timeline("feedline")
	require.NotNil(t, ro)
	require.Len(t, ro.Events, 2)
}

func TestTranspile_PhaseCorrectionsReachThePulses(t *testing.T) {
	c := gate.NewCircuit(3).Add(
		gate.CZ(2, 0),
		gate.X(0), // the Drag after the CZ absorbs the target correction
	)

	corrected, err := transpiler.New(starSettings(t, 2))
	require.NoError(t, err)
	plain, err := transpiler.New(starSettings(t, 2),
		transpiler.WithPhaseCorrector(noCorrections{}))
	require.NoError(t, err)

	a, err := corrected.Transpile([]*gate.Circuit{c})
	require.NoError(t, err)
	b, err := plain.Transpile([]*gate.Circuit{c})
	require.NoError(t, err)

	pa := a[0].Timeline("drive_q0").Events[0].Pulse.Phase
	pb := b[0].Timeline("drive_q0").Events[0].Pulse.Phase
	require.InDelta(t, -0.22, pa-pb, 1e-12)
}

func TestTranspile_InvalidCircuit(t *testing.T) {
	tp, err := transpiler.New(starSettings(t, 2))
	require.NoError(t, err)

	c := gate.NewCircuit(1).Add(gate.X(4))
	_, err = tp.Transpile([]*gate.Circuit{c})
	require.ErrorIs(t, err, gate.ErrQubitRange)
}

// -----------------------------------------------------------------------------
// Pipeline with routing
// -----------------------------------------------------------------------------

func TestTranspile_RoutedOnStar(t *testing.T) {
	const center = 2
	topo, err := topology.Star(center)
	require.NoError(t, err)
	router, err := route.NewStarRouter(topo)
	require.NoError(t, err)
	placer, err := route.NewStarPlacer(topo)
	require.NoError(t, err)

	tp, err := transpiler.New(starSettings(t, center),
		transpiler.WithRouter(router),
		transpiler.WithPlacer(placer),
	)
	require.NoError(t, err)

	// Off-center interactions: routing must rewrite them onto the couplers.
	c := gate.NewCircuit(4).Add(
		gate.H(0),
		gate.CZ(0, 1),
		gate.CZ(0, 3),
		gate.Measure(0, 1, 3),
	)

	out, err := tp.Transpile([]*gate.Circuit{c})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Timeline("feedline").Events, 3)
}

func TestTranspile_SabreSeedDeterminism(t *testing.T) {
	const center = 2
	topo, err := topology.Star(center)
	require.NoError(t, err)
	sabre, err := route.NewSabre(topo, route.DefaultOptions())
	require.NoError(t, err)

	build := func() []*schedule.PulseSchedule {
		tp, err := transpiler.New(starSettings(t, center),
			transpiler.WithRouter(sabre),
			transpiler.WithSeed(11),
		)
		require.NoError(t, err)
		c := gate.NewCircuit(4).Add(
			gate.CZ(0, 1),
			gate.CZ(1, 3),
			gate.CZ(0, 3),
			gate.Measure(0, 1, 3),
		)
		out, err := tp.Transpile([]*gate.Circuit{c})
		require.NoError(t, err)

		return out
	}

	a := build()
	b := build()
	require.Equal(t, a[0].Timelines(), b[0].Timelines())
}

func TestRouteCircuit_ToleratesFlakyAttempts(t *testing.T) {
	const center = 2
	topo, err := topology.Star(center)
	require.NoError(t, err)
	inner, err := route.NewStarRouter(topo)
	require.NoError(t, err)

	calls := 0
	tp, err := transpiler.New(starSettings(t, center),
		transpiler.WithRouter(flakyRouter{calls: &calls, fail: 3, inner: inner}),
		transpiler.WithRoutingIterations(5),
	)
	require.NoError(t, err)

	c := gate.NewCircuit(3).Add(gate.CZ(0, 1))
	res, err := tp.RouteCircuit(c)
	require.NoError(t, err)
	require.Equal(t, 5, calls, "every attempt runs; the best survivor wins")
	require.NotEmpty(t, res.Gates)
}

func TestRouteCircuit_AllAttemptsFailed(t *testing.T) {
	const center = 2
	topo, err := topology.Star(center)
	require.NoError(t, err)
	inner, err := route.NewStarRouter(topo)
	require.NoError(t, err)

	calls := 0
	tp, err := transpiler.New(starSettings(t, center),
		transpiler.WithRouter(flakyRouter{calls: &calls, fail: 100, inner: inner}),
		transpiler.WithRoutingIterations(4),
	)
	require.NoError(t, err)

	c := gate.NewCircuit(3).Add(gate.CZ(0, 1))
	_, err = tp.RouteCircuit(c)
	require.ErrorIs(t, err, transpiler.ErrRouting)
}

func TestTranspile_PlacerFallsBackWithoutInteractions(t *testing.T) {
	const center = 2
	topo, err := topology.Star(center)
	require.NoError(t, err)
	router, err := route.NewStarRouter(topo)
	require.NoError(t, err)
	placer, err := route.NewReverseTraversalPlacer(router, 0)
	require.NoError(t, err)

	tp, err := transpiler.New(starSettings(t, center),
		transpiler.WithRouter(router),
		transpiler.WithPlacer(placer),
	)
	require.NoError(t, err)

	// No two-qubit gate: the placer has nothing to probe with and the
	// identity layout applies.
	c := gate.NewCircuit(1).Add(gate.X(0), gate.Measure(0))
	out, err := tp.Transpile([]*gate.Circuit{c})
	require.NoError(t, err)
	require.NotNil(t, out[0].Timeline("drive_q0"))
}

// -----------------------------------------------------------------------------
// Optimization toggle
// -----------------------------------------------------------------------------

func TestTranspile_SkipOptimizationSchedulesIdentically(t *testing.T) {
	// The builder folds virtual phases on the fly, so disabling the
	// optimizer must not change the pulses of a correction-free circuit.
	c := gate.NewCircuit(3).Add(
		gate.H(0),
		gate.RZ(0, 1.2),
		gate.X(0),
		gate.Measure(0),
	)

	opt, err := transpiler.New(starSettings(t, 2),
		transpiler.WithPhaseCorrector(noCorrections{}))
	require.NoError(t, err)
	raw, err := transpiler.New(starSettings(t, 2),
		transpiler.WithPhaseCorrector(noCorrections{}),
		transpiler.WithoutOptimization())
	require.NoError(t, err)

	a, err := opt.Transpile([]*gate.Circuit{c})
	require.NoError(t, err)
	b, err := raw.Transpile([]*gate.Circuit{c})
	require.NoError(t, err)

	require.Equal(t, a[0].Timelines(), b[0].Timelines())
}
