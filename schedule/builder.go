// Package schedule - the schedule builder.
package schedule

import (
	"fmt"
	"math"

	"github.com/qilimanjaro-tech/pulsekit/gate"
)

// Builder turns native gate sequences into pulse schedules against one
// platform's calibration. A Builder is immutable and safe to share; each
// Build call owns its clock and phase trackers.
type Builder struct {
	platform Platform
}

// NewBuilder binds a builder to a platform. Errors: ErrBadClock when the
// platform advertises a non-positive minimum clock time.
func NewBuilder(p Platform) (*Builder, error) {
	if p.MinimumClockTime() <= 0 {
		return nil, ErrBadClock
	}

	return &Builder{platform: p}, nil
}

// Build produces the pulse schedule of a native gate sequence.
//
// Per gate, in program order:
//
//   - Wait(q, d): advance q's clock by d verbatim; no pulse.
//   - VirtualZ(q, θ): fold θ into q's pending phase shift; no pulse, no
//     clock movement.
//   - Measure(q1..qk): align the measured qubits' clocks to their common
//     maximum, then concatenate each qubit's individual "M" schedule.
//   - Anything else: resolve the calibrated event list by (name, qubits);
//     Drag events are rescaled (see dragPulse).
//
// The resolved events then advance the clocks of every touched qubit (the
// gate's own qubits plus each event bus's targets) by the gate duration
// rounded up to the next multiple of the minimum clock time; each qubit's
// pre-advance clock is its start time for this gate, and afterwards all
// touched clocks synchronize to the common maximum. Each event lands on its
// bus's port at start + wait offset; measurement events additionally wait
// out the platform's readout delay.
//
// Finally, any flux port that was never scheduled but is driven by a
// waveform-generating instrument gets an explicit empty timeline, keeping
// the hardware out of its default-offset state.
func (b *Builder) Build(gates []gate.Gate) (*PulseSchedule, error) {
	var (
		ps    = newPulseSchedule()
		clock = map[int]int{}     // per-qubit time tracker, lazily 0
		shift = map[int]float64{} // pending virtual-Z phase per qubit
		mct   = b.platform.MinimumClockTime()
		delay = b.platform.DelayBeforeReadout()
	)

	var (
		i   int
		g   gate.Gate
		err error
	)
	for i = 0; i < len(gates); i++ {
		g = gates[i]
		switch g.Kind() {
		case gate.KindWait:
			clock[g.Qubits()[0]] += int(g.Params()[0])
			continue
		case gate.KindVirtualZ:
			shift[g.Qubits()[0]] += g.Params()[0]
			continue
		}

		events, eventQubits, err2 := b.resolveEvents(g, shift)
		if err2 != nil {
			return nil, err2
		}

		// Touched qubits: the gate's own plus every event bus's targets.
		touched := map[int]bool{}
		for _, q := range g.Qubits() {
			touched[q] = true
		}
		var bus Bus
		for _, ev := range events {
			bus, err = b.platform.Bus(ev.Bus)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrUnknownBus, ev.Bus)
			}
			for _, q := range bus.Targets {
				touched[q] = true
			}
		}

		// Measured qubits share the readout feedline: align their clocks
		// before starts are taken, so the feedline timeline keeps its
		// non-decreasing start order regardless of the qubit tuple order.
		if g.Kind() == gate.KindMeasure {
			sync := 0
			for q := range touched {
				if clock[q] > sync {
					sync = clock[q]
				}
			}
			for q := range touched {
				clock[q] = sync
			}
		}

		// Gate duration: the longest event envelope, clock-quantized.
		duration := 0
		for _, ev := range events {
			if d := ev.Pulse.Duration + ev.WaitTime; d > duration {
				duration = d
			}
		}
		padded := roundUpTo(duration, mct)

		// Advance every touched clock, remembering pre-advance starts,
		// then synchronize to the common maximum. Fixed qubit order.
		starts := map[int]int{}
		maxClock := 0
		for _, q := range sortedKeys(touched) {
			starts[q] = clock[q]
			clock[q] += padded
			if clock[q] > maxClock {
				maxClock = clock[q]
			}
		}
		for q := range touched {
			clock[q] = maxClock
		}

		// Readout pulses wait out the calibrated settling delay; every other
		// line plays at its nominal offset.
		extra := 0
		if g.Kind() == gate.KindMeasure {
			extra = delay
		}

		// Emit one pulse event per gate event.
		var j int
		for j = 0; j < len(events); j++ {
			bus, err = b.platform.Bus(events[j].Bus)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrUnknownBus, events[j].Bus)
			}
			tl := ps.ensure(bus)
			tl.Events = append(tl.Events, PulseEvent{
				StartTime: starts[eventQubits[j]] + events[j].WaitTime + extra,
				Qubit:     eventQubits[j],
				Pulse: Pulse{
					Amplitude:   events[j].Pulse.Amplitude,
					Phase:       events[j].Pulse.Phase,
					Duration:    events[j].Pulse.Duration,
					Shape:       events[j].Pulse.Shape,
					ShapeParams: events[j].Pulse.ShapeParams,
				},
			})
		}
	}

	b.blankIdleFluxPorts(ps)

	return ps, nil
}

// resolveEvents looks up the calibrated events of one scheduled gate and the
// qubit each event addresses.
func (b *Builder) resolveEvents(g gate.Gate, shift map[int]float64) ([]GateEvent, []int, error) {
	if g.Kind() == gate.KindMeasure {
		// Per-qubit measurement schedules, concatenated in tuple order.
		var (
			events []GateEvent
			qubits []int
		)
		for _, q := range g.Qubits() {
			evs, err := b.platform.GateSchedule(gate.KindMeasure.String(), []int{q})
			if err != nil {
				return nil, nil, fmt.Errorf("%w: M on qubit %d", ErrUnknownSchedule, q)
			}
			for _, ev := range evs {
				events = append(events, ev)
				qubits = append(qubits, q)
			}
		}

		return events, qubits, nil
	}

	events, err := b.platform.GateSchedule(g.Kind().String(), g.Qubits())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s %v", ErrUnknownSchedule, g.Kind(), g.Qubits())
	}

	if g.Kind() == gate.KindDrag {
		if len(events) != 1 {
			return nil, nil, ErrIncompatibleSchedule
		}
		q := g.Qubits()[0]
		ev := events[0]
		ev.Pulse = dragPulse(ev.Pulse, g.Params()[0], g.Params()[1]-shift[q])
		events = []GateEvent{ev}
	}

	qubits := make([]int, len(events))
	var j int
	for j = 0; j < len(events); j++ {
		qubits[j] = b.eventQubit(events[j], g)
	}

	return events, qubits, nil
}

// dragPulse rescales a calibrated Drag template by the gate's rotation
// angle and phase: the calibrated amplitude corresponds to a π rotation, so
// amplitude scales by normalize(θ)/π; a negative result flips sign and adds
// π to the phase; the final phase normalizes into (−π, π].
func dragPulse(tmpl PulseTemplate, theta, phase float64) PulseTemplate {
	amplitude := tmpl.Amplitude * gate.NormalizePhase(theta) / math.Pi
	if amplitude < 0 {
		amplitude = -amplitude
		phase += math.Pi
	}
	tmpl.Amplitude = amplitude
	tmpl.Phase = gate.NormalizePhase(phase)

	return tmpl
}

// eventQubit attributes an event to a qubit: the first gate qubit targeted
// by the event's bus, else the bus's first target (coupler lines), else the
// gate's first qubit.
func (b *Builder) eventQubit(ev GateEvent, g gate.Gate) int {
	bus, err := b.platform.Bus(ev.Bus)
	if err == nil {
		for _, q := range g.Qubits() {
			for _, t := range bus.Targets {
				if q == t {
					return q
				}
			}
		}
		if len(bus.Targets) > 0 {
			return bus.Targets[0]
		}
	}

	return g.Qubits()[0]
}

// blankIdleFluxPorts inserts an empty timeline for every waveform-driven
// flux bus whose port was never scheduled.
func (b *Builder) blankIdleFluxPorts(ps *PulseSchedule) {
	for _, bus := range b.platform.Buses() {
		if bus.Line != LineFlux || !bus.HasWaveforms {
			continue
		}
		if ps.Timeline(bus.Port) == nil {
			ps.ensure(bus)
		}
	}
}

// roundUpTo rounds d up to the next multiple of step; exact multiples are
// returned unchanged.
func roundUpTo(d, step int) int {
	if r := d % step; r != 0 {
		return d + step - r
	}

	return d
}

// sortedKeys returns map keys in ascending order, for deterministic clock
// updates.
func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for q := range m {
		out = append(out, q)
	}
	// Insertion sort; touched sets are tiny.
	var i, j, t int
	for i = 1; i < len(out); i++ {
		t = out[i]
		for j = i - 1; j >= 0 && out[j] > t; j-- {
			out[j+1] = out[j]
		}
		out[j+1] = t
	}

	return out
}
