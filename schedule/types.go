// Package schedule - calibration-facing types, the pulse model and errors.
package schedule

import "errors"

var (
	// ErrIncompatibleSchedule indicates a Drag gate whose calibration
	// resolved to other than exactly one GateEvent.
	ErrIncompatibleSchedule = errors.New("schedule: Drag gate must resolve to exactly one gate event")

	// ErrUnknownSchedule indicates a gate with no calibrated schedule.
	ErrUnknownSchedule = errors.New("schedule: no calibrated schedule for gate")

	// ErrUnknownBus indicates a gate event referencing an unknown bus alias.
	ErrUnknownBus = errors.New("schedule: unknown bus alias")

	// ErrBadClock indicates a non-positive minimum clock time.
	ErrBadClock = errors.New("schedule: minimum clock time must be positive")
)

// LineKind classifies a bus by the chip line it drives.
type LineKind int

const (
	// LineDrive is a qubit microwave drive line.
	LineDrive LineKind = iota
	// LineFlux is a qubit or coupler flux bias line.
	LineFlux
	// LineReadout is a resonator feed/acquisition line.
	LineReadout
)

// Bus describes one hardware bus: the port it is wired to, the qubits or
// couplers it targets, and whether the driving instrument generates
// arbitrary waveforms (as opposed to a plain DC source).
type Bus struct {
	Alias        string
	Port         string
	Line         LineKind
	Targets      []int
	HasWaveforms bool
	Distortions  []string
}

// PulseTemplate is the calibrated pulse of one gate event: amplitude, phase,
// duration and an opaque shape reference resolved by the external waveform
// capability.
type PulseTemplate struct {
	Amplitude   float64
	Phase       float64
	Duration    int
	Shape       string
	ShapeParams map[string]float64
}

// GateEvent is one calibrated element of a gate's schedule: the bus it
// plays on, a wait offset relative to the gate start, and the pulse.
type GateEvent struct {
	Bus      string
	WaitTime int
	Pulse    PulseTemplate
}

// Platform is the read-only calibration lookup consumed by the Builder.
//
// GateSchedule resolves a (gate name, qubit tuple) pair to its calibrated
// events; measurement schedules are resolved per qubit under the name "M".
// Buses returns every bus in a fixed canonical order.
type Platform interface {
	GateSchedule(name string, qubits []int) ([]GateEvent, error)
	Bus(alias string) (Bus, error)
	Buses() []Bus
	MinimumClockTime() int
	DelayBeforeReadout() int
}

// Pulse is a concrete scheduled pulse (template after gate-specific
// rescaling).
type Pulse struct {
	Amplitude   float64
	Phase       float64
	Duration    int
	Shape       string
	ShapeParams map[string]float64
}

// PulseEvent is one pulse at an absolute start time on some port, tagged
// with the qubit (or coupler) it addresses.
type PulseEvent struct {
	StartTime int
	Pulse     Pulse
	Qubit     int
}

// Timeline is the ordered pulse sequence of one port.
type Timeline struct {
	Port   string
	Bus    Bus
	Events []PulseEvent
}

// PulseSchedule holds one timeline per hardware port, in first-use order.
// Built incrementally by the Builder; consumed by the execution collaborator.
type PulseSchedule struct {
	order     []string
	timelines map[string]*Timeline
}

// newPulseSchedule returns an empty schedule.
func newPulseSchedule() *PulseSchedule {
	return &PulseSchedule{timelines: make(map[string]*Timeline)}
}

// ensure returns the timeline for bus's port, creating it on first use.
func (ps *PulseSchedule) ensure(bus Bus) *Timeline {
	tl, ok := ps.timelines[bus.Port]
	if !ok {
		tl = &Timeline{Port: bus.Port, Bus: bus}
		ps.timelines[bus.Port] = tl
		ps.order = append(ps.order, bus.Port)
	}

	return tl
}

// Timeline returns the timeline scheduled on port, or nil.
func (ps *PulseSchedule) Timeline(port string) *Timeline {
	return ps.timelines[port]
}

// Timelines returns every timeline in first-use order.
func (ps *PulseSchedule) Timelines() []*Timeline {
	out := make([]*Timeline, len(ps.order))

	var i int
	for i = 0; i < len(ps.order); i++ {
		out[i] = ps.timelines[ps.order[i]]
	}

	return out
}
