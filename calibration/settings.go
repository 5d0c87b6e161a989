// Package calibration - the settings model and lookup methods.
package calibration

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/qilimanjaro-tech/pulsekit/schedule"
)

var (
	// ErrNoSchedule indicates no calibrated record for a (gate, qubits) key.
	ErrNoSchedule = errors.New("calibration: no schedule for gate")

	// ErrNoBus indicates an unknown bus alias.
	ErrNoBus = errors.New("calibration: unknown bus alias")

	// ErrBadSettings indicates structurally invalid settings.
	ErrBadSettings = errors.New("calibration: invalid settings")
)

// PhaseCorrection carries the calibrated CZ phase-correction constants,
// resolved by qubit role rather than by stringly-keyed options.
type PhaseCorrection struct {
	Control float64
	Target  float64
}

// GateRecord is one calibrated gate schedule: the gate name, the exact qubit
// tuple it applies to, its events, and (for CZ) an optional phase correction.
type GateRecord struct {
	Name            string
	Qubits          []int
	Events          []schedule.GateEvent
	PhaseCorrection *PhaseCorrection
}

// Settings is the full calibration table. Construct via New or Load; do not
// mutate after construction.
type Settings struct {
	MinClockTime int
	ReadoutDelay int

	buses    map[string]schedule.Bus
	busOrder []string
	gates    map[string]*GateRecord
}

// New assembles settings from explicit parts. Bus aliases must be unique;
// gate records must carry a name and at least one qubit.
func New(minClockTime, readoutDelay int, buses []schedule.Bus, gates []GateRecord) (*Settings, error) {
	if minClockTime <= 0 {
		return nil, fmt.Errorf("%w: minimum clock time %d", ErrBadSettings, minClockTime)
	}

	s := &Settings{
		MinClockTime: minClockTime,
		ReadoutDelay: readoutDelay,
		buses:        make(map[string]schedule.Bus, len(buses)),
		gates:        make(map[string]*GateRecord, len(gates)),
	}
	var i int
	for i = 0; i < len(buses); i++ {
		if buses[i].Alias == "" {
			return nil, fmt.Errorf("%w: bus with empty alias", ErrBadSettings)
		}
		if _, dup := s.buses[buses[i].Alias]; dup {
			return nil, fmt.Errorf("%w: duplicate bus %q", ErrBadSettings, buses[i].Alias)
		}
		s.buses[buses[i].Alias] = buses[i]
		s.busOrder = append(s.busOrder, buses[i].Alias)
	}
	for i = 0; i < len(gates); i++ {
		g := gates[i]
		if g.Name == "" || len(g.Qubits) == 0 {
			return nil, fmt.Errorf("%w: gate record %d missing name or qubits", ErrBadSettings, i)
		}
		s.gates[gateKey(g.Name, g.Qubits)] = &gates[i]
	}

	return s, nil
}

// gateKey builds the canonical lookup key "Name q0,q1,…".
func gateKey(name string, qubits []int) string {
	k := name

	var i int
	for i = 0; i < len(qubits); i++ {
		if i == 0 {
			k += " "
		} else {
			k += ","
		}
		k += strconv.Itoa(qubits[i])
	}

	return k
}

// GateSchedule resolves the calibrated events of a (name, qubits) pair.
// Symmetric two-qubit records match in either qubit order.
func (s *Settings) GateSchedule(name string, qubits []int) ([]schedule.GateEvent, error) {
	if r, ok := s.gates[gateKey(name, qubits)]; ok {
		return r.Events, nil
	}
	if len(qubits) == 2 {
		if r, ok := s.gates[gateKey(name, []int{qubits[1], qubits[0]})]; ok {
			return r.Events, nil
		}
	}

	return nil, fmt.Errorf("%w: %s %v", ErrNoSchedule, name, qubits)
}

// Bus resolves a bus alias.
func (s *Settings) Bus(alias string) (schedule.Bus, error) {
	b, ok := s.buses[alias]
	if !ok {
		return schedule.Bus{}, fmt.Errorf("%w: %q", ErrNoBus, alias)
	}

	return b, nil
}

// Buses returns every bus in declaration order.
func (s *Settings) Buses() []schedule.Bus {
	out := make([]schedule.Bus, len(s.busOrder))

	var i int
	for i = 0; i < len(s.busOrder); i++ {
		out[i] = s.buses[s.busOrder[i]]
	}

	return out
}

// MinimumClockTime returns the clock-quantization step.
func (s *Settings) MinimumClockTime() int { return s.MinClockTime }

// DelayBeforeReadout returns the global scheduling delay.
func (s *Settings) DelayBeforeReadout() int { return s.ReadoutDelay }

// CZPhaseCorrection resolves the correction constants of a CZ on
// (control, target). A record stored under the reversed tuple applies with
// its roles swapped. ok is false when the pair carries no correction.
func (s *Settings) CZPhaseCorrection(control, target int) (float64, float64, bool) {
	if r, ok := s.gates[gateKey("CZ", []int{control, target})]; ok && r.PhaseCorrection != nil {
		return r.PhaseCorrection.Control, r.PhaseCorrection.Target, true
	}
	if r, ok := s.gates[gateKey("CZ", []int{target, control})]; ok && r.PhaseCorrection != nil {
		return r.PhaseCorrection.Target, r.PhaseCorrection.Control, true
	}

	return 0, 0, false
}
