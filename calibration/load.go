// Package calibration - YAML loading.
package calibration

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/qilimanjaro-tech/pulsekit/schedule"
)

// The on-disk schema. Kept separate from the runtime types so the runtime
// model can evolve without breaking calibration files.

type fileSettings struct {
	MinimumClockTime   int        `yaml:"minimum_clock_time"`
	DelayBeforeReadout int        `yaml:"delay_before_readout"`
	Buses              []fileBus  `yaml:"buses"`
	Gates              []fileGate `yaml:"gates"`
}

type fileBus struct {
	Alias        string   `yaml:"alias"`
	Port         string   `yaml:"port"`
	Line         string   `yaml:"line"`
	Targets      []int    `yaml:"targets"`
	HasWaveforms bool     `yaml:"has_waveforms"`
	Distortions  []string `yaml:"distortions"`
}

type fileGate struct {
	Name            string               `yaml:"name"`
	Qubits          []int                `yaml:"qubits"`
	Events          []fileEvent          `yaml:"events"`
	PhaseCorrection *filePhaseCorrection `yaml:"phase_correction"`
}

type fileEvent struct {
	Bus      string    `yaml:"bus"`
	WaitTime int       `yaml:"wait_time"`
	Pulse    filePulse `yaml:"pulse"`
}

type filePulse struct {
	Amplitude   float64            `yaml:"amplitude"`
	Phase       float64            `yaml:"phase"`
	Duration    int                `yaml:"duration"`
	Shape       string             `yaml:"shape"`
	ShapeParams map[string]float64 `yaml:"shape_params"`
}

type filePhaseCorrection struct {
	Control float64 `yaml:"control"`
	Target  float64 `yaml:"target"`
}

// Load reads calibration settings from a YAML file.
func Load(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("calibration: read %s: %w", path, err)
	}

	return Parse(raw)
}

// Parse decodes calibration settings from YAML bytes.
func Parse(raw []byte) (*Settings, error) {
	var f fileSettings
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSettings, err)
	}

	buses := make([]schedule.Bus, len(f.Buses))
	var i int
	for i = 0; i < len(f.Buses); i++ {
		line, err := parseLine(f.Buses[i].Line)
		if err != nil {
			return nil, err
		}
		buses[i] = schedule.Bus{
			Alias:        f.Buses[i].Alias,
			Port:         f.Buses[i].Port,
			Line:         line,
			Targets:      f.Buses[i].Targets,
			HasWaveforms: f.Buses[i].HasWaveforms,
			Distortions:  f.Buses[i].Distortions,
		}
	}

	gates := make([]GateRecord, len(f.Gates))
	for i = 0; i < len(f.Gates); i++ {
		gates[i] = GateRecord{
			Name:   f.Gates[i].Name,
			Qubits: f.Gates[i].Qubits,
			Events: toEvents(f.Gates[i].Events),
		}
		if pc := f.Gates[i].PhaseCorrection; pc != nil {
			gates[i].PhaseCorrection = &PhaseCorrection{Control: pc.Control, Target: pc.Target}
		}
	}

	return New(f.MinimumClockTime, f.DelayBeforeReadout, buses, gates)
}

// parseLine maps the YAML line names onto LineKind.
func parseLine(s string) (schedule.LineKind, error) {
	switch s {
	case "drive":
		return schedule.LineDrive, nil
	case "flux":
		return schedule.LineFlux, nil
	case "readout":
		return schedule.LineReadout, nil
	}

	return 0, fmt.Errorf("%w: line kind %q", ErrBadSettings, s)
}

func toEvents(in []fileEvent) []schedule.GateEvent {
	out := make([]schedule.GateEvent, len(in))

	var i int
	for i = 0; i < len(in); i++ {
		out[i] = schedule.GateEvent{
			Bus:      in[i].Bus,
			WaitTime: in[i].WaitTime,
			Pulse: schedule.PulseTemplate{
				Amplitude:   in[i].Pulse.Amplitude,
				Phase:       in[i].Pulse.Phase,
				Duration:    in[i].Pulse.Duration,
				Shape:       in[i].Pulse.Shape,
				ShapeParams: in[i].Pulse.ShapeParams,
			},
		}
	}

	return out
}
