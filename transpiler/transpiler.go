// Package transpiler - the pipeline orchestrator.
package transpiler

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/qilimanjaro-tech/pulsekit/gate"
	"github.com/qilimanjaro-tech/pulsekit/native"
	"github.com/qilimanjaro-tech/pulsekit/route"
	"github.com/qilimanjaro-tech/pulsekit/schedule"
)

var (
	// ErrNoPlatform indicates a nil platform handed to New.
	ErrNoPlatform = errors.New("transpiler: platform must not be nil")

	// ErrBadIterations indicates a non-positive routing attempt count.
	ErrBadIterations = errors.New("transpiler: routing iterations must be positive")

	// ErrRouting wraps the last attempt error when every routing attempt of a
	// circuit fails.
	ErrRouting = errors.New("transpiler: routing failed")
)

// Transpiler runs circuits through the full pipeline against one platform.
type Transpiler struct {
	platform schedule.Platform
	builder  *schedule.Builder
	corr     native.PhaseCorrector
	opts     Options
	log      *zap.Logger
}

// New binds a transpiler to a platform. The platform doubles as the CZ
// phase-correction source when it implements native.PhaseCorrector and no
// explicit corrector is given.
func New(platform schedule.Platform, opts ...Option) (*Transpiler, error) {
	if platform == nil {
		return nil, ErrNoPlatform
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.RoutingIterations <= 0 {
		return nil, ErrBadIterations
	}

	builder, err := schedule.NewBuilder(platform)
	if err != nil {
		return nil, err
	}

	corr := o.Corrector
	if corr == nil {
		if pc, ok := platform.(native.PhaseCorrector); ok {
			corr = pc
		}
	}
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Transpiler{
		platform: platform,
		builder:  builder,
		corr:     corr,
		opts:     o,
		log:      log,
	}, nil
}

// Transpile runs every circuit through routing (when configured), native
// translation, phase folding and scheduling. Circuits are independent; the
// first failure aborts and reports the failing circuit's index.
func (t *Transpiler) Transpile(circuits []*gate.Circuit) ([]*schedule.PulseSchedule, error) {
	out := make([]*schedule.PulseSchedule, len(circuits))

	var (
		i   int
		err error
	)
	for i = 0; i < len(circuits); i++ {
		out[i], err = t.transpileOne(circuits[i])
		if err != nil {
			return nil, fmt.Errorf("circuit %d: %w", i, err)
		}
	}

	return out, nil
}

// transpileOne is the per-circuit pipeline.
func (t *Transpiler) transpileOne(c *gate.Circuit) (*schedule.PulseSchedule, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	gates := c.Gates
	span := c.NumQubits
	if t.opts.Router != nil {
		res, err := t.RouteCircuit(c)
		if err != nil {
			return nil, err
		}
		t.log.Debug("routed circuit",
			zap.Int("swaps", res.Swaps),
			zap.Ints("layout", res.Layout))
		gates = res.Gates
		span = qubitSpan(res.Gates, c.NumQubits)
	}

	nat, err := t.ToNative(gates, span)
	if err != nil {
		return nil, err
	}
	t.log.Debug("native sequence", zap.Int("gates", len(nat)))

	return t.builder.Build(nat)
}

// ToNative translates a gate sequence to the native set and, unless disabled,
// folds virtual-Z rotations into Drag phases.
func (t *Transpiler) ToNative(gates []gate.Gate, numQubits int) ([]gate.Gate, error) {
	nat, err := native.Translate(gates)
	if err != nil {
		return nil, err
	}
	if t.opts.SkipOptimization {
		return nat, nil
	}

	return native.Optimize(nat, numQubits, t.corr)
}

// RouteCircuit places and routes one circuit. Reseedable routers run the
// configured number of independent attempts and the fewest-SWAPs result wins;
// individual attempt failures are tolerated as long as one attempt succeeds.
func (t *Transpiler) RouteCircuit(c *gate.Circuit) (route.Result, error) {
	initial, err := t.place(c)
	if err != nil {
		return route.Result{}, err
	}

	attempts := 1
	reseeder, reseedable := t.opts.Router.(route.Reseeder)
	if reseedable {
		attempts = t.opts.RoutingIterations
	}

	var (
		best    route.Result
		found   bool
		lastErr error
		a       int
	)
	for a = 0; a < attempts; a++ {
		r := t.opts.Router
		if reseedable {
			r = reseeder.Reseed(route.DeriveSeed(t.opts.Seed, uint64(a)))
		}
		res, err := r.Route(c, initial)
		if err != nil {
			lastErr = err
			t.log.Debug("routing attempt failed", zap.Int("attempt", a), zap.Error(err))
			continue
		}
		if !found || res.Swaps < best.Swaps {
			best = res
			found = true
		}
	}
	if !found {
		return route.Result{}, fmt.Errorf("%w: %d attempts: %v", ErrRouting, attempts, lastErr)
	}

	return best, nil
}

// place consults the configured placer. A circuit without two-qubit gates
// falls back to the identity layout; any other placement failure propagates.
func (t *Transpiler) place(c *gate.Circuit) ([]int, error) {
	if t.opts.Placer == nil {
		return nil, nil
	}

	layout, err := t.opts.Placer.Place(c)
	if err != nil {
		if errors.Is(err, route.ErrNoTwoQubitGates) {
			t.log.Debug("placer skipped", zap.Error(err))
			return nil, nil
		}
		return nil, err
	}

	return layout, nil
}

// qubitSpan returns the qubit register size spanned by gates, at least min.
func qubitSpan(gates []gate.Gate, min int) int {
	span := min

	var (
		i int
		q int
	)
	for i = 0; i < len(gates); i++ {
		for _, q = range gates[i].Qubits() {
			if q+1 > span {
				span = q + 1
			}
		}
	}

	return span
}
