// Package transpiler - functional options.
package transpiler

import (
	"go.uber.org/zap"

	"github.com/qilimanjaro-tech/pulsekit/native"
	"github.com/qilimanjaro-tech/pulsekit/route"
)

// defaultRoutingIterations balances routing quality against transpile latency;
// attempts are cheap relative to pulse execution.
const defaultRoutingIterations = 10

// Options configures a Transpiler. Zero value = no routing, optimization on,
// silent logger.
type Options struct {
	// Router, when set, routes each circuit before translation. Routers
	// implementing route.Reseeder run RoutingIterations independent attempts
	// and the fewest-SWAPs result wins.
	Router route.Router

	// Placer, when set, proposes the initial layout fed to Router. A placer
	// failing with route.ErrNoTwoQubitGates falls back to the identity layout.
	Placer route.Placer

	// RoutingIterations is the attempt count for reseedable routers.
	RoutingIterations int

	// SkipOptimization disables virtual-Z folding; the scheduler still folds
	// phases on the fly, so schedules stay correct, just with more RZ records
	// in the intermediate sequence.
	SkipOptimization bool

	// Corrector overrides the CZ phase-correction source. Nil selects the
	// platform itself when it implements native.PhaseCorrector.
	Corrector native.PhaseCorrector

	// Seed derives the per-attempt routing seeds. 0 is a fixed default stream.
	Seed int64

	// Logger receives per-stage debug output. Nil means zap.NewNop().
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{RoutingIterations: defaultRoutingIterations}
}

// WithRouter enables routing through r.
func WithRouter(r route.Router) Option {
	return func(o *Options) { o.Router = r }
}

// WithPlacer enables initial-layout placement through p.
func WithPlacer(p route.Placer) Option {
	return func(o *Options) { o.Placer = p }
}

// WithRoutingIterations sets the attempt count for reseedable routers.
func WithRoutingIterations(n int) Option {
	return func(o *Options) { o.RoutingIterations = n }
}

// WithoutOptimization disables the virtual-Z folding stage.
func WithoutOptimization() Option {
	return func(o *Options) { o.SkipOptimization = true }
}

// WithPhaseCorrector overrides the CZ phase-correction source.
func WithPhaseCorrector(c native.PhaseCorrector) Option {
	return func(o *Options) { o.Corrector = c }
}

// WithSeed fixes the routing seed stream, making attempt sets reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger attaches a structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
