// Package engine implements the Engine Facade: the single entry point that
// accepts an ignition, drives the Spread Kernel to termination, and returns
// the result rasters (spec §4.6).
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"firecast/internal/diagnostics"
	"firecast/internal/fuelmodel"
	"firecast/internal/spotting"
	"firecast/internal/spread"
	"firecast/internal/weatherfeed"
	"firecast/pkg/grid"
	"firecast/pkg/xrand"
)

// maxRandomIgnitionAttempts bounds the reject-sampling loop for Random
// ignition; a landscape this sparse in burnable, neighbor-having cells is
// treated as an ignition rejection rather than looping forever.
const maxRandomIgnitionAttempts = 10000

// Result is the engine's output record (spec §6), plus log/metric-only
// supplemental fields that never feed back into the physics.
type Result struct {
	GlobalClock       float64
	IgnitedCells      []weatherfeed.Cell
	FireSpread        *grid.Float64
	FlameLength       *grid.Float64
	FireLineIntensity *grid.Float64
	BurnTime          *grid.Float64
	FirebrandCount    *grid.Float64

	RunID       string
	StartedAt   time.Time
	Duration    time.Duration
	Diagnostics *diagnostics.Counts
}

type runOptions struct {
	logger *slog.Logger
	clock  clockwork.Clock
	diag   *diagnostics.Recorder
}

// EngineOption configures ambient concerns of a Run call; none of them
// affect simulated physics or determinism.
type EngineOption func(*runOptions)

// WithLogger injects a structured logger; nil (the default) falls back to
// slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *runOptions) { o.logger = logger }
}

// WithClock injects a wall clock, used only to stamp Result.StartedAt and
// Result.Duration; it never drives the simulated clock.
func WithClock(clock clockwork.Clock) EngineOption {
	return func(o *runOptions) { o.clock = clock }
}

// WithDiagnostics injects a metrics recorder; nil disables the diagnostic
// side channel entirely (every Recorder method tolerates a nil receiver).
func WithDiagnostics(diag *diagnostics.Recorder) EngineOption {
	return func(o *runOptions) { o.diag = diag }
}

// Run drives one simulation to termination. ctx is checked once per outer
// step of the spread kernel; cancellation returns ctx.Err() promptly (spec
// §5, "Hosting processes may cancel by discarding the engine state").
func Run(ctx context.Context, inputs SimulationInputs, ignition Ignition, opts ...EngineOption) (Result, error) {
	cfg := runOptions{logger: slog.Default(), clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	if err := inputs.validate(); err != nil {
		return Result{}, err
	}

	started := cfg.clock.Now()
	runID := uuid.NewString()
	logger := cfg.logger.With("run_id", runID)

	rng := xrand.New(inputs.RandomSeed)
	sampler := weatherfeed.NewSampler(rng)
	fuelCache := fuelmodel.NewCache(0)

	var spotModel *spotting.Model
	if inputs.Spotting != nil {
		spotModel = spotting.NewModel(*inputs.Spotting, rng)
	}

	kernel := spread.NewKernel(inputs.Landscape, inputs.Weather, sampler, fuelCache, spotModel, cfg.diag,
		inputs.EllipseAdjustmentFactor, inputs.FoliarMoisture, inputs.MaxRuntime)

	if !seedIgnition(kernel, inputs.Landscape, ignition, rng, logger) {
		logger.Warn("ignition rejected, returning empty result")
		return emptyResult(inputs.Landscape, runID, started, cfg.clock.Now().Sub(started), cfg.diag), nil
	}

	if err := kernel.Run(ctx); err != nil {
		return Result{}, err
	}

	finished := cfg.clock.Now()
	logger.Info("simulation complete",
		"global_clock", kernel.State.GlobalClock,
		"duration", finished.Sub(started))

	return buildResult(kernel, runID, started, finished.Sub(started), cfg.diag), nil
}

// seedIgnition dispatches on ignition.Kind (spec §9 "Polymorphic front")
// and reports whether ignition succeeded.
func seedIgnition(k *spread.Kernel, ls *weatherfeed.Landscape, ignition Ignition, rng *xrand.Source, logger *slog.Logger) bool {
	switch ignition.Kind {
	case IgnitionRandom:
		for attempt := 0; attempt < maxRandomIgnitionAttempts; attempt++ {
			cell := weatherfeed.Cell{I: rng.UniformInt(0, ls.NumRows-1), J: rng.UniformInt(0, ls.NumCols-1)}
			if ls.Burnable(cell) && k.HasBurnableNeighbor(cell) {
				k.Ignite(cell, 1.0, 1.0, 1.0, 0.0)
				return true
			}
		}
		logger.Warn("random ignition exhausted reject-sampling attempts", "attempts", maxRandomIgnitionAttempts)
		return false

	case IgnitionPoint:
		cell := ignition.Point
		if !ls.InBounds(cell) || !ls.Burnable(cell) || !k.HasBurnableNeighbor(cell) {
			logger.Warn("point ignition rejected", "cell", fmt.Sprintf("(%d,%d)", cell.I, cell.J))
			return false
		}
		k.Ignite(cell, 1.0, 1.0, 1.0, 0.0)
		return true

	case IgnitionPerimeter:
		any := false
		perim := ignition.Perimeter
		for i := 0; i < ls.NumRows; i++ {
			for j := 0; j < ls.NumCols; j++ {
				v := perim.At(i, j)
				if v == 0 {
					continue
				}
				any = true
				k.State.FireSpread.Set(i, j, v)
			}
		}
		// Every perimeter cell is marked burning before any trajectories are
		// computed, so no perimeter cell gets a trajectory toward another.
		for i := 0; i < ls.NumRows; i++ {
			for j := 0; j < ls.NumCols; j++ {
				if v := perim.At(i, j); v != 0 {
					k.Ignite(weatherfeed.Cell{I: i, J: j}, v, -1.0, -1.0, -1.0)
				}
			}
		}
		if !any {
			logger.Warn("perimeter ignition rejected: perimeter raster has no nonzero cells")
		}
		return any

	default:
		return false
	}
}

func buildResult(k *spread.Kernel, runID string, started time.Time, duration time.Duration, diag *diagnostics.Recorder) Result {
	ls := k.Landscape
	ignited := make([]weatherfeed.Cell, 0)
	for i := 0; i < ls.NumRows; i++ {
		for j := 0; j < ls.NumCols; j++ {
			if k.State.FireSpread.At(i, j) > 0 {
				ignited = append(ignited, weatherfeed.Cell{I: i, J: j})
			}
		}
	}

	var snapshot *diagnostics.Counts
	if diag != nil {
		s := diag.Snapshot()
		snapshot = &s
	}

	return Result{
		GlobalClock:       k.State.GlobalClock,
		IgnitedCells:      ignited,
		FireSpread:        k.State.FireSpread,
		FlameLength:       k.State.FlameLength,
		FireLineIntensity: k.State.FireLineIntensity,
		BurnTime:          k.State.BurnTime,
		FirebrandCount:    k.State.FirebrandCount,
		RunID:             runID,
		StartedAt:         started,
		Duration:          duration,
		Diagnostics:       snapshot,
	}
}

func emptyResult(ls *weatherfeed.Landscape, runID string, started time.Time, duration time.Duration, diag *diagnostics.Recorder) Result {
	var snapshot *diagnostics.Counts
	if diag != nil {
		s := diag.Snapshot()
		snapshot = &s
	}
	return Result{
		IgnitedCells:      nil,
		FireSpread:        grid.NewFloat64(ls.NumRows, ls.NumCols),
		FlameLength:       grid.NewFloat64(ls.NumRows, ls.NumCols),
		FireLineIntensity: grid.NewFloat64(ls.NumRows, ls.NumCols),
		BurnTime:          fullOf(ls.NumRows, ls.NumCols, -1),
		FirebrandCount:    grid.NewFloat64(ls.NumRows, ls.NumCols),
		RunID:             runID,
		StartedAt:         started,
		Duration:          duration,
		Diagnostics:       snapshot,
	}
}

func fullOf(rows, cols int, v float64) *grid.Float64 {
	g := grid.NewFloat64(rows, cols)
	g.Fill(v)
	return g
}
