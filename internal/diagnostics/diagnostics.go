// Package diagnostics is the optional, nil-safe observability side channel
// named in the engine's error-handling design: counters for clamped numeric
// anomalies and stochastic events, plus histograms for step-level timing.
package diagnostics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Counts is a point-in-time snapshot of a Recorder's counters, cheap to
// copy into Result.Diagnostics without touching the Prometheus registry.
type Counts struct {
	ClampedNegativeRate     uint64
	ClampedDegenerateNormal uint64
	IgnitionEvents          uint64
	SpotIgnitions           uint64
	FirebrandsDeposited     uint64
}

// Recorder holds the Prometheus counters and histograms emitted by the
// spread kernel (the engine facade passes it through and snapshots it), plus a parallel set of atomic counters
// cheap to snapshot into a Result without querying the registry. A nil
// *Recorder is always safe to call methods on — every method guards
// against it — so components can take a *Recorder without requiring
// callers to wire one up.
type Recorder struct {
	ClampedNegativeRate     prometheus.Counter
	ClampedDegenerateNormal prometheus.Counter
	IgnitionEvents          prometheus.Counter
	SpotIgnitions           prometheus.Counter
	FirebrandsDeposited     prometheus.Counter
	StepTimestep            prometheus.Histogram
	ActiveFrontSize         prometheus.Histogram

	counts Counts
}

// NewRecorder creates and registers a Recorder's metrics with reg. Passing a
// fresh prometheus.NewRegistry() (rather than the global DefaultRegisterer)
// is recommended for tests and for running multiple independent engines in
// one process; see NewRecorderForTesting.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		ClampedNegativeRate: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firecast",
			Name:      "clamped_negative_rate_total",
			Help:      "Spread rate or intensity computations clamped to zero after going negative.",
		}),
		ClampedDegenerateNormal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firecast",
			Name:      "clamped_degenerate_distribution_total",
			Help:      "Log-normal or normal draws degenerated due to a non-positive sigma.",
		}),
		IgnitionEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firecast",
			Name:      "ignition_events_total",
			Help:      "Conducted-spread ignition events committed.",
		}),
		SpotIgnitions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firecast",
			Name:      "spot_ignitions_total",
			Help:      "Spot ignitions committed from the firebrand schedule.",
		}),
		FirebrandsDeposited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firecast",
			Name:      "firebrands_deposited_total",
			Help:      "Firebrands landed in-bounds across all spotting draws.",
		}),
		StepTimestep: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "firecast",
			Name:      "step_timestep_minutes",
			Help:      "Adaptive timestep chosen per kernel step.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 20, 40},
		}),
		ActiveFrontSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "firecast",
			Name:      "active_front_size",
			Help:      "Number of active-front source cells per step.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}

	if reg != nil {
		reg.MustRegister(
			r.ClampedNegativeRate,
			r.ClampedDegenerateNormal,
			r.IgnitionEvents,
			r.SpotIgnitions,
			r.FirebrandsDeposited,
			r.StepTimestep,
			r.ActiveFrontSize,
		)
	}

	return r
}

// NewRecorderForTesting creates a Recorder backed by its own fresh registry,
// avoiding "duplicate metrics collector registration" panics across tests.
func NewRecorderForTesting() *Recorder {
	return NewRecorder(prometheus.NewRegistry())
}

// ClampedNegative records that a rate or intensity value was clamped to zero
// after a computation went negative.
func (r *Recorder) ClampedNegative() {
	if r == nil {
		return
	}
	r.ClampedNegativeRate.Inc()
	atomic.AddUint64(&r.counts.ClampedNegativeRate, 1)
}

// DegenerateDistribution records a log-normal/normal draw with non-positive sigma.
func (r *Recorder) DegenerateDistribution() {
	if r == nil {
		return
	}
	r.ClampedDegenerateNormal.Inc()
	atomic.AddUint64(&r.counts.ClampedDegenerateNormal, 1)
}

// Ignition records one conducted-spread ignition event.
func (r *Recorder) Ignition() {
	if r == nil {
		return
	}
	r.IgnitionEvents.Inc()
	atomic.AddUint64(&r.counts.IgnitionEvents, 1)
}

// SpotIgnition records one committed spot ignition.
func (r *Recorder) SpotIgnition() {
	if r == nil {
		return
	}
	r.SpotIgnitions.Inc()
	atomic.AddUint64(&r.counts.SpotIgnitions, 1)
}

// Firebrands records n firebrands landing in-bounds.
func (r *Recorder) Firebrands(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.FirebrandsDeposited.Add(float64(n))
	atomic.AddUint64(&r.counts.FirebrandsDeposited, uint64(n))
}

// Snapshot returns a copy of the Recorder's atomic counters, suitable for
// attaching to a Result without holding a reference to the Recorder (or its
// Prometheus registry) beyond the run. A nil Recorder snapshots to a zero
// Counts.
func (r *Recorder) Snapshot() Counts {
	if r == nil {
		return Counts{}
	}
	return Counts{
		ClampedNegativeRate:     atomic.LoadUint64(&r.counts.ClampedNegativeRate),
		ClampedDegenerateNormal: atomic.LoadUint64(&r.counts.ClampedDegenerateNormal),
		IgnitionEvents:          atomic.LoadUint64(&r.counts.IgnitionEvents),
		SpotIgnitions:           atomic.LoadUint64(&r.counts.SpotIgnitions),
		FirebrandsDeposited:     atomic.LoadUint64(&r.counts.FirebrandsDeposited),
	}
}

// Timestep records the dt chosen for one kernel step.
func (r *Recorder) Timestep(minutes float64) {
	if r == nil {
		return
	}
	r.StepTimestep.Observe(minutes)
}

// FrontSize records the active-front size at the start of a step.
func (r *Recorder) FrontSize(n int) {
	if r == nil {
		return
	}
	r.ActiveFrontSize.Observe(float64(n))
}
