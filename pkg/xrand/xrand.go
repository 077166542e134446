// Package xrand is the single seeded draw source a simulation pulls all of
// its randomness from: uniform floats and ints, normal and log-normal
// samples. Every simulation owns exactly one Source; it is never shared
// across goroutines.
package xrand

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source is a deterministic, per-simulation random draw generator.
type Source struct {
	r *rand.Rand
}

// New creates a Source seeded deterministically from seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// UniformFloat returns a draw from the uniform distribution over [lo, hi).
// If hi <= lo, lo is returned without consuming randomness.
func (s *Source) UniformFloat(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Float64()*(hi-lo)
}

// UniformInt returns a draw from the uniform distribution over the closed
// range [lo, hi]. If hi <= lo, lo is returned without consuming randomness.
func (s *Source) UniformInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// Float01 returns a draw from the uniform distribution over [0, 1), the form
// used for gating decisions (e.g. "fire a spot if p >= uniform(0,1)").
func (s *Source) Float01() float64 {
	return s.r.Float64()
}

// LogNormal returns a draw from the log-normal distribution with underlying
// normal parameters mu, sigma. A non-positive sigma is a NumericDomain
// anomaly (spec §7): it degenerates to a zero-variance distribution
// (exp(mu)) rather than panicking.
func (s *Source) LogNormal(mu, sigma float64) float64 {
	if sigma <= 0 {
		sigma = 1e-9
	}
	d := distuv.LogNormal{Mu: mu, Sigma: sigma, Src: expRandSource{s.r}}
	return d.Rand()
}

// Normal returns a draw from the normal distribution with mean mu and
// standard deviation sigma. A non-positive sigma degenerates to the mean.
func (s *Source) Normal(mu, sigma float64) float64 {
	if sigma <= 0 {
		return mu
	}
	d := distuv.Normal{Mu: mu, Sigma: sigma, Src: expRandSource{s.r}}
	return d.Rand()
}

// Rand exposes the underlying *rand.Rand for callers that need a
// rand.Source-compatible value (e.g. handing it to another gonum
// distribution not wrapped here).
func (s *Source) Rand() *rand.Rand { return s.r }

// expRandSource adapts a *math/rand.Rand to the golang.org/x/exp/rand.Source
// interface expected by gonum's distuv, without altering the underlying draw
// sequence.
type expRandSource struct {
	r *rand.Rand
}

func (e expRandSource) Int63() int64     { return e.r.Int63() }
func (e expRandSource) Seed(seed uint64) { e.r.Seed(int64(seed)) }
func (e expRandSource) Uint64() uint64   { return uint64(e.r.Int63())<<1 | uint64(e.r.Int63()&1) }
