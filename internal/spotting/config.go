// Package spotting implements the Spotting Model: firebrand dispersal from
// torching cells, Schroeder ignition probability at landing cells, and the
// resulting delayed-ignition schedule (spec §4.5).
package spotting

import "firecast/pkg/xrand"

// IntBound is one endpoint of a num_firebrands {lo, hi} range. Either bound
// may itself be fixed or drawn from a [min, max] uniform-integer range,
// per spec §4.5 "each bound possibly a [min,max] uniform-int range".
type IntBound struct {
	IsRange  bool
	Fixed    int
	Min, Max int
}

func (b IntBound) resolve(rng *xrand.Source) int {
	if !b.IsRange {
		return b.Fixed
	}
	return rng.UniformInt(b.Min, b.Max)
}

// NumFirebrandsSpec is the engine input's num_firebrands: a fixed scalar or
// a {lo, hi} range to draw a firebrand count from.
type NumFirebrandsSpec struct {
	IsRange bool
	Fixed   int
	Lo, Hi  IntBound
}

// Sample draws the firebrand count for one ignition event.
func (s NumFirebrandsSpec) Sample(rng *xrand.Source) int {
	if !s.IsRange {
		return s.Fixed
	}
	lo := s.Lo.resolve(rng)
	hi := s.Hi.resolve(rng)
	return rng.UniformInt(lo, hi)
}

// PercentSpec is a number-or-range configuration value, used for
// crown_fire_spotting_percent.
type PercentSpec struct {
	IsRange bool
	Fixed   float64
	Lo, Hi  float64
}

// Sample draws the percent for one gating decision.
func (p PercentSpec) Sample(rng *xrand.Source) float64 {
	if !p.IsRange {
		return p.Fixed
	}
	return rng.UniformFloat(p.Lo, p.Hi)
}

// FuelModelRange is an inclusive [lo, hi] band of fuel model numbers.
type FuelModelRange struct {
	Lo, Hi int
}

func (r FuelModelRange) contains(n int) bool { return n >= r.Lo && n <= r.Hi }

// SurfaceSpotEntry is one row of the surface-fire spot-percent table.
type SurfaceSpotEntry struct {
	Range   FuelModelRange
	Percent float64
}

// SurfaceFireSpotting is the optional surface-fire spotting configuration.
// Table ranges may overlap; per spec §9 Open Questions, later entries
// override earlier ones for fuel model numbers they share.
type SurfaceFireSpotting struct {
	CriticalFireLineIntensity float64
	Table                     []SurfaceSpotEntry
}

func (c *SurfaceFireSpotting) percentFor(fuelModelNumber int) float64 {
	percent := 0.0
	for _, e := range c.Table {
		if e.Range.contains(fuelModelNumber) {
			percent = e.Percent
		}
	}
	return percent
}

// Config is the spotting model's engine-input configuration (spec §6).
type Config struct {
	NumFirebrands            NumFirebrandsSpec
	AmbientGasDensity        float64 // kg/m^3
	SpecificHeatGas          float64 // kJ/(kg*K)
	DecayConstant            float64
	CrownFireSpottingPercent PercentSpec
	SurfaceFireSpotting      *SurfaceFireSpotting // nil disables surface spotting
}
