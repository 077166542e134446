package weatherfeed

import (
	"math"

	"firecast/pkg/xrand"
)

// Constants is the bundle of per-cell, per-clock values `compute_neighborhood`
// needs, assembled by ExtractConstants (spec §4.3).
type Constants struct {
	Aspect           float64
	Slope            float64
	CanopyHeight     float64
	CanopyBaseHeight float64
	CrownBulkDensity float64
	CanopyCover      float64
	FuelModelNumber  int

	WindSpeed20ft     float64
	WindFromDirection float64
	Temperature       float64
	RelativeHumidity  float64
}

type pixelKey struct {
	layer string
	i, j  int
	epoch int
}

// Sampler resolves weather and landfire values at a cell and clock,
// applying any configured perturbation. It owns the perturbation draw
// caches for one simulation; every draw goes through the simulation's
// single xrand.Source, preserving the spec's one-generator-per-run rule.
type Sampler struct {
	rng           *xrand.Source
	globalOffsets map[string]float64
	pixelOffsets  map[pixelKey]float64
}

// NewSampler creates a Sampler drawing all perturbation randomness from rng.
func NewSampler(rng *xrand.Source) *Sampler {
	return &Sampler{
		rng:           rng,
		globalOffsets: make(map[string]float64),
		pixelOffsets:  make(map[pixelKey]float64),
	}
}

// At resolves wv at cell here and simulated clock globalClock, applying its
// configured perturbation if any. layer names the variable for the purpose
// of keying perturbation draws (e.g. "wind_speed_20ft") and does not affect
// which raster or scalar is read.
func (s *Sampler) At(layer string, wv WeatherVariable, here Cell, globalClock float64) float64 {
	base := s.resolveBase(wv, here, globalClock)
	if wv.Perturbation == nil {
		return base
	}
	switch wv.Perturbation.Spatial {
	case SpatialPixel:
		return base + s.pixelOffset(layer, here, globalClock, wv.Perturbation)
	default:
		return base + s.globalOffset(layer, wv.Perturbation)
	}
}

func (s *Sampler) resolveBase(wv WeatherVariable, here Cell, globalClock float64) float64 {
	if wv.Scalar != nil {
		return *wv.Scalar
	}
	if wv.Raster == nil {
		return 0
	}
	m := wv.ResolutionMultiplier
	if m < 1 {
		m = 1
	}
	band := wv.Raster.Band(int(math.Floor(globalClock / 60)))
	if band == nil {
		return 0
	}
	si, sj := here.I/m, here.J/m
	si = clampIndex(si, band.Rows)
	sj = clampIndex(sj, band.Cols)
	return band.At(si, sj)
}

func clampIndex(v, n int) int {
	if n <= 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func (s *Sampler) globalOffset(layer string, p *PerturbationSpec) float64 {
	if v, ok := s.globalOffsets[layer]; ok {
		return v
	}
	v := s.rng.UniformFloat(p.Lo, p.Hi)
	s.globalOffsets[layer] = v
	return v
}

func (s *Sampler) pixelOffset(layer string, here Cell, globalClock float64, p *PerturbationSpec) float64 {
	epoch := 0
	if p.Frequency > 0 {
		epoch = int(math.Floor(globalClock / p.Frequency))
	}
	key := pixelKey{layer: layer, i: here.I, j: here.J, epoch: epoch}
	if v, ok := s.pixelOffsets[key]; ok {
		return v
	}
	v := s.rng.UniformFloat(p.Lo, p.Hi)
	s.pixelOffsets[key] = v
	return v
}

// ExtractConstants assembles the per-cell, per-clock Constants bundle that
// the spread kernel needs for compute_neighborhood.
func (s *Sampler) ExtractConstants(ls *Landscape, weather WeatherInputs, clock float64, here Cell) Constants {
	return Constants{
		Aspect:           ls.Aspect.At(here.I, here.J),
		Slope:            ls.Slope.At(here.I, here.J),
		CanopyHeight:     ls.CanopyHeight.At(here.I, here.J),
		CanopyBaseHeight: ls.CanopyBaseHeight.At(here.I, here.J),
		CrownBulkDensity: ls.CrownBulkDensity.At(here.I, here.J),
		CanopyCover:      ls.CanopyCover.At(here.I, here.J),
		FuelModelNumber:  ls.FuelModelNumber(here),

		WindSpeed20ft:     s.At("wind_speed_20ft", weather.WindSpeed20ft, here, clock),
		WindFromDirection: s.At("wind_from_direction", weather.WindFromDirection, here, clock),
		Temperature:       s.At("temperature", weather.Temperature, here, clock),
		RelativeHumidity:  s.At("relative_humidity", weather.RelativeHumidity, here, clock),
	}
}
