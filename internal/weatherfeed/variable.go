package weatherfeed

import "firecast/pkg/grid"

// SpatialType selects how a layer perturbation is drawn.
type SpatialType int

const (
	// SpatialGlobal draws one offset per simulation, shared by every cell.
	SpatialGlobal SpatialType = iota
	// SpatialPixel draws one offset per cell (re-drawn every Frequency
	// minutes if Frequency is positive, fixed for the run otherwise).
	SpatialPixel
)

// PerturbationSpec is the per-layer perturbation configuration of spec §3.
type PerturbationSpec struct {
	Spatial   SpatialType
	Lo, Hi    float64
	Frequency float64 // minutes; 0 means fixed for the whole simulation
}

// WeatherVariable is one of spec §3's three weather input shapes: a scalar,
// a scalar drawn once per simulation, or a raster stack with one band per
// hour. The first two are indistinguishable once resolved to a concrete
// value, so both are represented by Scalar — the driver is responsible for
// drawing a per-simulation scalar once, upstream, before constructing this
// value.
type WeatherVariable struct {
	Scalar *float64
	Raster *grid.Stack3D

	// ResolutionMultiplier divides landscape indices before sampling Raster,
	// when the weather raster is coarser than the landscape grid. Values
	// less than 1 are treated as 1.
	ResolutionMultiplier int

	Perturbation *PerturbationSpec
}

// ScalarVariable builds a WeatherVariable carrying a fixed value.
func ScalarVariable(v float64) WeatherVariable {
	return WeatherVariable{Scalar: &v}
}

// RasterVariable builds a WeatherVariable backed by a time-banded raster.
func RasterVariable(stack *grid.Stack3D, resolutionMultiplier int) WeatherVariable {
	return WeatherVariable{Raster: stack, ResolutionMultiplier: resolutionMultiplier}
}

// WeatherInputs bundles the four weather variables of spec §3. Foliar
// moisture and the ellipse adjustment factor are per-simulation scalars
// used directly by the fuel and crown models; they are not sampled per-cell
// and so live on engine.SimulationInputs rather than here.
type WeatherInputs struct {
	Temperature       WeatherVariable
	RelativeHumidity  WeatherVariable
	WindSpeed20ft     WeatherVariable
	WindFromDirection WeatherVariable
}
