package engine

import (
	"fmt"
	"math"

	"firecast/internal/spotting"
	"firecast/internal/weatherfeed"
	"firecast/pkg/grid"
)

// IgnitionKind distinguishes the three ignition variants of spec §4.6.
type IgnitionKind int

const (
	IgnitionRandom IgnitionKind = iota
	IgnitionPoint
	IgnitionPerimeter
)

// Ignition is the tagged variant the facade dispatches on, per spec §9
// "Polymorphic front".
type Ignition struct {
	Kind      IgnitionKind
	Point     weatherfeed.Cell
	Perimeter *grid.Float64
}

// RandomIgnition reject-samples a burnable cell with a burnable unburned
// neighbor.
func RandomIgnition() Ignition { return Ignition{Kind: IgnitionRandom} }

// PointIgnition ignites the single given cell.
func PointIgnition(cell weatherfeed.Cell) Ignition {
	return Ignition{Kind: IgnitionPoint, Point: cell}
}

// PerimeterIgnition treats every nonzero cell of perimeter as already
// burning at t=0.
func PerimeterIgnition(perimeter *grid.Float64) Ignition {
	return Ignition{Kind: IgnitionPerimeter, Perimeter: perimeter}
}

// SimulationInputs is the engine's input record (spec §6).
type SimulationInputs struct {
	Landscape *weatherfeed.Landscape
	Weather   weatherfeed.WeatherInputs

	MaxRuntime              float64
	EllipseAdjustmentFactor float64

	// FoliarMoisture is a fraction (e.g. 0.9 for 90%). Per spec §9 Open
	// Questions, any percent-to-fraction conversion happens upstream of
	// the engine; this field is always a fraction.
	FoliarMoisture float64

	// Spotting is nil to disable the Spotting Model entirely.
	Spotting *spotting.Config

	RandomSeed int64
}

func (in SimulationInputs) validate() error {
	ls := in.Landscape
	if ls == nil {
		return fmt.Errorf("%w: landscape is required", ErrInvalidInput)
	}
	if ls.NumRows <= 0 || ls.NumCols <= 0 {
		return fmt.Errorf("%w: landscape must have positive num_rows and num_cols", ErrInvalidInput)
	}

	layers := map[string]*grid.Float64{
		"elevation":          ls.Elevation,
		"slope":              ls.Slope,
		"aspect":             ls.Aspect,
		"fuel_model":         ls.FuelModel,
		"canopy_height":      ls.CanopyHeight,
		"canopy_base_height": ls.CanopyBaseHeight,
		"crown_bulk_density": ls.CrownBulkDensity,
		"canopy_cover":       ls.CanopyCover,
	}
	for name, layer := range layers {
		if layer == nil {
			return fmt.Errorf("%w: landscape layer %q is required", ErrInvalidInput, name)
		}
		if layer.Rows != ls.NumRows || layer.Cols != ls.NumCols {
			return fmt.Errorf("%w: landscape layer %q dimensions do not match num_rows x num_cols", ErrInvalidInput, name)
		}
		for _, v := range layer.Data() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: landscape layer %q contains a non-finite value", ErrInvalidInput, name)
			}
		}
	}

	if in.MaxRuntime <= 0 {
		return fmt.Errorf("%w: max_runtime must be positive", ErrInvalidInput)
	}

	if in.FoliarMoisture < 0 || in.FoliarMoisture > 1 {
		return fmt.Errorf("%w: foliar_moisture must be a fraction in [0,1]", ErrInvalidInput)
	}

	if in.Spotting != nil {
		if in.Spotting.AmbientGasDensity <= 0 || in.Spotting.SpecificHeatGas <= 0 {
			return fmt.Errorf("%w: spotting requires positive ambient_gas_density and specific_heat_gas", ErrInvalidInput)
		}
	}

	return nil
}
