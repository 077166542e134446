// Package weatherfeed is the Weather & Landfire Sampler: it resolves
// per-cell, per-clock weather and fuel moisture values, applying configured
// perturbations through the simulation's seeded draw source.
package weatherfeed

import (
	"math"

	"firecast/pkg/grid"
)

// Cell is a (row, col) grid coordinate.
type Cell struct {
	I, J int
}

// Landscape bundles the eight aligned terrain and fuel layers of spec §3,
// owned by the driver and shared read-only across simulations.
type Landscape struct {
	NumRows, NumCols int
	CellSize         float64 // ft

	Elevation        *grid.Float64 // ft
	Slope            *grid.Float64 // rise/run
	Aspect           *grid.Float64 // degrees CW from north
	FuelModel        *grid.Float64 // integer code 1..256 encoded as double
	CanopyHeight     *grid.Float64 // ft
	CanopyBaseHeight *grid.Float64 // ft
	CrownBulkDensity *grid.Float64 // lb/ft^3
	CanopyCover      *grid.Float64 // 0..100
}

// InBounds reports whether c is within the landscape's extent.
func (l *Landscape) InBounds(c Cell) bool {
	return c.I >= 0 && c.I < l.NumRows && c.J >= 0 && c.J < l.NumCols
}

// FuelModelNumber returns the integer fuel model code at c.
func (l *Landscape) FuelModelNumber(c Cell) int {
	return int(math.Round(l.FuelModel.At(c.I, c.J)))
}

// IsBurnableFuelModel reports whether fuel model code n is burnable:
// (0, 91) ∪ (99, 257), per the glossary definition.
func IsBurnableFuelModel(n int) bool {
	return (n > 0 && n < 91) || (n > 99 && n < 257)
}

// Burnable reports whether c is in-bounds and carries a burnable fuel model.
// It does not consider whether c has already ignited; callers combine this
// with the ignition-state matrix for the full "burnable-unburned" test.
func (l *Landscape) Burnable(c Cell) bool {
	if !l.InBounds(c) {
		return false
	}
	return IsBurnableFuelModel(l.FuelModelNumber(c))
}

// Elevation3D returns the 3-D terrain distance between two in-bounds cells,
// using CellSize for the planar offset and the Elevation layer for the
// vertical one.
func (l *Landscape) Elevation3D(a, b Cell) float64 {
	dx := float64(b.J-a.J) * l.CellSize
	dy := float64(b.I-a.I) * l.CellSize
	dz := l.Elevation.At(b.I, b.J) - l.Elevation.At(a.I, a.J)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
