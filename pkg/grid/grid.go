// Package grid provides the aligned 2-D raster type shared by landscape
// layers, weather rasters, and simulation result matrices.
package grid

import "fmt"

// Float64 is a row-major 2-D array of float64 values with fixed dimensions.
type Float64 struct {
	Rows, Cols int
	data       []float64
}

// NewFloat64 allocates a zero-filled grid with the given dimensions.
func NewFloat64(rows, cols int) *Float64 {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Float64{Rows: rows, Cols: cols, data: make([]float64, rows*cols)}
}

// NewFloat64From wraps an existing row-major slice; it panics if the slice
// length does not match rows*cols, since that indicates caller-side raster
// misalignment rather than recoverable bad input.
func NewFloat64From(rows, cols int, data []float64) *Float64 {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("grid: data length %d does not match %dx%d", len(data), rows, cols))
	}
	return &Float64{Rows: rows, Cols: cols, data: data}
}

// InBounds reports whether (i, j) is a valid cell coordinate.
func (g *Float64) InBounds(i, j int) bool {
	return i >= 0 && i < g.Rows && j >= 0 && j < g.Cols
}

// At returns the value at (i, j).
func (g *Float64) At(i, j int) float64 {
	return g.data[i*g.Cols+j]
}

// Set assigns the value at (i, j).
func (g *Float64) Set(i, j int, v float64) {
	g.data[i*g.Cols+j] = v
}

// Fill sets every cell to v.
func (g *Float64) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Data exposes the backing row-major slice for bulk access.
func (g *Float64) Data() []float64 { return g.data }

// SameShape reports whether two grids share dimensions.
func SameShape(a, b *Float64) bool {
	return a.Rows == b.Rows && a.Cols == b.Cols
}

// Stack3D is a time-banded stack of Float64 rasters, one band per hour, used
// for weather variables that vary over the simulation's runtime.
type Stack3D struct {
	Bands []*Float64
}

// Band returns the raster for the given hour index, clamped to the last
// available band once the simulation runs longer than the stack provides.
func (s *Stack3D) Band(hour int) *Float64 {
	if len(s.Bands) == 0 {
		return nil
	}
	if hour < 0 {
		hour = 0
	}
	if hour >= len(s.Bands) {
		hour = len(s.Bands) - 1
	}
	return s.Bands[hour]
}
