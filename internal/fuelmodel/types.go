// Package fuelmodel implements the Fuel & Surface Fire Model: pure,
// stateless, memoizable functions over fuel model coefficients and the
// Rothermel surface spread equations.
package fuelmodel

// FuelClass holds the static load and surface-area-to-volume coefficients
// for one particle size class of a fuel model.
type FuelClass struct {
	Load float64 // oven-dry loading, lb/ft^2
	SAV  float64 // surface-area-to-volume ratio, 1/ft
}

// FuelModel is the fixed coefficient set for a fuel model number, plus the
// moisture values populated by Moisturize.
type FuelModel struct {
	Number int

	Dead1Hr   FuelClass
	Dead10Hr  FuelClass
	Dead100Hr FuelClass
	LiveHerb  FuelClass
	LiveWoody FuelClass

	Depth               float64 // characteristic fuel bed depth, ft
	HeatContent         float64 // Btu/lb, assumed equal across classes
	ExtinctionMoisture  float64 // dead fuel moisture of extinction, fraction
	Dynamic             bool    // true if live herb load transfers to dead as it cures

	Nonburnable bool // true for barrier codes (91..99) and non-positive codes
	Defaulted   bool // true if Number was not in the table and model 1 was substituted

	Moisture FuelMoisture
}

// FuelMoisture is the per-size-class moisture fraction bundle, in
// dimensionless fraction of oven-dry weight (e.g. 0.08 for 8%).
type FuelMoisture struct {
	Dead1Hr   float64
	Dead10Hr  float64
	Dead100Hr float64
	LiveHerb  float64
	LiveWoody float64
}

// particleDensity is the oven-dry particle density assumed for all fuel
// classes, 32 lb/ft^3, the standard Rothermel (1972) constant.
const particleDensity = 32.0

// totalMineralContent is the standard total mineral content fraction S_T.
const totalMineralContent = 0.0555

// effectiveMineralContent is the standard effective (silica-free) mineral
// content fraction S_e, used in the mineral damping coefficient.
const effectiveMineralContent = 0.01
