// Package spread implements the Spread Kernel: the front-tracking state
// machine that advances a fire across the landscape grid one adaptive
// timestep at a time (spec §4.4).
package spread

import "firecast/internal/weatherfeed"

// BurnTrajectory is one outgoing edge from an active source cell to a
// burnable, unburned neighbor (spec §3). Trajectories are held by value in
// slices, not as a mutable field shared across steps — see spec §9 "Mutable
// overflow carry-over".
type BurnTrajectory struct {
	Cell              weatherfeed.Cell
	DI, DJ            int
	SpreadDirection   float64 // azimuth, degrees CW from north
	TerrainDistance   float64 // ft, 3-D
	SpreadRate        float64 // ft/min
	FireLineIntensity float64 // Btu/(ft*s)
	FlameLength       float64 // ft
	FractionalDistance float64
	CrownFire         bool
}

// overflowSeed carries the residual heat of an ignition-triggering
// trajectory into the newly ignited cell's recomputed trajectory set
// (spec §4.4.4, "overflow_heat").
type overflowSeed struct {
	DI, DJ int
	Heat   float64
}

// neighborOffset pairs one of the eight Moore-neighborhood trajectories
// with its azimuth, per the glossary's offset_to_degrees table.
type neighborOffset struct {
	DI, DJ  int
	Azimuth float64
}

var neighborOffsets = [8]neighborOffset{
	{-1, 0, 0},
	{-1, 1, 45},
	{0, 1, 90},
	{1, 1, 135},
	{1, 0, 180},
	{1, -1, 225},
	{0, -1, 270},
	{-1, -1, 315},
}
