package spread

import (
	"firecast/internal/weatherfeed"
	"firecast/pkg/grid"
)

// SpotEntry is one pending row of the spot schedule (spec §3): the minute
// a spot ignition becomes eligible and the ignition probability it carries.
type SpotEntry struct {
	TIgnite float64
	P       float64
}

// State is the mutable per-simulation ignition state of spec §3: the
// output matrices, the active front, and the pending spot schedule. It is
// owned exclusively by one Kernel for the duration of one run.
type State struct {
	FireSpread        *grid.Float64
	FlameLength       *grid.Float64
	FireLineIntensity *grid.Float64
	BurnTime          *grid.Float64
	FirebrandCount    *grid.Float64

	ActiveFront  map[weatherfeed.Cell][]BurnTrajectory
	SpotSchedule map[weatherfeed.Cell]SpotEntry

	GlobalClock float64
}

// NewState allocates a State for a numRows x numCols landscape. BurnTime
// starts at -1 everywhere, matching the "never burned" convention of the
// engine's output record.
func NewState(numRows, numCols int) *State {
	burnTime := grid.NewFloat64(numRows, numCols)
	burnTime.Fill(-1)
	return &State{
		FireSpread:        grid.NewFloat64(numRows, numCols),
		FlameLength:       grid.NewFloat64(numRows, numCols),
		FireLineIntensity: grid.NewFloat64(numRows, numCols),
		BurnTime:          burnTime,
		FirebrandCount:    grid.NewFloat64(numRows, numCols),
		ActiveFront:       make(map[weatherfeed.Cell][]BurnTrajectory),
		SpotSchedule:      make(map[weatherfeed.Cell]SpotEntry),
	}
}
