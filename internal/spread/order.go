package spread

import (
	"sort"

	"firecast/internal/weatherfeed"
)

// cellLess orders cells in row-major order, the fixed deterministic
// iteration order spec §5 requires for tie-breaking and reproducibility.
func cellLess(a, b weatherfeed.Cell) bool {
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}

func sortedFrontCells(front map[weatherfeed.Cell][]BurnTrajectory) []weatherfeed.Cell {
	cells := make([]weatherfeed.Cell, 0, len(front))
	for c := range front {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool { return cellLess(cells[i], cells[j]) })
	return cells
}

func sortedCounterCells(counts map[weatherfeed.Cell]int) []weatherfeed.Cell {
	cells := make([]weatherfeed.Cell, 0, len(counts))
	for c := range counts {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool { return cellLess(cells[i], cells[j]) })
	return cells
}

func sortCells(cells []weatherfeed.Cell) {
	sort.Slice(cells, func(i, j int) bool { return cellLess(cells[i], cells[j]) })
}
