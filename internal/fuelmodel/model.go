package fuelmodel

import (
	"fmt"
	"math"
)

// Moisturize returns fm with its Moisture field populated. It does not
// mutate fm; callers hold the result by value, matching the spec's
// "pure, stateless" characterization of this component.
func Moisturize(fm FuelModel, moisture FuelMoisture) FuelModel {
	fm.Moisture = moisture
	return fm
}

// quantize rounds a moisture fraction to 4 decimal places so that floating
// point noise in upstream sampling does not defeat the memoization cache
// keyed on (fuel model number, moisture), per the spec's Design Notes.
func quantize(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func (m FuelMoisture) key() string {
	return fmt.Sprintf("%.4f|%.4f|%.4f|%.4f|%.4f",
		quantize(m.Dead1Hr), quantize(m.Dead10Hr), quantize(m.Dead100Hr),
		quantize(m.LiveHerb), quantize(m.LiveWoody))
}

// cacheKey identifies one (fuel model number, quantized moisture) pair.
type cacheKey struct {
	number    int
	moisture  string
}

// Cache is a bounded, per-engine memoization of the expensive
// no-wind/no-slope spread computation, keyed on (fuel model number,
// quantized fuel moisture). It replaces the process-wide global cache a
// naive port would carry forward (spec Design Notes: "Global state").
// Cache is not safe for concurrent use from multiple goroutines; each
// simulation owns one, matching its ownership of its xrand.Source.
type Cache struct {
	entries map[cacheKey]SpreadInfoMin
	maxSize int
}

// NewCache creates a Cache bounded to maxSize entries. A non-positive
// maxSize defaults to 4096, generous for the handful of distinct
// (fuel model, moisture-bucket) pairs one simulation typically exercises.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 4096
	}
	return &Cache{entries: make(map[cacheKey]SpreadInfoMin), maxSize: maxSize}
}

// NoWindNoSlope returns the memoized RothermelNoWindNoSlope result for fm,
// computing and storing it on first use. The cache is cleared (not grown
// unbounded) if it would exceed maxSize, since a long-running simulation
// sweeping many distinct moisture buckets should not leak memory.
func (c *Cache) NoWindNoSlope(fm FuelModel) (FuelModel, SpreadInfoMin) {
	key := cacheKey{number: fm.Number, moisture: fm.Moisture.key()}
	if info, ok := c.entries[key]; ok {
		return fm, info
	}
	info := RothermelNoWindNoSlope(fm)
	if len(c.entries) >= c.maxSize {
		c.entries = make(map[cacheKey]SpreadInfoMin)
	}
	c.entries[key] = info
	return fm, info
}
