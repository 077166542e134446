package spread

import (
	"context"
	"math"

	"firecast/internal/crownfire"
	"firecast/internal/diagnostics"
	"firecast/internal/fuelmodel"
	"firecast/internal/spotting"
	"firecast/internal/weatherfeed"
)

// Kernel is the Spread Kernel of spec §4.4: it owns no global state, only
// read-only references to the landscape, weather, fuel memoization, and
// optional spotting model, plus the one mutable State for its simulation.
type Kernel struct {
	Landscape *weatherfeed.Landscape
	Weather   weatherfeed.WeatherInputs
	Sampler   *weatherfeed.Sampler
	FuelCache *fuelmodel.Cache
	Spotting  *spotting.Model // nil disables spotting entirely
	Diag      *diagnostics.Recorder

	EllipseAdjustmentFactor float64
	FoliarMoisture          float64
	MaxRuntime              float64

	State *State
}

// NewKernel constructs a Kernel over a fresh State sized to ls.
func NewKernel(ls *weatherfeed.Landscape, weather weatherfeed.WeatherInputs, sampler *weatherfeed.Sampler, fuelCache *fuelmodel.Cache, spot *spotting.Model, diag *diagnostics.Recorder, ellipseAdjustmentFactor, foliarMoisture, maxRuntime float64) *Kernel {
	return &Kernel{
		Landscape:               ls,
		Weather:                 weather,
		Sampler:                 sampler,
		FuelCache:               fuelCache,
		Spotting:                spot,
		Diag:                    diag,
		EllipseAdjustmentFactor: ellipseAdjustmentFactor,
		FoliarMoisture:          foliarMoisture,
		MaxRuntime:              maxRuntime,
		State:                   NewState(ls.NumRows, ls.NumCols),
	}
}

// Ignite marks cell as ignited at the given observables and, if it still
// has a burnable unburned neighbor, seeds its outgoing trajectories. It is
// the entry point the Engine Facade uses for all three ignition variants.
func (k *Kernel) Ignite(cell weatherfeed.Cell, fireSpread, flameLength, intensity, burnTime float64) {
	k.State.FireSpread.Set(cell.I, cell.J, fireSpread)
	k.State.FlameLength.Set(cell.I, cell.J, flameLength)
	k.State.FireLineIntensity.Set(cell.I, cell.J, intensity)
	k.State.BurnTime.Set(cell.I, cell.J, burnTime)
	if k.HasBurnableNeighbor(cell) {
		k.State.ActiveFront[cell] = k.computeNeighborhood(cell, nil)
	}
}

// Run drives Step until the front is exhausted, max_runtime is reached, or
// ctx is cancelled. ctx is checked once per outer step, per spec §5
// "Hosting processes may cancel by discarding the engine state".
func (k *Kernel) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !k.Step() {
			return nil
		}
	}
}

// Active reports whether the kernel has more steps to take.
func (k *Kernel) Active() bool {
	return len(k.State.ActiveFront) > 0 && k.State.GlobalClock < k.MaxRuntime
}

// candidate is one dest cell's winning ignition-triggering trajectory
// within a single step (spec §4.4.3).
type candidate struct {
	dest        weatherfeed.Cell
	fractional  float64
	flameLength float64
	intensity   float64
	crown       bool
	di, dj      int
}

// Step advances the simulation by one adaptive timestep, performing the
// ordered sub-steps of spec §5. It returns whether the front remains
// active (so callers can loop `for k.Step() {}`).
func (k *Kernel) Step() bool {
	if !k.Active() {
		return false
	}

	maxRate := 0.0
	for _, trajs := range k.State.ActiveFront {
		for _, tr := range trajs {
			if tr.SpreadRate > maxRate {
				maxRate = tr.SpreadRate
			}
		}
	}
	if maxRate <= 0 {
		k.State.ActiveFront = make(map[weatherfeed.Cell][]BurnTrajectory)
		return false
	}

	dt := k.Landscape.CellSize / maxRate
	if k.State.GlobalClock+dt > k.MaxRuntime {
		dt = k.MaxRuntime - k.State.GlobalClock
	}
	if dt <= 0 {
		return false
	}

	if k.Diag != nil {
		k.Diag.Timestep(dt)
		k.Diag.FrontSize(len(k.State.ActiveFront))
	}

	bestPerDest := k.accumulateFractionalDistance(dt)
	events := k.commitIgnitionEvents(bestPerDest, dt)

	if k.Spotting != nil {
		for _, ev := range events {
			k.collectSpotIgnitions(ev.dest, ev.intensity, ev.crown)
		}
		k.applyDueSpotIgnitions(dt)
	}

	k.maintainFront(events)

	k.State.GlobalClock += dt
	return k.Active()
}

// accumulateFractionalDistance is spec §4.4.3 step one: increment every
// trajectory's fractional_distance and collect, per destination cell, the
// candidate with the largest fractional_distance.
func (k *Kernel) accumulateFractionalDistance(dt float64) map[weatherfeed.Cell]candidate {
	bestPerDest := make(map[weatherfeed.Cell]candidate)
	updated := make(map[weatherfeed.Cell][]BurnTrajectory, len(k.State.ActiveFront))

	for _, src := range sortedFrontCells(k.State.ActiveFront) {
		trajs := k.State.ActiveFront[src]
		newTrajs := make([]BurnTrajectory, len(trajs))
		for i, tr := range trajs {
			tr.FractionalDistance += tr.SpreadRate * dt / tr.TerrainDistance
			newTrajs[i] = tr
			if tr.FractionalDistance >= 1.0 {
				cand := candidate{
					dest: tr.Cell, fractional: tr.FractionalDistance,
					flameLength: tr.FlameLength, intensity: tr.FireLineIntensity,
					crown: tr.CrownFire, di: tr.DI, dj: tr.DJ,
				}
				if existing, ok := bestPerDest[tr.Cell]; !ok || cand.fractional > existing.fractional {
					bestPerDest[tr.Cell] = cand
				}
			}
		}
		updated[src] = newTrajs
	}
	k.State.ActiveFront = updated
	return bestPerDest
}

// commitIgnitionEvents applies the winning candidate per destination,
// setting fire_spread=1.0 and the associated observables (spec §4.4.3).
// Events are returned in deterministic row-major order.
func (k *Kernel) commitIgnitionEvents(bestPerDest map[weatherfeed.Cell]candidate, dt float64) []candidate {
	events := make([]candidate, 0, len(bestPerDest))
	for _, dest := range sortedCounterCellsOf(bestPerDest) {
		events = append(events, bestPerDest[dest])
	}
	for _, ev := range events {
		k.State.FireSpread.Set(ev.dest.I, ev.dest.J, 1.0)
		k.State.FlameLength.Set(ev.dest.I, ev.dest.J, ev.flameLength)
		k.State.FireLineIntensity.Set(ev.dest.I, ev.dest.J, ev.intensity)
		k.State.BurnTime.Set(ev.dest.I, ev.dest.J, k.State.GlobalClock+dt)
		if k.Diag != nil {
			k.Diag.Ignition()
		}
	}
	return events
}

func sortedCounterCellsOf(m map[weatherfeed.Cell]candidate) []weatherfeed.Cell {
	cells := make([]weatherfeed.Cell, 0, len(m))
	for c := range m {
		cells = append(cells, c)
	}
	sortCells(cells)
	return cells
}

// maintainFront is spec §4.4.4: prune trajectories pointing at newly
// ignited cells (dropping sources with no burnable neighbor left), then
// recompute trajectories for each ignition event's destination, seeding
// overflow heat along the triggering trajectory.
func (k *Kernel) maintainFront(events []candidate) {
	pruned := make(map[weatherfeed.Cell][]BurnTrajectory, len(k.State.ActiveFront))
	for src, trajs := range k.State.ActiveFront {
		kept := make([]BurnTrajectory, 0, len(trajs))
		for _, tr := range trajs {
			if k.State.FireSpread.At(tr.Cell.I, tr.Cell.J) > 0 {
				continue
			}
			kept = append(kept, tr)
		}
		if len(kept) > 0 {
			pruned[src] = kept
		}
	}
	k.State.ActiveFront = pruned

	for _, ev := range events {
		if k.HasBurnableNeighbor(ev.dest) {
			overflow := &overflowSeed{DI: ev.di, DJ: ev.dj, Heat: ev.fractional - 1.0}
			k.State.ActiveFront[ev.dest] = k.computeNeighborhood(ev.dest, overflow)
		}
	}
}

func (k *Kernel) HasBurnableNeighbor(cell weatherfeed.Cell) bool {
	for _, off := range neighborOffsets {
		n := weatherfeed.Cell{I: cell.I + off.DI, J: cell.J + off.DJ}
		if k.Landscape.Burnable(n) && k.State.FireSpread.At(n.I, n.J) == 0 {
			return true
		}
	}
	return false
}

// computeNeighborhood is spec §4.4.1: derive surface and (if eligible)
// crown fire behavior from source toward each burnable-unburned neighbor.
func (k *Kernel) computeNeighborhood(source weatherfeed.Cell, overflow *overflowSeed) []BurnTrajectory {
	c := k.Sampler.ExtractConstants(k.Landscape, k.Weather, k.State.GlobalClock, source)
	moisture := weatherfeed.FuelMoisture(c.RelativeHumidity, c.Temperature)
	fm := fuelmodel.Moisturize(fuelmodel.BuildFuelModel(c.FuelModelNumber), moisture)
	fm, minInfo := k.FuelCache.NoWindNoSlope(fm)

	waf := fuelmodel.WindAdjustmentFactor(fm.Depth, c.CanopyHeight, c.CanopyCover)
	midflame := c.WindSpeed20ft * 88 * waf
	maxInfo := fuelmodel.RothermelMax(minInfo, midflame, c.WindFromDirection, c.Slope, c.Aspect, k.EllipseAdjustmentFactor)

	crownSpreadMax := crownfire.CruzCrownSpread(c.WindSpeed20ft, c.CrownBulkDensity, moisture.Dead1Hr)
	crownEcc := crownfire.CrownFireEccentricity(c.WindSpeed20ft, k.EllipseAdjustmentFactor)

	var out []BurnTrajectory
	for _, off := range neighborOffsets {
		dest := weatherfeed.Cell{I: source.I + off.DI, J: source.J + off.DJ}
		if !k.Landscape.Burnable(dest) {
			continue
		}
		if k.State.FireSpread.At(dest.I, dest.J) > 0 {
			continue
		}

		surfaceRate := fuelmodel.RothermelAny(maxInfo, off.Azimuth)
		surfaceIntensity := fuelmodel.ByramIntensity(minInfo.ReactionIntensity, fuelmodel.AndersonFlameDepth(surfaceRate, minInfo.ResidenceTime))

		isCrown := crownfire.VanWagnerInitiation(c.CanopyCover, c.CanopyBaseHeight, k.FoliarMoisture, surfaceIntensity)

		var spreadRate, intensity float64
		if isCrown {
			crownMaxInfo := fuelmodel.SpreadInfoMax{
				MaxSpreadRate:      crownSpreadMax,
				MaxSpreadDirection: maxInfo.MaxSpreadDirection,
				Eccentricity:       crownEcc,
			}
			crownRate := fuelmodel.RothermelAny(crownMaxInfo, off.Azimuth)
			crownIntensity := crownfire.CrownFireLineIntensity(crownRate, c.CrownBulkDensity, c.CanopyHeight, c.CanopyBaseHeight, fm.HeatContent)
			spreadRate = math.Max(surfaceRate, crownRate)
			intensity = surfaceIntensity + crownIntensity
		} else {
			spreadRate = surfaceRate
			intensity = surfaceIntensity
		}

		flameLength := fuelmodel.ByramFlameLength(intensity)
		terrainDistance := k.Landscape.Elevation3D(source, dest)
		if terrainDistance <= 0 {
			continue
		}

		fractional := 0.0
		if overflow != nil && overflow.DI == off.DI && overflow.DJ == off.DJ {
			fractional = overflow.Heat
		}

		out = append(out, BurnTrajectory{
			Cell: dest, DI: off.DI, DJ: off.DJ, SpreadDirection: off.Azimuth,
			TerrainDistance: terrainDistance, SpreadRate: spreadRate,
			FireLineIntensity: intensity, FlameLength: flameLength,
			FractionalDistance: fractional, CrownFire: isCrown,
		})
	}
	return out
}

// collectSpotIgnitions is spec §4.5, invoked once per ignition event.
func (k *Kernel) collectSpotIgnitions(source weatherfeed.Cell, intensity float64, crown bool) {
	var fire bool
	if crown {
		fire = k.Spotting.CrownSpotFire()
	} else {
		fire = k.Spotting.SurfaceSpotFire(k.Landscape.FuelModelNumber(source), intensity)
	}
	if !fire {
		return
	}

	c := k.Sampler.ExtractConstants(k.Landscape, k.Weather, k.State.GlobalClock, source)
	landings := k.Spotting.Disperse(k.Landscape, source, intensity, c.WindSpeed20ft, c.WindFromDirection, c.Temperature)
	if len(landings) == 0 {
		return
	}

	counts := make(map[weatherfeed.Cell]int)
	for _, cell := range landings {
		if !k.Landscape.Burnable(cell) {
			continue
		}
		counts[cell]++
	}
	if k.Diag != nil && len(counts) > 0 {
		inBounds := 0
		for _, n := range counts {
			inBounds += n
		}
		k.Diag.Firebrands(inBounds)
	}

	flameLength := k.State.FlameLength.At(source.I, source.J)
	tIgnite := spotting.TIgnite(k.State.GlobalClock, flameLength, c.WindSpeed20ft)

	for _, cell := range sortedCounterCells(counts) {
		added := counts[cell]
		total := int(k.State.FirebrandCount.At(cell.I, cell.J)) + added
		k.State.FirebrandCount.Set(cell.I, cell.J, float64(total))

		landingConst := k.Sampler.ExtractConstants(k.Landscape, k.Weather, k.State.GlobalClock, cell)
		pSchroeder := spotting.SchroederIgnProb(landingConst.RelativeHumidity, landingConst.Temperature)
		decay := spotting.Decay(k.Spotting.DecayConstant(), k.Landscape.Elevation3D(source, cell))
		pSpot := spotting.SpotProbability(pSchroeder, decay, total)

		if k.Spotting.Gate(pSpot) {
			k.mergeSpotSchedule(cell, tIgnite, pSpot)
		}
	}
}

func (k *Kernel) mergeSpotSchedule(cell weatherfeed.Cell, tIgnite, p float64) {
	existing, ok := k.State.SpotSchedule[cell]
	if !ok || tIgnite < existing.TIgnite {
		k.State.SpotSchedule[cell] = SpotEntry{TIgnite: tIgnite, P: p}
	}
}

// applyDueSpotIgnitions is spec §4.4.5: split the schedule into due and
// pending entries and commit spot ignitions whose probability exceeds the
// cell's current fire_spread value.
func (k *Kernel) applyDueSpotIgnitions(dt float64) {
	threshold := k.State.GlobalClock + dt
	due := make([]weatherfeed.Cell, 0)
	for cell, entry := range k.State.SpotSchedule {
		if entry.TIgnite <= threshold {
			due = append(due, cell)
		}
	}
	sortCells(due)

	for _, cell := range due {
		entry := k.State.SpotSchedule[cell]
		delete(k.State.SpotSchedule, cell)
		if k.State.FireSpread.At(cell.I, cell.J) >= entry.P {
			continue
		}
		k.State.FireSpread.Set(cell.I, cell.J, entry.P)
		k.State.BurnTime.Set(cell.I, cell.J, threshold)
		if k.Diag != nil {
			k.Diag.SpotIgnition()
		}
		if k.HasBurnableNeighbor(cell) {
			k.State.ActiveFront[cell] = k.computeNeighborhood(cell, nil)
		}
	}
}
