package spotting

import (
	"math"

	"firecast/internal/weatherfeed"
	"firecast/pkg/xrand"
)

// Model is one simulation's spotting model: its configuration plus the
// shared seeded draw source. A Model is only ever invoked from the single
// goroutine driving its simulation's spread kernel.
type Model struct {
	cfg Config
	rng *xrand.Source
}

// NewModel creates a Model. rng must be the same xrand.Source the rest of
// the simulation draws from, preserving the spec's single-generator rule.
func NewModel(cfg Config, rng *xrand.Source) *Model {
	return &Model{cfg: cfg, rng: rng}
}

// DecayConstant exposes the configured distance-decay constant for firebrand
// ignition probability (spec §4.5 "decay_constant").
func (m *Model) DecayConstant() float64 { return m.cfg.DecayConstant }

// CrownSpotFire decides, for a crown-fire ignition event, whether it throws
// a spot fire (spec §4.5 "crown_spot_fire?").
func (m *Model) CrownSpotFire() bool {
	p := m.cfg.CrownFireSpottingPercent.Sample(m.rng)
	return p >= m.rng.Float01()
}

// SurfaceSpotFire decides, for a surface-fire ignition event at a cell
// carrying fuelModelNumber with fire-line intensity, whether it throws a
// spot fire (spec §4.5 "surface_fire_spot_fire?"). It returns false when
// surface spotting is not configured.
func (m *Model) SurfaceSpotFire(fuelModelNumber int, intensity float64) bool {
	cfg := m.cfg.SurfaceFireSpotting
	if cfg == nil {
		return false
	}
	if intensity <= cfg.CriticalFireLineIntensity {
		return false
	}
	percent := cfg.percentFor(fuelModelNumber)
	return percent >= m.rng.Float01()
}

// Disperse samples NumFirebrands firebrands from source, given the
// ignition event's fire-line intensity (Btu/ft*s), the ambient wind
// (mi/h, degrees clockwise from north the wind blows from), and ambient
// temperature (°F), and returns each firebrand's landing cell in draw
// order. Landing cells are not deduplicated; a cell hit by k firebrands
// appears k times.
func (m *Model) Disperse(ls *weatherfeed.Landscape, source weatherfeed.Cell, intensity, windSpeed20ft, windFromDirection, temperature float64) []weatherfeed.Cell {
	n := m.cfg.NumFirebrands.Sample(m.rng)
	if n <= 0 {
		return nil
	}

	intensitySI := intensity * btuFtSToKwM
	if intensitySI <= 0 {
		intensitySI = 1e-6
	}
	windSI := windSpeed20ft * mphToMps
	if windSI <= 0 {
		windSI = 1e-6
	}
	tempK := fahrenheitToKelvin(temperature)

	lc := math.Pow(intensitySI/(m.cfg.AmbientGasDensity*m.cfg.SpecificHeatGas*tempK*math.Sqrt(gravityMPerS)), 2.0/3.0)
	froude := windSI / math.Sqrt(gravityMPerS*lc)
	buoyancyDriven := froude <= 1

	windToDirection := math.Mod(windFromDirection+180, 360)

	cells := make([]weatherfeed.Cell, 0, n)
	for i := 0; i < n; i++ {
		dxFt, dyFt := m.disperseOne(intensitySI, windSI, buoyancyDriven, windToDirection)
		cells = append(cells, landingCell(source, dxFt, dyFt, ls.CellSize))
	}
	return cells
}

func (m *Model) disperseOne(intensitySI, windSI float64, buoyancyDriven bool, windToDirectionDeg float64) (dxFt, dyFt float64) {
	mu, sigma := parallelParams(intensitySI, windSI, buoyancyDriven)
	dParM := m.rng.LogNormal(mu, sigma)
	dPerpM := m.rng.Normal(0, 0.92)
	return deltasWindToCoord(dParM, dPerpM, windToDirectionDeg)
}

// parallelParams returns the log-normal (mu, sigma) for the firebrand's
// parallel-to-wind displacement, per spec §4.5, split on whether plume
// behavior is buoyancy-driven (Froude <= 1) or wind-driven.
func parallelParams(intensitySI, windSI float64, buoyancyDriven bool) (mu, sigma float64) {
	if buoyancyDriven {
		mu = 1.47*math.Pow(intensitySI, 0.54)*math.Pow(windSI, -0.55) + 1.14
		sigma = 0.86*math.Pow(intensitySI, -0.21)*math.Pow(windSI, 0.44) + 0.19
		return
	}
	mu = 1.32*math.Pow(intensitySI, 0.26)*math.Pow(windSI, 0.11) - 0.02
	sigma = 4.95*math.Pow(intensitySI, -0.01)*math.Pow(windSI, -0.02) - 3.48
	return
}

// deltasWindToCoord projects a firebrand's (parallel, perpendicular)
// meter displacement into grid-plane (dx, dy) foot offsets, per spec §4.5.
func deltasWindToCoord(dParM, dPerpM, windToDirectionDeg float64) (dxFt, dyFt float64) {
	dParFt := dParM * meterToFoot
	dPerpFt := dPerpM * meterToFoot
	if dParFt == 0 {
		dParFt = 1e-9
	}
	h := math.Hypot(dParFt, dPerpFt)
	thetaDeg := windToDirectionDeg + radToDeg(math.Atan(dPerpFt/dParFt))
	thetaRad := degToRad(thetaDeg)
	dxFt = -h * math.Cos(thetaRad)
	dyFt = h * math.Sin(thetaRad)
	return
}

// landingCell converts a (dx, dy) foot offset from source's cell center
// into a destination grid cell, per spec §4.5's half-cell step truncation.
// At theta=0 (wind_to_direction north, the dPerp term negligible),
// deltasWindToCoord gives dx≈-H and dy≈0 — i.e. dx carries the north/south
// displacement (negated) and dy carries the east/west displacement, per the
// glossary's azimuth table where (-1,0) is north. So dx maps to the row
// offset (negated, since north is a row decrease) and dy maps to the column
// offset.
func landingCell(source weatherfeed.Cell, dxFt, dyFt, cellSize float64) weatherfeed.Cell {
	step := cellSize / 2
	offI := int(dxFt / step)
	offJ := int(dyFt / step)
	return weatherfeed.Cell{I: source.I + offI, J: source.J + offJ}
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }

// Gate draws the per-cell uniform landing gate and reports whether a spot
// ignition fires, given the cell's aggregated spot probability.
func (m *Model) Gate(pSpot float64) bool {
	u := m.rng.Float01()
	return pSpot > u
}
