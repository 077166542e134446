package fuelmodel

import "math"

// SpreadInfoMin is the no-wind, no-slope spread state computed once per
// (fuel model, moisture) pair and reused for every azimuth and wind/slope
// combination a trajectory needs.
type SpreadInfoMin struct {
	ResidenceTime        float64 // min
	ReactionIntensity    float64 // Btu/ft^2/min
	R0                   float64 // ft/min, no-wind no-slope spread rate
	Sigma                float64 // characteristic surface-area-to-volume ratio, 1/ft
	Beta                 float64 // packing ratio
	BetaOp               float64 // optimum packing ratio
	PropagatingFluxRatio float64
	HeatSink             float64 // Btu/ft^3
}

// SpreadInfoMax is the wind/slope-adjusted maximum spread state: the
// direction and magnitude of fastest spread, and the ellipse eccentricity
// used to project the rate onto any other azimuth.
type SpreadInfoMax struct {
	MaxSpreadRate     float64 // ft/min
	MaxSpreadDirection float64 // degrees clockwise from north
	Eccentricity      float64
}

type weightedClass struct {
	load     float64
	sav      float64
	moisture float64
}

// RothermelNoWindNoSlope computes the baseline surface fire spread state for
// a moisturized fuel model, per spec §4.1.
func RothermelNoWindNoSlope(fm FuelModel) SpreadInfoMin {
	if fm.Nonburnable || fm.Depth <= 0 {
		return SpreadInfoMin{}
	}

	dead := []weightedClass{
		{fm.Dead1Hr.Load, fm.Dead1Hr.SAV, fm.Moisture.Dead1Hr},
		{fm.Dead10Hr.Load, fm.Dead10Hr.SAV, fm.Moisture.Dead10Hr},
		{fm.Dead100Hr.Load, fm.Dead100Hr.SAV, fm.Moisture.Dead100Hr},
	}
	live := []weightedClass{
		{fm.LiveHerb.Load, fm.LiveHerb.SAV, fm.Moisture.LiveHerb},
		{fm.LiveWoody.Load, fm.LiveWoody.SAV, fm.Moisture.LiveWoody},
	}

	areaOf := func(c weightedClass) float64 {
		if c.load <= 0 || c.sav <= 0 {
			return 0
		}
		return c.load * c.sav / particleDensity
	}

	var sumADead, sumALive float64
	deadAreas := make([]float64, len(dead))
	liveAreas := make([]float64, len(live))
	for i, c := range dead {
		deadAreas[i] = areaOf(c)
		sumADead += deadAreas[i]
	}
	for i, c := range live {
		liveAreas[i] = areaOf(c)
		sumALive += liveAreas[i]
	}
	sumA := sumADead + sumALive
	if sumA <= 0 {
		return SpreadInfoMin{}
	}

	weightedSAV := func(classes []weightedClass, areas []float64, sumArea float64) float64 {
		if sumArea <= 0 {
			return 0
		}
		var s float64
		for i, c := range classes {
			s += (areas[i] / sumArea) * c.sav
		}
		return s
	}
	sigmaDead := weightedSAV(dead, deadAreas, sumADead)
	sigmaLive := weightedSAV(live, liveAreas, sumALive)
	fDeadTotal := sumADead / sumA
	fLiveTotal := sumALive / sumA
	sigma := fDeadTotal*sigmaDead + fLiveTotal*sigmaLive
	if sigma <= 0 {
		return SpreadInfoMin{}
	}

	var totalLoad float64
	for _, c := range dead {
		totalLoad += c.load
	}
	for _, c := range live {
		totalLoad += c.load
	}
	rhoB := totalLoad / fm.Depth
	beta := rhoB / particleDensity
	betaOp := 3.348 * math.Pow(sigma, -0.8189)
	if betaOp <= 0 {
		betaOp = 1e-9
	}

	sigma15 := math.Pow(sigma, 1.5)
	gammaMax := sigma15 / (495 + 0.0594*sigma15)
	aExp := 133 * math.Pow(sigma, -0.7913)
	ratio := beta / betaOp
	gammaPrime := gammaMax * math.Pow(ratio, aExp) * math.Exp(aExp*(1-ratio))

	weightedMoisture := func(classes []weightedClass, areas []float64, sumArea float64) float64 {
		if sumArea <= 0 {
			return 0
		}
		var m float64
		for i, c := range classes {
			m += (areas[i] / sumArea) * c.moisture
		}
		return m
	}
	mfDead := weightedMoisture(dead, deadAreas, sumADead)
	mfLive := weightedMoisture(live, liveAreas, sumALive)

	mxDead := fm.ExtinctionMoisture
	if mxDead <= 0 {
		mxDead = 0.01
	}
	mxLive := liveExtinctionMoisture(dead, live, mfDead, mxDead)

	etaMDead := moistureDamping(mfDead, mxDead)
	etaMLive := moistureDamping(mfLive, mxLive)
	if sumALive <= 0 {
		etaMLive = 0
	}

	etaS := 0.174 * math.Pow(effectiveMineralContent, -0.19)

	netLoadFactor := 1 - totalMineralContent
	var loadDead, loadLive float64
	for _, c := range dead {
		loadDead += c.load
	}
	for _, c := range live {
		loadLive += c.load
	}
	wnDead := loadDead * netLoadFactor
	wnLive := loadLive * netLoadFactor

	reactionIntensity := gammaPrime * fm.HeatContent * (wnDead*etaMDead*etaS + wnLive*etaMLive*etaS)

	xi := math.Pow(192+0.2595*sigma, -1) * math.Exp((0.792+0.681*math.Sqrt(sigma))*(beta+0.1))

	all := append(append([]weightedClass{}, dead...), live...)
	allAreas := append(append([]float64{}, deadAreas...), liveAreas...)
	var heatSink float64
	for i, c := range all {
		if c.sav <= 0 {
			continue
		}
		f := allAreas[i] / sumA
		epsilon := math.Exp(-138 / c.sav)
		qig := 250 + 1116*c.moisture
		heatSink += f * epsilon * qig
	}
	heatSink *= rhoB

	var r0 float64
	if heatSink > 0 {
		r0 = reactionIntensity * xi / heatSink
	}
	r0 = clampNonNegative(r0)

	residenceTime := 384 / sigma

	return SpreadInfoMin{
		ResidenceTime:        residenceTime,
		ReactionIntensity:    clampNonNegative(reactionIntensity),
		R0:                   r0,
		Sigma:                sigma,
		Beta:                 beta,
		BetaOp:               betaOp,
		PropagatingFluxRatio: xi,
		HeatSink:             heatSink,
	}
}

// liveExtinctionMoisture implements the classic Rothermel/Albini dynamic
// live fuel moisture of extinction, clamped to never fall below the dead
// fuel's extinction moisture.
func liveExtinctionMoisture(dead, live []weightedClass, mfDeadFine, mxDead float64) float64 {
	var wPrimeDead, wPrimeLive float64
	for _, c := range dead {
		if c.sav <= 0 {
			continue
		}
		wPrimeDead += c.load * math.Exp(-138/c.sav)
	}
	for _, c := range live {
		if c.sav <= 0 {
			continue
		}
		wPrimeLive += c.load * math.Exp(-500/c.sav)
	}
	if wPrimeLive <= 0 {
		return mxDead
	}
	mx := 2.9*(wPrimeDead/wPrimeLive)*(1-mfDeadFine/mxDead) - 0.226
	if mx < mxDead {
		mx = mxDead
	}
	return mx
}

func moistureDamping(mf, mx float64) float64 {
	if mx <= 0 {
		return 0
	}
	r := mf / mx
	if r > 1 {
		r = 1
	}
	if r < 0 {
		r = 0
	}
	eta := 1 - 2.59*r + 5.11*r*r - 3.52*r*r*r
	if eta < 0 {
		eta = 0
	}
	if eta > 1 {
		eta = 1
	}
	return eta
}

// WindAdjustmentFactor computes the standard sheltered/unsheltered midflame
// wind adjustment factor from fuel bed depth and canopy structure (spec §4.1).
func WindAdjustmentFactor(depth, canopyHeight, canopyCover float64) float64 {
	if depth <= 0 {
		depth = 0.1
	}
	if canopyCover > 5 && canopyHeight > 0 {
		f := canopyCover / 100.0
		denom := math.Sqrt(f*canopyHeight*depth) * math.Log((20+0.36*canopyHeight)/(0.13*canopyHeight))
		if denom <= 0 {
			return 0
		}
		return clampUnit(0.555 / denom)
	}
	denom := math.Log((20 + 0.36*depth) / (0.13 * depth))
	if denom <= 0 {
		return 0
	}
	return clampUnit(1.83 / denom)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// RothermelMax applies wind and slope effects to the no-wind/no-slope spread
// state, returning the direction and rate of maximum spread (spec §4.1).
// Aspect is taken as the azimuth of the upslope direction, degrees clockwise
// from north.
func RothermelMax(min SpreadInfoMin, midflameWind, windFromDirection, slope, aspect, ellipseAdjustmentFactor float64) SpreadInfoMax {
	if min.R0 <= 0 {
		return SpreadInfoMax{}
	}

	sigma := min.Sigma
	beta := min.Beta
	betaOp := min.BetaOp

	c := 7.47 * math.Exp(-0.133*math.Pow(sigma, 0.55))
	b := 0.02526 * math.Pow(sigma, 0.54)
	e := 0.715 * math.Exp(-0.000359*sigma)
	ratio := beta / betaOp
	var phiW float64
	if midflameWind > 0 && ratio > 0 {
		phiW = c * math.Pow(midflameWind, b) * math.Pow(ratio, -e)
	}

	phiS := 5.275 * math.Pow(maxFloat(beta, 1e-9), -0.3) * slope * slope

	windToDirection := math.Mod(windFromDirection+180, 360)
	windRad := degToRad(windToDirection)
	slopeRad := degToRad(aspect)

	x := phiW*math.Sin(windRad) + phiS*math.Sin(slopeRad)
	y := phiW*math.Cos(windRad) + phiS*math.Cos(slopeRad)
	phiCombined := math.Hypot(x, y)

	direction := windToDirection
	if phiCombined > 1e-12 {
		direction = math.Mod(radToDeg(math.Atan2(x, y))+360, 360)
	}

	maxRate := clampNonNegative(min.R0 * (1 + phiCombined))

	effectiveWindMph := (midflameWind / 88.0) * ellipseAdjustmentFactor
	lwr := 1.0 + 0.25*effectiveWindMph
	if lwr < 1 {
		lwr = 1
	}
	ecc := math.Sqrt(lwr*lwr-1) / lwr

	return SpreadInfoMax{
		MaxSpreadRate:      maxRate,
		MaxSpreadDirection: direction,
		Eccentricity:       ecc,
	}
}

// RothermelAny projects the maximum spread rate onto an arbitrary azimuth
// using the standard elliptical projection (spec §4.1).
func RothermelAny(max SpreadInfoMax, azimuth float64) float64 {
	if max.MaxSpreadRate <= 0 {
		return 0
	}
	delta := degToRad(azimuth - max.MaxSpreadDirection)
	ecc := max.Eccentricity
	denom := 1 - ecc*math.Cos(delta)
	if denom <= 1e-9 {
		denom = 1e-9
	}
	return clampNonNegative(max.MaxSpreadRate * (1 - ecc) / denom)
}

// ByramIntensity computes fire-line intensity in Btu/(ft*s) from reaction
// intensity (Btu/ft^2/min) and flame depth (ft).
func ByramIntensity(reactionIntensity, flameDepth float64) float64 {
	return clampNonNegative(reactionIntensity * flameDepth / 60.0)
}

// ByramFlameLength computes flame length in feet from fire-line intensity
// in Btu/(ft*s), per Byram (1959).
func ByramFlameLength(intensity float64) float64 {
	if intensity <= 0 {
		return 0
	}
	return 0.45 * math.Pow(intensity, 0.46)
}

// AndersonFlameDepth computes the flaming front depth in feet from spread
// rate (ft/min) and residence time (min), per Anderson (1969).
func AndersonFlameDepth(rate, residenceTime float64) float64 {
	return clampNonNegative(rate * residenceTime)
}

func degToRad(d float64) float64 { return d * math.Pi / 180.0 }
func radToDeg(r float64) float64 { return r * 180.0 / math.Pi }
func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
