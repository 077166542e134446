package spotting

import (
	"math"

	"firecast/internal/weatherfeed"
)

// schroederIgnitionTemperatureC is T_ig in Schroeder's heat-of-preignition
// formula: the standard 320°C ignition temperature.
const schroederIgnitionTemperatureC = 320.0

// SchroederIgnProb computes the Schroeder heat-of-preignition ignition
// probability from relative humidity (%) and temperature (°F), per spec
// §4.5.
func SchroederIgnProb(rh, temp float64) float64 {
	moisture := weatherfeed.FuelMoisture(rh, temp).Dead1Hr
	tc := fahrenheitToCelsius(temp)
	cf := 0.266 + 0.0016*(schroederIgnitionTemperatureC+tc)/2
	qig := (schroederIgnitionTemperatureC-tc)*cf + (100-tc)*moisture +
		18.54*(1-math.Exp(-15.1*moisture)) + 540*moisture

	x := (400 - qig) / 10
	if x < 0 {
		return 0
	}
	p := 4.8e-5 * math.Pow(x, 4.3) / 50
	if p < 0 || math.IsNaN(p) {
		return 0
	}
	return p
}

// Decay returns the distance-decay factor exp(-decayConstant * dist3d),
// per spec §9 Open Questions (the sign is negative; older revisions with a
// positive sign were a documented bug).
func Decay(decayConstant, dist3d float64) float64 {
	return math.Exp(-decayConstant * dist3d)
}

// SpotProbability aggregates the per-firebrand Schroeder probability over
// k firebrands landed in the same cell: 1 - (1 - p*decay)^k.
func SpotProbability(pSchroeder, decay float64, k int) float64 {
	if k <= 0 {
		return 0
	}
	base := 1 - pSchroeder*decay
	if base < 0 {
		base = 0
	}
	return 1 - math.Pow(base, float64(k))
}

// tIgnite physical constants, per spec §4.5.
const (
	firebrandDiameterM  = 0.003
	firebrandZMaxFactor = 0.39 * firebrandDiameterM * 1e5
	tIgniteA            = 5.963
	tIgniteB            = tIgniteA - 1.4
)

// TIgnite computes the minute at which a pending spot ignition becomes
// eligible, from the current global clock, the triggering flame length
// (ft), and the 20-ft wind speed (mi/h).
func TIgnite(globalClock, flameLengthFt, windSpeed20ft float64) float64 {
	flameLengthM := flameLengthFt * 0.3048
	if flameLengthM <= 0 {
		return globalClock
	}
	windSI := windSpeed20ft * mphToMps
	if windSI <= 0 {
		windSI = 1e-6
	}

	inner := (tIgniteB + firebrandZMaxFactor/flameLengthM) / tIgniteA
	if inner < 0 {
		inner = 0
	}
	seconds := 2*flameLengthM/windSI + 1.2 + (tIgniteA/3)*math.Pow(inner, 1.5) - tIgniteA/3
	tMaxHeightMin := secToMin(seconds)
	return globalClock + 2*tMaxHeightMin + 20
}

func secToMin(s float64) float64 { return s / 60.0 }
