package weatherfeed

import "firecast/internal/fuelmodel"

// FuelMoisture derives dead and live fuel moisture fractions from relative
// humidity (%) and temperature (°F) via equilibrium moisture content (spec
// §4.3), using the standard three-branch piecewise EMC formula (Simard
// 1968 / Fosberg & Deeming).
func FuelMoisture(rh, temp float64) fuelmodel.FuelMoisture {
	emc := equilibriumMoistureContent(rh, temp) / 30.0
	return fuelmodel.FuelMoisture{
		Dead1Hr:   emc + 0.002,
		Dead10Hr:  emc + 0.015,
		Dead100Hr: emc + 0.025,
		LiveHerb:  emc * 2.0,
		LiveWoody: emc * 0.5,
	}
}

func equilibriumMoistureContent(rh, temp float64) float64 {
	switch {
	case rh < 10:
		return 0.03229 + 0.281073*rh - 0.000578*rh*temp
	case rh < 50:
		return 2.22749 + 0.160107*rh - 0.01478*temp
	default:
		return 21.0606 + 0.005565*rh*rh - 0.00035*rh*temp - 0.483199*rh
	}
}
