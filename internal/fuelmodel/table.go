package fuelmodel

// tonsPerAcreToLbPerSqFt converts the standard fuel-model loading unit
// (tons/acre) to the lb/ft^2 unit the Rothermel equations use.
const tonsPerAcreToLbPerSqFt = 2000.0 / 43560.0

func lbft2(tonsPerAcre float64) float64 {
	return tonsPerAcre * tonsPerAcreToLbPerSqFt
}

// standardHeatContent is shared by all 13 standard fuel models.
const standardHeatContent = 8000.0

// standardTable holds the 13 standard (Anderson 1982 / NFFL) fuel models,
// the static tables the spec treats as data consumed by, never derived by,
// this engine (spec §1 Non-goals: "no reanalysis of fuel model
// coefficients").
var standardTable = map[int]FuelModel{
	1: {Number: 1,
		Dead1Hr: FuelClass{Load: lbft2(0.74), SAV: 3500},
		Depth:   1.0, HeatContent: standardHeatContent, ExtinctionMoisture: 0.12},
	2: {Number: 2,
		Dead1Hr: FuelClass{Load: lbft2(2.00), SAV: 3000},
		Dead10Hr: FuelClass{Load: lbft2(1.00), SAV: 109},
		Dead100Hr: FuelClass{Load: lbft2(0.50), SAV: 30},
		LiveHerb: FuelClass{Load: lbft2(0.50), SAV: 1500},
		Depth: 1.0, HeatContent: standardHeatContent, ExtinctionMoisture: 0.15},
	3: {Number: 3,
		Dead1Hr: FuelClass{Load: lbft2(3.01), SAV: 1500},
		Depth:   2.5, HeatContent: standardHeatContent, ExtinctionMoisture: 0.25},
	4: {Number: 4,
		Dead1Hr: FuelClass{Load: lbft2(5.01), SAV: 2000},
		Dead10Hr: FuelClass{Load: lbft2(4.01), SAV: 109},
		Dead100Hr: FuelClass{Load: lbft2(2.00), SAV: 30},
		LiveWoody: FuelClass{Load: lbft2(5.01), SAV: 1500},
		Depth: 6.0, HeatContent: standardHeatContent, ExtinctionMoisture: 0.20},
	5: {Number: 5,
		Dead1Hr: FuelClass{Load: lbft2(1.00), SAV: 2000},
		Dead10Hr: FuelClass{Load: lbft2(0.50), SAV: 109},
		LiveWoody: FuelClass{Load: lbft2(2.00), SAV: 1500},
		Depth: 2.0, HeatContent: standardHeatContent, ExtinctionMoisture: 0.20},
	6: {Number: 6,
		Dead1Hr: FuelClass{Load: lbft2(1.50), SAV: 1750},
		Dead10Hr: FuelClass{Load: lbft2(2.50), SAV: 109},
		Dead100Hr: FuelClass{Load: lbft2(2.00), SAV: 30},
		Depth: 2.5, HeatContent: standardHeatContent, ExtinctionMoisture: 0.25},
	7: {Number: 7,
		Dead1Hr: FuelClass{Load: lbft2(1.13), SAV: 1750},
		Dead10Hr: FuelClass{Load: lbft2(1.87), SAV: 109},
		Dead100Hr: FuelClass{Load: lbft2(1.50), SAV: 30},
		LiveWoody: FuelClass{Load: lbft2(0.37), SAV: 1550},
		Depth: 2.5, HeatContent: standardHeatContent, ExtinctionMoisture: 0.40},
	8: {Number: 8,
		Dead1Hr: FuelClass{Load: lbft2(1.50), SAV: 2000},
		Dead10Hr: FuelClass{Load: lbft2(1.00), SAV: 109},
		Dead100Hr: FuelClass{Load: lbft2(2.50), SAV: 30},
		Depth: 0.2, HeatContent: standardHeatContent, ExtinctionMoisture: 0.30},
	9: {Number: 9,
		Dead1Hr: FuelClass{Load: lbft2(2.92), SAV: 2500},
		Dead10Hr: FuelClass{Load: lbft2(0.41), SAV: 109},
		Dead100Hr: FuelClass{Load: lbft2(0.15), SAV: 30},
		Depth: 0.2, HeatContent: standardHeatContent, ExtinctionMoisture: 0.25},
	10: {Number: 10,
		Dead1Hr: FuelClass{Load: lbft2(3.01), SAV: 2000},
		Dead10Hr: FuelClass{Load: lbft2(2.00), SAV: 109},
		Dead100Hr: FuelClass{Load: lbft2(5.01), SAV: 30},
		LiveWoody: FuelClass{Load: lbft2(2.00), SAV: 1500},
		Depth: 1.0, HeatContent: standardHeatContent, ExtinctionMoisture: 0.25},
	11: {Number: 11,
		Dead1Hr: FuelClass{Load: lbft2(1.50), SAV: 1500},
		Dead10Hr: FuelClass{Load: lbft2(4.51), SAV: 109},
		Dead100Hr: FuelClass{Load: lbft2(5.51), SAV: 30},
		Depth: 1.0, HeatContent: standardHeatContent, ExtinctionMoisture: 0.15},
	12: {Number: 12,
		Dead1Hr: FuelClass{Load: lbft2(4.01), SAV: 1500},
		Dead10Hr: FuelClass{Load: lbft2(14.03), SAV: 109},
		Dead100Hr: FuelClass{Load: lbft2(16.55), SAV: 30},
		Depth: 2.3, HeatContent: standardHeatContent, ExtinctionMoisture: 0.20},
	13: {Number: 13,
		Dead1Hr: FuelClass{Load: lbft2(7.01), SAV: 1500},
		Dead10Hr: FuelClass{Load: lbft2(23.04), SAV: 109},
		Dead100Hr: FuelClass{Load: lbft2(28.05), SAV: 30},
		Depth: 3.0, HeatContent: standardHeatContent, ExtinctionMoisture: 0.25},
}

// isNonburnableCode reports whether n falls in the reserved barrier range
// (91..99) or is non-positive (spec §3, §8 "Non-burnable immunity"). Codes
// above 256 are not treated as nonburnable here.
func isNonburnableCode(n int) bool {
	return n <= 0 || (n >= 91 && n <= 99)
}

// BuildFuelModel looks up the fixed coefficients for fuel model n. Codes in
// [91,99] and non-positive codes return a Nonburnable model. Codes outside
// the standard table (including 14..90 and 100..256, not modeled here) fall
// back to fuel model 1's coefficients with Defaulted set, so callers can log
// a warning rather than silently fabricating physics for an unknown code.
func BuildFuelModel(n int) FuelModel {
	if isNonburnableCode(n) {
		return FuelModel{Number: n, Nonburnable: true}
	}
	if fm, ok := standardTable[n]; ok {
		return fm
	}
	fm := standardTable[1]
	fm.Number = n
	fm.Defaulted = true
	return fm
}
