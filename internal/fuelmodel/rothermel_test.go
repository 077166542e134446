package fuelmodel

import "testing"

func TestBuildFuelModelNonburnable(t *testing.T) {
	for _, n := range []int{0, -1, 91, 95, 99} {
		fm := BuildFuelModel(n)
		if !fm.Nonburnable {
			t.Errorf("BuildFuelModel(%d).Nonburnable = false, want true", n)
		}
	}
}

func TestBuildFuelModelStandardTable(t *testing.T) {
	fm := BuildFuelModel(1)
	if fm.Nonburnable || fm.Defaulted {
		t.Fatalf("fuel model 1 should be a valid standard table entry, got %+v", fm)
	}
	if fm.Dead1Hr.Load <= 0 {
		t.Fatalf("fuel model 1 should have nonzero 1-hr load")
	}
}

func TestBuildFuelModelOutOfTableDefaults(t *testing.T) {
	fm := BuildFuelModel(200)
	if fm.Nonburnable {
		t.Fatalf("200 should not be nonburnable")
	}
	if !fm.Defaulted {
		t.Fatalf("200 should be flagged Defaulted")
	}
	if fm.Number != 200 {
		t.Fatalf("Number should retain the requested code 200, got %d", fm.Number)
	}
	if fm.Dead1Hr.Load != standardTable[1].Dead1Hr.Load {
		t.Fatalf("defaulted model should reuse model 1 coefficients")
	}
}

func TestRothermelNoWindNoSlopePositiveForGrass(t *testing.T) {
	fm := Moisturize(BuildFuelModel(1), FuelMoisture{Dead1Hr: 0.06})
	min := RothermelNoWindNoSlope(fm)
	if min.R0 <= 0 {
		t.Fatalf("expected positive no-wind no-slope spread rate, got %v", min.R0)
	}
	if min.ResidenceTime <= 0 {
		t.Fatalf("expected positive residence time, got %v", min.ResidenceTime)
	}
}

func TestRothermelNoWindNoSlopeDrierIsFaster(t *testing.T) {
	dry := Moisturize(BuildFuelModel(1), FuelMoisture{Dead1Hr: 0.04})
	wet := Moisturize(BuildFuelModel(1), FuelMoisture{Dead1Hr: 0.20})
	rDry := RothermelNoWindNoSlope(dry).R0
	rWet := RothermelNoWindNoSlope(wet).R0
	if rDry <= rWet {
		t.Fatalf("drier fuel should spread faster: dry=%v wet=%v", rDry, rWet)
	}
}

func TestRothermelNoWindNoSlopeNonburnableIsZero(t *testing.T) {
	fm := Moisturize(BuildFuelModel(91), FuelMoisture{Dead1Hr: 0.06})
	min := RothermelNoWindNoSlope(fm)
	if min.R0 != 0 {
		t.Fatalf("nonburnable fuel model should produce zero spread rate, got %v", min.R0)
	}
}

func TestRothermelMaxIncreasesWithWind(t *testing.T) {
	fm := Moisturize(BuildFuelModel(1), FuelMoisture{Dead1Hr: 0.06})
	min := RothermelNoWindNoSlope(fm)
	calm := RothermelMax(min, 0, 0, 0, 0, 1.0)
	windy := RothermelMax(min, 500, 270, 0, 0, 1.0)
	if windy.MaxSpreadRate <= calm.MaxSpreadRate {
		t.Fatalf("wind should increase max spread rate: calm=%v windy=%v", calm.MaxSpreadRate, windy.MaxSpreadRate)
	}
}

func TestRothermelAnyMatchesMaxAtMaxDirection(t *testing.T) {
	max := SpreadInfoMax{MaxSpreadRate: 10, MaxSpreadDirection: 90, Eccentricity: 0.6}
	rate := RothermelAny(max, 90)
	if diff := rate - max.MaxSpreadRate; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("rate along max direction should equal MaxSpreadRate, got %v want %v", rate, max.MaxSpreadRate)
	}
}

func TestRothermelAnyOppositeDirectionIsSlowest(t *testing.T) {
	max := SpreadInfoMax{MaxSpreadRate: 10, MaxSpreadDirection: 90, Eccentricity: 0.6}
	forward := RothermelAny(max, 90)
	backward := RothermelAny(max, 270)
	if backward >= forward {
		t.Fatalf("opposite-direction rate should be less than forward rate: backward=%v forward=%v", backward, forward)
	}
}

func TestWindAdjustmentFactorInRange(t *testing.T) {
	waf := WindAdjustmentFactor(1.0, 0, 0)
	if waf <= 0 || waf > 1 {
		t.Fatalf("WAF out of expected (0,1] range: %v", waf)
	}
	sheltered := WindAdjustmentFactor(1.0, 40, 70)
	if sheltered <= 0 || sheltered > 1 {
		t.Fatalf("sheltered WAF out of expected (0,1] range: %v", sheltered)
	}
	if sheltered >= waf {
		t.Fatalf("canopy should shelter and reduce WAF relative to open: sheltered=%v open=%v", sheltered, waf)
	}
}

func TestByramFlameLengthMonotonic(t *testing.T) {
	low := ByramFlameLength(10)
	high := ByramFlameLength(1000)
	if high <= low {
		t.Fatalf("flame length should increase with intensity: low=%v high=%v", low, high)
	}
	if ByramFlameLength(0) != 0 {
		t.Fatalf("zero intensity should produce zero flame length")
	}
}

func TestAndersonFlameDepth(t *testing.T) {
	if got := AndersonFlameDepth(10, 2); got != 20 {
		t.Fatalf("AndersonFlameDepth(10,2) = %v, want 20", got)
	}
}

func TestCacheReusesComputation(t *testing.T) {
	cache := NewCache(0)
	fm := Moisturize(BuildFuelModel(1), FuelMoisture{Dead1Hr: 0.06})
	_, first := cache.NoWindNoSlope(fm)
	_, second := cache.NoWindNoSlope(fm)
	if first.R0 != second.R0 {
		t.Fatalf("cached results should be identical: %v != %v", first.R0, second.R0)
	}
}

func TestCacheQuantizesMoisture(t *testing.T) {
	cache := NewCache(0)
	a := Moisturize(BuildFuelModel(1), FuelMoisture{Dead1Hr: 0.060000001})
	b := Moisturize(BuildFuelModel(1), FuelMoisture{Dead1Hr: 0.060000002})
	_, ra := cache.NoWindNoSlope(a)
	_, rb := cache.NoWindNoSlope(b)
	if ra.R0 != rb.R0 {
		t.Fatalf("moisture quantization should merge near-identical draws into one cache entry")
	}
	if len(cache.entries) != 1 {
		t.Fatalf("expected a single cache entry after quantization, got %d", len(cache.entries))
	}
}
