package crownfire

import "testing"

func TestVanWagnerInitiationLowCanopyCover(t *testing.T) {
	if VanWagnerInitiation(5, 1.0, 0.9, 100000) {
		t.Fatal("sparse canopy (cover<10) should never support crown initiation")
	}
}

func TestVanWagnerInitiationThreshold(t *testing.T) {
	low := VanWagnerInitiation(80, 3.0, 1.0, 10)
	high := VanWagnerInitiation(80, 3.0, 1.0, 100000)
	if low {
		t.Fatal("weak surface intensity should not initiate crown fire")
	}
	if !high {
		t.Fatal("very strong surface intensity should initiate crown fire")
	}
}

func TestVanWagnerInitiationLowerCBHEasierToIgnite(t *testing.T) {
	lowCBH := VanWagnerInitiation(80, 0.5, 0.9, 500)
	highCBH := VanWagnerInitiation(80, 10.0, 0.9, 500)
	if highCBH && !lowCBH {
		t.Fatal("lower canopy base height should be at least as easy to ignite as higher")
	}
}

func TestCruzCrownSpreadIncreasesWithWind(t *testing.T) {
	low := CruzCrownSpread(5, 0.05, 0.06)
	high := CruzCrownSpread(30, 0.05, 0.06)
	if high <= low {
		t.Fatalf("higher wind should increase crown spread rate: low=%v high=%v", low, high)
	}
}

func TestCruzCrownSpreadZeroWind(t *testing.T) {
	if got := CruzCrownSpread(0, 0.05, 0.06); got != 0 {
		t.Fatalf("zero wind should produce zero crown spread, got %v", got)
	}
}

func TestCrownFireEccentricityInRange(t *testing.T) {
	e := CrownFireEccentricity(20, 1.0)
	if e < 0 || e >= 1 {
		t.Fatalf("eccentricity out of expected [0,1) range: %v", e)
	}
}

func TestCrownFireLineIntensityRequiresAvailableDepth(t *testing.T) {
	if got := CrownFireLineIntensity(100, 0.05, 1.0, 1.0, 8000); got != 0 {
		t.Fatalf("zero available crown depth should yield zero intensity, got %v", got)
	}
}

func TestCrownFireLineIntensityPositive(t *testing.T) {
	got := CrownFireLineIntensity(100, 0.05, 40, 5, 8000)
	if got <= 0 {
		t.Fatalf("expected positive crown intensity, got %v", got)
	}
}
