package spotting

import (
	"testing"

	"firecast/internal/weatherfeed"
	"firecast/pkg/grid"
	"firecast/pkg/xrand"
)

func testLandscape() *weatherfeed.Landscape {
	fm := grid.NewFloat64(10, 10)
	fm.Fill(1)
	elev := grid.NewFloat64(10, 10)
	return &weatherfeed.Landscape{
		NumRows: 10, NumCols: 10, CellSize: 30,
		FuelModel: fm,
		Elevation: elev,
	}
}

func TestCrownSpotFireAlwaysFiresAtCertainty(t *testing.T) {
	m := NewModel(Config{CrownFireSpottingPercent: PercentSpec{Fixed: 1.0}}, xrand.New(1))
	if !m.CrownSpotFire() {
		t.Fatal("percent 1.0 should always fire (p >= uniform(0,1) is always true)")
	}
}

func TestCrownSpotFireNeverFiresAtZero(t *testing.T) {
	m := NewModel(Config{CrownFireSpottingPercent: PercentSpec{Fixed: 0.0}}, xrand.New(1))
	for i := 0; i < 20; i++ {
		if m.CrownSpotFire() {
			t.Fatal("percent 0.0 should essentially never fire")
		}
	}
}

func TestSurfaceSpotFireDisabledWithoutConfig(t *testing.T) {
	m := NewModel(Config{}, xrand.New(1))
	if m.SurfaceSpotFire(1, 100000) {
		t.Fatal("surface spotting should be disabled without SurfaceFireSpotting configured")
	}
}

func TestSurfaceSpotFireRequiresCriticalIntensity(t *testing.T) {
	cfg := Config{SurfaceFireSpotting: &SurfaceFireSpotting{
		CriticalFireLineIntensity: 1000,
		Table:                     []SurfaceSpotEntry{{Range: FuelModelRange{1, 1}, Percent: 1.0}},
	}}
	m := NewModel(cfg, xrand.New(1))
	if m.SurfaceSpotFire(1, 500) {
		t.Fatal("intensity below critical threshold should not fire")
	}
	if !m.SurfaceSpotFire(1, 5000) {
		t.Fatal("intensity above critical threshold with percent 1.0 should fire")
	}
}

func TestSurfaceSpotTableLaterEntriesOverride(t *testing.T) {
	cfg := &SurfaceFireSpotting{
		CriticalFireLineIntensity: 0,
		Table: []SurfaceSpotEntry{
			{Range: FuelModelRange{1, 10}, Percent: 0.0},
			{Range: FuelModelRange{5, 15}, Percent: 1.0},
		},
	}
	if got := cfg.percentFor(7); got != 1.0 {
		t.Fatalf("overlapping range: later entry should override, got %v", got)
	}
	if got := cfg.percentFor(2); got != 0.0 {
		t.Fatalf("non-overlapping fuel model should use the only matching entry, got %v", got)
	}
	if got := cfg.percentFor(100); got != 0.0 {
		t.Fatalf("unmatched fuel model should default to 0, got %v", got)
	}
}

func TestDisperseProducesRequestedCount(t *testing.T) {
	cfg := Config{
		NumFirebrands:     NumFirebrandsSpec{Fixed: 50},
		AmbientGasDensity: 1.2,
		SpecificHeatGas:   1.1,
		DecayConstant:     0.005,
	}
	m := NewModel(cfg, xrand.New(42))
	ls := testLandscape()
	cells := m.Disperse(ls, weatherfeed.Cell{I: 5, J: 5}, 500, 20, 180, 70)
	if len(cells) != 50 {
		t.Fatalf("expected 50 firebrand landings, got %d", len(cells))
	}
}

func TestDisperseZeroFirebrandsYieldsNoCells(t *testing.T) {
	cfg := Config{NumFirebrands: NumFirebrandsSpec{Fixed: 0}, AmbientGasDensity: 1.2, SpecificHeatGas: 1.1}
	m := NewModel(cfg, xrand.New(1))
	ls := testLandscape()
	cells := m.Disperse(ls, weatherfeed.Cell{I: 5, J: 5}, 500, 20, 180, 70)
	if len(cells) != 0 {
		t.Fatalf("expected no landings, got %d", len(cells))
	}
}

func TestSchroederIgnProbIncreasesWithDrynessAndHeat(t *testing.T) {
	wet := SchroederIgnProb(80, 50)
	dry := SchroederIgnProb(10, 100)
	if dry <= wet {
		t.Fatalf("hotter, drier conditions should increase ignition probability: wet=%v dry=%v", wet, dry)
	}
}

func TestDecayDecreasesWithDistance(t *testing.T) {
	near := Decay(0.005, 10)
	far := Decay(0.005, 1000)
	if far >= near {
		t.Fatalf("decay should fall off with distance: near=%v far=%v", near, far)
	}
}

func TestSpotProbabilityAggregatesOverFirebrands(t *testing.T) {
	one := SpotProbability(0.1, 0.9, 1)
	many := SpotProbability(0.1, 0.9, 10)
	if many <= one {
		t.Fatalf("more firebrands landed should raise aggregate probability: one=%v many=%v", one, many)
	}
	if SpotProbability(0.1, 0.9, 0) != 0 {
		t.Fatal("zero firebrands should yield zero probability")
	}
}

func TestTIgniteAfterGlobalClock(t *testing.T) {
	ti := TIgnite(100, 5, 10)
	if ti <= 100 {
		t.Fatalf("ignition time should be strictly after the triggering clock, got %v", ti)
	}
}

func TestTIgniteZeroFlameLengthReturnsClock(t *testing.T) {
	if got := TIgnite(50, 0, 10); got != 50 {
		t.Fatalf("zero flame length should not schedule a future ignition, got %v", got)
	}
}
