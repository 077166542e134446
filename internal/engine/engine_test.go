package engine

import (
	"context"
	"errors"
	"math"
	"testing"

	"firecast/internal/diagnostics"
	"firecast/internal/weatherfeed"
	"firecast/pkg/grid"
)

func uniformLandscape(rows, cols int, fuelModel float64) *weatherfeed.Landscape {
	elevation := grid.NewFloat64(rows, cols)
	slope := grid.NewFloat64(rows, cols)
	aspect := grid.NewFloat64(rows, cols)
	fm := grid.NewFloat64(rows, cols)
	fm.Fill(fuelModel)
	canopyHeight := grid.NewFloat64(rows, cols)
	canopyBaseHeight := grid.NewFloat64(rows, cols)
	crownBulkDensity := grid.NewFloat64(rows, cols)
	canopyCover := grid.NewFloat64(rows, cols)

	return &weatherfeed.Landscape{
		NumRows: rows, NumCols: cols, CellSize: 30,
		Elevation: elevation, Slope: slope, Aspect: aspect, FuelModel: fm,
		CanopyHeight: canopyHeight, CanopyBaseHeight: canopyBaseHeight,
		CrownBulkDensity: crownBulkDensity, CanopyCover: canopyCover,
	}
}

func testWeather() weatherfeed.WeatherInputs {
	return weatherfeed.WeatherInputs{
		Temperature:       weatherfeed.ScalarVariable(80),
		RelativeHumidity:  weatherfeed.ScalarVariable(25),
		WindSpeed20ft:     weatherfeed.ScalarVariable(10),
		WindFromDirection: weatherfeed.ScalarVariable(270),
	}
}

func testInputs() SimulationInputs {
	return SimulationInputs{
		Landscape:               uniformLandscape(9, 9, 1),
		Weather:                testWeather(),
		MaxRuntime:              120,
		EllipseAdjustmentFactor: 1.0,
		FoliarMoisture:          0.9,
		RandomSeed:              42,
	}
}

func TestValidateRejectsNilLandscape(t *testing.T) {
	in := testInputs()
	in.Landscape = nil
	if _, err := Run(context.Background(), in, PointIgnition(weatherfeed.Cell{I: 4, J: 4})); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestValidateRejectsNonPositiveMaxRuntime(t *testing.T) {
	in := testInputs()
	in.MaxRuntime = 0
	if _, err := Run(context.Background(), in, PointIgnition(weatherfeed.Cell{I: 4, J: 4})); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestValidateRejectsMismatchedLayerDimensions(t *testing.T) {
	in := testInputs()
	in.Landscape.Slope = grid.NewFloat64(3, 3)
	if _, err := Run(context.Background(), in, PointIgnition(weatherfeed.Cell{I: 4, J: 4})); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestValidateRejectsNonFiniteLayerValue(t *testing.T) {
	in := testInputs()
	in.Landscape.Elevation.Set(1, 1, math.NaN())
	if _, err := Run(context.Background(), in, PointIgnition(weatherfeed.Cell{I: 4, J: 4})); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPointIgnitionSucceedsOnBurnableInteriorCell(t *testing.T) {
	in := testInputs()
	result, err := Run(context.Background(), in, PointIgnition(weatherfeed.Cell{I: 4, J: 4}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.IgnitedCells) == 0 {
		t.Fatalf("expected at least the seeded cell to be ignited")
	}
	if result.FireSpread.At(4, 4) != 1.0 {
		t.Fatalf("expected ignition cell to read fire_spread=1.0, got %v", result.FireSpread.At(4, 4))
	}
	if result.RunID == "" {
		t.Fatalf("expected a non-empty run id")
	}
}

func TestPointIgnitionOutOfBoundsIsRejected(t *testing.T) {
	in := testInputs()
	result, err := Run(context.Background(), in, PointIgnition(weatherfeed.Cell{I: 99, J: 99}))
	if err != nil {
		t.Fatalf("ignition rejection must not surface as an error, got %v", err)
	}
	if len(result.IgnitedCells) != 0 {
		t.Fatalf("expected an empty result, got %d ignited cells", len(result.IgnitedCells))
	}
	if result.FireSpread.At(0, 0) != 0 {
		t.Fatalf("expected an untouched fire_spread raster")
	}
}

func TestPointIgnitionOnNonBurnableCellIsRejected(t *testing.T) {
	in := testInputs()
	in.Landscape.FuelModel.Set(4, 4, 91) // non-burnable per the glossary range
	result, err := Run(context.Background(), in, PointIgnition(weatherfeed.Cell{I: 4, J: 4}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.IgnitedCells) != 0 {
		t.Fatalf("expected rejection, got %d ignited cells", len(result.IgnitedCells))
	}
}

func TestPerimeterIgnitionSeedsNonzeroCellsWithBurnTimeMinusOne(t *testing.T) {
	in := testInputs()
	perim := grid.NewFloat64(in.Landscape.NumRows, in.Landscape.NumCols)
	perim.Set(3, 3, 1.0)
	perim.Set(3, 4, 1.0)

	result, err := Run(context.Background(), in, PerimeterIgnition(perim))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.BurnTime.At(3, 3) != -1.0 {
		t.Fatalf("expected perimeter-seeded cell to carry burn_time=-1, got %v", result.BurnTime.At(3, 3))
	}
	if result.FlameLength.At(3, 3) != -1.0 || result.FireLineIntensity.At(3, 3) != -1.0 {
		t.Fatalf("expected perimeter-seeded cell to carry flame_length=-1 and fire_line_intensity=-1")
	}
}

func TestPerimeterIgnitionWithNoNonzeroCellsIsRejected(t *testing.T) {
	in := testInputs()
	perim := grid.NewFloat64(in.Landscape.NumRows, in.Landscape.NumCols)
	result, err := Run(context.Background(), in, PerimeterIgnition(perim))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.IgnitedCells) != 0 {
		t.Fatalf("expected an empty result for an all-zero perimeter")
	}
}

func TestRandomIgnitionPicksABurnableCell(t *testing.T) {
	in := testInputs()
	result, err := Run(context.Background(), in, RandomIgnition())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.IgnitedCells) == 0 {
		t.Fatalf("expected random ignition to succeed on an all-burnable landscape")
	}
}

func TestRunIsDeterministicForAFixedSeed(t *testing.T) {
	in := testInputs()
	r1, err := Run(context.Background(), in, PointIgnition(weatherfeed.Cell{I: 4, J: 4}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, err := Run(context.Background(), in, PointIgnition(weatherfeed.Cell{I: 4, J: 4}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r1.GlobalClock != r2.GlobalClock {
		t.Fatalf("expected identical global clock across runs with the same seed, got %v vs %v", r1.GlobalClock, r2.GlobalClock)
	}
	if !slicesEqual(r1.FireSpread.Data(), r2.FireSpread.Data()) {
		t.Fatalf("expected bit-identical fire_spread rasters across runs with the same seed")
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	in := testInputs()
	in.MaxRuntime = 1e9 // arbitrarily long so the kernel would otherwise keep stepping
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, in, PointIgnition(weatherfeed.Cell{I: 4, J: 4})); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDiagnosticsSnapshotPopulatedWhenRecorderWired(t *testing.T) {
	in := testInputs()
	diag := diagnostics.NewRecorderForTesting()
	result, err := Run(context.Background(), in, PointIgnition(weatherfeed.Cell{I: 4, J: 4}), WithDiagnostics(diag))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Diagnostics == nil {
		t.Fatalf("expected a non-nil diagnostics snapshot when a recorder is wired")
	}
	if result.Diagnostics.IgnitionEvents == 0 {
		t.Fatalf("expected at least one ignition event recorded")
	}
}

func TestDiagnosticsNilWhenRecorderNotWired(t *testing.T) {
	in := testInputs()
	result, err := Run(context.Background(), in, PointIgnition(weatherfeed.Cell{I: 4, J: 4}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Diagnostics != nil {
		t.Fatalf("expected a nil diagnostics snapshot when no recorder is wired")
	}
}

func slicesEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
