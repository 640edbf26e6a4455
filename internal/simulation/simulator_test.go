package simulation

import (
	"errors"
	"math"
	"testing"

	"github.com/yourusername/cornerflag/internal/models"
)

func exampleParams() models.MatchParameters {
	return models.MatchParameters{
		HomeExpectedGoals:   1.5,
		AwayExpectedGoals:   1.1,
		HomeExpectedCorners: 5.2,
		AwayExpectedCorners: 4.6,
	}
}

func TestSimulateDeterministicWithSeed(t *testing.T) {
	first, err := Simulate(exampleParams(), models.DesignatedIsHome, Config{Iterations: 20000, Source: NewSource(42)})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	second, err := Simulate(exampleParams(), models.DesignatedIsHome, Config{Iterations: 20000, Source: NewSource(42)})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if first != second {
		t.Fatalf("seeded runs differ: %+v vs %+v", first, second)
	}
}

func TestSimulateProbabilityInRange(t *testing.T) {
	result, err := Simulate(exampleParams(), models.DesignatedIsAway, Config{Iterations: 5000, Source: NewSource(7)})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if result.Probability < 0 || result.Probability > 1 {
		t.Fatalf("probability out of range: %v", result.Probability)
	}
	if result.Iterations != 5000 {
		t.Fatalf("expected 5000 iterations, got %d", result.Iterations)
	}
}

func TestSimulateConvergesWithLargeIterationCount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping convergence test in short mode")
	}

	first, err := Simulate(exampleParams(), models.DesignatedIsHome, Config{Iterations: 200000, Source: NewSource(1)})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	second, err := Simulate(exampleParams(), models.DesignatedIsHome, Config{Iterations: 200000, Source: NewSource(2)})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if diff := math.Abs(first.Probability - second.Probability); diff > 0.01 {
		t.Fatalf("estimates diverge by %v at 200k iterations", diff)
	}
}

func TestSimulateDefaultIterations(t *testing.T) {
	result, err := Simulate(exampleParams(), models.DesignatedIsHome, Config{Source: NewSource(3)})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if result.Iterations != DefaultIterations {
		t.Fatalf("expected default iteration count %d, got %d", DefaultIterations, result.Iterations)
	}
}

func TestSimulateRejectsInvalidParameters(t *testing.T) {
	cases := []models.MatchParameters{
		{HomeExpectedGoals: 0, AwayExpectedGoals: 1.1, HomeExpectedCorners: 5.2, AwayExpectedCorners: 4.6},
		{HomeExpectedGoals: 1.5, AwayExpectedGoals: -0.3, HomeExpectedCorners: 5.2, AwayExpectedCorners: 4.6},
		{HomeExpectedGoals: 1.5, AwayExpectedGoals: 1.1, HomeExpectedCorners: math.NaN(), AwayExpectedCorners: 4.6},
		{HomeExpectedGoals: 1.5, AwayExpectedGoals: 1.1, HomeExpectedCorners: 5.2, AwayExpectedCorners: math.Inf(1)},
	}
	for i, params := range cases {
		_, err := Simulate(params, models.DesignatedIsHome, Config{Iterations: 10, Source: NewSource(1)})
		if !errors.Is(err, models.ErrInvalidParameters) {
			t.Fatalf("case %d: expected ErrInvalidParameters, got %v", i, err)
		}
	}
}

func TestSimulateRejectsUnknownOrientation(t *testing.T) {
	_, err := Simulate(exampleParams(), models.Orientation("SIDEWAYS"), Config{Iterations: 10, Source: NewSource(1)})
	if err == nil {
		t.Fatal("expected error for unknown orientation")
	}
}

func TestSimulateSymmetricRatesMatchAcrossOrientations(t *testing.T) {
	params := models.MatchParameters{
		HomeExpectedGoals:   1.3,
		AwayExpectedGoals:   1.3,
		HomeExpectedCorners: 5.0,
		AwayExpectedCorners: 5.0,
	}
	home, err := Simulate(params, models.DesignatedIsHome, Config{Iterations: 20000, Source: NewSource(5)})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	away, err := Simulate(params, models.DesignatedIsAway, Config{Iterations: 20000, Source: NewSource(5)})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if home != away {
		t.Fatalf("symmetric rates under the same seed diverged: %+v vs %+v", home, away)
	}
}

// High scoring rates make under-3.5 halves rare; the estimate should fall
// well below the low-scoring baseline.
func TestSimulateHighScoringLowersProbability(t *testing.T) {
	low, err := Simulate(exampleParams(), models.DesignatedIsHome, Config{Iterations: 20000, Source: NewSource(11)})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	high := models.MatchParameters{
		HomeExpectedGoals:   6.0,
		AwayExpectedGoals:   5.5,
		HomeExpectedCorners: 5.2,
		AwayExpectedCorners: 4.6,
	}
	result, err := Simulate(high, models.DesignatedIsHome, Config{Iterations: 20000, Source: NewSource(11)})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if result.Probability >= low.Probability {
		t.Fatalf("expected high-scoring estimate %v below baseline %v", result.Probability, low.Probability)
	}
}
