package simulation

import (
	"math"
	"testing"
)

func TestPoissonZeroRate(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 100; i++ {
		if got := Poisson(src, 0); got != 0 {
			t.Fatalf("expected 0 for zero rate, got %d", got)
		}
	}
}

func TestPoissonNegativeRate(t *testing.T) {
	src := NewSource(1)
	if got := Poisson(src, -1.5); got != 0 {
		t.Fatalf("expected 0 for negative rate, got %d", got)
	}
}

func TestPoissonNonNegative(t *testing.T) {
	src := NewSource(42)
	for _, lambda := range []float64{0.1, 0.5, 1.0, 2.5, 5.2, 10.0} {
		for i := 0; i < 1000; i++ {
			if got := Poisson(src, lambda); got < 0 {
				t.Fatalf("negative draw %d for lambda %v", got, lambda)
			}
		}
	}
}

func TestPoissonMeanApproximatesLambda(t *testing.T) {
	src := NewSource(7)
	const lambda = 2.5
	const n = 200000

	sum := 0
	for i := 0; i < n; i++ {
		sum += Poisson(src, lambda)
	}
	mean := float64(sum) / float64(n)
	if math.Abs(mean-lambda) > 0.05 {
		t.Fatalf("sample mean %v too far from lambda %v", mean, lambda)
	}
}

func TestPoissonDeterministicWithSeed(t *testing.T) {
	first := make([]int, 50)
	second := make([]int, 50)

	src := NewSource(99)
	for i := range first {
		first[i] = Poisson(src, 1.5)
	}
	src = NewSource(99)
	for i := range second {
		second[i] = Poisson(src, 1.5)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("draw %d differs: %d vs %d", i, first[i], second[i])
		}
	}
}
