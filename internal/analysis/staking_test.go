package analysis

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestKellyStakePositiveEdge(t *testing.T) {
	bankroll := decimal.NewFromInt(1000)

	// p=0.6 at odds 2.0: full Kelly = 0.2 of bankroll.
	stake := KellyStake(0.6, 2.0, bankroll, 1.0)
	if !stake.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected stake 200, got %s", stake)
	}

	// Half Kelly halves the stake.
	stake = KellyStake(0.6, 2.0, bankroll, 0.5)
	if !stake.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected stake 100, got %s", stake)
	}
}

func TestKellyStakeNoEdge(t *testing.T) {
	bankroll := decimal.NewFromInt(1000)

	// p=0.5 at odds 2.0 is exactly fair: no bet.
	if stake := KellyStake(0.5, 2.0, bankroll, 1.0); !stake.IsZero() {
		t.Fatalf("expected zero stake at fair odds, got %s", stake)
	}
	// Negative edge: no bet.
	if stake := KellyStake(0.3, 2.0, bankroll, 1.0); !stake.IsZero() {
		t.Fatalf("expected zero stake with negative edge, got %s", stake)
	}
}

func TestKellyStakeInvalidInputs(t *testing.T) {
	bankroll := decimal.NewFromInt(1000)

	if stake := KellyStake(0, 2.0, bankroll, 1.0); !stake.IsZero() {
		t.Fatalf("expected zero stake for zero probability, got %s", stake)
	}
	if stake := KellyStake(0.6, 1.0, bankroll, 1.0); !stake.IsZero() {
		t.Fatalf("expected zero stake for odds at 1.0, got %s", stake)
	}
	if stake := KellyStake(0.6, 2.0, decimal.Zero, 1.0); !stake.IsZero() {
		t.Fatalf("expected zero stake for empty bankroll, got %s", stake)
	}
}
