package analysis

import (
	"math"
	"testing"
)

func TestSyntheticPricerYieldsPositiveEV(t *testing.T) {
	pricer := NewSyntheticPricer(DefaultBookmakerMargin, DefaultBestPriceMarkup)

	for _, p := range []float64{0.02, 0.05, 0.1, 0.15, 0.3, 0.6} {
		price := pricer(p)
		if price <= 1 {
			t.Fatalf("p=%v: synthetic price %v must exceed 1", p, price)
		}
		ev := p*price - 1.0
		if ev <= 0 {
			t.Fatalf("p=%v: synthetic price %v gives non-positive EV %v", p, price, ev)
		}
		// With the default constants the discount and markup are flat, so
		// the EV is the same at every probability inside the clamp band.
		want := DefaultBestPriceMarkup/(1.0-DefaultBookmakerMargin) - 1.0
		if math.Abs(ev-want) > 1e-9 {
			t.Fatalf("p=%v: EV %v, want %v", p, ev, want)
		}
	}
}

func TestSyntheticPricerClampsExtremes(t *testing.T) {
	pricer := NewSyntheticPricer(DefaultBookmakerMargin, DefaultBestPriceMarkup)

	if got := pricer(0); got != maxSyntheticPrice {
		t.Fatalf("zero probability: price %v, want clamp to %v", got, maxSyntheticPrice)
	}
	if got := pricer(1e-9); got != maxSyntheticPrice {
		t.Fatalf("tiny probability: price %v, want clamp to %v", got, maxSyntheticPrice)
	}
	if got := pricer(1.0); got < minSyntheticPrice {
		t.Fatalf("certain probability: price %v below floor %v", got, minSyntheticPrice)
	}
}

func TestSyntheticPricerDefaultsInvalidConstants(t *testing.T) {
	pricer := NewSyntheticPricer(-0.5, 0)
	want := NewSyntheticPricer(DefaultBookmakerMargin, DefaultBestPriceMarkup)

	if got, exp := pricer(0.1), want(0.1); math.Abs(got-exp) > 1e-12 {
		t.Fatalf("invalid constants should fall back to defaults: got %v, want %v", got, exp)
	}
}
