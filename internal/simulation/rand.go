// Package simulation implements the Monte Carlo estimator for the compound
// betting market: under 3.5 goals in each half, the designated team leads in
// at least one half, and over 5.5 total corners.
package simulation

import (
	"math/rand"
	"time"
)

// Source provides uniform draws in [0,1). It is injected rather than taken
// from the global generator so runs can be made deterministic for regression
// tests and so parallel simulations do not contend on shared state.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded uniform source. A zero seed falls back to the
// current time, matching non-deterministic production behaviour.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
