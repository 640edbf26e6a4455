package simulation

import (
	"fmt"

	"github.com/yourusername/cornerflag/internal/models"
)

// Half-split weights for expected goals. First halves statistically produce
// fewer goals; these are fixed constants, not calibrated per league.
const (
	FirstHalfWeight  = 0.45
	SecondHalfWeight = 0.55
)

// DefaultIterations is the iteration count used when the config leaves it unset
const DefaultIterations = 20000

// Config tunes a simulation run. Iterations trades estimator variance
// against compute cost.
type Config struct {
	Iterations int
	Source     Source
}

func (c Config) withDefaults() Config {
	if c.Iterations <= 0 {
		c.Iterations = DefaultIterations
	}
	if c.Source == nil {
		c.Source = NewSource(0)
	}
	return c
}

// Simulate estimates the probability that all four sub-conditions of the
// compound market hold simultaneously for the given orientation:
//
//  1. under 3.5 combined goals in the first half
//  2. under 3.5 combined goals in the second half
//  3. the designated team outscores the opponent in at least one half
//  4. over 5.5 total corners
//
// Each iteration draws four independent half goal counts and two corner
// counts; the success condition is evaluated on the joint outcome, so an
// iteration is never split across sources. Identical inputs with the same
// seeded Source reproduce identical results.
func Simulate(params models.MatchParameters, orientation models.Orientation, cfg Config) (models.SimulationResult, error) {
	if err := params.Validate(); err != nil {
		return models.SimulationResult{}, err
	}
	if orientation != models.DesignatedIsHome && orientation != models.DesignatedIsAway {
		return models.SimulationResult{}, fmt.Errorf("unknown orientation %q", orientation)
	}
	cfg = cfg.withDefaults()

	// Draw the designated side first so that symmetric rates consume the
	// random stream identically for both orientations under the same seed.
	desigGoals, oppGoals := params.HomeExpectedGoals, params.AwayExpectedGoals
	if orientation == models.DesignatedIsAway {
		desigGoals, oppGoals = oppGoals, desigGoals
	}
	desigH1 := desigGoals * FirstHalfWeight
	desigH2 := desigGoals * SecondHalfWeight
	oppH1 := oppGoals * FirstHalfWeight
	oppH2 := oppGoals * SecondHalfWeight

	src := cfg.Source
	successes := 0

	for i := 0; i < cfg.Iterations; i++ {
		dg1 := Poisson(src, desigH1)
		og1 := Poisson(src, oppH1)
		dg2 := Poisson(src, desigH2)
		og2 := Poisson(src, oppH2)
		corners := Poisson(src, params.HomeExpectedCorners) + Poisson(src, params.AwayExpectedCorners)

		under35H1 := float64(dg1+og1) < 3.5
		under35H2 := float64(dg2+og2) < 3.5

		// Ties do not count as winning a half.
		winsAHalf := dg1 > og1 || dg2 > og2

		overCorners := float64(corners) > 5.5

		if under35H1 && under35H2 && winsAHalf && overCorners {
			successes++
		}
	}

	return models.SimulationResult{
		Probability: float64(successes) / float64(cfg.Iterations),
		Iterations:  cfg.Iterations,
	}, nil
}
