// Package analysis turns simulation estimates into value assessments and
// rankings against market prices.
package analysis

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/yourusername/cornerflag/internal/metrics"
	"github.com/yourusername/cornerflag/internal/models"
	"github.com/yourusername/cornerflag/internal/simulation"
)

// DefaultHighConfidenceThreshold separates the High tier from Medium
const DefaultHighConfidenceThreshold = 0.15

// Config tunes evaluation
type Config struct {
	Iterations              int
	Seed                    int64 // zero means time-seeded, non-deterministic
	HighConfidenceThreshold float64
	BookmakerMargin         float64
	BestPriceMarkup         float64
}

type simulateFunc func(models.MatchParameters, models.Orientation, simulation.Config) (models.SimulationResult, error)

// Evaluator runs the compound-event simulator for both orientations and
// derives implied probability, edge and expected value for the better one.
type Evaluator struct {
	cfg      Config
	pricer   Pricer
	simulate simulateFunc
}

// NewEvaluator creates an evaluator. The synthetic pricer is used whenever
// a match has no market quote.
func NewEvaluator(cfg Config) *Evaluator {
	if cfg.HighConfidenceThreshold <= 0 {
		cfg.HighConfidenceThreshold = DefaultHighConfidenceThreshold
	}
	return &Evaluator{
		cfg:      cfg,
		pricer:   NewSyntheticPricer(cfg.BookmakerMargin, cfg.BestPriceMarkup),
		simulate: simulation.Simulate,
	}
}

// Evaluate produces a ValueAssessment for the match. A nil marketOdds means
// no real quote is available and the synthetic pricer supplies one.
//
// Both orientations are simulated from an identically seeded source and the
// higher probability wins; ties go to DesignatedIsHome so equal inputs give
// deterministic output.
func (e *Evaluator) Evaluate(ctx context.Context, match *models.Match, params models.MatchParameters, marketOdds *float64) (models.ValueAssessment, error) {
	if match == nil {
		return models.ValueAssessment{}, fmt.Errorf("match is required")
	}
	if err := params.Validate(); err != nil {
		return models.ValueAssessment{}, err
	}
	if marketOdds != nil {
		if err := validateOdds(*marketOdds); err != nil {
			return models.ValueAssessment{}, err
		}
	}
	if err := ctx.Err(); err != nil {
		return models.ValueAssessment{}, err
	}

	simStart := time.Now()
	home, err := e.simulate(params, models.DesignatedIsHome, simulation.Config{
		Iterations: e.cfg.Iterations,
		Source:     simulation.NewSource(e.cfg.Seed),
	})
	if err != nil {
		return models.ValueAssessment{}, fmt.Errorf("home orientation: %w", err)
	}
	metrics.RecordSimulation(time.Since(simStart).Seconds())

	simStart = time.Now()
	away, err := e.simulate(params, models.DesignatedIsAway, simulation.Config{
		Iterations: e.cfg.Iterations,
		Source:     simulation.NewSource(e.cfg.Seed),
	})
	if err != nil {
		return models.ValueAssessment{}, fmt.Errorf("away orientation: %w", err)
	}
	metrics.RecordSimulation(time.Since(simStart).Seconds())

	orientation := models.DesignatedIsHome
	best := home
	if away.Probability > home.Probability {
		orientation = models.DesignatedIsAway
		best = away
	}

	odds := 0.0
	source := models.PriceSourceMarket
	if marketOdds != nil {
		odds = *marketOdds
	} else {
		odds = e.pricer(best.Probability)
		source = models.PriceSourceSynthetic
		if err := validateOdds(odds); err != nil {
			return models.ValueAssessment{}, fmt.Errorf("synthetic price: %w", err)
		}
	}

	implied := 1.0 / odds
	tier := models.ConfidenceMedium
	if best.Probability > e.cfg.HighConfidenceThreshold {
		tier = models.ConfidenceHigh
	}

	return models.ValueAssessment{
		MatchID:            match.ID,
		KickoffUTC:         match.UTCDate,
		HomeTeam:           match.HomeTeam,
		AwayTeam:           match.AwayTeam,
		Orientation:        orientation,
		ModelProbability:   best.Probability,
		MarketOdds:         odds,
		ImpliedProbability: implied,
		Edge:               best.Probability - implied,
		ExpectedValue:      best.Probability*odds - 1.0,
		ConfidenceTier:     tier,
		PriceSource:        source,
		Iterations:         best.Iterations,
		EvaluatedAt:        time.Now().UTC(),
	}, nil
}

func validateOdds(odds float64) error {
	if math.IsNaN(odds) || math.IsInf(odds, 0) {
		return fmt.Errorf("%w: odds are not finite", models.ErrInvalidOdds)
	}
	if odds <= 1 {
		return fmt.Errorf("%w: odds must exceed 1.0, got %v", models.ErrInvalidOdds, odds)
	}
	return nil
}
