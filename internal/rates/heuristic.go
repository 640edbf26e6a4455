package rates

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/yourusername/cornerflag/internal/models"
)

// Placeholder ranges for the heuristic generator. These stand in for a real
// model; they bound rates to plausible full-match values.
const (
	minExpectedGoals   = 0.9
	maxExpectedGoals   = 2.1
	minExpectedCorners = 3.5
	maxExpectedCorners = 7.5
)

// HeuristicGenerator draws rates uniformly from fixed ranges. It carries no
// statistical signal and exists so the rest of the pipeline can be built and
// tested before a fitted model replaces it.
type HeuristicGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewHeuristicGenerator creates a heuristic generator. A zero seed falls
// back to the current time.
func NewHeuristicGenerator(seed int64) *HeuristicGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &HeuristicGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Name returns the generator name
func (g *HeuristicGenerator) Name() string {
	return "heuristic"
}

// Rates produces placeholder MatchParameters for the match
func (g *HeuristicGenerator) Rates(ctx context.Context, match *models.Match) (models.MatchParameters, error) {
	if match == nil {
		return models.MatchParameters{}, fmt.Errorf("match is required")
	}
	if err := ctx.Err(); err != nil {
		return models.MatchParameters{}, err
	}

	g.mu.Lock()
	params := models.MatchParameters{
		HomeExpectedGoals:   g.uniform(minExpectedGoals, maxExpectedGoals),
		AwayExpectedGoals:   g.uniform(minExpectedGoals, maxExpectedGoals),
		HomeExpectedCorners: g.uniform(minExpectedCorners, maxExpectedCorners),
		AwayExpectedCorners: g.uniform(minExpectedCorners, maxExpectedCorners),
	}
	g.mu.Unlock()

	return params, nil
}

func (g *HeuristicGenerator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}
