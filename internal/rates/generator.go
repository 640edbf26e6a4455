// Package rates produces per-match expected-goal and expected-corner rates.
package rates

import (
	"context"

	"github.com/yourusername/cornerflag/internal/models"
)

// Generator produces MatchParameters for a fixture. Implementations range
// from the placeholder heuristic below to a real statistical model fitted on
// historical data; downstream contracts do not change between them.
type Generator interface {
	Name() string
	Rates(ctx context.Context, match *models.Match) (models.MatchParameters, error)
}
