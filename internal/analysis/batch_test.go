package analysis

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/cornerflag/internal/models"
)

type stubGenerator struct {
	params  models.MatchParameters
	failFor uuid.UUID
}

func (g *stubGenerator) Name() string { return "stub" }

func (g *stubGenerator) Rates(ctx context.Context, match *models.Match) (models.MatchParameters, error) {
	if match.ID == g.failFor {
		return models.MatchParameters{}, models.ErrInvalidParameters
	}
	return g.params, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestAnalyzeBatchAssessesAllMatches(t *testing.T) {
	matches := []*models.Match{testMatch(), testMatch(), testMatch()}
	generator := &stubGenerator{params: testParams()}
	analyzer := NewAnalyzer(NewEvaluator(Config{Iterations: 1000, Seed: 1}), generator, 2, quietLogger())

	assessments := analyzer.AnalyzeBatch(context.Background(), matches, nil)
	if len(assessments) != len(matches) {
		t.Fatalf("expected %d assessments, got %d", len(matches), len(assessments))
	}
}

func TestAnalyzeBatchIsolatesPerMatchFailures(t *testing.T) {
	matches := []*models.Match{testMatch(), testMatch(), testMatch()}
	generator := &stubGenerator{params: testParams(), failFor: matches[1].ID}
	analyzer := NewAnalyzer(NewEvaluator(Config{Iterations: 1000, Seed: 1}), generator, 2, quietLogger())

	assessments := analyzer.AnalyzeBatch(context.Background(), matches, nil)
	if len(assessments) != 2 {
		t.Fatalf("expected the failing match to be skipped, got %d assessments", len(assessments))
	}
	for _, a := range assessments {
		if a.MatchID == matches[1].ID {
			t.Fatal("failing match should not produce an assessment")
		}
	}
}

func TestAnalyzeBatchUsesMarketOddsWhenAvailable(t *testing.T) {
	match := testMatch()
	generator := &stubGenerator{params: testParams()}
	analyzer := NewAnalyzer(NewEvaluator(Config{Iterations: 1000, Seed: 1}), generator, 1, quietLogger())

	odds := map[uuid.UUID]float64{match.ID: 9.5}
	assessments := analyzer.AnalyzeBatch(context.Background(), []*models.Match{match}, odds)
	if len(assessments) != 1 {
		t.Fatalf("expected 1 assessment, got %d", len(assessments))
	}
	if assessments[0].PriceSource != models.PriceSourceMarket {
		t.Fatalf("expected market pricing, got %s", assessments[0].PriceSource)
	}
	if assessments[0].MarketOdds != 9.5 {
		t.Fatalf("expected odds 9.5, got %v", assessments[0].MarketOdds)
	}
}

func TestAnalyzeBatchCancellationReturnsPartialResults(t *testing.T) {
	matches := make([]*models.Match, 0, 20)
	for i := 0; i < 20; i++ {
		matches = append(matches, testMatch())
	}
	generator := &stubGenerator{params: testParams()}
	analyzer := NewAnalyzer(NewEvaluator(Config{Iterations: 1000, Seed: 1}), generator, 1, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assessments := analyzer.AnalyzeBatch(ctx, matches, nil)
	if len(assessments) >= len(matches) {
		t.Fatalf("expected cancellation to stop the batch early, got %d of %d", len(assessments), len(matches))
	}
}
