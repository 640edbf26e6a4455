package analysis

import (
	"context"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/cornerflag/internal/models"
	"github.com/yourusername/cornerflag/internal/rates"
)

// Analyzer runs rate generation and evaluation across a batch of matches.
// Matches are independent, so the batch fans out over a bounded worker pool.
// A failed match is skipped and logged; it never aborts the batch, and
// cancelling the context stops the batch while keeping completed results.
type Analyzer struct {
	evaluator *Evaluator
	generator rates.Generator
	workers   int
	logger    *logrus.Logger
}

// NewAnalyzer creates a batch analyzer. workers <= 0 uses one worker per CPU.
func NewAnalyzer(evaluator *Evaluator, generator rates.Generator, workers int, logger *logrus.Logger) *Analyzer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Analyzer{
		evaluator: evaluator,
		generator: generator,
		workers:   workers,
		logger:    logger,
	}
}

// AnalyzeBatch evaluates every match and returns the assessments that
// completed. The odds map supplies real compound-market quotes where known;
// matches without one are priced synthetically.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, matches []*models.Match, marketOdds map[uuid.UUID]float64) []models.ValueAssessment {
	if len(matches) == 0 {
		return nil
	}

	jobs := make(chan *models.Match)
	results := make(chan models.ValueAssessment, len(matches))

	var wg sync.WaitGroup
	for i := 0; i < a.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for match := range jobs {
				assessment, err := a.analyzeOne(ctx, match, marketOdds)
				if err != nil {
					a.logger.WithError(err).WithField("match_id", match.ID).Warn("Skipping match analysis")
					continue
				}
				results <- assessment
			}
		}()
	}

dispatch:
	for _, match := range matches {
		select {
		case <-ctx.Done():
			a.logger.WithError(ctx.Err()).Info("Batch analysis cancelled, returning partial results")
			break dispatch
		case jobs <- match:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	assessments := make([]models.ValueAssessment, 0, len(matches))
	for assessment := range results {
		assessments = append(assessments, assessment)
	}
	return assessments
}

func (a *Analyzer) analyzeOne(ctx context.Context, match *models.Match, marketOdds map[uuid.UUID]float64) (models.ValueAssessment, error) {
	params, err := a.generator.Rates(ctx, match)
	if err != nil {
		return models.ValueAssessment{}, err
	}

	var quote *float64
	if odds, ok := marketOdds[match.ID]; ok {
		quote = &odds
	}
	return a.evaluator.Evaluate(ctx, match, params, quote)
}
