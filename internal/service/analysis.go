package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/cornerflag/internal/analysis"
	"github.com/yourusername/cornerflag/internal/config"
	"github.com/yourusername/cornerflag/internal/logger"
	"github.com/yourusername/cornerflag/internal/metrics"
	"github.com/yourusername/cornerflag/internal/models"
	"github.com/yourusername/cornerflag/internal/repository"
)

// AnalysisService runs the full value-detection pipeline: load upcoming
// fixtures and their latest odds, simulate the compound market for each and
// rank the positive expected value assessments.
type AnalysisService struct {
	repos    *repository.Repositories
	analyzer *analysis.Analyzer
	cfg      config.AnalysisConfig
	features config.FeaturesConfig
	audit    *logger.AuditLogger
	logger   *logrus.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	repos *repository.Repositories,
	analyzer *analysis.Analyzer,
	cfg config.AnalysisConfig,
	features config.FeaturesConfig,
	log *logrus.Logger,
) *AnalysisService {
	if log == nil {
		log = logrus.New()
	}

	return &AnalysisService{
		repos:    repos,
		analyzer: analyzer,
		cfg:      cfg,
		features: features,
		audit:    logger.NewAuditLogger(log),
		logger:   log,
	}
}

// FindValueBets analyzes every upcoming fixture inside the configured window
// and returns the ranked positive-EV assessments.
func (s *AnalysisService) FindValueBets(ctx context.Context, policy analysis.SortPolicy, limit int) ([]models.ValueAssessment, error) {
	startTime := time.Now()
	window := time.Duration(s.cfg.UpcomingWindowHours) * time.Hour

	matches, err := s.repos.Match.GetUpcoming(ctx, startTime.UTC(), window)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming matches: %w", err)
	}
	if len(matches) == 0 {
		s.logger.Info("No upcoming matches inside analysis window")
		metrics.RecordAnalysisRun(time.Since(startTime).Seconds(), 0, 0)
		return nil, nil
	}

	marketOdds, candidates, err := s.loadMarketOdds(ctx, matches)
	if err != nil {
		return nil, err
	}

	assessments := s.analyzer.AnalyzeBatch(ctx, candidates, marketOdds)
	for i := range assessments {
		metrics.RecordAssessment(assessments[i].HasValue())
	}
	if skipped := len(candidates) - len(assessments); skipped > 0 {
		for i := 0; i < skipped; i++ {
			metrics.RecordMatchSkipped("analysis_failed")
		}
	}

	if limit <= 0 || limit > s.cfg.MaxResults {
		limit = s.cfg.MaxResults
	}
	ranked := analysis.Rank(assessments, policy, limit)
	ranked = s.applyMinExpectedValue(ranked)

	duration := time.Since(startTime)
	metrics.RecordAnalysisRun(duration.Seconds(), len(matches), len(ranked))
	s.audit.LogAnalysisRun(len(assessments), len(matches)-len(assessments), len(ranked), duration)
	for i := range ranked {
		a := &ranked[i]
		s.audit.LogValueBetSurfaced(a.MatchID.String(), string(a.Orientation),
			a.ModelProbability, a.MarketOdds, a.Edge, a.ExpectedValue, string(a.PriceSource), a.KickoffUTC)
	}

	return ranked, nil
}

// AssessMatch analyzes a single fixture by ID, regardless of its kickoff
// window. The latest odds snapshot supplies the market quote when one
// exists. Used by the on-demand API endpoint.
func (s *AnalysisService) AssessMatch(ctx context.Context, matchID uuid.UUID) (*models.ValueAssessment, error) {
	match, err := s.repos.Match.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	marketOdds := make(map[uuid.UUID]float64, 1)
	snapshot, err := s.repos.Odds.GetLatest(ctx, matchID)
	switch {
	case err == nil:
		if s.features.CompoundQuoteEnabled {
			if quote, ok := snapshot.CompoundQuote(); ok {
				marketOdds[matchID] = quote
			}
		}
	case errors.Is(err, models.ErrNotFound):
		// no snapshot yet; synthetic pricing may still cover the match
	default:
		return nil, fmt.Errorf("failed to load latest odds: %w", err)
	}

	if _, ok := marketOdds[matchID]; !ok && !s.features.SyntheticOddsEnabled {
		metrics.RecordMatchSkipped("missing_odds")
		return nil, fmt.Errorf("match %s has no market odds and synthetic pricing is disabled", matchID)
	}

	assessments := s.analyzer.AnalyzeBatch(ctx, []*models.Match{match}, marketOdds)
	if len(assessments) == 0 {
		return nil, fmt.Errorf("failed to assess match %s", matchID)
	}
	metrics.RecordAssessment(assessments[0].HasValue())

	return &assessments[0], nil
}

// loadMarketOdds fetches the latest odds snapshots and derives compound
// quotes. Matches without a quote stay in the batch and get priced
// synthetically unless synthetic odds are disabled.
func (s *AnalysisService) loadMarketOdds(ctx context.Context, matches []*models.Match) (map[uuid.UUID]float64, []*models.Match, error) {
	ids := make([]uuid.UUID, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}

	snapshots, err := s.repos.Odds.GetLatestForMatches(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load latest odds: %w", err)
	}

	marketOdds := make(map[uuid.UUID]float64, len(snapshots))
	if s.features.CompoundQuoteEnabled {
		for id, snapshot := range snapshots {
			if quote, ok := snapshot.CompoundQuote(); ok {
				marketOdds[id] = quote
			}
		}
	}

	if s.features.SyntheticOddsEnabled {
		return marketOdds, matches, nil
	}

	candidates := make([]*models.Match, 0, len(matches))
	for _, m := range matches {
		if _, ok := marketOdds[m.ID]; !ok {
			metrics.RecordMatchSkipped("missing_odds")
			continue
		}
		candidates = append(candidates, m)
	}
	return marketOdds, candidates, nil
}

func (s *AnalysisService) applyMinExpectedValue(assessments []models.ValueAssessment) []models.ValueAssessment {
	if s.cfg.MinExpectedValue <= 0 {
		return assessments
	}
	filtered := assessments[:0]
	for _, a := range assessments {
		if a.ExpectedValue >= s.cfg.MinExpectedValue {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
