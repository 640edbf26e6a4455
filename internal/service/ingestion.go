package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/cornerflag/internal/datasource"
	"github.com/yourusername/cornerflag/internal/logger"
	"github.com/yourusername/cornerflag/internal/metrics"
	"github.com/yourusername/cornerflag/internal/models"
	"github.com/yourusername/cornerflag/internal/repository"
)

// Fixture sync covers recently finished matches for result backfill plus the
// upcoming schedule.
const (
	fixtureLookback  = 3 * 24 * time.Hour
	fixtureLookahead = 14 * 24 * time.Hour
)

// IngestionReport summarizes a single sync run
type IngestionReport struct {
	FixturesFetched int
	FixturesStored  int
	ResultsUpdated  int
	OddsFetched     int
	OddsStored      int
	Failures        int
	Duration        time.Duration
}

// IngestionService fetches fixtures and odds from external providers and
// persists them. Individual record failures are logged and skipped; a sync
// run only fails outright when every competition fetch fails.
type IngestionService struct {
	fixtureSource datasource.FixtureSource
	oddsSource    datasource.OddsSource
	repos         *repository.Repositories
	normalizer    *FixtureNormalizer
	audit         *logger.AuditLogger
	logger        *logrus.Logger
	competitions  []string
	batchSize     int
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(
	fixtureSource datasource.FixtureSource,
	oddsSource datasource.OddsSource,
	repos *repository.Repositories,
	competitions []string,
	batchSize int,
	log *logrus.Logger,
) *IngestionService {
	if batchSize <= 0 {
		batchSize = 100
	}
	if log == nil {
		log = logrus.New()
	}

	return &IngestionService{
		fixtureSource: fixtureSource,
		oddsSource:    oddsSource,
		repos:         repos,
		normalizer:    NewFixtureNormalizer(log),
		audit:         logger.NewAuditLogger(log),
		logger:        log,
		competitions:  competitions,
		batchSize:     batchSize,
	}
}

// SyncFixtures fetches the fixture window for every configured competition
// and upserts leagues, teams and matches. Finished fixtures also get their
// scores recorded.
func (s *IngestionService) SyncFixtures(ctx context.Context) (*IngestionReport, error) {
	report := &IngestionReport{}
	startTime := time.Now()
	from := startTime.Add(-fixtureLookback)
	to := startTime.Add(fixtureLookahead)

	var fetchErrs []error
	for _, competition := range s.competitions {
		fixtures, err := s.fixtureSource.FetchFixtures(ctx, competition, from, to)
		if err != nil {
			s.logger.WithError(err).WithField("competition", competition).Error("Failed to fetch fixtures")
			metrics.RecordDataSourceError(s.fixtureSource.Name())
			fetchErrs = append(fetchErrs, err)
			report.Failures++
			continue
		}

		report.FixturesFetched += len(fixtures)
		for i := range fixtures {
			if err := s.processFixture(ctx, competition, &fixtures[i], report); err != nil {
				s.logger.WithError(err).WithField("external_id", fixtures[i].ExternalID).Warn("Skipping fixture")
				metrics.RecordFixtureIngested("failed")
				report.Failures++
			}
		}
	}

	report.Duration = time.Since(startTime)
	metrics.RecordIngestionDuration(report.Duration.Seconds())
	s.audit.LogIngestionRun(s.fixtureSource.Name(), report.FixturesFetched, report.FixturesStored, report.Failures, report.Duration)

	if len(fetchErrs) == len(s.competitions) && len(s.competitions) > 0 {
		return report, fmt.Errorf("all fixture fetches failed: %w", errors.Join(fetchErrs...))
	}
	return report, nil
}

// processFixture upserts one fixture and its league and teams inside a
// single transaction so a mid-sequence failure leaves no partial state.
func (s *IngestionService) processFixture(ctx context.Context, competition string, fixture *datasource.FixtureData, report *IngestionReport) error {
	match, err := s.normalizer.NormalizeMatch(fixture)
	if err != nil {
		return fmt.Errorf("failed to normalize fixture: %w", err)
	}

	leagueName := fixture.CompetitionName
	if leagueName == "" {
		leagueName = competition
	}

	resultRecorded := false
	err = s.repos.Tx.InTransaction(ctx, func(r *repository.Repositories) error {
		league := &models.League{ID: uuid.New(), Name: leagueName, Code: competition}
		if err := r.League.Upsert(ctx, league); err != nil {
			return fmt.Errorf("failed to upsert league: %w", err)
		}

		homeTeam := &models.Team{ID: uuid.New(), Name: match.HomeTeam, LeagueID: league.ID}
		if err := r.Team.Upsert(ctx, homeTeam); err != nil {
			return fmt.Errorf("failed to upsert home team: %w", err)
		}
		awayTeam := &models.Team{ID: uuid.New(), Name: match.AwayTeam, LeagueID: league.ID}
		if err := r.Team.Upsert(ctx, awayTeam); err != nil {
			return fmt.Errorf("failed to upsert away team: %w", err)
		}

		match.LeagueID = league.ID
		match.HomeTeamID = homeTeam.ID
		match.AwayTeamID = awayTeam.ID

		if err := r.Match.Upsert(ctx, match); err != nil {
			return fmt.Errorf("failed to upsert match: %w", err)
		}

		if match.Status == models.MatchStatusFinished && match.HomeScore != nil && match.AwayScore != nil {
			if err := r.Match.UpdateScores(ctx, match); err != nil {
				return fmt.Errorf("failed to record result: %w", err)
			}
			resultRecorded = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.RecordFixtureIngested("stored")
	report.FixturesStored++
	if resultRecorded {
		report.ResultsUpdated++
	}
	return nil
}

// SyncOdds fetches the latest prices for every configured competition and
// stores a snapshot per known fixture. Prices for fixtures not yet ingested
// are skipped.
func (s *IngestionService) SyncOdds(ctx context.Context) (*IngestionReport, error) {
	report := &IngestionReport{}
	startTime := time.Now()
	from := startTime
	to := startTime.Add(fixtureLookahead)

	var fetchErrs []error
	var batch []*models.MatchOdds

	for _, competition := range s.competitions {
		oddsData, err := s.oddsSource.FetchOdds(ctx, competition, from, to)
		if err != nil {
			s.logger.WithError(err).WithField("competition", competition).Error("Failed to fetch odds")
			metrics.RecordDataSourceError(s.oddsSource.Name())
			fetchErrs = append(fetchErrs, err)
			report.Failures++
			continue
		}

		report.OddsFetched += len(oddsData)
		for _, data := range oddsData {
			snapshot, err := s.toSnapshot(ctx, &data)
			if err != nil {
				if errors.Is(err, models.ErrNotFound) {
					s.logger.WithField("external_id", data.MatchExternalID).Debug("Odds for unknown fixture, skipping")
					continue
				}
				s.logger.WithError(err).WithField("external_id", data.MatchExternalID).Warn("Skipping odds snapshot")
				report.Failures++
				continue
			}

			batch = append(batch, snapshot)
			if len(batch) >= s.batchSize {
				if err := s.flushOdds(ctx, batch, report); err != nil {
					return report, err
				}
				batch = batch[:0]
			}
		}
	}

	if len(batch) > 0 {
		if err := s.flushOdds(ctx, batch, report); err != nil {
			return report, err
		}
	}

	report.Duration = time.Since(startTime)
	metrics.RecordIngestionDuration(report.Duration.Seconds())
	s.audit.LogIngestionRun(s.oddsSource.Name(), report.OddsFetched, report.OddsStored, report.Failures, report.Duration)

	if len(fetchErrs) == len(s.competitions) && len(s.competitions) > 0 {
		return report, fmt.Errorf("all odds fetches failed: %w", errors.Join(fetchErrs...))
	}
	return report, nil
}

func (s *IngestionService) toSnapshot(ctx context.Context, data *datasource.OddsData) (*models.MatchOdds, error) {
	match, err := s.repos.Match.GetByExternalID(ctx, data.MatchExternalID)
	if err != nil {
		return nil, err
	}

	return &models.MatchOdds{
		MatchID:       match.ID,
		HomeWin:       data.HomeWin,
		Draw:          data.Draw,
		AwayWin:       data.AwayWin,
		Under35H1:     data.Under35H1,
		Under35H2:     data.Under35H2,
		Over55Corners: data.Over55Corners,
		TeamWinsHalf:  data.TeamWinsHalf,
		Bookmaker:     data.Bookmaker,
		LastUpdate:    data.LastUpdate,
	}, nil
}

func (s *IngestionService) flushOdds(ctx context.Context, batch []*models.MatchOdds, report *IngestionReport) error {
	if err := s.repos.Odds.InsertBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to store odds batch: %w", err)
	}
	metrics.RecordOddsSnapshots(len(batch))
	report.OddsStored += len(batch)
	return nil
}
