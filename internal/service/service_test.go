package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/cornerflag/internal/datasource"
	"github.com/yourusername/cornerflag/internal/models"
	"github.com/yourusername/cornerflag/internal/repository"
)

// In-memory repositories shared by the service tests.

type fakeLeagueRepo struct {
	mu      sync.Mutex
	leagues map[string]*models.League // by code
}

func newFakeLeagueRepo() *fakeLeagueRepo {
	return &fakeLeagueRepo{leagues: make(map[string]*models.League)}
}

func (r *fakeLeagueRepo) Upsert(_ context.Context, league *models.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.leagues[league.Code]; ok {
		existing.Name = league.Name
		league.ID = existing.ID
		return nil
	}
	copied := *league
	r.leagues[league.Code] = &copied
	return nil
}

func (r *fakeLeagueRepo) GetByCode(_ context.Context, code string) (*models.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	league, ok := r.leagues[code]
	if !ok {
		return nil, models.ErrNotFound
	}
	return league, nil
}

func (r *fakeLeagueRepo) GetAll(_ context.Context) ([]*models.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*models.League, 0, len(r.leagues))
	for _, l := range r.leagues {
		all = append(all, l)
	}
	return all, nil
}

type fakeTeamRepo struct {
	mu    sync.Mutex
	teams map[string]*models.Team // by name
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[string]*models.Team)}
}

func (r *fakeTeamRepo) Upsert(_ context.Context, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.teams[team.Name]; ok {
		team.ID = existing.ID
		return nil
	}
	copied := *team
	r.teams[team.Name] = &copied
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeTeamRepo) GetByLeague(_ context.Context, leagueID uuid.UUID) ([]*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var teams []*models.Team
	for _, t := range r.teams {
		if t.LeagueID == leagueID {
			teams = append(teams, t)
		}
	}
	return teams, nil
}

type fakeMatchRepo struct {
	mu      sync.Mutex
	matches map[string]*models.Match // by external ID
	updated int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[string]*models.Match)}
}

func (r *fakeMatchRepo) Upsert(_ context.Context, match *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.matches[match.ExternalID]; ok {
		existing.UTCDate = match.UTCDate
		existing.Status = match.Status
		match.ID = existing.ID
		return nil
	}
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	copied := *match
	r.matches[match.ExternalID] = &copied
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.matches {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeMatchRepo) GetByExternalID(_ context.Context, externalID string) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[externalID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return match, nil
}

func (r *fakeMatchRepo) GetUpcoming(_ context.Context, from time.Time, window time.Duration) ([]*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var upcoming []*models.Match
	for _, m := range r.matches {
		if m.IsUpcoming() && !m.UTCDate.Before(from) && !m.UTCDate.After(from.Add(window)) {
			upcoming = append(upcoming, m)
		}
	}
	return upcoming, nil
}

func (r *fakeMatchRepo) UpdateScores(_ context.Context, match *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.matches[match.ExternalID]
	if !ok {
		return models.ErrNotFound
	}
	existing.Status = match.Status
	existing.HomeScore = match.HomeScore
	existing.AwayScore = match.AwayScore
	existing.HomeScoreH1 = match.HomeScoreH1
	existing.AwayScoreH1 = match.AwayScoreH1
	r.updated++
	return nil
}

type fakeOddsRepo struct {
	mu        sync.Mutex
	snapshots map[uuid.UUID]*models.MatchOdds
}

func newFakeOddsRepo() *fakeOddsRepo {
	return &fakeOddsRepo{snapshots: make(map[uuid.UUID]*models.MatchOdds)}
}

func (r *fakeOddsRepo) Insert(_ context.Context, odds *models.MatchOdds) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *odds
	r.snapshots[odds.MatchID] = &copied
	return nil
}

func (r *fakeOddsRepo) InsertBatch(ctx context.Context, odds []*models.MatchOdds) error {
	for _, o := range odds {
		if err := r.Insert(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeOddsRepo) GetLatest(_ context.Context, matchID uuid.UUID) (*models.MatchOdds, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	odds, ok := r.snapshots[matchID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return odds, nil
}

func (r *fakeOddsRepo) GetLatestForMatches(_ context.Context, matchIDs []uuid.UUID) (map[uuid.UUID]*models.MatchOdds, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	latest := make(map[uuid.UUID]*models.MatchOdds)
	for _, id := range matchIDs {
		if odds, ok := r.snapshots[id]; ok {
			latest[id] = odds
		}
	}
	return latest, nil
}

// fakeTxRunner counts transactions and runs them against the same
// in-memory repositories.
type fakeTxRunner struct {
	repos *repository.Repositories
	mu    sync.Mutex
	calls int
}

func (t *fakeTxRunner) InTransaction(_ context.Context, fn func(r *repository.Repositories) error) error {
	t.mu.Lock()
	t.calls++
	t.mu.Unlock()
	return fn(t.repos)
}

func (t *fakeTxRunner) transactions() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls
}

func newFakeRepositories() *repository.Repositories {
	repos := &repository.Repositories{
		League: newFakeLeagueRepo(),
		Team:   newFakeTeamRepo(),
		Match:  newFakeMatchRepo(),
		Odds:   newFakeOddsRepo(),
	}
	repos.Tx = &fakeTxRunner{repos: repos}
	return repos
}

// Fake data sources.

type fakeFixtureSource struct {
	fixtures []datasource.FixtureData
	err      error
}

func (s *fakeFixtureSource) FetchFixtures(_ context.Context, _ string, _, _ time.Time) ([]datasource.FixtureData, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.fixtures, nil
}

func (s *fakeFixtureSource) Name() string    { return "fake_fixtures" }
func (s *fakeFixtureSource) IsEnabled() bool { return true }

type fakeOddsSource struct {
	odds []datasource.OddsData
	err  error
}

func (s *fakeOddsSource) FetchOdds(_ context.Context, _ string, _, _ time.Time) ([]datasource.OddsData, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.odds, nil
}

func (s *fakeOddsSource) Name() string    { return "fake_odds" }
func (s *fakeOddsSource) IsEnabled() bool { return true }

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
