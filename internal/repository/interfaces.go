// Package repository implements PostgreSQL persistence for fixtures,
// teams, leagues and odds. The analysis core never touches this layer
// directly; services load data here and hand plain records to the core.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/cornerflag/internal/models"
)

// LeagueRepository manages league records
type LeagueRepository interface {
	Upsert(ctx context.Context, league *models.League) error
	GetByCode(ctx context.Context, code string) (*models.League, error)
	GetAll(ctx context.Context) ([]*models.League, error)
}

// TeamRepository manages team records
type TeamRepository interface {
	Upsert(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByLeague(ctx context.Context, leagueID uuid.UUID) ([]*models.Team, error)
}

// MatchRepository manages fixture records
type MatchRepository interface {
	Upsert(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.Match, error)
	GetUpcoming(ctx context.Context, from time.Time, window time.Duration) ([]*models.Match, error)
	UpdateScores(ctx context.Context, match *models.Match) error
}

// OddsRepository manages odds snapshots
type OddsRepository interface {
	Insert(ctx context.Context, odds *models.MatchOdds) error
	InsertBatch(ctx context.Context, odds []*models.MatchOdds) error
	GetLatest(ctx context.Context, matchID uuid.UUID) (*models.MatchOdds, error)
	GetLatestForMatches(ctx context.Context, matchIDs []uuid.UUID) (map[uuid.UUID]*models.MatchOdds, error)
}
