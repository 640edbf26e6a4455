package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/cornerflag/internal/models"
)

// PostgresOddsRepository implements OddsRepository for PostgreSQL
type PostgresOddsRepository struct {
	q querier
}

// newOddsRepository creates an odds repository over a pool or transaction
func newOddsRepository(q querier) OddsRepository {
	return &PostgresOddsRepository{q: q}
}

// Insert inserts a single odds snapshot
func (r *PostgresOddsRepository) Insert(ctx context.Context, odds *models.MatchOdds) error {
	query := `
		INSERT INTO odds (match_id, home_win, draw, away_win, u35_h1, u35_h2, over_55_corners, team_y_wins_half, bookmaker, last_update)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.q.Exec(ctx, query,
		odds.MatchID, odds.HomeWin, odds.Draw, odds.AwayWin,
		odds.Under35H1, odds.Under35H2, odds.Over55Corners, odds.TeamWinsHalf,
		odds.Bookmaker, odds.LastUpdate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert odds snapshot: %w", err)
	}

	return nil
}

// InsertBatch inserts multiple odds snapshots using high-performance batch insert
func (r *PostgresOddsRepository) InsertBatch(ctx context.Context, odds []*models.MatchOdds) error {
	if len(odds) == 0 {
		return nil
	}

	// Use COPY for high-performance bulk insert
	columns := []string{"match_id", "home_win", "draw", "away_win", "u35_h1", "u35_h2", "over_55_corners", "team_y_wins_half", "bookmaker", "last_update"}

	copyFromSource := make([][]interface{}, len(odds))
	for i, o := range odds {
		copyFromSource[i] = []interface{}{
			o.MatchID, o.HomeWin, o.Draw, o.AwayWin,
			o.Under35H1, o.Under35H2, o.Over55Corners, o.TeamWinsHalf,
			o.Bookmaker, o.LastUpdate,
		}
	}

	count, err := r.q.CopyFrom(ctx, pgx.Identifier{"odds"}, columns, pgx.CopyFromRows(copyFromSource))
	if err != nil {
		return fmt.Errorf("failed to batch insert odds snapshots: %w", err)
	}

	if count != int64(len(odds)) {
		return fmt.Errorf("inserted %d rows, expected %d", count, len(odds))
	}

	return nil
}

// GetLatest retrieves the most recent odds snapshot for a match
func (r *PostgresOddsRepository) GetLatest(ctx context.Context, matchID uuid.UUID) (*models.MatchOdds, error) {
	query := `
		SELECT match_id, home_win, draw, away_win, u35_h1, u35_h2, over_55_corners, team_y_wins_half, bookmaker, last_update
		FROM odds
		WHERE match_id = $1
		ORDER BY last_update DESC
		LIMIT 1
	`

	odds := &models.MatchOdds{}
	err := r.q.QueryRow(ctx, query, matchID).Scan(
		&odds.MatchID, &odds.HomeWin, &odds.Draw, &odds.AwayWin,
		&odds.Under35H1, &odds.Under35H2, &odds.Over55Corners, &odds.TeamWinsHalf,
		&odds.Bookmaker, &odds.LastUpdate,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest odds: %w", err)
	}

	return odds, nil
}

// GetLatestForMatches retrieves the most recent odds snapshot for each match
func (r *PostgresOddsRepository) GetLatestForMatches(ctx context.Context, matchIDs []uuid.UUID) (map[uuid.UUID]*models.MatchOdds, error) {
	if len(matchIDs) == 0 {
		return map[uuid.UUID]*models.MatchOdds{}, nil
	}

	query := `
		SELECT DISTINCT ON (match_id)
			match_id, home_win, draw, away_win, u35_h1, u35_h2, over_55_corners, team_y_wins_half, bookmaker, last_update
		FROM odds
		WHERE match_id = ANY($1)
		ORDER BY match_id, last_update DESC
	`

	rows, err := r.q.Query(ctx, query, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest odds: %w", err)
	}
	defer rows.Close()

	latest := make(map[uuid.UUID]*models.MatchOdds, len(matchIDs))
	for rows.Next() {
		odds := &models.MatchOdds{}
		err := rows.Scan(
			&odds.MatchID, &odds.HomeWin, &odds.Draw, &odds.AwayWin,
			&odds.Under35H1, &odds.Under35H2, &odds.Over55Corners, &odds.TeamWinsHalf,
			&odds.Bookmaker, &odds.LastUpdate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan odds: %w", err)
		}
		latest[odds.MatchID] = odds
	}

	return latest, rows.Err()
}
