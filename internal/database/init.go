package database

import (
	"context"
	"fmt"
)

// Schema statements for the externally persisted fixture and odds data.
// Kept as idempotent DDL so the ingestion CLI can bootstrap a fresh database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS leagues (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		code TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		league_id UUID NOT NULL REFERENCES leagues(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (name, league_id)
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		id UUID PRIMARY KEY,
		external_id TEXT NOT NULL UNIQUE,
		utc_date TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL,
		league_id UUID NOT NULL REFERENCES leagues(id),
		home_team_id UUID NOT NULL REFERENCES teams(id),
		away_team_id UUID NOT NULL REFERENCES teams(id),
		home_score INT,
		away_score INT,
		home_score_h1 INT,
		away_score_h1 INT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_utc_date ON matches (utc_date)`,
	`CREATE TABLE IF NOT EXISTS odds (
		match_id UUID NOT NULL REFERENCES matches(id),
		home_win DOUBLE PRECISION,
		draw DOUBLE PRECISION,
		away_win DOUBLE PRECISION,
		u35_h1 DOUBLE PRECISION,
		u35_h2 DOUBLE PRECISION,
		over_55_corners DOUBLE PRECISION,
		team_y_wins_half DOUBLE PRECISION,
		bookmaker TEXT NOT NULL,
		last_update TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (match_id, bookmaker, last_update)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_odds_match_update ON odds (match_id, last_update DESC)`,
}

// InitSchema creates the persistence schema if it does not exist yet
func InitSchema(ctx context.Context, db *DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
