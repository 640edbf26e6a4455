package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/cornerflag/internal/models"
)

const matchColumns = `
	m.id, m.external_id, m.utc_date, m.status, m.league_id,
	m.home_team_id, m.away_team_id, ht.name, at.name,
	m.home_score, m.away_score, m.home_score_h1, m.away_score_h1,
	m.created_at, m.updated_at
`

// PostgresMatchRepository implements MatchRepository for PostgreSQL
type PostgresMatchRepository struct {
	q querier
}

// newMatchRepository creates a match repository over a pool or transaction
func newMatchRepository(q querier) MatchRepository {
	return &PostgresMatchRepository{q: q}
}

// Upsert inserts a fixture or updates its date and status when the provider
// identifier already exists. The resolved row ID is written back to the model.
func (r *PostgresMatchRepository) Upsert(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (id, external_id, utc_date, status, league_id, home_team_id, away_team_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		ON CONFLICT (external_id) DO UPDATE SET
			utc_date = EXCLUDED.utc_date,
			status = EXCLUDED.status,
			updated_at = now()
		RETURNING id
	`

	err := r.q.QueryRow(ctx, query,
		match.ID, match.ExternalID, match.UTCDate, match.Status,
		match.LeagueID, match.HomeTeamID, match.AwayTeamID,
	).Scan(&match.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert match: %w", err)
	}

	return nil
}

// GetByID retrieves a match by ID
func (r *PostgresMatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM matches m
		JOIN teams ht ON ht.id = m.home_team_id
		JOIN teams at ON at.id = m.away_team_id
		WHERE m.id = $1
	`, matchColumns)

	match := &models.Match{}
	err := r.q.QueryRow(ctx, query, id).Scan(
		&match.ID, &match.ExternalID, &match.UTCDate, &match.Status, &match.LeagueID,
		&match.HomeTeamID, &match.AwayTeamID, &match.HomeTeam, &match.AwayTeam,
		&match.HomeScore, &match.AwayScore, &match.HomeScoreH1, &match.AwayScoreH1,
		&match.CreatedAt, &match.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// GetByExternalID retrieves a match by its provider fixture identifier
func (r *PostgresMatchRepository) GetByExternalID(ctx context.Context, externalID string) (*models.Match, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM matches m
		JOIN teams ht ON ht.id = m.home_team_id
		JOIN teams at ON at.id = m.away_team_id
		WHERE m.external_id = $1
	`, matchColumns)

	match := &models.Match{}
	err := r.q.QueryRow(ctx, query, externalID).Scan(
		&match.ID, &match.ExternalID, &match.UTCDate, &match.Status, &match.LeagueID,
		&match.HomeTeamID, &match.AwayTeamID, &match.HomeTeam, &match.AwayTeam,
		&match.HomeScore, &match.AwayScore, &match.HomeScoreH1, &match.AwayScoreH1,
		&match.CreatedAt, &match.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match by external id: %w", err)
	}

	return match, nil
}

// GetUpcoming retrieves scheduled matches kicking off inside the window
func (r *PostgresMatchRepository) GetUpcoming(ctx context.Context, from time.Time, window time.Duration) ([]*models.Match, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM matches m
		JOIN teams ht ON ht.id = m.home_team_id
		JOIN teams at ON at.id = m.away_team_id
		WHERE m.status IN ('SCHEDULED', 'TIMED') AND m.utc_date >= $1 AND m.utc_date <= $2
		ORDER BY m.utc_date ASC
	`, matchColumns)

	rows, err := r.q.Query(ctx, query, from, from.Add(window))
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming matches: %w", err)
	}
	defer rows.Close()

	var matches []*models.Match
	for rows.Next() {
		match := &models.Match{}
		err := rows.Scan(
			&match.ID, &match.ExternalID, &match.UTCDate, &match.Status, &match.LeagueID,
			&match.HomeTeamID, &match.AwayTeamID, &match.HomeTeam, &match.AwayTeam,
			&match.HomeScore, &match.AwayScore, &match.HomeScoreH1, &match.AwayScoreH1,
			&match.CreatedAt, &match.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, match)
	}

	return matches, rows.Err()
}

// UpdateScores records final and first-half scores after a match finishes
func (r *PostgresMatchRepository) UpdateScores(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches
		SET status = $2, home_score = $3, away_score = $4, home_score_h1 = $5, away_score_h1 = $6, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.q.Exec(ctx, query,
		match.ID, match.Status, match.HomeScore, match.AwayScore, match.HomeScoreH1, match.AwayScoreH1,
	)
	if err != nil {
		return fmt.Errorf("failed to update match scores: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
