package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/cornerflag/internal/models"
)

// PostgresTeamRepository implements TeamRepository for PostgreSQL
type PostgresTeamRepository struct {
	q querier
}

// newTeamRepository creates a team repository over a pool or transaction
func newTeamRepository(q querier) TeamRepository {
	return &PostgresTeamRepository{q: q}
}

// Upsert inserts a team or refreshes its timestamp when it already exists.
// The resolved row ID is written back to the model.
func (r *PostgresTeamRepository) Upsert(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (id, name, league_id, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (name, league_id) DO UPDATE SET updated_at = now()
		RETURNING id
	`

	err := r.q.QueryRow(ctx, query, team.ID, team.Name, team.LeagueID).Scan(&team.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert team: %w", err)
	}

	return nil
}

// GetByID retrieves a team by ID
func (r *PostgresTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	query := `
		SELECT id, name, league_id, created_at, updated_at
		FROM teams
		WHERE id = $1
	`

	team := &models.Team{}
	err := r.q.QueryRow(ctx, query, id).Scan(
		&team.ID, &team.Name, &team.LeagueID, &team.CreatedAt, &team.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return team, nil
}

// GetByLeague retrieves all teams in a league
func (r *PostgresTeamRepository) GetByLeague(ctx context.Context, leagueID uuid.UUID) ([]*models.Team, error) {
	query := `
		SELECT id, name, league_id, created_at, updated_at
		FROM teams
		WHERE league_id = $1
		ORDER BY name ASC
	`

	rows, err := r.q.Query(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams by league: %w", err)
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		team := &models.Team{}
		if err := rows.Scan(&team.ID, &team.Name, &team.LeagueID, &team.CreatedAt, &team.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}
