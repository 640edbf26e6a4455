package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/cornerflag/internal/models"
)

// PostgresLeagueRepository implements LeagueRepository for PostgreSQL
type PostgresLeagueRepository struct {
	q querier
}

// newLeagueRepository creates a league repository over a pool or transaction
func newLeagueRepository(q querier) LeagueRepository {
	return &PostgresLeagueRepository{q: q}
}

// Upsert inserts a league or updates its name when the code already exists.
// The resolved row ID is written back to the model.
func (r *PostgresLeagueRepository) Upsert(ctx context.Context, league *models.League) error {
	query := `
		INSERT INTO leagues (id, name, code, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, updated_at = now()
		RETURNING id
	`

	err := r.q.QueryRow(ctx, query, league.ID, league.Name, league.Code).Scan(&league.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert league: %w", err)
	}

	return nil
}

// GetByCode retrieves a league by its provider competition code
func (r *PostgresLeagueRepository) GetByCode(ctx context.Context, code string) (*models.League, error) {
	query := `
		SELECT id, name, code, created_at, updated_at
		FROM leagues
		WHERE code = $1
	`

	league := &models.League{}
	err := r.q.QueryRow(ctx, query, code).Scan(
		&league.ID, &league.Name, &league.Code, &league.CreatedAt, &league.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get league by code: %w", err)
	}

	return league, nil
}

// GetAll retrieves all leagues
func (r *PostgresLeagueRepository) GetAll(ctx context.Context) ([]*models.League, error) {
	query := `
		SELECT id, name, code, created_at, updated_at
		FROM leagues
		ORDER BY name ASC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leagues: %w", err)
	}
	defer rows.Close()

	var leagues []*models.League
	for rows.Next() {
		league := &models.League{}
		if err := rows.Scan(&league.ID, &league.Name, &league.Code, &league.CreatedAt, &league.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan league: %w", err)
		}
		leagues = append(leagues, league)
	}

	return leagues, rows.Err()
}
