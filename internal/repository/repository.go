package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yourusername/cornerflag/internal/database"
)

// querier is the subset of pgx operations shared by the connection pool and
// an open transaction, so the same repository code runs against either.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// TxRunner executes a function against repositories bound to a single
// transaction. The transaction is rolled back when the function errors.
type TxRunner interface {
	InTransaction(ctx context.Context, fn func(r *Repositories) error) error
}

// Repositories holds all repository implementations
type Repositories struct {
	League LeagueRepository
	Team   TeamRepository
	Match  MatchRepository
	Odds   OddsRepository
	Tx     TxRunner
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	repos := newRepositories(db.GetPool())
	repos.Tx = &pgxTxRunner{db: db}
	return repos, nil
}

func newRepositories(q querier) *Repositories {
	return &Repositories{
		League: newLeagueRepository(q),
		Team:   newTeamRepository(q),
		Match:  newMatchRepository(q),
		Odds:   newOddsRepository(q),
	}
}

type pgxTxRunner struct {
	db *database.DB
}

func (r *pgxTxRunner) InTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(newRepositories(tx))
	})
}
