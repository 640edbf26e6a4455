package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus represents the lifecycle state of a fixture
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "SCHEDULED"
	MatchStatusTimed     MatchStatus = "TIMED"
	MatchStatusInPlay    MatchStatus = "IN_PLAY"
	MatchStatusFinished  MatchStatus = "FINISHED"
	MatchStatusPostponed MatchStatus = "POSTPONED"
	MatchStatusCancelled MatchStatus = "CANCELLED"
)

// Match represents a football fixture
type Match struct {
	ID          uuid.UUID   `db:"id" json:"id" validate:"required,uuid4"`
	ExternalID  string      `db:"external_id" json:"external_id"` // Provider fixture identifier
	UTCDate     time.Time   `db:"utc_date" json:"utc_date" validate:"required"`
	Status      MatchStatus `db:"status" json:"status" validate:"required"`
	LeagueID    uuid.UUID   `db:"league_id" json:"league_id" validate:"required,uuid4"`
	HomeTeamID  uuid.UUID   `db:"home_team_id" json:"home_team_id" validate:"required,uuid4"`
	AwayTeamID  uuid.UUID   `db:"away_team_id" json:"away_team_id" validate:"required,uuid4"`
	HomeTeam    string      `db:"home_team" json:"home_team"`
	AwayTeam    string      `db:"away_team" json:"away_team"`
	HomeScore   *int        `db:"home_score" json:"home_score"`
	AwayScore   *int        `db:"away_score" json:"away_score"`
	HomeScoreH1 *int        `db:"home_score_h1" json:"home_score_h1"`
	AwayScoreH1 *int        `db:"away_score_h1" json:"away_score_h1"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// IsUpcoming reports whether the match has not started yet
func (m *Match) IsUpcoming() bool {
	return m.Status == MatchStatusScheduled || m.Status == MatchStatusTimed
}

// HasResult reports whether final scores are available
func (m *Match) HasResult() bool {
	return m.Status == MatchStatusFinished && m.HomeScore != nil && m.AwayScore != nil
}
