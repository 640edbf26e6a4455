package datasource

import (
	"context"
	"fmt"
	"time"
)

// FixtureSource defines the interface for fetching fixtures from external providers
type FixtureSource interface {
	// FetchFixtures retrieves fixtures for a competition within the date range
	FetchFixtures(ctx context.Context, competition string, from, to time.Time) ([]FixtureData, error)

	// Name returns the name of the data source
	Name() string

	// IsEnabled returns whether this data source is currently enabled
	IsEnabled() bool
}

// OddsSource defines the interface for fetching market prices from external providers
type OddsSource interface {
	// FetchOdds retrieves the latest prices for fixtures within the date range
	FetchOdds(ctx context.Context, competition string, from, to time.Time) ([]OddsData, error)

	// Name returns the name of the data source
	Name() string

	// IsEnabled returns whether this data source is currently enabled
	IsEnabled() bool
}

// FixtureData represents a normalized fixture from any data source
type FixtureData struct {
	ExternalID      string    `json:"external_id"`      // Provider's unique fixture ID
	Competition     string    `json:"competition"`      // Competition code (e.g., "PL")
	CompetitionName string    `json:"competition_name"` // Competition display name
	UTCDate         time.Time `json:"utc_date"`         // Kickoff time UTC
	Status          string    `json:"status"`           // Provider status (SCHEDULED, TIMED, FINISHED, ...)
	HomeTeam        string    `json:"home_team"`        // Home team name
	AwayTeam        string    `json:"away_team"`        // Away team name
	HomeScore       *int      `json:"home_score"`       // Full-time home goals, nil until finished
	AwayScore       *int      `json:"away_score"`       // Full-time away goals, nil until finished
	HomeScoreH1     *int      `json:"home_score_h1"`    // Half-time home goals
	AwayScoreH1     *int      `json:"away_score_h1"`    // Half-time away goals
	FetchedAt       time.Time `json:"fetched_at"`       // When data was fetched
}

// OddsData represents normalized market prices from any data source, keyed by
// the provider fixture identifier. Missing markets stay nil.
type OddsData struct {
	MatchExternalID string    `json:"match_external_id"`
	Bookmaker       string    `json:"bookmaker"`
	HomeWin         *float64  `json:"home_win"`
	Draw            *float64  `json:"draw"`
	AwayWin         *float64  `json:"away_win"`
	Under35H1       *float64  `json:"u35_h1"`
	Under35H2       *float64  `json:"u35_h2"`
	Over55Corners   *float64  `json:"over_55_corners"`
	TeamWinsHalf    *float64  `json:"team_y_wins_half"`
	LastUpdate      time.Time `json:"last_update"`
}

// Error codes for data source operations
const (
	ErrCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrCodeAuthenticationFailed = "authentication_failed"
	ErrCodeNetworkError         = "network_error"
	ErrCodeServerError          = "server_error"
	ErrCodeInvalidResponse      = "invalid_response"
)

const dataSourceDisabledMsg = "data source is disabled"

// DataSourceError represents errors from data source operations
type DataSourceError struct {
	Source  string // Data source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e *DataSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Source, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Source, e.Code, e.Message)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the error is worth retrying on a later run
func (e *DataSourceError) IsRetryable() bool {
	return e.Code == ErrCodeRateLimitExceeded || e.Code == ErrCodeNetworkError || e.Code == ErrCodeServerError
}

// NewDataSourceError creates a new data source error
func NewDataSourceError(source, code, message string, err error) *DataSourceError {
	return &DataSourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
