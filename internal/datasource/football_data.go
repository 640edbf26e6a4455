package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const footballDataSourceName = "football_data"

// FootballDataClient implements FixtureSource for the football-data.org v4 API
type FootballDataClient struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	apiKey     string
	enabled    bool
	logger     *logrus.Logger
}

// footballDataMatchesResponse mirrors the provider's matches payload
type footballDataMatchesResponse struct {
	Competition struct {
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"competition"`
	Matches []footballDataMatch `json:"matches"`
}

type footballDataMatch struct {
	ID       int64  `json:"id"`
	UTCDate  string `json:"utcDate"`
	Status   string `json:"status"`
	HomeTeam struct {
		Name string `json:"name"`
	} `json:"homeTeam"`
	AwayTeam struct {
		Name string `json:"name"`
	} `json:"awayTeam"`
	Score struct {
		FullTime struct {
			Home *int `json:"home"`
			Away *int `json:"away"`
		} `json:"fullTime"`
		HalfTime struct {
			Home *int `json:"home"`
			Away *int `json:"away"`
		} `json:"halfTime"`
	} `json:"score"`
}

// NewFootballDataClient creates a new football-data.org API client
func NewFootballDataClient(httpClient *RateLimitedHTTPClient, baseURL, apiKey string, enabled bool, logger *logrus.Logger) *FootballDataClient {
	return &FootballDataClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		enabled:    enabled,
		logger:     logger,
	}
}

// FetchFixtures retrieves fixtures for a competition within the date range
func (c *FootballDataClient) FetchFixtures(ctx context.Context, competition string, from, to time.Time) ([]FixtureData, error) {
	if !c.enabled {
		return nil, NewDataSourceError(footballDataSourceName, ErrCodeNetworkError, dataSourceDisabledMsg, nil)
	}

	url := fmt.Sprintf("%s/competitions/%s/matches?dateFrom=%s&dateTo=%s",
		c.baseURL, competition, from.Format("2006-01-02"), to.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewDataSourceError(footballDataSourceName, ErrCodeNetworkError, "failed to create request", err)
	}

	req.Header.Set("X-Auth-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, NewDataSourceError(footballDataSourceName, ErrCodeNetworkError, "failed to fetch fixtures", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(footballDataSourceName, resp); err != nil {
		return nil, err
	}

	var payload footballDataMatchesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, NewDataSourceError(footballDataSourceName, ErrCodeInvalidResponse, "failed to decode fixtures response", err)
	}

	fetchedAt := time.Now().UTC()
	fixtures := make([]FixtureData, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		kickoff, err := time.Parse(time.RFC3339, m.UTCDate)
		if err != nil {
			c.logger.WithError(err).WithField("fixture_id", m.ID).Warn("Skipping fixture with unparseable kickoff time")
			continue
		}

		fixtures = append(fixtures, FixtureData{
			ExternalID:      fmt.Sprintf("%d", m.ID),
			Competition:     payload.Competition.Code,
			CompetitionName: payload.Competition.Name,
			UTCDate:         kickoff.UTC(),
			Status:          m.Status,
			HomeTeam:        m.HomeTeam.Name,
			AwayTeam:        m.AwayTeam.Name,
			HomeScore:       m.Score.FullTime.Home,
			AwayScore:       m.Score.FullTime.Away,
			HomeScoreH1:     m.Score.HalfTime.Home,
			AwayScoreH1:     m.Score.HalfTime.Away,
			FetchedAt:       fetchedAt,
		})
	}

	c.logger.WithFields(logrus.Fields{
		"source":      footballDataSourceName,
		"competition": competition,
		"fixtures":    len(fixtures),
	}).Debug("Fetched fixtures")

	return fixtures, nil
}

// Name returns the name of the data source
func (c *FootballDataClient) Name() string {
	return footballDataSourceName
}

// IsEnabled returns whether this data source is currently enabled
func (c *FootballDataClient) IsEnabled() bool {
	return c.enabled
}

// checkStatus maps provider HTTP status codes onto data source errors
func checkStatus(source string, resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return NewDataSourceError(source, ErrCodeAuthenticationFailed, "invalid API key", nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return NewDataSourceError(source, ErrCodeRateLimitExceeded, "rate limit exceeded", nil)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return NewDataSourceError(source, ErrCodeServerError,
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)), nil)
	}
}
