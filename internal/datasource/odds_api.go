package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const oddsAPISourceName = "odds_api"

// Provider market keys. The niche half-goal and corner markets are only
// carried by a handful of bookmakers, so absent keys are expected.
const (
	marketHomeWin       = "home_win"
	marketDraw          = "draw"
	marketAwayWin       = "away_win"
	marketUnder35H1     = "under_3_5_first_half"
	marketUnder35H2     = "under_3_5_second_half"
	marketOver55Corners = "over_5_5_corners"
	marketTeamWinsHalf  = "team_wins_either_half"
)

// OddsAPIClient implements OddsSource for a generic odds aggregator API
type OddsAPIClient struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	apiKey     string
	bookmaker  string
	enabled    bool
	logger     *logrus.Logger
}

type oddsAPIEvent struct {
	MatchID    string             `json:"matchId"`
	Bookmaker  string             `json:"bookmaker"`
	LastUpdate string             `json:"lastUpdate"`
	Markets    map[string]float64 `json:"markets"`
}

// NewOddsAPIClient creates a new odds aggregator API client
func NewOddsAPIClient(httpClient *RateLimitedHTTPClient, baseURL, apiKey, bookmaker string, enabled bool, logger *logrus.Logger) *OddsAPIClient {
	return &OddsAPIClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		bookmaker:  bookmaker,
		enabled:    enabled,
		logger:     logger,
	}
}

// FetchOdds retrieves the latest prices for fixtures within the date range
func (c *OddsAPIClient) FetchOdds(ctx context.Context, competition string, from, to time.Time) ([]OddsData, error) {
	if !c.enabled {
		return nil, NewDataSourceError(oddsAPISourceName, ErrCodeNetworkError, dataSourceDisabledMsg, nil)
	}

	url := fmt.Sprintf("%s/odds?competition=%s&bookmaker=%s&from=%s&to=%s",
		c.baseURL, competition, c.bookmaker, from.Format("2006-01-02"), to.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewDataSourceError(oddsAPISourceName, ErrCodeNetworkError, "failed to create request", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, NewDataSourceError(oddsAPISourceName, ErrCodeNetworkError, "failed to fetch odds", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(oddsAPISourceName, resp); err != nil {
		return nil, err
	}

	var events []oddsAPIEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, NewDataSourceError(oddsAPISourceName, ErrCodeInvalidResponse, "failed to decode odds response", err)
	}

	odds := make([]OddsData, 0, len(events))
	for _, ev := range events {
		lastUpdate, err := time.Parse(time.RFC3339, ev.LastUpdate)
		if err != nil {
			lastUpdate = time.Now().UTC()
		}

		data := OddsData{
			MatchExternalID: ev.MatchID,
			Bookmaker:       ev.Bookmaker,
			HomeWin:         marketPrice(ev.Markets, marketHomeWin),
			Draw:            marketPrice(ev.Markets, marketDraw),
			AwayWin:         marketPrice(ev.Markets, marketAwayWin),
			Under35H1:       marketPrice(ev.Markets, marketUnder35H1),
			Under35H2:       marketPrice(ev.Markets, marketUnder35H2),
			Over55Corners:   marketPrice(ev.Markets, marketOver55Corners),
			TeamWinsHalf:    marketPrice(ev.Markets, marketTeamWinsHalf),
			LastUpdate:      lastUpdate.UTC(),
		}
		if data.Bookmaker == "" {
			data.Bookmaker = c.bookmaker
		}
		odds = append(odds, data)
	}

	c.logger.WithFields(logrus.Fields{
		"source":      oddsAPISourceName,
		"competition": competition,
		"events":      len(odds),
	}).Debug("Fetched odds")

	return odds, nil
}

// Name returns the name of the data source
func (c *OddsAPIClient) Name() string {
	return oddsAPISourceName
}

// IsEnabled returns whether this data source is currently enabled
func (c *OddsAPIClient) IsEnabled() bool {
	return c.enabled
}

// marketPrice returns a pointer to the quoted price, or nil when the market
// is absent or the quote is not a valid decimal price
func marketPrice(markets map[string]float64, key string) *float64 {
	price, ok := markets[key]
	if !ok || price <= 1 {
		return nil
	}
	return &price
}
