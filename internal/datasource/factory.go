package datasource

import (
	"github.com/sirupsen/logrus"
	"github.com/yourusername/cornerflag/internal/config"
)

// Factory creates data source implementations based on configuration
type Factory struct {
	logger *logrus.Logger
	config *config.Config
}

// NewFactory creates a new data source factory
func NewFactory(cfg *config.Config, logger *logrus.Logger) *Factory {
	return &Factory{
		logger: logger,
		config: cfg,
	}
}

// NewFixtureSource creates the fixture provider client. A missing API key
// yields a disabled client rather than an error so the analysis surfaces can
// still run against previously ingested data.
func (f *Factory) NewFixtureSource() (FixtureSource, error) {
	enabled := f.config.FootballData.APIKey != ""
	if !enabled {
		f.logger.Warn("Football data API key not set, fixture source disabled")
	}

	httpCfg := DefaultHTTPClientConfig()
	httpCfg.Timeout = f.config.FootballDataTimeout()
	httpCfg.RateLimit = f.config.FootballData.RateLimit
	httpClient := NewRateLimitedHTTPClient(httpCfg, f.logger)

	return NewFootballDataClient(httpClient, f.config.FootballData.APIURL, f.config.FootballData.APIKey, enabled, f.logger), nil
}

// NewOddsSource creates the odds provider client. A missing API key yields a
// disabled client; synthetic pricing covers matches without market odds.
func (f *Factory) NewOddsSource() (OddsSource, error) {
	enabled := f.config.OddsProvider.APIKey != ""
	if !enabled {
		f.logger.Warn("Odds provider API key not set, odds source disabled")
	}

	httpCfg := DefaultHTTPClientConfig()
	httpCfg.Timeout = f.config.OddsProviderTimeout()
	httpCfg.RateLimit = f.config.OddsProvider.RateLimit
	httpClient := NewRateLimitedHTTPClient(httpCfg, f.logger)

	return NewOddsAPIClient(httpClient, f.config.OddsProvider.APIURL, f.config.OddsProvider.APIKey,
		f.config.OddsProvider.Bookmaker, enabled, f.logger), nil
}
