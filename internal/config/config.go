// Package config provides configuration management for the cornerflag application.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App          AppConfig          `mapstructure:"app" validate:"required"`
	Database     DatabaseConfig     `mapstructure:"database" validate:"required"`
	FootballData FootballDataConfig `mapstructure:"football_data" validate:"required"`
	OddsProvider OddsProviderConfig `mapstructure:"odds_provider" validate:"required"`
	Analysis     AnalysisConfig     `mapstructure:"analysis" validate:"required"`
	Ingestion    IngestionConfig    `mapstructure:"ingestion" validate:"required"`
	Server       ServerConfig       `mapstructure:"server" validate:"required"`
	Metrics      MetricsConfig      `mapstructure:"metrics" validate:"required"`
	Features     FeaturesConfig     `mapstructure:"features"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host               string `mapstructure:"host" validate:"required"`
	Port               int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name               string `mapstructure:"name" validate:"required"`
	User               string `mapstructure:"user" validate:"required"`
	Password           string `mapstructure:"password" validate:"required"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"required,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"required,gt=0"`
}

// FootballDataConfig represents the fixture provider configuration
type FootballDataConfig struct {
	APIURL         string   `mapstructure:"api_url" validate:"required,url"`
	APIKey         string   `mapstructure:"api_key"`
	Competitions   []string `mapstructure:"competitions" validate:"required,min=1"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RateLimit      float64  `mapstructure:"rate_limit" validate:"required,gt=0"`
}

// OddsProviderConfig represents the odds provider configuration
type OddsProviderConfig struct {
	APIURL         string  `mapstructure:"api_url" validate:"required,url"`
	APIKey         string  `mapstructure:"api_key"`
	Bookmaker      string  `mapstructure:"bookmaker" validate:"required"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RateLimit      float64 `mapstructure:"rate_limit" validate:"required,gt=0"`
}

// AnalysisConfig represents the simulation and value-detection configuration
type AnalysisConfig struct {
	Iterations              int     `mapstructure:"iterations" validate:"required,gt=0"`
	Seed                    int64   `mapstructure:"seed"` // zero means non-deterministic
	Workers                 int     `mapstructure:"workers" validate:"gte=0"`
	MinExpectedValue        float64 `mapstructure:"min_expected_value" validate:"gte=0"`
	MaxResults              int     `mapstructure:"max_results" validate:"required,gt=0,lte=50"`
	HighConfidenceThreshold float64 `mapstructure:"high_confidence_threshold" validate:"required,gt=0,lt=1"`
	BookmakerMargin         float64 `mapstructure:"bookmaker_margin" validate:"required,gt=0,lt=1"`
	BestPriceMarkup         float64 `mapstructure:"best_price_markup" validate:"required,gte=1"`
	UpcomingWindowHours     int     `mapstructure:"upcoming_window_hours" validate:"required,gt=0"`
}

// IngestionConfig represents fixture and odds ingestion configuration
type IngestionConfig struct {
	FixtureSyncSchedule string `mapstructure:"fixture_sync_schedule" validate:"required"`
	OddsSyncSchedule    string `mapstructure:"odds_sync_schedule" validate:"required"`
	BatchSize           int    `mapstructure:"batch_size" validate:"required,gt=0"`
}

// ServerConfig represents the HTTP API server configuration
type ServerConfig struct {
	Port            int `mapstructure:"port" validate:"required,min=1,max=65535"`
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	HealthPort      int `mapstructure:"health_port" validate:"required,min=1,max=65535"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// FeaturesConfig represents feature flags
type FeaturesConfig struct {
	SyntheticOddsEnabled bool `mapstructure:"synthetic_odds_enabled"`
	CompoundQuoteEnabled bool `mapstructure:"compound_quote_enabled"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// FootballDataTimeout returns the fixture provider timeout as a duration
func (c *Config) FootballDataTimeout() time.Duration {
	return time.Duration(c.FootballData.TimeoutSeconds) * time.Second
}

// OddsProviderTimeout returns the odds provider timeout as a duration
func (c *Config) OddsProviderTimeout() time.Duration {
	return time.Duration(c.OddsProvider.TimeoutSeconds) * time.Second
}

// CacheTTL returns the API cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Server.CacheTTLSeconds) * time.Second
}
