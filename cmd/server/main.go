// Package main provides the entry point for the cornerflag API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/cornerflag/internal/analysis"
	"github.com/yourusername/cornerflag/internal/api"
	"github.com/yourusername/cornerflag/internal/config"
	"github.com/yourusername/cornerflag/internal/database"
	"github.com/yourusername/cornerflag/internal/datasource"
	"github.com/yourusername/cornerflag/internal/health"
	"github.com/yourusername/cornerflag/internal/logger"
	"github.com/yourusername/cornerflag/internal/metrics"
	"github.com/yourusername/cornerflag/internal/rates"
	"github.com/yourusername/cornerflag/internal/repository"
	"github.com/yourusername/cornerflag/internal/scheduler"
	"github.com/yourusername/cornerflag/internal/service"
)

// Build information - set via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(os.Getenv("CORNERFLAG_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load AWS secrets if enabled
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
		"version":     Version,
	}).Info("Cornerflag server starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()
	appLog.Info("Database connection established")

	repos, err := repository.NewRepositories(db)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to initialize repositories")
	}

	metrics.InitRegistry()

	// Analysis pipeline
	evaluator := analysis.NewEvaluator(analysis.Config{
		Iterations:              cfg.Analysis.Iterations,
		Seed:                    cfg.Analysis.Seed,
		HighConfidenceThreshold: cfg.Analysis.HighConfidenceThreshold,
		BookmakerMargin:         cfg.Analysis.BookmakerMargin,
		BestPriceMarkup:         cfg.Analysis.BestPriceMarkup,
	})
	generator := rates.NewHeuristicGenerator(cfg.Analysis.Seed)
	analyzer := analysis.NewAnalyzer(evaluator, generator, cfg.Analysis.Workers, appLog)
	analysisSvc := service.NewAnalysisService(repos, analyzer, cfg.Analysis, cfg.Features, appLog)

	// Ingestion pipeline and scheduler
	factory := datasource.NewFactory(cfg, appLog)
	fixtureSource, err := factory.NewFixtureSource()
	if err != nil {
		appLog.WithError(err).Fatal("Failed to create fixture source")
	}
	oddsSource, err := factory.NewOddsSource()
	if err != nil {
		appLog.WithError(err).Fatal("Failed to create odds source")
	}
	ingestionSvc := service.NewIngestionService(fixtureSource, oddsSource, repos,
		cfg.FootballData.Competitions, cfg.Ingestion.BatchSize, appLog)

	sched := scheduler.NewScheduler(ingestionSvc, appLog)
	if fixtureSource.IsEnabled() {
		if err := sched.ScheduleFixtureSync(cfg.Ingestion.FixtureSyncSchedule); err != nil {
			appLog.WithError(err).Fatal("Failed to schedule fixture sync")
		}
	}
	if oddsSource.IsEnabled() {
		if err := sched.ScheduleOddsSync(cfg.Ingestion.OddsSyncSchedule); err != nil {
			appLog.WithError(err).Fatal("Failed to schedule odds sync")
		}
	}
	if fixtureSource.IsEnabled() || oddsSource.IsEnabled() {
		if err := sched.Start(); err != nil {
			appLog.WithError(err).Fatal("Failed to start scheduler")
		}
		defer sched.Stop()
	}

	// Health server
	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Port:        cfg.Server.HealthPort,
		Logger:      appLog,
		DB:          db,
	})
	if err := healthServer.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}
	healthServer.SetReady(true)

	// API server, blocks until shutdown
	apiServer := api.NewServer(api.Config{
		Port:           cfg.Server.Port,
		CacheTTL:       cfg.CacheTTL(),
		RequestTimeout: 2 * time.Minute,
		MetricsEnabled: cfg.Metrics.Enabled,
	}, analysisSvc, appLog)

	if err := apiServer.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("API server failed")
	}

	appLog.Info("Cornerflag server stopped")
}
