// Package main provides the entry point for the ingestion CLI tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/cornerflag/internal/config"
	"github.com/yourusername/cornerflag/internal/database"
	"github.com/yourusername/cornerflag/internal/datasource"
	applogger "github.com/yourusername/cornerflag/internal/logger"
	"github.com/yourusername/cornerflag/internal/repository"
	"github.com/yourusername/cornerflag/internal/scheduler"
	"github.com/yourusername/cornerflag/internal/service"
)

var (
	configFile string
	appLog     *logrus.Logger
	cfg        *config.Config
	db         *database.DB
	repos      *repository.Repositories
	ingestion  *service.IngestionService
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.AddCommand(syncFixturesCmd, syncOddsCmd, scheduleCmd, initSchemaCmd)
}

var rootCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fixture and odds ingestion for cornerflag",
	Long:  `Fetch fixtures and market odds from external providers and persist them for analysis.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return setupDependencies(cmd.Context(), cmd.Name() != "init-schema")
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

var syncFixturesCmd = &cobra.Command{
	Use:   "sync-fixtures",
	Short: "Fetch and store the fixture window for every configured competition",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := ingestion.SyncFixtures(cmd.Context())
		if err != nil {
			return err
		}
		appLog.WithFields(logrus.Fields{
			"fetched": report.FixturesFetched,
			"stored":  report.FixturesStored,
			"results": report.ResultsUpdated,
			"failed":  report.Failures,
		}).Info("Fixture sync finished")
		return nil
	},
}

var syncOddsCmd = &cobra.Command{
	Use:   "sync-odds",
	Short: "Fetch and store the latest odds snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := ingestion.SyncOdds(cmd.Context())
		if err != nil {
			return err
		}
		appLog.WithFields(logrus.Fields{
			"fetched": report.OddsFetched,
			"stored":  report.OddsStored,
			"failed":  report.Failures,
		}).Info("Odds sync finished")
		return nil
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the recurring fixture and odds sync jobs until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		sched := scheduler.NewScheduler(ingestion, appLog)
		if err := sched.ScheduleFixtureSync(cfg.Ingestion.FixtureSyncSchedule); err != nil {
			return err
		}
		if err := sched.ScheduleOddsSync(cfg.Ingestion.OddsSyncSchedule); err != nil {
			return err
		}
		if err := sched.Start(); err != nil {
			return err
		}

		appLog.WithField("next_run", sched.GetNextRun()).Info("Ingestion scheduler running")
		<-cmd.Context().Done()
		return sched.Stop()
	},
}

var initSchemaCmd = &cobra.Command{
	Use:   "init-schema",
	Short: "Create the database schema if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.InitSchema(cmd.Context(), db); err != nil {
			return err
		}
		appLog.Info("Database schema initialized")
		return nil
	},
}

func loadConfig() error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	appLog = applogger.NewLogger(cfg.App.LogLevel)
	return nil
}

func setupDependencies(ctx context.Context, needSources bool) error {
	var err error
	db, err = database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	repos, err = repository.NewRepositories(db)
	if err != nil {
		return err
	}

	if !needSources {
		return nil
	}

	factory := datasource.NewFactory(cfg, appLog)
	fixtureSource, err := factory.NewFixtureSource()
	if err != nil {
		return err
	}
	oddsSource, err := factory.NewOddsSource()
	if err != nil {
		return err
	}

	ingestion = service.NewIngestionService(fixtureSource, oddsSource, repos,
		cfg.FootballData.Competitions, cfg.Ingestion.BatchSize, appLog)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
