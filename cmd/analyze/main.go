// Package main provides the entry point for the one-shot analysis CLI tool.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/cornerflag/internal/analysis"
	"github.com/yourusername/cornerflag/internal/config"
	"github.com/yourusername/cornerflag/internal/database"
	"github.com/yourusername/cornerflag/internal/logger"
	"github.com/yourusername/cornerflag/internal/models"
	"github.com/yourusername/cornerflag/internal/rates"
	"github.com/yourusername/cornerflag/internal/repository"
	"github.com/yourusername/cornerflag/internal/service"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		sortBy     = flag.String("sort", "ev", "Sort policy: ev, edge, date")
		limit      = flag.Int("limit", 0, "Max results (0 uses configured max)")
		seed       = flag.Int64("seed", 0, "Override simulation seed (0 keeps configured seed)")
		iterations = flag.Int("iterations", 0, "Override iterations per simulation (0 keeps configured value)")
		bankroll   = flag.Float64("bankroll", 0, "Bankroll for Kelly stake suggestions (0 disables)")
		asJSON     = flag.Bool("json", false, "Emit results as JSON")
	)
	flag.Parse()

	appLog := logrus.New()
	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to load config")
	}
	if err := config.Validate(cfg); err != nil {
		appLog.WithError(err).Fatal("Invalid configuration")
	}
	appLog = logger.NewLogger(cfg.App.LogLevel)

	if *seed != 0 {
		cfg.Analysis.Seed = *seed
	}
	if *iterations > 0 {
		cfg.Analysis.Iterations = *iterations
	}

	policy, err := parseSortPolicy(*sortBy)
	if err != nil {
		appLog.WithError(err).Fatal("Invalid sort policy")
	}

	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	repos, err := repository.NewRepositories(db)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to initialize repositories")
	}

	evaluator := analysis.NewEvaluator(analysis.Config{
		Iterations:              cfg.Analysis.Iterations,
		Seed:                    cfg.Analysis.Seed,
		HighConfidenceThreshold: cfg.Analysis.HighConfidenceThreshold,
		BookmakerMargin:         cfg.Analysis.BookmakerMargin,
		BestPriceMarkup:         cfg.Analysis.BestPriceMarkup,
	})
	generator := rates.NewHeuristicGenerator(cfg.Analysis.Seed)
	analyzer := analysis.NewAnalyzer(evaluator, generator, cfg.Analysis.Workers, appLog)
	svc := service.NewAnalysisService(repos, analyzer, cfg.Analysis, cfg.Features, appLog)

	bets, err := svc.FindValueBets(ctx, policy, *limit)
	if err != nil {
		appLog.WithError(err).Fatal("Analysis failed")
	}

	if *asJSON {
		if err := json.NewEncoder(os.Stdout).Encode(bets); err != nil {
			appLog.WithError(err).Fatal("Failed to encode results")
		}
		return
	}

	printTable(bets, *bankroll)
}

func parseSortPolicy(raw string) (analysis.SortPolicy, error) {
	switch raw {
	case "ev":
		return analysis.SortByExpectedValue, nil
	case "edge":
		return analysis.SortByEdge, nil
	case "date":
		return analysis.SortByDate, nil
	default:
		return "", fmt.Errorf("unknown sort policy %q", raw)
	}
}

func printTable(bets []models.ValueAssessment, bankroll float64) {
	if len(bets) == 0 {
		fmt.Println("No positive expected value opportunities found.")
		return
	}

	fmt.Printf("%-22s %-22s %-6s %-10s %-8s %-8s %-8s %-6s %-10s\n",
		"HOME", "AWAY", "SIDE", "KICKOFF", "P(MODEL)", "ODDS", "EV", "TIER", "STAKE")
	for i := range bets {
		b := &bets[i]
		stake := "-"
		if bankroll > 0 {
			amount := analysis.KellyStake(b.ModelProbability, b.MarketOdds, decimal.NewFromFloat(bankroll), 0.25)
			stake = amount.StringFixed(2)
		}
		fmt.Printf("%-22s %-22s %-6s %-10s %-8.4f %-8.2f %-8.4f %-6s %-10s\n",
			truncate(b.HomeTeam, 22), truncate(b.AwayTeam, 22), b.Orientation,
			b.KickoffUTC.Format("Jan 02"), b.ModelProbability, b.MarketOdds,
			b.ExpectedValue, b.ConfidenceTier, stake)
	}
	fmt.Printf("\n%d opportunities evaluated at %s\n", len(bets), time.Now().UTC().Format(time.RFC3339))
}

// truncate shortens s to at most n runes so multibyte team names are never
// cut mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
