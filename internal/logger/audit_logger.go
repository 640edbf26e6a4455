// Package logger provides audit logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AuditLogger provides a dedicated audit trail for surfaced opportunities
// and ingestion runs.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogValueBetSurfaced records a positive-EV assessment shown to callers.
func (al *AuditLogger) LogValueBetSurfaced(matchID, orientation string, modelProbability, marketOdds, edge, expectedValue float64, priceSource string, kickoff time.Time) {
	al.WithFields(logrus.Fields{
		"match_id":          matchID,
		"orientation":       orientation,
		"model_probability": modelProbability,
		"market_odds":       marketOdds,
		"edge":              edge,
		"expected_value":    expectedValue,
		"price_source":      priceSource,
		"kickoff":           kickoff.Unix(),
	}).Info("Value bet surfaced")
}

// LogAnalysisRun records a completed batch analysis.
func (al *AuditLogger) LogAnalysisRun(matchesAnalyzed, matchesSkipped, valueBets int, duration time.Duration) {
	al.WithFields(logrus.Fields{
		"matches_analyzed": matchesAnalyzed,
		"matches_skipped":  matchesSkipped,
		"value_bets":       valueBets,
		"duration_ms":      duration.Milliseconds(),
	}).Info("Analysis run completed")
}

// LogIngestionRun records a completed fixture or odds sync.
func (al *AuditLogger) LogIngestionRun(source string, recordsFetched, recordsStored, failures int, duration time.Duration) {
	al.WithFields(logrus.Fields{
		"source":          source,
		"records_fetched": recordsFetched,
		"records_stored":  recordsStored,
		"failures":        failures,
		"duration_ms":     duration.Milliseconds(),
	}).Info("Ingestion run completed")
}
