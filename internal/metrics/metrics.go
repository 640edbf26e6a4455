// Package metrics provides the centralized Prometheus metrics registry for
// the value detection pipeline.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	SimulationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cornerflag",
		Name:      "simulations_total",
		Help:      "Total number of Monte Carlo simulations run",
	})
	AssessmentsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cornerflag",
		Name:      "assessments_total",
		Help:      "Total number of value assessments produced",
	})
	ValueBetsFoundTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cornerflag",
		Name:      "value_bets_found_total",
		Help:      "Total number of positive expected value assessments surfaced",
	})
	MatchesSkippedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cornerflag",
		Name:      "matches_skipped_total",
		Help:      "Total number of matches skipped during analysis",
	}, []string{"reason"})
	FixturesIngestedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cornerflag",
		Name:      "fixtures_ingested_total",
		Help:      "Total number of fixtures ingested",
	}, []string{"status"})
	OddsSnapshotsIngestedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cornerflag",
		Name:      "odds_snapshots_ingested_total",
		Help:      "Total number of odds snapshots ingested",
	})
	DataSourceErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cornerflag",
		Name:      "data_source_errors_total",
		Help:      "Total number of data source errors",
	}, []string{"source"})
)

// Gauge metrics
var (
	UpcomingMatches = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "cornerflag",
		Name:      "upcoming_matches",
		Help:      "Number of upcoming matches inside the analysis window",
	})
	LastAnalysisTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "cornerflag",
		Name:      "last_analysis_timestamp_seconds",
		Help:      "Unix timestamp of the last completed analysis run",
	})
	LastAnalysisValueBets = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "cornerflag",
		Name:      "last_analysis_value_bets",
		Help:      "Number of value bets surfaced by the last analysis run",
	})
)

// Histogram metrics
var (
	AnalysisRunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cornerflag",
		Name:      "analysis_run_duration_seconds",
		Help:      "Duration of full analysis runs in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
	})
	SimulationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cornerflag",
		Name:      "simulation_duration_seconds",
		Help:      "Duration of per-match simulations in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	IngestionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cornerflag",
		Name:      "ingestion_duration_seconds",
		Help:      "Duration of ingestion runs in seconds",
		Buckets:   []float64{0.5, 1, 5, 10, 30, 60, 300},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(SimulationsTotal)
		registry.MustRegister(AssessmentsTotal)
		registry.MustRegister(ValueBetsFoundTotal)
		registry.MustRegister(MatchesSkippedTotal)
		registry.MustRegister(FixturesIngestedTotal)
		registry.MustRegister(OddsSnapshotsIngestedTotal)
		registry.MustRegister(DataSourceErrorsTotal)

		registry.MustRegister(UpcomingMatches)
		registry.MustRegister(LastAnalysisTimestamp)
		registry.MustRegister(LastAnalysisValueBets)

		registry.MustRegister(AnalysisRunDuration)
		registry.MustRegister(SimulationDuration)
		registry.MustRegister(IngestionDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordSimulation records a completed per-match simulation.
func RecordSimulation(durationSeconds float64) {
	SimulationsTotal.Inc()
	SimulationDuration.Observe(durationSeconds)
}

// RecordAssessment records a produced value assessment.
func RecordAssessment(hasValue bool) {
	AssessmentsTotal.Inc()
	if hasValue {
		ValueBetsFoundTotal.Inc()
	}
}

// RecordMatchSkipped records a match skipped during analysis.
func RecordMatchSkipped(reason string) {
	MatchesSkippedTotal.WithLabelValues(reason).Inc()
}

// RecordAnalysisRun records a completed analysis run.
func RecordAnalysisRun(durationSeconds float64, upcoming, valueBets int) {
	AnalysisRunDuration.Observe(durationSeconds)
	UpcomingMatches.Set(float64(upcoming))
	LastAnalysisValueBets.Set(float64(valueBets))
	LastAnalysisTimestamp.SetToCurrentTime()
}

// RecordFixtureIngested records an ingested fixture by outcome.
func RecordFixtureIngested(status string) {
	FixturesIngestedTotal.WithLabelValues(status).Inc()
}

// RecordOddsSnapshots records a batch of ingested odds snapshots.
func RecordOddsSnapshots(count int) {
	OddsSnapshotsIngestedTotal.Add(float64(count))
}

// RecordDataSourceError records an error from a data source.
func RecordDataSourceError(source string) {
	DataSourceErrorsTotal.WithLabelValues(source).Inc()
}

// RecordIngestionDuration records ingestion run duration.
func RecordIngestionDuration(durationSeconds float64) {
	IngestionDuration.Observe(durationSeconds)
}
