package models

import (
	"time"

	"github.com/google/uuid"
)

// ConfidenceTier classifies a model probability. Only two tiers exist;
// everything below the high threshold collapses into Medium. This is a
// known coarse-grained classification.
type ConfidenceTier string

const (
	ConfidenceMedium ConfidenceTier = "Medium"
	ConfidenceHigh   ConfidenceTier = "High"
)

// PriceSource records where the market odds on an assessment came from
type PriceSource string

const (
	PriceSourceMarket    PriceSource = "market"
	PriceSourceSynthetic PriceSource = "synthetic"
)

// ValueAssessment is the result of evaluating the compound market for one
// match. Computed fresh on every analysis request; never persisted as the
// authoritative record.
type ValueAssessment struct {
	MatchID            uuid.UUID      `json:"match_id"`
	KickoffUTC         time.Time      `json:"kickoff_utc"`
	HomeTeam           string         `json:"home_team"`
	AwayTeam           string         `json:"away_team"`
	Orientation        Orientation    `json:"orientation"`
	ModelProbability   float64        `json:"model_probability"`
	MarketOdds         float64        `json:"market_odds"`
	ImpliedProbability float64        `json:"implied_probability"`
	Edge               float64        `json:"edge"`
	ExpectedValue      float64        `json:"expected_value"`
	ConfidenceTier     ConfidenceTier `json:"confidence_tier"`
	PriceSource        PriceSource    `json:"price_source"`
	Iterations         int            `json:"iterations"`
	EvaluatedAt        time.Time      `json:"evaluated_at"`
}

// HasValue reports whether the assessment represents a positive-EV opportunity
func (v *ValueAssessment) HasValue() bool {
	return v.ExpectedValue > 0
}
