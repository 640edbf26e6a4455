package models

import (
	"fmt"
	"math"
)

// MatchParameters holds full-match expected counts for both sides.
// All values are rates for the whole match, not per-half.
type MatchParameters struct {
	HomeExpectedGoals   float64 `json:"home_expected_goals" validate:"required,gt=0"`
	AwayExpectedGoals   float64 `json:"away_expected_goals" validate:"required,gt=0"`
	HomeExpectedCorners float64 `json:"home_expected_corners" validate:"required,gt=0"`
	AwayExpectedCorners float64 `json:"away_expected_corners" validate:"required,gt=0"`
}

// Validate checks that every rate is positive and finite
func (p MatchParameters) Validate() error {
	fields := map[string]float64{
		"home_expected_goals":   p.HomeExpectedGoals,
		"away_expected_goals":   p.AwayExpectedGoals,
		"home_expected_corners": p.HomeExpectedCorners,
		"away_expected_corners": p.AwayExpectedCorners,
	}
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParameters, name)
		}
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParameters, name, v)
		}
	}
	return nil
}
