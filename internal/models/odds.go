package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchOdds represents a bookmaker's latest prices for a fixture.
// Leg prices for the compound market are stored individually; a single
// quoted price for the full compound market is rarely offered.
type MatchOdds struct {
	MatchID       uuid.UUID `db:"match_id" json:"match_id" validate:"required,uuid4"`
	HomeWin       *float64  `db:"home_win" json:"home_win"`
	Draw          *float64  `db:"draw" json:"draw"`
	AwayWin       *float64  `db:"away_win" json:"away_win"`
	Under35H1     *float64  `db:"u35_h1" json:"u35_h1"`
	Under35H2     *float64  `db:"u35_h2" json:"u35_h2"`
	Over55Corners *float64  `db:"over_55_corners" json:"over_55_corners"`
	TeamWinsHalf  *float64  `db:"team_y_wins_half" json:"team_y_wins_half"`
	Bookmaker     string    `db:"bookmaker" json:"bookmaker"`
	LastUpdate    time.Time `db:"last_update" json:"last_update"`
}

// GetImpliedProbability returns the implied probability for a leg price
func GetImpliedProbability(price *float64) float64 {
	if price == nil || *price <= 0 {
		return 0
	}
	return 1.0 / *price
}

// CompoundQuote derives a naive price for the full compound market by
// multiplying the individual leg prices. The legs are correlated, so this
// overstates the true price; it is a placeholder until bookmakers quoting
// the compound market directly are integrated. Returns false when any leg
// is missing.
func (o *MatchOdds) CompoundQuote() (float64, bool) {
	if o.Under35H1 == nil || o.Under35H2 == nil || o.Over55Corners == nil || o.TeamWinsHalf == nil {
		return 0, false
	}
	quote := *o.Under35H1 * *o.Under35H2 * *o.Over55Corners * *o.TeamWinsHalf
	if quote <= 1 {
		return 0, false
	}
	return quote, true
}
