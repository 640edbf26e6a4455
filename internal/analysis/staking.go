package analysis

import "github.com/shopspring/decimal"

// KellyStake suggests a stake for an assessment using the fractional Kelly
// criterion. Money math uses decimals so suggested stakes round cleanly.
// Returns zero when the inputs carry no positive edge.
func KellyStake(probability, odds float64, bankroll decimal.Decimal, fraction float64) decimal.Decimal {
	if probability <= 0 || probability > 1 || odds <= 1 || bankroll.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if fraction <= 0 || fraction > 1 {
		fraction = 1
	}

	b := odds - 1.0
	kelly := (b*probability - (1.0 - probability)) / b
	if kelly <= 0 {
		return decimal.Zero
	}

	stake := bankroll.
		Mul(decimal.NewFromFloat(kelly)).
		Mul(decimal.NewFromFloat(fraction)).
		Round(2)
	if stake.GreaterThan(bankroll) {
		return bankroll
	}
	return stake
}
