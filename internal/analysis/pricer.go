package analysis

// Pricer derives a decimal market price from a model probability when no
// real quote is available. It is a single substitutable function so that
// live odds integration can replace synthetic pricing without touching the
// edge/EV math.
type Pricer func(modelProbability float64) float64

// Placeholder pricing constants pending real odds integration. The margin
// models how far the bookmaker's implied probability sits below the model's
// estimate for this compound market; the markup models the gap between the
// average price and the best available price. Neither is calibrated.
const (
	DefaultBookmakerMargin = 0.20
	DefaultBestPriceMarkup = 1.08

	minSyntheticPrice = 1.01
	maxSyntheticPrice = 1000.0
)

// NewSyntheticPricer builds a Pricer that discounts the model probability by
// the bookmaker margin and then applies a best-available-price markup,
// clamped to a plausible price band. The discounted probability sits above
// the fair price, so a synthetic quote can carry positive expected value.
func NewSyntheticPricer(margin, markup float64) Pricer {
	if margin <= 0 || margin >= 1 {
		margin = DefaultBookmakerMargin
	}
	if markup <= 0 {
		markup = DefaultBestPriceMarkup
	}
	return func(modelProbability float64) float64 {
		if modelProbability <= 0 {
			return maxSyntheticPrice
		}
		margined := 1.0 / (modelProbability * (1.0 - margin))
		price := margined * markup
		if price < minSyntheticPrice {
			return minSyntheticPrice
		}
		if price > maxSyntheticPrice {
			return maxSyntheticPrice
		}
		return price
	}
}
