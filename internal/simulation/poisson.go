package simulation

import "math"

// Poisson draws a non-negative integer from a Poisson distribution with mean
// lambda using Knuth's method. A rate of zero (or below, after upstream
// validation) returns 0 explicitly rather than relying on the first uniform
// draw landing at or below e^0.
func Poisson(src Source, lambda float64) int {
	if lambda <= 0 {
		return 0
	}

	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= src.Float64()
		if p <= l {
			return k
		}
		k++
	}
}
