package models

// Orientation identifies which side is evaluated against the
// "wins at least one half" condition.
type Orientation string

const (
	DesignatedIsHome Orientation = "HOME"
	DesignatedIsAway Orientation = "AWAY"
)

// SimulationResult is the outcome of a Monte Carlo run for one
// (MatchParameters, Orientation) pair. Immutable after creation.
type SimulationResult struct {
	Probability float64 `json:"probability"`
	Iterations  int     `json:"iterations"`
}
