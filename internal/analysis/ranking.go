package analysis

import (
	"sort"

	"github.com/yourusername/cornerflag/internal/models"
)

// MaxResults caps the number of assessments surfaced to callers
const MaxResults = 50

// SortPolicy is a caller-supplied ordering for ranked assessments
type SortPolicy string

const (
	SortByExpectedValue SortPolicy = "ev"
	SortByEdge          SortPolicy = "edge"
	SortByDate          SortPolicy = "date"
)

// FilterPositiveEV returns only the assessments with expected value above
// zero, preserving input order.
func FilterPositiveEV(assessments []models.ValueAssessment) []models.ValueAssessment {
	filtered := make([]models.ValueAssessment, 0, len(assessments))
	for _, a := range assessments {
		if a.HasValue() {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Rank filters to positive-EV assessments, orders them by the given policy
// and truncates to max entries (MaxResults when max <= 0).
func Rank(assessments []models.ValueAssessment, policy SortPolicy, max int) []models.ValueAssessment {
	if max <= 0 {
		max = MaxResults
	}

	ranked := FilterPositiveEV(assessments)
	switch policy {
	case SortByEdge:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Edge > ranked[j].Edge
		})
	case SortByDate:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].KickoffUTC.Before(ranked[j].KickoffUTC)
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].ExpectedValue > ranked[j].ExpectedValue
		})
	}

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}
