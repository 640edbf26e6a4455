package analysis

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/cornerflag/internal/models"
)

func assessmentWithEV(ev float64, kickoff time.Time) models.ValueAssessment {
	return models.ValueAssessment{
		MatchID:       uuid.New(),
		KickoffUTC:    kickoff,
		Edge:          ev / 2,
		ExpectedValue: ev,
	}
}

func TestFilterPositiveEV(t *testing.T) {
	base := time.Date(2026, 9, 12, 15, 0, 0, 0, time.UTC)
	input := []models.ValueAssessment{
		assessmentWithEV(0.3, base),
		assessmentWithEV(-0.1, base),
		assessmentWithEV(0.05, base),
		assessmentWithEV(0, base),
		assessmentWithEV(0.4, base),
	}

	filtered := FilterPositiveEV(input)
	if len(filtered) != 3 {
		t.Fatalf("expected 3 positive-EV entries, got %d", len(filtered))
	}
	seen := map[float64]bool{}
	for _, a := range filtered {
		seen[a.ExpectedValue] = true
	}
	for _, ev := range []float64{0.3, 0.05, 0.4} {
		if !seen[ev] {
			t.Fatalf("expected EV %v in filtered set", ev)
		}
	}
}

func TestRankSortsByExpectedValue(t *testing.T) {
	base := time.Date(2026, 9, 12, 15, 0, 0, 0, time.UTC)
	input := []models.ValueAssessment{
		assessmentWithEV(0.05, base),
		assessmentWithEV(0.4, base),
		assessmentWithEV(0.3, base),
	}

	ranked := Rank(input, SortByExpectedValue, 0)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ranked))
	}
	if ranked[0].ExpectedValue != 0.4 || ranked[2].ExpectedValue != 0.05 {
		t.Fatalf("unexpected EV order: %v, %v, %v", ranked[0].ExpectedValue, ranked[1].ExpectedValue, ranked[2].ExpectedValue)
	}
}

func TestRankSortsByDate(t *testing.T) {
	base := time.Date(2026, 9, 12, 15, 0, 0, 0, time.UTC)
	input := []models.ValueAssessment{
		assessmentWithEV(0.1, base.Add(48*time.Hour)),
		assessmentWithEV(0.2, base),
		assessmentWithEV(0.3, base.Add(24*time.Hour)),
	}

	ranked := Rank(input, SortByDate, 0)
	if !ranked[0].KickoffUTC.Equal(base) {
		t.Fatalf("expected earliest kickoff first, got %v", ranked[0].KickoffUTC)
	}
	if !ranked[2].KickoffUTC.Equal(base.Add(48 * time.Hour)) {
		t.Fatalf("expected latest kickoff last, got %v", ranked[2].KickoffUTC)
	}
}

func TestRankCapsResults(t *testing.T) {
	base := time.Date(2026, 9, 12, 15, 0, 0, 0, time.UTC)
	input := make([]models.ValueAssessment, 0, 80)
	for i := 0; i < 80; i++ {
		input = append(input, assessmentWithEV(0.1+float64(i)*0.001, base))
	}

	ranked := Rank(input, SortByExpectedValue, 0)
	if len(ranked) != MaxResults {
		t.Fatalf("expected cap of %d, got %d", MaxResults, len(ranked))
	}

	ranked = Rank(input, SortByEdge, 10)
	if len(ranked) != 10 {
		t.Fatalf("expected explicit cap of 10, got %d", len(ranked))
	}
}
