package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/cornerflag/internal/datasource"
	"github.com/yourusername/cornerflag/internal/models"
)

func TestNormalizeMatch(t *testing.T) {
	n := NewFixtureNormalizer(quietLogger())
	kickoff := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	match, err := n.NormalizeMatch(&datasource.FixtureData{
		ExternalID: "497559",
		UTCDate:    kickoff,
		Status:     "TIMED",
		HomeTeam:   "  Arsenal   FC ",
		AwayTeam:   "Everton FC",
	})
	require.NoError(t, err)

	assert.Equal(t, "497559", match.ExternalID)
	assert.Equal(t, kickoff, match.UTCDate)
	assert.Equal(t, models.MatchStatusTimed, match.Status)
	assert.Equal(t, "Arsenal FC", match.HomeTeam)
	assert.NotEqual(t, match.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestNormalizeMatchRejectsIncompleteFixtures(t *testing.T) {
	n := NewFixtureNormalizer(quietLogger())
	kickoff := time.Now().UTC()

	tests := []struct {
		name    string
		fixture *datasource.FixtureData
	}{
		{"nil fixture", nil},
		{"missing external id", &datasource.FixtureData{UTCDate: kickoff, HomeTeam: "A", AwayTeam: "B"}},
		{"missing kickoff", &datasource.FixtureData{ExternalID: "1", HomeTeam: "A", AwayTeam: "B"}},
		{"missing team", &datasource.FixtureData{ExternalID: "1", UTCDate: kickoff, HomeTeam: "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.NormalizeMatch(tt.fixture)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	n := NewFixtureNormalizer(quietLogger())

	tests := []struct {
		in   string
		want models.MatchStatus
	}{
		{"SCHEDULED", models.MatchStatusScheduled},
		{"timed", models.MatchStatusTimed},
		{"IN_PLAY", models.MatchStatusInPlay},
		{"PAUSED", models.MatchStatusInPlay},
		{"FINISHED", models.MatchStatusFinished},
		{"AWARDED", models.MatchStatusFinished},
		{"POSTPONED", models.MatchStatusPostponed},
		{"CANCELLED", models.MatchStatusCancelled},
		{"SOMETHING_NEW", models.MatchStatusScheduled},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, n.NormalizeStatus(tt.in), tt.in)
	}
}
