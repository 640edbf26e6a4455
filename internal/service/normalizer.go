package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/cornerflag/internal/datasource"
	"github.com/yourusername/cornerflag/internal/models"
)

// FixtureNormalizer converts provider fixture payloads into internal models
type FixtureNormalizer struct {
	logger *logrus.Logger
}

// NewFixtureNormalizer creates a new fixture normalizer
func NewFixtureNormalizer(logger *logrus.Logger) *FixtureNormalizer {
	return &FixtureNormalizer{logger: logger}
}

// NormalizeMatch converts FixtureData from any source to the internal Match
// model. League and team IDs are resolved by the caller before persisting.
func (n *FixtureNormalizer) NormalizeMatch(fixture *datasource.FixtureData) (*models.Match, error) {
	if fixture == nil {
		return nil, fmt.Errorf("source fixture is nil")
	}
	if fixture.ExternalID == "" {
		return nil, fmt.Errorf("fixture is missing provider identifier")
	}
	if fixture.UTCDate.IsZero() {
		return nil, fmt.Errorf("fixture %s is missing kickoff time", fixture.ExternalID)
	}

	home := sanitizeName(fixture.HomeTeam)
	away := sanitizeName(fixture.AwayTeam)
	if home == "" || away == "" {
		return nil, fmt.Errorf("fixture %s is missing team names", fixture.ExternalID)
	}

	return &models.Match{
		ID:          uuid.New(),
		ExternalID:  fixture.ExternalID,
		UTCDate:     fixture.UTCDate.UTC(),
		Status:      n.NormalizeStatus(fixture.Status),
		HomeTeam:    home,
		AwayTeam:    away,
		HomeScore:   fixture.HomeScore,
		AwayScore:   fixture.AwayScore,
		HomeScoreH1: fixture.HomeScoreH1,
		AwayScoreH1: fixture.AwayScoreH1,
	}, nil
}

// NormalizeStatus maps provider status strings onto the internal lifecycle.
// Unknown statuses collapse to SCHEDULED so the fixture stays visible.
func (n *FixtureNormalizer) NormalizeStatus(status string) models.MatchStatus {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "SCHEDULED":
		return models.MatchStatusScheduled
	case "TIMED":
		return models.MatchStatusTimed
	case "IN_PLAY", "LIVE", "PAUSED":
		return models.MatchStatusInPlay
	case "FINISHED", "AWARDED":
		return models.MatchStatusFinished
	case "POSTPONED", "SUSPENDED":
		return models.MatchStatusPostponed
	case "CANCELLED":
		return models.MatchStatusCancelled
	default:
		if n.logger != nil {
			n.logger.WithField("status", status).Debug("Unknown fixture status, treating as scheduled")
		}
		return models.MatchStatusScheduled
	}
}

// sanitizeName collapses whitespace in provider team names
func sanitizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
