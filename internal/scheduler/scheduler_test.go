package scheduler

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestSchedulerLifecycle(t *testing.T) {
	s := NewScheduler(nil, testLogger())

	// Cannot start without jobs
	require.Error(t, s.Start())
	assert.False(t, s.IsRunning())

	require.NoError(t, s.ScheduleFixtureSync("0 6 * * *"))
	require.NoError(t, s.ScheduleOddsSync("*/30 * * * *"))
	assert.Len(t, s.Entries(), 2)

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())
	assert.False(t, s.GetNextRun().IsZero())

	// Double start and scheduling while running are rejected
	assert.Error(t, s.Start())
	assert.Error(t, s.ScheduleFixtureSync("0 7 * * *"))

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())

	// Stop is idempotent
	require.NoError(t, s.Stop())
}

func TestScheduleRejectsInvalidExpression(t *testing.T) {
	s := NewScheduler(nil, testLogger())

	assert.Error(t, s.ScheduleFixtureSync("not a cron expression"))
	assert.Empty(t, s.Entries())
}

func TestGetNextRunWhenStopped(t *testing.T) {
	s := NewScheduler(nil, testLogger())
	require.NoError(t, s.ScheduleOddsSync("*/15 * * * *"))

	assert.True(t, s.GetNextRun().IsZero())
}
