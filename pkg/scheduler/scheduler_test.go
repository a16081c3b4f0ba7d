package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddJob(t *testing.T) {
	s := NewJobScheduler()

	require.NoError(t, s.AddJob("seo-snapshot", "0 3 * * *", func() {}))
	assert.Error(t, s.AddJob("seo-snapshot", "0 4 * * *", func() {}))

	info, ok := s.GetJob("seo-snapshot")
	require.True(t, ok)
	assert.Equal(t, "0 3 * * *", info.CronExpr)
	assert.Nil(t, info.LastRun)
	assert.Zero(t, info.Runs)

	assert.Len(t, s.ListJobs(), 1)
}

func TestAddJob_InvalidCron(t *testing.T) {
	s := NewJobScheduler()

	assert.Error(t, s.AddJob("bad", "every tuesday", func() {}))
	_, ok := s.GetJob("bad")
	assert.False(t, ok)
}

func TestRemoveJob(t *testing.T) {
	s := NewJobScheduler()
	require.NoError(t, s.AddJob("seo-snapshot", "*/5 * * * *", func() {}))

	require.NoError(t, s.RemoveJob("seo-snapshot"))
	assert.Error(t, s.RemoveJob("seo-snapshot"))
	assert.Empty(t, s.ListJobs())
}

func TestStartStop(t *testing.T) {
	s := NewJobScheduler()
	assert.False(t, s.IsRunning())

	s.Start()
	s.Start()
	assert.True(t, s.IsRunning())

	s.Stop()
	assert.False(t, s.IsRunning())
	s.Stop()
}

func TestValidateCronExpression(t *testing.T) {
	assert.NoError(t, ValidateCronExpression("30 2 * * 1"))
	assert.Error(t, ValidateCronExpression("not a cron"))
}
