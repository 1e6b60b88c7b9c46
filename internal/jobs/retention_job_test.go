package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/straye-as/fieldservice-api/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePurger struct {
	remaining int
	calls     int
	cutoffs   []time.Time
	failAt    int
}

func (f *fakePurger) PurgeOlderThan(_ context.Context, cutoff time.Time, batch int) (int, error) {
	f.calls++
	f.cutoffs = append(f.cutoffs, cutoff)
	if f.failAt > 0 && f.calls == f.failAt {
		return 0, errors.New("storage offline")
	}
	n := min(batch, f.remaining)
	f.remaining -= n
	return n, nil
}

func TestRetentionJob_PurgesInBatches(t *testing.T) {
	purger := &fakePurger{remaining: 450}
	job := jobs.NewRetentionJob(purger, 30*24*time.Hour, time.Minute, zap.NewNop())

	before := time.Now()
	removed := job.Run()

	assert.Equal(t, 450, removed)
	assert.Equal(t, 3, purger.calls)
	require.NotEmpty(t, purger.cutoffs)
	assert.WithinDuration(t, before.Add(-30*24*time.Hour), purger.cutoffs[0], 5*time.Second)
}

func TestRetentionJob_StopsOnError(t *testing.T) {
	purger := &fakePurger{remaining: 1000, failAt: 2}
	job := jobs.NewRetentionJob(purger, time.Hour, time.Minute, zap.NewNop())

	assert.Equal(t, 200, job.Run())
	assert.Equal(t, 2, purger.calls)
}

func TestRegisterRetentionJob(t *testing.T) {
	t.Run("zero retention registers nothing", func(t *testing.T) {
		s := jobs.NewScheduler(zap.NewNop())
		require.NoError(t, jobs.RegisterRetentionJob(s, &fakePurger{}, 0, "0 3 * * *", zap.NewNop()))
		assert.Empty(t, s.JobNames())
	})

	t.Run("five-field schedule", func(t *testing.T) {
		s := jobs.NewScheduler(zap.NewNop())
		require.NoError(t, jobs.RegisterRetentionJob(s, &fakePurger{}, time.Hour, "0 3 * * *", zap.NewNop()))
		assert.Equal(t, []string{jobs.RetentionJobName}, s.JobNames())
	})

	t.Run("invalid schedule", func(t *testing.T) {
		s := jobs.NewScheduler(zap.NewNop())
		assert.Error(t, jobs.RegisterRetentionJob(s, &fakePurger{}, time.Hour, "not a schedule", zap.NewNop()))
	})
}

func TestScheduler_AddRemove(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	require.NoError(t, s.AddJob("b", "@every 1h", func() {}))
	require.NoError(t, s.AddJob("a", "0 */5 * * * *", func() {}))
	assert.Error(t, s.AddJob("a", "@hourly", func() {}))
	assert.Equal(t, []string{"a", "b"}, s.JobNames())

	require.NoError(t, s.RemoveJob("a"))
	assert.Error(t, s.RemoveJob("a"))
	assert.Equal(t, []string{"b"}, s.JobNames())
}

func TestScheduler_RunsJobs(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())
	ran := make(chan struct{}, 1)
	require.NoError(t, s.AddJob("tick", "@every 1s", func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	}))

	s.Start()
	defer func() { <-s.Stop().Done() }()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("scheduled job did not run")
	}
}
