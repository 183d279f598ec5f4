package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"recruitment/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err   atomic.Pointer[error]
	calls atomic.Int32
}

func (f *fakePinger) fail(err error) {
	f.err.Store(&err)
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("check without deadline")
	}
	if p := f.err.Load(); p != nil {
		return *p
	}
	return nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStorageHealthJob_Check(t *testing.T) {
	// Given
	store := &fakePinger{}
	job := jobs.NewStorageHealthJob(store, "", newLogger())

	// Then
	require.Error(t, job.LastError(), "unhealthy before the first check")

	// When
	job.Check(t.Context())
	// Then
	require.NoError(t, job.LastError())

	// When
	store.fail(errors.New("connection refused"))
	job.Check(t.Context())
	// Then
	require.EqualError(t, job.LastError(), "connection refused")

	// When
	store.fail(nil)
	job.Check(t.Context())
	// Then
	require.NoError(t, job.LastError())
	assert.Equal(t, int32(3), store.calls.Load())
}

func TestJobManager_StartChecksImmediately(t *testing.T) {
	store := &fakePinger{}
	manager := jobs.NewJobManager(jobs.NewStorageHealthJob(store, "@every 1h", newLogger()))

	require.NoError(t, manager.StartAll())
	defer manager.StopAll()

	assert.Equal(t, int32(1), store.calls.Load())
}

func TestJobManager_RejectsBadSchedule(t *testing.T) {
	store := &fakePinger{}
	manager := jobs.NewJobManager(jobs.NewStorageHealthJob(store, "not a schedule", newLogger()))

	err := manager.StartAll()

	require.Error(t, err)
	assert.Zero(t, store.calls.Load())
}
