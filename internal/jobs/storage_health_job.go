package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultHealthCheckSchedule runs the check every thirty seconds.
const DefaultHealthCheckSchedule = "*/30 * * * * *"

const checkTimeout = 10 * time.Second

var errNotCheckedYet = errors.New("storage has not been checked yet")

// Pinger is the part of the blob store the check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StorageHealthJob pings the object storage on a cron schedule and keeps the
// result of the last check for the health endpoint.
type StorageHealthJob struct {
	store    Pinger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.RWMutex
	lastErr error
}

// NewStorageHealthJob creates the check. schedule is a six-field cron
// expression (with seconds); an empty schedule uses DefaultHealthCheckSchedule.
func NewStorageHealthJob(store Pinger, schedule string, logger *slog.Logger) *StorageHealthJob {
	if schedule == "" {
		schedule = DefaultHealthCheckSchedule
	}
	return &StorageHealthJob{
		store:    store,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "storage_health_job"),
		lastErr:  errNotCheckedYet,
	}
}

// Start checks once immediately, then on every tick of the schedule.
func (j *StorageHealthJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Check(context.Background())
	})
	if err != nil {
		return err
	}

	j.Check(context.Background())
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Storage health job started", "schedule", j.schedule)
	return nil
}

// Stop stops the storage health job.
func (j *StorageHealthJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Storage health job stopped")
}

// Check pings the store once and records the outcome. Only changes of state
// are logged.
func (j *StorageHealthJob) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	err := j.store.Ping(ctx)

	j.mu.Lock()
	previous := j.lastErr
	j.lastErr = err
	j.mu.Unlock()

	switch {
	case err != nil && previous == nil:
		j.logger.ErrorContext(ctx, "Object storage became unreachable", "error", err)
	case err != nil && errors.Is(previous, errNotCheckedYet):
		j.logger.ErrorContext(ctx, "Object storage is unreachable", "error", err)
	case err == nil && previous != nil:
		j.logger.InfoContext(ctx, "Object storage is reachable")
	}
}

// LastError returns the error of the last check, nil when it succeeded.
func (j *StorageHealthJob) LastError() error {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.lastErr
}
