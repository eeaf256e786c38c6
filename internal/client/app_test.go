package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/service"
)

type spySyncService struct {
	calls atomic.Int32
	err   error
}

func (s *spySyncService) PerformSync(ctx context.Context) bool {
	return s.Sync(ctx) == nil
}

func (s *spySyncService) Sync(context.Context) error {
	s.calls.Add(1)
	return s.err
}

func (s *spySyncService) State() service.SyncState {
	return service.SyncStateIdle
}

type spyJob struct {
	interval time.Duration
	started  atomic.Bool
	stopped  atomic.Bool
}

func (j *spyJob) Start(_ context.Context, interval time.Duration) {
	j.interval = interval
	j.started.Store(true)
}

func (j *spyJob) Stop() {
	j.stopped.Store(true)
}

func TestNewApp_MissingServices(t *testing.T) {
	tests := []struct {
		name     string
		services *service.ClientServices
	}{
		{name: "nil", services: nil},
		{name: "no sync service", services: &service.ClientServices{SyncJob: &spyJob{}}},
		{name: "no sync job", services: &service.ClientServices{SyncService: &spySyncService{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(tt.services, config.ClientWorkers{}, logger.Nop())

			require.ErrorIs(t, err, errNoServices)
			assert.Nil(t, app)
		})
	}
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		syncErr error
	}{
		{name: "start-up sync succeeds"},
		{name: "start-up sync fails", syncErr: errors.New("server unreachable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncSvc := &spySyncService{err: tt.syncErr}
			job := &spyJob{}

			app, err := NewApp(
				&service.ClientServices{SyncService: syncSvc, SyncJob: job},
				config.ClientWorkers{SyncInterval: time.Minute},
				logger.Nop(),
			)
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- app.run(ctx) }()

			assert.Eventually(t, job.started.Load, time.Second, 5*time.Millisecond)
			cancel()

			select {
			case err := <-done:
				require.NoError(t, err)
			case <-time.After(time.Second):
				t.Fatal("run did not return after cancel")
			}

			assert.Equal(t, int32(1), syncSvc.calls.Load())
			assert.Equal(t, time.Minute, job.interval)
			assert.True(t, job.stopped.Load())
		})
	}
}
