// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shopping-sync/internal/service"
)

// SyncWorker runs the client's periodic synchronization.
type SyncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

// NewSyncWorker returns a worker that starts job with interval.
func NewSyncWorker(job service.ClientSyncJob, interval time.Duration) *SyncWorker {
	return &SyncWorker{job: job, interval: interval}
}

func (s *SyncWorker) Run(ctx context.Context) {
	s.job.Start(ctx, s.interval)
}

func (s *SyncWorker) Stop() {
	s.job.Stop()
}
