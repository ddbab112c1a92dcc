package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/levelup-fitness/internal/service"
)

// sessionRefresher adapts the session-refresh job to the Worker contract.
type sessionRefresher struct {
	job      service.ClientSessionJob
	interval time.Duration
}

func newSessionRefresher(job service.ClientSessionJob, interval time.Duration) *sessionRefresher {
	return &sessionRefresher{job: job, interval: interval}
}

func (s *sessionRefresher) Run(ctx context.Context) {
	s.job.Start(ctx, s.interval)
}
