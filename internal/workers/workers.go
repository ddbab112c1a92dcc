package workers

import (
	"context"

	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background job the client runs: currently only
// the session refresher that keeps the bearer token fresh.
func NewWorkers(services *service.ClientServices, cfg config.ClientWorkers) *Workers {
	return &Workers{
		workers: []Worker{
			newSessionRefresher(services.SessionJob, cfg.TokenRefreshInterval),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
