package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/pass-the-pages/internal/config"
	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by configuration. Without a status
// reporter (no gRPC address) there is nothing to report to and no health
// worker is created.
func NewWorkers(checker store.HealthChecker, reporter StatusReporter, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if reporter != nil && cfg.HealthCheckInterval > 0 {
		w.workers = append(w.workers, NewHealthWorker(checker, reporter, cfg.HealthCheckInterval, logger))
	}

	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// return, which happens once ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
