// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/store"
)

// healthWorker pings the database every interval and reports the result.
type healthWorker struct {
	checker  store.HealthChecker
	reporter StatusReporter
	interval time.Duration

	logger *logger.Logger
}

func NewHealthWorker(checker store.HealthChecker, reporter StatusReporter, interval time.Duration, logger *logger.Logger) Worker {
	return &healthWorker{
		checker:  checker,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Run probes once immediately, then on every tick until ctx is done.
func (w *healthWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	serving := w.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("health worker stopped")
			return
		case <-ticker.C:
			if now := w.probe(ctx); now != serving {
				w.logger.Info().Bool("serving", now).Msg("health status changed")
				serving = now
			}
		}
	}
}

func (w *healthWorker) probe(ctx context.Context) bool {
	// one probe may not outlive the interval
	probeCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	err := w.checker.Ping(probeCtx)
	if err != nil {
		w.logger.Warn().Err(err).Msg("database health probe failed")
	}

	w.reporter.SetServing(err == nil)
	return err == nil
}
