// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/clinical-records/internal/logger"
)

// BlacklistPurgeWorker periodically removes revoked token identifiers whose
// tokens have expired. Such tokens fail expiry validation anyway, so keeping
// them only grows the blacklist.
type BlacklistPurgeWorker struct {
	purger   Purger
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewBlacklistPurgeWorker(purger Purger, interval time.Duration, logger *logger.Logger) *BlacklistPurgeWorker {
	return &BlacklistPurgeWorker{
		purger:   purger,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (w *BlacklistPurgeWorker) Name() string {
	return "blacklist-purge"
}

// Run purges once per interval until ctx is cancelled. A failed purge is
// logged and retried on the next tick.
func (w *BlacklistPurgeWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.purge(ctx)
		}
	}
}

func (w *BlacklistPurgeWorker) purge(ctx context.Context) {
	purged, err := w.purger.Purge(ctx, w.now())
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Msg("blacklist purge failed")
		}
		return
	}

	if purged > 0 {
		w.logger.Debug().Int64("purged", purged).Msg("expired revoked tokens purged")
	}
}
