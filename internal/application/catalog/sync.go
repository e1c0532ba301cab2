package catalog

import (
	"context"
	"time"

	"bannerstore/pkg/logger"
)

// Importer is the part of Service a Syncer drives.
type Importer interface {
	Import(ctx context.Context) (ImportResult, error)
}

// Syncer re-runs an import on a fixed interval so catalog edits made in
// the hosted backend reach the API without a redeploy.
type Syncer struct {
	importer Importer
	interval time.Duration
	log      logger.Logger
}

func NewSyncer(importer Importer, interval time.Duration, log logger.Logger) *Syncer {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Syncer{importer: importer, interval: interval, log: log}
}

// Run blocks until ctx is cancelled. A failed round is logged and retried
// on the next tick; products already stored stay priceable meanwhile.
func (s *Syncer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.syncOnce(ctx)
		}
	}
}

func (s *Syncer) syncOnce(ctx context.Context) {
	start := time.Now()
	res, err := s.importer.Import(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.log.Error("catalog sync failed", logger.Error(err))
		return
	}
	s.log.Info("catalog synced",
		logger.Int("imported", res.Imported),
		logger.Int("rejected", len(res.Rejected)),
		logger.Any("took", time.Since(start)),
	)
}
