package snapshot

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunScheduler generates snapshots for all active users on a fixed
// interval until the context is cancelled. Intended for the worker
// process; the HTTP surface can still trigger runs on demand.
func RunScheduler(ctx context.Context, svc Service, logger *zap.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}

	log := logger.Named("snapshot.scheduler")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("snapshot scheduler started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			log.Info("snapshot scheduler stopped")
			return
		case <-ticker.C:
			result, err := svc.GenerateForTeam(ctx, nil, time.Now().UTC())
			if err != nil {
				log.Error("scheduled snapshot run failed", zap.Error(err))
				continue
			}
			log.Info("scheduled snapshot run finished",
				zap.Int("generated", len(result.Snapshots)),
				zap.Int("failed", len(result.FailedUserIDs)),
			)
		}
	}
}
