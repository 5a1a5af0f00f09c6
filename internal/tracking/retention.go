package tracking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Purger deletes visits older than a cutoff.
type Purger interface {
	PurgeVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Cleanup removes visits older than retention once and reports how many
// rows were deleted.
func Cleanup(ctx context.Context, p Purger, log *zap.Logger, retention time.Duration, now time.Time) (int64, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("cleanup: retention must be positive, got %s", retention)
	}
	n, err := p.PurgeVisitsBefore(ctx, now.Add(-retention))
	if err != nil {
		log.Error("cleaning up old visitor data", zap.Error(err))
		return 0, err
	}
	if n > 0 {
		log.Info("privacy cleanup removed old visitor records",
			zap.Int64("rows", n), zap.Duration("retention", retention))
	}
	return n, nil
}

// RunRetention runs Cleanup now and then every interval until ctx is done.
// Purge failures are logged and retried on the next tick.
func RunRetention(ctx context.Context, p Purger, log *zap.Logger, retention, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("retention: interval must be positive, got %s", interval)
	}
	if retention <= 0 {
		return fmt.Errorf("retention: retention must be positive, got %s", retention)
	}
	_, _ = Cleanup(ctx, p, log, retention, time.Now())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			_, _ = Cleanup(ctx, p, log, retention, now)
		}
	}
}
