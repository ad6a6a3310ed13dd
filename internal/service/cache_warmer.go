package service

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/skpi-portal/internal/models"
	"github.com/noah-isme/skpi-portal/pkg/jobs"
)

const warmJobKind = "warm_panel"

// CacheWarmer composes every panel in the background so first requests hit the view cache.
type CacheWarmer struct {
	panels  panelProvider
	cache   *CacheService
	workers int
	logger  *zap.Logger

	warmed atomic.Int64
	failed atomic.Int64
}

// NewCacheWarmer builds a warmer running on a small worker pool.
func NewCacheWarmer(panels panelProvider, cache *CacheService, workers int, logger *zap.Logger) *CacheWarmer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheWarmer{panels: panels, cache: cache, workers: workers, logger: logger}
}

// Warm drops cached panels, recomposes each one and waits for the pool to drain.
// It returns the number of panels warmed and the number that failed.
func (w *CacheWarmer) Warm(ctx context.Context) (int, int) {
	if !w.cache.Enabled() {
		return 0, 0
	}
	if err := w.cache.Invalidate(ctx, "view:panel:*"); err != nil {
		w.logger.Warn("cache warm skipped invalidation", zap.Error(err))
	}
	w.warmed.Store(0)
	w.failed.Store(0)

	queue := jobs.NewQueue("view-cache-warmer", w.handle, jobs.QueueConfig{
		Workers:    w.workers,
		MaxRetries: 2,
		RetryDelay: 500 * time.Millisecond,
		Logger:     w.logger,
		OnDone: func(_ jobs.Job, err error) {
			if err != nil {
				w.failed.Add(1)
				return
			}
			w.warmed.Add(1)
		},
	})
	queue.Start(ctx)
	defer queue.Stop()
	for _, id := range models.PanelIDs() {
		if err := queue.Enqueue(jobs.Job{Kind: warmJobKind, Key: string(id)}); err != nil {
			w.logger.Error("enqueue cache warm", zap.String("panel", string(id)), zap.Error(err))
			w.failed.Add(1)
		}
	}
	queue.Wait()

	warmed, failed := int(w.warmed.Load()), int(w.failed.Load())
	w.logger.Info("view cache warmed", zap.Int("panels", warmed), zap.Int("failed", failed))
	return warmed, failed
}

func (w *CacheWarmer) handle(ctx context.Context, job jobs.Job) error {
	_, _, err := w.panels.Panel(ctx, models.PanelID(job.Key))
	return err
}
