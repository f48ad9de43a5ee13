package cron

import (
	"context"
	"time"

	"crmsections/models"
	"crmsections/services/section"

	"go.uber.org/zap"
)

// ManagerProvider returns the section manager for a section type.
type ManagerProvider interface {
	ForType(sectionType models.SectionType) (section.SectionManager, error)
}

// warmSectionCaches reads the section list of every type once, which
// repopulates any cache entry that expired since the last run.
func warmSectionCaches(ctx context.Context, managers ManagerProvider, types []models.SectionType, logger *zap.Logger) {
	for _, t := range types {
		m, err := managers.ForType(t)
		if err != nil {
			logger.Warn("cache warmer: no section manager", zap.Stringer("type", t), zap.Error(err))
			continue
		}
		sections, err := m.GetByType(ctx, t)
		if err != nil {
			logger.Warn("cache warmer: failed to load sections", zap.Stringer("type", t), zap.Error(err))
			continue
		}
		logger.Debug("cache warmer: sections loaded", zap.Stringer("type", t), zap.Int("count", len(sections)))
	}
}

// StartSectionCacheWarmer warms the section caches immediately and then on
// every interval until ctx is cancelled. A non-positive interval disables it.
func StartSectionCacheWarmer(ctx context.Context, managers ManagerProvider, types []models.SectionType, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		logger.Info("cache warmer disabled")
		return
	}
	go func() {
		warmSectionCaches(ctx, managers, types, logger)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Info("cache warmer: shutdown signal received")
				return
			case <-ticker.C:
				warmSectionCaches(ctx, managers, types, logger)
			}
		}
	}()
}
