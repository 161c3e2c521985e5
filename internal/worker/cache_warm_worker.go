package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tokovape/tokovape_api/internal/service"
)

// CacheWarmWorker periodically refreshes the product-detail cache so the
// storefront serves warm payloads after TTL expiry or a cache restart.
type CacheWarmWorker struct {
	catalogService *service.CatalogService
	interval       time.Duration
}

// NewCacheWarmWorker constructs a CacheWarmWorker.
func NewCacheWarmWorker(catalogService *service.CatalogService, interval time.Duration) *CacheWarmWorker {
	return &CacheWarmWorker{
		catalogService: catalogService,
		interval:       interval,
	}
}

// Start begins the periodic warm loop and listens for context cancellation.
func (w *CacheWarmWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting cache warm worker")

	// Run immediately on start
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Cache warm worker stopped")
			return
		}
	}
}

func (w *CacheWarmWorker) run(ctx context.Context) {
	start := time.Now()
	warmed, err := w.catalogService.WarmCache(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Cache warm failed")
		return
	}
	log.Info().Int("products", warmed).Dur("duration", time.Since(start)).Msg("Catalog cache warmed")
}
