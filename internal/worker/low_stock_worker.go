package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tokovape/tokovape_api/internal/service"
	"github.com/tokovape/tokovape_api/internal/sse"
)

// LowStockWorker periodically scans for stock rows at or below their
// threshold and pushes them to connected dashboard clients.
type LowStockWorker struct {
	stockService *service.StockService
	notifier     sse.StockNotifier
	interval     time.Duration
}

// NewLowStockWorker constructs a LowStockWorker.
func NewLowStockWorker(stockService *service.StockService, notifier sse.StockNotifier, interval time.Duration) *LowStockWorker {
	return &LowStockWorker{
		stockService: stockService,
		notifier:     notifier,
		interval:     interval,
	}
}

// Start begins the periodic scan loop and listens for context cancellation.
func (w *LowStockWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting low stock worker")

	// Run immediately on start
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Low stock worker stopped")
			return
		}
	}
}

func (w *LowStockWorker) run(ctx context.Context) {
	items, err := w.stockService.LowStock(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Low stock scan failed")
		return
	}
	if len(items) == 0 {
		return
	}

	log.Warn().Int("count", len(items)).Msg("Stock rows at or below threshold")
	for i := range items {
		w.notifier.NotifyLowStock(&items[i])
	}
}
