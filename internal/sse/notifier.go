package sse

import (
	"time"

	"github.com/tokovape/tokovape_api/internal/models"
)

// StockNotifier is the interface services use to emit stock events.
type StockNotifier interface {
	NotifyStockUpdated(row *models.StockRow)
	NotifyLowStock(item *models.DashboardStockItem)
}

// HubNotifier implements StockNotifier using the SSE Hub.
type HubNotifier struct {
	hub *Hub
}

// NewHubNotifier creates a notifier backed by the given Hub.
func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyStockUpdated(row *models.StockRow) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(&StockEvent{
		Event:             EventStockUpdated,
		BranchID:          row.BranchID,
		SKUID:             row.SKUID,
		Quantity:          row.Quantity,
		LowStockThreshold: row.LowStockThreshold,
		Timestamp:         time.Now(),
	})
}

func (n *HubNotifier) NotifyLowStock(item *models.DashboardStockItem) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(&StockEvent{
		Event:             EventStockLow,
		BranchID:          item.BranchID,
		SKUID:             item.SKUID,
		ProductName:       item.ProductName,
		Quantity:          item.Quantity,
		LowStockThreshold: item.LowStockThreshold,
		Timestamp:         time.Now(),
	})
}

// NopNotifier is a no-op implementation for when SSE is not needed.
type NopNotifier struct{}

func (n *NopNotifier) NotifyStockUpdated(row *models.StockRow)        {}
func (n *NopNotifier) NotifyLowStock(item *models.DashboardStockItem) {}
