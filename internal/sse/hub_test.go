package sse

import (
	"encoding/json"
	"testing"
)

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	a := hub.Register("a")
	b := hub.Register("b")
	defer hub.Unregister("a")
	defer hub.Unregister("b")

	hub.Broadcast(&StockEvent{Event: EventStockLow, BranchID: "br-1", SKUID: "sku-1", Quantity: 2, LowStockThreshold: 5})

	for name, ch := range map[string]chan []byte{"a": a.Events, "b": b.Events} {
		select {
		case data := <-ch:
			var ev StockEvent
			if err := json.Unmarshal(data, &ev); err != nil {
				t.Fatalf("client %s: bad payload: %v", name, err)
			}
			if ev.Event != EventStockLow || ev.SKUID != "sku-1" {
				t.Errorf("client %s: got %+v", name, ev)
			}
		default:
			t.Errorf("client %s: no event received", name)
		}
	}
}

func TestHubUnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	c := hub.Register("a")
	hub.Unregister("a")

	if _, ok := <-c.Events; ok {
		t.Error("channel still open after unregister")
	}
	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d, want 0", hub.ClientCount())
	}
}

func TestHubBroadcastDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	hub.Register("slow")
	defer hub.Unregister("slow")

	// Buffer is 64; one extra broadcast must not block.
	for i := 0; i < 70; i++ {
		hub.Broadcast(&StockEvent{Event: EventStockUpdated, BranchID: "br-1", SKUID: "sku-1", Quantity: i})
	}
}
