package service

import (
	"context"
	"time"
)

// Inventory event types
const (
	InventoryEventPurchase = "purchase"
	InventoryEventRestock  = "restock"
)

// InventoryEvent describes a committed stock movement
type InventoryEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	SweetID    uint      `json:"sweet_id"`
	SweetName  string    `json:"sweet_name"`
	Quantity   int       `json:"quantity"`
	StockLevel int       `json:"stock_level"` // Stock on hand after the movement
	ActorID    uint      `json:"actor_id"`    // Buyer for purchases, admin for restocks
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishInventoryEvent publishes a stock movement for downstream consumers
	PublishInventoryEvent(ctx context.Context, event *InventoryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
