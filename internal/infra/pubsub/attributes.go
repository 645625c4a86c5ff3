package pubsub

import (
	"log/slog"
	"strconv"

	"sweetshop/internal/domain/service"
)

// eventAttributes builds the message attributes subscribers filter on.
func eventAttributes(event *service.InventoryEvent) map[string]string {
	attributes := map[string]string{
		"type":     event.Type,
		"sweet_id": strconv.FormatUint(uint64(event.SweetID), 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// eventLogAttrs describes a stock movement for the publisher logs.
func eventLogAttrs(event *service.InventoryEvent) []any {
	attrs := []any{
		slog.String("movement", event.Type),
		slog.Uint64("sweet_id", uint64(event.SweetID)),
		slog.String("sweet_name", event.SweetName),
		slog.Int("quantity", event.Quantity),
		slog.Int("stock_level", event.StockLevel),
	}
	if event.RequestID != "" {
		attrs = append(attrs, slog.String("request_id", event.RequestID))
	}

	return attrs
}
