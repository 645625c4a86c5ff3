package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sweetshop/config"
	"sweetshop/internal/domain/constants"
	"sweetshop/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.InventoryEvent {
	return &service.InventoryEvent{
		RequestID:  "req-1",
		Type:       service.InventoryEventPurchase,
		SweetID:    1,
		SweetName:  "Soan Papdi",
		Quantity:   2,
		StockLevel: 8,
		ActorID:    7,
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalPushPublisher_PublishInventoryEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalPushPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishInventoryEvent(context.Background(), testEvent()))
	require.NoError(t, publisher.Close())

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "purchase", received.Message.Attributes["type"])
	assert.Equal(t, "1", received.Message.Attributes["sweet_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.InventoryEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "Soan Papdi", event.SweetName)
	assert.Equal(t, 8, event.StockLevel)
	assert.Equal(t, uint(7), event.ActorID)
}

func TestLocalPushPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalPushPublisher(server.URL, discardLogger())
	err := publisher.PublishInventoryEvent(context.Background(), testEvent())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestDisabledPublisher_LogsMovement(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: logger,
	})
	require.NoError(t, err)
	buf.Reset()

	require.NoError(t, publisher.PublishInventoryEvent(context.Background(), testEvent()))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inventory-events", entry["component"])
	assert.Equal(t, "purchase", entry["movement"])
	assert.Equal(t, "Soan Papdi", entry["sweet_name"])
	assert.EqualValues(t, 2, entry["quantity"])
	assert.EqualValues(t, 8, entry["stock_level"])
	assert.Equal(t, "req-1", entry["request_id"])
}

func TestEventAttributes_WithoutRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = ""
	event.Type = service.InventoryEventRestock

	attributes := eventAttributes(event)
	assert.Equal(t, map[string]string{"type": "restock", "sweet_id": "1"}, attributes)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub   *config.PubSubConfig
		wantErr  bool
		disabled bool
	}{
		{name: "not configured", pubsub: nil, disabled: true},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, disabled: true},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "inventory"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "shop"}, wantErr: true},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, publisher)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)

			_, isDisabled := publisher.(*disabledPublisher)
			assert.Equal(t, tt.disabled, isDisabled)

			if isDisabled {
				assert.NoError(t, publisher.PublishInventoryEvent(context.Background(), testEvent()))
			}

			lc.RequireStart()
			lc.RequireStop()
		})
	}
}
