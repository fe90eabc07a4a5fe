// Package events carries order lifecycle notifications over Redis pub/sub so
// that every API replica can feed the admin dashboard stream.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/coolbreeze/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const OrdersChannel = "storefront:orders"

type OrderEventType string

const (
	OrderCreated       OrderEventType = "order.created"
	OrderStatusChanged OrderEventType = "order.status_changed"
	OrderPaid          OrderEventType = "order.paid"
)

type OrderEvent struct {
	Type        OrderEventType     `json:"type"`
	OrderID     uuid.UUID          `json:"order_id"`
	OrderNumber string             `json:"order_number"`
	Status      models.OrderStatus `json:"status"`
	Total       float64            `json:"total"`
	At          time.Time          `json:"at"`
}

// NewOrderEvent snapshots an order for publishing.
func NewOrderEvent(eventType OrderEventType, order *models.Order) OrderEvent {
	return OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Total:       order.TotalAmount,
		At:          time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}

type Subscriber interface {
	// Subscribe delivers events until ctx is cancelled, then closes the channel.
	Subscribe(ctx context.Context) (<-chan OrderEvent, error)
}

type RedisBus struct {
	client redis.UniversalClient
}

func NewRedisBus(client redis.UniversalClient) *RedisBus {
	return &RedisBus{client: client}
}

func (b *RedisBus) Publish(ctx context.Context, event OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	if err := b.client.Publish(ctx, OrdersChannel, string(payload)).Err(); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	return nil
}

func (b *RedisBus) Subscribe(ctx context.Context) (<-chan OrderEvent, error) {
	pubsub := b.client.Subscribe(ctx, OrdersChannel)

	// Wait for the subscription confirmation so callers know the stream is live.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()

		return nil, fmt.Errorf("failed to subscribe to %s: %w", OrdersChannel, err)
	}

	out := make(chan OrderEvent, 16)

	go func() {
		defer pubsub.Close()

		forward(ctx, pubsub.Channel(), out)
	}()

	return out, nil
}

func forward(ctx context.Context, messages <-chan *redis.Message, out chan<- OrderEvent) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			event, err := decode(msg.Payload)
			if err != nil {
				slog.Warn("Dropping malformed order event", slog.String("error", err.Error()))

				continue
			}

			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}

func decode(payload string) (OrderEvent, error) {
	var event OrderEvent

	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return OrderEvent{}, fmt.Errorf("failed to decode order event: %w", err)
	}

	return event, nil
}
