package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// EventHandler processes one decoded purchase event.
type EventHandler func(ctx context.Context, event PurchaseEvent) error

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads purchase events until the context is canceled or the
// handler fails. Messages that don't decode are logged and skipped; a
// poison message must not wedge the receipt pipeline.
func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, err := decodePurchaseEvent(msg)
		if err != nil {
			log.Printf("skip undecodable message at offset %d: %v", msg.Offset, err)
			continue
		}

		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func decodePurchaseEvent(msg kafka.Message) (PurchaseEvent, error) {
	var event PurchaseEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return PurchaseEvent{}, fmt.Errorf("decode purchase event: %w", err)
	}
	if event.Token == "" {
		return PurchaseEvent{}, fmt.Errorf("purchase event without token")
	}
	return event, nil
}
