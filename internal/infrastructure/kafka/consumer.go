package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// EventHandler processes one decoded event
type EventHandler func(ctx context.Context, event *Event) error

// Consumer reads wellness events back from the topic
type Consumer struct {
	reader messageReader
	log    *zap.Logger
}

// NewConsumer creates a new Kafka consumer. An empty groupID reads the
// partition directly without committing offsets.
func NewConsumer(cfg *config.KafkaConfig, groupID string, log *zap.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        groupID,
		Topic:          cfg.Topic,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})
	return newConsumer(reader, log)
}

func newConsumer(r messageReader, log *zap.Logger) *Consumer {
	return &Consumer{reader: r, log: log}
}

// Consume reads messages until ctx is done. Messages that fail to decode or
// to be handled are logged and skipped.
func (c *Consumer) Consume(ctx context.Context, handle EventHandler) error {
	c.log.Info("Starting Kafka consumer")

	for {
		message, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.log.Info("Stopping Kafka consumer")
				return nil
			}
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("failed to read message: %w", err)
			}
			c.log.Warn("Error reading message", zap.Error(err))
			continue
		}

		event, err := Decode(message.Value)
		if err != nil {
			c.log.Warn("Skipping undecodable message",
				zap.Int("partition", message.Partition),
				zap.Int64("offset", message.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := handle(ctx, event); err != nil {
			c.log.Warn("Error processing event",
				zap.String("event_id", event.EventID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
		}
	}
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	if c.reader != nil {
		return c.reader.Close()
	}
	return nil
}
