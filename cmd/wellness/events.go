package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/infrastructure/kafka"

	"github.com/spf13/cobra"
)

// groupID joins a consumer group instead of reading from the latest offset
var groupID string

func init() {
	eventsCmd.Flags().StringVar(&groupID, "group", "", "consumer group to join (empty reads without committing offsets)")
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print wellness events as they are published",
	Long: `Tail the configured Kafka topic and print every decoded event as one JSON line.

Examples:
  # Follow new events
  wellness events

  # Follow as part of a consumer group
  wellness events --group wellness-audit`,
	Args: cobra.NoArgs,
	RunE: runEvents,
}

// eventLine is the printed form of an event
type eventLine struct {
	EventID    string         `json:"event_id"`
	EventType  string         `json:"event_type"`
	UserID     string         `json:"user_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

func runEvents(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer syncLogger(log)

	if len(cfg.Kafka.Brokers) == 0 {
		return errors.New("kafka.brokers is empty")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(&cfg.Kafka, groupID, log)
	defer consumer.Close()

	enc := json.NewEncoder(cmd.OutOrStdout())
	return consumer.Consume(ctx, func(_ context.Context, e *kafka.Event) error {
		if err := enc.Encode(eventLine{
			EventID:    e.EventID,
			EventType:  e.EventType,
			UserID:     e.UserID.String(),
			OccurredAt: e.OccurredAt,
			Payload:    e.Payload,
		}); err != nil {
			return fmt.Errorf("failed to print event: %w", err)
		}
		return nil
	})
}
