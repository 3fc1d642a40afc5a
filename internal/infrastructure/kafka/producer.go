package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/config"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// EventTypeHeader carries the event type so consumers can route without decoding
const EventTypeHeader = "event_type"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer handles publishing wellness events to Kafka
type Producer struct {
	writer messageWriter
	log    *zap.Logger
	now    func() time.Time
}

var _ service.EventPublisher = (*Producer)(nil)

// NewProducer creates a new Kafka producer
func NewProducer(cfg *config.KafkaConfig, log *zap.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    10,
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
	}

	return newProducer(writer, log)
}

func newProducer(w messageWriter, log *zap.Logger) *Producer {
	return &Producer{writer: w, log: log, now: time.Now}
}

// Publish encodes the event as a protobuf Struct envelope keyed by user
func (p *Producer) Publish(ctx context.Context, eventType string, userID uuid.UUID, payload map[string]any) error {
	now := p.now().UTC()
	data, err := Encode(uuid.NewString(), eventType, userID, now, payload)
	if err != nil {
		return err
	}

	message := kafka.Message{
		Key:     []byte(userID.String()),
		Value:   data,
		Time:    now,
		Headers: []kafka.Header{{Key: EventTypeHeader, Value: []byte(eventType)}},
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	p.log.Debug("Published event",
		zap.String("event_type", eventType),
		zap.String("user_id", userID.String()),
	)
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// Event is the decoded form of a published message
type Event struct {
	EventID    string
	EventType  string
	UserID     uuid.UUID
	OccurredAt time.Time
	Payload    map[string]any
}

// Encode marshals an event envelope to protobuf bytes
func Encode(eventID, eventType string, userID uuid.UUID, occurredAt time.Time, payload map[string]any) ([]byte, error) {
	body, err := structpb.NewStruct(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}

	envelope := &structpb.Struct{Fields: map[string]*structpb.Value{
		"event_id":    structpb.NewStringValue(eventID),
		"event_type":  structpb.NewStringValue(eventType),
		"user_id":     structpb.NewStringValue(userID.String()),
		"occurred_at": structpb.NewStringValue(occurredAt.Format(time.RFC3339Nano)),
		"payload":     structpb.NewStructValue(body),
	}}

	data, err := proto.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return data, nil
}

// Decode parses bytes produced by Encode
func Decode(data []byte) (*Event, error) {
	var envelope structpb.Struct
	if err := proto.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	fields := envelope.GetFields()
	userID, err := uuid.Parse(fields["user_id"].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("invalid user_id in event: %w", err)
	}
	occurredAt, err := time.Parse(time.RFC3339Nano, fields["occurred_at"].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("invalid occurred_at in event: %w", err)
	}

	return &Event{
		EventID:    fields["event_id"].GetStringValue(),
		EventType:  fields["event_type"].GetStringValue(),
		UserID:     userID,
		OccurredAt: occurredAt,
		Payload:    fields["payload"].GetStructValue().AsMap(),
	}, nil
}
