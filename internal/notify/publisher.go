package notify

import (
	"context"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/dakarmarket/backend/internal/domain/model"
)

// Publisher writes outbox events to Kafka. The topic comes from the event
// row, the key keeps all events of one aggregate on one partition.
type Publisher struct {
	writer kafkaWriter
	logger *slog.Logger
}

type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewPublisher constructs a Kafka-backed publisher.
func NewPublisher(brokers []string, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

// Publish delivers a single event to the broker.
func (p *Publisher) Publish(ctx context.Context, ev model.Event) error {
	msg := kafka.Message{
		Topic: ev.Topic,
		Key:   []byte(ev.Key),
		Value: ev.Payload,
		Time:  ev.CreatedAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish event failed",
			slog.String("topic", ev.Topic),
			slog.String("event_id", ev.ID),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Close flushes and releases the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
