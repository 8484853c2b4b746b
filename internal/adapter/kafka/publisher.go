package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/weather-advisor/internal/config"
	"github.com/couchcryptid/weather-advisor/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher produces advisories to a Kafka topic.
// It implements advisor.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured advisory topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaAdvisoryTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishAdvisory serializes and publishes one advisory.
func (p *Publisher) PublishAdvisory(ctx context.Context, adv domain.Advisory) error {
	msg, err := serializeToMessage(adv)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write advisory message: %w", err)
	}
	p.logger.Debug("published advisory", "id", adv.ID, "topic", p.writer.Topic)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals an Advisory into a Kafka message keyed by the
// advisory ID, so replays of the same place and instant land on one key.
func serializeToMessage(adv domain.Advisory) (kafkago.Message, error) {
	data, err := json.Marshal(adv)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize advisory: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(adv.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "condition", Value: []byte(adv.Condition)},
			{Key: "generated_at", Value: []byte(adv.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
