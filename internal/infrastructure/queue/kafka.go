package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/falconsystemsai/UOA/internal/domain/model"
	"github.com/falconsystemsai/UOA/internal/domain/repository"
)

// KafkaConfig holds Kafka connection configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// KafkaPublisher implements ActivityPublisher using Kafka. Each freshly
// fetched, normalized batch is published for downstream analytics; delivery
// is best-effort and never blocks the response path.
type KafkaPublisher struct {
	writer *kafka.Writer
}

var _ repository.ActivityPublisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher creates a publisher, or nil when no brokers are
// configured so the caller can skip publishing entirely.
func NewKafkaPublisher(config KafkaConfig) *KafkaPublisher {
	if len(config.Brokers) == 0 || config.Topic == "" {
		return nil
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{}, // records for the same ticker share a partition
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaPublisher{writer: writer}
}

// PublishBatch sends one message per normalized record, keyed by ticker.
func (p *KafkaPublisher) PublishBatch(ctx context.Context, records []model.ActivityRecord) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(records))
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(rec.Ticker),
			Value: data,
			Time:  time.Now(),
		})
	}
	return p.writer.WriteMessages(ctx, msgs...)
}

// Close closes the publisher
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
