package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/config"
	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"

	"github.com/segmentio/kafka-go"
)

const defaultPublishTimeout = 2 * time.Second

type kafkaPublisher struct {
	logger  *slog.Logger
	writer  *kafka.Writer
	timeout time.Duration
}

// NewKafkaPublisher публикует события заказов в топик cfg.Topic.
// Ключ сообщения - order_id, поэтому события одного заказа попадают в одну партицию.
func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &kafkaPublisher{
		logger:  logger.With(slog.String("publisher", "kafka")),
		timeout: timeout,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	// Повторы внутри библиотеки ограничены таймаутом публикации
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write %s event: %w", event.Type, err)
	}

	p.logger.DebugContext(ctx, "event published",
		slog.String("type", string(event.Type)), slog.String("order_id", event.OrderID))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

func newMessage(event entities.OrderEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	}, nil
}

type noopPublisher struct{}

// NewNoopPublisher используется, когда брокеры не настроены.
func NewNoopPublisher() noopPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, entities.OrderEvent) error { return nil }

func (noopPublisher) Close() error { return nil }
