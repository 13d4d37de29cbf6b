// Package kafka publishes order lifecycle events to Kafka with a synchronous
// sarama producer. Each event becomes one JSON message keyed by order id, so
// all events of an order land on the same partition in the order they were
// recorded.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"seller/internal/core/domain/model/order"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

// OrderChangedMessage is the wire format of an order event.
type OrderChangedMessage struct {
	EventID    string    `json:"eventId"`
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	BuyerID    string    `json:"buyerId"`
	Status     string    `json:"status"`
	PayStatus  string    `json:"payStatus"`
	Total      string    `json:"total"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newOrderChangedMessage(e order.Event) OrderChangedMessage {
	return OrderChangedMessage{
		EventID:    e.ID.String(),
		Type:       string(e.Type),
		OrderID:    e.OrderID.String(),
		BuyerID:    e.BuyerID,
		Status:     e.Status.String(),
		PayStatus:  e.PayStatus.String(),
		Total:      e.Total.String(),
		OccurredAt: e.OccurredAt,
	}
}

// Publisher sends order events to a single topic.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *log.Entry
}

// NewPublisher connects a producer to brokers.
func NewPublisher(brokers []string, topic string, logger *log.Entry) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return NewPublisherWithProducer(producer, topic, logger), nil
}

// NewPublisherWithProducer wraps an existing producer.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *log.Entry) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.WithField("component", "kafka-publisher"),
	}
}

// Publish sends events one by one and stops at the first failure.
func (p *Publisher) Publish(_ context.Context, events ...order.Event) error {
	for _, e := range events {
		payload, err := json.Marshal(newOrderChangedMessage(e))
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", e.ID, err)
		}

		key := e.OrderID.String()
		msg := &sarama.ProducerMessage{
			Topic:     p.topic,
			Key:       sarama.StringEncoder(key),
			Value:     sarama.ByteEncoder(payload),
			Timestamp: e.OccurredAt,
		}

		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			p.logger.WithError(err).WithFields(log.Fields{
				"topic": p.topic,
				"key":   key,
				"event": e.Type,
			}).Error("failed to send message to kafka")
			return fmt.Errorf("failed to send event %s: %w", e.ID, err)
		}

		p.logger.WithFields(log.Fields{
			"topic":     p.topic,
			"key":       key,
			"event":     e.Type,
			"partition": partition,
			"offset":    offset,
		}).Debug("message sent to kafka")
	}

	return nil
}

// Close flushes and closes the producer.
func (p *Publisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}

// NoopPublisher drops events. Used when no broker is configured.
type NoopPublisher struct {
	logger *log.Entry
}

func NewNoopPublisher(logger *log.Entry) *NoopPublisher {
	return &NoopPublisher{logger: logger.WithField("component", "noop-publisher")}
}

func (p *NoopPublisher) Publish(_ context.Context, events ...order.Event) error {
	for _, e := range events {
		p.logger.WithFields(log.Fields{
			"order_id": e.OrderID.String(),
			"event":    e.Type,
		}).Debug("event dropped, no broker configured")
	}
	return nil
}

func (p *NoopPublisher) Close() error { return nil }
