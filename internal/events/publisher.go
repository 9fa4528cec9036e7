// Package events publishes subscription lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/richardliu001/newsletter-service/internal/model"
	"github.com/segmentio/kafka-go"
)

//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=../mocks/mock_publisher.go -package=mocks

// Publisher emits subscription events.
type Publisher interface {
	Publish(ctx context.Context, evt model.SubscriptionEvent) error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events keyed by subscriber id.
type KafkaPublisher struct {
	writer messageWriter
}

const (
	writeTimeout = 2 * time.Second
	maxAttempts  = 3
)

// NewKafkaPublisher returns a publisher for topic on brokers. Publish runs inside
// the request, so every write is flushed as its own batch.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    1,
		BatchTimeout: 5 * time.Millisecond,
		WriteTimeout: writeTimeout,
		MaxAttempts:  maxAttempts,
		RequiredAcks: kafka.RequireOne,
	}}
}

// Publish sends evt to Kafka.
func (p *KafkaPublisher) Publish(ctx context.Context, evt model.SubscriptionEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(evt.SubscriberID.String()),
		Value: payload,
		Time:  time.Now(),
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error { return p.writer.Close() }

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.SubscriptionEvent) error { return nil }
