package events

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/richardliu001/newsletter-service/internal/model"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/protocol"
	metadataAPI "github.com/segmentio/kafka-go/protocol/metadata"
	produceAPI "github.com/segmentio/kafka-go/protocol/produce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaPublisher{writer: w}
	id := uuid.New()
	evt := model.SubscriptionEvent{
		EventType:    model.EventSubscriptionRequested,
		SubscriberID: id,
		Status:       model.StatusPendingConfirmation,
		OccurredAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, p.Publish(context.Background(), evt))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, id.String(), string(w.msgs[0].Key))

	var decoded model.SubscriptionEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, evt, decoded)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &recordingWriter{err: errors.New("no leader")}}
	err := p.Publish(context.Background(), model.SubscriptionEvent{SubscriberID: uuid.New()})
	assert.EqualError(t, err, "no leader")
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), model.SubscriptionEvent{}))
}

// instantBroker answers metadata and produce requests without any network I/O.
type instantBroker struct {
	mu       sync.Mutex
	produced int
}

func (b *instantBroker) RoundTrip(_ context.Context, _ net.Addr, req protocol.Message) (protocol.Message, error) {
	switch r := req.(type) {
	case *metadataAPI.Request:
		topics := make([]metadataAPI.ResponseTopic, 0, len(r.TopicNames))
		for _, name := range r.TopicNames {
			topics = append(topics, metadataAPI.ResponseTopic{
				Name:       name,
				Partitions: []metadataAPI.ResponsePartition{{PartitionIndex: 0}},
			})
		}
		return &metadataAPI.Response{
			Brokers: []metadataAPI.ResponseBroker{{NodeID: 0, Host: "127.0.0.1", Port: 9092}},
			Topics:  topics,
		}, nil
	case *produceAPI.Request:
		b.mu.Lock()
		b.produced++
		b.mu.Unlock()
		resp := &produceAPI.Response{}
		for _, t := range r.Topics {
			rt := produceAPI.ResponseTopic{Topic: t.Topic}
			for _, p := range t.Partitions {
				rt.Partitions = append(rt.Partitions, produceAPI.ResponsePartition{Partition: p.Partition})
			}
			resp.Topics = append(resp.Topics, rt)
		}
		return resp, nil
	default:
		return nil, errors.New("unexpected request")
	}
}

func TestKafkaPublisher_PublishDoesNotWaitForBatch(t *testing.T) {
	broker := &instantBroker{}
	p := NewKafkaPublisher([]string{"127.0.0.1:9092"}, "subscriptions")
	p.writer.(*kafka.Writer).Transport = broker
	defer p.Close()

	start := time.Now()
	err := p.Publish(context.Background(), model.SubscriptionEvent{
		EventType:    model.EventSubscriptionRequested,
		SubscriberID: uuid.New(),
		Status:       model.StatusPendingConfirmation,
		OccurredAt:   time.Now().UTC(),
	})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Less(t, elapsed, 250*time.Millisecond)
	broker.mu.Lock()
	assert.Equal(t, 1, broker.produced)
	broker.mu.Unlock()
}
