// Package outbox delivers workout events to Kafka using Schema Registry framing.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"example.com/workout/internal/domain"
	"example.com/workout/internal/events"
)

type messageWriter interface {
	WriteMessages(context.Context, string, ...kafka.Message) error
}

type schemaRegistrar interface {
	EnsureSchema(context.Context, string, string) (int, error)
}

// Topics names the destinations used by the Publisher.
type Topics struct {
	Summaries string
	DLQ       string
}

// Publisher encodes workout events and writes them to their topics.
type Publisher struct {
	producer      messageWriter
	registry      schemaRegistrar
	topics        Topics
	schemaIDCache sync.Map
	now           func() time.Time
}

// NewPublisher constructs a Publisher.
func NewPublisher(producer messageWriter, registry schemaRegistrar, topics Topics) *Publisher {
	return &Publisher{
		producer: producer,
		registry: registry,
		topics:   topics,
		now:      time.Now,
	}
}

// PublishSummary emits a WorkoutSummarized event keyed by summary ID.
func (p *Publisher) PublishSummary(ctx context.Context, tenantID string, summary domain.Summary) error {
	event := events.WorkoutSummarized{
		SummaryID:    summary.ID,
		TenantID:     tenantID,
		WorkoutType:  summary.WorkoutType,
		TrainingType: summary.Info.TrainingType,
		DurationH:    summary.Info.Duration,
		DistanceKm:   summary.Info.Distance,
		SpeedKmh:     summary.Info.Speed,
		Calories:     summary.Info.Calories,
		Message:      summary.Message,
		ComputedAt:   summary.ComputedAt,
	}
	return p.publish(ctx, p.topics.Summaries, events.TypeWorkoutSummarized, tenantID, summary.ID, event)
}

// PublishRejected routes a package that failed validation to the dead-letter topic.
func (p *Publisher) PublishRejected(ctx context.Context, rejected events.WorkoutRejected) error {
	if rejected.RejectedAt.IsZero() {
		rejected.RejectedAt = p.now().UTC()
	}
	return p.publish(ctx, p.topics.DLQ, events.TypeWorkoutRejected, rejected.TenantID, rejected.TenantID, rejected)
}

func (p *Publisher) publish(ctx context.Context, topic, eventType, tenantID, key string, payload any) (err error) {
	start := time.Now()
	defer func() {
		publishDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			failedCounter.WithLabelValues(topic).Inc()
			return
		}
		deliveredCounter.WithLabelValues(topic).Inc()
	}()

	subject := topic + "-value"
	schemaID, err := p.schemaID(ctx, subject, eventType)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", eventType, err)
	}

	record := kafka.Message{
		Key:   []byte(key),
		Value: EncodeWireFormat(schemaID, body),
		Time:  p.now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "tenant_id", Value: []byte(tenantID)},
			{Key: "schema_subject", Value: []byte(subject)},
		},
	}
	return p.producer.WriteMessages(ctx, topic, record)
}

func (p *Publisher) schemaID(ctx context.Context, subject, eventType string) (int, error) {
	schema, ok := schemaCatalog[eventType]
	if !ok {
		return 0, fmt.Errorf("no schema metadata for event_type=%s", eventType)
	}

	if cached, found := p.schemaIDCache.Load(subject); found {
		return cached.(int), nil
	}
	id, err := p.registry.EnsureSchema(ctx, subject, schema)
	if err != nil {
		return 0, fmt.Errorf("ensure schema %s: %w", subject, err)
	}
	p.schemaIDCache.Store(subject, id)
	return id, nil
}
