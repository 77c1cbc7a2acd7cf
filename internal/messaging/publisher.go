package messaging

import (
	"context"
	"encoding/json"
	"time"

	"vet-appointments-service/config"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Event names published by this service.
const (
	EventAppointmentCreated   = "appointment.created"
	EventReminderAppointment  = "reminder.appointment"
	EventReminderVaccination  = "reminder.vaccination"
	EventReminderDeworming    = "reminder.deworming"
	EventReminderFollowUp     = "reminder.followup"
)

// EventPublisher delivers domain events to the broker. Publishing is
// fire-and-forget from the caller's point of view: workflow success never
// depends on it.
type EventPublisher interface {
	Publish(ctx context.Context, eventName string, payload interface{}) error
	Close() error
}

type eventEnvelope struct {
	EventID    string      `json:"event_id"`
	Event      string      `json:"event"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// KafkaPublisher writes events to a single topic, keyed by event name so
// consumers of one event type keep per-type ordering.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    *logrus.Logger
}

func NewKafkaPublisher(cfg config.KafkaConfig, log *logrus.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaPublisher{writer: writer, log: log}
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventName string, payload interface{}) error {
	envelope := eventEnvelope{
		EventID:    uuid.NewString(),
		Event:      eventName,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(eventName),
		Value: data,
	})
	if err != nil {
		p.log.Warnf("Failed to publish event %s: %+v", eventName, err)
		return err
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no broker is configured. Events are dropped
// with a debug log; the service runs normally otherwise.
type NoopPublisher struct {
	log *logrus.Logger
}

func NewNoopPublisher(log *logrus.Logger) *NoopPublisher {
	return &NoopPublisher{log: log}
}

func (p *NoopPublisher) Publish(_ context.Context, eventName string, _ interface{}) error {
	p.log.Debugf("Event publishing disabled, dropping %s", eventName)
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
