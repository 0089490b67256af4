package events

import (
	"context"
	"encoding/json"
	"flight-dashboard/internal/ports"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes dashboard change events to a Kafka topic,
// keyed by flight id so all events of one flight land on one partition.
type KafkaPublisher struct {
	w messageWriter
}

func NewKafkaPublisher(broker, topic string) *KafkaPublisher {
	return &KafkaPublisher{w: kafka.NewWriter(kafka.WriterConfig{
		Brokers:  []string{broker},
		Topic:    topic,
		Balancer: &kafka.Hash{},
	})}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev ports.Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("kafka publish: marshal %s: %w", ev.Kind, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.Itoa(ev.FlightID)),
		Value: b,
		Time:  ev.At,
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka publish: %s flight_id=%d: %w", ev.Kind, ev.FlightID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}
