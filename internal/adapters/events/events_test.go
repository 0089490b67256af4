package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flight-dashboard/internal/domain"
	"flight-dashboard/internal/ports"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func sampleEvent() ports.Event {
	return ports.Event{
		ID:        "ev-1",
		Kind:      ports.FlightPlanInserted,
		BucketID:  1,
		FlightID:  101,
		Departure: domain.NewTime(8, 0),
		ETA:       domain.NewTime(9, 5),
		At:        time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestKafkaPublisherPublish(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{w: w}

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "101", string(w.msgs[0].Key))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &body))
	assert.Equal(t, "flightplan.inserted", body["kind"])
	assert.Equal(t, "08:00", body["departure"])
	assert.Equal(t, "09:05", body["eta"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisherError(t *testing.T) {
	p := &KafkaPublisher{w: &fakeWriter{err: errors.New("broker down")}}

	err := p.Publish(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "broker down")
	assert.ErrorContains(t, err, "flight_id=101")
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))
	assert.Contains(t, buf.String(), `"kind":"flightplan.inserted"`)
	assert.Contains(t, buf.String(), `"flight_id":101`)
}
