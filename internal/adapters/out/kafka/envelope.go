// Package kafka publishes marketplace events to a Kafka topic wrapped in a
// versioned envelope. The channel an event is addressed to travels in the
// envelope and as the message key, so all events of one user land on the
// same partition in order.
package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/event"
)

const EnvelopeVersion = 1

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	Channel       string          `json:"channel"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// NewEnvelope wraps e for channel. CorrelationID is the order ID when the
// event concerns an order.
func NewEnvelope(producer, channel string, e event.Event) (Envelope, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal event payload: %w", err)
	}

	env := Envelope{
		EventID:      e.ID.String(),
		EventType:    string(e.Type),
		EventVersion: EnvelopeVersion,
		OccurredAt:   e.OccurredAt,
		Producer:     producer,
		Channel:      channel,
		Payload:      payload,
	}
	if e.OrderID != nil {
		env.CorrelationID = e.OrderID.String()
	}
	return env, nil
}

// DecodeEnvelope parses a message value and its event payload.
func DecodeEnvelope(value []byte) (Envelope, event.Event, error) {
	var env Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		return Envelope{}, event.Event{}, fmt.Errorf("decode envelope: %w", err)
	}
	if env.EventVersion != EnvelopeVersion {
		return env, event.Event{}, fmt.Errorf("unsupported envelope version %d", env.EventVersion)
	}

	var e event.Event
	if err := json.Unmarshal(env.Payload, &e); err != nil {
		return env, event.Event{}, fmt.Errorf("decode payload: %w", err)
	}
	return env, e, nil
}
