package kafka

import (
	"context"

	segkafka "github.com/segmentio/kafka-go"
)

// ReadingEvent is the wire envelope for telemetry readings arriving over the
// broker. Metrics are pointers so absent fields survive decoding and can be
// rejected downstream.
type ReadingEvent struct {
	DeviceID    string   `json:"device_id"`
	Air         *float64 `json:"air"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	CO          *float64 `json:"co"`
	Timestamp   string   `json:"timestamp,omitempty"`
}

type Reader interface {
	ReadMessage(ctx context.Context) (segkafka.Message, error)
	Close() error
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...segkafka.Message) error
	Close() error
}
