// Package ingester consumes telemetry readings from a Kafka topic and drives
// them through the same ingestion pipeline as the HTTP write path.
package ingester

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"airsentry/internal/telemetry"
	"airsentry/internal/worker"

	k "airsentry/internal/kafka"

	"github.com/segmentio/kafka-go"
)

var (
	ErrReadMessage  = errors.New("error reading message")
	ErrParseMessage = errors.New("error parsing message")
	ErrIngestFailed = errors.New("error ingesting reading")
)

type Pipeline interface {
	Ingest(ctx context.Context, in telemetry.ReadingInput) (telemetry.IngestResult, error)
}

type Config struct {
	Brokers         string
	ConsumerGroupID string
	ConsumerTopic   string
	Pipeline        Pipeline
}

type Ingester struct {
	worker   *worker.Worker
	reader   k.Reader
	pipeline Pipeline
}

func New(cfg Config) *Ingester {
	ingester := &Ingester{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: []string{cfg.Brokers},
			GroupID: cfg.ConsumerGroupID,
			Topic:   cfg.ConsumerTopic,
		}),
		pipeline: cfg.Pipeline,
	}

	ingester.worker = worker.New(worker.Config{
		Name:      "ingester-worker",
		Processor: ingester,
	})
	return ingester
}

func (i *Ingester) Run(ctx context.Context) {
	i.worker.Run(ctx)
}

func (i *Ingester) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing ingester resources...")
	i.reader.Close()
}

// Auto-commit active. Malformed and invalid events are logged and skipped;
// persistence failures are returned so the worker surfaces them.
func (i *Ingester) ProcessMessage(ctx context.Context) error {
	const fn = "Ingester:ProcessMessage"
	m, err := i.reader.ReadMessage(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}

	var event k.ReadingEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		slog.ErrorContext(ctx, "Error parsing JSON", "error", err)
		return fmt.Errorf("%s:%w:%w", fn, ErrParseMessage, err)
	}

	result, err := i.pipeline.Ingest(ctx, telemetry.ReadingInput{
		DeviceID:    event.DeviceID,
		Air:         event.Air,
		Temperature: event.Temperature,
		Humidity:    event.Humidity,
		CO:          event.CO,
		Timestamp:   event.Timestamp,
	})
	if err != nil {
		if errors.Is(err, telemetry.ErrValidation) {
			slog.InfoContext(ctx, "Invalid reading event, skipping",
				"error", err,
				"device_id", event.DeviceID,
			)
			return nil
		}
		return fmt.Errorf("%s:%w:%w", fn, ErrIngestFailed, err)
	}

	if result.Alerts.Partial() {
		slog.WarnContext(ctx, "Reading ingested with partial alerting failure",
			"device_id", event.DeviceID,
			"reading_id", result.ReadingID,
			"failed", len(result.Alerts.Failed),
		)
	}
	slog.InfoContext(ctx, "Ingested reading from broker",
		"device_id", event.DeviceID,
		"reading_id", result.ReadingID,
		"notifications", len(result.Alerts.Emitted),
	)
	return nil
}
