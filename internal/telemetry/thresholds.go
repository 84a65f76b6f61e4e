package telemetry

import (
	"fmt"
	"time"

	"airsentry/internal/db"
)

const (
	ConditionAir         = "air"
	ConditionTemperature = "temperature"
	ConditionHumidity    = "humidity"
	ConditionCO          = "co"
)

// ReadingInput is the raw ingestion payload. Metrics are pointers so an
// absent field is distinguishable from an explicit zero.
type ReadingInput struct {
	DeviceID    string
	Air         *float64
	Temperature *float64
	Humidity    *float64
	CO          *float64
	Timestamp   string
}

type threshold struct {
	condition string
	limit     float64
	message   string
	metric    func(ReadingInput) *float64
}

// Evaluation order is fixed: air, temperature, humidity, co. Callers rely on
// it for deterministic notification ordering.
var thresholds = []threshold{
	{ConditionAir, 100, "Air quality is above threshold", func(in ReadingInput) *float64 { return in.Air }},
	{ConditionTemperature, 30, "Temperature is above threshold", func(in ReadingInput) *float64 { return in.Temperature }},
	{ConditionHumidity, 70, "Humidity is above threshold", func(in ReadingInput) *float64 { return in.Humidity }},
	{ConditionCO, 100, "CO is above threshold", func(in ReadingInput) *float64 { return in.CO }},
}

// Evaluate checks all four metrics against their fixed limits and returns the
// pending notifications for every strict breach. Equality does not breach.
// A missing metric fails the whole evaluation.
func Evaluate(in ReadingInput, ts time.Time) ([]db.Notification, error) {
	const fn = "Telemetry:Evaluate"
	for _, t := range thresholds {
		if t.metric(in) == nil {
			return nil, fmt.Errorf("%s:%w: missing required metric %q", fn, ErrValidation, t.condition)
		}
	}

	var pending []db.Notification
	for _, t := range thresholds {
		if *t.metric(in) > t.limit {
			pending = append(pending, db.Notification{
				Condition: t.condition,
				DeviceID:  in.DeviceID,
				Timestamp: ts,
				Message:   t.message,
			})
		}
	}
	return pending, nil
}
