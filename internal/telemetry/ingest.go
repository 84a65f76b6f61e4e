package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"airsentry/internal/db"
	"airsentry/internal/metrics"
)

type Store interface {
	InsertReading(ctx context.Context, r db.Reading) (int64, error)
	InsertNotification(ctx context.Context, n db.Notification) (int64, error)
	LatestReading(ctx context.Context, deviceID string) (db.Reading, error)
	RecentReadings(ctx context.Context, deviceID string, limit int) ([]db.Reading, error)
	NotificationsSince(ctx context.Context, deviceID string, since time.Time) ([]db.Notification, error)
}

// LatestCache fronts the latest-reading lookup. All methods are best-effort;
// errors degrade to the store path.
type LatestCache interface {
	GetLatest(ctx context.Context, deviceID string) (*db.Reading, error)
	SetLatest(ctx context.Context, r db.Reading) error
	Invalidate(ctx context.Context, deviceID string) error
}

type Config struct {
	Store    Store
	Cache    LatestCache // optional
	Location *time.Location
	Now      func() time.Time // defaults to time.Now
}

type Service struct {
	store Store
	cache LatestCache
	loc   *time.Location
	now   func() time.Time
}

func New(cfg Config) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		store: cfg.Store,
		cache: cfg.Cache,
		loc:   loc,
		now:   now,
	}
}

// AlertFailure records one notification write that did not make it.
type AlertFailure struct {
	Condition string
	Err       error
}

// AlertReport is attached to a successful ingestion. Failed entries never
// fail the ingestion itself; the reading is already durable by the time
// notifications are written.
type AlertReport struct {
	Emitted []string
	Failed  []AlertFailure
}

func (r AlertReport) Partial() bool {
	return len(r.Failed) > 0
}

type IngestResult struct {
	ReadingID int64
	Timestamp time.Time
	Alerts    AlertReport
}

// Ingest is the write path: validate, normalize the timestamp, persist the
// reading, then emit one notification per breached threshold. It fails only
// on validation or the reading write; alerting failures are reported in the
// result.
func (s *Service) Ingest(ctx context.Context, in ReadingInput) (IngestResult, error) {
	const fn = "Telemetry:Ingest"
	if in.DeviceID == "" {
		return IngestResult{}, fmt.Errorf("%s:%w: missing device_id", fn, ErrValidation)
	}

	ts, err := NormalizeTimestamp(in.Timestamp, s.now(), s.loc)
	if err != nil {
		return IngestResult{}, err
	}

	pending, err := Evaluate(in, ts)
	if err != nil {
		return IngestResult{}, err
	}

	reading := db.Reading{
		DeviceID:    in.DeviceID,
		Air:         *in.Air,
		Temperature: *in.Temperature,
		Humidity:    *in.Humidity,
		CO:          *in.CO,
		Timestamp:   ts,
	}
	id, err := s.store.InsertReading(ctx, reading)
	if err != nil {
		return IngestResult{}, fmt.Errorf("%s:%w:%w", fn, ErrPersistence, err)
	}
	metrics.ReadingsIngested.Inc()

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, in.DeviceID); err != nil {
			slog.WarnContext(ctx, "Failed to invalidate latest-reading cache", "device_id", in.DeviceID, "error", err)
		}
	}

	result := IngestResult{ReadingID: id, Timestamp: ts}
	result.Alerts = s.emit(ctx, pending)
	return result, nil
}

// emit writes each pending notification independently, in evaluation order.
func (s *Service) emit(ctx context.Context, pending []db.Notification) AlertReport {
	var report AlertReport
	for _, n := range pending {
		if _, err := s.store.InsertNotification(ctx, n); err != nil {
			slog.ErrorContext(ctx, "Failed to persist notification",
				"condition", n.Condition,
				"device_id", n.DeviceID,
				"error", err,
			)
			metrics.NotificationFailures.Inc()
			report.Failed = append(report.Failed, AlertFailure{Condition: n.Condition, Err: err})
			continue
		}
		metrics.NotificationsEmitted.WithLabelValues(n.Condition).Inc()
		report.Emitted = append(report.Emitted, n.Condition)
	}
	return report
}
