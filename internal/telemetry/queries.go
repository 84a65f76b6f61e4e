package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"airsentry/internal/db"
)

// WindowSize bounds the trailing-window aggregation.
const WindowSize = 7

// DayLayout labels window entries with the reading's own calendar day.
const DayLayout = "2006-01-02"

type WindowEntry struct {
	Day         string  `json:"day"`
	Air         float64 `json:"air"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	CO          float64 `json:"co"`
}

// Latest returns the reading with the maximum timestamp for the device.
// Reads through the cache when one is configured.
func (s *Service) Latest(ctx context.Context, deviceID string) (db.Reading, error) {
	const fn = "Telemetry:Latest"
	if s.cache != nil {
		cached, err := s.cache.GetLatest(ctx, deviceID)
		if err != nil {
			slog.WarnContext(ctx, "Latest-reading cache read failed", "device_id", deviceID, "error", err)
		} else if cached != nil {
			return *cached, nil
		}
	}

	r, err := s.store.LatestReading(ctx, deviceID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return db.Reading{}, fmt.Errorf("%s:%w: no readings for device %q", fn, ErrNotFound, deviceID)
		}
		return db.Reading{}, fmt.Errorf("%s:%w:%w", fn, ErrPersistence, err)
	}

	if s.cache != nil {
		if err := s.cache.SetLatest(ctx, r); err != nil {
			slog.WarnContext(ctx, "Latest-reading cache write failed", "device_id", deviceID, "error", err)
		}
	}
	return r, nil
}

// NotificationsToday returns the device's notifications from the start of the
// current calendar day in the reference timezone. No upper bound is applied.
func (s *Service) NotificationsToday(ctx context.Context, deviceID string) ([]db.Notification, error) {
	const fn = "Telemetry:NotificationsToday"
	now := s.now().In(s.loc)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	notifications, err := s.store.NotificationsSince(ctx, deviceID, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrPersistence, err)
	}
	return notifications, nil
}

// DailyWindow returns up to the 7 most recent readings for the device, most
// recent first, reduced to rounded metric values keyed by the reading's day.
// Readings are not grouped or averaged per calendar day; a device reporting
// more than once per day yields one entry per reading.
func (s *Service) DailyWindow(ctx context.Context, deviceID string) ([]WindowEntry, error) {
	const fn = "Telemetry:DailyWindow"
	readings, err := s.store.RecentReadings(ctx, deviceID, WindowSize)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrPersistence, err)
	}

	entries := make([]WindowEntry, 0, len(readings))
	for _, r := range readings {
		entries = append(entries, WindowEntry{
			Day:         r.Timestamp.In(s.loc).Format(DayLayout),
			Air:         round2(r.Air),
			Temperature: round2(r.Temperature),
			Humidity:    round2(r.Humidity),
			CO:          round2(r.CO),
		})
	}
	return entries, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
