package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"airsentry/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_Latest(t *testing.T) {
	reading := db.Reading{
		ID: 3, DeviceID: "d1", Air: 50, Temperature: 20, Humidity: 40, CO: 10,
		Timestamp: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		name        string
		setupStore  func(t *testing.T) Store
		setupCache  func(t *testing.T) LatestCache
		expected    db.Reading
		expectedErr error
	}{
		{
			name: "store hit without cache",
			setupStore: func(t *testing.T) Store {
				store := NewMockStore(t)
				store.EXPECT().LatestReading(mock.Anything, "d1").Return(reading, nil)
				return store
			},
			expected: reading,
		},
		{
			name: "no readings for device",
			setupStore: func(t *testing.T) Store {
				store := NewMockStore(t)
				store.EXPECT().LatestReading(mock.Anything, "d1").Return(db.Reading{}, db.ErrNotFound)
				return store
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "store failure",
			setupStore: func(t *testing.T) Store {
				store := NewMockStore(t)
				store.EXPECT().LatestReading(mock.Anything, "d1").Return(db.Reading{}, errors.New("store unreachable"))
				return store
			},
			expectedErr: ErrPersistence,
		},
		{
			name: "cache hit skips the store",
			setupStore: func(t *testing.T) Store {
				return NewMockStore(t)
			},
			setupCache: func(t *testing.T) LatestCache {
				lc := NewMockLatestCache(t)
				lc.EXPECT().GetLatest(mock.Anything, "d1").Return(&reading, nil)
				return lc
			},
			expected: reading,
		},
		{
			name: "cache miss falls through and backfills",
			setupStore: func(t *testing.T) Store {
				store := NewMockStore(t)
				store.EXPECT().LatestReading(mock.Anything, "d1").Return(reading, nil)
				return store
			},
			setupCache: func(t *testing.T) LatestCache {
				lc := NewMockLatestCache(t)
				lc.EXPECT().GetLatest(mock.Anything, "d1").Return(nil, nil)
				lc.EXPECT().SetLatest(mock.Anything, reading).Return(nil)
				return lc
			},
			expected: reading,
		},
		{
			name: "cache error degrades to the store",
			setupStore: func(t *testing.T) Store {
				store := NewMockStore(t)
				store.EXPECT().LatestReading(mock.Anything, "d1").Return(reading, nil)
				return store
			},
			setupCache: func(t *testing.T) LatestCache {
				lc := NewMockLatestCache(t)
				lc.EXPECT().GetLatest(mock.Anything, "d1").Return(nil, errors.New("redis down"))
				lc.EXPECT().SetLatest(mock.Anything, reading).Return(nil)
				return lc
			},
			expected: reading,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Store: tt.setupStore(t), Location: time.UTC}
			if tt.setupCache != nil {
				cfg.Cache = tt.setupCache(t)
			}
			svc := New(cfg)

			got, err := svc.Latest(context.Background(), "d1")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func Test_NotificationsToday(t *testing.T) {
	nairobi, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	now := time.Date(2024, 3, 5, 10, 30, 0, 0, nairobi)
	startOfDay := time.Date(2024, 3, 5, 0, 0, 0, 0, nairobi)

	expected := []db.Notification{
		{ID: 1, Condition: ConditionAir, DeviceID: "d1", Timestamp: startOfDay.Add(time.Second), Message: "Air quality is above threshold"},
	}

	store := NewMockStore(t)
	store.EXPECT().NotificationsSince(mock.Anything, "d1", mock.MatchedBy(func(since time.Time) bool {
		return since.Equal(startOfDay)
	})).Return(expected, nil)

	svc := New(Config{
		Store:    store,
		Location: nairobi,
		Now:      func() time.Time { return now },
	})

	got, err := svc.NotificationsToday(context.Background(), "d1")
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

func Test_DailyWindow(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC)
	}

	readings := []db.Reading{
		{DeviceID: "d1", Air: 10.567, Temperature: 21.114, Humidity: 40, CO: 5.999, Timestamp: day(9)},
		{DeviceID: "d1", Air: 0, Temperature: 19.5, Humidity: 38.123, CO: 4, Timestamp: day(8)},
		{DeviceID: "d1", Air: 99.994, Temperature: 20, Humidity: 41, CO: 3, Timestamp: day(7)},
	}

	store := NewMockStore(t)
	store.EXPECT().RecentReadings(mock.Anything, "d1", WindowSize).Return(readings, nil)

	svc := New(Config{Store: store, Location: time.UTC})

	got, err := svc.DailyWindow(context.Background(), "d1")
	assert.NoError(t, err)
	assert.Equal(t, []WindowEntry{
		{Day: "2024-03-09", Air: 10.57, Temperature: 21.11, Humidity: 40, CO: 6},
		{Day: "2024-03-08", Air: 0, Temperature: 19.5, Humidity: 38.12, CO: 4},
		{Day: "2024-03-07", Air: 99.99, Temperature: 20, Humidity: 41, CO: 3},
	}, got)
}

// Two readings on the same calendar day stay separate entries; the window is
// per reading, not grouped per day.
func Test_DailyWindow_SameDayReadings(t *testing.T) {
	ts := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	readings := []db.Reading{
		{DeviceID: "d1", Air: 20, Temperature: 21, Humidity: 40, CO: 5, Timestamp: ts.Add(time.Hour)},
		{DeviceID: "d1", Air: 10, Temperature: 20, Humidity: 39, CO: 4, Timestamp: ts},
	}

	store := NewMockStore(t)
	store.EXPECT().RecentReadings(mock.Anything, "d1", WindowSize).Return(readings, nil)

	svc := New(Config{Store: store, Location: time.UTC})

	got, err := svc.DailyWindow(context.Background(), "d1")
	assert.NoError(t, err)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "2024-03-09", got[0].Day)
		assert.Equal(t, "2024-03-09", got[1].Day)
		assert.Equal(t, 20.0, got[0].Air)
		assert.Equal(t, 10.0, got[1].Air)
	}
}

func Test_DailyWindow_StoreFailure(t *testing.T) {
	store := NewMockStore(t)
	store.EXPECT().RecentReadings(mock.Anything, "d1", WindowSize).Return(nil, errors.New("store unreachable"))

	svc := New(Config{Store: store, Location: time.UTC})

	got, err := svc.DailyWindow(context.Background(), "d1")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrPersistence)
}
