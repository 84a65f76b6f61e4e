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

func Test_Ingest(t *testing.T) {
	ts := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	const rawTS = "2024-03-05 10:00:00"

	cases := []struct {
		name            string
		input           ReadingInput
		setupStore      func(t *testing.T) Store
		expectedErr     error
		expectedID      int64
		expectedEmitted []string
		expectedFailed  []string
	}{
		{
			name: "no breaches persists reading only",
			input: ReadingInput{
				DeviceID: "d1", Timestamp: rawTS,
				Air: metric(50), Temperature: metric(20), Humidity: metric(40), CO: metric(10),
			},
			setupStore: func(t *testing.T) Store {
				store := NewMockStore(t)
				store.EXPECT().InsertReading(mock.Anything, db.Reading{
					DeviceID: "d1", Air: 50, Temperature: 20, Humidity: 40, CO: 10, Timestamp: ts,
				}).Return(int64(7), nil)
				return store
			},
			expectedID: 7,
		},
		{
			name: "air breach emits one notification",
			input: ReadingInput{
				DeviceID: "d1", Timestamp: rawTS,
				Air: metric(150), Temperature: metric(20), Humidity: metric(50), CO: metric(10),
			},
			setupStore: func(t *testing.T) Store {
				store := NewMockStore(t)
				store.EXPECT().InsertReading(mock.Anything, mock.Anything).Return(int64(8), nil)
				store.EXPECT().InsertNotification(mock.Anything, db.Notification{
					Condition: ConditionAir, DeviceID: "d1", Timestamp: ts,
					Message: "Air quality is above threshold",
				}).Return(int64(1), nil)
				return store
			},
			expectedID:      8,
			expectedEmitted: []string{ConditionAir},
		},
		{
			name: "partial alerting failure does not fail ingestion",
			input: ReadingInput{
				DeviceID: "d1", Timestamp: rawTS,
				Air: metric(150), Temperature: metric(35), Humidity: metric(80), CO: metric(120),
			},
			setupStore: func(t *testing.T) Store {
				store := NewMockStore(t)
				store.EXPECT().InsertReading(mock.Anything, mock.Anything).Return(int64(9), nil)
				store.On("InsertNotification", mock.Anything, mock.MatchedBy(func(n db.Notification) bool {
					return n.Condition == ConditionHumidity
				})).Return(int64(0), errors.New("write rejected"))
				store.On("InsertNotification", mock.Anything, mock.MatchedBy(func(n db.Notification) bool {
					return n.Condition != ConditionHumidity
				})).Return(int64(1), nil)
				return store
			},
			expectedID:      9,
			expectedEmitted: []string{ConditionAir, ConditionTemperature, ConditionCO},
			expectedFailed:  []string{ConditionHumidity},
		},
		{
			name: "reading persistence failure",
			input: ReadingInput{
				DeviceID: "d1", Timestamp: rawTS,
				Air: metric(150), Temperature: metric(20), Humidity: metric(50), CO: metric(10),
			},
			setupStore: func(t *testing.T) Store {
				store := NewMockStore(t)
				store.EXPECT().InsertReading(mock.Anything, mock.Anything).Return(int64(0), errors.New("store unreachable"))
				return store
			},
			expectedErr: ErrPersistence,
		},
		{
			name: "missing metric rejected before any write",
			input: ReadingInput{
				DeviceID: "d1", Timestamp: rawTS,
				Air: metric(150), Temperature: metric(20), CO: metric(10),
			},
			setupStore: func(t *testing.T) Store {
				return NewMockStore(t)
			},
			expectedErr: ErrValidation,
		},
		{
			name: "missing device_id rejected",
			input: ReadingInput{
				Air: metric(50), Temperature: metric(20), Humidity: metric(40), CO: metric(10),
			},
			setupStore: func(t *testing.T) Store {
				return NewMockStore(t)
			},
			expectedErr: ErrValidation,
		},
		{
			name: "malformed timestamp rejected",
			input: ReadingInput{
				DeviceID: "d1", Timestamp: "bad",
				Air: metric(50), Temperature: metric(20), Humidity: metric(40), CO: metric(10),
			},
			setupStore: func(t *testing.T) Store {
				return NewMockStore(t)
			},
			expectedErr: ErrValidation,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(Config{
				Store:    tt.setupStore(t),
				Location: time.UTC,
				Now:      func() time.Time { return ts },
			})

			result, err := svc.Ingest(context.Background(), tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedID, result.ReadingID)
			assert.Equal(t, tt.expectedEmitted, result.Alerts.Emitted)

			var failed []string
			for _, f := range result.Alerts.Failed {
				failed = append(failed, f.Condition)
			}
			assert.Equal(t, tt.expectedFailed, failed)
			assert.Equal(t, len(tt.expectedFailed) > 0, result.Alerts.Partial())
		})
	}
}

func Test_Ingest_DefaultTimestamp(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 999999999, time.UTC)
	truncated := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	store := NewMockStore(t)
	store.EXPECT().InsertReading(mock.Anything, mock.MatchedBy(func(r db.Reading) bool {
		return r.Timestamp.Equal(truncated)
	})).Return(int64(1), nil)

	svc := New(Config{
		Store:    store,
		Location: time.UTC,
		Now:      func() time.Time { return now },
	})

	result, err := svc.Ingest(context.Background(), ReadingInput{
		DeviceID: "d1",
		Air:      metric(50), Temperature: metric(20), Humidity: metric(40), CO: metric(10),
	})
	assert.NoError(t, err)
	assert.True(t, result.Timestamp.Equal(truncated))
}

func Test_Ingest_InvalidatesCache(t *testing.T) {
	ts := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	store := NewMockStore(t)
	store.EXPECT().InsertReading(mock.Anything, mock.Anything).Return(int64(1), nil)
	lc := NewMockLatestCache(t)
	lc.EXPECT().Invalidate(mock.Anything, "d1").Return(nil)

	svc := New(Config{
		Store:    store,
		Cache:    lc,
		Location: time.UTC,
		Now:      func() time.Time { return ts },
	})

	_, err := svc.Ingest(context.Background(), ReadingInput{
		DeviceID: "d1",
		Air:      metric(50), Temperature: metric(20), Humidity: metric(40), CO: metric(10),
	})
	assert.NoError(t, err)
}
