package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func metric(v float64) *float64 {
	return &v
}

func Test_Evaluate(t *testing.T) {
	ts := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name               string
		input              ReadingInput
		expectedConditions []string
	}{
		{
			name: "no breaches",
			input: ReadingInput{
				DeviceID: "d1",
				Air:      metric(50), Temperature: metric(20), Humidity: metric(40), CO: metric(10),
			},
			expectedConditions: nil,
		},
		{
			name: "air breach only",
			input: ReadingInput{
				DeviceID: "d1",
				Air:      metric(150), Temperature: metric(20), Humidity: metric(50), CO: metric(10),
			},
			expectedConditions: []string{ConditionAir},
		},
		{
			name: "three breaches keep table order",
			input: ReadingInput{
				DeviceID: "d1",
				Air:      metric(50), Temperature: metric(35), Humidity: metric(80), CO: metric(120),
			},
			expectedConditions: []string{ConditionTemperature, ConditionHumidity, ConditionCO},
		},
		{
			name: "all four breach",
			input: ReadingInput{
				DeviceID: "d1",
				Air:      metric(101), Temperature: metric(31), Humidity: metric(71), CO: metric(101),
			},
			expectedConditions: []string{ConditionAir, ConditionTemperature, ConditionHumidity, ConditionCO},
		},
		{
			name: "equality does not breach",
			input: ReadingInput{
				DeviceID: "d1",
				Air:      metric(100), Temperature: metric(30), Humidity: metric(70), CO: metric(100),
			},
			expectedConditions: nil,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.input, ts)
			assert.NoError(t, err)

			var conditions []string
			for _, n := range got {
				conditions = append(conditions, n.Condition)
				assert.Equal(t, tt.input.DeviceID, n.DeviceID)
				assert.True(t, n.Timestamp.Equal(ts))
				assert.NotEmpty(t, n.Message)
			}
			assert.Equal(t, tt.expectedConditions, conditions)
		})
	}
}

func Test_Evaluate_Messages(t *testing.T) {
	in := ReadingInput{
		DeviceID: "d1",
		Air:      metric(101), Temperature: metric(31), Humidity: metric(71), CO: metric(101),
	}
	got, err := Evaluate(in, time.Now())
	assert.NoError(t, err)
	if assert.Len(t, got, 4) {
		assert.Equal(t, "Air quality is above threshold", got[0].Message)
		assert.Equal(t, "Temperature is above threshold", got[1].Message)
		assert.Equal(t, "Humidity is above threshold", got[2].Message)
		assert.Equal(t, "CO is above threshold", got[3].Message)
	}
}

func Test_Evaluate_MissingMetric(t *testing.T) {
	cases := []struct {
		name  string
		input ReadingInput
		field string
	}{
		{
			name: "missing air",
			input: ReadingInput{
				DeviceID:    "d1",
				Temperature: metric(20), Humidity: metric(40), CO: metric(10),
			},
			field: "air",
		},
		{
			name: "missing co",
			input: ReadingInput{
				DeviceID: "d1",
				Air:      metric(50), Temperature: metric(20), Humidity: metric(40),
			},
			field: "co",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.input, time.Now())
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
