package telemetry

import (
	"fmt"
	"time"
)

// TimestampLayout is the wire format for reading timestamps. No timezone
// offset is encoded; values are interpreted in the service's reference
// timezone.
const TimestampLayout = "2006-01-02 15:04:05"

// NormalizeTimestamp resolves the effective timestamp of a reading. An empty
// raw value means "now", truncated to whole seconds.
func NormalizeTimestamp(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	const fn = "Telemetry:NormalizeTimestamp"
	if raw == "" {
		return now.In(loc).Truncate(time.Second), nil
	}
	ts, err := time.ParseInLocation(TimestampLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s:%w: timestamp %q does not match %q", fn, ErrValidation, raw, TimestampLayout)
	}
	return ts, nil
}
