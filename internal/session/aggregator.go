package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tremorlog/tremorlog/internal/signal"
)

// ErrNoData is returned when a recording stops with zero buffered
// readings. An empty recording is an error condition, not a degenerate
// empty session.
var ErrNoData = errors.New("no data collected")

// NewID generates a session id: millisecond timestamp prefix plus a
// short random suffix. Collisions are possible in principle but
// negligible for a single device; multi-device sync would need the
// full UUID.
func NewID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// Build assembles one immutable RecordingSession from an ordered
// reading buffer.
//
// The buffer is split into parallel per-axis sequences, the magnitude
// series and stats are derived from the accelerometer triples, and a
// fresh id is generated from the start timestamp. Build does not
// persist; the caller hands the session to the store and keeps the
// buffer until the save is confirmed.
func Build(readings []Reading, start time.Time, duration time.Duration, ctx *Context) (*RecordingSession, error) {
	if len(readings) == 0 {
		return nil, ErrNoData
	}

	n := len(readings)
	accel := SensorData{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}
	gyro := SensorData{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}

	for i, r := range readings {
		accel.X[i] = r.Accelerometer.X
		accel.Y[i] = r.Accelerometer.Y
		accel.Z[i] = r.Accelerometer.Z
		gyro.X[i] = r.Gyroscope.X
		gyro.Y[i] = r.Gyroscope.Y
		gyro.Z[i] = r.Gyroscope.Z
	}

	magnitude := signal.MagnitudeSeries(accel.X, accel.Y, accel.Z)

	return &RecordingSession{
		ID:            NewID(start),
		Timestamp:     start,
		Duration:      duration,
		Accelerometer: accel,
		Gyroscope:     gyro,
		Magnitude:     magnitude,
		Stats:         signal.ComputeStats(magnitude),
		Context:       ctx,
	}, nil
}
