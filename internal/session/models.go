/*
Package session defines the recording data model and the aggregator
that turns a buffer of raw sensor readings into one immutable
RecordingSession.

A session is created atomically when a recording stops and is read-only
afterwards; the only mutations the rest of the system performs are
deletion and full-history clears, both of which go through the storage
layer.
*/
package session

import (
	"time"

	"github.com/tremorlog/tremorlog/internal/signal"
)

// Triple is one {x, y, z} sample from a tri-axial sensor.
type Triple struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Reading is one timestamped accelerometer/gyroscope sample pair
// captured during live acquisition. Readings exist only inside the
// in-progress recording buffer and are never persisted directly.
type Reading struct {
	Timestamp     time.Time `json:"timestamp"`
	Accelerometer Triple    `json:"accelerometer"`
	Gyroscope     Triple    `json:"gyroscope"`
}

// SensorData holds one sensor's per-axis readings across a session.
// The three axes have equal nominal length; MagnitudeSeries truncates
// to the shortest if they ever diverge.
type SensorData struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
	Z []float64 `json:"z"`
}

// Context is the optional user-supplied annotation attached to a
// session at recording time.
type Context struct {
	Caffeine      bool   `json:"caffeine"`
	SleepDeprived bool   `json:"sleepDeprived"`
	Stress        bool   `json:"stress"`
	Notes         string `json:"notes,omitempty"`
}

// RecordingSession is the unit of persistence: one complete timed
// recording with its raw per-axis data and derived statistics.
//
// Invariants: len(Magnitude) equals the minimum accelerometer axis
// length, and Stats is a pure function of Magnitude. Both are computed
// once at session-close time and never recomputed.
type RecordingSession struct {
	// ID is globally unique and immutable after creation.
	ID string `json:"id"`

	// Timestamp is when the recording started.
	Timestamp time.Time `json:"timestamp"`

	// Duration is the nominal recording duration.
	Duration time.Duration `json:"duration"`

	Accelerometer SensorData `json:"accelerometer"`
	Gyroscope     SensorData `json:"gyroscope"`

	// Magnitude is the Euclidean-norm series of the accelerometer data.
	Magnitude []float64 `json:"magnitude"`

	Stats signal.Stats `json:"stats"`

	// Context is nil when the user attached no annotation.
	Context *Context `json:"context,omitempty"`
}

// Valid reports whether a session satisfies the minimal structural
// requirements for use: id, timestamp, both sensor payloads, and a
// magnitude series. Records failing this check are dropped on load
// rather than surfaced as errors.
func (s *RecordingSession) Valid() bool {
	if s.ID == "" || s.Timestamp.IsZero() {
		return false
	}
	if s.Accelerometer.X == nil || s.Accelerometer.Y == nil || s.Accelerometer.Z == nil {
		return false
	}
	if s.Gyroscope.X == nil || s.Gyroscope.Y == nil || s.Gyroscope.Z == nil {
		return false
	}
	return s.Magnitude != nil
}
