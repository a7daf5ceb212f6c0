package recorder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tremorlog/tremorlog/internal/session"
	"github.com/tremorlog/tremorlog/internal/storage"
)

var (
	// ErrRecordingActive is returned when a recording is started while
	// another one is still running. Recordings are strictly serialized,
	// never merged.
	ErrRecordingActive = errors.New("a recording is already active")

	// ErrSensorUnavailable is returned when either sensor cannot deliver
	// samples. No partial session is created.
	ErrSensorUnavailable = errors.New("sensors unavailable")

	// ErrAborted is returned when the user stops a recording before the
	// nominal duration elapses. The partial buffer is discarded.
	ErrAborted = errors.New("recording aborted")
)

// Options configures one recording run.
type Options struct {
	// Duration is the nominal recording length.
	Duration time.Duration

	// Interval is the collection tick interval.
	Interval time.Duration

	// Context is the optional user annotation for the session.
	Context *session.Context
}

// Recorder owns the acquisition workflow. A single Recorder allows one
// active recording at a time.
type Recorder struct {
	accel Source
	gyro  Source
	store storage.Store
	clock func() time.Time

	mu     sync.Mutex
	active bool
}

// New builds a Recorder over the two sensor sources and the session
// store.
func New(accel, gyro Source, store storage.Store) *Recorder {
	return &Recorder{
		accel: accel,
		gyro:  gyro,
		store: store,
		clock: time.Now,
	}
}

// Record runs one full acquisition: subscribe to both sensors, collect
// readings on the tick until the duration elapses, build the session,
// and persist it.
//
// Cancelling ctx aborts the recording and discards the buffer
// (ErrAborted). If the buffer is empty at the natural timeout the run
// fails with session.ErrNoData. If persistence fails, the built
// session is returned alongside the error so the caller can retry the
// save; the recording itself is not lost.
func (r *Recorder) Record(ctx context.Context, opts Options) (*session.RecordingSession, error) {
	r.mu.Lock()
	if r.active {
		r.mu.Unlock()
		return nil, ErrRecordingActive
	}
	r.active = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.active = false
		r.mu.Unlock()
	}()

	if !r.accel.Available() || !r.gyro.Available() {
		return nil, ErrSensorUnavailable
	}

	readings, start, err := r.collect(ctx, opts)
	if err != nil {
		return nil, err
	}

	sess, err := session.Build(readings, start, opts.Duration, opts.Context)
	if err != nil {
		return nil, err
	}

	// The reading buffer (now inside sess) stays with the caller until a
	// save succeeds; a failed save must never lose the recording.
	if err := r.store.SaveSession(sess); err != nil {
		return sess, fmt.Errorf("session recorded but not persisted: %w", err)
	}

	return sess, nil
}

// collect drives the tick loop until the duration elapses or ctx is
// cancelled.
func (r *Recorder) collect(ctx context.Context, opts Options) ([]session.Reading, time.Time, error) {
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	accelCh, err := r.accel.Subscribe(subCtx, opts.Interval)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("accelerometer: %w", ErrSensorUnavailable)
	}
	gyroCh, err := r.gyro.Subscribe(subCtx, opts.Interval)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("gyroscope: %w", ErrSensorUnavailable)
	}

	var accelSlot, gyroSlot latestValue
	accelDone := make(chan struct{})
	gyroDone := make(chan struct{})
	go watch(accelCh, &accelSlot, accelDone)
	go watch(gyroCh, &gyroSlot, gyroDone)

	// Unblock the watchers on any exit path before returning.
	stop := func() {
		cancel()
		<-accelDone
		<-gyroDone
	}

	start := r.clock()
	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()
	deadline := time.NewTimer(opts.Duration)
	defer deadline.Stop()

	var readings []session.Reading
	for {
		select {
		case <-ctx.Done():
			stop()
			return nil, start, ErrAborted

		case <-deadline.C:
			stop()
			return readings, start, nil

		case now := <-ticker.C:
			accel, accelOK := accelSlot.get()
			gyro, gyroOK := gyroSlot.get()
			// Drop the tick until both sources have delivered once.
			if !accelOK || !gyroOK {
				continue
			}
			readings = append(readings, session.Reading{
				Timestamp:     now,
				Accelerometer: accel,
				Gyroscope:     gyro,
			})
		}
	}
}
