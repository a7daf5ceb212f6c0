/*
Package recorder drives live acquisition: it subscribes to an
accelerometer and a gyroscope source, samples both on a fixed tick,
and finalizes the buffered readings into a persisted session.

The two sources deliver asynchronously at their own pace. The recorder
never waits for synchronized delivery; each collection tick reads the
latest known value from each source and drops the tick entirely while
either source has yet to deliver its first value.
*/
package recorder

import (
	"context"
	"sync"
	"time"

	"github.com/tremorlog/tremorlog/internal/session"
)

// Source is one tri-axial sensor as seen by the recorder. Device
// polling lives behind this interface; the core never touches hardware
// directly.
type Source interface {
	// Available reports whether the sensor can deliver samples.
	Available() bool

	// Subscribe starts sample delivery at roughly the given interval and
	// returns the sample channel. Delivery stops and the channel closes
	// when ctx is cancelled.
	Subscribe(ctx context.Context, interval time.Duration) (<-chan session.Triple, error)
}

// latestValue is a single-writer, single-reader slot holding the most
// recent sample from one source. The mutex keeps the triple replacement
// atomic.
type latestValue struct {
	mu  sync.Mutex
	val session.Triple
	ok  bool
}

// set replaces the slot value.
func (l *latestValue) set(t session.Triple) {
	l.mu.Lock()
	l.val = t
	l.ok = true
	l.mu.Unlock()
}

// get returns the slot value and whether anything has been delivered yet.
func (l *latestValue) get() (session.Triple, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.val, l.ok
}

// watch drains a sample channel into a slot until the channel closes.
func watch(ch <-chan session.Triple, slot *latestValue, done chan<- struct{}) {
	for t := range ch {
		slot.set(t)
	}
	close(done)
}
