package storage

import (
	"log"
	"sync"

	"github.com/tremorlog/tremorlog/internal/config"
	"github.com/tremorlog/tremorlog/internal/session"
)

// Fallback wraps a primary (durable) and a fallback (in-memory) Store.
//
// It starts on the primary; the first failing operation flips it to
// the fallback permanently for the life of the process, with a single
// logged warning. The switch is the explicit decision point — there is
// no per-operation retry against the primary afterwards, so behavior
// stays predictable once degraded. Callers still see an error if the
// fallback itself fails, in which case they must keep their in-memory
// buffers for retry.
type Fallback struct {
	mu       sync.Mutex
	primary  Store
	fallback Store
	degraded bool
}

// NewFallback builds a Fallback over the given backends.
func NewFallback(primary, fallback Store) *Fallback {
	return &Fallback{primary: primary, fallback: fallback}
}

// Degraded reports whether the store has switched to the fallback
// backend.
func (f *Fallback) Degraded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.degraded
}

// active returns the backend currently in use.
func (f *Fallback) active() Store {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.degraded {
		return f.fallback
	}
	return f.primary
}

// degrade switches to the fallback backend after a primary failure.
func (f *Fallback) degrade(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.degraded {
		return
	}
	f.degraded = true
	log.Printf("Warning: primary store failed, switching to in-memory fallback (data will not survive exit): %v", err)
}

func (f *Fallback) SaveSession(sess *session.RecordingSession) error {
	if f.Degraded() {
		return f.fallback.SaveSession(sess)
	}
	if err := f.primary.SaveSession(sess); err != nil {
		f.degrade(err)
		return f.fallback.SaveSession(sess)
	}
	return nil
}

func (f *Fallback) LoadSessions() ([]session.RecordingSession, error) {
	if f.Degraded() {
		return f.fallback.LoadSessions()
	}
	sessions, err := f.primary.LoadSessions()
	if err != nil {
		f.degrade(err)
		return f.fallback.LoadSessions()
	}
	return sessions, nil
}

func (f *Fallback) DeleteSession(id string) error {
	if f.Degraded() {
		return f.fallback.DeleteSession(id)
	}
	if err := f.primary.DeleteSession(id); err != nil {
		f.degrade(err)
		return f.fallback.DeleteSession(id)
	}
	return nil
}

func (f *Fallback) DeleteSessions(ids []string) error {
	if f.Degraded() {
		return f.fallback.DeleteSessions(ids)
	}
	if err := f.primary.DeleteSessions(ids); err != nil {
		f.degrade(err)
		return f.fallback.DeleteSessions(ids)
	}
	return nil
}

func (f *Fallback) ClearSessions() error {
	if f.Degraded() {
		return f.fallback.ClearSessions()
	}
	if err := f.primary.ClearSessions(); err != nil {
		f.degrade(err)
		return f.fallback.ClearSessions()
	}
	return nil
}

func (f *Fallback) LoadSettings() (*config.Settings, error) {
	if f.Degraded() {
		return f.fallback.LoadSettings()
	}
	settings, err := f.primary.LoadSettings()
	if err != nil {
		f.degrade(err)
		return f.fallback.LoadSettings()
	}
	return settings, nil
}

func (f *Fallback) SaveSettings(s *config.Settings) error {
	if f.Degraded() {
		return f.fallback.SaveSettings(s)
	}
	if err := f.primary.SaveSettings(s); err != nil {
		f.degrade(err)
		return f.fallback.SaveSettings(s)
	}
	return nil
}

// Close closes both backends; the first error wins.
func (f *Fallback) Close() error {
	err := f.primary.Close()
	if cerr := f.fallback.Close(); err == nil {
		err = cerr
	}
	return err
}
