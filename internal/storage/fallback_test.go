package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/tremorlog/tremorlog/internal/config"
	"github.com/tremorlog/tremorlog/internal/session"
)

// failingStore fails every operation; it stands in for a broken
// primary backend.
type failingStore struct{}

var errBroken = errors.New("disk on fire")

func (failingStore) SaveSession(*session.RecordingSession) error { return errBroken }
func (failingStore) LoadSessions() ([]session.RecordingSession, error) {
	return nil, errBroken
}
func (failingStore) DeleteSession(string) error              { return errBroken }
func (failingStore) DeleteSessions([]string) error           { return errBroken }
func (failingStore) ClearSessions() error                    { return errBroken }
func (failingStore) LoadSettings() (*config.Settings, error) { return nil, errBroken }
func (failingStore) SaveSettings(*config.Settings) error     { return errBroken }
func (failingStore) Close() error                            { return nil }

func fallbackSession(t *testing.T) *session.RecordingSession {
	t.Helper()

	readings := []session.Reading{
		{Accelerometer: session.Triple{X: 1, Y: 2, Z: 3}, Gyroscope: session.Triple{X: 0.1, Y: 0.2, Z: 0.3}},
		{Accelerometer: session.Triple{X: 2, Y: 3, Z: 4}, Gyroscope: session.Triple{X: 0.1, Y: 0.2, Z: 0.3}},
	}
	sess, err := session.Build(readings, time.Now(), time.Second, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return sess
}

func TestFallbackStaysOnHealthyPrimary(t *testing.T) {
	primary := NewMemoryStore()
	fb := NewFallback(primary, NewMemoryStore())

	if err := fb.SaveSession(fallbackSession(t)); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}
	if fb.Degraded() {
		t.Error("store should not degrade while the primary is healthy")
	}

	loaded, err := primary.LoadSessions()
	if err != nil || len(loaded) != 1 {
		t.Errorf("session should land in the primary, got %d (%v)", len(loaded), err)
	}
}

func TestFallbackSwitchesOnFirstFailure(t *testing.T) {
	memory := NewMemoryStore()
	fb := NewFallback(failingStore{}, memory)

	sess := fallbackSession(t)
	if err := fb.SaveSession(sess); err != nil {
		t.Fatalf("save should succeed via the fallback, got %v", err)
	}
	if !fb.Degraded() {
		t.Error("store should be degraded after a primary failure")
	}

	// Session is retrievable from the fallback backend.
	loaded, err := fb.LoadSessions()
	if err != nil {
		t.Fatalf("LoadSessions failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != sess.ID {
		t.Errorf("expected the saved session from the fallback, got %v", loaded)
	}
}

// Once degraded, the store never retries the primary.
func TestFallbackIsSticky(t *testing.T) {
	memory := NewMemoryStore()
	fb := NewFallback(failingStore{}, memory)

	if _, err := fb.LoadSessions(); err != nil {
		t.Fatalf("load via fallback failed: %v", err)
	}

	if err := fb.SaveSettings(config.DefaultSettings()); err != nil {
		t.Fatalf("settings save via fallback failed: %v", err)
	}
	settings, err := memory.LoadSettings()
	if err != nil || settings == nil {
		t.Fatalf("settings should be readable from the fallback backend: %v", err)
	}
}
