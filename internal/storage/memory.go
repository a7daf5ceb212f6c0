package storage

import (
	"sort"
	"sync"

	"github.com/tremorlog/tremorlog/internal/config"
	"github.com/tremorlog/tremorlog/internal/session"
)

// MemoryStore implements Store on a process-local map. It backs the
// fallback path when the durable store fails, and the unit tests.
// Nothing survives process exit.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]session.RecordingSession
	settings *config.Settings
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]session.RecordingSession),
	}
}

// SaveSession stores a copy of the session keyed by id.
func (m *MemoryStore) SaveSession(sess *session.RecordingSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sess.ID] = *sess
	return nil
}

// LoadSessions returns all sessions, newest first.
func (m *MemoryStore) LoadSessions() ([]session.RecordingSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sessions := make([]session.RecordingSession, 0, len(m.sessions))
	for _, sess := range m.sessions {
		if !sess.Valid() {
			continue
		}
		sessions = append(sessions, sess)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.After(sessions[j].Timestamp)
	})
	return sessions, nil
}

// DeleteSession removes one session by id.
func (m *MemoryStore) DeleteSession(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

// DeleteSessions removes several sessions by id.
func (m *MemoryStore) DeleteSessions(ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range ids {
		delete(m.sessions, id)
	}
	return nil
}

// ClearSessions removes the entire history.
func (m *MemoryStore) ClearSessions() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions = make(map[string]session.RecordingSession)
	return nil
}

// LoadSettings returns saved settings, or defaults when none exist.
func (m *MemoryStore) LoadSettings() (*config.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.settings == nil {
		return config.DefaultSettings(), nil
	}
	settings := *m.settings
	settings.Normalize()
	return &settings, nil
}

// SaveSettings stores a copy of the settings.
func (m *MemoryStore) SaveSettings(s *config.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	settings := *s
	m.settings = &settings
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
