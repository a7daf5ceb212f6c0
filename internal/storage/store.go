/*
Package storage implements the persistence layer for recording sessions
and settings.

Two interchangeable backends implement the Store interface: a durable
SQLite store (modernc.org/sqlite, pure Go, CGo-free) and an in-memory
store. The Fallback wrapper selects between them at an explicit
decision point: it starts on the durable backend and switches to memory
on the first write/read failure, keeping the current process usable
while losing durability.

Loading is best-effort: persisted records failing minimal structural
validation are dropped with a logged warning, never surfaced as errors.
*/
package storage

import (
	"github.com/tremorlog/tremorlog/internal/config"
	"github.com/tremorlog/tremorlog/internal/session"
)

// Store is the persistence contract consumed by the recorder and the
// CLI. Sessions are whole-record, keyed by id, last-write-wins; there
// are no multi-record transactional guarantees.
type Store interface {
	// SaveSession persists one complete session.
	SaveSession(sess *session.RecordingSession) error

	// LoadSessions returns all structurally valid sessions, newest first.
	// Corrupted records are dropped silently.
	LoadSessions() ([]session.RecordingSession, error)

	// DeleteSession removes one session by id. Unknown ids are not an error.
	DeleteSession(id string) error

	// DeleteSessions removes several sessions by id.
	DeleteSessions(ids []string) error

	// ClearSessions removes the entire session history.
	ClearSessions() error

	// LoadSettings returns the stored settings merged over defaults.
	LoadSettings() (*config.Settings, error)

	// SaveSettings persists the settings.
	SaveSettings(s *config.Settings) error

	// Close releases backend resources.
	Close() error
}
