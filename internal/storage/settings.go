package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tremorlog/tremorlog/internal/config"
)

// LoadSettings returns the stored settings merged over defaults. When
// nothing has been saved yet the defaults are returned as-is.
func (s *SQLiteStore) LoadSettings() (*config.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow("SELECT payload FROM settings WHERE id = 1")

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return config.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings := &config.Settings{}
	if err := json.Unmarshal([]byte(payload), settings); err != nil {
		// Unparseable settings are recoverable: fall back to defaults.
		return config.DefaultSettings(), nil
	}
	settings.Normalize()
	return settings, nil
}

// SaveSettings persists the settings as a single JSON payload.
func (s *SQLiteStore) SaveSettings(settings *config.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	query := "INSERT OR REPLACE INTO settings (id, payload) VALUES (1, ?)"
	if _, err := s.db.Exec(query, string(payload)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
