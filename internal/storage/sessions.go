package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tremorlog/tremorlog/internal/session"
)

// SaveSession persists one complete session. Saving an existing id
// overwrites the record (last-write-wins).
func (s *SQLiteStore) SaveSession(sess *session.RecordingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT OR REPLACE INTO sessions (
			id, timestamp, duration_ms,
			accel_x, accel_y, accel_z,
			gyro_x, gyro_y, gyro_z,
			magnitude,
			mean_amplitude, variability, peak_amplitude,
			caffeine, sleep_deprived, stress, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var caffeine, sleepDeprived, stress any
	var notes any
	if sess.Context != nil {
		caffeine = boolToInt(sess.Context.Caffeine)
		sleepDeprived = boolToInt(sess.Context.SleepDeprived)
		stress = boolToInt(sess.Context.Stress)
		notes = sess.Context.Notes
	}

	_, err := s.db.Exec(query,
		sess.ID,
		sess.Timestamp.Format(time.RFC3339Nano),
		sess.Duration.Milliseconds(),
		seriesToJSON(sess.Accelerometer.X),
		seriesToJSON(sess.Accelerometer.Y),
		seriesToJSON(sess.Accelerometer.Z),
		seriesToJSON(sess.Gyroscope.X),
		seriesToJSON(sess.Gyroscope.Y),
		seriesToJSON(sess.Gyroscope.Z),
		seriesToJSON(sess.Magnitude),
		sess.Stats.MeanAmplitude,
		sess.Stats.Variability,
		sess.Stats.PeakAmplitude,
		caffeine,
		sleepDeprived,
		stress,
		notes,
	)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", sess.ID, err)
	}
	return nil
}

// LoadSessions returns all structurally valid sessions, newest first.
// Rows that fail to scan, parse, or validate are dropped with a logged
// warning; corruption never surfaces as a caller-facing error.
func (s *SQLiteStore) LoadSessions() ([]session.RecordingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		SELECT id, timestamp, duration_ms,
			accel_x, accel_y, accel_z,
			gyro_x, gyro_y, gyro_z,
			magnitude,
			mean_amplitude, variability, peak_amplitude,
			caffeine, sleep_deprived, stress, notes
		FROM sessions
		ORDER BY timestamp DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []session.RecordingSession
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			log.Printf("Warning: dropping corrupted session record: %v", err)
			continue
		}
		if !sess.Valid() {
			log.Printf("Warning: dropping structurally invalid session %q", sess.ID)
			continue
		}
		sessions = append(sessions, *sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}

	return sessions, nil
}

func scanSession(row *sql.Rows) (*session.RecordingSession, error) {
	var sess session.RecordingSession
	var timestampStr string
	var durationMs int64
	var accelX, accelY, accelZ, gyroX, gyroY, gyroZ, magnitude string
	var caffeine, sleepDeprived, stress *int
	var notes *string

	if err := row.Scan(
		&sess.ID,
		&timestampStr,
		&durationMs,
		&accelX, &accelY, &accelZ,
		&gyroX, &gyroY, &gyroZ,
		&magnitude,
		&sess.Stats.MeanAmplitude,
		&sess.Stats.Variability,
		&sess.Stats.PeakAmplitude,
		&caffeine, &sleepDeprived, &stress,
		&notes,
	); err != nil {
		return nil, err
	}

	var err error
	sess.Timestamp, err = time.Parse(time.RFC3339Nano, timestampStr)
	if err != nil {
		return nil, fmt.Errorf("bad timestamp %q: %w", timestampStr, err)
	}
	sess.Duration = time.Duration(durationMs) * time.Millisecond

	if sess.Accelerometer.X, err = jsonToSeries(accelX); err != nil {
		return nil, err
	}
	if sess.Accelerometer.Y, err = jsonToSeries(accelY); err != nil {
		return nil, err
	}
	if sess.Accelerometer.Z, err = jsonToSeries(accelZ); err != nil {
		return nil, err
	}
	if sess.Gyroscope.X, err = jsonToSeries(gyroX); err != nil {
		return nil, err
	}
	if sess.Gyroscope.Y, err = jsonToSeries(gyroY); err != nil {
		return nil, err
	}
	if sess.Gyroscope.Z, err = jsonToSeries(gyroZ); err != nil {
		return nil, err
	}
	if sess.Magnitude, err = jsonToSeries(magnitude); err != nil {
		return nil, err
	}

	if caffeine != nil || sleepDeprived != nil || stress != nil || notes != nil {
		sess.Context = &session.Context{
			Caffeine:      caffeine != nil && *caffeine == 1,
			SleepDeprived: sleepDeprived != nil && *sleepDeprived == 1,
			Stress:        stress != nil && *stress == 1,
		}
		if notes != nil {
			sess.Context.Notes = *notes
		}
	}

	return &sess, nil
}

// DeleteSession removes one session by id.
func (s *SQLiteStore) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

// DeleteSessions removes several sessions in one statement.
func (s *SQLiteStore) DeleteSessions(ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := fmt.Sprintf("DELETE FROM sessions WHERE id IN (%s)", placeholders)
	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	return nil
}

// ClearSessions removes the entire session history.
func (s *SQLiteStore) ClearSessions() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func seriesToJSON(series []float64) string {
	data, err := json.Marshal(series)
	if err != nil {
		log.Printf("Warning: failed to marshal series: %v", err)
		return "[]"
	}
	return string(data)
}

func jsonToSeries(jsonStr string) ([]float64, error) {
	var series []float64
	if err := json.Unmarshal([]byte(jsonStr), &series); err != nil {
		return nil, fmt.Errorf("bad series payload: %w", err)
	}
	if series == nil {
		series = []float64{}
	}
	return series, nil
}
