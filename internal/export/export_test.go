package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/tremorlog/tremorlog/internal/session"
	"github.com/tremorlog/tremorlog/internal/signal"
)

func exportSession() session.RecordingSession {
	return session.RecordingSession{
		ID:        "1785578400000-abcd1234",
		Timestamp: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Duration:  10 * time.Second,
		Accelerometer: session.SensorData{
			X: []float64{1, 2}, Y: []float64{0, 0}, Z: []float64{0, 0},
		},
		Gyroscope: session.SensorData{
			X: []float64{0, 0}, Y: []float64{0, 0}, Z: []float64{0, 0},
		},
		Magnitude: []float64{1, 2},
		Stats: signal.Stats{
			MeanAmplitude: 0.5,
			Variability:   0.5,
			PeakAmplitude: 0.5,
		},
		Context: &session.Context{Caffeine: true, Notes: ""},
	}
}

func TestWriteCSVRow(t *testing.T) {
	var buf strings.Builder
	if err := WriteCSV(&buf, []session.RecordingSession{exportSession()}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}

	wantHeader := "ID,Timestamp,Duration,Mean Amplitude,Variability,Peak Amplitude,Caffeine,Sleep Deprived,Stress,Notes"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}

	// {caffeine:true, stress:false, notes:""} ends the row Yes,No,No,
	// with stats fixed to 4 decimals.
	if !strings.HasSuffix(lines[1], ",Yes,No,No,") {
		t.Errorf("row should end with ,Yes,No,No, got %q", lines[1])
	}
	if !strings.Contains(lines[1], "0.5000,0.5000,0.5000") {
		t.Errorf("stats should be fixed to 4 decimals, got %q", lines[1])
	}
	if !strings.Contains(lines[1], "2026-08-01T10:00:00Z") {
		t.Errorf("timestamp should be ISO-8601, got %q", lines[1])
	}
}

func TestWriteCSVNilContext(t *testing.T) {
	sess := exportSession()
	sess.Context = nil

	var buf strings.Builder
	if err := WriteCSV(&buf, []session.RecordingSession{sess}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if !strings.Contains(buf.String(), ",No,No,No,") {
		t.Errorf("missing context should render all No, got %q", buf.String())
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf strings.Builder
	history := []session.RecordingSession{exportSession()}
	if err := WriteJSON(&buf, history); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded []session.RecordingSession
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].ID != history[0].ID {
		t.Errorf("decoded history = %+v", decoded)
	}
	if len(decoded[0].Magnitude) != 2 {
		t.Error("JSON export should carry the full magnitude series")
	}

	// Pretty-printed: the payload spans multiple lines.
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("JSON export should be indented")
	}
}

func TestWriteJSONEmptyHistory(t *testing.T) {
	var buf strings.Builder
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty history should export as [], got %q", buf.String())
	}
}
