package search

import (
	"testing"
	"time"

	"github.com/tremorlog/tremorlog/internal/session"
)

func indexedSession(id, notes string, ctx *session.Context) session.RecordingSession {
	sess := session.RecordingSession{
		ID:        id,
		Timestamp: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		Magnitude: []float64{1},
		Accelerometer: session.SensorData{
			X: []float64{1}, Y: []float64{1}, Z: []float64{1},
		},
		Gyroscope: session.SensorData{
			X: []float64{1}, Y: []float64{1}, Z: []float64{1},
		},
	}
	if ctx != nil {
		sess.Context = ctx
	} else if notes != "" {
		sess.Context = &session.Context{Notes: notes}
	}
	return sess
}

func TestSearchByNotes(t *testing.T) {
	indexer, err := NewIndexer()
	if err != nil {
		t.Fatalf("NewIndexer failed: %v", err)
	}
	defer indexer.Close()

	history := []session.RecordingSession{
		indexedSession("s1", "after morning espresso", nil),
		indexedSession("s2", "calm evening reading", nil),
	}
	if err := indexer.IndexSessions(history); err != nil {
		t.Fatalf("IndexSessions failed: %v", err)
	}

	results, err := indexer.Search("espresso", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].SessionID != "s1" {
		t.Errorf("expected s1 for 'espresso', got %+v", results)
	}
}

func TestSearchByContextFlag(t *testing.T) {
	indexer, err := NewIndexer()
	if err != nil {
		t.Fatalf("NewIndexer failed: %v", err)
	}
	defer indexer.Close()

	history := []session.RecordingSession{
		indexedSession("s1", "", &session.Context{Caffeine: true}),
		indexedSession("s2", "", &session.Context{Stress: true}),
	}
	if err := indexer.IndexSessions(history); err != nil {
		t.Fatalf("IndexSessions failed: %v", err)
	}

	results, err := indexer.Search("caffeine", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].SessionID != "s1" {
		t.Errorf("expected the caffeine-flagged session, got %+v", results)
	}
}

func TestSearchNoMatches(t *testing.T) {
	indexer, err := NewIndexer()
	if err != nil {
		t.Fatalf("NewIndexer failed: %v", err)
	}
	defer indexer.Close()

	if err := indexer.IndexSessions([]session.RecordingSession{
		indexedSession("s1", "quiet day", nil),
	}); err != nil {
		t.Fatalf("IndexSessions failed: %v", err)
	}

	results, err := indexer.Search("marathon", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %+v", results)
	}
}
