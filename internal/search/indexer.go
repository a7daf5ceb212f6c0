/*
Package search provides keyword search over the persisted session
history. Session notes and context flags are indexed in an in-memory
Bleve index rebuilt from the store per invocation; session data itself
never lives in the index, only the fields a search can match on.
*/
package search

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/tremorlog/tremorlog/internal/session"
)

// Result is one matching session with its relevance score.
type Result struct {
	SessionID string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes"`
	Score     float64   `json:"score"`
}

// Indexer maintains the in-memory session index.
type Indexer struct {
	bleveIndex bleve.Index
	mu         sync.RWMutex
}

// NewIndexer creates an empty in-memory index.
func NewIndexer() (*Indexer, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}
	return &Indexer{bleveIndex: index}, nil
}

// buildIndexMapping indexes notes as full text and the context flags
// as keyword-ish text so queries like "caffeine" match flagged
// sessions even without notes.
func buildIndexMapping() mapping.IndexMapping {
	sessionMapping := bleve.NewDocumentMapping()

	notesMapping := bleve.NewTextFieldMapping()
	sessionMapping.AddFieldMappingsAt("notes", notesMapping)

	flagsMapping := bleve.NewTextFieldMapping()
	sessionMapping.AddFieldMappingsAt("flags", flagsMapping)

	dateMapping := bleve.NewTextFieldMapping()
	sessionMapping.AddFieldMappingsAt("date", dateMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", sessionMapping)
	return indexMapping
}

// IndexSessions (re)indexes the given history. Individual index
// failures are logged and skipped; the rest of the batch still lands.
func (i *Indexer) IndexSessions(history []session.RecordingSession) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()
	for _, sess := range history {
		doc := map[string]interface{}{
			"notes": "",
			"flags": "",
			"date":  sess.Timestamp.Format("2006-01-02"),
		}
		if sess.Context != nil {
			doc["notes"] = sess.Context.Notes
			doc["flags"] = flagTerms(sess.Context)
		}

		if err := batch.Index(sess.ID, doc); err != nil {
			log.Printf("Warning: failed to index session %s: %v", sess.ID, err)
		}
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index sessions: %w", err)
	}
	return nil
}

// flagTerms renders the set flags as searchable terms.
func flagTerms(ctx *session.Context) string {
	terms := ""
	if ctx.Caffeine {
		terms += "caffeine "
	}
	if ctx.SleepDeprived {
		terms += "sleep-deprived sleep "
	}
	if ctx.Stress {
		terms += "stress "
	}
	return terms
}

// Close releases the index.
func (i *Indexer) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.bleveIndex.Close()
}
