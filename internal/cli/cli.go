/*
Package cli implements the tremorlog commands. Commands are thin
presentation: they open the store, invoke the recording or analysis
core, and print the results. Nothing in this package computes
statistics.
*/
package cli

import (
	"log"

	"github.com/tremorlog/tremorlog/internal/storage"
)

// openStore builds the session store: durable SQLite wrapped in an
// in-memory fallback. When the database cannot even be opened the
// process runs on the in-memory store alone, with a warning — the
// explicit construction-time decision point for degradation.
func openStore() storage.Store {
	path, err := storage.DefaultDBPath()
	if err != nil {
		log.Printf("Warning: no home directory, sessions will not be persisted: %v", err)
		return storage.NewMemoryStore()
	}

	primary, err := storage.OpenSQLite(path)
	if err != nil {
		log.Printf("Warning: cannot open session database, sessions will not be persisted: %v", err)
		return storage.NewMemoryStore()
	}

	return storage.NewFallback(primary, storage.NewMemoryStore())
}
