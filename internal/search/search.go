package search

import (
	"fmt"
	"time"

	"github.com/blevesearch/bleve/v2"
)

// Search runs a keyword query over the indexed sessions and returns up
// to limit matches, best first.
func (i *Indexer) Search(query string, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	matchQuery := bleve.NewMatchQuery(query)
	request := bleve.NewSearchRequestOptions(matchQuery, limit, 0, false)
	request.Fields = []string{"notes", "date"}

	results, err := i.bleveIndex.Search(request)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	out := make([]Result, 0, len(results.Hits))
	for _, hit := range results.Hits {
		r := Result{SessionID: hit.ID, Score: hit.Score}
		if notes, ok := hit.Fields["notes"].(string); ok {
			r.Notes = notes
		}
		if date, ok := hit.Fields["date"].(string); ok {
			if ts, err := time.Parse("2006-01-02", date); err == nil {
				r.Timestamp = ts
			}
		}
		out = append(out, r)
	}
	return out, nil
}
