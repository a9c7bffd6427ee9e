// Package output handles result presentation: console summaries and raw
// JSON dumps under the per-run results directory.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/ray66rus/amadeus-searcher/internal/domain"
)

// ResultsWriter persists the raw API entries of each search request as
// one JSON file per origin/destination pair. The directory is recreated
// destructively at the start of every run, so only the latest run's
// files survive. Not safe for concurrent runs sharing a directory.
type ResultsWriter struct {
	dir      string
	counters map[string]int
}

// NewResultsWriter creates a writer rooted at dir. Call Reset before the
// first Write.
func NewResultsWriter(dir string) *ResultsWriter {
	return &ResultsWriter{
		dir:      dir,
		counters: make(map[string]int),
	}
}

// Dir returns the results directory path.
func (w *ResultsWriter) Dir() string {
	return w.dir
}

// Reset deletes and recreates the results directory and clears the
// per-route file counters.
func (w *ResultsWriter) Reset() error {
	if err := os.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("remove results dir %s: %w", w.dir, err)
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create results dir %s: %w", w.dir, err)
	}
	w.counters = make(map[string]int)

	log.Debug().Str("dir", w.dir).Msg("Results directory reset")
	return nil
}

// Write dumps the raw entries of one request's offers to
// "<ORG>-<DST>-<N>.json", where N counts requests for the same route
// within the run. An empty offer list still produces a file (holding an
// empty JSON array), mirroring the console output for the request.
func (w *ResultsWriter) Write(req *domain.SearchRequest, offers []domain.Offer) error {
	key := req.Route()
	w.counters[key]++

	entries := make([]json.RawMessage, 0, len(offers))
	for _, offer := range offers {
		entries = append(entries, offer.Raw)
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal entries for %s: %w", key, err)
	}

	name := fmt.Sprintf("%s-%d.json", key, w.counters[key])
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write results file %s: %w", path, err)
	}

	log.Debug().Str("file", path).Int("entries", len(entries)).Msg("Results written")
	return nil
}
