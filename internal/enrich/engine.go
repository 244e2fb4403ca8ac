package enrich

import (
	"context"
	"strconv"
	"time"

	"github.com/calloway/jukebook/internal/itunes"
	"github.com/calloway/jukebook/internal/model"
	"github.com/calloway/jukebook/internal/progress"
)

// Searcher is the slice of the catalog client the engine needs. Tests
// substitute a fake; production wires *itunes.Client.
type Searcher interface {
	Search(ctx context.Context, artist, title string) ([]itunes.Candidate, error)
}

// Decider resolves ambiguous matches. It is consulted for partial and
// none matches only; exact matches are accepted automatically. The
// interactive pipeline plugs in StdinDecider, batch callers use
// AcceptExactOnly.
type Decider func(m *model.Mention, c itunes.Candidate, tag MatchTag) bool

// Stats summarizes one enrichment run.
type Stats struct {
	// Queried is the number of outbound search calls issued. Never
	// exceeds the query budget.
	Queried int

	// Enriched is the number of records that received metadata.
	Enriched int

	// Skipped counts records that were queried but not enriched:
	// search failures, empty result lists, and rejected matches.
	Skipped int
}

// Engine fills missing playback metadata on song mention records by
// querying the catalog search service and selecting the best candidate.
//
// The engine is deliberately slow and sequential: one outbound query at
// a time, a pause between queries, and a hard budget per run. Records
// left unenriched when the budget runs out are picked up by the next
// invocation, so progress is incremental rather than all-or-nothing.
//
// Example usage:
//
//	engine := enrich.NewEngine(client, enrich.StdinDecider(os.Stdin, os.Stdout), 15, 500*time.Millisecond, onProgress)
//	stats := engine.Run(ctx, records)
//	mentions.Save(dataPath, records) // rewritten whether or not anything changed
type Engine struct {
	searcher   Searcher
	decide     Decider
	budget     int
	pause      time.Duration
	onProgress progress.Func
}

// NewEngine creates an Engine. A non-positive budget falls back to 15
// queries; a negative pause falls back to 500ms. decide may be nil, in
// which case only exact matches are committed.
func NewEngine(searcher Searcher, decide Decider, budget int, pause time.Duration, onProgress progress.Func) *Engine {
	if budget <= 0 {
		budget = 15
	}
	if pause < 0 {
		pause = 500 * time.Millisecond
	}
	if decide == nil {
		decide = AcceptExactOnly
	}
	return &Engine{
		searcher:   searcher,
		decide:     decide,
		budget:     budget,
		pause:      pause,
		onProgress: onProgress,
	}
}

// Run walks the record set in timeline order and enriches records that
// have a title but are missing metadata, until the query budget is
// exhausted or the context is cancelled. Records are mutated in place;
// the caller persists the set afterwards.
//
// Per-record failures are logged and counted as skipped; one bad
// record never aborts the rest of the run.
func (e *Engine) Run(ctx context.Context, records []*model.Mention) Stats {
	var stats Stats

	for _, m := range records {
		if !m.HasTitle() || m.Enriched() {
			continue
		}

		if stats.Queried >= e.budget {
			e.onProgress.Emit(progress.LevelInfo, "Query budget (%d) exhausted, remaining records left for the next run", e.budget)
			break
		}

		if stats.Queried > 0 && !e.pauseBetweenQueries(ctx) {
			break
		}
		if ctx.Err() != nil {
			break
		}

		stats.Queried++
		if e.enrichOne(ctx, m) {
			stats.Enriched++
		} else {
			stats.Skipped++
		}
	}

	e.onProgress.Emit(progress.LevelInfo, "Enrichment run: %d queried, %d enriched, %d skipped", stats.Queried, stats.Enriched, stats.Skipped)
	return stats
}

// enrichOne queries the catalog for a single record and commits the
// selected candidate if it is accepted. Returns true when the record
// was enriched.
func (e *Engine) enrichOne(ctx context.Context, m *model.Mention) bool {
	candidates, err := e.searcher.Search(ctx, m.Artist, m.Title)
	if err != nil {
		e.onProgress.Emit(progress.LevelError, "Record %s (%s): search failed: %v", m.ID, m.Label(), err)
		return false
	}

	candidate, tag, ok := SelectCandidate(candidates, m.Album)
	if !ok {
		e.onProgress.Emit(progress.LevelWarning, "Record %s (%s): no results", m.ID, m.Label())
		return false
	}

	if tag != MatchExact && !e.decide(m, candidate, tag) {
		e.onProgress.Emit(progress.LevelVerbose, "Record %s (%s): %s match rejected", m.ID, m.Label(), tag)
		return false
	}

	e.commit(m, candidate)
	e.onProgress.Emit(progress.LevelSuccess, "Record %s: matched %q on %q (%s)", m.ID, candidate.TrackName, candidate.CollectionName, tag)
	return true
}

// commit writes the accepted candidate's metadata onto the record.
// PreviewURL is set even when empty so the field is present rather
// than undefined in the data file.
func (e *Engine) commit(m *model.Mention, c itunes.Candidate) {
	m.ITunesTrackID = strconv.FormatInt(c.TrackID, 10)
	m.PreviewURL = c.PreviewURL
	m.AlbumArt = itunes.HighResArtwork(c.ArtworkURL)
}

// pauseBetweenQueries waits the configured pause, honoring context
// cancellation. Returns false when the context ended during the wait.
func (e *Engine) pauseBetweenQueries(ctx context.Context) bool {
	if e.pause == 0 {
		return true
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(e.pause):
		return true
	}
}
