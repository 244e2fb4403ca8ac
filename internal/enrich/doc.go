// Package enrich fills missing playback metadata on song mention
// records by querying the iTunes Search API and selecting the best
// candidate among near-duplicate catalog entries.
//
// # Matching
//
// SelectCandidate scores candidates against the album the book names
// and tags the pick exact, partial or none. Exact matches are accepted
// automatically; partial and none matches are low-trust and go through
// a pluggable Decider: interactively a stdin yes/no prompt, in batch
// mode AcceptExactOnly.
//
// # Pacing
//
// The Engine issues one query at a time, pauses between queries, and
// stops after a fixed budget per run. This is incremental progress by
// design: the next invocation picks up the records that are still
// missing metadata.
//
//	engine := enrich.NewEngine(client, decider, 15, 500*time.Millisecond, onProgress)
//	stats := engine.Run(ctx, records)
package enrich
