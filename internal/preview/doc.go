// Package preview maintains a local cache of the 30-second preview
// clips referenced by enriched records.
//
// The Manager downloads missing clips concurrently (bounded by
// settings), keeps clips already on disk, tags MP3 clips with the
// record's metadata and cover art, and can write an M3U playlist of
// the whole cache in timeline order:
//
//	manager := preview.NewManager(settings, progress.Printer(verbose))
//	err := manager.Sync(ctx, records)
//
// Per-clip failures are reported and skipped; one broken preview never
// stops the rest of the cache.
package preview
