// Package audio provides ID3 tagging and playlist generation for the
// preview cache.
//
// # ID3 Tagging
//
// Cached preview clips are stamped with the record's metadata so the
// cache is browsable in any player:
//
//	tagger := audio.NewTagger()
//	err := tagger.SaveTags(mention, clipPath, artworkBytes)
//
// # Playlist Generation
//
// An extended M3U playlist strings the cached clips together in
// timeline order:
//
//	writer := audio.NewPlaylistWriter()
//	content := writer.CreateM3U(entries)
package audio
