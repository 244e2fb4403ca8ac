// Package ioutils provides file system and image utilities.
//
// # File Operations
//
//	// Ensure the preview cache directory exists
//	err := ioutils.EnsureDir(cachePath)
//
//	// Sanitize a mention label into a filename
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // "Song_ Part 1_2"
//
// # Artwork Processing
//
// ArtworkService fits cover art within a maximum size and re-encodes it
// as JPEG before it is embedded in a cached preview clip:
//
//	svc := ioutils.NewArtworkService()
//	cover, err := svc.FitCover(artworkBytes, 600)
package ioutils
