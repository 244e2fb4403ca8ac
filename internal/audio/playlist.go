package audio

import (
	"fmt"
	"strings"
)

// previewSeconds is the nominal length of an iTunes preview clip, used
// for the EXTINF duration hint.
const previewSeconds = 30

// PlaylistEntry is one cached clip in timeline order.
type PlaylistEntry struct {
	// FileName is the clip's name relative to the playlist file, which
	// lives in the same directory as the cache.
	FileName string

	// Label is the display title, "Artist - Title".
	Label string
}

// PlaylistWriter generates an extended M3U playlist over the preview
// cache so the book's soundtrack can be played start to finish in an
// ordinary player.
//
// Example:
//
//	writer := audio.NewPlaylistWriter()
//	content := writer.CreateM3U(entries)
//	os.WriteFile(filepath.Join(cacheDir, "jukebook.m3u"), []byte(content), 0644)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:30,Big Star - Thirteen
//	// 12 Big Star - Thirteen.m4a
type PlaylistWriter struct{}

// NewPlaylistWriter creates a new PlaylistWriter.
func NewPlaylistWriter() *PlaylistWriter {
	return &PlaylistWriter{}
}

// CreateM3U generates extended M3U content for the given entries, in
// order. Paths are relative, assuming the playlist sits in the cache
// directory next to the clips.
func (p *PlaylistWriter) CreateM3U(entries []PlaylistEntry) string {
	var sb strings.Builder

	sb.WriteString("#EXTM3U\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s\n", previewSeconds, e.Label))
		sb.WriteString(e.FileName + "\n")
	}

	return sb.String()
}
