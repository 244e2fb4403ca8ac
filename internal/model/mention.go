package model

import (
	"fmt"
	"strings"
)

// Placeholder is the token the curated CSV uses for "no value" in the
// title and album columns (an em-dash). A placeholder title marks an
// album-only mention; a placeholder album means "no specific album".
const Placeholder = "—"

// Mention represents one song or album referenced in the book.
//
// Mention is the unit of data for the whole system: the CSV parser
// produces them, the enrichment engine fills in their playback fields,
// and the TUI renders them in storage order as the timeline.
//
// The JSON field names are the external contract of the data file and
// must not change: the same file is both the enrichment engine's
// input/output and the browser's sole data source.
//
// Example:
//
//	m := &model.Mention{
//	    ID:         "12",
//	    Title:      "Thirteen",
//	    Artist:     "Big Star",
//	    Album:      "#1 Record",
//	    Year:       1972,
//	    Page:       104,
//	    Characters: []string{"Rob", "Laura"},
//	}
//	m.Enriched() // false until track id, preview and art are all set
type Mention struct {
	// ID is a stable identifier assigned at parse time in encounter
	// order (1-based, rendered as a string). Never reassigned.
	ID string `json:"id"`

	// Title is the track title. Empty for album-only mentions.
	Title string `json:"title"`

	// Artist is the artist as written in the book. Required.
	Artist string `json:"artist"`

	// Album is the album title, or empty when the mention names no
	// specific album.
	Album string `json:"album"`

	// Year is the release year. 0 when the source value did not parse.
	Year int `json:"year"`

	// Page is the first page the mention occurs on. A mention that
	// recurs across pages keeps only the first one.
	Page int `json:"page"`

	// Characters are the character names associated with the mention,
	// in the order the source lists them.
	Characters []string `json:"characters"`

	// ITunesTrackID is the catalog id of the matched track. Empty until
	// enrichment succeeds.
	ITunesTrackID string `json:"itunesTrackId,omitempty"`

	// PreviewURL is the 30-second preview clip location. Enrichment
	// sets it to the empty string, not absent, when the catalog has no
	// preview for the matched track, so the field is never omitted.
	PreviewURL string `json:"previewUrl"`

	// AlbumArt is the artwork location, normalized to the high
	// resolution variant.
	AlbumArt string `json:"albumArt,omitempty"`

	// SpotifyURL is a hand-curated fallback link used when the preview
	// breaks. Pass-through: the pipeline never writes it.
	SpotifyURL string `json:"spotifyUrl,omitempty"`
}

// HasTitle reports whether the mention names a specific track.
// Album-only mentions cannot be enriched.
func (m *Mention) HasTitle() bool {
	return strings.TrimSpace(m.Title) != ""
}

// Enriched reports whether all three playback metadata fields are
// present. Enrichment is monotonic: once a mention is enriched the
// pipeline never clears these fields, only overwrites them with a new
// successful match.
//
// Note that PreviewURL counts as present even when it is the empty
// string; presence is decided by the track id and artwork, which are
// only ever set together with the preview field.
func (m *Mention) Enriched() bool {
	return m.ITunesTrackID != "" && m.AlbumArt != ""
}

// HasPreview reports whether the mention has a playable preview clip.
// Mentions without one render without a playback control.
func (m *Mention) HasPreview() bool {
	return m.PreviewURL != ""
}

// MentionedBy reports whether the given character is associated with
// this mention. Comparison is exact; character names are already
// trimmed at parse time.
func (m *Mention) MentionedBy(character string) bool {
	for _, c := range m.Characters {
		if c == character {
			return true
		}
	}
	return false
}

// Label returns a one-line display form, "Artist - Title" for track
// mentions and "Artist - Album" for album-only ones.
func (m *Mention) Label() string {
	if m.HasTitle() {
		return fmt.Sprintf("%s - %s", m.Artist, m.Title)
	}
	if m.Album != "" {
		return fmt.Sprintf("%s - %s", m.Artist, m.Album)
	}
	return m.Artist
}
