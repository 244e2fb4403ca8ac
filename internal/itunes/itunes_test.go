package itunes

import (
	"encoding/json"
	"testing"

	"github.com/calloway/jukebook/internal/itunes/dto"
)

func TestHighResArtwork(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "standard 100x100 jpg",
			input: "https://is1-ssl.mzstatic.com/image/thumb/Music/ab/cd/100x100bb.jpg",
			want:  "https://is1-ssl.mzstatic.com/image/thumb/Music/ab/cd/600x600bb.jpg",
		},
		{
			name:  "png extension replaced",
			input: "https://is1-ssl.mzstatic.com/image/thumb/Music/ab/cd/100x100bb.png",
			want:  "https://is1-ssl.mzstatic.com/image/thumb/Music/ab/cd/600x600bb.jpg",
		},
		{
			name:  "other resolution",
			input: "https://example.com/art/30x30bb.jpg",
			want:  "https://example.com/art/600x600bb.jpg",
		},
		{
			name:  "no suffix variant",
			input: "https://example.com/art/170x170.jpg",
			want:  "https://example.com/art/600x600bb.jpg",
		},
		{
			name:  "no resolution segment left unchanged",
			input: "https://example.com/art/cover.jpg",
			want:  "https://example.com/art/cover.jpg",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HighResArtwork(tt.input); got != tt.want {
				t.Errorf("HighResArtwork(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCandidateFromResult(t *testing.T) {
	raw := `{
		"resultCount": 1,
		"results": [{
			"trackId": 159294443,
			"trackName": "Thirteen",
			"artistName": "Big Star",
			"collectionName": "#1 Record",
			"previewUrl": "https://audio-ssl.itunes.apple.com/preview.m4a",
			"artworkUrl100": "https://is1-ssl.mzstatic.com/image/100x100bb.jpg",
			"trackViewUrl": "https://music.apple.com/us/album/thirteen/159294332"
		}]
	}`

	var resp dto.JSONSearchResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ResultCount != 1 || len(resp.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(resp.Results))
	}

	c := candidateFromResult(resp.Results[0])
	if c.TrackID != 159294443 {
		t.Errorf("TrackID = %d, want 159294443", c.TrackID)
	}
	if c.TrackName != "Thirteen" {
		t.Errorf("TrackName = %q", c.TrackName)
	}
	if c.CollectionName != "#1 Record" {
		t.Errorf("CollectionName = %q", c.CollectionName)
	}
	if c.PreviewURL == "" || c.ArtworkURL == "" || c.ViewURL == "" {
		t.Error("optional URL fields should be populated from the result")
	}
}

func TestJSONResult_OptionalFields(t *testing.T) {
	// Some catalog entries carry no preview and no artwork.
	raw := `{"trackId": 1, "trackName": "A", "artistName": "B", "collectionName": "C"}`

	var r dto.JSONResult
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	c := candidateFromResult(r)
	if c.PreviewURL != "" {
		t.Errorf("PreviewURL = %q, want empty", c.PreviewURL)
	}
	if c.ArtworkURL != "" {
		t.Errorf("ArtworkURL = %q, want empty", c.ArtworkURL)
	}
}
