package model

import "testing"

func TestMention_Enriched(t *testing.T) {
	tests := []struct {
		name    string
		mention Mention
		want    bool
	}{
		{
			name:    "nothing set",
			mention: Mention{Title: "Song", Artist: "Artist"},
			want:    false,
		},
		{
			name: "fully enriched",
			mention: Mention{
				ITunesTrackID: "123456",
				PreviewURL:    "https://audio.example.com/preview.m4a",
				AlbumArt:      "https://img.example.com/600x600bb.jpg",
			},
			want: true,
		},
		{
			name: "enriched with empty preview",
			mention: Mention{
				ITunesTrackID: "123456",
				PreviewURL:    "",
				AlbumArt:      "https://img.example.com/600x600bb.jpg",
			},
			want: true,
		},
		{
			name:    "track id only",
			mention: Mention{ITunesTrackID: "123456"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mention.Enriched(); got != tt.want {
				t.Errorf("Enriched() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMention_HasTitle(t *testing.T) {
	m := Mention{Title: "Thirteen"}
	if !m.HasTitle() {
		t.Error("expected HasTitle for a track mention")
	}

	albumOnly := Mention{Album: "#1 Record"}
	if albumOnly.HasTitle() {
		t.Error("album-only mention must not report a title")
	}

	blank := Mention{Title: "   "}
	if blank.HasTitle() {
		t.Error("whitespace-only title must not count")
	}
}

func TestMention_MentionedBy(t *testing.T) {
	m := Mention{Characters: []string{"Rob", "Laura", "Dick"}}

	if !m.MentionedBy("Laura") {
		t.Error("expected Laura to match")
	}
	if m.MentionedBy("Barry") {
		t.Error("Barry is not on this mention")
	}
	if m.MentionedBy("rob") {
		t.Error("comparison is exact, not case-insensitive")
	}
}

func TestMention_Label(t *testing.T) {
	tests := []struct {
		name    string
		mention Mention
		want    string
	}{
		{"track", Mention{Artist: "Big Star", Title: "Thirteen"}, "Big Star - Thirteen"},
		{"album only", Mention{Artist: "Big Star", Album: "#1 Record"}, "Big Star - #1 Record"},
		{"artist only", Mention{Artist: "Big Star"}, "Big Star"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mention.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
