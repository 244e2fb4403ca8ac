package preview

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calloway/jukebook/internal/config"
	"github.com/calloway/jukebook/internal/model"
)

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	s := config.DefaultSettings()
	s.PreviewCachePath = t.TempDir()
	return s
}

func TestManager_ClipPath(t *testing.T) {
	s := testSettings(t)
	m := NewManager(s, nil)

	tests := []struct {
		name   string
		record model.Mention
		want   string
	}{
		{
			name: "m4a preview",
			record: model.Mention{
				ID: "12", Title: "Thirteen", Artist: "Big Star",
				PreviewURL: "https://audio.example.com/clip/abc.m4a",
			},
			want: "12 Big Star - Thirteen.m4a",
		},
		{
			name: "mp3 preview keeps its extension",
			record: model.Mention{
				ID: "3", Title: "Song", Artist: "Artist",
				PreviewURL: "https://audio.example.com/clip/abc.mp3?cc=us",
			},
			want: "3 Artist - Song.mp3",
		},
		{
			name: "invalid characters sanitized",
			record: model.Mention{
				ID: "4", Title: "What/Why?", Artist: "A:B",
				PreviewURL: "https://audio.example.com/clip/x.m4a",
			},
			want: "4 A_B - What_Why_.m4a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filepath.Base(m.ClipPath(&tt.record))
			if got != tt.want {
				t.Errorf("ClipPath base = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestManager_WritePlaylistOnlyExistingClips(t *testing.T) {
	s := testSettings(t)
	s.CreatePlaylist = true
	m := NewManager(s, nil)

	records := []*model.Mention{
		{ID: "1", Title: "A", Artist: "X", PreviewURL: "https://audio.example.com/a.m4a"},
		{ID: "2", Title: "B", Artist: "Y", PreviewURL: "https://audio.example.com/b.m4a"},
		{ID: "3", Title: "C", Artist: "Z"}, // no preview
	}

	// Only the first clip is on disk.
	if err := os.WriteFile(m.ClipPath(records[0]), []byte("clip"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := m.writePlaylist(records); err != nil {
		t.Fatalf("writePlaylist: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(s.PreviewCachePath, s.PlaylistFileName+".m3u"))
	if err != nil {
		t.Fatal(err)
	}

	content := string(data)
	if !strings.Contains(content, "1 X - A.m4a") {
		t.Errorf("playlist missing cached clip:\n%s", content)
	}
	if strings.Contains(content, "2 Y - B") {
		t.Error("playlist lists a clip that is not on disk")
	}
	if strings.Contains(content, "Z - C") {
		t.Error("playlist lists a record without a preview")
	}
}

func TestManager_RetryFloor(t *testing.T) {
	s := testSettings(t)
	s.PreviewMaxRetries = 0
	m := NewManager(s, nil)

	if m.maxRetries != 1 {
		t.Fatalf("maxRetries = %d, want floor of 1", m.maxRetries)
	}

	// Zero configured retries still means one real download attempt:
	// an unreachable preview must surface as an error, never as a
	// silently "cached" clip.
	record := &model.Mention{
		ID: "1", Title: "A", Artist: "X",
		PreviewURL: "http://127.0.0.1:1/clip.m4a",
	}
	if err := m.fetchClip(context.Background(), record); err == nil {
		t.Fatal("fetchClip reported success without downloading anything")
	}
	if cached, _ := m.Progress(); cached != 0 {
		t.Errorf("cached = %d, want 0", cached)
	}
	if _, err := os.Stat(m.ClipPath(record)); err == nil {
		t.Error("no clip file may exist after a failed fetch")
	}
}
