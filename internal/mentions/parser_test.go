package mentions

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/calloway/jukebook/internal/progress"
)

func TestSplitRow(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want []string
	}{
		{
			name: "plain fields",
			row:  "Thirteen,Big Star,#1 Record",
			want: []string{"Thirteen", "Big Star", "#1 Record"},
		},
		{
			name: "quoted field with comma stays whole",
			row:  `"Love Will Tear Us Apart, Again",Joy Division,Substance`,
			want: []string{"Love Will Tear Us Apart, Again", "Joy Division", "Substance"},
		},
		{
			name: "quoted field in the middle",
			row:  `Song,Artist,"Album, The",1999`,
			want: []string{"Song", "Artist", "Album, The", "1999"},
		},
		{
			name: "empty fields preserved",
			row:  "a,,c",
			want: []string{"a", "", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitRow(tt.row)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitRow(%q) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}

func TestParser_ParseRow(t *testing.T) {
	p := NewParser(nil)
	m := p.ParseRow(`Thirteen,Big Star,#1 Record,1972,"24, 34","Rob, Laura",listening at the shop`)

	if m.ID != "1" {
		t.Errorf("ID = %q, want %q", m.ID, "1")
	}
	if m.Title != "Thirteen" || m.Artist != "Big Star" || m.Album != "#1 Record" {
		t.Errorf("unexpected text fields: %+v", m)
	}
	if m.Year != 1972 {
		t.Errorf("Year = %d, want 1972", m.Year)
	}
	if m.Page != 24 {
		t.Errorf("Page = %d, want first page 24", m.Page)
	}
	if want := []string{"Rob", "Laura"}; !reflect.DeepEqual(m.Characters, want) {
		t.Errorf("Characters = %v, want %v", m.Characters, want)
	}
}

func TestParser_PlaceholderMapping(t *testing.T) {
	p := NewParser(nil)

	albumOnly := p.ParseRow("—,Big Star,#1 Record,1972,10,Rob,context")
	if albumOnly.HasTitle() {
		t.Error("em-dash title must map to an absent title")
	}
	if albumOnly.Album != "#1 Record" {
		t.Errorf("Album = %q", albumOnly.Album)
	}

	noAlbum := p.ParseRow("Thirteen,Big Star,—,1972,10,Rob,context")
	if noAlbum.Album != "" {
		t.Errorf("em-dash album must map to empty string, got %q", noAlbum.Album)
	}
}

func TestParser_CharacterSplit(t *testing.T) {
	p := NewParser(nil)
	m := p.ParseRow(`Song,Artist,Album,2001,5,"A, , B",context`)

	if want := []string{"A", "B"}; !reflect.DeepEqual(m.Characters, want) {
		t.Errorf("Characters = %v, want %v (empty entries dropped)", m.Characters, want)
	}
}

func TestParser_MalformedNumbers(t *testing.T) {
	var warnings []progress.Event
	p := NewParser(func(e progress.Event) {
		if e.Level == progress.LevelWarning {
			warnings = append(warnings, e)
		}
	})

	m := p.ParseRow("Song,Artist,Album,unknown,n/a,Rob,context")

	if m.Year != 0 || m.Page != 0 {
		t.Errorf("sentinel values expected, got year=%d page=%d", m.Year, m.Page)
	}
	if len(warnings) != 2 {
		t.Errorf("got %d warnings, want 2 (year and page)", len(warnings))
	}
	// The row itself survives.
	if m.ID != "1" || m.Title != "Song" {
		t.Errorf("malformed numerics must not discard the row: %+v", m)
	}
}

func TestParser_ParseFile(t *testing.T) {
	csv := "title,artist,album,year,pages,characters,context\n" +
		"Thirteen,Big Star,#1 Record,1972,24,Rob,at the shop\n" +
		"\n" +
		`"Love Will Tear Us Apart, Again",Joy Division,—,1980,"31, 77","Rob, Dick",argument` + "\n"

	path := filepath.Join(t.TempDir(), "songs.csv")
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := NewParser(nil).ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (header skipped, blank line ignored)", len(records))
	}
	if records[0].ID != "1" || records[1].ID != "2" {
		t.Errorf("ids must be a running counter: %q, %q", records[0].ID, records[1].ID)
	}
	if records[1].Title != "Love Will Tear Us Apart, Again" {
		t.Errorf("quoted title split incorrectly: %q", records[1].Title)
	}
	if records[1].Album != "" {
		t.Errorf("placeholder album must be empty, got %q", records[1].Album)
	}
	if records[1].Page != 31 {
		t.Errorf("Page = %d, want 31", records[1].Page)
	}
}

func TestParser_ParseFile_Missing(t *testing.T) {
	_, err := NewParser(nil).ParseFile(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
