package audio

import (
	"fmt"

	"github.com/bogem/id3v2"
	"github.com/calloway/jukebook/internal/model"
)

// Tagger writes ID3 tags to cached preview clips.
//
// The iTunes preview files come down without usable metadata, so after
// caching a clip the Tagger stamps it with what the record knows:
// artist, title, album, release year, and optionally the cover art.
// That way the cache directory is browsable in any player, not just
// the jukebook TUI.
//
// Example:
//
//	tagger := audio.NewTagger()
//	err := tagger.SaveTags(mention, clipPath, artworkBytes)
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// SaveTags writes ID3 tags to the clip at path. artwork may be nil to
// skip embedding cover art; when present it must be JPEG bytes.
func (t *Tagger) SaveTags(m *model.Mention, path string, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("opening %s for tagging: %w", path, err)
	}
	defer tag.Close()

	tag.SetArtist(m.Artist)
	tag.SetTitle(m.Title)
	if m.Album != "" {
		tag.SetAlbum(m.Album)
	}
	if m.Year > 0 {
		tag.AddTextFrame("TYER", id3v2.EncodingUTF8, fmt.Sprintf("%d", m.Year))
	}

	if artwork != nil {
		tag.DeleteFrames(tag.CommonID("Attached picture"))
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     artwork,
		})
	}

	return tag.Save()
}
