package itunes

import "regexp"

// The search API returns artwork URLs ending in a resolution segment
// like "100x100bb.jpg". The segment is purely positional: swapping it
// requests the same image at another size.
var artworkResolution = regexp.MustCompile(`\d+x\d+[a-z]*\.[A-Za-z]+$`)

// highResSegment is the canonical replacement: 600x600, JPEG. The
// original extension is discarded along with the resolution.
const highResSegment = "600x600bb.jpg"

// HighResArtwork rewrites a candidate's artwork URL to the canonical
// high-resolution variant.
//
//	HighResArtwork(".../ab12/100x100bb.jpg") // ".../ab12/600x600bb.jpg"
//
// URLs without a recognizable resolution segment are returned
// unchanged.
func HighResArtwork(artworkURL string) string {
	if artworkURL == "" {
		return ""
	}
	return artworkResolution.ReplaceAllString(artworkURL, highResSegment)
}
