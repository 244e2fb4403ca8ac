package ioutils

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ArtworkService processes cover art for the preview cache.
//
// The iTunes catalog serves artwork as JPEG or PNG at whatever
// resolution the URL names. Before embedding art in a preview clip's
// tags the service fits it within a maximum size and re-encodes it as
// JPEG so every cached clip carries a uniform front cover.
//
//	svc := ioutils.NewArtworkService()
//	cover, err := svc.FitCover(artworkBytes, 600)
type ArtworkService struct{}

// NewArtworkService creates a new ArtworkService.
func NewArtworkService() *ArtworkService {
	return &ArtworkService{}
}

// FitCover scales an image down to fit within maxSize on its longer
// edge, preserving aspect ratio, and returns it as JPEG-encoded bytes.
// Images already within bounds are only re-encoded.
//
// Catmull-Rom scaling is used for quality over speed; cover art is
// small and processed once per cached clip.
func (s *ArtworkService) FitCover(data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxSize || height > maxSize {
		if width >= height {
			height = height * maxSize / width
			width = maxSize
		} else {
			width = width * maxSize / height
			height = maxSize
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
