package itunes

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	httpclient "github.com/calloway/jukebook/internal/http"
	"github.com/calloway/jukebook/internal/itunes/dto"
)

const defaultBaseURL = "https://itunes.apple.com/search"

// Candidate is one playable match returned by the search service,
// reduced to the fields the enrichment engine scores and commits.
type Candidate struct {
	// TrackID is the numeric catalog id of the track.
	TrackID int64

	// TrackName is the track title as the catalog spells it.
	TrackName string

	// ArtistName is the catalog's artist credit.
	ArtistName string

	// CollectionName is the album the track belongs to. The matching
	// heuristic compares it against the expected album from the book.
	CollectionName string

	// PreviewURL locates the 30-second preview clip. Empty when the
	// catalog offers no preview for this track.
	PreviewURL string

	// ArtworkURL is the low-resolution artwork location as returned by
	// the service; the resolution is encoded in the URL path.
	ArtworkURL string

	// ViewURL is the public catalog page for the track.
	ViewURL string
}

// Client queries the iTunes Search API.
//
// Example usage:
//
//	client := itunes.NewClient(httpclient.NewClient(0), 10)
//	candidates, err := client.Search(ctx, "Big Star", "Thirteen")
type Client struct {
	http    *httpclient.Client
	baseURL string
	limit   int
}

// NewClient creates a search client. limit caps the number of results
// requested per query; non-positive values fall back to 10.
func NewClient(http *httpclient.Client, limit int) *Client {
	if limit <= 0 {
		limit = 10
	}
	return &Client{
		http:    http,
		baseURL: defaultBaseURL,
		limit:   limit,
	}
}

// Search issues one free-text query composed of artist and title and
// returns the candidates in the service's relevance order.
//
// A non-2xx response or a malformed body is a hard failure for this
// single query; the caller decides whether to keep going with other
// records.
func (c *Client) Search(ctx context.Context, artist, title string) ([]Candidate, error) {
	query := url.Values{}
	query.Set("term", fmt.Sprintf("%s %s", artist, title))
	query.Set("media", "music")
	query.Set("entity", "song")
	query.Set("limit", strconv.Itoa(c.limit))

	searchURL := c.baseURL + "?" + query.Encode()

	var resp dto.JSONSearchResponse
	if err := c.http.GetJSON(ctx, searchURL, &resp); err != nil {
		return nil, fmt.Errorf("searching %q: %w", artist+" "+title, err)
	}

	candidates := make([]Candidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		candidates = append(candidates, candidateFromResult(r))
	}
	return candidates, nil
}

// candidateFromResult converts one API result into a Candidate.
func candidateFromResult(r dto.JSONResult) Candidate {
	return Candidate{
		TrackID:        r.TrackID,
		TrackName:      r.TrackName,
		ArtistName:     r.ArtistName,
		CollectionName: r.CollectionName,
		PreviewURL:     r.PreviewURL,
		ArtworkURL:     r.ArtworkURL100,
		ViewURL:        r.TrackViewURL,
	}
}
