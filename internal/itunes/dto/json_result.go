package dto

// JSONSearchResponse represents the envelope the iTunes Search API
// returns: a result count and a list of results ordered by the
// service's own relevance ranking.
type JSONSearchResponse struct {
	ResultCount int          `json:"resultCount"`
	Results     []JSONResult `json:"results"`
}

// JSONResult represents one search result from the iTunes Search API.
//
// Only the fields jukebook consumes are declared; the API returns many
// more. PreviewURL and ArtworkURL100 are optional in the API and may be
// absent for some tracks.
type JSONResult struct {
	TrackID        int64  `json:"trackId"`
	TrackName      string `json:"trackName"`
	ArtistName     string `json:"artistName"`
	CollectionName string `json:"collectionName"`
	PreviewURL     string `json:"previewUrl"`
	ArtworkURL100  string `json:"artworkUrl100"`
	TrackViewURL   string `json:"trackViewUrl"`
}
