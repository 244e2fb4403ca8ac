// Package http provides an HTTP client configured for the iTunes
// Search API and for fetching preview clips and artwork.
//
// The Client in this package handles:
//   - A fixed User-Agent header
//   - An explicit request timeout (no unbounded waits)
//   - JSON response decoding
//   - Streaming file downloads
//
// # Basic Usage
//
//	client := http.NewClient(0)
//
//	// Decode an API response
//	var resp dto.JSONSearchResponse
//	err := client.GetJSON(ctx, searchURL, &resp)
//
//	// Download a preview clip
//	err = client.DownloadFile(ctx, previewURL, "/cache/12 Big Star - Thirteen.m4a")
package http
