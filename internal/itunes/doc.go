// Package itunes provides a client for the iTunes Search API and
// helpers for working with its URLs.
//
// # Searching
//
// Use the Client to look up candidates for a song mention:
//
//	client := itunes.NewClient(httpclient.NewClient(0), 10)
//	candidates, err := client.Search(ctx, "Big Star", "Thirteen")
//	for _, c := range candidates {
//	    fmt.Println(c.TrackName, c.CollectionName)
//	}
//
// Results come back in the service's own relevance order; the
// enrichment engine's matching heuristic decides which one to trust.
//
// # Artwork
//
// The API serves artwork at a low resolution with the size encoded in
// the URL. HighResArtwork rewrites it to the canonical 600x600 JPEG:
//
//	art := itunes.HighResArtwork(candidate.ArtworkURL)
package itunes
