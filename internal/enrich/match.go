package enrich

import (
	"strings"

	"github.com/calloway/jukebook/internal/itunes"
)

// MatchTag classifies how confidently a candidate matches the album
// the book names. Exact matches are trusted; anything weaker goes
// through the confirmation decider before it is committed.
type MatchTag string

const (
	// MatchExact means a candidate's collection name equals the
	// expected album (case-insensitive, trimmed).
	MatchExact MatchTag = "exact"

	// MatchPartial means either there was no expected album to compare
	// against, or a collection name and the expected album contain one
	// another as substrings.
	MatchPartial MatchTag = "partial"

	// MatchNone means no candidate relates to the expected album; the
	// first result is offered as a best-effort fallback.
	MatchNone MatchTag = "none"
)

// SelectCandidate picks the best candidate for a mention given the
// album the book names, returning it with a match-quality tag. The
// third return is false when the candidate list is empty.
//
// Tiering, in order:
//  1. No expected album: first candidate, tagged partial (nothing to
//     disambiguate on, but not exact either).
//  2. A candidate whose collection equals the expected album: exact.
//  3. A candidate whose collection contains the expected album as a
//     substring, or vice versa: partial.
//  4. Otherwise the first candidate, tagged none.
func SelectCandidate(candidates []itunes.Candidate, expectedAlbum string) (itunes.Candidate, MatchTag, bool) {
	if len(candidates) == 0 {
		return itunes.Candidate{}, MatchNone, false
	}

	expected := normalizeAlbum(expectedAlbum)
	if expected == "" {
		return candidates[0], MatchPartial, true
	}

	for _, c := range candidates {
		if normalizeAlbum(c.CollectionName) == expected {
			return c, MatchExact, true
		}
	}

	for _, c := range candidates {
		collection := normalizeAlbum(c.CollectionName)
		if collection == "" {
			continue
		}
		if strings.Contains(collection, expected) || strings.Contains(expected, collection) {
			return c, MatchPartial, true
		}
	}

	return candidates[0], MatchNone, true
}

// MatchCandidate classifies one candidate against the expected album,
// with the same comparison rules SelectCandidate tiers on. The lookup
// tool uses it to tag every candidate, not just the selected one.
func MatchCandidate(c itunes.Candidate, expectedAlbum string) MatchTag {
	expected := normalizeAlbum(expectedAlbum)
	if expected == "" {
		return MatchPartial
	}

	collection := normalizeAlbum(c.CollectionName)
	if collection == expected {
		return MatchExact
	}
	if collection != "" && (strings.Contains(collection, expected) || strings.Contains(expected, collection)) {
		return MatchPartial
	}
	return MatchNone
}

func normalizeAlbum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
