package enrich

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/calloway/jukebook/internal/itunes"
	"github.com/calloway/jukebook/internal/model"
)

// StdinDecider returns a Decider that asks the operator to confirm a
// fuzzy match. The answer is yes iff the line read case-insensitively
// equals "y" or "yes"; anything else, including empty input or a read
// error, is no.
//
// The prompt shows what the book says next to what the catalog found,
// plus the public view URL so the operator can check by ear.
func StdinDecider(in io.Reader, out io.Writer) Decider {
	reader := bufio.NewReader(in)

	return func(m *model.Mention, c itunes.Candidate, tag MatchTag) bool {
		fmt.Fprintf(out, "\nRecord %s — %s match:\n", m.ID, tag)
		fmt.Fprintf(out, "  book:    %s — %s (%s)\n", m.Artist, m.Title, displayAlbum(m.Album))
		fmt.Fprintf(out, "  catalog: %s — %s (%s)\n", c.ArtistName, c.TrackName, c.CollectionName)
		if c.ViewURL != "" {
			fmt.Fprintf(out, "  %s\n", c.ViewURL)
		}
		fmt.Fprint(out, "Accept? [y/N] ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}

		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

// AcceptExactOnly is the Decider for non-interactive runs: every fuzzy
// match is rejected, so only exact matches (which never reach the
// decider) are committed.
func AcceptExactOnly(*model.Mention, itunes.Candidate, MatchTag) bool {
	return false
}

func displayAlbum(album string) string {
	if album == "" {
		return "no specific album"
	}
	return album
}
