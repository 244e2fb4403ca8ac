package view

import (
	"sort"

	"github.com/calloway/jukebook/internal/model"
)

// AllCharacters is the sentinel filter value meaning "no filter".
const AllCharacters = "All"

// Characters returns the filter choices for a record set: the sentinel
// "All" followed by every distinct character name, sorted.
func Characters(records []*model.Mention) []string {
	seen := make(map[string]bool)
	for _, m := range records {
		for _, c := range m.Characters {
			seen[c] = true
		}
	}

	names := make([]string, 0, len(seen))
	for c := range seen {
		names = append(names, c)
	}
	sort.Strings(names)

	return append([]string{AllCharacters}, names...)
}

// State is the derived view model the browser renders from: the full
// record set, the active character filter, and the current position
// within the filtered subsequence.
//
// State is a value; every transition returns a new State, leaving the
// old one intact. Rendering is a pure function of the current State,
// which keeps the transitions unit-testable without a terminal.
type State struct {
	records []*model.Mention
	filter  string
	index   int
}

// NewState creates a State over the given records with no filter and
// the position at the start of the timeline.
func NewState(records []*model.Mention) State {
	return State{records: records, filter: AllCharacters}
}

// Filter returns the active character filter.
func (s State) Filter() string { return s.filter }

// Index returns the current position within the filtered subsequence.
// It is always within [0, len(Filtered())) while the subsequence is
// non-empty, and 0 otherwise.
func (s State) Index() int { return s.index }

// Records returns the full, unfiltered record set in timeline order.
func (s State) Records() []*model.Mention { return s.records }

// Filtered returns the ordered subsequence of records matching the
// active filter; the identity when the filter is "All".
func (s State) Filtered() []*model.Mention {
	if s.filter == AllCharacters {
		return s.records
	}

	var filtered []*model.Mention
	for _, m := range s.records {
		if m.MentionedBy(s.filter) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// Current returns the record at the current position, or nil when the
// filtered subsequence is empty.
func (s State) Current() *model.Mention {
	filtered := s.Filtered()
	if s.index < 0 || s.index >= len(filtered) {
		return nil
	}
	return filtered[s.index]
}

// SetFilter switches the character filter. If the current index would
// fall outside the new subsequence's bounds it resets to 0, never a
// clamp to the last entry.
func (s State) SetFilter(character string) State {
	s.filter = character
	if s.index >= len(s.Filtered()) {
		s.index = 0
	}
	return s
}

// Next advances the position by one. No-op at the last index of the
// filtered subsequence.
func (s State) Next() State {
	if s.index < len(s.Filtered())-1 {
		s.index++
	}
	return s
}

// Prev moves the position back by one. No-op at the first index.
func (s State) Prev() State {
	if s.index > 0 {
		s.index--
	}
	return s
}

// Seek jumps to the given position within the filtered subsequence,
// ignoring out-of-bounds targets.
func (s State) Seek(index int) State {
	if index >= 0 && index < len(s.Filtered()) {
		s.index = index
	}
	return s
}
