// Package view holds the derived view model the browser renders from:
// the distinct character list, the character-filtered subsequence of
// the timeline, and the current position within it.
//
// Transitions are pure (State in, State out), so the filter/index
// invariants are tested here without any terminal harness:
//
//	s := view.NewState(records)
//	s = s.SetFilter("Laura") // index resets to 0 if out of bounds
//	s = s.Next()             // bounds-checked
//	current := s.Current()   // nil when the subsequence is empty
package view
