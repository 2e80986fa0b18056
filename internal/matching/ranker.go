package matching

import (
	"errors"
	"sort"
	"sync"
)

var (
	// ErrNoMatches indicates an empty ranked sequence
	ErrNoMatches = errors.New("no matches in sequence")

	// ErrEndOfMatches signals that the final match has been passed. The
	// cursor resets to the start so the caller can restart matching.
	ErrEndOfMatches = errors.New("no more matches")

	// ErrStartOfMatches signals that the cursor is already at the first
	// match. The cursor is left unchanged; there is no wrap-around.
	ErrStartOfMatches = errors.New("already at first match")
)

// Sequence is a ranked list of match results with sequential cursor
// traversal. The results are fixed at construction; cursor movement is
// guarded by a mutex because one mentee's session can be hit from several
// requests at once (double-tap, second device).
type Sequence struct {
	results []MatchResult

	mu  sync.Mutex
	pos int
}

// Rank sorts results descending by compatibility score and returns a
// sequence positioned at the best match. Ties break by mentor ID ascending,
// which keeps the ranking deterministic regardless of fetch order (the
// upstream query guarantees none).
func Rank(results []MatchResult) *Sequence {
	ranked := make([]MatchResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CompatibilityScore != ranked[j].CompatibilityScore {
			return ranked[i].CompatibilityScore > ranked[j].CompatibilityScore
		}
		return ranked[i].Mentor.ID < ranked[j].Mentor.ID
	})

	return &Sequence{results: ranked}
}

// Len returns the number of matches in the sequence
func (s *Sequence) Len() int {
	return len(s.results)
}

// Position returns the zero-based cursor position
func (s *Sequence) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Results returns the full ranked snapshot
func (s *Sequence) Results() []MatchResult {
	return s.results
}

// Current returns the match under the cursor
func (s *Sequence) Current() (MatchResult, error) {
	if len(s.results) == 0 {
		return MatchResult{}, ErrNoMatches
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results[s.pos], nil
}

// Next advances the cursor and returns the next match. At the final match it
// returns ErrEndOfMatches and resets the cursor to the start.
func (s *Sequence) Next() (MatchResult, error) {
	if len(s.results) == 0 {
		return MatchResult{}, ErrNoMatches
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.results)-1 {
		s.pos = 0
		return MatchResult{}, ErrEndOfMatches
	}
	s.pos++
	return s.results[s.pos], nil
}

// Previous moves the cursor back and returns the previous match. At the
// first match it returns ErrStartOfMatches and leaves the cursor unchanged.
func (s *Sequence) Previous() (MatchResult, error) {
	if len(s.results) == 0 {
		return MatchResult{}, ErrNoMatches
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos == 0 {
		return MatchResult{}, ErrStartOfMatches
	}
	s.pos--
	return s.results[s.pos], nil
}
