package spell

import (
	"fmt"
	"sort"
)

// danishAlphabet is the candidate-generation alphabet, including the
// three letters beyond a-z that Danish invoice vocabulary actually uses.
const danishAlphabet = "abcdefghijklmnopqrstuvwxyzæøå"

// NorvigEngine is the primary correction engine: it generates every
// string within the edit-distance budget of the input and keeps those the
// dictionary knows, ranked by corpus frequency. Stateless after
// construction, so safe for concurrent use.
type NorvigEngine struct {
	dict            *Dictionary
	maxEditDistance int
	alphabet        []rune
}

// NewNorvigEngine builds the engine over a dictionary. An empty
// dictionary makes the engine useless and yields ErrEngineUnavailable.
// The edit-distance budget is clamped to 1..2: beyond two edits the
// candidate space explodes without improving invoice corrections.
func NewNorvigEngine(dict *Dictionary, maxEditDistance int) (*NorvigEngine, error) {
	if dict == nil || dict.Len() == 0 {
		return nil, fmt.Errorf("empty dictionary: %w", ErrEngineUnavailable)
	}

	if maxEditDistance < 1 {
		maxEditDistance = 1
	}
	if maxEditDistance > 2 {
		maxEditDistance = 2
	}

	return &NorvigEngine{
		dict:            dict,
		maxEditDistance: maxEditDistance,
		alphabet:        []rune(danishAlphabet),
	}, nil
}

// Known reports whether the word needs no correction.
func (e *NorvigEngine) Known(word string) bool {
	return e.dict.Known(word)
}

// Correction returns the best-ranked suggestion, or the input word when
// nothing within the budget is known.
func (e *NorvigEngine) Correction(word string) string {
	suggestions := e.Suggestions(word)
	if len(suggestions) == 0 {
		return word
	}
	return suggestions[0]
}

// Suggestions returns known words within the edit-distance budget, ranked
// by corpus frequency (descending), then lexicographically. A known input
// word yields exactly itself.
func (e *NorvigEngine) Suggestions(word string) []string {
	w := normalizeWord(word)
	if w == "" {
		return nil
	}
	if e.dict.Known(w) {
		return []string{w}
	}

	edits := e.edits1(w)
	candidates := e.knownOf(edits)

	if len(candidates) == 0 && e.maxEditDistance >= 2 {
		seen := make(map[string]bool, len(edits)*32)
		for _, e1 := range edits {
			for _, e2 := range e.edits1(e1) {
				if !seen[e2] {
					seen[e2] = true
				}
			}
		}
		second := make([]string, 0, len(seen))
		for cand := range seen {
			second = append(second, cand)
		}
		candidates = e.knownOf(second)
	}

	e.rank(candidates)
	return candidates
}

// knownOf filters candidates down to dictionary words, deduplicated.
func (e *NorvigEngine) knownOf(candidates []string) []string {
	seen := make(map[string]bool, len(candidates))
	var known []string
	for _, cand := range candidates {
		if cand == "" || seen[cand] {
			continue
		}
		seen[cand] = true
		if e.dict.Known(cand) {
			known = append(known, cand)
		}
	}
	return known
}

// rank orders candidates by frequency descending, then lexicographically
// so equal frequencies stay deterministic.
func (e *NorvigEngine) rank(candidates []string) {
	sort.Slice(candidates, func(i, j int) bool {
		fi := e.dict.Frequency(candidates[i])
		fj := e.dict.Frequency(candidates[j])
		if fi != fj {
			return fi > fj
		}
		return candidates[i] < candidates[j]
	})
}

// edits1 generates every string one edit away from the word: deletions,
// adjacent transpositions, substitutions and insertions over the Danish
// alphabet.
func (e *NorvigEngine) edits1(word string) []string {
	runes := []rune(word)
	n := len(runes)
	edits := make([]string, 0, 2*n+2*(n+1)*len(e.alphabet))

	// deletions
	for i := 0; i < n; i++ {
		edits = append(edits, string(runes[:i])+string(runes[i+1:]))
	}

	// adjacent transpositions
	for i := 0; i < n-1; i++ {
		swapped := make([]rune, n)
		copy(swapped, runes)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		edits = append(edits, string(swapped))
	}

	// substitutions
	for i := 0; i < n; i++ {
		for _, r := range e.alphabet {
			if runes[i] == r {
				continue
			}
			edits = append(edits, string(runes[:i])+string(r)+string(runes[i+1:]))
		}
	}

	// insertions
	for i := 0; i <= n; i++ {
		for _, r := range e.alphabet {
			edits = append(edits, string(runes[:i])+string(r)+string(runes[i:]))
		}
	}

	return edits
}
