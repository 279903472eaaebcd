package spell

import (
	"sort"

	"github.com/janm-comcon/stdtext/normalization/algorithms"
)

// FallbackEngine corrects against the corpus-row vocabulary with a linear
// bounded-distance scan. It is the recovery path when the primary engine
// has no dictionary to work with; slower per lookup but requires nothing
// beyond the corpus index that is loaded anyway.
type FallbackEngine struct {
	entries         []vocabEntry
	known           map[string]int
	maxEditDistance int
}

type vocabEntry struct {
	word  string
	runes []rune
	freq  int
}

// NewFallbackEngine builds the engine from corpus word counts. An empty
// vocabulary is allowed; the engine then returns every word unchanged.
func NewFallbackEngine(counts map[string]int, maxEditDistance int) *FallbackEngine {
	if maxEditDistance < 1 {
		maxEditDistance = 1
	}

	e := &FallbackEngine{
		known:           make(map[string]int, len(counts)),
		maxEditDistance: maxEditDistance,
	}

	for word, count := range counts {
		key := normalizeWord(word)
		if key == "" || count <= 0 {
			continue
		}
		e.known[key] += count
	}

	e.entries = make([]vocabEntry, 0, len(e.known))
	for word, freq := range e.known {
		e.entries = append(e.entries, vocabEntry{word: word, runes: []rune(word), freq: freq})
	}
	// Fixed scan order keeps suggestion ranking deterministic.
	sort.Slice(e.entries, func(i, j int) bool {
		if e.entries[i].freq != e.entries[j].freq {
			return e.entries[i].freq > e.entries[j].freq
		}
		return e.entries[i].word < e.entries[j].word
	})

	return e
}

// Known reports whether the word occurs in the corpus vocabulary.
func (e *FallbackEngine) Known(word string) bool {
	_, ok := e.known[normalizeWord(word)]
	return ok
}

// Correction returns the closest corpus word, preferring lower distance,
// then higher corpus frequency. The input is returned unchanged when
// nothing is within the budget.
func (e *FallbackEngine) Correction(word string) string {
	suggestions := e.Suggestions(word)
	if len(suggestions) == 0 {
		return word
	}
	return suggestions[0]
}

// Suggestions scans the vocabulary and returns candidates within the
// edit-distance budget, ordered by distance, then frequency, then word.
func (e *FallbackEngine) Suggestions(word string) []string {
	w := normalizeWord(word)
	if w == "" {
		return nil
	}
	if _, ok := e.known[w]; ok {
		return []string{w}
	}

	runes := []rune(w)
	type scored struct {
		word string
		dist int
	}
	var matches []scored
	for _, entry := range e.entries {
		dist := algorithms.BoundedLevenshtein(runes, entry.runes, e.maxEditDistance)
		if dist <= e.maxEditDistance {
			matches = append(matches, scored{word: entry.word, dist: dist})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	// entries were scanned in (freq desc, word asc) order; a stable sort
	// by distance preserves that ranking within each distance band.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.word
	}
	return out
}
