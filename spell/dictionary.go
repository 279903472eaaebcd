// Package spell corrects misspelled words on invoice lines against the
// vocabulary of the historical corpus.
package spell

import (
	"sort"
	"strings"
)

// normalizeWord maps a token surface to its dictionary form: lowercase
// with at most one trailing period removed, so "Stk." resolves to "stk".
func normalizeWord(word string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(word)), ".")
}

// Dictionary is the read-only set of known-correct word forms plus their
// corpus frequencies. Frequencies rank candidate corrections.
type Dictionary struct {
	counts map[string]int
	total  int
}

// NewDictionary builds a dictionary from word counts. Keys are normalized;
// counts of forms that collapse to the same key are summed.
func NewDictionary(counts map[string]int) *Dictionary {
	d := &Dictionary{counts: make(map[string]int, len(counts))}
	for word, count := range counts {
		key := normalizeWord(word)
		if key == "" || count <= 0 {
			continue
		}
		d.counts[key] += count
		d.total += count
	}
	return d
}

// Known reports whether the word (or its dictionary form) is present.
func (d *Dictionary) Known(word string) bool {
	_, ok := d.counts[normalizeWord(word)]
	return ok
}

// Frequency returns the corpus count of the word, 0 when unknown.
func (d *Dictionary) Frequency(word string) int {
	return d.counts[normalizeWord(word)]
}

// Len returns the number of distinct word forms.
func (d *Dictionary) Len() int {
	return len(d.counts)
}

// Total returns the summed corpus count over all forms.
func (d *Dictionary) Total() int {
	return d.total
}

// Words returns all word forms in lexicographic order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.counts))
	for w := range d.counts {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
