package algorithms

import (
	"strings"
	"sync"

	"github.com/kljensen/snowball"
)

// DanishStemmer implements stemming for Danish invoice vocabulary using the
// Snowball algorithm. The snowball package ships no Danish table; the
// Norwegian one covers the shared -en/-et/-er/-ede suffix classes of the
// two written languages, which is all the rule matcher relies on.
type DanishStemmer struct {
	language string
	cache    map[string]string
	mu       sync.RWMutex
	useCache bool
}

// NewDanishStemmer creates a new Danish stemmer with caching enabled.
func NewDanishStemmer() *DanishStemmer {
	return &DanishStemmer{
		language: "norwegian",
		cache:    make(map[string]string),
		useCache: true,
	}
}

// NewDanishStemmerWithoutCache creates a stemmer without caching.
func NewDanishStemmerWithoutCache() *DanishStemmer {
	return &DanishStemmer{
		language: "norwegian",
		useCache: false,
	}
}

// Stem returns the stemmed version of a word using the Snowball algorithm.
// Example: "monteringen" -> "montering", "huset" -> "hus"
func (s *DanishStemmer) Stem(word string) string {
	if word == "" {
		return ""
	}

	normalized := strings.ToLower(strings.TrimSpace(word))
	if normalized == "" {
		return ""
	}

	stemmed, err := snowball.Stem(normalized, s.language, true)
	if err != nil {
		// If stemming fails, return the normalized word
		return normalized
	}

	return stemmed
}

// StemWithCache returns the stemmed version with caching for performance.
func (s *DanishStemmer) StemWithCache(word string) string {
	if !s.useCache {
		return s.Stem(word)
	}

	normalized := strings.ToLower(strings.TrimSpace(word))
	if normalized == "" {
		return ""
	}

	s.mu.RLock()
	if cached, found := s.cache[normalized]; found {
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	stemmed := s.Stem(normalized)

	s.mu.Lock()
	s.cache[normalized] = stemmed
	s.mu.Unlock()

	return stemmed
}

// StemTokens returns stemmed versions of multiple words.
func (s *DanishStemmer) StemTokens(tokens []string) []string {
	if len(tokens) == 0 {
		return []string{}
	}

	stemmed := make([]string, len(tokens))
	for i, token := range tokens {
		stemmed[i] = s.StemWithCache(token)
	}

	return stemmed
}

// SharesStem reports whether two words reduce to stems where one is a
// prefix of the other and the shared part is at least minPrefix runes.
// Catches abbreviated invoice verbs ("mont" vs "montering") that plain
// edit distance would reject.
func (s *DanishStemmer) SharesStem(word1, word2 string, minPrefix int) bool {
	stem1 := s.StemWithCache(word1)
	stem2 := s.StemWithCache(word2)

	if stem1 == "" || stem2 == "" {
		return false
	}

	shorter := stem1
	longer := stem2
	if len([]rune(stem2)) < len([]rune(stem1)) {
		shorter, longer = stem2, stem1
	}

	if len([]rune(shorter)) < minPrefix {
		return false
	}

	return strings.HasPrefix(longer, shorter)
}

// ClearCache clears the internal cache.
func (s *DanishStemmer) ClearCache() {
	if !s.useCache {
		return
	}

	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// CacheSize returns the number of cached items.
func (s *DanishStemmer) CacheSize() int {
	if !s.useCache {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}
