package spell

import (
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/janm-comcon/stdtext/normalization"
)

// DefaultCacheSize bounds the per-snapshot correction cache.
const DefaultCacheSize = 4096

// Checker applies an engine to token sequences. Word tokens are the only
// kind it may rewrite; placeholder and punctuation tokens pass through
// byte-identical. Corrections are memoized in a bounded LRU that lives
// and dies with the artifact snapshot the checker belongs to.
type Checker struct {
	engine Engine
	mode   Mode
	cache  *lru.Cache[string, string]
}

// NewChecker wraps an engine. A non-positive cacheSize selects
// DefaultCacheSize.
func NewChecker(engine Engine, mode Mode, cacheSize int) *Checker {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	// lru.New only fails for non-positive sizes, which are clamped above.
	cache, _ := lru.New[string, string](cacheSize)
	return &Checker{engine: engine, mode: mode, cache: cache}
}

// Mode reports which engine the checker runs on.
func (c *Checker) Mode() Mode {
	return c.mode
}

// Known reports whether a word needs no correction.
func (c *Checker) Known(word string) bool {
	return c.engine.Known(word)
}

// Suggestions returns the engine's ranked candidates for a word.
func (c *Checker) Suggestions(word string) []string {
	return c.engine.Suggestions(word)
}

// CorrectWord returns the replacement surface for one word. Words that
// are known, contain digits, or are single runes stay untouched.
func (c *Checker) CorrectWord(word string) string {
	if word == "" || len([]rune(word)) < 2 || containsDigit(word) {
		return word
	}
	if c.engine.Known(word) {
		return word
	}

	if cached, ok := c.cache.Get(word); ok {
		return cached
	}

	corrected := c.engine.Correction(word)
	if corrected == "" || corrected == normalizeWord(word) {
		// No usable correction; keep the original surface intact.
		corrected = word
	}
	c.cache.Add(word, corrected)
	return corrected
}

// CorrectTokens returns a new token slice with every correctable word
// replaced. Placeholder, whitespace and punctuation tokens are copied
// through unchanged.
func (c *Checker) CorrectTokens(tokens []normalization.Token) []normalization.Token {
	out := make([]normalization.Token, len(tokens))
	for i, tok := range tokens {
		if tok.Kind != normalization.TokenWord {
			out[i] = tok
			continue
		}
		out[i] = normalization.Token{Text: c.CorrectWord(tok.Text), Kind: normalization.TokenWord}
	}
	return out
}

func containsDigit(word string) bool {
	for _, r := range word {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
