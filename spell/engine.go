package spell

import "errors"

// ErrEngineUnavailable signals that the primary correction engine could
// not initialize. Callers recover by selecting the fallback engine; the
// condition is logged, never surfaced to API clients.
var ErrEngineUnavailable = errors.New("spell engine unavailable")

// Mode names which correction engine a checker ended up with.
type Mode string

const (
	ModePrimary  Mode = "primary"
	ModeFallback Mode = "fallback"
)

// Engine is the pluggable dictionary-lookup capability behind the
// checker. Implementations must be safe for concurrent use.
type Engine interface {
	// Known reports whether the word needs no correction.
	Known(word string) bool

	// Correction returns the best correction, or the input word in its
	// dictionary form when no candidate is close enough.
	Correction(word string) string

	// Suggestions returns ranked correction candidates within the
	// engine's edit-distance budget, best first.
	Suggestions(word string) []string
}

// SelectEngine picks the primary engine when the dictionary allows it and
// otherwise falls back to the corpus-vocabulary engine. The returned
// error carries the primary's initialization failure (the caller logs
// it); the returned engine is always usable.
func SelectEngine(dict *Dictionary, corpusCounts map[string]int, maxEditDistance int) (Engine, Mode, error) {
	primary, err := NewNorvigEngine(dict, maxEditDistance)
	if err == nil {
		return primary, ModePrimary, nil
	}
	return NewFallbackEngine(corpusCounts, maxEditDistance), ModeFallback, err
}
