package services

import (
	"context"
	"strings"

	"github.com/janm-comcon/stdtext/artifacts"
	"github.com/janm-comcon/stdtext/normalization"
	apperrors "github.com/janm-comcon/stdtext/server/errors"
)

// maxSuggestions caps the alternatives returned per corrected word.
const maxSuggestions = 5

// WordCorrection is one word the checker rewrote, with ranked
// alternatives.
type WordCorrection struct {
	Original    string   `json:"original"`
	Corrected   string   `json:"corrected"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// SpellingResult is the outcome of a spelling pass over one line.
type SpellingResult struct {
	Original    string
	Corrected   string
	Corrections []WordCorrection
	// Mode reports which engine served the request: primary or fallback.
	Mode string
}

// SpellingService exposes the spelling stage in isolation.
type SpellingService struct {
	store      *artifacts.Store
	normalizer *normalization.TextNormalizer
}

// NewSpellingService creates the service.
func NewSpellingService(store *artifacts.Store) *SpellingService {
	return &SpellingService{
		store:      store,
		normalizer: normalization.NewTextNormalizer(),
	}
}

// CorrectSpelling normalizes and scrubs the line, corrects the remaining
// word tokens, and reinserts the protected spans. Gazetteer names and
// abbreviations are placeholders during correction, so they can never be
// "corrected" away.
func (ss *SpellingService) CorrectSpelling(ctx context.Context, text string) (*SpellingResult, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("text is required", nil)
	}

	snapshot := ss.store.Current()
	if snapshot == nil {
		return nil, apperrors.NewServiceUnavailableError("artifacts are not loaded", nil)
	}

	normalized := ss.normalizer.Normalize(text)
	tokens := normalization.Tokenize(normalized)
	scrubbed, placeholders := snapshot.Scrubber.Scrub(tokens)
	corrected := snapshot.Checker.CorrectTokens(scrubbed)

	var corrections []WordCorrection
	for i, tok := range scrubbed {
		if tok.Kind != normalization.TokenWord {
			continue
		}
		fixed := corrected[i].Text
		if fixed == tok.Text {
			continue
		}
		suggestions := snapshot.Checker.Suggestions(tok.Text)
		if len(suggestions) > maxSuggestions {
			suggestions = suggestions[:maxSuggestions]
		}
		corrections = append(corrections, WordCorrection{
			Original:    tok.Text,
			Corrected:   fixed,
			Suggestions: suggestions,
		})
	}

	correctedText := normalization.Reinsert(normalization.Join(corrected), placeholders)

	return &SpellingResult{
		Original:    text,
		Corrected:   correctedText,
		Corrections: corrections,
		Mode:        string(snapshot.SpellMode()),
	}, nil
}
