package services

import (
	"context"
	"errors"
	"strings"

	"github.com/janm-comcon/stdtext/artifacts"
	apperrors "github.com/janm-comcon/stdtext/server/errors"
	"github.com/janm-comcon/stdtext/style"
)

// SimilarityResult is one style lookup against the corpus index.
type SimilarityResult struct {
	Query        string
	Matches      []style.Match
	ModelVersion string
}

// SimilarityService finds corpus lines stylistically closest to a query.
type SimilarityService struct {
	store       *artifacts.Store
	defaultTopK int
	maxTopK     int
}

// NewSimilarityService creates the service.
func NewSimilarityService(store *artifacts.Store, defaultTopK, maxTopK int) *SimilarityService {
	return &SimilarityService{
		store:       store,
		defaultTopK: defaultTopK,
		maxTopK:     maxTopK,
	}
}

// FindSimilar returns the topK nearest corpus rows. topK zero selects
// the configured default; values beyond the configured maximum are
// rejected. An empty corpus yields an empty match list, not an error.
func (ss *SimilarityService) FindSimilar(ctx context.Context, text string, topK int) (*SimilarityResult, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("text is required", nil)
	}

	if topK == 0 {
		topK = ss.defaultTopK
	}
	if topK > ss.maxTopK {
		return nil, apperrors.NewValidationError("top_k exceeds the configured maximum", nil)
	}

	snapshot := ss.store.Current()
	if snapshot == nil {
		return nil, apperrors.NewServiceUnavailableError("artifacts are not loaded", nil)
	}

	matches, err := snapshot.Index.Match(text, topK)
	if err != nil {
		if errors.Is(err, style.ErrInvalidTopK) {
			return nil, apperrors.NewValidationError("top_k must be at least 1", err)
		}
		return nil, apperrors.NewInternalError("style matching failed", err)
	}
	if matches == nil {
		matches = []style.Match{}
	}

	return &SimilarityResult{
		Query:        text,
		Matches:      matches,
		ModelVersion: snapshot.ModelVersion(),
	}, nil
}
