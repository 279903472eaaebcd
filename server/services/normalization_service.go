// Package services holds the request-facing operations between the HTTP
// handlers and the text processing packages. Services validate input,
// pick the active artifact snapshot, and translate domain errors into
// AppErrors.
package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/janm-comcon/stdtext/artifacts"
	"github.com/janm-comcon/stdtext/normalization"
	"github.com/janm-comcon/stdtext/polish"
	apperrors "github.com/janm-comcon/stdtext/server/errors"
	"github.com/janm-comcon/stdtext/server/middleware"
	"github.com/janm-comcon/stdtext/style"
)

// NormalizeOptions controls one normalization request.
type NormalizeOptions struct {
	// TopK requests that many style matches for the final text; zero
	// skips matching entirely.
	TopK int
	// Polish runs the optional LLM pass on the final text.
	Polish bool
}

// NormalizeResult is one completed normalization.
type NormalizeResult struct {
	FinalText    string
	Stages       normalization.Stages
	Matches      []style.Match
	ModelVersion string
	// Polished reports whether the LLM pass actually replaced the draft.
	Polished bool
}

// NormalizationService runs the full normalization pipeline against the
// active artifact snapshot.
type NormalizationService struct {
	store     *artifacts.Store
	rules     *normalization.RuleEngine
	counts    *normalization.CountExtractor
	polish    polish.Client
	uppercase bool
	maxTopK   int
}

// NewNormalizationService creates the service. rules may be nil when no
// rule file is configured; polishClient may be nil to disable polishing.
func NewNormalizationService(
	store *artifacts.Store,
	rules *normalization.RuleEngine,
	counts *normalization.CountExtractor,
	polishClient polish.Client,
	uppercase bool,
	maxTopK int,
) *NormalizationService {
	if polishClient == nil {
		polishClient = polish.NoopClient{}
	}
	return &NormalizationService{
		store:     store,
		rules:     rules,
		counts:    counts,
		polish:    polishClient,
		uppercase: uppercase,
		maxTopK:   maxTopK,
	}
}

// Normalize runs the pipeline on one line and optionally attaches style
// matches and the polish pass. The snapshot is pinned once at entry so a
// concurrent reload cannot mix artifact generations within one request.
func (ns *NormalizationService) Normalize(ctx context.Context, text string, opts NormalizeOptions) (*NormalizeResult, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("text is required", nil)
	}
	if opts.TopK > ns.maxTopK {
		return nil, apperrors.NewValidationError("top_k exceeds the configured maximum", nil)
	}

	snapshot := ns.store.Current()
	if snapshot == nil {
		return nil, apperrors.NewServiceUnavailableError("artifacts are not loaded", nil)
	}

	start := time.Now()
	pipeline := normalization.NewPipeline(snapshot.Scrubber, ns.counts, snapshot.Checker, ns.rules, ns.uppercase)
	run := pipeline.Run(text)

	result := &NormalizeResult{
		FinalText:    run.FinalText,
		Stages:       run.Stages,
		ModelVersion: snapshot.ModelVersion(),
	}

	if opts.TopK != 0 {
		matches, err := snapshot.Index.Match(result.FinalText, opts.TopK)
		if err != nil {
			if errors.Is(err, style.ErrInvalidTopK) {
				return nil, apperrors.NewValidationError("top_k must be at least 1", err)
			}
			return nil, apperrors.NewInternalError("style matching failed", err)
		}
		result.Matches = matches
	}

	if opts.Polish && ns.polish.Enabled() {
		polished, err := ns.polish.Polish(ctx, text, result.FinalText)
		if err != nil {
			// Best effort only: the rule-based draft stands.
			slog.Warn("polish pass failed, keeping draft",
				"error", err,
				"request_id", middleware.GetRequestID(ctx),
			)
		} else {
			result.FinalText = polished
			result.Polished = true
		}
	}

	slog.Debug("normalize completed",
		"duration_ms", time.Since(start).Milliseconds(),
		"rule_matched", run.Stages.RuleMatched,
		"matches", len(result.Matches),
		"polished", result.Polished,
		"request_id", middleware.GetRequestID(ctx),
	)

	return result, nil
}
