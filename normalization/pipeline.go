package normalization

import (
	"strings"
)

// TokenCorrector is the spell-correction capability applied between
// scrubbing and rewriting. The checker in the spell package implements
// it; a nil corrector skips the stage.
type TokenCorrector interface {
	CorrectTokens(tokens []Token) []Token
}

// Stages is the intermediate output of every pipeline stage, retained for
// debug inspection. Field order mirrors execution order.
type Stages struct {
	Normalized     string `json:"normalized"`
	Scrubbed       string `json:"scrubbed"`
	Counts         string `json:"counts"`
	SpellCorrected string `json:"spell_corrected"`
	Rewritten      string `json:"rewritten"`
	Reinserted     string `json:"reinserted"`
	Final          string `json:"final"`

	// MatchedRule names the rewrite rule that fired, empty when the
	// engine fell back to literal reconstruction.
	MatchedRule string `json:"matched_rule,omitempty"`
	RuleMatched bool   `json:"rule_matched"`

	// Placeholders and CountPlaceholders record every protected span in
	// reinsertion order.
	Placeholders      []Placeholder `json:"placeholders,omitempty"`
	CountPlaceholders []Placeholder `json:"count_placeholders,omitempty"`
}

// Result is one pipeline run: the final canonical line plus the full
// stage trace.
type Result struct {
	FinalText string
	Stages    Stages
}

// Pipeline sequences the normalization stages. The order is fixed: each
// stage depends on the placeholders established by the stages before it,
// so none may be skipped or reordered. A Pipeline is cheap to construct
// and holds no per-request state; build one per request from the active
// artifact snapshot.
type Pipeline struct {
	normalizer *TextNormalizer
	scrubber   *Scrubber
	counts     *CountExtractor
	corrector  TokenCorrector
	rules      *RuleEngine
	uppercase  bool
}

// NewPipeline wires the stages together. Scrubber and counts must be
// non-nil; corrector and rules may be nil, which turns their stages into
// pass-throughs.
func NewPipeline(scrubber *Scrubber, counts *CountExtractor, corrector TokenCorrector, rules *RuleEngine, uppercase bool) *Pipeline {
	return &Pipeline{
		normalizer: NewTextNormalizer(),
		scrubber:   scrubber,
		counts:     counts,
		corrector:  corrector,
		rules:      rules,
		uppercase:  uppercase,
	}
}

// Run executes the full pipeline on one raw line:
// normalize, scrub entities and abbreviations, extract counts,
// spell-correct, rewrite, reinsert counts, reinsert entities and
// abbreviations, uppercase. Identical input against the same artifacts
// always yields an identical result.
func (p *Pipeline) Run(raw string) Result {
	var stages Stages

	normalized := p.normalizer.Normalize(raw)
	stages.Normalized = normalized

	tokens := Tokenize(normalized)

	tokens, placeholders := p.scrubber.Scrub(tokens)
	stages.Scrubbed = Join(tokens)
	stages.Placeholders = placeholders

	tokens, countPlaceholders := p.counts.Extract(tokens)
	stages.Counts = Join(tokens)
	stages.CountPlaceholders = countPlaceholders

	if p.corrector != nil {
		tokens = p.corrector.CorrectTokens(tokens)
	}
	stages.SpellCorrected = Join(tokens)

	if p.rules != nil {
		rewritten, ruleName, matched := p.rules.Apply(tokens)
		tokens = rewritten
		stages.MatchedRule = ruleName
		stages.RuleMatched = matched
	}
	stages.Rewritten = Join(tokens)

	text := Join(tokens)
	text = Reinsert(text, countPlaceholders)
	text = Reinsert(text, placeholders)
	stages.Reinserted = text

	if p.uppercase {
		text = strings.ToUpper(text)
	}
	stages.Final = text

	return Result{FinalText: text, Stages: stages}
}
