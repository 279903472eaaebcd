package normalization

import (
	"strings"
)

// edgePunctuation is trimmed from token edges during pre-normalization.
// Word-internal characters survive, so "2,5", "a/s" and "stk." stay intact.
const edgePunctuation = ",;:!?()[]{}"

// TextNormalizer performs the lossy pre-normalization every request goes
// through before tokenization: lowercasing, whitespace collapsing and
// edge-punctuation trimming.
type TextNormalizer struct {
	trimSet string
}

// NewTextNormalizer creates a normalizer with the default trim set.
func NewTextNormalizer() *TextNormalizer {
	return &TextNormalizer{trimSet: edgePunctuation}
}

// Normalize lowercases the text, collapses whitespace runs to single
// spaces and trims edge punctuation from every field. Fields emptied by
// trimming are dropped.
func (n *TextNormalizer) Normalize(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))

	for _, field := range fields {
		cleaned := strings.Trim(field, n.trimSet)
		if cleaned == "" {
			continue
		}
		out = append(out, cleaned)
	}

	return strings.Join(out, " ")
}
