package normalization

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultUnits is the built-in unit vocabulary for quantity expressions
// on Danish invoice lines. Matching ignores case and one trailing period.
var DefaultUnits = []string{
	"stk", "st", "pcs", "x", "enheder", "antal",
	"kg", "g", "m", "meter", "cm", "mm", "l", "timer", "tim",
}

var quantityPattern = regexp.MustCompile(`^[0-9]+([.,][0-9]+)?$`)

// CountExtractor finds quantity-plus-unit expressions, normalizes their
// formatting and protects them behind placeholders so the spell and
// rewrite stages cannot touch them.
type CountExtractor struct {
	units map[string]bool
}

// NewCountExtractor builds an extractor over the given unit vocabulary.
// An empty list selects DefaultUnits.
func NewCountExtractor(units []string) *CountExtractor {
	if len(units) == 0 {
		units = DefaultUnits
	}
	e := &CountExtractor{units: make(map[string]bool, len(units))}
	for _, u := range units {
		if canonical := canonicalUnit(u); canonical != "" {
			e.units[canonical] = true
		}
	}
	return e
}

func canonicalUnit(field string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(field)), ".")
}

// NormalizeQuantity fixes numeral formatting: decimal comma becomes a
// dot and superfluous leading zeros are dropped ("02,5" -> "2.5").
// Returns false when the field is not a plain quantity.
func NormalizeQuantity(field string) (string, bool) {
	if !quantityPattern.MatchString(field) {
		return "", false
	}

	normalized := strings.ReplaceAll(field, ",", ".")
	intPart := normalized
	fracPart := ""
	if dot := strings.IndexByte(normalized, '.'); dot >= 0 {
		intPart = normalized[:dot]
		fracPart = normalized[dot:]
	}

	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}

	return intPart + fracPart, true
}

// Extract replaces each quantity-unit pair with a COUNT placeholder whose
// original text is the normalized expression. Fields that do not form an
// exact pair are left untouched rather than guessed at.
func (e *CountExtractor) Extract(tokens []Token) ([]Token, []Placeholder) {
	fields := Fields(tokens)
	if len(fields) < 2 {
		return tokens, nil
	}

	var placeholders []Placeholder
	out := make([]string, 0, len(fields))

	for i := 0; i < len(fields); i++ {
		if i+1 < len(fields) && fields[i].Kind == TokenWord && fields[i+1].Kind == TokenWord {
			if qty, ok := NormalizeQuantity(fields[i].Text); ok {
				if unit := canonicalUnit(fields[i+1].Text); e.units[unit] {
					p := Placeholder{
						Key:      fmt.Sprintf("COUNT_%04d", len(placeholders)+1),
						Kind:     KindCount,
						Original: qty + " " + unit,
					}
					placeholders = append(placeholders, p)
					out = append(out, p.Token())
					i++
					continue
				}
			}
		}
		out = append(out, fields[i].Text)
	}

	if len(placeholders) == 0 {
		return tokens, nil
	}
	return TokensFromFields(out), placeholders
}
