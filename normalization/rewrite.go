package normalization

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/janm-comcon/stdtext/normalization/algorithms"
)

// DefaultRuleMaxDistance is used for rules that do not set their own
// edit-distance budget.
const DefaultRuleMaxDistance = 2

// minStemPrefix is the minimum shared stem length for stem-based pattern
// matching; anything shorter matches far too much Danish.
const minStemPrefix = 4

// RewriteRule maps a fuzzy token pattern to the canonical phrase the
// company writes for it. A MaxDistance of 0 selects the default budget.
type RewriteRule struct {
	Name        string   `yaml:"name" json:"name"`
	Pattern     []string `yaml:"pattern" json:"pattern"`
	Canonical   string   `yaml:"canonical" json:"canonical"`
	MaxDistance int      `yaml:"max_distance" json:"max_distance"`
	Priority    int      `yaml:"priority" json:"priority"`
	Enabled     *bool    `yaml:"enabled,omitempty" json:"enabled,omitempty"`
}

// IsEnabled treats an absent enabled flag as true.
func (r RewriteRule) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

type ruleFile struct {
	Rules []RewriteRule `yaml:"rules"`
}

// LoadRewriteRules reads rules from a YAML file, keeping declaration
// order. Every rule needs a non-empty pattern and canonical phrase.
func LoadRewriteRules(path string) ([]RewriteRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	for i, r := range f.Rules {
		if len(r.Pattern) == 0 {
			return nil, fmt.Errorf("rules file %s: rule %d (%q) has an empty pattern", path, i, r.Name)
		}
		if strings.TrimSpace(r.Canonical) == "" {
			return nil, fmt.Errorf("rules file %s: rule %d (%q) has an empty canonical phrase", path, i, r.Name)
		}
		if f.Rules[i].MaxDistance == 0 {
			f.Rules[i].MaxDistance = DefaultRuleMaxDistance
		}
	}

	return f.Rules, nil
}

// RuleEngine selects and applies the best rewrite rule for a token
// sequence. Selection order is fixed at construction: more pattern tokens
// first, then higher priority, then declaration order.
type RuleEngine struct {
	rules   []RewriteRule
	order   []int
	dl      *algorithms.DamerauLevenshtein
	stemmer *algorithms.DanishStemmer
}

// NewRuleEngine builds an engine over the given rules.
func NewRuleEngine(rules []RewriteRule) *RuleEngine {
	e := &RuleEngine{
		rules:   rules,
		order:   make([]int, len(rules)),
		dl:      algorithms.NewDamerauLevenshtein(),
		stemmer: algorithms.NewDanishStemmer(),
	}

	for i := range e.order {
		e.order[i] = i
	}
	sort.SliceStable(e.order, func(a, b int) bool {
		ra := e.rules[e.order[a]]
		rb := e.rules[e.order[b]]
		if len(ra.Pattern) != len(rb.Pattern) {
			return len(ra.Pattern) > len(rb.Pattern)
		}
		return ra.Priority > rb.Priority
	})

	return e
}

// Rules returns the engine's rules in declaration order.
func (e *RuleEngine) Rules() []RewriteRule {
	return e.rules
}

// Apply rewrites the token sequence with the best matching rule: the
// canonical phrase replaces the matched words and every unmatched field,
// placeholders included, is appended in its original order. When no rule
// matches, the input is returned unchanged and matched is false.
func (e *RuleEngine) Apply(tokens []Token) (out []Token, ruleName string, matched bool) {
	fields := Fields(tokens)
	if len(fields) == 0 {
		return tokens, "", false
	}

	for _, idx := range e.order {
		rule := e.rules[idx]
		if !rule.IsEnabled() {
			continue
		}
		consumed, ok := e.matchRule(rule, fields)
		if !ok {
			continue
		}

		result := strings.Fields(rule.Canonical)
		for i, f := range fields {
			if !consumed[i] {
				result = append(result, f.Text)
			}
		}
		return TokensFromFields(result), rule.Name, true
	}

	return tokens, "", false
}

// matchRule tries to bind every pattern token to a distinct word field.
// Binding is order-insensitive; each pattern token takes the leftmost
// free field that matches.
func (e *RuleEngine) matchRule(rule RewriteRule, fields []Token) ([]bool, bool) {
	consumed := make([]bool, len(fields))

	for _, pat := range rule.Pattern {
		pattern := strings.ToLower(strings.TrimSpace(pat))
		if pattern == "" {
			continue
		}
		found := -1
		for i, f := range fields {
			if consumed[i] || f.Kind != TokenWord {
				continue
			}
			if e.WordMatches(pattern, f.Text, rule.MaxDistance) {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, false
		}
		consumed[found] = true
	}

	return consumed, true
}

// WordMatches reports whether an input word matches a rule pattern token:
// exact, shared stem, or within the length-scaled edit-distance budget.
func (e *RuleEngine) WordMatches(pattern, word string, maxDistance int) bool {
	if pattern == word {
		return true
	}
	if e.stemmer.SharesStem(pattern, word, minStemPrefix) {
		return true
	}

	budget := scaledDistance(pattern, maxDistance)
	if budget == 0 {
		return false
	}
	return e.dl.Distance(pattern, word) <= budget
}

// scaledDistance caps the edit budget by pattern length so short pattern
// tokens only ever match exactly: "ok" must not catch "og".
func scaledDistance(pattern string, maxDistance int) int {
	switch n := len([]rune(pattern)); {
	case n <= 3:
		return 0
	case n <= 5:
		if maxDistance < 1 {
			return maxDistance
		}
		return 1
	default:
		return maxDistance
	}
}
