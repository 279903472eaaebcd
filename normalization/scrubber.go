package normalization

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// PlaceholderKind groups placeholder labels into the three protection
// classes of the pipeline.
type PlaceholderKind int

const (
	// KindEntity protects proper nouns and structured values: cities,
	// streets, companies, dates, URLs, e-mail addresses, phone numbers.
	KindEntity PlaceholderKind = iota
	// KindAbbreviation protects domain abbreviations such as "stk." or
	// "vvs".
	KindAbbreviation
	// KindCount protects normalized quantity expressions such as "2 stk".
	KindCount
)

// String returns the kind name used in debug traces.
func (k PlaceholderKind) String() string {
	switch k {
	case KindAbbreviation:
		return "abbreviation"
	case KindCount:
		return "count"
	default:
		return "entity"
	}
}

// MarshalJSON serializes the kind by name.
func (k PlaceholderKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Placeholder records one protected substring. Key is unique within a
// request; the token surface is "<KEY>".
type Placeholder struct {
	Key      string          `json:"key"`
	Kind     PlaceholderKind `json:"kind"`
	Original string          `json:"original"`
}

// Token returns the placeholder's token surface.
func (p Placeholder) Token() string {
	return "<" + p.Key + ">"
}

// Reinsert restores placeholders in text, each exactly once, in the order
// they were recorded (left to right in the original line). It is the exact
// inverse of the scrub that produced them.
func Reinsert(text string, placeholders []Placeholder) string {
	for _, p := range placeholders {
		text = strings.Replace(text, p.Token(), p.Original, 1)
	}
	return text
}

// Token-level patterns for structured entities. Each must match a full
// pre-normalized (lowercased) field.
var (
	urlPattern   = regexp.MustCompile(`^(https?://|www\.)\S+$`)
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	datePattern  = regexp.MustCompile(`^[0-9]{1,2}[./-][0-9]{1,2}[./-][0-9]{2,4}$`)
	phonePattern = regexp.MustCompile(`^(\+45)?[0-9]{8}$`)
)

// defaultStreetSuffixes are the Danish street-name suffixes the scrubber
// recognizes as part of an address token.
var defaultStreetSuffixes = []string{
	"vej", "gade", "alle", "allé", "torv", "stræde", "vænget", "vænge",
	"bakken", "parken", "engen", "stien", "kaj", "plads",
}

// defaultCompanyForms are Danish legal-form markers that turn the
// preceding word into a company name.
var defaultCompanyForms = []string{
	"a/s", "aps", "aps.", "a.m.b.a", "a.m.b.a.", "p/s", "k/s", "i/s", "ivs",
}

// Scrubber detects entities and abbreviations and replaces them with
// reversible placeholders. Detection is purely table- and pattern-driven,
// so identical input and tables always produce identical output.
type Scrubber struct {
	gazetteer      map[string]bool
	maxSpan        int
	abbreviations  map[string]string
	streetSuffixes []string
	companyForms   map[string]bool
}

// NewScrubber builds a scrubber over a gazetteer of place names and an
// abbreviation table. Gazetteer entries may span multiple words.
func NewScrubber(gazetteer []string, abbreviations map[string]string) *Scrubber {
	s := &Scrubber{
		gazetteer:      make(map[string]bool, len(gazetteer)),
		abbreviations:  make(map[string]string, len(abbreviations)),
		streetSuffixes: defaultStreetSuffixes,
		companyForms:   make(map[string]bool, len(defaultCompanyForms)),
		maxSpan:        1,
	}

	for _, entry := range gazetteer {
		normalized := strings.ToLower(strings.TrimSpace(entry))
		if normalized == "" {
			continue
		}
		s.gazetteer[normalized] = true
		if n := len(strings.Fields(normalized)); n > s.maxSpan {
			s.maxSpan = n
		}
	}

	for surface, canonical := range abbreviations {
		key := normalizeAbbrevKey(surface)
		if key == "" {
			continue
		}
		s.abbreviations[key] = canonical
	}

	for _, form := range defaultCompanyForms {
		s.companyForms[form] = true
	}

	return s
}

func normalizeAbbrevKey(surface string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(surface)), ".")
}

// AbbreviationCanonical returns the canonical form for an abbreviation
// surface, if the table knows it.
func (s *Scrubber) AbbreviationCanonical(surface string) (string, bool) {
	canonical, ok := s.abbreviations[normalizeAbbrevKey(surface)]
	return canonical, ok
}

// candidate is one potential protected span over the field sequence.
type candidate struct {
	start   int
	end     int // inclusive
	label   string
	kind    PlaceholderKind
	surface string
	runeLen int
}

// kindRank orders entity candidates before abbreviation candidates when
// both claim the same span.
func kindRank(k PlaceholderKind) int {
	if k == KindAbbreviation {
		return 1
	}
	return 0
}

// Scrub replaces detected spans with placeholder tokens. The returned
// placeholder list is ordered left to right; surfaces not present in the
// tables pass through untouched.
func (s *Scrubber) Scrub(tokens []Token) ([]Token, []Placeholder) {
	fields := Fields(tokens)
	if len(fields) == 0 {
		return tokens, nil
	}

	candidates := s.collectCandidates(fields)
	if len(candidates) == 0 {
		return tokens, nil
	}

	// Longest surface first, then earliest offset; entities beat
	// abbreviations on identical spans.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].runeLen != candidates[j].runeLen {
			return candidates[i].runeLen > candidates[j].runeLen
		}
		if candidates[i].start != candidates[j].start {
			return candidates[i].start < candidates[j].start
		}
		return kindRank(candidates[i].kind) < kindRank(candidates[j].kind)
	})

	used := make([]bool, len(fields))
	var accepted []candidate
	for _, c := range candidates {
		free := true
		for i := c.start; i <= c.end; i++ {
			if used[i] {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		for i := c.start; i <= c.end; i++ {
			used[i] = true
		}
		accepted = append(accepted, c)
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].start < accepted[j].start
	})

	// Number placeholders per label, left to right.
	counters := make(map[string]int)
	placeholders := make([]Placeholder, 0, len(accepted))
	spanStart := make(map[int]int) // field index -> accepted index
	for i, c := range accepted {
		counters[c.label]++
		placeholders = append(placeholders, Placeholder{
			Key:      fmt.Sprintf("%s_%04d", c.label, counters[c.label]),
			Kind:     c.kind,
			Original: c.surface,
		})
		spanStart[c.start] = i
	}

	out := make([]string, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		if idx, ok := spanStart[i]; ok {
			out = append(out, placeholders[idx].Token())
			i = accepted[idx].end
			continue
		}
		out = append(out, fields[i].Text)
	}

	return TokensFromFields(out), placeholders
}

func (s *Scrubber) collectCandidates(fields []Token) []candidate {
	var candidates []candidate

	add := func(start, end int, label string, kind PlaceholderKind) {
		parts := make([]string, 0, end-start+1)
		for i := start; i <= end; i++ {
			parts = append(parts, fields[i].Text)
		}
		surface := strings.Join(parts, " ")
		candidates = append(candidates, candidate{
			start:   start,
			end:     end,
			label:   label,
			kind:    kind,
			surface: surface,
			runeLen: len([]rune(surface)),
		})
	}

	for i, f := range fields {
		if f.Kind != TokenWord {
			continue
		}
		switch {
		case urlPattern.MatchString(f.Text):
			add(i, i, "URL", KindEntity)
		case emailPattern.MatchString(f.Text):
			add(i, i, "EMAIL", KindEntity)
		case datePattern.MatchString(f.Text):
			add(i, i, "DATE", KindEntity)
		case phonePattern.MatchString(f.Text):
			add(i, i, "PHONE", KindEntity)
		}
	}

	// Gazetteer spans, longest window first per start position.
	for i := range fields {
		if fields[i].Kind != TokenWord {
			continue
		}
		for n := s.maxSpan; n >= 1; n-- {
			end := i + n - 1
			if end >= len(fields) {
				continue
			}
			wordsOnly := true
			for j := i; j <= end; j++ {
				if fields[j].Kind != TokenWord {
					wordsOnly = false
					break
				}
			}
			if !wordsOnly {
				continue
			}
			parts := make([]string, 0, n)
			for j := i; j <= end; j++ {
				parts = append(parts, fields[j].Text)
			}
			if s.gazetteer[strings.Join(parts, " ")] {
				add(i, end, "CITY", KindEntity)
			}
		}
	}

	for i, f := range fields {
		if f.Kind != TokenWord {
			continue
		}
		for _, suffix := range s.streetSuffixes {
			if strings.HasSuffix(f.Text, suffix) && len([]rune(f.Text)) > len([]rune(suffix)) {
				add(i, i, "STREET", KindEntity)
				break
			}
		}
	}

	for i := 0; i+1 < len(fields); i++ {
		if fields[i].Kind != TokenWord || fields[i+1].Kind != TokenWord {
			continue
		}
		if s.companyForms[fields[i+1].Text] {
			add(i, i+1, "COMP", KindEntity)
		}
	}

	for i, f := range fields {
		if f.Kind != TokenWord {
			continue
		}
		if _, ok := s.abbreviations[normalizeAbbrevKey(f.Text)]; ok {
			add(i, i, "ABBR", KindAbbreviation)
		}
	}

	return candidates
}
