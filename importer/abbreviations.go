package importer

import (
	"strings"
	"unicode/utf8"
)

// AbbrevOptions tunes abbreviation detection.
type AbbrevOptions struct {
	MinTokenLen   int // shortest token worth counting
	MaxTokenLen   int // longest token worth counting
	MinShortLen   int // shortest prefix considered an abbreviation
	MaxSuffixDiff int // how much longer the full form may be
	CommonCeiling int // prefixes more frequent than this are full words
}

// DefaultAbbrevOptions returns the thresholds tuned on historical invoice
// corpora.
func DefaultAbbrevOptions() AbbrevOptions {
	return AbbrevOptions{
		MinTokenLen:   3,
		MaxTokenLen:   15,
		MinShortLen:   4,
		MaxSuffixDiff: 4,
		CommonCeiling: 20,
	}
}

// BuildAbbreviations scans corpus lines for truncated word forms: a rare
// token whose longer, at-least-as-frequent extension exists in the same
// vocabulary. Detected surfaces are keyed with a trailing dot, the way
// technicians write them. The result is written with
// artifacts.WriteAbbreviations.
func BuildAbbreviations(lines []string, opts AbbrevOptions) map[string]string {
	counter := make(map[string]int)
	for _, line := range lines {
		for _, token := range tokenPattern.FindAllString(line, -1) {
			t := strings.ToLower(token)
			if n := utf8.RuneCountInString(t); n >= opts.MinTokenLen && n <= opts.MaxTokenLen {
				counter[t]++
			}
		}
	}

	entries := make(map[string]string)
	for short, shortCount := range counter {
		shortLen := utf8.RuneCountInString(short)
		if shortLen < opts.MinShortLen {
			continue
		}
		if shortCount > opts.CommonCeiling {
			continue
		}

		var long string
		var longLen, longCount int
		for candidate, count := range counter {
			if candidate == short || !strings.HasPrefix(candidate, short) {
				continue
			}
			candidateLen := utf8.RuneCountInString(candidate)
			if candidateLen-shortLen > opts.MaxSuffixDiff {
				continue
			}
			if count < shortCount {
				continue
			}
			// longest extension wins, frequency then lexical order break ties
			if long == "" || candidateLen > longLen ||
				(candidateLen == longLen && count > longCount) ||
				(candidateLen == longLen && count == longCount && candidate < long) {
				long, longLen, longCount = candidate, candidateLen, count
			}
		}
		if long != "" {
			entries[short+"."] = long
		}
	}
	return entries
}
