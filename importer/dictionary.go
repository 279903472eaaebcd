package importer

import (
	"regexp"
	"strings"
)

// tokenPattern matches Danish word tokens. Digits and punctuation never
// count as dictionary material.
var tokenPattern = regexp.MustCompile(`[A-Za-zÆØÅæøå]+`)

// BuildDictionary counts lowercase word tokens across corpus lines and
// drops everything seen fewer than minCount times. The result is written
// with artifacts.WriteDictionary.
func BuildDictionary(lines []string, minCount int) map[string]int {
	if minCount < 1 {
		minCount = 1
	}

	counts := make(map[string]int)
	for _, line := range lines {
		for _, token := range tokenPattern.FindAllString(line, -1) {
			counts[strings.ToLower(token)]++
		}
	}
	for word, count := range counts {
		if count < minCount {
			delete(counts, word)
		}
	}
	return counts
}
