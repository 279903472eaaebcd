package artifacts

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/janm-comcon/stdtext/spell"
)

// DictionaryHeader is the first line of every dictionary artifact. A file
// that starts with anything else is rejected as a schema mismatch.
const DictionaryHeader = "#stdtext-dictionary v1"

// LoadDictionary reads a dictionary artifact: the schema header followed
// by one word<TAB>count line per known form. An empty path means no
// dictionary is configured and yields nil without error; the spell layer
// then selects its fallback engine.
func LoadDictionary(path string) (*spell.Dictionary, error) {
	if path == "" {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, newLoadError("dictionary", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return nil, newLoadError("dictionary", path, fmt.Errorf("missing schema header %q", DictionaryHeader))
	}
	if header := strings.TrimSpace(scanner.Text()); header != DictionaryHeader {
		return nil, newLoadError("dictionary", path, fmt.Errorf("schema header %q, want %q", header, DictionaryHeader))
	}

	counts := make(map[string]int)
	line := 1
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		word, countField, found := strings.Cut(text, "\t")
		if !found {
			return nil, newLoadError("dictionary", path, fmt.Errorf("line %d: no tab separator", line))
		}
		count, err := strconv.Atoi(strings.TrimSpace(countField))
		if err != nil || count < 0 {
			return nil, newLoadError("dictionary", path, fmt.Errorf("line %d: bad count %q", line, countField))
		}
		counts[strings.TrimSpace(word)] += count
	}
	if err := scanner.Err(); err != nil {
		return nil, newLoadError("dictionary", path, err)
	}

	return spell.NewDictionary(counts), nil
}

// WriteDictionary writes a dictionary artifact, entries ordered by count
// descending, then word, so rebuilt artifacts diff cleanly.
func WriteDictionary(path string, counts map[string]int) error {
	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	var b strings.Builder
	b.WriteString(DictionaryHeader)
	b.WriteByte('\n')
	for _, word := range words {
		fmt.Fprintf(&b, "%s\t%d\n", word, counts[word])
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}
