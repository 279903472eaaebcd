package artifacts

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// GazetteerHeader is the first line of every gazetteer artifact.
const GazetteerHeader = "#stdtext-gazetteer v1"

// LoadGazetteer reads the entity gazetteer: the schema header followed by
// one recognized name per line. An empty path yields an empty list.
func LoadGazetteer(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, newLoadError("gazetteer", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return nil, newLoadError("gazetteer", path, fmt.Errorf("missing schema header %q", GazetteerHeader))
	}
	if header := strings.TrimSpace(scanner.Text()); header != GazetteerHeader {
		return nil, newLoadError("gazetteer", path, fmt.Errorf("schema header %q, want %q", header, GazetteerHeader))
	}

	var names []string
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, newLoadError("gazetteer", path, err)
	}

	return names, nil
}

// WriteGazetteer writes the gazetteer artifact, names deduplicated and
// sorted.
func WriteGazetteer(path string, names []string) error {
	unique := make(map[string]bool, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			unique[name] = true
		}
	}
	sorted := make([]string, 0, len(unique))
	for name := range unique {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString(GazetteerHeader)
	b.WriteByte('\n')
	for _, name := range sorted {
		b.WriteString(name)
		b.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}
