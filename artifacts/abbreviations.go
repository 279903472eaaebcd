package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// AbbreviationSchemaVersion is the only abbreviation-map schema this
// binary understands.
const AbbreviationSchemaVersion = 1

// abbreviationArtifact is the on-disk shape of the abbreviation map.
type abbreviationArtifact struct {
	SchemaVersion int               `json:"schema_version"`
	Entries       map[string]string `json:"entries"`
}

// LoadAbbreviations reads the abbreviation artifact mapping surface forms
// to their canonical long forms. An empty path yields an empty map.
func LoadAbbreviations(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newLoadError("abbreviations", path, err)
	}

	var artifact abbreviationArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, newLoadError("abbreviations", path, err)
	}
	if artifact.SchemaVersion != AbbreviationSchemaVersion {
		return nil, newLoadError("abbreviations", path,
			fmt.Errorf("schema_version %d, want %d", artifact.SchemaVersion, AbbreviationSchemaVersion))
	}

	entries := make(map[string]string, len(artifact.Entries))
	for surface, canonical := range artifact.Entries {
		surface = strings.TrimSpace(surface)
		canonical = strings.TrimSpace(canonical)
		if surface == "" || canonical == "" {
			return nil, newLoadError("abbreviations", path,
				fmt.Errorf("entry %q -> %q has an empty side", surface, canonical))
		}
		entries[surface] = canonical
	}

	return entries, nil
}

// WriteAbbreviations writes the abbreviation artifact.
func WriteAbbreviations(path string, entries map[string]string) error {
	data, err := json.MarshalIndent(abbreviationArtifact{
		SchemaVersion: AbbreviationSchemaVersion,
		Entries:       entries,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
