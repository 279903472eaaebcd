package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/janm-comcon/stdtext/normalization/algorithms"
	"github.com/janm-comcon/stdtext/style"
)

// IndexSchemaVersion is the only corpus-index schema this binary
// understands. Bump together with the offline model builder.
const IndexSchemaVersion = 1

// IndexVectorEntry is one (term, weight) component of a serialized sparse
// vector.
type IndexVectorEntry struct {
	Term   int     `json:"t"`
	Weight float64 `json:"w"`
}

// IndexArtifact is the on-disk shape of the frozen similarity model: the
// fitted vector space, the cluster centroids, each row's cluster and the
// historical texts themselves.
type IndexArtifact struct {
	SchemaVersion int                  `json:"schema_version"`
	ModelVersion  string               `json:"model_version"`
	NgramMin      int                  `json:"ngram_min"`
	NgramMax      int                  `json:"ngram_max"`
	Vocabulary    []string             `json:"vocabulary"`
	IDF           []float64            `json:"idf"`
	Centroids     [][]IndexVectorEntry `json:"centroids"`
	Assignments   []int                `json:"assignments"`
	Rows          []string             `json:"rows"`
}

// LoadIndex reads a corpus-index artifact and builds the frozen style
// index from it. Every structural inconsistency fails loudly; a valid
// artifact with zero rows is allowed and produces an empty index.
func LoadIndex(path string) (*style.Index, error) {
	if path == "" {
		return nil, newLoadError("corpus index", path, fmt.Errorf("no path configured"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newLoadError("corpus index", path, err)
	}

	var artifact IndexArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, newLoadError("corpus index", path, err)
	}

	index, err := buildIndex(&artifact)
	if err != nil {
		return nil, newLoadError("corpus index", path, err)
	}
	return index, nil
}

func buildIndex(artifact *IndexArtifact) (*style.Index, error) {
	if artifact.SchemaVersion != IndexSchemaVersion {
		return nil, fmt.Errorf("schema_version %d, want %d", artifact.SchemaVersion, IndexSchemaVersion)
	}
	if artifact.ModelVersion == "" {
		return nil, fmt.Errorf("empty model_version")
	}
	if artifact.NgramMin < 1 || artifact.NgramMax < artifact.NgramMin {
		return nil, fmt.Errorf("bad ngram range %d..%d", artifact.NgramMin, artifact.NgramMax)
	}
	if len(artifact.IDF) != len(artifact.Vocabulary) {
		return nil, fmt.Errorf("%d idf weights for %d vocabulary terms", len(artifact.IDF), len(artifact.Vocabulary))
	}
	if len(artifact.Assignments) != len(artifact.Rows) {
		return nil, fmt.Errorf("%d assignments for %d rows", len(artifact.Assignments), len(artifact.Rows))
	}

	terms := make(map[string]int, len(artifact.Vocabulary))
	for id, term := range artifact.Vocabulary {
		if term == "" {
			return nil, fmt.Errorf("vocabulary term %d is empty", id)
		}
		if _, dup := terms[term]; dup {
			return nil, fmt.Errorf("duplicate vocabulary term %q", term)
		}
		terms[term] = id
	}

	centroids := make([]algorithms.SparseVector, len(artifact.Centroids))
	for i, entries := range artifact.Centroids {
		vector := make(algorithms.SparseVector, 0, len(entries))
		for _, e := range entries {
			if e.Term < 0 || e.Term >= len(artifact.Vocabulary) {
				return nil, fmt.Errorf("centroid %d references term %d of %d", i, e.Term, len(artifact.Vocabulary))
			}
			vector = append(vector, algorithms.SparseEntry{Term: e.Term, Weight: e.Weight})
		}
		// Entries must be ordered for deterministic dot products; sort
		// rather than trust the producer.
		sort.Slice(vector, func(a, b int) bool { return vector[a].Term < vector[b].Term })
		centroids[i] = vector
	}

	vectorizer := algorithms.NewFrozenVectorizer(terms, artifact.IDF, artifact.NgramMin, artifact.NgramMax)
	return style.NewIndex(vectorizer, centroids, artifact.Assignments, artifact.Rows, artifact.ModelVersion)
}

// WriteIndex writes a corpus-index artifact. The offline model builder is
// the usual producer; this writer keeps the schema round-trippable for
// fixtures and tooling.
func WriteIndex(path string, artifact *IndexArtifact) error {
	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
